//go:build !wasm

package serial

import (
	"fmt"
	"time"

	"github.com/tarm/serial"
)

// NativePort is a Port backed by tarm/serial.
type NativePort struct {
	port *serial.Port
	cfg  *Config
}

// Open opens the device described by cfg.
func Open(cfg *Config) (Port, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if cfg.Baud <= 0 {
		return nil, fmt.Errorf("invalid baud rate %d", cfg.Baud)
	}
	stop, err := stopBits(cfg.StopBits)
	if err != nil {
		return nil, err
	}
	size := byte(cfg.DataBits)
	if size == 0 {
		size = 8
	}

	port, err := serial.OpenPort(&serial.Config{
		Name:        cfg.Device,
		Baud:        cfg.Baud,
		ReadTimeout: time.Duration(cfg.ReadTimeout) * time.Millisecond,
		Size:        size,
		Parity:      serial.ParityNone,
		StopBits:    stop,
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.Device, err)
	}
	return &NativePort{port: port, cfg: cfg}, nil
}

func stopBits(n int) (serial.StopBits, error) {
	switch n {
	case 0, 1:
		return serial.Stop1, nil
	case 2:
		return serial.Stop2, nil
	}
	return 0, fmt.Errorf("unsupported stop bits %d", n)
}

func (p *NativePort) Read(b []byte) (int, error) {
	return p.port.Read(b)
}

func (p *NativePort) Write(b []byte) (int, error) {
	return p.port.Write(b)
}

func (p *NativePort) Close() error {
	if p.port != nil {
		return p.port.Close()
	}
	return nil
}

// Flush discards unread input so the monitor starts on a fresh line.
func (p *NativePort) Flush() error {
	return p.port.Flush()
}
