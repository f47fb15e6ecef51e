package serial

import (
	"io"
)

// Port is the host end of a board's debug channel. The board only
// transmits, so writes are for loopback tests and adapters that echo.
type Port interface {
	io.ReadWriteCloser

	// Flush discards anything buffered before the monitor attached.
	Flush() error
}

// Config describes how to open the host end.
type Config struct {
	// Device path (e.g., "/dev/ttyUSB0", "COM3")
	Device string

	// Baud must match the board's debug channel.
	Baud int

	// DataBits and StopBits mirror the board framing; parity is always none.
	DataBits int
	StopBits int

	// Read timeout in milliseconds (0 = blocking)
	ReadTimeout int
}

// DebugBaud is the rate every board's debug channel runs at.
const DebugBaud = 57600

// DefaultConfig matches the boards' 8N1 debug channel.
func DefaultConfig(device string) *Config {
	return &Config{
		Device:      device,
		Baud:        DebugBaud,
		DataBits:    8,
		StopBits:    1,
		ReadTimeout: 100,
	}
}
