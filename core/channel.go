package core

import (
	"tinygo.org/x/drivers"
)

var _ drivers.UART = (*DebugChannel)(nil)

// DebugChannel is the raw transmit sink left behind by ConfigureSerial.
// Bytes go straight to the peripheral: no buffering, no framing.
type DebugChannel struct {
	d       SerialDriver
	enabled bool
}

// Write transmits p, polling the peripheral for each byte.
func (ch *DebugChannel) Write(p []byte) (int, error) {
	if ch == nil || !ch.enabled {
		return 0, ErrChannelDisabled
	}
	for i, b := range p {
		if err := ch.d.WriteByte(b); err != nil {
			return i, err
		}
	}
	return len(p), nil
}

// WriteString transmits s without converting it to a byte slice.
func (ch *DebugChannel) WriteString(s string) (int, error) {
	if ch == nil || !ch.enabled {
		return 0, ErrChannelDisabled
	}
	for i := 0; i < len(s); i++ {
		if err := ch.d.WriteByte(s[i]); err != nil {
			return i, err
		}
	}
	return len(s), nil
}

// Println writes s followed by CR LF, ignoring errors. Used as the
// platform debug writer.
func (ch *DebugChannel) Println(s string) {
	_, _ = ch.WriteString(s)
	_, _ = ch.WriteString("\r\n")
}

// Read is the receive extension point. The RX pin is not routed, so
// there is never anything to read.
func (ch *DebugChannel) Read(p []byte) (int, error) {
	return 0, ErrReceiveUnimplemented
}

// Buffered always reports zero; see Read.
func (ch *DebugChannel) Buffered() int {
	return 0
}
