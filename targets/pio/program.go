// Package pio implements a transmit-only debug UART on an RP2040 PIO
// state machine.
package pio

import "boardup/core"

// TX program layout. Every data bit takes cyclesPerBit state machine
// cycles, so the clock divider is sys / (baud * cyclesPerBit).
const (
	cyclesPerBit = 8
	dataBits     = 8
	loopAddr     = 3 // Offset of the bit loop inside the program
)

// txWord packs b for the FIFO: the low 3 bits load the bit counter, the
// next 8 are shifted out LSB first.
func txWord(b byte) uint32 {
	return uint32(b)<<3 | (dataBits - 1)
}

// txDivider checks that cfg is the 8N1 frame the program shifts and
// returns the state machine clock divider for sysHz.
func txDivider(cfg core.SerialConfig, sysHz uint32) (whole uint16, frac uint8, err error) {
	if cfg.DataBits != dataBits || cfg.StopBits != 1 || cfg.Parity != core.ParityNone {
		return 0, 0, core.ErrUnsupportedFormat
	}
	whole, frac = core.DivisorPIO(sysHz, cfg.Baud, cyclesPerBit)
	if whole == 0 {
		return 0, 0, core.ErrInvalidBaud
	}
	return whole, frac, nil
}
