// Package rp2040 provides the bring-up drivers for the RP2040: the
// runtime-owned clock, UART0 as the debug channel and GPIO indicators.
package rp2040

import "boardup/core"

// lineControl builds UARTLCR_H for cfg with the FIFOs enabled. The PL011
// supports 5 to 8 data bits, so 9 is rejected.
func lineControl(cfg core.SerialConfig) (uint32, bool) {
	const (
		pen   = 1 << 1
		eps   = 1 << 2
		stp2  = 1 << 3
		fen   = 1 << 4
		wlenS = 5
	)
	if cfg.DataBits < 5 || cfg.DataBits > 8 {
		return 0, false
	}
	v := uint32(cfg.DataBits-5)<<wlenS | fen
	switch cfg.Parity {
	case core.ParityEven:
		v |= pen | eps
	case core.ParityOdd:
		v |= pen
	}
	if cfg.StopBits == 2 {
		v |= stp2
	}
	return v, true
}

// uartFormat resolves the divisors and UARTLCR_H for cfg at clkHz.
func uartFormat(cfg core.SerialConfig, clkHz uint32) (ibrd, fbrd, lcrh uint32, err error) {
	lcrh, ok := lineControl(cfg)
	if !ok {
		return 0, 0, 0, core.ErrUnsupportedFormat
	}
	ibrd, fbrd = core.DivisorPL011(clkHz, cfg.Baud)
	if ibrd == 0 {
		return 0, 0, 0, core.ErrInvalidBaud
	}
	return ibrd, fbrd, lcrh, nil
}
