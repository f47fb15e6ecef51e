// Package stm32f4 provides the bring-up drivers for STM32F4 parts: the
// RCC clock tree, USART2/USART3 as the debug channel and GPIO indicators.
package stm32f4

import "boardup/core"

// pllOutput is in / m * n / p, zero for an unprogrammed PLL.
func pllOutput(in, m, n, p uint32) uint32 {
	if m == 0 || p == 0 {
		return 0
	}
	return uint32(uint64(in) / uint64(m) * uint64(n) / uint64(p))
}

// apbShift decodes a PPREx field: 0xx is /1, 100 is /2 up to 111 is /16.
func apbShift(ppre uint32) uint32 {
	if ppre&0x4 == 0 {
		return 0
	}
	return (ppre & 0x3) + 1
}

// USART_CR1 framing bits for a SerialConfig. Word length 9 is used for
// 8 data bits plus parity.
func framing(dataBits uint8, parity uint8) (cr1 uint32, ok bool) {
	const (
		cr1M   = 1 << 12
		cr1PCE = 1 << 10
		cr1PS  = 1 << 9
	)
	bits := dataBits
	if parity != 0 {
		cr1 |= cr1PCE
		if parity == 2 {
			cr1 |= cr1PS
		}
		bits++
	}
	switch bits {
	case 8:
	case 9:
		cr1 |= cr1M
	default:
		return 0, false
	}
	return cr1, true
}

// stopBits maps 1 or 2 stop bits to USART_CR2 STOP.
func stopBits(n uint8) uint32 {
	if n == 2 {
		return 0x2 << 12
	}
	return 0
}

// usartFormat resolves BRR and the CR1 framing bits for cfg on a bus
// clocked at pclkHz.
func usartFormat(cfg core.SerialConfig, pclkHz uint32) (brr, cr1 uint32, err error) {
	brr = core.DivisorOversample16(pclkHz, cfg.Baud)
	if brr == 0 {
		return 0, 0, core.ErrInvalidBaud
	}
	cr1, ok := framing(cfg.DataBits, uint8(cfg.Parity))
	if !ok {
		return 0, 0, core.ErrUnsupportedFormat
	}
	return brr, cr1, nil
}
