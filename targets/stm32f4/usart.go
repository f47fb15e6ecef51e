//go:build stm32f4

package stm32f4

import (
	"machine"
	"runtime/volatile"

	"boardup/core"
)

// USART register offsets
const (
	usart2Base = 0x40004400
	usart3Base = 0x40004800

	usartSR  = 0x00
	usartDR  = 0x04
	usartBRR = 0x08
	usartCR1 = 0x0C
	usartCR2 = 0x10
	usartCR3 = 0x14

	srTXE   = 1 << 7
	cr1UE   = 1 << 13
	cr1TE   = 1 << 3
	cr1RE   = 1 << 2
	cr1Mask = 1<<12 | 1<<10 | 1<<9 // M, PCE, PS
	cr2Stop = 0x3 << 12

	apb1USART2EN = 1 << 17
	apb1USART3EN = 1 << 18

	afUSART = 7
)

// USART implements core.SerialDriver for USART2 (PortA) or USART3
// (PortB). It never touches RXNEIE or the NVIC.
type USART struct {
	port  core.SerialPort
	base  uintptr
	clkEN uint32
}

// NewUSART returns the driver for the USART behind port.
func NewUSART(port core.SerialPort) *USART {
	if port == core.PortB {
		return &USART{port: port, base: usart3Base, clkEN: apb1USART3EN}
	}
	return &USART{port: port, base: usart2Base, clkEN: apb1USART2EN}
}

func (u *USART) r(off uintptr) *volatile.Register32 {
	return reg(u.base + off)
}

func (u *USART) Port() core.SerialPort { return u.port }

func (u *USART) EnableClock() {
	rccAPB1ENRReg.SetBits(u.clkEN)
	_ = rccAPB1ENRReg.Get() // Two-cycle delay after enabling a peripheral clock
}

func (u *USART) Disable() {
	u.r(usartCR1).ClearBits(cr1UE | cr1TE | cr1RE)
}

// RoutePins puts tx on alternate function 7. rx is left as it is.
func (u *USART) RoutePins(tx, rx core.GPIOPin, dir core.Direction) error {
	if dir != core.DirTX {
		return core.ErrReceiveNotRouted
	}
	machine.Pin(tx).ConfigureAltFunc(machine.PinConfig{Mode: machine.PinModeUARTTX}, afUSART)
	return nil
}

// CheckFormat validates cfg against the APB1 clock clockHz will produce.
func (u *USART) CheckFormat(cfg core.SerialConfig, clockHz uint32) error {
	_, _, err := usartFormat(cfg, apb1Hz(clockHz))
	return err
}

// SetFormat programs BRR from the APB1 clock in effect and the frame
// format. The peripheral must be disabled.
func (u *USART) SetFormat(cfg core.SerialConfig, clockHz uint32) error {
	brr, cr1, err := usartFormat(cfg, apb1Hz(clockHz))
	if err != nil {
		return err
	}
	u.r(usartBRR).Set(brr)
	u.r(usartCR1).Set(u.r(usartCR1).Get()&^cr1Mask | cr1)
	u.r(usartCR2).Set(u.r(usartCR2).Get()&^cr2Stop | stopBits(cfg.StopBits))
	u.r(usartCR3).Set(0) // No flow control, no DMA
	return nil
}

func (u *USART) Enable(dir core.Direction) {
	u.r(usartCR1).SetBits(cr1UE | cr1TE)
}

// WriteByte polls TXE then loads DR.
func (u *USART) WriteByte(b byte) error {
	if u.r(usartCR1).Get()&cr1UE == 0 {
		return core.ErrChannelDisabled
	}
	for u.r(usartSR).Get()&srTXE == 0 {
	}
	u.r(usartDR).Set(uint32(b))
	return nil
}
