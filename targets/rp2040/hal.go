//go:build rp2040

package rp2040

import (
	"errors"

	"boardup/core"
	"boardup/targets/cortexm"
)

var errPinNotConfigured = errors.New("pin_not_configured")

// New builds the HAL for an RP2040 board. serial is the debug channel
// driver: UART0 for PortA or a PIO transmitter for PortB.
func New(serial core.SerialDriver) *core.HAL {
	return &core.HAL{
		Clock:  &Clock{},
		GPIO:   NewGPIO(),
		Serial: serial,
		Tick:   &cortexm.SysTick{},
		IRQ:    &cortexm.Controller{Bits: 2},
	}
}
