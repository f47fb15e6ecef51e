//go:build stm32f4

package stm32f4

import (
	"boardup/core"
	"boardup/targets/cortexm"
)

// New builds the HAL for an STM32F4 board with its debug channel on port.
func New(port core.SerialPort) *core.HAL {
	return &core.HAL{
		Clock:  &Clock{},
		GPIO:   &GPIO{},
		Serial: NewUSART(port),
		Tick:   &cortexm.SysTick{ReferenceIsDiv8: true},
		IRQ:    &cortexm.Controller{Bits: 4},
	}
}
