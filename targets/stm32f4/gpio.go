//go:build stm32f4

package stm32f4

import (
	"machine"

	"boardup/core"
)

// GPIO implements core.GPIODriver with machine.Pin. Pins are numbered
// port*16 + n, so PD12 is 60.
type GPIO struct{}

func (g *GPIO) ConfigureOutput(pin core.GPIOPin) error {
	machine.Pin(pin).Configure(machine.PinConfig{Mode: machine.PinOutput})
	return nil
}

func (g *GPIO) SetPin(pin core.GPIOPin, value bool) error {
	machine.Pin(pin).Set(value)
	return nil
}

func (g *GPIO) GetPin(pin core.GPIOPin) (bool, error) {
	return machine.Pin(pin).Get(), nil
}
