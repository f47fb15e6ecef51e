//go:build rp2040

package rp2040

import (
	"machine"

	"boardup/core"
)

// GPIO implements core.GPIODriver for the bank 0 pins.
type GPIO struct {
	// Track configured pins so SetPin on a stray pin is caught
	configured map[core.GPIOPin]machine.Pin
}

func NewGPIO() *GPIO {
	return &GPIO{configured: make(map[core.GPIOPin]machine.Pin)}
}

func (d *GPIO) ConfigureOutput(pin core.GPIOPin) error {
	p := machine.Pin(pin)
	p.Configure(machine.PinConfig{Mode: machine.PinOutput})
	d.configured[pin] = p
	return nil
}

func (d *GPIO) SetPin(pin core.GPIOPin, value bool) error {
	p, ok := d.configured[pin]
	if !ok {
		return errPinNotConfigured
	}
	p.Set(value)
	return nil
}

func (d *GPIO) GetPin(pin core.GPIOPin) (bool, error) {
	p, ok := d.configured[pin]
	if !ok {
		return false, errPinNotConfigured
	}
	return p.Get(), nil
}
