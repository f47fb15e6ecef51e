package core

// HAL bundles the platform drivers a target provides. Target code builds
// one HAL and hands it to TakePeripherals; nothing else should keep a
// reference to the drivers.
type HAL struct {
	Clock  ClockDriver
	GPIO   GPIODriver
	Serial SerialDriver
	Tick   TickDriver
	IRQ    InterruptController

	taken bool
}

// claim marks a capability as consumed. A capability may configure its
// peripheral exactly once.
type claim struct {
	used bool
}

func (c *claim) take() error {
	if c == nil {
		return ErrCapabilityMissing
	}
	if c.used {
		return ErrCapabilityUsed
	}
	c.used = true
	return nil
}

// ClockCap grants exclusive access to the clock tree.
type ClockCap struct {
	d ClockDriver
	c *claim
}

// GPIOCap grants exclusive access to the indicator outputs.
type GPIOCap struct {
	d GPIODriver
	c *claim
}

// SerialCap grants exclusive access to the debug serial port.
type SerialCap struct {
	d SerialDriver
	c *claim
}

// TickCap grants exclusive access to the tick counter.
type TickCap struct {
	d TickDriver
	c *claim
}

// IRQCap grants exclusive access to the interrupt mask and system
// priority registers.
type IRQCap struct {
	d InterruptController
	c *claim
}

// Peripherals holds one capability per peripheral the bring-up touches.
type Peripherals struct {
	Clock  ClockCap
	GPIO   GPIOCap
	Serial SerialCap
	Tick   TickCap
	IRQ    IRQCap
}

// TakePeripherals converts h into capability tokens. It panics if h was
// already taken or is missing a driver: both are wiring bugs in target
// code.
func TakePeripherals(h *HAL) *Peripherals {
	if h == nil {
		panic("HAL not configured")
	}
	if h.taken {
		panic("peripherals already taken")
	}
	if h.Clock == nil || h.GPIO == nil || h.Serial == nil || h.Tick == nil || h.IRQ == nil {
		panic("HAL incomplete")
	}
	h.taken = true
	return &Peripherals{
		Clock:  ClockCap{d: h.Clock, c: &claim{}},
		GPIO:   GPIOCap{d: h.GPIO, c: &claim{}},
		Serial: SerialCap{d: h.Serial, c: &claim{}},
		Tick:   TickCap{d: h.Tick, c: &claim{}},
		IRQ:    IRQCap{d: h.IRQ, c: &claim{}},
	}
}

// Mask sets the global interrupt mask. It does not consume the capability.
func (c IRQCap) Mask() {
	if c.d == nil {
		panic("interrupt controller not configured")
	}
	c.d.Mask()
}

// Masked reports the global interrupt mask state.
func (c IRQCap) Masked() bool {
	if c.d == nil {
		panic("interrupt controller not configured")
	}
	return c.d.Masked()
}
