package sim

import (
	"boardup/core"
)

// Clock simulates an internal oscillator plus an optional crystal/PLL.
type Clock struct {
	tr      *Trace
	hz      uint32
	resetHz uint32
	xtal    bool
}

func (c *Clock) Apply(plan core.ClockPlan) error {
	switch plan.Source {
	case core.ClockInternal:
		c.tr.record("clock", "keep_internal", c.hz)
		if plan.TargetHz != c.resetHz {
			return core.ErrClockPlanInvalid
		}
		return nil
	case core.ClockExternal:
		c.tr.record("clock", "hse_on", plan.InputHz)
		if !c.xtal {
			// Oscillator never reports ready: turn it back off and stay on
			// the internal source.
			c.tr.record("clock", "hse_timeout", 0)
			c.tr.record("clock", "rollback", c.hz)
			return core.ErrClockSourceUnavailable
		}
		c.tr.record("clock", "pll", plan.PLLOutputHz())
		c.tr.record("clock", "switch", plan.PLLOutputHz())
		c.hz = plan.PLLOutputHz()
		return nil
	}
	return core.ErrClockPlanInvalid
}

func (c *Clock) Frequency() uint32 { return c.hz }

// GPIO simulates push-pull outputs. Unconfigured pins float.
type GPIO struct {
	tr    *Trace
	out   map[core.GPIOPin]bool
	level map[core.GPIOPin]bool
}

func (g *GPIO) ConfigureOutput(pin core.GPIOPin) error {
	g.tr.record("gpio", "output", uint32(pin))
	g.out[pin] = true
	return nil
}

func (g *GPIO) SetPin(pin core.GPIOPin, value bool) error {
	if !g.out[pin] {
		g.tr.fault("gpio: set on unconfigured pin " + utoa(uint32(pin)))
	}
	if value {
		g.tr.record("gpio", "high", uint32(pin))
	} else {
		g.tr.record("gpio", "low", uint32(pin))
	}
	g.level[pin] = value
	return nil
}

func (g *GPIO) GetPin(pin core.GPIOPin) (bool, error) {
	return g.level[pin], nil
}

// Level reports the driven level and whether the pin is an output.
func (g *GPIO) Level(pin core.GPIOPin) (level, driven bool) {
	return g.level[pin], g.out[pin]
}

// Serial simulates a USART with 16x oversampling on a divided bus clock.
type Serial struct {
	tr     *Trace
	port   core.SerialPort
	busDiv uint32

	clocked   bool
	enabled   bool
	routedTX  bool
	routedRX  bool
	formatted bool
	divisor   uint32
	out       []byte
}

func (s *Serial) Port() core.SerialPort { return s.port }

func (s *Serial) EnableClock() {
	s.tr.record("serial", "clock_enable", uint32(s.port))
	s.clocked = true
}

func (s *Serial) Disable() {
	s.tr.record("serial", "disable", 0)
	s.enabled = false
}

func (s *Serial) RoutePins(tx, rx core.GPIOPin, dir core.Direction) error {
	if !s.clocked {
		s.tr.fault("serial: pins routed before clock enable")
	}
	s.tr.record("serial", "route_tx", uint32(tx))
	s.routedTX = true
	if dir == core.DirTXRX {
		s.tr.record("serial", "route_rx", uint32(rx))
		s.routedRX = true
	}
	return nil
}

// CheckFormat accepts 8 or 9 bit words including parity, like a USART.
func (s *Serial) CheckFormat(cfg core.SerialConfig, clockHz uint32) error {
	_, err := s.format(cfg, clockHz)
	return err
}

func (s *Serial) format(cfg core.SerialConfig, clockHz uint32) (uint32, error) {
	word := cfg.DataBits
	if cfg.Parity != core.ParityNone {
		word++
	}
	if word != 8 && word != 9 {
		return 0, core.ErrUnsupportedFormat
	}
	div := core.DivisorOversample16(clockHz/s.busDiv, cfg.Baud)
	if div == 0 {
		return 0, core.ErrInvalidBaud
	}
	return div, nil
}

func (s *Serial) SetFormat(cfg core.SerialConfig, clockHz uint32) error {
	if s.enabled {
		s.tr.fault("serial: format changed while enabled")
	}
	div, err := s.format(cfg, clockHz)
	if err != nil {
		s.tr.fault("serial: unsupported format reached the hardware")
		return err
	}
	s.tr.record("serial", "format", div)
	s.divisor = div
	s.formatted = true
	return nil
}

func (s *Serial) Enable(dir core.Direction) {
	if !s.routedTX || !s.formatted {
		s.tr.fault("serial: enabled before configuration")
	}
	if dir == core.DirTXRX && !s.routedRX {
		s.tr.fault("serial: receiver enabled without routed rx pin")
	}
	s.tr.record("serial", "enable", uint32(dir))
	s.enabled = true
}

func (s *Serial) WriteByte(b byte) error {
	if !s.enabled {
		return core.ErrChannelDisabled
	}
	s.out = append(s.out, b)
	return nil
}

// Divisor is the programmed baud divisor.
func (s *Serial) Divisor() uint32 { return s.divisor }

// Output is everything transmitted so far.
func (s *Serial) Output() string { return string(s.out) }

// Tick simulates SysTick.
type Tick struct {
	tr   *Trace
	irq  *IRQ
	bits uint8

	reload  uint32
	source  core.TickClockSource
	intr    bool
	running bool
	pending int
}

func (t *Tick) CounterBits() uint8 { return t.bits }

func (t *Tick) Disable() {
	t.tr.record("tick", "disable", 0)
	t.running = false
}

func (t *Tick) SetReload(reload uint32) {
	t.tr.record("tick", "reload", reload)
	t.reload = reload
}

func (t *Tick) SelectClockSource(src core.TickClockSource) {
	t.tr.record("tick", "source", uint32(src))
	t.source = src
}

func (t *Tick) EnableInterrupt() {
	t.tr.record("tick", "int_enable", 0)
	t.intr = true
}

func (t *Tick) Start() {
	if t.intr && !t.irq.masked {
		t.tr.fault("tick: armed with interrupts unmasked")
	}
	t.tr.record("tick", "start", t.reload)
	t.running = true
}

func (t *Tick) Elapsed() bool {
	if t.pending == 0 {
		return false
	}
	t.pending--
	return true
}

// Advance lets n tick periods pass.
func (t *Tick) Advance(n int) {
	if t.running {
		t.pending += n
	}
}

// Reload is the programmed reload value.
func (t *Tick) Reload() uint32 { return t.reload }

// Source is the selected counter clock.
func (t *Tick) Source() core.TickClockSource { return t.source }

// Running reports whether the counter was started.
func (t *Tick) Running() bool { return t.running }

// IRQ simulates PRIMASK and the system handler priority registers.
type IRQ struct {
	tr     *Trace
	masked bool
	bits   uint8
	prio   map[core.SystemException]uint8
}

func (i *IRQ) Mask() {
	i.tr.record("irq", "mask", 1)
	i.masked = true
}

// Unmask stands in for the kernel's first-thread restore.
func (i *IRQ) Unmask() {
	i.tr.record("irq", "unmask", 0)
	i.masked = false
}

func (i *IRQ) Masked() bool { return i.masked }

func (i *IRQ) PriorityBits() uint8 { return i.bits }

func (i *IRQ) SetSystemPriority(exc core.SystemException, prio uint8) {
	i.tr.record("irq", "prio_"+exc.String(), uint32(prio))
	i.prio[exc] = prio & implementedMask(i.bits)
}

func (i *IRQ) SystemPriority(exc core.SystemException) uint8 {
	return i.prio[exc]
}

// implementedMask keeps the top bits of a priority byte.
func implementedMask(bits uint8) uint8 {
	return uint8(0xFF << (8 - bits))
}
