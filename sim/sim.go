// Package sim is a simulated board for running bring-up on the host.
// Every register-level operation is appended to a shared Trace so tests
// can assert ordering, and invariant violations are collected as Faults.
package sim

import (
	"golang.org/x/exp/slices"

	"boardup/core"
)

// Op is one register-level operation.
type Op struct {
	Periph string
	Action string
	Value  uint32
}

func (o Op) String() string {
	return o.Periph + "." + o.Action + "(" + utoa(o.Value) + ")"
}

// Trace is the ordered operation log shared by all simulated peripherals.
type Trace struct {
	ops    []Op
	faults []string
}

func (t *Trace) record(periph, action string, value uint32) {
	t.ops = append(t.ops, Op{Periph: periph, Action: action, Value: value})
}

func (t *Trace) fault(msg string) {
	t.faults = append(t.faults, msg)
}

// Ops returns a copy of the log.
func (t *Trace) Ops() []Op {
	return slices.Clone(t.ops)
}

// Faults returns invariant violations seen so far.
func (t *Trace) Faults() []string {
	return slices.Clone(t.faults)
}

// Index returns the position of the first periph.action, or -1.
func (t *Trace) Index(periph, action string) int {
	return slices.IndexFunc(t.ops, func(o Op) bool {
		return o.Periph == periph && o.Action == action
	})
}

// Actions lists the actions recorded for periph, in order.
func (t *Trace) Actions(periph string) []string {
	var out []string
	for _, o := range t.ops {
		if o.Periph == periph {
			out = append(out, o.Action)
		}
	}
	return out
}

// Periphs lists peripherals in the order they were first touched.
func (t *Trace) Periphs() []string {
	var out []string
	for _, o := range t.ops {
		if !slices.Contains(out, o.Periph) {
			out = append(out, o.Periph)
		}
	}
	return out
}

// Options shapes the simulated part.
type Options struct {
	ResetHz            uint32 // internal oscillator, default 16 MHz
	ExternalOscillator bool   // crystal fitted and starts
	Port               core.SerialPort
	BusDivider         uint32 // serial bus clock = core clock / BusDivider
	PriorityBits       uint8  // default 4
	CounterBits        uint8  // default 24
}

// Board is a complete simulated HAL.
type Board struct {
	Trace  *Trace
	Clock  *Clock
	GPIO   *GPIO
	Serial *Serial
	Tick   *Tick
	IRQ    *IRQ
}

// New builds a simulated board in its reset state: interrupts unmasked,
// internal oscillator running, every peripheral disabled.
func New(opts Options) *Board {
	if opts.ResetHz == 0 {
		opts.ResetHz = 16_000_000
	}
	if opts.BusDivider == 0 {
		opts.BusDivider = 1
	}
	if opts.PriorityBits == 0 {
		opts.PriorityBits = 4
	}
	if opts.CounterBits == 0 {
		opts.CounterBits = 24
	}
	tr := &Trace{}
	irq := &IRQ{tr: tr, bits: opts.PriorityBits, prio: make(map[core.SystemException]uint8)}
	clk := &Clock{tr: tr, hz: opts.ResetHz, resetHz: opts.ResetHz, xtal: opts.ExternalOscillator}
	return &Board{
		Trace:  tr,
		Clock:  clk,
		GPIO:   &GPIO{tr: tr, out: make(map[core.GPIOPin]bool), level: make(map[core.GPIOPin]bool)},
		Serial: &Serial{tr: tr, port: opts.Port, busDiv: opts.BusDivider},
		Tick:   &Tick{tr: tr, irq: irq, bits: opts.CounterBits},
		IRQ:    irq,
	}
}

// HAL exposes the board as core drivers.
func (b *Board) HAL() *core.HAL {
	return &core.HAL{
		Clock:  b.Clock,
		GPIO:   b.GPIO,
		Serial: b.Serial,
		Tick:   b.Tick,
		IRQ:    b.IRQ,
	}
}

// utoa keeps the package free of fmt, like the firmware side.
func utoa(n uint32) string {
	if n == 0 {
		return "0"
	}
	var buf [10]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}
