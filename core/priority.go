package core

// SystemException numbers the Cortex-M system handlers whose priority is
// set through the SHPR registers.
type SystemException uint8

const (
	ExcSVCall  SystemException = 11
	ExcPendSV  SystemException = 14
	ExcSysTick SystemException = 15
)

func (e SystemException) String() string {
	switch e {
	case ExcSVCall:
		return "SVCall"
	case ExcPendSV:
		return "PendSV"
	case ExcSysTick:
		return "SysTick"
	default:
		return "exc" + utoa(uint32(e))
	}
}

// Level is a platform-neutral execution priority, counted upward from the
// lowest level the platform supports.
type Level uint8

const (
	LevelLowest  Level = 0
	LevelLow     Level = 1
	LevelHighest Level = 0xFF
)

// PriorityEncoding maps Levels onto a platform's native priority byte:
// larger numbers are less urgent and only the top Bits bits exist.
type PriorityEncoding struct {
	Bits uint8
}

// Cortex-M encodings for the supported parts.
var (
	EncodingCortexM4  = PriorityEncoding{Bits: 4} // STM32F4
	EncodingCortexM0P = PriorityEncoding{Bits: 2} // RP2040
)

// Levels is the number of distinct priorities the encoding can express.
func (e PriorityEncoding) Levels() int {
	return 1 << e.Bits
}

func (e PriorityEncoding) valid() bool {
	return e.Bits >= 1 && e.Bits <= 8
}

// Encode returns the native priority byte for l.
func (e PriorityEncoding) Encode(l Level) (uint8, error) {
	if !e.valid() {
		return 0, ErrEncodingUnsupported
	}
	if l == LevelHighest {
		return 0, nil
	}
	n := e.Levels()
	if int(l) >= n {
		return 0, ErrLevelOutOfRange
	}
	return uint8((n - 1 - int(l)) << (8 - e.Bits)), nil
}

// Decode maps a native priority byte back to a Level. Unimplemented low
// bits are ignored.
func (e PriorityEncoding) Decode(native uint8) Level {
	n := e.Levels()
	return Level(n - 1 - int(native>>(8-e.Bits)))
}

// PriorityAssignment is the ordered pair the kernel depends on: the
// context-switch interrupt at the lowest level and the tick directly
// above it, so a tick can preempt a pending switch but never the reverse.
type PriorityAssignment struct {
	ContextSwitch Level
	Tick          Level
}

// DefaultAssignment is the only ordering the kernel port accepts.
var DefaultAssignment = PriorityAssignment{
	ContextSwitch: LevelLowest,
	Tick:          LevelLow,
}

// Native resolves the pair under enc after checking the ordering.
func (a PriorityAssignment) Native(enc PriorityEncoding) (contextSwitch, tick uint8, err error) {
	if a.ContextSwitch != LevelLowest || a.Tick != LevelLow {
		return 0, 0, ErrPriorityOrder
	}
	if contextSwitch, err = enc.Encode(a.ContextSwitch); err != nil {
		return 0, 0, err
	}
	if tick, err = enc.Encode(a.Tick); err != nil {
		return 0, 0, err
	}
	if contextSwitch <= tick {
		return 0, 0, ErrPriorityCollision
	}
	return contextSwitch, tick, nil
}

// AssignPriorities writes the context-switch (PendSV) and tick (SysTick)
// priorities and reads them back. A read-back mismatch means the encoding
// does not match the silicon, which would silently merge the two levels.
func AssignPriorities(irq IRQCap, enc PriorityEncoding, a PriorityAssignment) error {
	if err := irq.c.take(); err != nil {
		return err
	}
	if enc.Bits != irq.d.PriorityBits() {
		return ErrEncodingUnsupported
	}
	cs, tick, err := a.Native(enc)
	if err != nil {
		return err
	}

	irq.d.SetSystemPriority(ExcPendSV, cs)
	irq.d.SetSystemPriority(ExcSysTick, tick)

	if irq.d.SystemPriority(ExcPendSV) != cs || irq.d.SystemPriority(ExcSysTick) != tick {
		return ErrPriorityCollision
	}

	RegisterConstant("PRIO_PENDSV", uint32(cs))
	RegisterConstant("PRIO_SYSTICK", uint32(tick))
	return nil
}

// CheckReserved verifies no other interrupt shares a level reserved for
// the context switch or the tick. BoardSetup runs it before any priority
// is written.
func CheckReserved(others map[string]Level) error {
	for _, l := range others {
		if l == DefaultAssignment.ContextSwitch || l == DefaultAssignment.Tick {
			return ErrPriorityReserved
		}
	}
	return nil
}
