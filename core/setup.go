package core

// Step identifies one stage of bring-up.
type Step uint8

const (
	StepNone Step = iota
	StepMask
	StepClock
	StepIndicators
	StepSerial
	StepTick
	StepPriorities
	StepDone
)

func (s Step) String() string {
	switch s {
	case StepMask:
		return "mask"
	case StepClock:
		return "clock"
	case StepIndicators:
		return "indicators"
	case StepSerial:
		return "serial"
	case StepTick:
		return "tick"
	case StepPriorities:
		return "priorities"
	case StepDone:
		return "done"
	default:
		return "none"
	}
}

// Status is the bring-up result code. Zero is success; anything else
// names the step that failed and is fatal.
type Status uint8

const (
	StatusOK Status = iota
	StatusClockFailed
	StatusIndicatorsFailed
	StatusSerialFailed
	StatusTickFailed
	StatusPrioritiesFailed
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusClockFailed:
		return "clock"
	case StatusIndicatorsFailed:
		return "indicators"
	case StatusSerialFailed:
		return "serial"
	case StatusTickFailed:
		return "tick"
	case StatusPrioritiesFailed:
		return "priorities"
	default:
		return "unknown"
	}
}

// Board is the fixed configuration of one board variant. Values are
// built at compile time and discarded after bring-up; the registers hold
// the durable state.
type Board struct {
	Name       string
	Clock      ClockPlan
	Indicators []IndicatorPin
	Serial     SerialConfig
	Tick       TickConfig
	Priorities PriorityAssignment
	Encoding   PriorityEncoding

	// Interrupts lists the other sources the application enables and the
	// level each runs at. None may share a level with PendSV or SysTick.
	Interrupts map[string]Level

	// Banner is written to the debug channel once bring-up succeeds.
	Banner string
}

// Handoff is what bring-up leaves for the kernel and diagnostic code.
type Handoff struct {
	Status    Status
	ClockHz   uint32
	Indicator *Indicator
	Debug     *DebugChannel
	Tick      *TickTimer
}

// BoardSetup brings the board from reset to the state the kernel needs
// before its first context switch. The order is fixed:
//
//  1. mask interrupts
//  2. clock
//  3. indicator outputs
//  4. debug serial channel
//  5. tick timer (armed, cannot fire while masked)
//  6. PendSV/SysTick priorities
//  7. return with interrupts still masked
//
// BoardSetup never unmasks. The kernel does that when it restores its
// first thread. Any failure is returned with a non-OK status and must be
// treated as fatal; nothing is retried.
func BoardSetup(p *Peripherals, b Board) (Handoff, error) {
	if p == nil {
		panic("peripherals not taken")
	}
	var h Handoff

	p.IRQ.Mask()
	RecordStep(StepMask, 1, false)

	hz, err := ConfigureClock(p.Clock, b.Clock)
	RecordStep(StepClock, hz, err != nil)
	if err != nil {
		h.Status = StatusClockFailed
		return h, err
	}
	h.ClockHz = hz

	ind, err := ConfigureIndicators(p.GPIO, b.Indicators)
	RecordStep(StepIndicators, uint32(len(b.Indicators)), err != nil)
	if err != nil {
		h.Status = StatusIndicatorsFailed
		return h, err
	}
	h.Indicator = ind

	ch, err := ConfigureSerial(p.Serial, b.Serial, hz)
	RecordStep(StepSerial, b.Serial.Baud, err != nil)
	if err != nil {
		h.Status = StatusSerialFailed
		return h, err
	}
	h.Debug = ch
	if debugPrintln == nil {
		SetDebugWriter(ch.Println)
	}

	tick, err := ConfigureTickTimer(p.Tick, p.IRQ, hz, b.Tick)
	if err != nil {
		RecordStep(StepTick, 0, true)
		h.Status = StatusTickFailed
		return h, err
	}
	RecordStep(StepTick, tick.Reload, false)
	h.Tick = tick

	err = CheckReserved(b.Interrupts)
	if err == nil {
		err = AssignPriorities(p.IRQ, b.Encoding, b.Priorities)
	}
	RecordStep(StepPriorities, uint32(b.Encoding.Bits), err != nil)
	if err != nil {
		h.Status = StatusPrioritiesFailed
		return h, err
	}

	RecordStep(StepDone, 0, false)
	if b.Banner != "" {
		ch.Println(b.Banner)
	}
	ch.Println("[BOOT] " + FormatConstants())
	DebugPrintln("[BOOT] board=" + b.Name + " masked, handing off")

	h.Status = StatusOK
	return h, nil
}
