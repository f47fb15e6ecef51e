package core

// ClockSource selects the oscillator feeding the core clock.
type ClockSource uint8

const (
	ClockInternal ClockSource = iota // reset-default RC oscillator
	ClockExternal                    // crystal through the PLL
)

func (s ClockSource) String() string {
	switch s {
	case ClockExternal:
		return "external"
	default:
		return "internal"
	}
}

// ClockPlan describes the desired core clock. For ClockInternal only
// TargetHz is meaningful and must equal the reset frequency.
type ClockPlan struct {
	Source   ClockSource
	TargetHz uint32

	// PLL chain for ClockExternal: TargetHz = InputHz / PLLM * PLLN / PLLP
	InputHz uint32
	PLLM    uint32
	PLLN    uint32
	PLLP    uint32
}

// PLLOutputHz computes the frequency the PLL chain would produce.
func (p ClockPlan) PLLOutputHz() uint32 {
	if p.PLLM == 0 || p.PLLP == 0 {
		return 0
	}
	return uint32(uint64(p.InputHz) / uint64(p.PLLM) * uint64(p.PLLN) / uint64(p.PLLP))
}

// Validate checks the plan is self-consistent before any register is
// touched.
func (p ClockPlan) Validate() error {
	if p.TargetHz == 0 {
		return ErrClockPlanInvalid
	}
	if p.Source == ClockExternal && p.PLLOutputHz() != p.TargetHz {
		return ErrClockPlanInvalid
	}
	return nil
}

// ConfigureClock applies plan and returns the frequency now in effect, as
// reported by the driver after the switch. Downstream divisor math must
// use this value, not plan.TargetHz.
func ConfigureClock(clk ClockCap, plan ClockPlan) (uint32, error) {
	if err := clk.c.take(); err != nil {
		return 0, err
	}
	if err := plan.Validate(); err != nil {
		return 0, err
	}
	if err := clk.d.Apply(plan); err != nil {
		return 0, err
	}
	hz := clk.d.Frequency()
	if hz == 0 {
		return 0, ErrClockSourceUnavailable
	}
	RegisterConstant("CLOCK_FREQ", hz)
	return hz, nil
}
