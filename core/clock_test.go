package core

import "testing"

func TestClockPlanValidate(t *testing.T) {
	tests := []struct {
		name string
		plan ClockPlan
		ok   bool
	}{
		{"internal 16MHz", ClockPlan{Source: ClockInternal, TargetHz: 16_000_000}, true},
		{"internal no target", ClockPlan{Source: ClockInternal}, false},
		{"HSE to 168MHz", ClockPlan{
			Source: ClockExternal, TargetHz: 168_000_000,
			InputHz: 8_000_000, PLLM: 8, PLLN: 336, PLLP: 2,
		}, true},
		{"PLL disagrees with target", ClockPlan{
			Source: ClockExternal, TargetHz: 180_000_000,
			InputHz: 8_000_000, PLLM: 8, PLLN: 336, PLLP: 2,
		}, false},
		{"PLL divider zero", ClockPlan{
			Source: ClockExternal, TargetHz: 168_000_000, InputHz: 8_000_000, PLLN: 336,
		}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.plan.Validate(); (err == nil) != tt.ok {
				t.Errorf("Validate() = %v, want ok=%v", err, tt.ok)
			}
		})
	}
}

type fixedClock struct {
	hz      uint32
	applied int
}

func (c *fixedClock) Apply(ClockPlan) error { c.applied++; return nil }
func (c *fixedClock) Frequency() uint32     { return c.hz }

func TestConfigureClockReportsDriverFrequency(t *testing.T) {
	ResetConstants()
	drv := &fixedClock{hz: 15_990_000}
	clk := ClockCap{d: drv, c: &claim{}}
	hz, err := ConfigureClock(clk, ClockPlan{Source: ClockInternal, TargetHz: 16_000_000})
	if err != nil {
		t.Fatal(err)
	}
	if hz != 15_990_000 {
		t.Errorf("got %d, want the driver's measured frequency", hz)
	}
	if v, ok := LookupConstant("CLOCK_FREQ"); !ok || v != hz {
		t.Errorf("CLOCK_FREQ = %d (%v)", v, ok)
	}
	if _, err := ConfigureClock(clk, ClockPlan{Source: ClockInternal, TargetHz: 16_000_000}); err != ErrCapabilityUsed {
		t.Errorf("second configure: err = %v, want %v", err, ErrCapabilityUsed)
	}
	if drv.applied != 1 {
		t.Errorf("Apply called %d times", drv.applied)
	}
}

func TestConfigureClockZeroFrequency(t *testing.T) {
	clk := ClockCap{d: &fixedClock{}, c: &claim{}}
	if _, err := ConfigureClock(clk, ClockPlan{Source: ClockInternal, TargetHz: 16_000_000}); err != ErrClockSourceUnavailable {
		t.Errorf("err = %v, want %v", err, ErrClockSourceUnavailable)
	}
}
