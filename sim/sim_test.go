package sim

import (
	"testing"

	"boardup/core"
)

func TestPriorityBitsMasked(t *testing.T) {
	b := New(Options{PriorityBits: 4})
	b.IRQ.SetSystemPriority(core.ExcPendSV, 0xFF)
	b.IRQ.SetSystemPriority(core.ExcSysTick, 0xFE)
	// Only the top four bits exist, so both land on the same level.
	if b.IRQ.SystemPriority(core.ExcPendSV) != b.IRQ.SystemPriority(core.ExcSysTick) {
		t.Fatalf("0xFF and 0xFE should collapse on 4 bits: %#x %#x",
			b.IRQ.SystemPriority(core.ExcPendSV), b.IRQ.SystemPriority(core.ExcSysTick))
	}

	b = New(Options{PriorityBits: 2})
	b.IRQ.SetSystemPriority(core.ExcPendSV, 0xE0)
	if got := b.IRQ.SystemPriority(core.ExcPendSV); got != 0xC0 {
		t.Errorf("2-bit readback = %#x, want 0xc0", got)
	}
}

func TestClockRollback(t *testing.T) {
	plan := core.ClockPlan{
		Source: core.ClockExternal, TargetHz: 168_000_000,
		InputHz: 8_000_000, PLLM: 8, PLLN: 336, PLLP: 2,
	}
	b := New(Options{})
	if err := b.Clock.Apply(plan); err != core.ErrClockSourceUnavailable {
		t.Fatalf("err = %v", err)
	}
	if b.Clock.Frequency() != 16_000_000 {
		t.Errorf("frequency after rollback = %d", b.Clock.Frequency())
	}
	if b.Trace.Index("clock", "rollback") == -1 {
		t.Error("rollback not recorded")
	}

	b = New(Options{ExternalOscillator: true})
	if err := b.Clock.Apply(plan); err != nil {
		t.Fatal(err)
	}
	if b.Clock.Frequency() != 168_000_000 {
		t.Errorf("frequency = %d", b.Clock.Frequency())
	}
}

func TestSerialWriteBeforeEnable(t *testing.T) {
	b := New(Options{})
	if err := b.Serial.WriteByte('x'); err != core.ErrChannelDisabled {
		t.Errorf("err = %v, want %v", err, core.ErrChannelDisabled)
	}
	b.Serial.Enable(core.DirTX)
	if len(b.Trace.Faults()) != 1 {
		t.Errorf("enable before configuration should fault: %v", b.Trace.Faults())
	}
}

func TestTickFaultsWhenArmedUnmasked(t *testing.T) {
	b := New(Options{})
	b.Tick.EnableInterrupt()
	b.Tick.Start()
	if len(b.Trace.Faults()) != 1 {
		t.Errorf("faults = %v", b.Trace.Faults())
	}
	b.Tick.Advance(2)
	if !b.Tick.Elapsed() || !b.Tick.Elapsed() || b.Tick.Elapsed() {
		t.Error("Elapsed should report exactly two periods")
	}
}

func TestGPIOUnconfiguredWrite(t *testing.T) {
	b := New(Options{})
	_ = b.GPIO.SetPin(25, true)
	if len(b.Trace.Faults()) != 1 {
		t.Errorf("faults = %v", b.Trace.Faults())
	}
	_ = b.GPIO.ConfigureOutput(25)
	_ = b.GPIO.SetPin(25, false)
	if level, driven := b.GPIO.Level(25); level || !driven {
		t.Errorf("level=%v driven=%v", level, driven)
	}
}

func TestOpString(t *testing.T) {
	op := Op{Periph: "tick", Action: "reload", Value: 16000}
	if op.String() != "tick.reload(16000)" {
		t.Errorf("got %q", op.String())
	}
}
