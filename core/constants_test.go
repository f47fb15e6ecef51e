package core

import "testing"

func TestConstantsRegistry(t *testing.T) {
	ResetConstants()
	RegisterConstant("CLOCK_FREQ", 16_000_000)
	RegisterConstant("BAUD", 57600)
	RegisterConstant("CLOCK_FREQ", 168_000_000)

	if got := FormatConstants(); got != "CLOCK_FREQ=168000000 BAUD=57600" {
		t.Errorf("FormatConstants() = %q", got)
	}
	if v, ok := LookupConstant("BAUD"); !ok || v != 57600 {
		t.Errorf("BAUD = %d (%v)", v, ok)
	}
	if _, ok := LookupConstant("MISSING"); ok {
		t.Error("unregistered constant found")
	}
	if len(Constants()) != 2 {
		t.Errorf("got %d constants", len(Constants()))
	}
	ResetConstants()
	if FormatConstants() != "" {
		t.Error("reset left constants behind")
	}
}

func TestStepRing(t *testing.T) {
	ClearStepRing()
	RecordStep(StepMask, 1, false)
	RecordStep(StepClock, 16_000_000, true)

	evts := StepEvents()
	if len(evts) != 2 {
		t.Fatalf("got %d events", len(evts))
	}
	if evts[0].Step != StepMask || evts[1].Step != StepClock || !evts[1].Failed {
		t.Errorf("events = %+v", evts)
	}

	var lines []string
	SetDebugWriter(func(s string) { lines = append(lines, s) })
	defer SetDebugWriter(nil)
	DumpStepRing()
	if len(lines) != 4 || lines[2] != "[BOOT] #1 clock v=16000000 FAILED" {
		t.Errorf("dump = %q", lines)
	}

	for i := 0; i < StepRingSize+3; i++ {
		RecordStep(StepTick, uint32(i), false)
	}
	if got := len(StepEvents()); got != StepRingSize {
		t.Errorf("ring holds %d events, want %d", got, StepRingSize)
	}
	ClearStepRing()
}

func TestDebugPrintlnGated(t *testing.T) {
	var n int
	SetDebugWriter(func(string) { n++ })
	defer SetDebugWriter(nil)
	SetDebugEnabled(false)
	DebugPrintln("x")
	SetDebugEnabled(true)
	DebugPrintln("y")
	SetDebugEnabled(false)
	if n != 1 {
		t.Errorf("writer called %d times, want 1", n)
	}
}

func TestUtoa(t *testing.T) {
	tests := []struct {
		in   uint32
		want string
	}{
		{0, "0"},
		{7, "7"},
		{57600, "57600"},
		{4294967295, "4294967295"},
	}
	for _, tt := range tests {
		if got := utoa(tt.in); got != tt.want {
			t.Errorf("utoa(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
