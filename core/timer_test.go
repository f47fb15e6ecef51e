package core

import "testing"

func TestReloadValue(t *testing.T) {
	tests := []struct {
		name    string
		clockHz uint32
		tps     uint32
		want    uint32
		wantErr error
	}{
		{"16MHz at 1kHz", 16_000_000, 1000, 16000, nil},
		{"16MHz at 100Hz", 16_000_000, 100, 160000, nil},
		{"168MHz at 1kHz", 168_000_000, 1000, 168000, nil},
		{"125MHz at 1kHz", 125_000_000, 1000, 125000, nil},
		{"truncates", 16_000_000, 3, 5333333, nil},
		{"zero rate", 16_000_000, 0, 0, ErrInvalidTickRate},
		{"rate above clock", 500, 1000, 0, ErrReloadOutOfRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReloadValue(tt.clockHz, tt.tps)
			if err != tt.wantErr {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ReloadValue(%d, %d) = %d, want %d", tt.clockHz, tt.tps, got, tt.want)
			}
		})
	}
}

func TestReloadValueDeterministic(t *testing.T) {
	first, _ := ReloadValue(16_000_000, 1000)
	for i := 0; i < 10; i++ {
		got, _ := ReloadValue(16_000_000, 1000)
		if got != first {
			t.Fatalf("run %d: got %d, want %d", i, got, first)
		}
	}
}

func TestCheckReload(t *testing.T) {
	tests := []struct {
		reload uint32
		bits   uint8
		ok     bool
	}{
		{16000, 24, true},
		{0xFFFFFF, 24, true},
		{0x1000000, 24, false},
		{168_000_000, 24, false},
		{0, 24, false},
		{0xFFFFFFFF, 32, true},
	}
	for _, tt := range tests {
		err := checkReload(tt.reload, tt.bits)
		if (err == nil) != tt.ok {
			t.Errorf("checkReload(%#x, %d) = %v, want ok=%v", tt.reload, tt.bits, err, tt.ok)
		}
	}
}

func TestCounterInputHz(t *testing.T) {
	if got := counterInputHz(16_000_000, TickClockProcessor); got != 16_000_000 {
		t.Errorf("processor source = %d", got)
	}
	if got := counterInputHz(16_000_000, TickClockProcessorDiv8); got != 2_000_000 {
		t.Errorf("processor/8 source = %d", got)
	}
}

func TestCountTick(t *testing.T) {
	start := Ticks()
	CountTick()
	CountTick()
	if got := Ticks() - start; got != 2 {
		t.Errorf("counted %d ticks, want 2", got)
	}
}
