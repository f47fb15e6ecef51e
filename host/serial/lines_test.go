package serial

import (
	"context"
	"strings"
	"testing"
)

func TestReadLines(t *testing.T) {
	input := "[BOOT] stm32f4disco usart2\r\n[BOOT] CLOCK_FREQ=16000000 BAUD=57600\r\n[BEAT] ticks=500 us=500000\r\npartial"
	out := make(chan Line, 8)
	if err := ReadLines(context.Background(), strings.NewReader(input), out, false); err != nil {
		t.Fatal(err)
	}

	var got []Line
	for l := range out {
		got = append(got, l)
	}
	want := []Line{
		{Text: "[BOOT] stm32f4disco usart2", Boot: true},
		{Text: "[BOOT] CLOCK_FREQ=16000000 BAUD=57600", Boot: true},
		{Text: "[BEAT] ticks=500 us=500000"},
		{Text: "partial"},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d lines: %+v", len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestReadLinesCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	out := make(chan Line)
	if err := ReadLines(ctx, strings.NewReader("x\n"), out, true); err != context.Canceled {
		t.Errorf("err = %v, want %v", err, context.Canceled)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig("/dev/ttyUSB0")
	if cfg.Baud != 57600 || cfg.Device != "/dev/ttyUSB0" || cfg.DataBits != 8 || cfg.StopBits != 1 {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestOpenRejectsBadConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  *Config
	}{
		{"nil", nil},
		{"zero baud", &Config{Device: "/dev/null"}},
		{"three stop bits", &Config{Device: "/dev/null", Baud: DebugBaud, StopBits: 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Open(tt.cfg); err == nil {
				t.Error("expected error")
			}
		})
	}
}
