package pio

import (
	"testing"

	"boardup/core"
)

func TestTXWord(t *testing.T) {
	tests := []struct {
		b    byte
		want uint32
	}{
		{0x00, 0x007},
		{0xFF, 0x7FF},
		{'A', 0x41<<3 | 7},
	}
	for _, tt := range tests {
		w := txWord(tt.b)
		if w != tt.want {
			t.Errorf("txWord(%#x) = %#x, want %#x", tt.b, w, tt.want)
		}
		// out x, 3 then eight out pins, 1
		if w&0x7 != dataBits-1 || byte(w>>3) != tt.b {
			t.Errorf("txWord(%#x) does not unpack", tt.b)
		}
	}
}

func TestTXDivider(t *testing.T) {
	cfg := core.SerialConfig{Baud: 57600, DataBits: 8, StopBits: 1}
	tests := []struct {
		name    string
		mutate  func(*core.SerialConfig)
		whole   uint16
		frac    uint8
		wantErr error
	}{
		{"57600", func(c *core.SerialConfig) {}, 271, 68, nil},
		{"above sys/8", func(c *core.SerialConfig) { c.Baud = 20_000_000 }, 0, 0, core.ErrInvalidBaud},
		{"even parity", func(c *core.SerialConfig) { c.Parity = core.ParityEven }, 0, 0, core.ErrUnsupportedFormat},
		{"two stop bits", func(c *core.SerialConfig) { c.StopBits = 2 }, 0, 0, core.ErrUnsupportedFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := cfg
			tt.mutate(&c)
			whole, frac, err := txDivider(c, 125_000_000)
			if err != tt.wantErr || whole != tt.whole || frac != tt.frac {
				t.Errorf("txDivider = %d+%d/256 %v, want %d+%d/256 %v", whole, frac, err, tt.whole, tt.frac, tt.wantErr)
			}
		})
	}
}
