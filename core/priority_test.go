package core

import "testing"

func TestPriorityEncode(t *testing.T) {
	tests := []struct {
		name    string
		enc     PriorityEncoding
		level   Level
		want    uint8
		wantErr error
	}{
		{"M4 lowest", EncodingCortexM4, LevelLowest, 0xF0, nil},
		{"M4 low", EncodingCortexM4, LevelLow, 0xE0, nil},
		{"M4 highest", EncodingCortexM4, LevelHighest, 0x00, nil},
		{"M4 out of range", EncodingCortexM4, 16, 0, ErrLevelOutOfRange},
		{"M0+ lowest", EncodingCortexM0P, LevelLowest, 0xC0, nil},
		{"M0+ low", EncodingCortexM0P, LevelLow, 0x80, nil},
		{"M0+ out of range", EncodingCortexM0P, 4, 0, ErrLevelOutOfRange},
		{"8 bits lowest", PriorityEncoding{Bits: 8}, LevelLowest, 0xFF, nil},
		{"8 bits low", PriorityEncoding{Bits: 8}, LevelLow, 0xFE, nil},
		{"no bits", PriorityEncoding{}, LevelLowest, 0, ErrEncodingUnsupported},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.enc.Encode(tt.level)
			if err != tt.wantErr {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Encode(%d) = %#x, want %#x", tt.level, got, tt.want)
			}
		})
	}
}

// 0xFF and 0xFE differ only in bits a 4-bit part does not implement.
func TestPriorityDecodeIgnoresUnimplementedBits(t *testing.T) {
	enc := EncodingCortexM4
	if enc.Decode(0xFF) != enc.Decode(0xFE) {
		t.Fatal("0xFF and 0xFE should decode to the same level on 4 bits")
	}
	if enc.Decode(0xF0) != LevelLowest || enc.Decode(0xE0) != LevelLow {
		t.Errorf("Decode round trip failed: %d %d", enc.Decode(0xF0), enc.Decode(0xE0))
	}
}

func TestPriorityAssignmentNative(t *testing.T) {
	for _, enc := range []PriorityEncoding{EncodingCortexM4, EncodingCortexM0P, {Bits: 1}, {Bits: 8}} {
		cs, tick, err := DefaultAssignment.Native(enc)
		if err != nil {
			t.Fatalf("bits=%d: %v", enc.Bits, err)
		}
		// Numerically larger is less urgent: the tick must preempt the switch.
		if cs <= tick {
			t.Errorf("bits=%d: context switch %#x not below tick %#x", enc.Bits, cs, tick)
		}
		if enc.Decode(cs) != LevelLowest || enc.Decode(tick) != LevelLow {
			t.Errorf("bits=%d: levels not adjacent", enc.Bits)
		}
	}
}

func TestPriorityAssignmentOrder(t *testing.T) {
	bad := []PriorityAssignment{
		{ContextSwitch: LevelLow, Tick: LevelLowest},
		{ContextSwitch: LevelLowest, Tick: LevelLowest},
		{ContextSwitch: LevelLowest, Tick: 2},
	}
	for _, a := range bad {
		if _, _, err := a.Native(EncodingCortexM4); err != ErrPriorityOrder {
			t.Errorf("%+v: err = %v, want %v", a, err, ErrPriorityOrder)
		}
	}
}

func TestCheckReserved(t *testing.T) {
	if err := CheckReserved(map[string]Level{"usb": 3, "dma": 5}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := CheckReserved(map[string]Level{"usb": 3, "uart": LevelLow}); err != ErrPriorityReserved {
		t.Errorf("tick level: err = %v, want %v", err, ErrPriorityReserved)
	}
	if err := CheckReserved(map[string]Level{"adc": LevelLowest}); err != ErrPriorityReserved {
		t.Errorf("switch level: err = %v, want %v", err, ErrPriorityReserved)
	}
	if err := CheckReserved(nil); err != nil {
		t.Errorf("empty set: %v", err)
	}
}

func TestSystemExceptionString(t *testing.T) {
	if ExcPendSV.String() != "PendSV" || ExcSysTick.String() != "SysTick" {
		t.Error("unexpected exception names")
	}
	if SystemException(3).String() != "exc3" {
		t.Errorf("got %q", SystemException(3).String())
	}
}
