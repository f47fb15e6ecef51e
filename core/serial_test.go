package core

import "testing"

func validSerial() SerialConfig {
	return SerialConfig{
		Port:     PortA,
		Baud:     57600,
		DataBits: 8,
		StopBits: 1,
		Parity:   ParityNone,
		TX:       2,
		RX:       3,
	}
}

func TestSerialConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*SerialConfig)
		wantErr error
	}{
		{"8N1 tx only", func(c *SerialConfig) {}, nil},
		{"7E2", func(c *SerialConfig) { c.DataBits, c.Parity, c.StopBits = 7, ParityEven, 2 }, nil},
		{"zero baud", func(c *SerialConfig) { c.Baud = 0 }, ErrInvalidBaud},
		{"6 data bits", func(c *SerialConfig) { c.DataBits = 6 }, ErrUnsupportedFormat},
		{"3 stop bits", func(c *SerialConfig) { c.StopBits = 3 }, ErrUnsupportedFormat},
		{"bad parity", func(c *SerialConfig) { c.Parity = 7 }, ErrUnsupportedFormat},
		{"flow control", func(c *SerialConfig) { c.FlowControl = FlowRTSCTS }, ErrUnsupportedFormat},
		{"receive", func(c *SerialConfig) { c.Direction = DirTXRX }, ErrReceiveNotRouted},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validSerial()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err != tt.wantErr {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestDivisorOversample16(t *testing.T) {
	tests := []struct {
		pclk, baud, want uint32
	}{
		{16_000_000, 57600, 278},
		{16_000_000, 115200, 139},
		{42_000_000, 57600, 729},
		{16_000_000, 0, 0},
		{16_000_000, 2_000_000, 0}, // below 16
		{16_000_000, 200, 0},       // above 0xFFFF
	}
	for _, tt := range tests {
		if got := DivisorOversample16(tt.pclk, tt.baud); got != tt.want {
			t.Errorf("DivisorOversample16(%d, %d) = %d, want %d", tt.pclk, tt.baud, got, tt.want)
		}
	}
}

func TestDivisorPL011(t *testing.T) {
	tests := []struct {
		clk, baud  uint32
		ibrd, fbrd uint32
	}{
		{125_000_000, 57600, 135, 41},
		{125_000_000, 115200, 67, 52},
		{125_000_000, 7_812_500, 1, 0}, // smallest divisor
		{125_000_000, 0, 0, 0},
		{125_000_000, 10_000_000, 0, 0}, // divisor below 1
		{125_000_000, 100, 0, 0},        // divisor past 65535
		{1000, 57600, 0, 0},
	}
	for _, tt := range tests {
		i, f := DivisorPL011(tt.clk, tt.baud)
		if i != tt.ibrd || f != tt.fbrd {
			t.Errorf("DivisorPL011(%d, %d) = %d.%d, want %d.%d", tt.clk, tt.baud, i, f, tt.ibrd, tt.fbrd)
		}
	}
}

func TestDivisorPIO(t *testing.T) {
	tests := []struct {
		sys, baud, cycles uint32
		whole             uint16
		frac              uint8
	}{
		{125_000_000, 57600, 8, 271, 68},
		{125_000_000, 15_625_000, 8, 1, 0}, // divider exactly 1
		{125_000_000, 20_000_000, 8, 0, 0}, // divider below 1
		{125_000_000, 200, 8, 0, 0},        // divider past 65535+255/256
		{1000, 1000, 8, 0, 0},
		{125_000_000, 0, 8, 0, 0},
		{125_000_000, 57600, 0, 0, 0},
	}
	for _, tt := range tests {
		whole, frac := DivisorPIO(tt.sys, tt.baud, tt.cycles)
		if whole != tt.whole || frac != tt.frac {
			t.Errorf("DivisorPIO(%d, %d, %d) = %d+%d/256, want %d+%d/256",
				tt.sys, tt.baud, tt.cycles, whole, frac, tt.whole, tt.frac)
		}
	}
}

func TestDebugChannelReceive(t *testing.T) {
	ch := &DebugChannel{}
	if _, err := ch.Read(make([]byte, 4)); err != ErrReceiveUnimplemented {
		t.Errorf("Read = %v, want %v", err, ErrReceiveUnimplemented)
	}
	if ch.Buffered() != 0 {
		t.Error("Buffered should always be zero")
	}
	if _, err := ch.Write([]byte("x")); err != ErrChannelDisabled {
		t.Errorf("Write on unconfigured channel = %v, want %v", err, ErrChannelDisabled)
	}
}
