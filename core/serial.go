package core

// SerialPort names one of the board's candidate debug ports. Which one is
// active is fixed at build time by the boards package.
type SerialPort uint8

const (
	PortA SerialPort = iota
	PortB
)

func (p SerialPort) String() string {
	if p == PortB {
		return "B"
	}
	return "A"
}

type Parity uint8

const (
	ParityNone Parity = iota
	ParityEven
	ParityOdd
)

func (p Parity) String() string {
	switch p {
	case ParityEven:
		return "even"
	case ParityOdd:
		return "odd"
	default:
		return "none"
	}
}

type FlowControl uint8

const (
	FlowNone FlowControl = iota
	FlowRTSCTS
)

// Direction is the set of paths routed to the peripheral.
type Direction uint8

const (
	DirTX   Direction = iota // transmit only
	DirTXRX                  // receive path: not implemented
)

// SerialConfig describes the debug channel.
type SerialConfig struct {
	Port        SerialPort
	Baud        uint32
	DataBits    uint8
	StopBits    uint8
	Parity      Parity
	FlowControl FlowControl
	Direction   Direction
	TX          GPIOPin
	RX          GPIOPin // documented wiring only, never routed
}

// Validate rejects configurations the channel cannot honour. Enabling the
// receiver is refused outright: the RX pin is never routed, and a receive
// interrupt would contend with the kernel's own interrupt-driven
// primitives.
func (c SerialConfig) Validate() error {
	if c.Baud == 0 {
		return ErrInvalidBaud
	}
	if c.DataBits < 7 || c.DataBits > 9 || c.StopBits < 1 || c.StopBits > 2 {
		return ErrUnsupportedFormat
	}
	if c.Parity > ParityOdd || c.FlowControl != FlowNone {
		return ErrUnsupportedFormat
	}
	if c.Direction != DirTX {
		return ErrReceiveNotRouted
	}
	return nil
}

// ConfigureSerial brings up the debug channel. The step order is fixed:
// clock domain, disable, pins, divisor and framing, enable. The
// peripheral is never enabled before it is configured, and a format the
// driver rejects leaves it untouched.
func ConfigureSerial(port SerialCap, cfg SerialConfig, clockHz uint32) (*DebugChannel, error) {
	if err := port.c.take(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	d := port.d
	if d.Port() != cfg.Port {
		return nil, ErrPortMismatch
	}
	if err := d.CheckFormat(cfg, clockHz); err != nil {
		return nil, err
	}

	d.EnableClock()
	d.Disable()
	if err := d.RoutePins(cfg.TX, cfg.RX, cfg.Direction); err != nil {
		return nil, err
	}
	if err := d.SetFormat(cfg, clockHz); err != nil {
		return nil, err
	}
	d.Enable(cfg.Direction)

	RegisterConstant("BAUD", cfg.Baud)
	return &DebugChannel{d: d, enabled: true}, nil
}

// DivisorOversample16 returns the USART BRR value for 16x oversampling,
// rounded to nearest. Zero means the rate is not reachable.
func DivisorOversample16(pclkHz, baud uint32) uint32 {
	if baud == 0 {
		return 0
	}
	div := (pclkHz + baud/2) / baud
	if div < 16 || div > 0xFFFF {
		return 0
	}
	return div
}

// DivisorPL011 returns the integer and 6-bit fractional baud divisors for
// an ARM PL011 UART, rounded to nearest. Zero means the rate is not
// reachable: the divisor must lie between 1 and 65535.
func DivisorPL011(uartClkHz, baud uint32) (ibrd, fbrd uint32) {
	if baud == 0 {
		return 0, 0
	}
	div := uint64(8) * uint64(uartClkHz) / uint64(baud)
	ibrd = uint32(div >> 7)
	fbrd = uint32((div&0x7F)+1) / 2
	if fbrd == 64 {
		ibrd, fbrd = ibrd+1, 0
	}
	if ibrd == 0 || ibrd > 0xFFFF || (ibrd == 0xFFFF && fbrd != 0) {
		return 0, 0
	}
	return ibrd, fbrd
}

// DivisorPIO returns the 16.8 fixed-point state machine clock divider for
// a PIO program spending cyclesPerBit cycles per bit. Zero means the rate
// is not reachable: the divider must lie between 1 and 65535+255/256.
func DivisorPIO(sysHz, baud, cyclesPerBit uint32) (whole uint16, frac uint8) {
	if baud == 0 || cyclesPerBit == 0 {
		return 0, 0
	}
	div := uint64(sysHz) * 256 / (uint64(baud) * uint64(cyclesPerBit))
	if div < 256 || div>>8 > 0xFFFF {
		return 0, 0
	}
	return uint16(div >> 8), uint8(div & 0xFF)
}
