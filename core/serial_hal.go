package core

// SerialDriver controls one asynchronous serial peripheral. The port it
// drives is fixed when the driver is constructed.
type SerialDriver interface {
	Port() SerialPort

	// CheckFormat reports whether cfg can be programmed at clockHz
	// (framing and a reachable divisor) without touching any register.
	CheckFormat(cfg SerialConfig, clockHz uint32) error

	// EnableClock enables the GPIO and peripheral clock domains.
	EnableClock()

	// Disable stops the peripheral so it can be reconfigured.
	Disable()

	// RoutePins hands tx (and rx when dir is DirTXRX) to the peripheral's
	// alternate function.
	RoutePins(tx, rx GPIOPin, dir Direction) error

	// SetFormat programs divisor and framing. clockHz is the effective
	// core clock; the driver derives its own bus clock from it.
	SetFormat(cfg SerialConfig, clockHz uint32) error

	// Enable starts the peripheral for the given direction.
	Enable(dir Direction)

	// WriteByte blocks until the transmit register accepts b.
	WriteByte(b byte) error
}
