package core

// GPIOPin identifies a hardware GPIO pin number.
// STM32 targets encode port*16+pin (PA0 = 0, PD12 = 60); RP2040 uses the
// plain GPIO number.
type GPIOPin uint32

// GPIODriver is the abstract GPIO interface that core code uses.
// Platform-specific implementations handle actual hardware control.
type GPIODriver interface {
	// ConfigureOutput configures a pin as a push-pull digital output
	// Returns error if pin is invalid
	ConfigureOutput(pin GPIOPin) error

	// SetPin sets the pin to high (true) or low (false)
	SetPin(pin GPIOPin, value bool) error

	// GetPin reads the level present on the pin
	GetPin(pin GPIOPin) (bool, error)
}
