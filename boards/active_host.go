//go:build !stm32f4disco && !rp2040

package boards

// Active is the Discovery layout when building for the host.
var Active = Discovery
