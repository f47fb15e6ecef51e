package core

// TickDriver is the free-running down counter used as the kernel time base
// (SysTick on Cortex-M).
type TickDriver interface {
	// CounterBits is the reload register width.
	CounterBits() uint8

	Disable()
	SetReload(reload uint32)
	SelectClockSource(src TickClockSource)
	EnableInterrupt()
	Start()

	// Elapsed reports whether the counter wrapped since the last call.
	Elapsed() bool
}
