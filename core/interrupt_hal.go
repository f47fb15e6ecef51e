package core

// InterruptController owns the global interrupt mask and the system
// exception priority registers.
type InterruptController interface {
	// Mask disables all configurable-priority interrupts (PRIMASK).
	Mask()

	// Masked reports the current global mask state.
	Masked() bool

	// PriorityBits is the number of implemented priority bits.
	PriorityBits() uint8

	SetSystemPriority(exc SystemException, prio uint8)

	// SystemPriority reads back the stored priority; unimplemented low
	// bits read as zero.
	SystemPriority(exc SystemException) uint8
}
