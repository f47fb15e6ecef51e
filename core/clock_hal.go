package core

// ClockDriver programs the core clock tree.
type ClockDriver interface {
	// Apply switches to plan. On failure the previously running source
	// must still be selected.
	Apply(plan ClockPlan) error

	// Frequency reports the core clock currently in effect.
	Frequency() uint32
}
