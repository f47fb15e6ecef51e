//go:build !tinygo

package core

// State is a placeholder for interrupt state on regular Go
type State uintptr

// disableInterrupts is a no-op on regular Go (for testing)
func disableInterrupts() State {
	return 0
}

// restoreInterrupts is a no-op on regular Go (for testing)
func restoreInterrupts(state State) {
	// No-op
}

// Halt stops bring-up after an unrecoverable failure. On the host it
// panics so tests and the simulator surface the failure.
func Halt(status Status, err error) {
	if err != nil {
		panic("bring-up halted at " + status.String() + ": " + err.Error())
	}
	panic("bring-up halted at " + status.String())
}
