//go:build tinygo

package core

import "runtime/interrupt"

// disableInterrupts disables interrupts and returns the previous state
func disableInterrupts() interrupt.State {
	return interrupt.Disable()
}

// restoreInterrupts restores the interrupt state
func restoreInterrupts(state interrupt.State) {
	interrupt.Restore(state)
}

// Halt stops the board after an unrecoverable bring-up failure. There is
// no retry: recovering would need the primitives bring-up failed to
// create. The failing step is reported once if a debug writer exists.
func Halt(status Status, err error) {
	interrupt.Disable()
	msg := "[BOOT] halt step=" + status.String()
	if err != nil {
		msg += " err=" + err.Error()
	}
	if debugPrintln != nil {
		debugPrintln(msg)
	}
	for {
	}
}
