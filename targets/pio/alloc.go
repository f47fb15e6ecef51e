//go:build rp2040

package pio

import (
	rp2pio "github.com/tinygo-org/pio/rp2-pio"
)

// allocateSM claims the first free state machine, scanning PIO0 then
// PIO1. The RP2040 has 2 PIO blocks with 4 state machines each.
func allocateSM() (*rp2pio.PIO, rp2pio.StateMachine, bool) {
	for _, block := range []*rp2pio.PIO{rp2pio.PIO0, rp2pio.PIO1} {
		for i := uint8(0); i < 4; i++ {
			sm := block.StateMachine(i)
			if sm.TryClaim() {
				return block, sm, true
			}
		}
	}
	return nil, rp2pio.StateMachine{}, false
}
