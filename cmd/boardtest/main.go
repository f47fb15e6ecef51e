//go:build tinygo && (stm32f4disco || rp2040)

// Command boardtest is a kernel-less firmware image that runs board
// bring-up and then proves it worked: it stays masked, polls the tick
// counter and blinks the indicator with a heartbeat on the debug channel.
package main

import (
	"strconv"

	"boardup/boards"
	"boardup/core"
	"boardup/kernel"
)

// heartbeatTicks is the blink half-period.
const heartbeatTicks = kernel.TicksPerSecond / 2

func main() {
	p := core.TakePeripherals(newHAL())

	h, err := core.BoardSetup(p, boards.Active)
	if err != nil {
		core.Halt(h.Status, err)
	}

	core.SetDebugEnabled(true)
	core.DumpStepRing()

	// Interrupts stay masked: there is no thread to switch to. The tick
	// still sets COUNTFLAG every period, so poll it.
	for {
		if !h.Tick.Elapsed() {
			continue
		}
		n := core.CountTick()
		if n%heartbeatTicks != 0 {
			continue
		}
		core.ToggleIndicator()
		h.Debug.Println("[BEAT] ticks=" + strconv.FormatUint(uint64(n), 10) +
			" us=" + strconv.FormatUint(uptimeMicros(), 10))
	}
}
