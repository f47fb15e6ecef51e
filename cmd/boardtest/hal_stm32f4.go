//go:build tinygo && stm32f4disco

package main

import (
	"boardup/boards"
	"boardup/core"
	"boardup/kernel"
	"boardup/targets/stm32f4"
)

func newHAL() *core.HAL {
	return stm32f4.New(boards.Active.Serial.Port)
}

// uptimeMicros is derived from the tick count; there is no free-running
// microsecond timer on this part.
func uptimeMicros() uint64 {
	return uint64(core.Ticks()) * 1_000_000 / kernel.TicksPerSecond
}
