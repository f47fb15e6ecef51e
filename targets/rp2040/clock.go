//go:build rp2040

package rp2040

import (
	"machine"
	"runtime/volatile"
	"unsafe"

	"boardup/core"
)

// RP2040 Timer peripheral memory map
const (
	timerBase     = 0x40054000
	timerTIMERAWH = timerBase + 0x24 // Raw timer high word
	timerTIMERAWL = timerBase + 0x28 // Raw timer low word
)

var (
	timerRAWH = (*volatile.Register32)(unsafe.Pointer(uintptr(timerTIMERAWH)))
	timerRAWL = (*volatile.Register32)(unsafe.Pointer(uintptr(timerTIMERAWL)))
)

// Clock implements core.ClockDriver. The runtime brings the PLLs up
// before main, so the only supported plan is to keep what it chose.
type Clock struct{}

func (c *Clock) Apply(plan core.ClockPlan) error {
	if plan.Source != core.ClockInternal {
		return core.ErrClockSourceUnavailable
	}
	if plan.TargetHz != machine.CPUFrequency() {
		return core.ErrClockPlanInvalid
	}
	return nil
}

func (c *Clock) Frequency() uint32 {
	return machine.CPUFrequency()
}

// Uptime reads the 64-bit microsecond timer, which runs from the
// watchdog tick independently of the system clock.
func Uptime() uint64 {
	// Must read high first, then low, then high again to detect rollover
	for {
		high1 := timerRAWH.Get()
		low := timerRAWL.Get()
		high2 := timerRAWH.Get()

		if high1 == high2 {
			return (uint64(high1) << 32) | uint64(low)
		}
	}
}
