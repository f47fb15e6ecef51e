//go:build cortexm

package cortexm

import (
	"runtime/volatile"
	"unsafe"

	"boardup/core"
)

// SysTick memory map
const (
	systBase = 0xE000E010
	systCSR  = systBase + 0x00 // Control and status
	systRVR  = systBase + 0x04 // Reload value
	systCVR  = systBase + 0x08 // Current value

	csrEnable    = 1 << 0
	csrTickInt   = 1 << 1
	csrClkSource = 1 << 2 // 1 = processor clock, 0 = external reference
	csrCountFlag = 1 << 16
)

var (
	systCSRReg = (*volatile.Register32)(unsafe.Pointer(uintptr(systCSR)))
	systRVRReg = (*volatile.Register32)(unsafe.Pointer(uintptr(systRVR)))
	systCVRReg = (*volatile.Register32)(unsafe.Pointer(uintptr(systCVR)))
)

// SysTick implements core.TickDriver.
type SysTick struct {
	// ReferenceIsDiv8 is true on parts whose external SysTick reference is
	// the core clock divided by 8 (STM32F4). On the RP2040 it is the
	// 1 us watchdog tick instead.
	ReferenceIsDiv8 bool
}

func (s *SysTick) CounterBits() uint8 { return 24 }

func (s *SysTick) Disable() {
	systCSRReg.ClearBits(csrEnable | csrTickInt)
}

// SetReload loads the reload register and clears the current value so the
// first period is a full one. The counter wraps through zero, so the
// period is reload+1 counts; a clock/rate reload gives one extra count.
func (s *SysTick) SetReload(reload uint32) {
	systRVRReg.Set(reload)
	systCVRReg.Set(0)
}

func (s *SysTick) SelectClockSource(src core.TickClockSource) {
	switch src {
	case core.TickClockProcessor:
		systCSRReg.SetBits(csrClkSource)
	case core.TickClockProcessorDiv8:
		if !s.ReferenceIsDiv8 {
			panic("systick: reference clock is not processor/8 on this part")
		}
		systCSRReg.ClearBits(csrClkSource)
	}
}

func (s *SysTick) EnableInterrupt() {
	systCSRReg.SetBits(csrTickInt)
}

func (s *SysTick) Start() {
	systCSRReg.SetBits(csrEnable)
}

// Elapsed reads COUNTFLAG, which the hardware clears on read.
func (s *SysTick) Elapsed() bool {
	return systCSRReg.Get()&csrCountFlag != 0
}
