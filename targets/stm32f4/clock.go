//go:build stm32f4

package stm32f4

import (
	"runtime/volatile"
	"unsafe"

	"boardup/core"
)

// RCC and FLASH memory map
const (
	rccBase      = 0x40023800
	rccCR        = rccBase + 0x00
	rccPLLCFGR   = rccBase + 0x04
	rccCFGR      = rccBase + 0x08
	rccAPB1ENR   = rccBase + 0x40
	flashACR     = 0x40023C00
	hsiHz        = 16_000_000
	hseHz        = 8_000_000 // Discovery crystal
	readyTimeout = 100_000   // Polls before an oscillator or PLL is declared dead
)

// RCC_CR bits
const (
	crHSION  = 1 << 0
	crHSIRDY = 1 << 1
	crHSEON  = 1 << 16
	crHSERDY = 1 << 17
	crPLLON  = 1 << 24
	crPLLRDY = 1 << 25
)

// RCC_CFGR fields
const (
	cfgrSWMask    = 0x3
	cfgrSWHSI     = 0x0
	cfgrSWPLL     = 0x2
	cfgrSWSShift  = 2
	cfgrPPRE1Pos  = 10
	cfgrPPRE2Pos  = 13
	cfgrPPREMask  = 0x7
	cfgrPPREDiv2  = 0x4
	cfgrPPREDiv4  = 0x5
	pllcfgrSrcHSE = 1 << 22
	pllQ48MHz     = 7
)

// FLASH_ACR: five wait states at 168 MHz and 3.3 V, with prefetch and
// both caches on.
const (
	acrLatencyMask = 0xF
	acrLatency168  = 5
	acrPrefetch    = 1 << 8
	acrICache      = 1 << 9
	acrDCache      = 1 << 10
)

var (
	rccCRReg      = reg(rccCR)
	rccPLLCFGRReg = reg(rccPLLCFGR)
	rccCFGRReg    = reg(rccCFGR)
	rccAPB1ENRReg = reg(rccAPB1ENR)
	flashACRReg   = reg(flashACR)
)

func reg(addr uintptr) *volatile.Register32 {
	return (*volatile.Register32)(unsafe.Pointer(addr))
}

// Clock implements core.ClockDriver for the RCC.
type Clock struct{}

// Apply switches the system clock. ClockInternal selects HSI with the
// bus dividers at their reset value. ClockExternal starts the crystal and
// PLL; if either never reports ready everything it turned on is turned
// off again and the previous source stays selected.
func (c *Clock) Apply(plan core.ClockPlan) error {
	switch plan.Source {
	case core.ClockInternal:
		if plan.TargetHz != hsiHz {
			return core.ErrClockPlanInvalid
		}
		return selectHSI()
	case core.ClockExternal:
		if plan.InputHz != hseHz {
			return core.ErrClockPlanInvalid
		}
		return selectPLL(plan)
	}
	return core.ErrClockPlanInvalid
}

// Frequency derives SYSCLK from the switch status and PLL registers.
func (c *Clock) Frequency() uint32 {
	return sysclkHz()
}

func waitFor(r *volatile.Register32, mask uint32) bool {
	for i := 0; i < readyTimeout; i++ {
		if r.Get()&mask != 0 {
			return true
		}
	}
	return false
}

func switchStatus() uint32 {
	return (rccCFGRReg.Get() >> cfgrSWSShift) & cfgrSWMask
}

func switchTo(sw uint32) bool {
	rccCFGRReg.ReplaceBits(sw, cfgrSWMask, 0)
	for i := 0; i < readyTimeout; i++ {
		if switchStatus() == sw {
			return true
		}
	}
	return false
}

func selectHSI() error {
	rccCRReg.SetBits(crHSION)
	if !waitFor(rccCRReg, crHSIRDY) {
		return core.ErrClockSourceUnavailable
	}
	if !switchTo(cfgrSWHSI) {
		return core.ErrClockSourceUnavailable
	}
	rccCFGRReg.ReplaceBits(0, cfgrPPREMask, cfgrPPRE1Pos)
	rccCFGRReg.ReplaceBits(0, cfgrPPREMask, cfgrPPRE2Pos)
	return nil
}

func selectPLL(plan core.ClockPlan) error {
	prevACR := flashACRReg.Get()

	rccCRReg.SetBits(crHSEON)
	if !waitFor(rccCRReg, crHSERDY) {
		rccCRReg.ClearBits(crHSEON)
		return core.ErrClockSourceUnavailable
	}

	// The PLL cannot be reprogrammed while it feeds SYSCLK.
	if switchStatus() == cfgrSWPLL && !switchTo(cfgrSWHSI) {
		rccCRReg.ClearBits(crHSEON)
		return core.ErrClockSourceUnavailable
	}
	rccCRReg.ClearBits(crPLLON)

	rccPLLCFGRReg.Set(plan.PLLM |
		plan.PLLN<<6 |
		(plan.PLLP/2-1)<<16 |
		pllcfgrSrcHSE |
		pllQ48MHz<<24)
	rccCRReg.SetBits(crPLLON)
	if !waitFor(rccCRReg, crPLLRDY) {
		rccCRReg.ClearBits(crPLLON | crHSEON)
		return core.ErrClockSourceUnavailable
	}

	// Slow the flash and the buses down before speeding the core up.
	flashACRReg.Set(prevACR&^acrLatencyMask | acrLatency168 | acrPrefetch | acrICache | acrDCache)
	rccCFGRReg.ReplaceBits(cfgrPPREDiv4, cfgrPPREMask, cfgrPPRE1Pos)
	rccCFGRReg.ReplaceBits(cfgrPPREDiv2, cfgrPPREMask, cfgrPPRE2Pos)

	if !switchTo(cfgrSWPLL) {
		flashACRReg.Set(prevACR)
		rccCRReg.ClearBits(crPLLON | crHSEON)
		return core.ErrClockSourceUnavailable
	}
	return nil
}

func sysclkHz() uint32 {
	switch switchStatus() {
	case 0:
		return hsiHz
	case 1:
		return hseHz
	case cfgrSWPLL:
		cfg := rccPLLCFGRReg.Get()
		in := uint32(hsiHz)
		if cfg&pllcfgrSrcHSE != 0 {
			in = hseHz
		}
		return pllOutput(in, cfg&0x3F, (cfg>>6)&0x1FF, ((cfg>>16)&0x3+1)*2)
	}
	return 0
}

// apb1Hz is the USART2/USART3 kernel clock.
func apb1Hz(sysHz uint32) uint32 {
	return sysHz >> apbShift((rccCFGRReg.Get()>>cfgrPPRE1Pos)&cfgrPPREMask)
}
