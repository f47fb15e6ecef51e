//go:build cortexm

package cortexm

import (
	"device/arm"
	"runtime/interrupt"
	"runtime/volatile"
	"unsafe"

	"boardup/core"
)

// Controller implements core.InterruptController on top of PRIMASK and
// the SHPR registers.
type Controller struct {
	// Bits is the number of implemented priority bits: 4 on STM32F4, 2 on
	// the RP2040.
	Bits uint8
}

func shpr(exc core.SystemException) (*volatile.Register32, uint32) {
	addr, shift := shprLocation(exc)
	return (*volatile.Register32)(unsafe.Pointer(addr)), shift
}

// Mask sets PRIMASK. The previous state is dropped: bring-up never
// restores it, the kernel does at first-thread restore.
func (c *Controller) Mask() {
	_ = interrupt.Disable()
}

// Masked reads PRIMASK.
func (c *Controller) Masked() bool {
	return arm.AsmFull("mrs {}, PRIMASK", nil)&1 != 0
}

func (c *Controller) PriorityBits() uint8 { return c.Bits }

func (c *Controller) SetSystemPriority(exc core.SystemException, prio uint8) {
	reg, shift := shpr(exc)
	reg.Set(replaceByte(reg.Get(), shift, prio))
}

func (c *Controller) SystemPriority(exc core.SystemException) uint8 {
	reg, shift := shpr(exc)
	return implemented(uint8(reg.Get()>>shift), c.Bits)
}
