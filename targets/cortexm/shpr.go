// Package cortexm drives the parts of the Cortex-M core every board
// shares: the SysTick counter, the system handler priority registers and
// the PRIMASK interrupt mask.
package cortexm

import "boardup/core"

// System handler priority registers, one byte per exception, starting at
// exception 4 (MemManage) in SHPR1.
const (
	shprBase = 0xE000ED18
)

// shprLocation returns the word address and bit shift holding exc's
// priority byte. Cortex-M0+ only supports word access to these registers,
// so every write is a read-modify-write of the whole word.
func shprLocation(exc core.SystemException) (addr uintptr, shift uint32) {
	n := uint32(exc) - 4
	return uintptr(shprBase + 4*(n/4)), 8 * (n % 4)
}

// replaceByte returns word with the byte at shift replaced by b.
func replaceByte(word uint32, shift uint32, b uint8) uint32 {
	return word&^(0xFF<<shift) | uint32(b)<<shift
}

// implemented keeps only the priority bits the silicon stores.
func implemented(prio uint8, bits uint8) uint8 {
	return prio & uint8(0xFF<<(8-bits))
}
