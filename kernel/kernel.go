// Package kernel declares what the board layer needs from the RTOS and
// what it promises in return.
//
// The kernel calls core.BoardSetup exactly once, before its scheduler
// starts, and receives the board with interrupts still masked. The tick
// counter is already armed and PendSV sits at the lowest priority with
// SysTick one level above it. Restoring the first thread is the only
// place interrupts get unmasked; from that point the SysTick handler
// should call core.CountTick and the context-switch trigger should pend
// PendSV.
package kernel

// TicksPerSecond is the kernel time base.
const TicksPerSecond = 1000
