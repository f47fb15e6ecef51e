//go:build tinygo

package core

import "sync/atomic"

var kernelTicks uint32

// getTicks returns the kernel tick count
func getTicks() uint32 {
	return atomic.LoadUint32(&kernelTicks)
}

// addTick advances the kernel tick count; safe from the tick handler
func addTick() uint32 {
	return atomic.AddUint32(&kernelTicks, 1)
}
