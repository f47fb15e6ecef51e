//go:build !tinygo

package core

var kernelTicks uint32

// getTicks returns the kernel tick count (regular Go implementation)
func getTicks() uint32 {
	return kernelTicks
}

// addTick advances the kernel tick count (regular Go implementation)
func addTick() uint32 {
	kernelTicks++
	return kernelTicks
}
