//go:build tinygo && rp2040 && !board_pio_uart

package main

import (
	"boardup/core"
	"boardup/targets/rp2040"
)

func newHAL() *core.HAL {
	return rp2040.New(&rp2040.UART0{})
}

func uptimeMicros() uint64 {
	return rp2040.Uptime()
}
