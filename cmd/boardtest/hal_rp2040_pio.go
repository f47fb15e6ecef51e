//go:build tinygo && rp2040 && board_pio_uart

package main

import (
	"boardup/core"
	"boardup/targets/pio"
	"boardup/targets/rp2040"
)

func newHAL() *core.HAL {
	return rp2040.New(pio.NewUARTTX())
}

func uptimeMicros() uint64 {
	return rp2040.Uptime()
}
