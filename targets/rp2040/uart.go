//go:build rp2040

package rp2040

import (
	"machine"
	"runtime/volatile"
	"unsafe"

	"boardup/core"
)

// RESETS and UART0 memory map
const (
	resetsBase     = 0x4000C000
	resetsClr      = resetsBase + 0x3000 // Atomic clear alias of RESET
	resetsDone     = resetsBase + 0x08
	resetsUART0Bit = 1 << 22

	uart0Base = 0x40034000
	uartDR    = uart0Base + 0x00
	uartFR    = uart0Base + 0x18
	uartIBRD  = uart0Base + 0x24
	uartFBRD  = uart0Base + 0x28
	uartLCRH  = uart0Base + 0x2C
	uartCR    = uart0Base + 0x30
	uartIMSC  = uart0Base + 0x38
)

// UART flag and control bits
const (
	frTXFF   = 1 << 5
	crUARTEN = 1 << 0
	crTXE    = 1 << 8
	crRXE    = 1 << 9
)

var (
	resetsClrReg  = (*volatile.Register32)(unsafe.Pointer(uintptr(resetsClr)))
	resetsDoneReg = (*volatile.Register32)(unsafe.Pointer(uintptr(resetsDone)))
	uartDRReg     = (*volatile.Register32)(unsafe.Pointer(uintptr(uartDR)))
	uartFRReg     = (*volatile.Register32)(unsafe.Pointer(uintptr(uartFR)))
	uartIBRDReg   = (*volatile.Register32)(unsafe.Pointer(uintptr(uartIBRD)))
	uartFBRDReg   = (*volatile.Register32)(unsafe.Pointer(uintptr(uartFBRD)))
	uartLCRHReg   = (*volatile.Register32)(unsafe.Pointer(uintptr(uartLCRH)))
	uartCRReg     = (*volatile.Register32)(unsafe.Pointer(uintptr(uartCR)))
	uartIMSCReg   = (*volatile.Register32)(unsafe.Pointer(uintptr(uartIMSC)))
)

// UART0 implements core.SerialDriver on the PL011 at UART0 (PortA).
// machine.UART is not used: its Configure unmasks the receive interrupt.
type UART0 struct{}

func (u *UART0) Port() core.SerialPort { return core.PortA }

// EnableClock takes UART0 out of reset. clk_peri is already running.
func (u *UART0) EnableClock() {
	resetsClrReg.Set(resetsUART0Bit)
	for resetsDoneReg.Get()&resetsUART0Bit == 0 {
	}
}

func (u *UART0) Disable() {
	uartCRReg.ClearBits(crUARTEN | crTXE | crRXE)
	uartIMSCReg.Set(0)
}

func (u *UART0) RoutePins(tx, rx core.GPIOPin, dir core.Direction) error {
	if dir != core.DirTX {
		return core.ErrReceiveNotRouted
	}
	machine.Pin(tx).Configure(machine.PinConfig{Mode: machine.PinUART})
	return nil
}

func (u *UART0) CheckFormat(cfg core.SerialConfig, clockHz uint32) error {
	_, _, _, err := uartFormat(cfg, clockHz)
	return err
}

// SetFormat programs the divisors from clk_peri, which the runtime ties to
// clk_sys. The LCR_H write latches IBRD/FBRD.
func (u *UART0) SetFormat(cfg core.SerialConfig, clockHz uint32) error {
	ibrd, fbrd, lcrh, err := uartFormat(cfg, clockHz)
	if err != nil {
		return err
	}
	uartIBRDReg.Set(ibrd)
	uartFBRDReg.Set(fbrd)
	uartLCRHReg.Set(lcrh)
	return nil
}

func (u *UART0) Enable(dir core.Direction) {
	uartCRReg.Set(crUARTEN | crTXE)
}

func (u *UART0) WriteByte(b byte) error {
	if uartCRReg.Get()&crUARTEN == 0 {
		return core.ErrChannelDisabled
	}
	for uartFRReg.Get()&frTXFF != 0 {
	}
	uartDRReg.Set(uint32(b))
	return nil
}
