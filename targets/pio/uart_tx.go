//go:build rp2040

package pio

import (
	"errors"
	"machine"

	rp2pio "github.com/tinygo-org/pio/rp2-pio"

	"boardup/core"
)

var errNoStateMachine = errors.New("pio_exhausted")

// buildTXProgram assembles the 8N1 transmitter. The line idles high.
//
//	pull block
//	out x, 3          ; bit counter from the FIFO word
//	set pins, 0 [7]   ; start bit
//	bitloop:
//	out pins, 1 [6]
//	jmp x--, bitloop
//	set pins, 1 [7]   ; stop bit
func buildTXProgram(origin uint8) []uint16 {
	asm := rp2pio.AssemblerV0{SidesetBits: 0}
	return []uint16{
		// .wrap_target
		asm.Pull(false, true).Encode(),                         // 0: pull block
		asm.Out(rp2pio.OutDestX, 3).Encode(),                   // 1: out x, 3
		asm.Set(rp2pio.SetDestPins, 0).Delay(7).Encode(),       // 2: set pins, 0 [7]
		asm.Out(rp2pio.OutDestPins, 1).Delay(6).Encode(),       // 3: out pins, 1 [6]
		asm.Jmp(origin+loopAddr, rp2pio.JmpXNZeroDec).Encode(), // 4: jmp x--, 3
		asm.Set(rp2pio.SetDestPins, 1).Delay(7).Encode(),       // 5: set pins, 1 [7]
		// .wrap
	}
}

const txOrigin = 0 // Load at a fixed offset so the jump target is known

// UARTTX implements core.SerialDriver with a PIO state machine (PortB).
type UARTTX struct {
	pio     *rp2pio.PIO
	sm      rp2pio.StateMachine
	tx      machine.Pin
	claimed bool
	enabled bool
}

func NewUARTTX() *UARTTX {
	return &UARTTX{}
}

func (u *UARTTX) Port() core.SerialPort { return core.PortB }

// EnableClock claims a state machine. The PIO blocks are taken out of
// reset by the runtime.
func (u *UARTTX) EnableClock() {
	if u.claimed {
		return
	}
	u.pio, u.sm, u.claimed = allocateSM()
}

func (u *UARTTX) Disable() {
	if u.claimed {
		u.sm.SetEnabled(false)
	}
	u.enabled = false
}

func (u *UARTTX) RoutePins(tx, rx core.GPIOPin, dir core.Direction) error {
	if dir != core.DirTX {
		return core.ErrReceiveNotRouted
	}
	if !u.claimed {
		return errNoStateMachine
	}
	u.tx = machine.Pin(tx)
	u.tx.Configure(machine.PinConfig{Mode: u.pio.PinMode()})
	return nil
}

func (u *UARTTX) CheckFormat(cfg core.SerialConfig, clockHz uint32) error {
	_, _, err := txDivider(cfg, clockHz)
	return err
}

// SetFormat loads the program and sets the clock divider. Only 8N1 is
// implemented by the program.
func (u *UARTTX) SetFormat(cfg core.SerialConfig, clockHz uint32) error {
	whole, frac, err := txDivider(cfg, clockHz)
	if err != nil {
		return err
	}

	program := buildTXProgram(txOrigin)
	offset, err := u.pio.AddProgram(program, txOrigin)
	if err != nil {
		return err
	}

	smCfg := rp2pio.DefaultStateMachineConfig()
	smCfg.SetSetPins(u.tx, 1)
	smCfg.SetOutPins(u.tx, 1)
	// Shift right so the LSB goes first, explicit PULL
	smCfg.SetOutShift(true, false, 32)
	smCfg.SetWrap(offset+uint8(len(program))-1, offset)
	smCfg.SetClkDivIntFrac(whole, frac)

	u.sm.Init(offset, smCfg)

	// Pin direction and idle level must come after Init
	u.sm.SetPindirsConsecutive(u.tx, 1, true)
	u.sm.SetPinsConsecutive(u.tx, 1, true)
	return nil
}

func (u *UARTTX) Enable(dir core.Direction) {
	u.sm.SetEnabled(true)
	u.enabled = true
}

func (u *UARTTX) WriteByte(b byte) error {
	if !u.enabled {
		return core.ErrChannelDisabled
	}
	for u.sm.IsTxFIFOFull() {
		// Busy wait - at most one FIFO slot time
	}
	u.sm.TxPut(txWord(b))
	return nil
}
