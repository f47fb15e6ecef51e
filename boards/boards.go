// Package boards holds the fixed bring-up configuration of each supported
// board variant. Everything here is plain data; which variant is linked in
// is decided by build tags (see active_*.go).
package boards

import (
	"golang.org/x/exp/slices"

	"boardup/core"
	"boardup/kernel"
)

// DebugBaud is the debug channel rate on every board. The terminal on the
// other end is configured for it, so it does not follow the tick rate.
const DebugBaud = 57600

// STM32 pins are numbered port*16 + n, matching tinygo's machine package.
const (
	pinPA2  core.GPIOPin = 0*16 + 2
	pinPA3  core.GPIOPin = 0*16 + 3
	pinPA6  core.GPIOPin = 0*16 + 6
	pinPD8  core.GPIOPin = 3*16 + 8
	pinPD9  core.GPIOPin = 3*16 + 9
	pinPD12 core.GPIOPin = 3*16 + 12
	pinPD13 core.GPIOPin = 3*16 + 13
	pinPD14 core.GPIOPin = 3*16 + 14
	pinPD15 core.GPIOPin = 3*16 + 15
)

// RP2040 GPIO numbers.
const (
	pinGP0  core.GPIOPin = 0
	pinGP1  core.GPIOPin = 1
	pinGP4  core.GPIOPin = 4
	pinGP5  core.GPIOPin = 5
	pinGP25 core.GPIOPin = 25
)

// DiscoveryInternalClock keeps the reset-default 16 MHz HSI oscillator.
var DiscoveryInternalClock = core.ClockPlan{
	Source:   core.ClockInternal,
	TargetHz: 16_000_000,
}

// DiscoveryHSEClock runs the core at 168 MHz from the 8 MHz crystal. It is
// not the active plan; the tick and baud math follow whichever plan is
// applied.
var DiscoveryHSEClock = core.ClockPlan{
	Source:   core.ClockExternal,
	TargetHz: 168_000_000,
	InputHz:  8_000_000,
	PLLM:     8,
	PLLN:     336,
	PLLP:     2,
}

// discoveryLEDs: PD12 (green) and PA6 blink; the other user LEDs are
// driven low so none float.
var discoveryLEDs = []core.IndicatorPin{
	{Pin: pinPD12, Initial: true},
	{Pin: pinPD13, Steady: true},
	{Pin: pinPD14, Steady: true},
	{Pin: pinPD15, Steady: true},
	{Pin: pinPA6, Initial: true},
}

func serial8N1(port core.SerialPort, tx, rx core.GPIOPin) core.SerialConfig {
	return core.SerialConfig{
		Port:        port,
		Baud:        DebugBaud,
		DataBits:    8,
		StopBits:    1,
		Parity:      core.ParityNone,
		FlowControl: core.FlowNone,
		Direction:   core.DirTX,
		TX:          tx,
		RX:          rx,
	}
}

var kernelTick = core.TickConfig{
	TicksPerSecond: kernel.TicksPerSecond,
	Source:         core.TickClockProcessor,
}

// Discovery is the STM32F4 Discovery with the debug channel on USART2
// (PA2).
var Discovery = core.Board{
	Name:       "stm32f4disco",
	Clock:      DiscoveryInternalClock,
	Indicators: discoveryLEDs,
	Serial:     serial8N1(core.PortA, pinPA2, pinPA3),
	Tick:       kernelTick,
	Priorities: core.DefaultAssignment,
	Encoding:   core.EncodingCortexM4,
	Banner:     "[BOOT] stm32f4disco usart2",
}

// DiscoveryUSART3 moves the debug channel to USART3 (PD8).
var DiscoveryUSART3 = core.Board{
	Name:       "stm32f4disco",
	Clock:      DiscoveryInternalClock,
	Indicators: discoveryLEDs,
	Serial:     serial8N1(core.PortB, pinPD8, pinPD9),
	Tick:       kernelTick,
	Priorities: core.DefaultAssignment,
	Encoding:   core.EncodingCortexM4,
	Banner:     "[BOOT] stm32f4disco usart3",
}

// picoClock is the 125 MHz system clock the runtime leaves behind.
var picoClock = core.ClockPlan{
	Source:   core.ClockInternal,
	TargetHz: 125_000_000,
}

var picoLED = []core.IndicatorPin{{Pin: pinGP25, Initial: true}}

// Pico is the Raspberry Pi Pico with the debug channel on UART0 (GP0).
var Pico = core.Board{
	Name:       "pico",
	Clock:      picoClock,
	Indicators: picoLED,
	Serial:     serial8N1(core.PortA, pinGP0, pinGP1),
	Tick:       kernelTick,
	Priorities: core.DefaultAssignment,
	Encoding:   core.EncodingCortexM0P,
	Banner:     "[BOOT] pico uart0",
}

// PicoPIO transmits from a PIO state machine on GP4, leaving both
// hardware UARTs free.
var PicoPIO = core.Board{
	Name:       "pico",
	Clock:      picoClock,
	Indicators: picoLED,
	Serial:     serial8N1(core.PortB, pinGP4, pinGP5),
	Tick:       kernelTick,
	Priorities: core.DefaultAssignment,
	Encoding:   core.EncodingCortexM0P,
	Banner:     "[BOOT] pico pio-uart",
}

// All lists every variant by a stable name.
var All = map[string]core.Board{
	"discovery":        Discovery,
	"discovery-usart3": DiscoveryUSART3,
	"pico":             Pico,
	"pico-pio":         PicoPIO,
}

// Lookup returns the named variant.
func Lookup(name string) (core.Board, bool) {
	b, ok := All[name]
	return b, ok
}

// Names returns every variant name in sorted order.
func Names() []string {
	names := make([]string, 0, len(All))
	for name := range All {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
