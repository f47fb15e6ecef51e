package core

// TickClockSource selects what drives the tick counter. The choice is
// always made explicitly: derived "set frequency" helpers are known to
// pick the wrong source on some parts.
type TickClockSource uint8

const (
	TickClockUnset TickClockSource = iota
	// TickClockProcessor counts the core clock (AHB).
	TickClockProcessor
	// TickClockProcessorDiv8 counts the core clock divided by 8.
	TickClockProcessorDiv8
)

func (s TickClockSource) String() string {
	switch s {
	case TickClockProcessor:
		return "processor"
	case TickClockProcessorDiv8:
		return "processor/8"
	default:
		return "unset"
	}
}

// TickConfig is the kernel time base request.
type TickConfig struct {
	TicksPerSecond uint32
	Source         TickClockSource
}

// counterInputHz is the frequency seen by the counter for src.
func counterInputHz(clockHz uint32, src TickClockSource) uint32 {
	if src == TickClockProcessorDiv8 {
		return clockHz / 8
	}
	return clockHz
}

// ReloadValue computes clockHz / ticksPerSecond. The division truncates;
// a rate that does not divide the clock evenly gives a slightly long tick
// period and that error is accepted.
func ReloadValue(clockHz, ticksPerSecond uint32) (uint32, error) {
	if ticksPerSecond == 0 {
		return 0, ErrInvalidTickRate
	}
	reload := clockHz / ticksPerSecond
	if reload == 0 {
		return 0, ErrReloadOutOfRange
	}
	return reload, nil
}

// checkReload verifies reload fits a counter of the given width.
func checkReload(reload uint32, bits uint8) error {
	if reload == 0 {
		return ErrReloadOutOfRange
	}
	if bits < 32 && reload > (uint32(1)<<bits)-1 {
		return ErrReloadOutOfRange
	}
	return nil
}

// TickTimer is the armed tick counter handed to the kernel.
type TickTimer struct {
	d      TickDriver
	Reload uint32
	Source TickClockSource
}

// Elapsed reports whether a tick period passed since the last call.
// Kernels normally count ticks in the interrupt handler instead; this is
// for images that run with interrupts still masked.
func (t *TickTimer) Elapsed() bool {
	return t.d.Elapsed()
}

// ConfigureTickTimer programs the counter and arms its interrupt. Once it
// returns a periodic interrupt is pending every period, so it refuses to
// run unless interrupts are globally masked.
func ConfigureTickTimer(tick TickCap, irq IRQCap, clockHz uint32, cfg TickConfig) (*TickTimer, error) {
	if err := tick.c.take(); err != nil {
		return nil, err
	}
	if cfg.Source == TickClockUnset || cfg.Source > TickClockProcessorDiv8 {
		return nil, ErrTickSourceUndefined
	}
	reload, err := ReloadValue(counterInputHz(clockHz, cfg.Source), cfg.TicksPerSecond)
	if err != nil {
		return nil, err
	}
	d := tick.d
	if err := checkReload(reload, d.CounterBits()); err != nil {
		return nil, err
	}
	if !irq.Masked() {
		return nil, ErrInterruptsUnmasked
	}

	d.Disable()
	d.SetReload(reload)
	d.SelectClockSource(cfg.Source)
	d.EnableInterrupt()
	d.Start()

	RegisterConstant("TICK_RELOAD", reload)
	return &TickTimer{d: d, Reload: reload, Source: cfg.Source}, nil
}

// CountTick advances the kernel tick count. Call it once per tick period,
// from the tick handler or from a polling loop on TickTimer.Elapsed.
func CountTick() uint32 {
	return addTick()
}

// Ticks returns the number of tick periods counted so far.
func Ticks() uint32 {
	return getTicks()
}
