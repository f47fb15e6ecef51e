// Indicator outputs
// Liveness LEDs driven by the test suite after bring-up
package core

// IndicatorPin is one push-pull output and the level it must hold when
// configuration finishes. Steady outputs are driven once and never
// toggled.
type IndicatorPin struct {
	Pin     GPIOPin
	Initial bool
	Steady  bool
}

// Indicator is the toggle handle returned by ConfigureIndicators.
type Indicator struct {
	d      GPIODriver
	pins   []GPIOPin
	levels []bool
	steady []bool
}

// active is the handle used by ToggleIndicator.
var active *Indicator

// ConfigureIndicators configures every pin as an output, drives it to its
// initial level so no output is left floating, and reads the level back.
func ConfigureIndicators(gpio GPIOCap, pins []IndicatorPin) (*Indicator, error) {
	if err := gpio.c.take(); err != nil {
		return nil, err
	}
	if len(pins) == 0 {
		return nil, ErrNoIndicators
	}

	ind := &Indicator{
		d:      gpio.d,
		pins:   make([]GPIOPin, 0, len(pins)),
		levels: make([]bool, 0, len(pins)),
		steady: make([]bool, 0, len(pins)),
	}
	for _, p := range pins {
		if err := gpio.d.ConfigureOutput(p.Pin); err != nil {
			return nil, err
		}
		if err := gpio.d.SetPin(p.Pin, p.Initial); err != nil {
			return nil, err
		}
		// A shorted or unpowered LED reads back the wrong level
		level, err := gpio.d.GetPin(p.Pin)
		if err != nil {
			return nil, err
		}
		if level != p.Initial {
			return nil, ErrIndicatorReadback
		}
		ind.pins = append(ind.pins, p.Pin)
		ind.levels = append(ind.levels, p.Initial)
		ind.steady = append(ind.steady, p.Steady)
	}

	active = ind
	return ind, nil
}

// Toggle inverts every non-steady indicator output. It may be called from
// interrupt context; the shadow levels are updated inside a critical
// section.
// Calling Toggle on a handle that ConfigureIndicators did not return, or
// a driver refusing a pin it configured, is a programming error and
// panics.
func (ind *Indicator) Toggle() {
	if ind == nil || ind.d == nil {
		panic("indicator not configured")
	}
	state := disableInterrupts()
	for i, pin := range ind.pins {
		if ind.steady[i] {
			continue
		}
		ind.levels[i] = !ind.levels[i]
		if err := ind.d.SetPin(pin, ind.levels[i]); err != nil {
			restoreInterrupts(state)
			panic("indicator write failed: " + err.Error())
		}
	}
	restoreInterrupts(state)
}

// Levels returns the current shadow level of each output, in
// configuration order.
func (ind *Indicator) Levels() []bool {
	out := make([]bool, len(ind.levels))
	copy(out, ind.levels)
	return out
}

// ToggleIndicator toggles the indicator configured during bring-up.
func ToggleIndicator() {
	active.Toggle()
}
