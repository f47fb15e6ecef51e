package main

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"boardup/boards"
	"boardup/core"
	"boardup/sim"
)

// Profile describes a simulated board: which variant to run and how the
// simulated silicon differs from the default part.
type Profile struct {
	Board string `yaml:"board"`

	// Optional overrides of the variant's configuration
	Clock          string `yaml:"clock"` // "internal" or "hse"
	TicksPerSecond uint32 `yaml:"ticks_per_second"`
	Baud           uint32 `yaml:"baud"`

	// Other interrupt sources and their level, counted up from the lowest
	Interrupts map[string]uint8 `yaml:"interrupts"`

	// Simulated hardware
	ExternalOscillator bool   `yaml:"external_oscillator"`
	ResetHz            uint32 `yaml:"reset_hz"`
	BusDivider         uint32 `yaml:"bus_divider"`
	PriorityBits       uint8  `yaml:"priority_bits"`
	CounterBits        uint8  `yaml:"counter_bits"`
}

// LoadProfile reads a YAML profile from path.
func LoadProfile(path string) (Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("read profile: %w", err)
	}
	return ParseProfile(data)
}

// ParseProfile decodes a YAML profile, rejecting unknown keys.
func ParseProfile(data []byte) (Profile, error) {
	var p Profile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		return Profile{}, fmt.Errorf("parse profile: %w", err)
	}
	return p, nil
}

// Resolve turns the profile into the board configuration and simulator
// options to run.
func (p Profile) Resolve() (core.Board, sim.Options, error) {
	name := p.Board
	if name == "" {
		name = "discovery"
	}
	b, ok := boards.Lookup(name)
	if !ok {
		return core.Board{}, sim.Options{}, fmt.Errorf("unknown board %q", name)
	}

	switch p.Clock {
	case "", "internal":
	case "hse":
		b.Clock = boards.DiscoveryHSEClock
	default:
		return core.Board{}, sim.Options{}, fmt.Errorf("unknown clock %q", p.Clock)
	}
	if p.TicksPerSecond != 0 {
		b.Tick.TicksPerSecond = p.TicksPerSecond
	}
	if p.Baud != 0 {
		b.Serial.Baud = p.Baud
	}
	if len(p.Interrupts) != 0 {
		b.Interrupts = make(map[string]core.Level, len(p.Interrupts))
		for name, l := range p.Interrupts {
			b.Interrupts[name] = core.Level(l)
		}
	}

	opts := sim.Options{
		ResetHz:            p.ResetHz,
		ExternalOscillator: p.ExternalOscillator,
		Port:               b.Serial.Port,
		BusDivider:         p.BusDivider,
		PriorityBits:       p.PriorityBits,
		CounterBits:        p.CounterBits,
	}
	if opts.ResetHz == 0 && b.Clock.Source == core.ClockInternal {
		opts.ResetHz = b.Clock.TargetHz
	}
	if opts.PriorityBits == 0 {
		opts.PriorityBits = b.Encoding.Bits
	}
	if b.Clock.Source == core.ClockExternal && opts.BusDivider == 0 {
		opts.BusDivider = 4 // APB1 at 42 MHz
	}
	return b, opts, nil
}
