package core

// Constant is one value applied during bring-up and reported in the boot
// banner (CLOCK_FREQ, TICK_RELOAD, BAUD, ...).
type Constant struct {
	Name  string
	Value uint32
}

// constants keeps registration order so the banner is stable.
var constants []Constant

// RegisterConstant records name=value, replacing an earlier value of the
// same name.
func RegisterConstant(name string, value uint32) {
	for i := range constants {
		if constants[i].Name == name {
			constants[i].Value = value
			return
		}
	}
	constants = append(constants, Constant{Name: name, Value: value})
}

// LookupConstant returns a registered value.
func LookupConstant(name string) (uint32, bool) {
	for _, c := range constants {
		if c.Name == name {
			return c.Value, true
		}
	}
	return 0, false
}

// Constants returns a copy of every registered constant in order.
func Constants() []Constant {
	out := make([]Constant, len(constants))
	copy(out, constants)
	return out
}

// ResetConstants clears the registry. Bring-up runs once per boot, so
// only tests and the simulator need this.
func ResetConstants() {
	constants = constants[:0]
}

// FormatConstants renders "NAME=value NAME=value" for the banner.
func FormatConstants() string {
	s := ""
	for i, c := range constants {
		if i > 0 {
			s += " "
		}
		s += c.Name + "=" + utoa(c.Value)
	}
	return s
}
