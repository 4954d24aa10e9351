package panel

import "fmt"

// Mode is how a panel participates in resizing.
type Mode int

const (
	// Stretch panels absorb leftover space and container size changes.
	Stretch Mode = iota
	// Dynamic panels resize only when a divider is dragged.
	Dynamic
	// Fixed panels keep the size they were built with.
	Fixed
)

// modeTraits holds the per-mode answers the solver and reconciler ask for.
type modeTraits struct {
	name      string
	frozen    bool // bounds collapse to FixedSize
	donor     bool // gives up slack when a stretch panel is squeezed
	stretches bool // follows the container size
}

var traits = [...]modeTraits{
	Stretch: {name: "stretch", stretches: true},
	Dynamic: {name: "dynamic", donor: true},
	Fixed:   {name: "fixed", frozen: true},
}

func (m Mode) traits() modeTraits {
	if m < 0 || int(m) >= len(traits) {
		return traits[Stretch]
	}
	return traits[m]
}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(traits) {
		return "Unknown"
	}
	return traits[m].name
}

// Donor reports whether panels of this mode give up slack during reconciliation.
func (m Mode) Donor() bool { return m.traits().donor }

// Stretches reports whether panels of this mode track the container size.
func (m Mode) Stretches() bool { return m.traits().stretches }

// Frozen reports whether panels of this mode have min == max == FixedSize.
func (m Mode) Frozen() bool { return m.traits().frozen }

// ParseMode converts "fixed", "dynamic" or "stretch" to a Mode.
func ParseMode(s string) (Mode, error) {
	for m, t := range traits {
		if t.name == s {
			return Mode(m), nil
		}
	}
	return Stretch, fmt.Errorf("unknown resize mode %q (want fixed, dynamic or stretch)", s)
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(b []byte) error {
	v, err := ParseMode(string(b))
	if err != nil {
		return err
	}
	*m = v
	return nil
}
