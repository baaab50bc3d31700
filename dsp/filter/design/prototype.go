package design

import (
	"fmt"
	"strings"
)

// Prototype selects the analog filter archetype assigned to a band slot.
type Prototype int

const (
	// LowShelf scales everything below the corner frequency.
	LowShelf Prototype = iota
	// Peaking scales a bell centred on the corner frequency.
	Peaking
	// HighShelf scales everything above the corner frequency.
	HighShelf

	prototypeCount
)

var prototypeNames = [prototypeCount]string{"lowshelf", "peaking", "highshelf"}

// String returns the lower-case name of the prototype.
func (p Prototype) String() string {
	if p.Valid() {
		return prototypeNames[p]
	}

	return fmt.Sprintf("Prototype(%d)", int(p))
}

// Valid reports whether p is a known prototype.
func (p Prototype) Valid() bool {
	return p >= 0 && p < prototypeCount
}

// ParsePrototype accepts the names returned by [Prototype.String] plus the
// short forms "low", "peak"/"mid" and "high".
func ParsePrototype(s string) (Prototype, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "lowshelf", "low-shelf", "low":
		return LowShelf, nil
	case "peaking", "peak", "mid":
		return Peaking, nil
	case "highshelf", "high-shelf", "high":
		return HighShelf, nil
	default:
		return 0, fmt.Errorf("design: unknown prototype %q", s)
	}
}
