package theme

import (
	"github.com/agnivade/levenshtein"
)

// Mode is the user-chosen theme preference.
type Mode string

const (
	Dark   Mode = "dark"
	Light  Mode = "light"
	System Mode = "system" // follows the OS/terminal appearance
)

// DefaultMode applies on first run and whenever the stored value is unusable.
const DefaultMode = Dark

// Resolved is the concrete theme shown on screen.
type Resolved string

const (
	ResolvedDark  Resolved = "dark"
	ResolvedLight Resolved = "light"
)

var modeOrder = []Mode{Dark, Light, System}

// Modes returns the valid modes in cycle order.
func Modes() []Mode {
	out := make([]Mode, len(modeOrder))
	copy(out, modeOrder)
	return out
}

// ParseMode accepts exactly one of the stored spellings.
func ParseMode(raw string) (Mode, bool) {
	switch Mode(raw) {
	case Dark, Light, System:
		return Mode(raw), true
	}
	return "", false
}

// Valid reports whether m is one of the known modes.
func (m Mode) Valid() bool {
	_, ok := ParseMode(string(m))
	return ok
}

// Next returns the mode after m in the dark → light → system cycle. Unknown
// modes restart the cycle at light, as if they were the default.
func (m Mode) Next() Mode {
	switch m {
	case Dark:
		return Light
	case Light:
		return System
	case System:
		return Dark
	}
	return DefaultMode.Next()
}

// Class is the root class name for this resolved theme.
func (r Resolved) Class() string {
	return string(r)
}

// Other returns the opposite resolved theme.
func (r Resolved) Other() Resolved {
	if r == ResolvedLight {
		return ResolvedDark
	}
	return ResolvedLight
}

const maxSuggestDistance = 2

// Suggest returns the valid mode closest to raw, or "" when nothing is near
// enough to be a plausible typo.
func Suggest(raw string) Mode {
	best := Mode("")
	bestDist := maxSuggestDistance + 1
	for _, m := range modeOrder {
		d := levenshtein.ComputeDistance(raw, string(m))
		if d < bestDist {
			best, bestDist = m, d
		}
	}
	return best
}
