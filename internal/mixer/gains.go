package mixer

import "sonograph/internal/geometry"

// Level holds the gain of each channel for one containment state.
type Level struct {
	Pointer    float64
	Background float64
	Item       float64
}

// Gains maps the winning containment state to channel levels.
type Gains struct {
	Inside  Level
	Near    Level
	Outside Level
	// BackgroundEnabled controls whether the background channel plays at all.
	BackgroundEnabled bool
	// PanBackground pans the background with the pointer like the other
	// channels. Otherwise it plays equally on both sides.
	PanBackground bool
}

// QuietGains is the policy in active use: only the item channel is ever
// audible, and only while the pointer is inside the winning shape. Near
// keeps the item loaded but muted.
func QuietGains() Gains {
	return Gains{
		Inside:            Level{Item: 1},
		BackgroundEnabled: true,
	}
}

// AudibleGains lets the pointer tone and background static through, and
// plays the item softly while the pointer is near it. All three channels
// follow the pointer's pan.
func AudibleGains() Gains {
	return Gains{
		Inside:            Level{Item: 1},
		Near:              Level{Pointer: 0.1, Background: 0.1, Item: 0.3},
		Outside:           Level{Pointer: 0.1, Background: 0.5},
		BackgroundEnabled: true,
		PanBackground:     true,
	}
}

// For returns the levels for state. Unknown states are treated as Outside.
func (g Gains) For(state geometry.State) Level {
	switch state {
	case geometry.Inside:
		return g.Inside
	case geometry.Near:
		return g.Near
	}
	return g.Outside
}

// Profile returns the named gain set: "audible" or "quiet".
func Profile(name string) (Gains, bool) {
	switch name {
	case "audible":
		return AudibleGains(), true
	case "quiet", "":
		return QuietGains(), true
	}
	return Gains{}, false
}
