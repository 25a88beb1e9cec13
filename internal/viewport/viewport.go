// Package viewport maps window widths onto the three interaction regimes
// that govern sidebar behaviour.
package viewport

// Regime is one of the three mutually exclusive viewport classifications.
type Regime int

const (
	Mobile Regime = iota
	Narrow
	Desktop
)

const (
	mobileMaxWidth = 500
	narrowMaxWidth = 700
)

func (r Regime) String() string {
	switch r {
	case Mobile:
		return "mobile"
	case Narrow:
		return "narrow"
	default:
		return "desktop"
	}
}

// Overlay reports whether the sidebar renders as an overlay rather than
// pushing the content aside.
func (r Regime) Overlay() bool {
	return r == Mobile
}

// Classify maps a width to its regime. Mobile widths are a subset of narrow
// widths but classify as mobile because the interaction model differs.
func Classify(width int) Regime {
	switch {
	case width <= mobileMaxWidth:
		return Mobile
	case width <= narrowMaxWidth:
		return Narrow
	default:
		return Desktop
	}
}

// Tracker remembers the current regime across resize events so transitions
// can report both endpoints.
type Tracker struct {
	current Regime
	seeded  bool
}

// NewTracker seeds the tracker from an initial width.
func NewTracker(width int) *Tracker {
	return &Tracker{current: Classify(width), seeded: true}
}

// Current returns the regime of the last observed width.
func (t *Tracker) Current() Regime {
	return t.current
}

// Resize classifies the new width and reports the transition. Classification
// is cheap and idempotent, so callers re-run it on every resize event.
func (t *Tracker) Resize(width int) (prev, next Regime, changed bool) {
	next = Classify(width)
	prev = t.current
	if !t.seeded {
		t.seeded = true
		t.current = next
		return next, next, false
	}
	t.current = next
	return prev, next, prev != next
}
