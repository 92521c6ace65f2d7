package core

// Scrolling thresholds, in cells relative to the left view edge.
const (
	ScrollBudget      = 15
	scrollAheadCells  = 18
	scrollBehindCells = 2
)

// View is the horizontal window into the level.
type View struct {
	X      uint8
	scroll int8
}

// Follow arms a scroll when Dave nears either edge of the window.
func (v *View) Follow(daveX int8) {
	rel := int(daveX) - int(v.X)
	switch {
	case rel >= scrollAheadCells:
		v.scroll = ScrollBudget
	case rel < scrollBehindCells:
		v.scroll = -ScrollBudget
	}
}

// Step consumes one cell of the scroll budget, keeping X in [0, MaxViewX].
func (v *View) Step() {
	switch {
	case v.scroll > 0:
		if v.X < MaxViewX {
			v.X++
		}
		v.scroll--
	case v.scroll < 0:
		if v.X > 0 {
			v.X--
		}
		v.scroll++
	}
}

// Scrolling reports whether budget remains.
func (v *View) Scrolling() bool {
	return v.scroll != 0
}

// Reset returns the window to the left edge of the level.
func (v *View) Reset() {
	*v = View{}
}
