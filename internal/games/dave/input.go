package dave

import (
	platformcore "github.com/vovakirdan/tui-dave/internal/core"
	"github.com/vovakirdan/tui-dave/internal/games/dave/core"
)

// DefaultHoldTicks is how long one key press keeps a movement held when no
// configuration says otherwise.
const DefaultHoldTicks = 4

// InputBuffer turns per-tick key presses into the held-key snapshot the
// simulation expects. Terminals deliver presses and auto-repeat but no
// releases, so a press holds its action for a few ticks and auto-repeat
// keeps refreshing it. The jetpack toggle is an edge and lasts one tick.
type InputBuffer struct {
	holdTicks int

	left, right int
	jump, down  int
	fire        int
	toggle      bool
}

// NewInputBuffer creates a buffer. holdTicks below 1 is raised to 1.
func NewInputBuffer(holdTicks int) *InputBuffer {
	return &InputBuffer{holdTicks: max(holdTicks, 1)}
}

// Press records the actions triggered this frame.
func (b *InputBuffer) Press(in platformcore.InputFrame) {
	// Reversing direction takes effect at once.
	if in.Has(platformcore.ActionLeft) {
		b.left, b.right = b.holdTicks, 0
	}
	if in.Has(platformcore.ActionRight) {
		b.right, b.left = b.holdTicks, 0
	}
	if in.Has(platformcore.ActionJump) {
		b.jump, b.down = b.holdTicks, 0
	}
	if in.Has(platformcore.ActionDown) {
		b.down, b.jump = b.holdTicks, 0
	}
	if in.Has(platformcore.ActionFire) {
		b.fire = b.holdTicks
	}
	if in.Has(platformcore.ActionJetpack) {
		b.toggle = true
	}
}

// Next returns the held state for the coming tick and ages every hold.
func (b *InputBuffer) Next() core.Input {
	in := core.Input{
		Left:          b.left > 0,
		Right:         b.right > 0,
		Jump:          b.jump > 0,
		Down:          b.down > 0,
		Fire:          b.fire > 0,
		ToggleJetpack: b.toggle,
	}
	for _, n := range []*int{&b.left, &b.right, &b.jump, &b.down, &b.fire} {
		if *n > 0 {
			*n--
		}
	}
	b.toggle = false
	return in
}

// Reset releases everything.
func (b *InputBuffer) Reset() {
	*b = InputBuffer{holdTicks: b.holdTicks}
}
