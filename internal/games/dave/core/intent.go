package core

// MoveState is the intent flag for one discrete player action.
// None: nothing requested. Try: requested, awaiting verification.
// Do: verified, executes during motion and returns to None.
type MoveState uint8

const (
	MoveNone MoveState = iota
	MoveTry
	MoveDo
)

// String returns a human-readable name for the state.
func (m MoveState) String() string {
	switch m {
	case MoveNone:
		return "None"
	case MoveTry:
		return "Try"
	case MoveDo:
		return "Do"
	default:
		return "Unknown"
	}
}

// arm moves None to Try and leaves Try and Do untouched.
func (m *MoveState) arm() {
	if *m == MoveNone {
		*m = MoveTry
	}
}

// verify resolves a pending Try: Do when allowed, None otherwise.
func (m *MoveState) verify(allowed bool) {
	if *m != MoveTry {
		return
	}
	if allowed {
		*m = MoveDo
	} else {
		*m = MoveNone
	}
}

// Direction is a facing.
type Direction uint8

const (
	DirMiddle Direction = iota
	DirLeft
	DirRight
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirMiddle:
		return "Middle"
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// Input is the held-state intent snapshot for one tick.
type Input struct {
	Left          bool
	Right         bool
	Jump          bool // also jetpack up
	Down          bool // jetpack down
	Fire          bool
	ToggleJetpack bool
}
