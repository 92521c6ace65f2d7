package core

// CollisionKind classifies what lies under a pixel.
type CollisionKind uint8

const (
	CollisionNone CollisionKind = iota
	CollisionWall
	CollisionHazard
	CollisionPickup
	CollisionDoor
	CollisionClimbable
)

// String returns a human-readable name for the kind.
func (k CollisionKind) String() string {
	switch k {
	case CollisionNone:
		return "None"
	case CollisionWall:
		return "Wall"
	case CollisionHazard:
		return "Hazard"
	case CollisionPickup:
		return "Pickup"
	case CollisionDoor:
		return "Door"
	case CollisionClimbable:
		return "Climbable"
	default:
		return "Unknown"
	}
}

// Collision is the result of sampling one pixel. Cell is set for pickups.
type Collision struct {
	Kind CollisionKind
	Cell Cell
}

// Classify samples the level at a pixel. Pixels off the grid are None.
//
// Priority when a tile matches several predicates:
// wall > hazard > pickup > door > climbable.
func Classify(level *Level, p Pixel) Collision {
	cell := CellOf(p)
	tile, ok := level.TileAt(int(cell.X), int(cell.Y))
	if !ok {
		return Collision{Kind: CollisionNone}
	}

	switch {
	case tile.IsCollidable():
		return Collision{Kind: CollisionWall}
	case tile.IsHazard():
		return Collision{Kind: CollisionHazard}
	case tile.IsPickup():
		return Collision{Kind: CollisionPickup, Cell: cell}
	case tile.IsDoor():
		return Collision{Kind: CollisionDoor}
	case tile.IsClimbable():
		return Collision{Kind: CollisionClimbable}
	default:
		return Collision{Kind: CollisionNone}
	}
}
