package core

// MonsterSlots is the fixed roster size per level.
const MonsterSlots = 5

// MonsterState is a monster's life-cycle: *MonsterLive, *MonsterDying or
// *MonsterDead.
type MonsterState interface {
	monsterState()
}

// MonsterLive patrols the level path.
type MonsterLive struct {
	Cell      Cell
	Pixel     Pixel
	Sprite    TileID
	PathIndex PathIndex
	// Pending is the part of the current waypoint still to walk.
	Pending PathDelta
}

// MonsterDying counts down to MonsterDead in place.
type MonsterDying struct {
	Cell      Cell
	Pixel     Pixel
	Countdown uint8
}

// MonsterDead is an inactive slot.
type MonsterDead struct{}

func (*MonsterLive) monsterState()  {}
func (*MonsterDying) monsterState() {}
func (*MonsterDead) monsterState()  {}

// Monster is one roster slot.
type Monster struct {
	State MonsterState
}

// NewMonster returns a live monster at cell.
func NewMonster(sprite TileID, cell Cell) Monster {
	return Monster{State: &MonsterLive{
		Cell:      cell,
		Pixel:     PixelOf(cell),
		Sprite:    sprite,
		PathIndex: PathStart,
	}}
}

// EmptySlot returns an inactive roster slot.
func EmptySlot() Monster {
	return Monster{State: &MonsterDead{}}
}

func (m *Monster) live() *MonsterLive {
	s, _ := m.State.(*MonsterLive)
	return s
}

// IsAlive reports whether the monster is patrolling.
func (m *Monster) IsAlive() bool {
	return m.live() != nil
}

// IsDying reports whether the monster is exploding.
func (m *Monster) IsDying() bool {
	_, ok := m.State.(*MonsterDying)
	return ok
}

// IsDead reports whether the slot is inactive.
func (m *Monster) IsDead() bool {
	_, ok := m.State.(*MonsterDead)
	return ok || m.State == nil
}

// Position returns the monster's cell and pixel. ok is false for dead slots.
func (m *Monster) Position() (Cell, Pixel, bool) {
	switch s := m.State.(type) {
	case *MonsterLive:
		return s.Cell, s.Pixel, true
	case *MonsterDying:
		return s.Cell, s.Pixel, true
	}
	return Cell{}, Pixel{}, false
}

// Covers reports whether cell falls in the monster's 2x2 footprint.
func (m *Monster) Covers(cell Cell) bool {
	s := m.live()
	if s == nil {
		return false
	}
	dx := int(cell.X) - int(s.Cell.X)
	dy := int(cell.Y) - int(s.Cell.Y)
	return (dx == 0 || dx == 1) && (dy == 0 || dy == 1)
}

// Move walks two half-steps along the patrol path.
func (m *Monster) Move(level *Level) {
	s := m.live()
	if s == nil {
		return
	}

	for range 2 {
		if s.Pending.IsZero() {
			s.Pending = level.PathAt(s.PathIndex)
			s.PathIndex = s.PathIndex.Next()
		}
		if s.Pending == PathEnd {
			s.Pending = level.PathAt(PathStart)
			s.PathIndex = PathStart.Next()
			if s.Pending == PathEnd {
				// Empty path: stand still.
				s.Pending = PathDelta{}
			}
		}

		switch {
		case s.Pending.X < 0:
			s.Pixel.X--
			s.Pending.X++
		case s.Pending.X > 0:
			s.Pixel.X++
			s.Pending.X--
		}
		switch {
		case s.Pending.Y < 0:
			s.Pixel.Y--
			s.Pending.Y++
		case s.Pending.Y > 0:
			s.Pixel.Y++
			s.Pending.Y--
		}
	}

	s.Cell = CellOf(s.Pixel)
}

// TryFireBullet fires toward Dave when the monster is on screen.
func (m *Monster) TryFireBullet(davePixel Pixel, viewX uint8) (Bullet, bool) {
	s := m.live()
	if s == nil || !IsVisible(int(s.Cell.X), viewX) {
		return Bullet{}, false
	}
	dir := DirRight
	if davePixel.X < s.Pixel.X {
		dir = DirLeft
	}
	return spawnBullet(SourceMonster, dir, s.Pixel), true
}

// Kill starts the explosion. The monster must be alive.
func (m *Monster) Kill() {
	s := m.live()
	if s == nil {
		panic("monster: kill called on a non-live monster")
	}
	m.State = &MonsterDying{Cell: s.Cell, Pixel: s.Pixel, Countdown: DyingTicks}
}

// Update advances the dying countdown.
func (m *Monster) Update() {
	s, ok := m.State.(*MonsterDying)
	if !ok {
		return
	}
	if s.Countdown > 0 {
		s.Countdown--
	}
	if s.Countdown == 0 {
		m.State = &MonsterDead{}
	}
}

// Tile returns the sprite for the slot on the given tick.
func (m *Monster) Tile(tick uint64) TileID {
	switch s := m.State.(type) {
	case *MonsterLive:
		return s.Sprite.Frame(tick)
	case *MonsterDying:
		return TileExplosion.Frame(tick)
	}
	return TileBlank
}
