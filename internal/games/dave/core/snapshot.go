package core

// DaveView is a read-only copy of Dave for renderers.
type DaveView struct {
	Cell       Cell
	Pixel      Pixel
	Tile       TileID
	Alive      bool
	Dying      bool
	Facing     Direction
	OnGround   bool
	Jetpacking bool
	HasGun     bool
	HasJetpack bool
	Fuel       uint8
}

// MonsterView is a read-only copy of one roster slot.
type MonsterView struct {
	Active bool
	Dying  bool
	Cell   Cell
	Pixel  Pixel
	Tile   TileID
}

// Snapshot is the render-facing state of a world after a tick.
type Snapshot struct {
	Tick          uint64
	Level         LevelID
	LevelName     string
	ViewX         uint8
	Score         int
	Lives         int
	Trophy        bool
	Quit          bool
	Won           bool
	Dave          DaveView
	Monsters      [MonsterSlots]MonsterView
	DaveBullet    *Bullet
	MonsterBullet *Bullet
}

// Snapshot copies the current state.
func (w *World) Snapshot() Snapshot {
	d := w.dave
	s := Snapshot{
		Tick:      w.tick,
		Level:     w.levelID,
		LevelName: w.levels.Name(w.levelID),
		ViewX:     w.view.X,
		Score:     w.book.Score,
		Lives:     w.book.Lives,
		Trophy:    w.trophy,
		Quit:      w.quit,
		Won:       w.won,
		Dave: DaveView{
			Cell:       d.Cell,
			Pixel:      d.Pixel,
			Tile:       d.Tile(),
			Alive:      d.IsAlive(),
			Dying:      d.IsDying(),
			Facing:     d.Facing(),
			OnGround:   d.IsOnGround(),
			Jetpacking: d.IsJetpacking(),
			HasGun:     d.HasGun,
			HasJetpack: d.HasJetpack,
			Fuel:       d.Fuel,
		},
	}
	for i := range w.monsters {
		m := &w.monsters[i]
		cell, px, ok := m.Position()
		s.Monsters[i] = MonsterView{
			Active: ok,
			Dying:  m.IsDying(),
			Cell:   cell,
			Pixel:  px,
			Tile:   m.Tile(w.tick / 4),
		}
	}
	if d.Bullet != nil {
		b := *d.Bullet
		s.DaveBullet = &b
	}
	if w.monsterBullet != nil {
		b := *w.monsterBullet
		s.MonsterBullet = &b
	}
	return s
}

// Level returns the live level grid, including consumed pickups.
// Callers must treat it as read-only.
func (w *World) Level() *Level {
	return w.level
}

// LevelID returns the current level.
func (w *World) LevelID() LevelID {
	return w.levelID
}

// Score returns the current score.
func (w *World) Score() int {
	return w.book.Score
}

// Lives returns the remaining spare lives.
func (w *World) Lives() int {
	return w.book.Lives
}

// Quit reports whether the run is over.
func (w *World) Quit() bool {
	return w.quit
}

// Won reports whether the last level's door was reached with the trophy.
func (w *World) Won() bool {
	return w.won
}

// Ticks returns the number of completed ticks.
func (w *World) Ticks() uint64 {
	return w.tick
}

// Dave exposes the player for inspection.
func (w *World) Dave() *Dave {
	return w.dave
}
