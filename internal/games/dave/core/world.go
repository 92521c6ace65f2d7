package core

// EventKind tags what happened during a tick.
type EventKind uint8

const (
	EventPickup EventKind = iota
	EventExtraLife
	EventMonsterKilled
	EventDaveKilled
	EventLifeLost
	EventLevelComplete
	EventWon
	EventGameOver
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventPickup:
		return "pickup"
	case EventExtraLife:
		return "extra_life"
	case EventMonsterKilled:
		return "monster_killed"
	case EventDaveKilled:
		return "dave_killed"
	case EventLifeLost:
		return "life_lost"
	case EventLevelComplete:
		return "level_complete"
	case EventWon:
		return "won"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Causes of death reported in Event.Cause.
const (
	causeHazard  = "hazard"
	causeBullet  = "bullet"
	causeMonster = "monster"
)

// Event records one gameplay occurrence. Only the fields relevant to Kind
// are set; Monster is -1 when no slot is involved.
type Event struct {
	Kind    EventKind
	Tick    uint64
	Level   LevelID
	Points  int
	Tile    TileID
	Cell    Cell
	Monster int
	Cause   string
}

// Options configures a run.
type Options struct {
	Lives         int
	InfiniteLives bool
	JetpackFuel   uint8
	StartLevel    LevelID
	Scoring       Scoring
}

// DefaultOptions returns the classic rules.
func DefaultOptions() Options {
	return Options{
		Lives:       DefaultLives,
		JetpackFuel: DefaultJetpackFuel,
		StartLevel:  FirstLevel(),
		Scoring:     DefaultScoring(),
	}
}

// Stage is one named step of the tick pipeline.
type Stage struct {
	Name string
	Run  func(w *World)
}

// World is the full simulation state of a run.
type World struct {
	levels  *Levels
	level   *Level
	levelID LevelID
	opts    Options

	dave          *Dave
	monsters      [MonsterSlots]Monster
	monsterBullet *Bullet
	view          View
	book          ScoreBook
	trophy        bool
	quit          bool
	won           bool
	tick          uint64

	input    Input
	events   []Event
	pipeline []Stage
}

// NewWorld starts a run at opts.StartLevel.
func NewWorld(levels *Levels, opts Options) *World {
	if opts.JetpackFuel == 0 {
		opts.JetpackFuel = DefaultJetpackFuel
	}
	if opts.Scoring == (Scoring{}) {
		opts.Scoring = DefaultScoring()
	}

	w := &World{
		levels: levels,
		opts:   opts,
		book:   NewScoreBook(opts.Lives, opts.Scoring),
	}
	w.pipeline = []Stage{
		{Name: "collisions", Run: (*World).sampleCollisions},
		{Name: "pickups", Run: (*World).consumePickup},
		{Name: "player", Run: (*World).movePlayer},
		{Name: "monsters", Run: (*World).updateMonsters},
		{Name: "bullets", Run: (*World).resolveBullets},
		{Name: "scroll", Run: (*World).scrollView},
		{Name: "gravity", Run: (*World).applyGravity},
		{Name: "timers", Run: (*World).decayTimers},
		{Name: "transitions", Run: (*World).resolveTransitions},
	}
	w.dave = NewDave(RosterFor(opts.StartLevel).Start)
	w.enterLevel(opts.StartLevel)
	return w
}

// Pipeline returns the tick stages in execution order.
func (w *World) Pipeline() []Stage {
	return w.pipeline
}

// Tick runs one simulation step and returns the events it produced.
// A finished run does nothing.
func (w *World) Tick(in Input) []Event {
	if w.quit {
		return nil
	}
	w.input = in
	w.events = nil
	for _, st := range w.pipeline {
		st.Run(w)
	}
	w.tick++
	return w.events
}

// RunStage runs a single named stage against the current input. It reports
// false when no stage has that name.
func (w *World) RunStage(name string, in Input) bool {
	w.input = in
	for _, st := range w.pipeline {
		if st.Name == name {
			st.Run(w)
			return true
		}
	}
	return false
}

func (w *World) emit(e Event) {
	e.Tick = w.tick
	e.Level = w.levelID
	if e.Kind != EventMonsterKilled && e.Cause != causeMonster {
		e.Monster = -1
	}
	w.events = append(w.events, e)
}

// award adds points and emits one extra-life event per life gained.
func (w *World) award(points int) {
	for range w.book.Add(points) {
		w.emit(Event{Kind: EventExtraLife})
	}
}

// enterLevel loads a pristine copy of id and resets per-level state.
func (w *World) enterLevel(id LevelID) {
	roster := RosterFor(id)
	w.levelID = id
	w.level = w.levels.Get(id).Clone()
	w.monsters = roster.Spawned()
	w.monsterBullet = nil
	w.trophy = false
	w.view.Reset()
	w.dave.NewLevel(roster.Start)
}

func (w *World) sampleCollisions() {
	if w.dave.CheckCollision(w.level) {
		w.emit(Event{Kind: EventDaveKilled, Cell: w.dave.Cell, Cause: causeHazard})
	}
}

func (w *World) consumePickup() {
	cell, ok := w.dave.PendingPickup()
	if !ok {
		return
	}
	w.dave.ClearPickup()

	tile, ok := w.level.TileAt(int(cell.X), int(cell.Y))
	if !ok || !tile.IsPickup() {
		return
	}

	points := 0
	switch {
	case tile == TileJetpack:
		w.dave.GrantJetpack(w.opts.JetpackFuel)
	case tile == TileGun:
		w.dave.HasGun = true
	case tile.IsTrophy():
		w.trophy = true
		points = PickupValue(tile)
	default:
		points = PickupValue(tile)
	}
	w.level.SetTile(int(cell.X), int(cell.Y), TileBlank)
	w.emit(Event{Kind: EventPickup, Tile: tile, Cell: cell, Points: points})
	w.award(points)
}

func (w *World) movePlayer() {
	w.dave.Input(w.input)
	w.dave.VerifyInput()
	w.dave.Move()
}

func (w *World) updateMonsters() {
	for i := range w.monsters {
		m := &w.monsters[i]
		m.Move(w.level)
		if w.monsterBullet == nil {
			if b, ok := m.TryFireBullet(w.dave.Pixel, w.view.X); ok {
				w.monsterBullet = &b
			}
		}
		m.Update()
	}
}

func (w *World) resolveBullets() {
	if b := w.dave.Bullet; b != nil {
		res := ResolveBullet(b, w.level, w.view.X, w.monsters[:], w.dave)
		if res.Outcome == BulletHitMonster {
			cell, _, _ := w.monsters[res.Monster].Position()
			w.emit(Event{Kind: EventMonsterKilled, Monster: res.Monster, Cell: cell, Points: w.opts.Scoring.MonsterKill})
			w.award(w.opts.Scoring.MonsterKill)
		}
		if res.Removed() {
			w.dave.Bullet = nil
		}
	}

	if b := w.monsterBullet; b != nil {
		res := ResolveBullet(b, w.level, w.view.X, w.monsters[:], w.dave)
		if res.Outcome == BulletHitDave {
			w.emit(Event{Kind: EventDaveKilled, Cell: w.dave.Cell, Cause: causeBullet})
		}
		if res.Removed() {
			w.monsterBullet = nil
		}
	}
}

func (w *World) scrollView() {
	w.view.Follow(w.dave.Cell.X)
	w.view.Step()
}

func (w *World) applyGravity() {
	w.dave.ApplyGravity(w.level)
}

func (w *World) decayTimers() {
	w.dave.Update()
}

func (w *World) resolveTransitions() {
	if w.dave.AtDoor() {
		if w.trophy {
			w.award(w.opts.Scoring.LevelBonus)
			next, ok := w.levelID.Next()
			if !ok {
				w.won = true
				w.quit = true
				w.emit(Event{Kind: EventWon, Points: w.opts.Scoring.LevelBonus})
				return
			}
			w.emit(Event{Kind: EventLevelComplete, Points: w.opts.Scoring.LevelBonus})
			w.enterLevel(next)
			return
		}
		w.dave.ClearDoor()
	}

	if w.dave.IsDead() {
		if w.opts.InfiniteLives || w.book.Lives > 0 {
			if !w.opts.InfiniteLives {
				w.book.Lives--
			}
			w.dave.LevelRestart(RosterFor(w.levelID).Start)
			w.emit(Event{Kind: EventLifeLost})
		} else {
			w.quit = true
			w.emit(Event{Kind: EventGameOver})
		}
		return
	}

	for i := range w.monsters {
		m := &w.monsters[i]
		if !m.IsAlive() || !w.dave.IsAlive() {
			continue
		}
		if cell, _, _ := m.Position(); cell == w.dave.Cell {
			m.Kill()
			w.dave.Kill()
			w.emit(Event{Kind: EventDaveKilled, Cell: cell, Monster: i, Cause: causeMonster})
		}
	}
}
