package core

// Timing and movement constants for Dave.
const (
	DyingTicks         = 30
	JumpTicks          = 25
	JetpackToggleDelay = 10
	DefaultJetpackFuel = 0xff

	walkStep    = 2
	jetpackStep = 2
	fallStep    = 2
)

// Probe slots, in the order they are sampled.
const (
	ProbeCeilingLeft = iota
	ProbeCeilingRight
	ProbeRightTop
	ProbeRightBottom
	ProbeGroundRight
	ProbeGroundLeft
	ProbeLeftBottom
	ProbeLeftTop
	NumProbes
)

// probeOffsets are pixel offsets from Dave's top-left corner.
var probeOffsets = [NumProbes]Pixel{
	{X: 4, Y: -1},
	{X: 10, Y: -1},
	{X: 12, Y: 4},
	{X: 12, Y: 12},
	{X: 10, Y: 16},
	{X: 4, Y: 16},
	{X: 3, Y: 12},
	{X: 3, Y: 4},
}

// floorOffsets are the probes gravity uses to find the floor.
var floorOffsets = [2]Pixel{{X: 4, Y: 17}, {X: 10, Y: 17}}

// MovementMode is Dave's locomotion: *WalkingMode or *JetpackMode.
type MovementMode interface {
	movementMode()
}

// WalkingMode moves under gravity with jumps.
type WalkingMode struct {
	Jump      MoveState
	JumpTimer uint8
}

// JetpackMode flies freely and ignores gravity.
type JetpackMode struct {
	Up   MoveState
	Down MoveState
}

func (*WalkingMode) movementMode() {}
func (*JetpackMode) movementMode() {}

// DaveState is Dave's life-cycle: *DaveLive, *DaveDying or *DaveDead.
type DaveState interface {
	daveState()
}

// DaveLive is normal play.
type DaveLive struct {
	Mode        MovementMode
	Left        MoveState
	Right       MoveState
	Toggle      MoveState
	Fire        MoveState
	Facing      Direction
	OnGround    bool
	ToggleDelay uint8
	// Probes holds the last sampled probes; true means passable.
	Probes [NumProbes]bool
}

// DaveDying counts down to DaveDead.
type DaveDying struct {
	Countdown uint8
}

// DaveDead is terminal until LevelRestart or NewLevel.
type DaveDead struct{}

func (*DaveLive) daveState()  {}
func (*DaveDying) daveState() {}
func (*DaveDead) daveState()  {}

func newDaveLive() *DaveLive {
	return &DaveLive{Mode: &WalkingMode{}, Facing: DirMiddle}
}

// Dave is the player character.
type Dave struct {
	Cell     Cell
	Pixel    Pixel
	AnimTick int
	State    DaveState

	HasGun     bool
	HasJetpack bool
	Fuel       uint8
	Bullet     *Bullet

	pickup    Cell
	hasPickup bool
	atDoor    bool
}

// NewDave returns a live Dave standing at start.
func NewDave(start Cell) *Dave {
	d := &Dave{AnimTick: 1}
	d.LevelRestart(start)
	return d
}

// live returns the live state, or nil.
func (d *Dave) live() *DaveLive {
	s, _ := d.State.(*DaveLive)
	return s
}

// IsAlive reports whether Dave is in normal play.
func (d *Dave) IsAlive() bool {
	return d.live() != nil
}

// IsDying reports whether Dave is playing his death animation.
func (d *Dave) IsDying() bool {
	_, ok := d.State.(*DaveDying)
	return ok
}

// IsDead reports whether Dave finished dying.
func (d *Dave) IsDead() bool {
	_, ok := d.State.(*DaveDead)
	return ok
}

// IsOnGround reports the on-ground flag from the last probe sample.
func (d *Dave) IsOnGround() bool {
	if s := d.live(); s != nil {
		return s.OnGround
	}
	return false
}

// IsJetpacking reports whether Dave is flying.
func (d *Dave) IsJetpacking() bool {
	if s := d.live(); s != nil {
		_, ok := s.Mode.(*JetpackMode)
		return ok
	}
	return false
}

// IsJumping reports whether a walking jump is executing.
func (d *Dave) IsJumping() bool {
	if s := d.live(); s != nil {
		if w, ok := s.Mode.(*WalkingMode); ok {
			return w.Jump == MoveDo
		}
	}
	return false
}

// Facing returns the last horizontal facing.
func (d *Dave) Facing() Direction {
	if s := d.live(); s != nil {
		return s.Facing
	}
	return DirMiddle
}

// PendingPickup returns the pickup cell recorded by the last probe sample.
func (d *Dave) PendingPickup() (Cell, bool) {
	return d.pickup, d.hasPickup
}

// ClearPickup forgets the pending pickup.
func (d *Dave) ClearPickup() {
	d.hasPickup = false
}

// AtDoor reports whether a probe touched the door.
func (d *Dave) AtDoor() bool {
	return d.atDoor
}

// ClearDoor forgets the door contact.
func (d *Dave) ClearDoor() {
	d.atDoor = false
}

// GrantJetpack gives Dave a jetpack with the given fuel.
func (d *Dave) GrantJetpack(fuel uint8) {
	d.HasJetpack = true
	d.Fuel = fuel
}

// CheckCollision samples all probes against the level. A hazard under any
// probe kills Dave after sampling; the return value reports that.
func (d *Dave) CheckCollision(level *Level) bool {
	s := d.live()
	if s == nil {
		return false
	}

	hazard := false
	for i, off := range probeOffsets {
		c := Classify(level, d.Pixel.Add(off.X, off.Y))
		switch c.Kind {
		case CollisionWall:
			s.Probes[i] = false
		case CollisionHazard:
			s.Probes[i] = false
			hazard = true
		case CollisionDoor:
			d.atDoor = true
			s.Probes[i] = true
		case CollisionPickup:
			d.pickup = c.Cell
			d.hasPickup = true
			s.Probes[i] = true
		default:
			s.Probes[i] = true
		}
	}
	s.OnGround = !s.Probes[ProbeGroundRight] || !s.Probes[ProbeGroundLeft]

	if hazard {
		d.Kill()
	}
	return hazard
}

// Input arms intents from the held-state snapshot. Intents already in Try
// or Do are left alone.
func (d *Dave) Input(in Input) {
	s := d.live()
	if s == nil {
		return
	}

	switch m := s.Mode.(type) {
	case *WalkingMode:
		if in.Jump && s.OnGround {
			m.Jump.arm()
		}
	case *JetpackMode:
		if in.Jump {
			m.Up.arm()
		}
		if in.Down {
			m.Down.arm()
		}
	}
	if in.Right {
		s.Right.arm()
	}
	if in.Left {
		s.Left.arm()
	}
	if in.Fire && d.Bullet == nil {
		s.Fire.arm()
	}
	if in.ToggleJetpack {
		s.Toggle.arm()
	}
}

// VerifyInput promotes Try intents to Do when the sampled probes and
// inventory allow, and drops them otherwise.
func (d *Dave) VerifyInput() {
	s := d.live()
	if s == nil {
		return
	}
	p := s.Probes
	ceiling := p[ProbeCeilingLeft] && p[ProbeCeilingRight]

	s.Left.verify(p[ProbeLeftBottom] && p[ProbeLeftTop])
	s.Right.verify(p[ProbeRightTop] && p[ProbeRightBottom])

	switch m := s.Mode.(type) {
	case *WalkingMode:
		m.Jump.verify(s.OnGround && ceiling)
	case *JetpackMode:
		m.Down.verify(p[ProbeGroundRight] && p[ProbeGroundLeft])
		m.Up.verify(ceiling)
	}

	s.Fire.verify(d.Bullet == nil && d.HasGun)
	s.Toggle.verify(d.HasJetpack && s.ToggleDelay == 0)
}

// Move executes every Do intent and recomputes the grid cell.
func (d *Dave) Move() {
	s := d.live()
	if s == nil {
		return
	}

	if s.Toggle == MoveDo && s.ToggleDelay == 0 {
		switch m := s.Mode.(type) {
		case *WalkingMode:
			s.Mode = &JetpackMode{Up: m.Jump}
		case *JetpackMode:
			s.Mode = &WalkingMode{Jump: m.Up}
		}
		s.Toggle = MoveNone
		s.ToggleDelay = JetpackToggleDelay
	}

	switch m := s.Mode.(type) {
	case *WalkingMode:
		if m.Jump == MoveDo {
			if m.JumpTimer == 0 {
				m.JumpTimer = JumpTicks
				s.Facing = DirMiddle
			}
			if s.Probes[ProbeCeilingLeft] && s.Probes[ProbeCeilingRight] {
				d.Pixel.Y -= JumpRise(m.JumpTimer)
			}
			m.JumpTimer--
			if m.JumpTimer == 0 {
				m.Jump = MoveNone
			}
		}
	case *JetpackMode:
		if m.Up == MoveDo {
			d.Pixel.Y -= jetpackStep
			m.Up = MoveNone
		}
		if m.Down == MoveDo {
			d.Pixel.Y += jetpackStep
			m.Down = MoveNone
		}
	}

	if s.Right == MoveDo {
		d.Pixel.X += walkStep
		d.AnimTick++
		s.Right = MoveNone
		s.Facing = DirRight
	}
	if s.Left == MoveDo {
		d.Pixel.X -= walkStep
		d.AnimTick++
		s.Left = MoveNone
		s.Facing = DirLeft
	}

	if s.Fire == MoveDo {
		b := spawnBullet(SourceDave, s.Facing, d.Pixel)
		d.Bullet = &b
		s.Fire = MoveNone
	}

	d.Cell = CellOf(d.Pixel)
}

// JumpRise is the upward displacement for one jump tick, by the timer value
// before it is decremented.
func JumpRise(timer uint8) int16 {
	switch {
	case timer > 10:
		return 2
	case timer >= 5:
		return 1
	default:
		return 0
	}
}

// ApplyGravity pulls a walking, airborne Dave down, or snaps him onto the
// floor row once both floor probes hit walls. Falling off the bottom of the
// map wraps him to the top.
func (d *Dave) ApplyGravity(level *Level) {
	s := d.live()
	if s == nil || s.OnGround {
		return
	}
	m, ok := s.Mode.(*WalkingMode)
	if !ok || m.Jump == MoveDo {
		return
	}

	left := Classify(level, d.Pixel.Add(floorOffsets[0].X, floorOffsets[0].Y)).Kind
	right := Classify(level, d.Pixel.Add(floorOffsets[1].X, floorOffsets[1].Y)).Kind
	if left != CollisionWall || right != CollisionWall {
		d.Pixel.Y += fallStep
	} else if off := floorMod(d.Pixel.Y, TileSize); off != 0 {
		if off < TileSize/2 {
			d.Pixel.Y -= off
		} else {
			d.Pixel.Y += TileSize - off
		}
	}

	if CellOf(d.Pixel).Y >= LevelHeight {
		d.Pixel.Y = -TileSize
	}
	d.Cell = CellOf(d.Pixel)
}

// Update advances per-tick timers: toggle cooldown, jetpack fuel and the
// dying countdown.
func (d *Dave) Update() {
	switch s := d.State.(type) {
	case *DaveLive:
		if s.ToggleDelay > 0 {
			s.ToggleDelay--
		}
		if m, ok := s.Mode.(*JetpackMode); ok && d.HasJetpack {
			if d.Fuel > 0 {
				d.Fuel--
			}
			if d.Fuel == 0 {
				d.HasJetpack = false
				s.Mode = &WalkingMode{Jump: m.Up}
			}
		}
	case *DaveDying:
		if s.Countdown > 0 {
			s.Countdown--
		}
		if s.Countdown == 0 {
			d.State = &DaveDead{}
		}
	}
}

// Kill starts the death animation. Dave must be alive.
func (d *Dave) Kill() {
	if !d.IsAlive() {
		panic("dave: kill called on a non-live dave")
	}
	d.State = &DaveDying{Countdown: DyingTicks}
}

// LevelRestart puts Dave back at start with fresh intents. Gun and jetpack
// are kept.
func (d *Dave) LevelRestart(start Cell) {
	d.Cell = start
	d.Pixel = PixelOf(start)
	d.State = newDaveLive()
	d.hasPickup = false
}

// NewLevel is LevelRestart that also strips gun, jetpack, door contact and
// any bullet in flight.
func (d *Dave) NewLevel(start Cell) {
	d.LevelRestart(start)
	d.HasGun = false
	d.HasJetpack = false
	d.Fuel = 0
	d.atDoor = false
	d.Bullet = nil
}

// Tile returns the sprite for Dave's current state and animation tick.
func (d *Dave) Tile() TileID {
	switch s := d.State.(type) {
	case *DaveDying:
		return TileExplosion + TileID(s.Countdown%4)
	case *DaveDead:
		return TileBlank
	}

	frame := TileID(d.AnimTick/4) % 3
	switch {
	case d.IsJetpacking() && d.Facing() == DirLeft:
		return TileDaveJetL + frame
	case d.IsJetpacking():
		return TileDaveJetR + frame
	case !d.IsOnGround() && d.Facing() == DirLeft:
		return TileDaveJumpL
	case !d.IsOnGround() && d.Facing() == DirRight:
		return TileDaveJumpR
	case d.Facing() == DirLeft:
		return TileDaveLeft + frame
	case d.Facing() == DirRight:
		return TileDaveRight + frame
	default:
		return TileDaveFront
	}
}
