package core

// BulletSpeed is how far a bullet travels per tick, in pixels.
const BulletSpeed = 4

// Muzzle offsets from the shooter's pixel position.
const (
	muzzleForward  = 18
	muzzleBackward = 8
	muzzleHeight   = 8
)

// BulletSource tells which side fired a bullet.
type BulletSource uint8

const (
	SourceDave BulletSource = iota
	SourceMonster
)

// String returns a human-readable name for the source.
func (s BulletSource) String() string {
	if s == SourceDave {
		return "Dave"
	}
	return "Monster"
}

// Bullet is a projectile in flight.
type Bullet struct {
	Source    BulletSource
	Direction Direction
	Pixel     Pixel
}

// spawnBullet places a bullet at the muzzle of a shooter at origin facing
// dir. A neutral facing fires to the right.
func spawnBullet(src BulletSource, dir Direction, origin Pixel) Bullet {
	b := Bullet{Source: src, Direction: DirRight, Pixel: origin.Add(muzzleForward, muzzleHeight)}
	if dir == DirLeft {
		b.Direction = DirLeft
		b.Pixel = origin.Add(-muzzleBackward, muzzleHeight)
	}
	return b
}

// Cell returns the grid cell the bullet is in.
func (b Bullet) Cell() Cell {
	return CellOf(b.Pixel)
}

// Advance moves the bullet one tick along its direction.
func (b *Bullet) Advance() {
	if b.Direction == DirLeft {
		b.Pixel.X -= BulletSpeed
	} else {
		b.Pixel.X += BulletSpeed
	}
}

// Tile returns the sprite used to draw the bullet.
func (b Bullet) Tile() TileID {
	switch {
	case b.Source == SourceDave && b.Direction == DirLeft:
		return TileBulletDaveL
	case b.Source == SourceDave:
		return TileBulletDaveR
	case b.Direction == DirLeft:
		return TileBulletMonL
	default:
		return TileBulletMonR
	}
}

// IsVisible reports whether column x lies in the view window
// [viewX, viewX+ViewWidth).
func IsVisible(x int, viewX uint8) bool {
	return x >= int(viewX) && x < int(viewX)+ViewWidth
}

// BulletOutcome is the result of resolving a bullet for one tick.
type BulletOutcome uint8

const (
	BulletFlying BulletOutcome = iota
	BulletHitWall
	BulletLeftView
	BulletHitMonster
	BulletHitDave
)

// String returns a human-readable name for the outcome.
func (o BulletOutcome) String() string {
	switch o {
	case BulletFlying:
		return "Flying"
	case BulletHitWall:
		return "HitWall"
	case BulletLeftView:
		return "LeftView"
	case BulletHitMonster:
		return "HitMonster"
	case BulletHitDave:
		return "HitDave"
	default:
		return "Unknown"
	}
}

// Resolution reports what happened to a bullet. Monster is the roster slot
// hit when Outcome is BulletHitMonster, -1 otherwise.
type Resolution struct {
	Outcome BulletOutcome
	Monster int
}

// Removed reports whether the bullet should be discarded.
func (r Resolution) Removed() bool {
	return r.Outcome != BulletFlying
}

// ResolveBullet advances b and tests it against walls, the view window and
// the opposing side. Hit entities are killed here; the caller discards the
// bullet when the resolution says so.
func ResolveBullet(b *Bullet, level *Level, viewX uint8, monsters []Monster, dave *Dave) Resolution {
	b.Advance()

	if Classify(level, b.Pixel).Kind == CollisionWall {
		return Resolution{Outcome: BulletHitWall, Monster: -1}
	}

	cell := b.Cell()
	if !IsVisible(int(cell.X), viewX) {
		return Resolution{Outcome: BulletLeftView, Monster: -1}
	}

	switch b.Source {
	case SourceDave:
		for i := range monsters {
			m := &monsters[i]
			if !m.IsAlive() {
				continue
			}
			if m.Covers(cell) {
				m.Kill()
				return Resolution{Outcome: BulletHitMonster, Monster: i}
			}
		}
	case SourceMonster:
		if dave.IsAlive() && dave.Cell == cell {
			dave.Kill()
			return Resolution{Outcome: BulletHitDave, Monster: -1}
		}
	}

	return Resolution{Outcome: BulletFlying, Monster: -1}
}
