package core

import (
	"errors"
	"fmt"
)

// NumTiles is the size of the tile catalogue.
const NumTiles = 158

// ErrInvalidTileID is returned when a tile number is outside the catalogue.
var ErrInvalidTileID = errors.New("invalid tile id")

// TileID identifies one tile archetype. Values are always below NumTiles
// when built through NewTileID or the named constants.
type TileID uint8

// Named tiles. Ranges of animated or directional sprites are addressed by
// their first frame.
const (
	TileBlank        TileID = 0
	TileRockWall     TileID = 1
	TileDoor         TileID = 2
	TileGirder       TileID = 3
	TileJetpack      TileID = 4
	TileBlueWall     TileID = 5
	TileFire         TileID = 6 // 6..9
	TileTrophy       TileID = 10 // 10..14
	TilePipeH        TileID = 15
	TilePipeV        TileID = 16
	TileRedBrick     TileID = 17
	TileRock         TileID = 18
	TileBlueBrick    TileID = 19
	TileGun          TileID = 20
	TileSlopeUp      TileID = 21
	TileSlopeDown    TileID = 22
	TileSlopeUpAlt   TileID = 23
	TileSlopeDownAlt TileID = 24
	TileWater        TileID = 25 // 25..28
	TilePlatform     TileID = 29
	TilePlatformEnd  TileID = 30
	TileStars        TileID = 31
	TileMoon         TileID = 32
	TileTree         TileID = 33 // 33..35
	TileWeeds        TileID = 36 // 36..40
	TileVine         TileID = 41
	TileBlueGem      TileID = 47
	TilePurpleOrb    TileID = 48
	TileRedGem       TileID = 49
	TileCrown        TileID = 50
	TileRing         TileID = 51
	TileScepter      TileID = 52
	TileDaveFront    TileID = 56
	TileDaveRight    TileID = 53 // 53..55
	TileDaveLeft     TileID = 57 // 57..59
	TileDaveJumpR    TileID = 67
	TileDaveJumpL    TileID = 68
	TileDaveJetR     TileID = 77 // 77..79
	TileDaveJetL     TileID = 80 // 80..82
	TileMonsterFirst TileID = 89
	TileMonsterLast  TileID = 120
	TileBulletMonR   TileID = 121
	TileBulletMonL   TileID = 124
	TileBulletDaveR  TileID = 127
	TileBulletDaveL  TileID = 128
	TileExplosion    TileID = 129 // 129..132
	TileDigitZero    TileID = 148 // 148..157
)

// Monster sprite kinds, one per four-frame block.
const (
	TileSpider   TileID = 89
	TileSaucer   TileID = 93
	TileRedBall  TileID = 97
	TileSunWheel TileID = 101
	TileBones    TileID = 105
	TileDisc     TileID = 109
	TileGreenJaw TileID = 113
	TileBat      TileID = 117
)

// NewTileID validates n against the catalogue.
func NewTileID(n int) (TileID, error) {
	if n < 0 || n >= NumTiles {
		return 0, fmt.Errorf("%w: %d", ErrInvalidTileID, n)
	}
	return TileID(n), nil
}

// MustTileID is NewTileID for values known to be valid. It panics otherwise.
func MustTileID(n int) TileID {
	id, err := NewTileID(n)
	if err != nil {
		panic(err)
	}
	return id
}

// Valid reports whether the id is inside the catalogue.
func (t TileID) Valid() bool {
	return int(t) < NumTiles
}

// IsCollidable reports whether the tile blocks movement.
func (t TileID) IsCollidable() bool {
	switch t {
	case TileRockWall, TileGirder, TileBlueWall,
		TilePipeH, TilePipeV, TileRedBrick, TileRock, TileBlueBrick,
		TileSlopeUp, TileSlopeDown, TileSlopeUpAlt, TileSlopeDownAlt,
		TilePlatform, TilePlatformEnd:
		return true
	}
	return false
}

// IsHazard reports whether touching the tile kills Dave.
func (t TileID) IsHazard() bool {
	return inFrames(t, TileFire, 4) || inFrames(t, TileWater, 4) || inFrames(t, TileWeeds, 5)
}

// IsPickup reports whether the tile is consumed on touch.
func (t TileID) IsPickup() bool {
	switch {
	case t == TileJetpack, t == TileGun:
		return true
	case t.IsTrophy():
		return true
	case t >= TileBlueGem && t <= TileScepter:
		return true
	}
	return false
}

// IsTrophy reports whether the tile is the level trophy. Trophies are
// also pickups.
func (t TileID) IsTrophy() bool {
	return inFrames(t, TileTrophy, 5)
}

// IsDoor reports whether the tile is the level exit.
func (t TileID) IsDoor() bool {
	return t == TileDoor
}

// IsClimbable reports whether the tile is a tree or vine.
func (t TileID) IsClimbable() bool {
	return inFrames(t, TileTree, 3) || t == TileVine
}

// IsMonster reports whether the tile is a monster sprite.
func (t TileID) IsMonster() bool {
	return t >= TileMonsterFirst && t <= TileMonsterLast
}

// FrameCount returns the number of animation frames starting at t, or 1
// for static tiles.
func (t TileID) FrameCount() int {
	switch t {
	case TileFire, TileWater, TileExplosion:
		return 4
	case TileTrophy, TileWeeds:
		return 5
	}
	if t.IsMonster() && (t-TileMonsterFirst)%4 == 0 {
		return 4
	}
	return 1
}

// BaseFrame maps any frame of an animated tile back to its first frame.
func (t TileID) BaseFrame() TileID {
	for _, base := range []TileID{TileFire, TileTrophy, TileWater, TileWeeds, TileExplosion} {
		if inFrames(t, base, base.FrameCount()) {
			return base
		}
	}
	if t.IsMonster() {
		return t - (t-TileMonsterFirst)%4
	}
	return t
}

// Frame returns the animation frame of t shown on the given tick counter.
func (t TileID) Frame(tick uint64) TileID {
	base := t.BaseFrame()
	n := base.FrameCount()
	if n == 1 {
		return t
	}
	return base + TileID(tick%uint64(n))
}

func inFrames(t, base TileID, n int) bool {
	return t >= base && int(t) < int(base)+n
}
