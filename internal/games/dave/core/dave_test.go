package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDaveProbesOnFloor(t *testing.T) {
	l := floorLevel(t)
	d := groundedDave(t, l)

	live := d.State.(*DaveLive)
	assert.False(t, live.Probes[ProbeGroundLeft])
	assert.False(t, live.Probes[ProbeGroundRight])
	assert.True(t, live.Probes[ProbeCeilingLeft])
	assert.True(t, live.Probes[ProbeRightTop])
}

func TestDaveHorizontalNeverExecutesWhenBlocked(t *testing.T) {
	for mask := range 1 << NumProbes {
		d := NewDave(Cell{X: 2, Y: 8})
		live := d.State.(*DaveLive)
		for i := range NumProbes {
			live.Probes[i] = mask&(1<<i) != 0
		}
		live.Left = MoveTry
		live.Right = MoveTry
		d.VerifyInput()

		if live.Right == MoveDo {
			assert.True(t, live.Probes[ProbeRightTop] && live.Probes[ProbeRightBottom], "mask %08b", mask)
		}
		if live.Left == MoveDo {
			assert.True(t, live.Probes[ProbeLeftTop] && live.Probes[ProbeLeftBottom], "mask %08b", mask)
		}
	}
}

func TestDaveBlockedByWall(t *testing.T) {
	l := floorLevel(t)
	l.SetTile(3, 8, TileRedBrick)

	d := NewDave(Cell{X: 2, Y: 8})
	d.Pixel.X = 36
	d.CheckCollision(l)
	d.Input(Input{Right: true})
	d.VerifyInput()

	live := d.State.(*DaveLive)
	assert.Equal(t, MoveNone, live.Right)

	d.Move()
	assert.Equal(t, int16(36), d.Pixel.X)
}

func TestDaveWalks(t *testing.T) {
	l := floorLevel(t)
	d := groundedDave(t, l)

	d.Input(Input{Right: true})
	d.VerifyInput()
	d.Move()
	assert.Equal(t, Pixel{X: 34, Y: 128}, d.Pixel)
	assert.Equal(t, DirRight, d.Facing())
	assert.Equal(t, 2, d.AnimTick)

	d.CheckCollision(l)
	d.Input(Input{Left: true})
	d.VerifyInput()
	d.Move()
	assert.Equal(t, Pixel{X: 32, Y: 128}, d.Pixel)
	assert.Equal(t, DirLeft, d.Facing())
}

func TestJumpRiseTiers(t *testing.T) {
	tests := []struct {
		timer uint8
		want  int16
	}{
		{25, 2},
		{11, 2},
		{10, 1},
		{5, 1},
		{4, 0},
		{1, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, JumpRise(tt.timer), "timer %d", tt.timer)
	}
	assert.Less(t, JumpRise(7), JumpRise(15))
}

func TestDaveJumpDisplacement(t *testing.T) {
	l := floorLevel(t)
	d := groundedDave(t, l)

	d.Input(Input{Jump: true})
	d.VerifyInput()
	live := d.State.(*DaveLive)
	walk := live.Mode.(*WalkingMode)
	require.Equal(t, MoveDo, walk.Jump)

	startY := d.Pixel.Y
	var rises []int16
	for tick := range JumpTicks {
		if tick > 0 {
			d.CheckCollision(l)
			d.Input(Input{})
			d.VerifyInput()
		}
		before := d.Pixel.Y
		d.Move()
		if tick == 0 {
			assert.Equal(t, uint8(JumpTicks-1), walk.JumpTimer)
			assert.Equal(t, DirMiddle, live.Facing)
		}
		rises = append(rises, before-d.Pixel.Y)
	}

	for i, r := range rises {
		assert.Equal(t, JumpRise(uint8(JumpTicks-i)), r, "tick %d", i)
	}
	assert.Equal(t, int16(15*2+6*1), startY-d.Pixel.Y)
	assert.Equal(t, MoveNone, walk.Jump)
	assert.Equal(t, uint8(0), walk.JumpTimer)
}

func TestDaveJumpNeedsGroundAndCeiling(t *testing.T) {
	l := floorLevel(t)
	l.SetTile(2, 7, TileRockWall)
	d := groundedDave(t, l)

	d.Input(Input{Jump: true})
	d.VerifyInput()
	walk := d.State.(*DaveLive).Mode.(*WalkingMode)
	assert.Equal(t, MoveNone, walk.Jump)

	air := NewDave(Cell{X: 2, Y: 3})
	air.CheckCollision(l)
	require.False(t, air.IsOnGround())
	air.Input(Input{Jump: true})
	assert.Equal(t, MoveNone, air.State.(*DaveLive).Mode.(*WalkingMode).Jump)
}

func TestDaveGravity(t *testing.T) {
	l := floorLevel(t)

	d := NewDave(Cell{X: 2, Y: 3})
	d.CheckCollision(l)
	d.ApplyGravity(l)
	assert.Equal(t, int16(3*TileSize+fallStep), d.Pixel.Y)

	// Floor probes still land in the empty row above the floor.
	d = NewDave(Cell{X: 2, Y: 8})
	d.Pixel.Y = 8*TileSize - 3
	d.CheckCollision(l)
	require.False(t, d.IsOnGround())
	d.ApplyGravity(l)
	assert.Equal(t, int16(8*TileSize-1), d.Pixel.Y)
}

func TestDaveGravitySnapsToRow(t *testing.T) {
	l := floorLevel(t)
	l.SetTile(2, 5, TileRockWall)
	l.SetTile(3, 5, TileRockWall)

	d := NewDave(Cell{X: 2, Y: 4})
	d.Pixel.Y = 4*TileSize - 1
	d.CheckCollision(l)
	require.False(t, d.IsOnGround())
	d.ApplyGravity(l)
	assert.Equal(t, int16(4*TileSize), d.Pixel.Y)
	assert.Equal(t, Cell{X: 2, Y: 4}, d.Cell)
}

func TestDaveFallsOffBottomWraps(t *testing.T) {
	l := blankLevel(t)
	d := NewDave(Cell{X: 2, Y: 9})
	d.Pixel.Y = LevelHeight*TileSize - fallStep
	d.CheckCollision(l)
	d.ApplyGravity(l)
	assert.Equal(t, int16(-TileSize), d.Pixel.Y)
	assert.Equal(t, int8(-1), d.Cell.Y)
}

func TestDaveJetpackFuel(t *testing.T) {
	d := NewDave(Cell{X: 2, Y: 4})
	d.GrantJetpack(3)
	live := d.State.(*DaveLive)
	live.Mode = &JetpackMode{Up: MoveTry}

	d.Update()
	assert.Equal(t, uint8(2), d.Fuel)
	assert.True(t, d.IsJetpacking())

	d.Update()
	assert.Equal(t, uint8(1), d.Fuel)
	assert.True(t, d.IsJetpacking())

	d.Update()
	assert.Equal(t, uint8(0), d.Fuel)
	assert.False(t, d.HasJetpack)
	walk, ok := live.Mode.(*WalkingMode)
	require.True(t, ok)
	assert.Equal(t, MoveTry, walk.Jump)
}

func TestDaveJetpackToggleCooldown(t *testing.T) {
	l := blankLevel(t)
	d := NewDave(Cell{X: 2, Y: 4})
	d.GrantJetpack(DefaultJetpackFuel)

	toggle := func() {
		d.CheckCollision(l)
		d.Input(Input{ToggleJetpack: true})
		d.VerifyInput()
		d.Move()
	}

	toggle()
	require.True(t, d.IsJetpacking())
	live := d.State.(*DaveLive)
	assert.Equal(t, uint8(JetpackToggleDelay), live.ToggleDelay)

	toggle()
	assert.True(t, d.IsJetpacking(), "toggle must be dropped during cooldown")
	assert.Equal(t, MoveNone, live.Toggle)

	for range JetpackToggleDelay {
		d.Update()
	}
	toggle()
	assert.False(t, d.IsJetpacking())
}

func TestDaveToggleNeedsJetpack(t *testing.T) {
	l := blankLevel(t)
	d := NewDave(Cell{X: 2, Y: 4})
	d.CheckCollision(l)
	d.Input(Input{ToggleJetpack: true})
	d.VerifyInput()
	d.Move()
	assert.False(t, d.IsJetpacking())
}

func TestDaveJetpackFlies(t *testing.T) {
	l := blankLevel(t)
	d := NewDave(Cell{X: 2, Y: 4})
	d.GrantJetpack(DefaultJetpackFuel)
	d.State.(*DaveLive).Mode = &JetpackMode{}

	d.CheckCollision(l)
	d.Input(Input{Jump: true})
	d.VerifyInput()
	d.Move()
	assert.Equal(t, int16(4*TileSize-jetpackStep), d.Pixel.Y)

	d.CheckCollision(l)
	d.Input(Input{Down: true})
	d.VerifyInput()
	d.Move()
	assert.Equal(t, int16(4*TileSize), d.Pixel.Y)

	d.CheckCollision(l)
	d.ApplyGravity(l)
	assert.Equal(t, int16(4*TileSize), d.Pixel.Y, "no gravity while flying")
}

func TestDaveFire(t *testing.T) {
	l := floorLevel(t)
	d := groundedDave(t, l)

	d.Input(Input{Fire: true})
	d.VerifyInput()
	d.Move()
	assert.Nil(t, d.Bullet, "no gun, no bullet")

	d.HasGun = true
	d.CheckCollision(l)
	d.Input(Input{Fire: true})
	d.VerifyInput()
	d.Move()
	require.NotNil(t, d.Bullet)
	assert.Equal(t, Bullet{Source: SourceDave, Direction: DirRight, Pixel: Pixel{X: 50, Y: 136}}, *d.Bullet)

	d.Bullet = nil
	d.State.(*DaveLive).Facing = DirLeft
	d.CheckCollision(l)
	d.Input(Input{Fire: true})
	d.VerifyInput()
	d.Move()
	require.NotNil(t, d.Bullet)
	assert.Equal(t, Pixel{X: 24, Y: 136}, d.Bullet.Pixel)
	assert.Equal(t, DirLeft, d.Bullet.Direction)
}

func TestDaveHazardKills(t *testing.T) {
	l := floorLevel(t)
	l.SetTile(2, 9, TileFire)
	d := NewDave(Cell{X: 2, Y: 8})

	assert.True(t, d.CheckCollision(l))
	assert.True(t, d.IsDying())
}

func TestDavePickupAndDoorFlags(t *testing.T) {
	l := floorLevel(t)
	l.SetTile(2, 7, TileRing)
	l.SetTile(3, 8, TileDoor)
	d := NewDave(Cell{X: 2, Y: 8})
	d.Pixel.X = 36
	d.CheckCollision(l)

	cell, ok := d.PendingPickup()
	require.True(t, ok)
	assert.Equal(t, Cell{X: 2, Y: 7}, cell)
	assert.True(t, d.AtDoor())
}

func TestDaveDyingCountdown(t *testing.T) {
	d := NewDave(Cell{X: 2, Y: 8})
	d.Kill()
	for range DyingTicks - 1 {
		d.Update()
		require.True(t, d.IsDying())
	}
	d.Update()
	assert.True(t, d.IsDead())
	assert.Panics(t, d.Kill)
}

func TestDaveResets(t *testing.T) {
	d := NewDave(Cell{X: 2, Y: 8})
	d.HasGun = true
	d.GrantJetpack(50)
	d.Bullet = &Bullet{}
	d.Kill()

	d.LevelRestart(Cell{X: 5, Y: 3})
	assert.True(t, d.IsAlive())
	assert.Equal(t, Pixel{X: 80, Y: 48}, d.Pixel)
	assert.True(t, d.HasGun)
	assert.True(t, d.HasJetpack)

	d.NewLevel(Cell{X: 1, Y: 8})
	assert.False(t, d.HasGun)
	assert.False(t, d.HasJetpack)
	assert.Nil(t, d.Bullet)
	assert.False(t, d.AtDoor())
	assert.Equal(t, Cell{X: 1, Y: 8}, d.Cell)
}
