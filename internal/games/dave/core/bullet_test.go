package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsVisibleBoundaries(t *testing.T) {
	const viewX = 30
	assert.False(t, IsVisible(viewX-1, viewX))
	assert.True(t, IsVisible(viewX, viewX))
	assert.True(t, IsVisible(viewX+19, viewX))
	assert.False(t, IsVisible(viewX+20, viewX))
	assert.False(t, IsVisible(-1, 0))
}

func TestDaveBulletKillsMonsterFootprint(t *testing.T) {
	starts := map[string]Pixel{
		"top-left":     {X: 156, Y: 70},
		"top-right":    {X: 172, Y: 70},
		"bottom-left":  {X: 156, Y: 82},
		"bottom-right": {X: 172, Y: 82},
	}
	for name, start := range starts {
		t.Run(name, func(t *testing.T) {
			l := blankLevel(t)
			monsters := []Monster{EmptySlot(), NewMonster(TileSpider, Cell{X: 10, Y: 4})}
			dave := NewDave(Cell{X: 2, Y: 8})
			b := Bullet{Source: SourceDave, Direction: DirRight, Pixel: start}

			res := ResolveBullet(&b, l, 0, monsters, dave)
			assert.Equal(t, BulletHitMonster, res.Outcome)
			assert.Equal(t, 1, res.Monster)
			assert.True(t, res.Removed())
			assert.True(t, monsters[1].IsDying())
		})
	}
}

func TestDaveBulletMissesOutsideFootprint(t *testing.T) {
	l := blankLevel(t)
	monsters := []Monster{NewMonster(TileSpider, Cell{X: 10, Y: 4})}
	b := Bullet{Source: SourceDave, Direction: DirRight, Pixel: Pixel{X: 188, Y: 70}}

	res := ResolveBullet(&b, l, 0, monsters, NewDave(Cell{X: 2, Y: 8}))
	assert.Equal(t, BulletFlying, res.Outcome)
	assert.False(t, res.Removed())
	assert.Equal(t, Pixel{X: 192, Y: 70}, b.Pixel)
	assert.True(t, monsters[0].IsAlive())
}

func TestDaveBulletIgnoresDyingMonsters(t *testing.T) {
	l := blankLevel(t)
	monsters := []Monster{NewMonster(TileSpider, Cell{X: 10, Y: 4})}
	monsters[0].Kill()
	b := Bullet{Source: SourceDave, Direction: DirRight, Pixel: Pixel{X: 156, Y: 70}}

	res := ResolveBullet(&b, l, 0, monsters, NewDave(Cell{X: 2, Y: 8}))
	assert.Equal(t, BulletFlying, res.Outcome)
}

func TestBulletHitsWall(t *testing.T) {
	l := blankLevel(t)
	l.SetTile(5, 8, TileBlueBrick)
	b := Bullet{Source: SourceDave, Direction: DirRight, Pixel: Pixel{X: 76, Y: 136}}

	res := ResolveBullet(&b, l, 0, nil, NewDave(Cell{X: 2, Y: 8}))
	assert.Equal(t, BulletHitWall, res.Outcome)
}

func TestBulletLeavesView(t *testing.T) {
	l := blankLevel(t)
	dave := NewDave(Cell{X: 2, Y: 8})

	right := Bullet{Source: SourceDave, Direction: DirRight, Pixel: Pixel{X: 316, Y: 136}}
	assert.Equal(t, BulletLeftView, ResolveBullet(&right, l, 0, nil, dave).Outcome)

	left := Bullet{Source: SourceMonster, Direction: DirLeft, Pixel: Pixel{X: 2, Y: 136}}
	assert.Equal(t, BulletLeftView, ResolveBullet(&left, l, 0, nil, dave).Outcome)
	assert.Equal(t, int16(-2), left.Pixel.X)
}

func TestMonsterBulletKillsDave(t *testing.T) {
	l := blankLevel(t)
	dave := NewDave(Cell{X: 2, Y: 8})
	b := Bullet{Source: SourceMonster, Direction: DirLeft, Pixel: Pixel{X: 36, Y: 136}}

	res := ResolveBullet(&b, l, 0, nil, dave)
	assert.Equal(t, BulletHitDave, res.Outcome)
	assert.True(t, dave.IsDying())

	// A dying Dave cannot be hit again.
	b = Bullet{Source: SourceMonster, Direction: DirLeft, Pixel: Pixel{X: 36, Y: 136}}
	res = ResolveBullet(&b, l, 0, nil, dave)
	assert.Equal(t, BulletFlying, res.Outcome)
}

func TestBulletResolutionDeterministic(t *testing.T) {
	run := func() (Resolution, Pixel, bool) {
		l := blankLevel(t)
		l.SetTile(14, 4, TileRock)
		monsters := []Monster{
			NewMonster(TileBones, Cell{X: 12, Y: 6}),
			NewMonster(TileBones, Cell{X: 9, Y: 4}),
		}
		b := Bullet{Source: SourceDave, Direction: DirRight, Pixel: Pixel{X: 130, Y: 70}}
		var res Resolution
		for range 8 {
			res = ResolveBullet(&b, l, 0, monsters, NewDave(Cell{X: 2, Y: 8}))
			if res.Removed() {
				break
			}
		}
		return res, b.Pixel, monsters[1].IsDying()
	}

	r1, p1, k1 := run()
	r2, p2, k2 := run()
	require.Equal(t, r1, r2)
	assert.Equal(t, p1, p2)
	assert.Equal(t, k1, k2)
	assert.Equal(t, BulletHitMonster, r1.Outcome)
}

func TestBulletTiles(t *testing.T) {
	assert.Equal(t, TileBulletDaveR, Bullet{Source: SourceDave, Direction: DirRight}.Tile())
	assert.Equal(t, TileBulletDaveL, Bullet{Source: SourceDave, Direction: DirLeft}.Tile())
	assert.Equal(t, TileBulletMonL, Bullet{Source: SourceMonster, Direction: DirLeft}.Tile())
}
