package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTileIDBounds(t *testing.T) {
	_, err := NewTileID(-1)
	require.ErrorIs(t, err, ErrInvalidTileID)

	_, err = NewTileID(NumTiles)
	require.ErrorIs(t, err, ErrInvalidTileID)

	id, err := NewTileID(NumTiles - 1)
	require.NoError(t, err)
	assert.Equal(t, TileID(NumTiles-1), id)

	assert.Panics(t, func() { MustTileID(200) })
}

func TestTilePredicatesExclusive(t *testing.T) {
	for n := range NumTiles {
		tile := MustTileID(n)
		classes := 0
		for _, pred := range []func(TileID) bool{
			TileID.IsCollidable,
			TileID.IsHazard,
			TileID.IsPickup,
			TileID.IsDoor,
			TileID.IsClimbable,
		} {
			if pred(tile) {
				classes++
			}
		}
		assert.LessOrEqual(t, classes, 1, "tile %d matches %d classes", n, classes)

		if tile.IsTrophy() {
			assert.True(t, tile.IsPickup(), "trophy tile %d must be a pickup", n)
		}
	}
}

func TestTileClassification(t *testing.T) {
	walls := []TileID{1, 3, 5, 15, 16, 17, 18, 19, 21, 22, 23, 24, 29, 30}
	for _, w := range walls {
		assert.True(t, w.IsCollidable(), "tile %d", w)
	}
	for _, h := range []TileID{6, 9, 25, 28, 36, 40} {
		assert.True(t, h.IsHazard(), "tile %d", h)
	}
	for _, p := range []TileID{4, 10, 14, 20, 47, 52} {
		assert.True(t, p.IsPickup(), "tile %d", p)
	}
	for _, c := range []TileID{33, 34, 35, 41} {
		assert.True(t, c.IsClimbable(), "tile %d", c)
	}
	assert.True(t, TileDoor.IsDoor())
	assert.False(t, TileBlank.IsCollidable())
	assert.False(t, TileStars.IsHazard())
}

func TestTileFrames(t *testing.T) {
	assert.Equal(t, 4, TileFire.FrameCount())
	assert.Equal(t, 5, TileTrophy.FrameCount())
	assert.Equal(t, 1, TileRockWall.FrameCount())

	assert.Equal(t, TileFire, TileID(8).BaseFrame())
	assert.Equal(t, TileSaucer, TileID(95).BaseFrame())

	assert.Equal(t, TileID(7), TileFire.Frame(5))
	assert.Equal(t, TileTrophy, TileTrophy.Frame(10))
	assert.Equal(t, TileRockWall, TileRockWall.Frame(3))
}
