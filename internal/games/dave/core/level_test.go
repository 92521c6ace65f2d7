package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLevelValidates(t *testing.T) {
	_, err := NewLevel(make([]TileID, 10), nil)
	assert.Error(t, err)

	_, err = NewLevel(make([]TileID, LevelWidth*LevelHeight), make([]PathDelta, PathLen+1))
	assert.Error(t, err)

	tiles := make([]TileID, LevelWidth*LevelHeight)
	tiles[5] = TileID(NumTiles)
	_, err = NewLevel(tiles, nil)
	require.ErrorIs(t, err, ErrInvalidTileID)
}

func TestLevelTileAtBounds(t *testing.T) {
	l := blankLevel(t)
	require.True(t, l.SetTile(99, 9, TileDoor))

	tile, ok := l.TileAt(99, 9)
	assert.True(t, ok)
	assert.Equal(t, TileDoor, tile)

	for _, c := range [][2]int{{-1, 0}, {0, -1}, {100, 0}, {0, 10}} {
		_, ok := l.TileAt(c[0], c[1])
		assert.False(t, ok, "cell %v", c)
		assert.False(t, l.SetTile(c[0], c[1], TileRockWall))
	}
}

func TestLevelPathPadding(t *testing.T) {
	l := blankLevel(t, PathDelta{X: 4}, PathDelta{Y: 2})

	assert.Equal(t, PathDelta{X: 4}, l.PathAt(0))
	assert.Equal(t, PathDelta{Y: 2}, l.PathAt(1))
	assert.Equal(t, PathEnd, l.PathAt(2))
	assert.Equal(t, PathEnd, l.PathAt(PathLen-1))
	assert.Equal(t, 2, l.PathLength())

	assert.Equal(t, PathStart, PathIndex(PathLen-1).Next())
}

func TestLevelCloneIsIndependent(t *testing.T) {
	l := blankLevel(t)
	c := l.Clone()
	c.SetTile(1, 1, TileGun)

	tile, _ := l.TileAt(1, 1)
	assert.Equal(t, TileBlank, tile)
}

func TestLevelIDRange(t *testing.T) {
	_, err := NewLevelID(-1)
	require.ErrorIs(t, err, ErrInvalidLevelID)
	_, err = NewLevelID(NumLevels)
	require.ErrorIs(t, err, ErrInvalidLevelID)

	id := levelID(t, 4)
	assert.Equal(t, 4, id.Index())
	assert.Equal(t, 5, id.Number())
	assert.Equal(t, "level 5", id.String())
}

func TestLevelIDNextPrev(t *testing.T) {
	next, ok := FirstLevel().Next()
	require.True(t, ok)
	assert.Equal(t, 1, next.Index())

	last, ok := LastLevel().Next()
	assert.False(t, ok)
	assert.Equal(t, LastLevel(), last)

	assert.Equal(t, FirstLevel(), FirstLevel().Prev())
	assert.Equal(t, 8, LastLevel().Prev().Index())
}

func TestNewLevelsRequiresFullSet(t *testing.T) {
	_, err := NewLevels([]*Level{blankLevel(t)}, nil)
	assert.Error(t, err)

	s := levelSet(t, blankLevel(t))
	assert.Equal(t, "level 3", s.Name(levelID(t, 2)))
}
