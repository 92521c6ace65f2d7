package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// blankLevel returns an empty level with a patrol path.
func blankLevel(t *testing.T, path ...PathDelta) *Level {
	t.Helper()
	l, err := NewLevel(make([]TileID, LevelWidth*LevelHeight), path)
	require.NoError(t, err)
	return l
}

// floorLevel returns a level whose bottom row is solid rock.
func floorLevel(t *testing.T, path ...PathDelta) *Level {
	t.Helper()
	l := blankLevel(t, path...)
	for x := range LevelWidth {
		l.SetTile(x, LevelHeight-1, TileRockWall)
	}
	return l
}

// levelSet repeats one level for every slot.
func levelSet(t *testing.T, l *Level) *Levels {
	t.Helper()
	all := make([]*Level, NumLevels)
	for i := range all {
		all[i] = l.Clone()
	}
	s, err := NewLevels(all, nil)
	require.NoError(t, err)
	return s
}

// newTestWorld starts a world on a flat floor with the given options.
func newTestWorld(t *testing.T, opts Options) *World {
	t.Helper()
	return NewWorld(levelSet(t, floorLevel(t)), opts)
}

// groundedDave returns a live Dave standing on the floor at (2,8) with
// probes already sampled.
func groundedDave(t *testing.T, l *Level) *Dave {
	t.Helper()
	d := NewDave(Cell{X: 2, Y: 8})
	require.False(t, d.CheckCollision(l))
	require.True(t, d.IsOnGround())
	return d
}

func levelID(t *testing.T, n int) LevelID {
	t.Helper()
	id, err := NewLevelID(n)
	require.NoError(t, err)
	return id
}
