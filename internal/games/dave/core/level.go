package core

import (
	"errors"
	"fmt"
)

// NumLevels is the number of levels in a full run.
const NumLevels = 10

// PathLen is the fixed capacity of a level's monster patrol path.
const PathLen = 128

// ErrInvalidLevelID is returned when a level number is out of range.
var ErrInvalidLevelID = errors.New("invalid level id")

// PathDelta is one patrol waypoint: a relative move in pixels.
type PathDelta = Position[int8]

// PathEnd marks the end of a patrol path; reading it wraps to the start.
var PathEnd = PathDelta{X: -22, Y: -22}

// PathIndex addresses the patrol path. Its arithmetic wraps at PathLen, so
// any value produced by PathStart and Next is in range.
type PathIndex uint8

// PathStart is the first waypoint.
const PathStart PathIndex = 0

// Next returns the following waypoint index.
func (i PathIndex) Next() PathIndex {
	return (i + 1) % PathLen
}

// Level is a 100x10 tile grid plus the shared monster patrol path.
type Level struct {
	tiles [LevelWidth * LevelHeight]TileID
	path  [PathLen]PathDelta
}

// NewLevel builds a level from row-major tiles and a patrol path. A path
// shorter than PathLen is padded with PathEnd.
func NewLevel(tiles []TileID, path []PathDelta) (*Level, error) {
	if len(tiles) != LevelWidth*LevelHeight {
		return nil, fmt.Errorf("level: want %d tiles, got %d", LevelWidth*LevelHeight, len(tiles))
	}
	if len(path) > PathLen {
		return nil, fmt.Errorf("level: path has %d waypoints, max %d", len(path), PathLen)
	}

	l := &Level{}
	for i, t := range tiles {
		if !t.Valid() {
			return nil, fmt.Errorf("level: tile %d: %w: %d", i, ErrInvalidTileID, t)
		}
		l.tiles[i] = t
	}
	copy(l.path[:], path)
	for i := len(path); i < PathLen; i++ {
		l.path[i] = PathEnd
	}
	return l, nil
}

// TileAt returns the tile at a cell. ok is false outside the grid.
func (l *Level) TileAt(x, y int) (TileID, bool) {
	if x < 0 || x >= LevelWidth || y < 0 || y >= LevelHeight {
		return TileBlank, false
	}
	return l.tiles[y*LevelWidth+x], true
}

// SetTile replaces the tile at a cell. Out-of-range cells are ignored.
func (l *Level) SetTile(x, y int, t TileID) bool {
	if x < 0 || x >= LevelWidth || y < 0 || y >= LevelHeight {
		return false
	}
	l.tiles[y*LevelWidth+x] = t
	return true
}

// PathAt returns the waypoint at i.
func (l *Level) PathAt(i PathIndex) PathDelta {
	return l.path[i%PathLen]
}

// PathLength returns the number of waypoints before the first PathEnd.
func (l *Level) PathLength() int {
	for i, d := range l.path {
		if d == PathEnd {
			return i
		}
	}
	return PathLen
}

// Tiles returns a row-major copy of the grid.
func (l *Level) Tiles() []TileID {
	out := make([]TileID, len(l.tiles))
	copy(out, l.tiles[:])
	return out
}

// Path returns the waypoints before the first PathEnd.
func (l *Level) Path() []PathDelta {
	out := make([]PathDelta, l.PathLength())
	copy(out, l.path[:])
	return out
}

// Clone returns an independent copy.
func (l *Level) Clone() *Level {
	c := *l
	return &c
}

// Count returns how many cells satisfy pred.
func (l *Level) Count(pred func(TileID) bool) int {
	n := 0
	for _, t := range l.tiles {
		if pred(t) {
			n++
		}
	}
	return n
}

// LevelID is a validated index into a level set. The zero value is the
// first level.
type LevelID struct {
	index uint8
}

// NewLevelID validates a zero-based level index.
func NewLevelID(n int) (LevelID, error) {
	if n < 0 || n >= NumLevels {
		return LevelID{}, fmt.Errorf("%w: %d", ErrInvalidLevelID, n)
	}
	return LevelID{index: uint8(n)}, nil
}

// FirstLevel returns the id of the opening level.
func FirstLevel() LevelID {
	return LevelID{}
}

// LastLevel returns the id of the final level.
func LastLevel() LevelID {
	return LevelID{index: NumLevels - 1}
}

// Index returns the zero-based index.
func (id LevelID) Index() int {
	return int(id.index)
}

// Number returns the one-based level number shown to players.
func (id LevelID) Number() int {
	return int(id.index) + 1
}

// Next returns the following level. ok is false at the last level.
func (id LevelID) Next() (next LevelID, ok bool) {
	if id.index+1 >= NumLevels {
		return id, false
	}
	return LevelID{index: id.index + 1}, true
}

// Prev returns the previous level, saturating at the first.
func (id LevelID) Prev() LevelID {
	if id.index == 0 {
		return id
	}
	return LevelID{index: id.index - 1}
}

func (id LevelID) String() string {
	return fmt.Sprintf("level %d", id.Number())
}

// Levels is a complete set of levels addressed by LevelID.
type Levels struct {
	levels [NumLevels]*Level
	names  [NumLevels]string
}

// NewLevels builds a set. Exactly NumLevels non-nil levels are required.
func NewLevels(levels []*Level, names []string) (*Levels, error) {
	if len(levels) != NumLevels {
		return nil, fmt.Errorf("level set: want %d levels, got %d", NumLevels, len(levels))
	}
	s := &Levels{}
	for i, l := range levels {
		if l == nil {
			return nil, fmt.Errorf("level set: level %d is nil", i+1)
		}
		s.levels[i] = l
		if i < len(names) {
			s.names[i] = names[i]
		}
	}
	return s, nil
}

// Get returns the pristine level for id.
func (s *Levels) Get(id LevelID) *Level {
	return s.levels[id.index]
}

// Name returns the display name of a level, falling back to its number.
func (s *Levels) Name(id LevelID) string {
	if n := s.names[id.index]; n != "" {
		return n
	}
	return id.String()
}
