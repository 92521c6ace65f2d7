package formats

import (
	"errors"

	"github.com/vovakirdan/tui-dave/internal/games/dave/core"
)

var (
	// ErrShortData is returned when a binary level is truncated.
	ErrShortData = errors.New("level data too short")
	// ErrBadGrid is returned when a text grid has the wrong shape or
	// unknown glyphs.
	ErrBadGrid = errors.New("bad level grid")
)

// Level is a parsed level ready for use.
type Level struct {
	Name  string
	Tiles []core.TileID
	Path  []core.PathDelta
}

// ToCore builds the simulation level.
func (l Level) ToCore() (*core.Level, error) {
	return core.NewLevel(l.Tiles, l.Path)
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml", ".dat"}
}
