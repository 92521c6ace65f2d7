package formats

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-dave/internal/games/dave/core"
	"gopkg.in/yaml.v3"
)

// YAMLLevel represents the YAML structure for a level file.
type YAMLLevel struct {
	Name  string  `yaml:"name"`
	Tiles string  `yaml:"tiles"`
	Path  [][]int `yaml:"path,flow"`
}

// ParseYAML parses a YAML level file. The tiles field is a text grid of
// LevelHeight rows of LevelWidth glyphs; path is a list of [dx, dy] pairs.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	tiles, err := parseGrid(yl.Tiles)
	if err != nil {
		return Level{}, err
	}

	path := make([]core.PathDelta, 0, len(yl.Path))
	for i, step := range yl.Path {
		if len(step) != 2 {
			return Level{}, fmt.Errorf("path step %d: want [dx, dy], got %v", i, step)
		}
		if !fitsInt8(step[0]) || !fitsInt8(step[1]) {
			return Level{}, fmt.Errorf("path step %d: delta %v out of range", i, step)
		}
		path = append(path, core.PathDelta{X: int8(step[0]), Y: int8(step[1])})
	}
	if len(path) > core.PathLen {
		return Level{}, fmt.Errorf("path has %d steps, max %d", len(path), core.PathLen)
	}

	return Level{Name: yl.Name, Tiles: tiles, Path: path}, nil
}

// MarshalYAML renders a level in the text grid format.
func MarshalYAML(l Level) ([]byte, error) {
	if len(l.Tiles) != core.LevelWidth*core.LevelHeight {
		return nil, fmt.Errorf("%w: %d tiles", ErrBadGrid, len(l.Tiles))
	}

	var sb strings.Builder
	for y := range core.LevelHeight {
		for x := range core.LevelWidth {
			r := Glyph(l.Tiles[y*core.LevelWidth+x])
			if r == '?' {
				return nil, fmt.Errorf("%w: tile %d at (%d,%d) has no glyph", ErrBadGrid, l.Tiles[y*core.LevelWidth+x], x, y)
			}
			sb.WriteRune(r)
		}
		sb.WriteByte('\n')
	}

	yl := YAMLLevel{Name: l.Name, Tiles: sb.String()}
	for _, d := range l.Path {
		if d == core.PathEnd {
			break
		}
		yl.Path = append(yl.Path, []int{int(d.X), int(d.Y)})
	}
	return yaml.Marshal(&yl)
}

func parseGrid(text string) ([]core.TileID, error) {
	rows := strings.Split(strings.TrimRight(text, "\n"), "\n")
	if len(rows) != core.LevelHeight {
		return nil, fmt.Errorf("%w: want %d rows, got %d", ErrBadGrid, core.LevelHeight, len(rows))
	}

	tiles := make([]core.TileID, 0, core.LevelWidth*core.LevelHeight)
	for y, row := range rows {
		runes := []rune(row)
		if len(runes) != core.LevelWidth {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrBadGrid, y, len(runes), core.LevelWidth)
		}
		for x, r := range runes {
			t, ok := TileForGlyph(r)
			if !ok {
				return nil, fmt.Errorf("%w: unknown glyph %q at (%d,%d)", ErrBadGrid, r, x, y)
			}
			tiles = append(tiles, t)
		}
	}
	return tiles, nil
}

func fitsInt8(n int) bool {
	return n >= -128 && n <= 127
}
