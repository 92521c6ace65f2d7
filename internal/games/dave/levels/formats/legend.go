// Package formats provides pluggable level file format parsers.
package formats

import (
	"github.com/vovakirdan/tui-dave/internal/games/dave/core"
)

// legend maps YAML grid glyphs to tiles. Every glyph is one cell.
var legend = map[rune]core.TileID{
	'.':  core.TileBlank,
	'#':  core.TileRockWall,
	'D':  core.TileDoor,
	'=':  core.TileGirder,
	'J':  core.TileJetpack,
	'B':  core.TileBlueWall,
	'F':  core.TileFire,
	'T':  core.TileTrophy,
	'-':  core.TilePipeH,
	'|':  core.TilePipeV,
	'R':  core.TileRedBrick,
	'o':  core.TileRock,
	'b':  core.TileBlueBrick,
	'G':  core.TileGun,
	'/':  core.TileSlopeUp,
	'\\': core.TileSlopeDown,
	'<':  core.TileSlopeUpAlt,
	'>':  core.TileSlopeDownAlt,
	'~':  core.TileWater,
	'P':  core.TilePlatform,
	'p':  core.TilePlatformEnd,
	'*':  core.TileStars,
	')':  core.TileMoon,
	'Y':  core.TileTree,
	'W':  core.TileWeeds,
	'V':  core.TileVine,
	'g':  core.TileBlueGem,
	'u':  core.TilePurpleOrb,
	'r':  core.TileRedGem,
	'c':  core.TileCrown,
	'i':  core.TileRing,
	's':  core.TileScepter,
}

// glyphs is the reverse of legend, used when writing levels.
var glyphs = func() map[core.TileID]rune {
	m := make(map[core.TileID]rune, len(legend))
	for r, t := range legend {
		m[t] = r
	}
	return m
}()

// Glyph returns the grid glyph for a tile. Animated frames map to their
// base tile; tiles with no glyph come back as '?'.
func Glyph(t core.TileID) rune {
	if r, ok := glyphs[t.BaseFrame()]; ok {
		return r
	}
	return '?'
}

// TileForGlyph looks up a grid glyph.
func TileForGlyph(r rune) (core.TileID, bool) {
	t, ok := legend[r]
	return t, ok
}
