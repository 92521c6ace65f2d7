package dave

import (
	platformcore "github.com/vovakirdan/tui-dave/internal/core"
	"github.com/vovakirdan/tui-dave/internal/games/dave/core"
)

// sprite is a tile drawn as text. Map tiles are two columns wide.
type sprite struct {
	text  string
	color platformcore.Color
}

var blankSprite = sprite{text: "  "}

// staticSprites covers tiles that never animate.
var staticSprites = map[core.TileID]sprite{
	core.TileRockWall:     {"▓▓", platformcore.ColorRed},
	core.TileDoor:         {"▐▌", platformcore.ColorOrange},
	core.TileGirder:       {"══", platformcore.ColorGray},
	core.TileJetpack:      {"JP", platformcore.ColorBrightGreen},
	core.TileBlueWall:     {"▒▒", platformcore.ColorBlue},
	core.TilePipeH:        {"══", platformcore.ColorWhite},
	core.TilePipeV:        {"║║", platformcore.ColorWhite},
	core.TileRedBrick:     {"▙▟", platformcore.ColorBrightRed},
	core.TileRock:         {"▒▒", platformcore.ColorGray},
	core.TileBlueBrick:    {"▙▟", platformcore.ColorBrightBlue},
	core.TileGun:          {"╒═", platformcore.ColorBrightWhite},
	core.TileSlopeUp:      {"◢█", platformcore.ColorRed},
	core.TileSlopeDown:    {"█◣", platformcore.ColorRed},
	core.TileSlopeUpAlt:   {"◢◤", platformcore.ColorRed},
	core.TileSlopeDownAlt: {"◥◣", platformcore.ColorRed},
	core.TilePlatform:     {"▀▀", platformcore.ColorMagenta},
	core.TilePlatformEnd:  {"▀▘", platformcore.ColorMagenta},
	core.TileStars:        {" ·", platformcore.ColorWhite},
	core.TileMoon:         {" )", platformcore.ColorBrightYellow},
	core.TileTree:         {"♣♣", platformcore.ColorGreen},
	core.TileTree + 1:     {"♠♣", platformcore.ColorGreen},
	core.TileTree + 2:     {"♣♠", platformcore.ColorGreen},
	core.TileVine:         {"}{", platformcore.ColorGreen},
	core.TileBlueGem:      {"◆ ", platformcore.ColorBrightCyan},
	core.TilePurpleOrb:    {"● ", platformcore.ColorBrightMagenta},
	core.TileRedGem:       {"◆ ", platformcore.ColorBrightRed},
	core.TileCrown:        {"♔ ", platformcore.ColorBrightYellow},
	core.TileRing:         {"ο ", platformcore.ColorYellow},
	core.TileScepter:      {"¦ ", platformcore.ColorBrightYellow},
}

// animations lists the frames of animated tiles, indexed from the base frame.
var animations = map[core.TileID][]sprite{
	core.TileFire: {
		{"ʌʌ", platformcore.ColorBrightRed},
		{"^ʌ", platformcore.ColorOrange},
		{"ʌ^", platformcore.ColorBrightRed},
		{"^^", platformcore.ColorOrange},
	},
	core.TileTrophy: {
		{"\\/", platformcore.ColorBrightYellow},
		{"\\/", platformcore.ColorYellow},
		{"\\/", platformcore.ColorBrightWhite},
		{"\\/", platformcore.ColorYellow},
		{"\\/", platformcore.ColorBrightYellow},
	},
	core.TileWater: {
		{"~~", platformcore.ColorBlue},
		{"≈~", platformcore.ColorBrightBlue},
		{"≈≈", platformcore.ColorBlue},
		{"~≈", platformcore.ColorBrightBlue},
	},
	core.TileWeeds: {
		{"ww", platformcore.ColorGreen},
		{"wv", platformcore.ColorBrightGreen},
		{"vv", platformcore.ColorGreen},
		{"vw", platformcore.ColorBrightGreen},
		{"ww", platformcore.ColorGreen},
	},
	core.TileExplosion: {
		{"**", platformcore.ColorBrightYellow},
		{"✶✶", platformcore.ColorOrange},
		{"##", platformcore.ColorBrightRed},
		{"::", platformcore.ColorGray},
	},
}

// tileSprite returns how a map tile is drawn.
func tileSprite(t core.TileID) sprite {
	base := t.BaseFrame()
	if frames, ok := animations[base]; ok {
		return frames[int(t-base)%len(frames)]
	}
	if s, ok := staticSprites[base]; ok {
		return s
	}
	return blankSprite
}

// monsterSprites are two rows of four columns, covering the 2x2 cells a
// monster occupies.
var monsterSprites = map[core.TileID]struct {
	rows  [2]string
	color platformcore.Color
}{
	core.TileSpider:   {[2]string{"/╲╱\\", "╱oo╲"}, platformcore.ColorBrightWhite},
	core.TileSaucer:   {[2]string{" ▄▄ ", "◄██►"}, platformcore.ColorBrightCyan},
	core.TileRedBall:  {[2]string{"▗██▖", "▝██▘"}, platformcore.ColorBrightRed},
	core.TileSunWheel: {[2]string{"\\|/ ", "-O- "}, platformcore.ColorBrightYellow},
	core.TileBones:    {[2]string{"☠  ☠", " ╳╳ "}, platformcore.ColorWhite},
	core.TileDisc:     {[2]string{"◢██◣", "◥██◤"}, platformcore.ColorMagenta},
	core.TileGreenJaw: {[2]string{"▛vv▜", "▙^^▟"}, platformcore.ColorBrightGreen},
	core.TileBat:      {[2]string{"\\^^/", " vv "}, platformcore.ColorGray},
}

// monsterRows returns the two sprite rows for a monster frame.
func monsterRows(t core.TileID) ([2]string, platformcore.Color) {
	if t.BaseFrame() == core.TileExplosion {
		s := tileSprite(t)
		return [2]string{s.text + s.text, s.text + s.text}, s.color
	}
	m, ok := monsterSprites[t.BaseFrame()]
	if !ok {
		return [2]string{"????", "????"}, platformcore.ColorBrightMagenta
	}
	rows := m.rows
	// Odd frames mirror horizontally for a cheap wobble.
	if (t-t.BaseFrame())%2 == 1 {
		rows[0], rows[1] = reverse(rows[0]), reverse(rows[1])
	}
	return rows, m.color
}

// daveSprite returns Dave's two-column sprite for a sprite tile.
func daveSprite(t core.TileID) sprite {
	switch {
	case t.BaseFrame() == core.TileExplosion:
		return tileSprite(t)
	case t >= core.TileDaveJetR && t < core.TileDaveJetR+3:
		return sprite{"☻»", platformcore.ColorBrightGreen}
	case t >= core.TileDaveJetL && t < core.TileDaveJetL+3:
		return sprite{"«☻", platformcore.ColorBrightGreen}
	case t == core.TileDaveJumpR:
		return sprite{"☻╯", platformcore.ColorBrightWhite}
	case t == core.TileDaveJumpL:
		return sprite{"╰☻", platformcore.ColorBrightWhite}
	case t >= core.TileDaveRight && t < core.TileDaveRight+3:
		return sprite{"☻>", platformcore.ColorBrightWhite}
	case t >= core.TileDaveLeft && t < core.TileDaveLeft+3:
		return sprite{"<☻", platformcore.ColorBrightWhite}
	case t == core.TileDaveFront:
		return sprite{"☻ ", platformcore.ColorBrightWhite}
	default:
		return blankSprite
	}
}

// bulletSprite is one column wide.
func bulletSprite(b *core.Bullet) sprite {
	if b.Source == core.SourceMonster {
		return sprite{"•", platformcore.ColorBrightMagenta}
	}
	return sprite{"-", platformcore.ColorBrightYellow}
}

func reverse(s string) string {
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}
