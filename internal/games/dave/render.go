package dave

import (
	"fmt"
	"strings"

	platformcore "github.com/vovakirdan/tui-dave/internal/core"
	"github.com/vovakirdan/tui-dave/internal/games/dave/core"
)

// Screen layout: one HUD row, the boxed playfield, a status row and a
// hint row. Each map cell is two columns wide and one row tall.
const (
	cellCols   = 2
	pxPerCol   = core.TileSize / cellCols
	fieldW     = core.ViewWidth * cellCols
	fieldH     = core.LevelHeight
	hudRows    = 1
	MinScreenW = fieldW + 2
	MinScreenH = hudRows + fieldH + 2 + 2
)

const controlsHint = "←/→ move  ↑ jump  ↓ descend  space fire  j jetpack  p pause"

// layout is where the playfield sits on a given screen.
type layout struct {
	frame  platformcore.Rect
	field  platformcore.Rect
	status int
	hint   int
}

func layoutFor(dst *platformcore.Screen) layout {
	x := max((dst.Width()-MinScreenW)/2, 0)
	y := max((dst.Height()-MinScreenH)/2, 0)
	frame := platformcore.NewRect(x, y+hudRows, fieldW+2, fieldH+2)
	return layout{
		frame:  frame,
		field:  platformcore.NewRect(frame.X+1, frame.Y+1, fieldW, fieldH),
		status: frame.Bottom(),
		hint:   frame.Bottom() + 1,
	}
}

// put draws text at a field column and row, clipping to the playfield.
func (l layout) put(dst *platformcore.Screen, col, row int, s sprite) {
	for i, r := range []rune(s.text) {
		x, y := l.field.X+col+i, l.field.Y+row
		if !l.field.Contains(x, y) || r == ' ' {
			continue
		}
		dst.SetWithColor(x, y, r, s.color)
	}
}

// pixelToField converts a level pixel to a field column and row. Rows
// round to the nearest cell so a sprite mid-jump sits where it mostly is.
func pixelToField(p core.Pixel, viewX uint8) (col, row int) {
	relX := int(p.X) - int(viewX)*core.TileSize
	col = floorDiv(relX, pxPerCol)
	row = floorDiv(int(p.Y)+core.TileSize/2, core.TileSize)
	return col, row
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// Render draws the game to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	if g.err != nil {
		renderOverlay(dst, platformcore.ColorBrightRed, "Cannot start Dangerous Dave", truncate(g.err.Error(), dst.Width()-6))
		return
	}
	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		renderOverlay(dst, platformcore.ColorYellow, "Window too small", fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH))
		return
	}
	snap, ok := g.Snapshot()
	if !ok {
		return
	}

	lay := layoutFor(dst)
	g.renderHUD(dst, lay, snap)
	dst.DrawBox(lay.frame, platformcore.ColorGray)
	renderTiles(dst, lay, g.world.Level(), snap)
	renderMonsters(dst, lay, snap)
	renderBullets(dst, lay, snap)
	renderDave(dst, lay, snap)
	g.renderStatus(dst, lay, snap)

	switch {
	case snap.Won:
		renderOverlay(dst, platformcore.ColorBrightGreen, "YOU WIN!", fmt.Sprintf("Score: %d", snap.Score), "Press R to play again")
	case snap.Quit:
		renderOverlay(dst, platformcore.ColorBrightRed, "GAME OVER", fmt.Sprintf("Score: %d", snap.Score), "Press R to restart")
	case g.paused:
		renderOverlay(dst, platformcore.ColorBrightWhite, "PAUSED", "Press P to continue")
	}
}

func (g *Game) renderHUD(dst *platformcore.Screen, lay layout, snap core.Snapshot) {
	lives := strings.Repeat("☻", min(snap.Lives, 9))
	if g.cfg.Gameplay.Immortal {
		lives = "∞"
	}
	left := fmt.Sprintf("SCORE %05d  LEVEL %02d  DAVES %s", snap.Score, snap.Level.Number(), lives)
	y := lay.frame.Y - 1
	dst.DrawTextWithColor(lay.frame.X, y, left, platformcore.ColorBrightCyan)

	name := truncate(snap.LevelName, lay.frame.W-len([]rune(left))-2)
	if name != "" {
		dst.DrawTextWithColor(lay.frame.Right()-len([]rune(name)), y, name, platformcore.ColorGray)
	}
}

func renderTiles(dst *platformcore.Screen, lay layout, level *core.Level, snap core.Snapshot) {
	frame := snap.Tick / 4
	for row := range core.LevelHeight {
		for vx := range core.ViewWidth {
			t, ok := level.TileAt(int(snap.ViewX)+vx, row)
			if !ok || t == core.TileBlank {
				continue
			}
			lay.put(dst, vx*cellCols, row, tileSprite(t.Frame(frame)))
		}
	}
}

func renderMonsters(dst *platformcore.Screen, lay layout, snap core.Snapshot) {
	for _, m := range snap.Monsters {
		if !m.Active {
			continue
		}
		col, row := pixelToField(m.Pixel, snap.ViewX)
		rows, color := monsterRows(m.Tile)
		for i, text := range rows {
			lay.put(dst, col, row+i, sprite{text: text, color: color})
		}
	}
}

func renderBullets(dst *platformcore.Screen, lay layout, snap core.Snapshot) {
	for _, b := range []*core.Bullet{snap.DaveBullet, snap.MonsterBullet} {
		if b == nil {
			continue
		}
		col, row := pixelToField(b.Pixel, snap.ViewX)
		lay.put(dst, col, row, bulletSprite(b))
	}
}

func renderDave(dst *platformcore.Screen, lay layout, snap core.Snapshot) {
	if !snap.Dave.Alive && !snap.Dave.Dying {
		return
	}
	col, row := pixelToField(snap.Dave.Pixel, snap.ViewX)
	lay.put(dst, col, row, daveSprite(snap.Dave.Tile))
}

func (g *Game) renderStatus(dst *platformcore.Screen, lay layout, snap core.Snapshot) {
	x := lay.frame.X
	if snap.Dave.HasGun {
		dst.DrawTextWithColor(x, lay.status, "GUN", platformcore.ColorBrightWhite)
	}
	if snap.Dave.HasJetpack {
		color := platformcore.ColorGreen
		if snap.Dave.Jetpacking {
			color = platformcore.ColorBrightGreen
		}
		dst.DrawTextWithColor(x+5, lay.status, "JETPACK "+fuelBar(snap.Dave.Fuel, 10), color)
	}
	if snap.Trophy {
		dst.DrawTextWithColor(lay.frame.Right()-6, lay.status, "TROPHY", platformcore.ColorBrightYellow)
	}

	if g.bannerTicks > 0 {
		x := lay.frame.X + (lay.frame.W-len([]rune(g.banner)))/2
		dst.DrawTextWithColor(x, lay.hint, g.banner, g.bannerColor)
		return
	}
	dst.DrawTextWithColor(lay.frame.X, lay.hint, truncate(controlsHint, dst.Width()-lay.frame.X), platformcore.ColorGray)
}

// fuelBar renders fuel as a bar of n segments, rounded to the nearest
// segment. Any fuel left shows at least one.
func fuelBar(fuel uint8, n int) string {
	filled := 0
	if fuel > 0 {
		filled = platformcore.Clamp((int(fuel)*n+127)/255, 1, n)
	}
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", n-filled) + "]"
}

// renderOverlay draws a centered box with the given lines.
func renderOverlay(dst *platformcore.Screen, color platformcore.Color, lines ...string) {
	w := 0
	for _, l := range lines {
		w = max(w, len([]rune(l)))
	}
	outer := platformcore.NewRect(0, 0, dst.Width(), dst.Height())
	box := outer.Centered(w+4, len(lines)+2)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, color)
	for i, l := range lines {
		c := platformcore.ColorBrightWhite
		if i == 0 {
			c = color
		}
		dst.DrawTextCenteredWithColor(box.Y+1+i, l, c)
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if n <= 0 {
		return ""
	}
	if len(r) <= n {
		return s
	}
	if n == 1 {
		return "…"
	}
	return string(r[:n-1]) + "…"
}
