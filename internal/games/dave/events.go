package dave

import (
	"fmt"

	platformcore "github.com/vovakirdan/tui-dave/internal/core"
	"github.com/vovakirdan/tui-dave/internal/games/dave/core"
)

// bannerTicks is how long a transient banner stays on screen.
const bannerTicks = 45

func (g *Game) showBanner(text string, c platformcore.Color) {
	g.banner = text
	g.bannerColor = c
	g.bannerTicks = bannerTicks
}

// handleEvent logs one simulation event and updates on-screen banners.
// Level transitions and run endings go out at Info, the rest at Debug.
func (g *Game) handleEvent(e core.Event) {
	kv := []any{"tick", e.Tick, "level", e.Level.Number()}

	switch e.Kind {
	case core.EventPickup:
		g.log.Debug(e.Kind.String(), append(kv, "tile", e.Tile, "cell", e.Cell, "points", e.Points)...)
		if e.Tile.IsTrophy() {
			g.showBanner("GO THRU THE DOOR!", platformcore.ColorBrightYellow)
		}
	case core.EventMonsterKilled:
		g.log.Debug(e.Kind.String(), append(kv, "slot", e.Monster, "points", e.Points)...)
	case core.EventDaveKilled:
		g.log.Debug(e.Kind.String(), append(kv, "cause", e.Cause, "slot", e.Monster)...)
	case core.EventExtraLife:
		g.log.Debug(e.Kind.String(), append(kv, "lives", g.world.Lives())...)
		g.showBanner("EXTRA LIFE!", platformcore.ColorBrightGreen)
	case core.EventLifeLost:
		g.log.Info(e.Kind.String(), append(kv, "lives", g.world.Lives())...)
	case core.EventLevelComplete:
		next := g.world.LevelID()
		g.log.Info(e.Kind.String(), append(kv, "next", next.Number(), "score", g.world.Score())...)
		g.showBanner(fmt.Sprintf("LEVEL %d", next.Number()), platformcore.ColorBrightYellow)
	case core.EventWon:
		g.log.Info(e.Kind.String(), append(kv, "score", g.world.Score(), "ticks", g.world.Ticks())...)
	case core.EventGameOver:
		g.log.Info(e.Kind.String(), append(kv, "score", g.world.Score(), "ticks", g.world.Ticks())...)
	default:
		g.log.Warn("unknown event", append(kv, "kind", e.Kind)...)
	}
}
