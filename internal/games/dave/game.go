// Package dave provides Dangerous Dave for the arcade: the registry
// adapter around the simulation in dave/core, input buffering, rendering
// and event logging.
package dave

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-dave/internal/config"
	platformcore "github.com/vovakirdan/tui-dave/internal/core"
	"github.com/vovakirdan/tui-dave/internal/games/dave/core"
	"github.com/vovakirdan/tui-dave/internal/games/dave/levels"
	"github.com/vovakirdan/tui-dave/internal/registry"
)

// Registered game ids.
const (
	GameID     = "dave"
	PracticeID = "dave_practice"
)

// Package-level variables for configuration, set by the CLI and menus
// before a game is created.
var (
	configPath         string
	difficultyPreset   = config.DifficultyNormal
	selectedStartLevel int
	levelsDir          string
	logger             = log.New(io.Discard)
)

// SetConfigPath sets a custom config file path. Empty means the default search.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset applied on top of the config.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// SetStartLevel sets the starting level (1-indexed) for the next game
// created. 0 means the configured start level.
func SetStartLevel(level int) {
	selectedStartLevel = level
}

// SetLevelsDir loads levels from dir instead of the built-in set.
func SetLevelsDir(dir string) {
	levelsDir = dir
}

// SetLogger sets the logger used for gameplay events.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New(false)
	})
	registry.Register(PracticeID, func() registry.Game {
		return New(true)
	})
}

// Game implements Dangerous Dave on top of the arcade platform.
type Game struct {
	id       string
	practice bool

	runtime    platformcore.RuntimeConfig
	cfg        config.DaveConfig
	levels     *core.Levels
	world      *core.World
	input      *InputBuffer
	startLevel int // One-based; kept so restarts begin where the run did
	preset     config.DifficultyPreset

	paused     bool
	err        error
	lastEvents []core.Event

	banner      string
	bannerColor platformcore.Color
	bannerTicks int

	log *log.Logger
}

// New creates a game. Practice games never run out of lives and are
// scored separately.
func New(practice bool) *Game {
	id := GameID
	if practice {
		id = PracticeID
	}
	return &Game{id: id, practice: practice, preset: difficultyPreset}
}

// SelectStartLevel sets the one-based level this instance starts at,
// overriding the package-level selection. Sessions that share the process
// use it instead of SetStartLevel.
func (g *Game) SelectStartLevel(level int) {
	g.startLevel = level
}

// SelectDifficulty sets the preset this instance applies on Reset.
func (g *Game) SelectDifficulty(preset config.DifficultyPreset) {
	g.preset = preset
}

// LevelNames returns the display names of the configured level set.
func LevelNames() ([]string, error) {
	all, err := levels.NewLoader(levelsDir).LoadAll()
	if err != nil {
		return nil, err
	}
	names := make([]string, len(all))
	for i, lvl := range all {
		names[i] = lvl.Name
	}
	return names, nil
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.practice {
		return "Dangerous Dave (Practice)"
	}
	return "Dangerous Dave"
}

// Reset loads configuration and levels and starts a new run.
func (g *Game) Reset(rc platformcore.RuntimeConfig) {
	g.runtime = rc
	g.log = logger.With("game", g.id)
	g.world = nil
	g.err = nil
	g.paused = false
	g.lastEvents = nil
	g.banner, g.bannerTicks = "", 0

	cfg, err := config.LoadDave(configPath)
	if err != nil {
		g.fail(err)
		return
	}
	config.ApplyDavePreset(&cfg, g.preset)
	if g.practice {
		cfg.Gameplay.Immortal = true
	}
	g.cfg = cfg

	if g.levels == nil {
		set, err := levels.NewLoader(levelsDir).LoadSet()
		if err != nil {
			g.fail(err)
			return
		}
		g.levels = set
	}

	if selectedStartLevel > 0 {
		g.startLevel = selectedStartLevel
		selectedStartLevel = 0
	}
	if g.startLevel == 0 {
		g.startLevel = cfg.Gameplay.StartLevel
	}
	start, err := core.NewLevelID(g.startLevel - 1)
	if err != nil {
		g.fail(err)
		return
	}

	g.world = core.NewWorld(g.levels, g.options(start))
	g.input = NewInputBuffer(cfg.Input.HoldTicks)
	g.showBanner(fmt.Sprintf("LEVEL %d", start.Number()), platformcore.ColorBrightYellow)

	g.log.Info("run started",
		"level", start.Number(),
		"name", g.levels.Name(start),
		"lives", cfg.Gameplay.Lives,
		"difficulty", g.preset,
		"immortal", cfg.Gameplay.Immortal,
	)
}

func (g *Game) fail(err error) {
	g.err = fmt.Errorf("dave: %w", err)
	g.log.Error("cannot start run", "err", err)
}

func (g *Game) options(start core.LevelID) core.Options {
	return core.Options{
		Lives:         g.cfg.Gameplay.Lives,
		InfiniteLives: g.cfg.Gameplay.Immortal,
		JetpackFuel:   uint8(g.cfg.Jetpack.Fuel),
		StartLevel:    start,
		Scoring: core.Scoring{
			LevelBonus:     g.cfg.Scoring.LevelBonus,
			MonsterKill:    g.cfg.Scoring.MonsterKill,
			ExtraLifeEvery: g.cfg.Scoring.ExtraLifeEvery,
			MaxScore:       g.cfg.Scoring.MaxScore,
		},
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	g.lastEvents = nil
	if g.world == nil {
		return platformcore.StepResult{State: g.State()}
	}

	if g.world.Quit() {
		if in.Has(platformcore.ActionRestart) {
			g.Reset(g.runtime)
		}
		return platformcore.StepResult{State: g.State()}
	}

	if in.Has(platformcore.ActionPause) {
		g.paused = !g.paused
		g.log.Debug("pause toggled", "paused", g.paused)
	}
	if g.paused {
		return platformcore.StepResult{State: g.State()}
	}

	if !in.Empty() {
		g.input.Press(in)
	}
	g.lastEvents = g.world.Tick(g.input.Next())
	for _, e := range g.lastEvents {
		g.handleEvent(e)
	}
	if g.bannerTicks > 0 {
		g.bannerTicks--
	}

	return platformcore.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	if g.world == nil {
		return platformcore.GameState{GameOver: true}
	}
	return platformcore.GameState{
		Score:    g.world.Score(),
		Level:    g.world.LevelID().Number(),
		Lives:    g.world.Lives(),
		GameOver: g.world.Quit(),
		Won:      g.world.Won(),
		Paused:   g.paused,
	}
}

// Snapshot returns the simulation state for rendering. ok is false when
// the run could not start.
func (g *Game) Snapshot() (snap core.Snapshot, ok bool) {
	if g.world == nil {
		return core.Snapshot{}, false
	}
	return g.world.Snapshot(), true
}

// Err returns why the run could not start, if it could not.
func (g *Game) Err() error {
	return g.err
}

// Ticks returns the number of simulation ticks played this run.
func (g *Game) Ticks() uint64 {
	if g.world == nil {
		return 0
	}
	return g.world.Ticks()
}
