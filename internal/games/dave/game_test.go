package dave

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-dave/internal/config"
	platformcore "github.com/vovakirdan/tui-dave/internal/core"
	"github.com/vovakirdan/tui-dave/internal/games/dave/core"
	"github.com/vovakirdan/tui-dave/internal/games/dave/levels"
	"github.com/vovakirdan/tui-dave/internal/registry"
)

// setup isolates the package-level settings and the config search path.
func setup(t *testing.T, cfgYAML string) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	path := ""
	if cfgYAML != "" {
		path = filepath.Join(t.TempDir(), "dave.yaml")
		require.NoError(t, os.WriteFile(path, []byte(cfgYAML), 0o644))
	}
	SetConfigPath(path)
	t.Cleanup(func() {
		SetConfigPath("")
		SetDifficultyPreset(config.DifficultyNormal)
		SetStartLevel(0)
		SetLevelsDir("")
		SetLogger(nil)
	})
}

// deadlyLevels exports the built-in levels with fire on the first level's
// start cell.
func deadlyLevels(t *testing.T) string {
	t.Helper()
	all, err := levels.NewLoader("").LoadAll()
	require.NoError(t, err)

	start := core.RosterFor(core.FirstLevel()).Start
	require.True(t, all[0].Data.SetTile(int(start.X), int(start.Y), core.TileFire))

	dir := t.TempDir()
	_, err = levels.Export(all, dir, "yaml")
	require.NoError(t, err)
	return dir
}

func runtimeConfig() platformcore.RuntimeConfig {
	cfg := platformcore.DefaultConfig()
	cfg.Seed = 1
	return cfg
}

func stepN(g *Game, n int, actions ...platformcore.Action) {
	for range n {
		g.Step(frame(actions...))
	}
}

func TestGamesRegistered(t *testing.T) {
	for id, title := range map[string]string{
		GameID:     "Dangerous Dave",
		PracticeID: "Dangerous Dave (Practice)",
	} {
		require.True(t, registry.Exists(id), id)
		g, err := registry.Create(id)
		require.NoError(t, err)
		assert.Equal(t, id, g.ID())
		assert.Equal(t, title, g.Title())
	}
}

func TestResetStartsRun(t *testing.T) {
	setup(t, "")
	g := New(false)
	g.Reset(runtimeConfig())

	require.NoError(t, g.Err())
	st := g.State()
	assert.Equal(t, 1, st.Level)
	assert.Equal(t, 3, st.Lives)
	assert.Zero(t, st.Score)
	assert.False(t, st.GameOver)

	snap, ok := g.Snapshot()
	require.True(t, ok)
	assert.Equal(t, core.RosterFor(core.FirstLevel()).Start, snap.Dave.Cell)
}

func TestStartLevelSelection(t *testing.T) {
	setup(t, "")
	SetStartLevel(4)

	g := New(false)
	g.Reset(runtimeConfig())
	assert.Equal(t, 4, g.State().Level)
	assert.Zero(t, selectedStartLevel, "selection is consumed by the game that used it")

	g.Reset(runtimeConfig())
	assert.Equal(t, 4, g.State().Level, "restarts begin on the selected level")
}

func TestConfiguredStartLevel(t *testing.T) {
	setup(t, "gameplay:\n  start_level: 7\n  lives: 1\n")
	g := New(false)
	g.Reset(runtimeConfig())

	assert.Equal(t, 7, g.State().Level)
	assert.Equal(t, 1, g.State().Lives)
}

func TestDifficultyPreset(t *testing.T) {
	setup(t, "")
	SetDifficultyPreset(config.DifficultyEasy)

	g := New(false)
	g.Reset(runtimeConfig())
	assert.Equal(t, 5, g.State().Lives)
	assert.Equal(t, 6, g.input.holdTicks)
}

func TestPerInstanceSelection(t *testing.T) {
	setup(t, "")
	g := New(false)
	g.SelectStartLevel(9)
	g.SelectDifficulty(config.DifficultyHard)
	g.Reset(runtimeConfig())

	require.NoError(t, g.Err())
	assert.Equal(t, 9, g.State().Level)
	assert.Equal(t, 1, g.State().Lives)

	other := New(false)
	other.Reset(runtimeConfig())
	assert.Equal(t, 1, other.State().Level)
	assert.Equal(t, 3, other.State().Lives)
}

func TestSelectStartLevelOutOfRange(t *testing.T) {
	setup(t, "")
	g := New(false)
	g.SelectStartLevel(11)
	g.Reset(runtimeConfig())

	require.Error(t, g.Err())
	assert.ErrorIs(t, g.Err(), core.ErrInvalidLevelID)
	assert.True(t, g.State().GameOver)
}

func TestLevelNames(t *testing.T) {
	setup(t, "")
	names, err := LevelNames()
	require.NoError(t, err)
	require.Len(t, names, core.NumLevels)
	assert.Equal(t, "Red Rock Entrance", names[0])
	assert.Equal(t, "Spider Caves", names[2])

	SetLevelsDir(t.TempDir())
	_, err = LevelNames()
	assert.Error(t, err)
}

func TestStepWalksDave(t *testing.T) {
	setup(t, "input:\n  hold_ticks: 4\n")
	g := New(false)
	g.Reset(runtimeConfig())

	before, _ := g.Snapshot()
	g.Step(frame(platformcore.ActionRight))
	stepN(g, 5)
	after, _ := g.Snapshot()

	assert.Equal(t, before.Dave.Pixel.X+8, after.Dave.Pixel.X, "one press walks for the hold window")
	assert.Equal(t, core.DirRight, after.Dave.Facing)
	assert.EqualValues(t, 6, g.Ticks())
}

func TestPauseFreezesSimulation(t *testing.T) {
	setup(t, "")
	g := New(false)
	g.Reset(runtimeConfig())

	g.Step(frame(platformcore.ActionPause))
	assert.True(t, g.State().Paused)
	stepN(g, 10, platformcore.ActionRight)
	assert.Zero(t, g.Ticks())

	g.Step(frame(platformcore.ActionPause))
	assert.False(t, g.State().Paused)
	assert.EqualValues(t, 1, g.Ticks())
}

func TestGameOverAndRestart(t *testing.T) {
	setup(t, "gameplay:\n  lives: 0\n")
	SetLevelsDir(deadlyLevels(t))

	var buf bytes.Buffer
	SetLogger(log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel}))

	g := New(false)
	g.Reset(runtimeConfig())
	require.NoError(t, g.Err())

	var kinds []core.EventKind
	for i := 0; i < 100 && !g.State().GameOver; i++ {
		g.Step(frame())
		for _, e := range g.lastEvents {
			kinds = append(kinds, e.Kind)
		}
	}
	require.True(t, g.State().GameOver)
	assert.False(t, g.State().Won)
	assert.Equal(t, []core.EventKind{core.EventDaveKilled, core.EventGameOver}, kinds)

	ticks := g.Ticks()
	stepN(g, 5)
	assert.Equal(t, ticks, g.Ticks(), "a finished run does not advance")

	g.Step(frame(platformcore.ActionRestart))
	assert.False(t, g.State().GameOver)
	assert.Zero(t, g.Ticks())

	out := buf.String()
	assert.Contains(t, out, "run started")
	assert.Contains(t, out, "dave_killed")
	assert.Contains(t, out, "game_over")
	assert.Contains(t, out, "cause=hazard")
}

func TestPracticeNeverEnds(t *testing.T) {
	setup(t, "gameplay:\n  lives: 0\n")
	SetLevelsDir(deadlyLevels(t))

	g := New(true)
	g.Reset(runtimeConfig())

	lost := 0
	for range 200 {
		g.Step(frame())
		for _, e := range g.lastEvents {
			if e.Kind == core.EventLifeLost {
				lost++
			}
		}
	}
	assert.False(t, g.State().GameOver)
	assert.Greater(t, lost, 1)
	assert.Zero(t, g.State().Lives)
}

func TestMissingLevels(t *testing.T) {
	setup(t, "")
	SetLevelsDir(filepath.Join(t.TempDir(), "nowhere"))

	g := New(false)
	g.Reset(runtimeConfig())

	require.Error(t, g.Err())
	assert.True(t, g.State().GameOver)
	_, ok := g.Snapshot()
	assert.False(t, ok)

	// Stepping a broken game is harmless.
	res := g.Step(frame(platformcore.ActionRight))
	assert.True(t, res.State.GameOver)

	screen := platformcore.NewScreen(80, 24)
	g.Render(screen)
	assert.Contains(t, screen.String(), "Cannot start Dangerous Dave")
}

func TestBadConfig(t *testing.T) {
	setup(t, "jetpack:\n  fuel: 0\n")
	g := New(false)
	g.Reset(runtimeConfig())

	require.Error(t, g.Err())
	assert.True(t, strings.HasPrefix(g.Err().Error(), "dave: "))
}
