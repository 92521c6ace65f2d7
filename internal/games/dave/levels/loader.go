// Package levels provides level loading for Dangerous Dave.
// This package depends on core but core does not depend on levels.
package levels

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/vovakirdan/tui-dave/internal/games/dave/core"
	"github.com/vovakirdan/tui-dave/internal/games/dave/levels/formats"
)

//go:embed data/*.yaml
var embedded embed.FS

// Level is one loaded level with its origin.
type Level struct {
	ID       core.LevelID
	Name     string
	Data     *core.Level
	FilePath string
}

// Loader finds the ten levels of a run. An empty Root reads the built-in
// set.
type Loader struct {
	Root string
}

// NewLoader creates a new level loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// Default loads the built-in level set.
func Default() (*core.Levels, error) {
	return NewLoader("").LoadSet()
}

// LoadAll loads every level in order.
func (l *Loader) LoadAll() ([]Level, error) {
	out := make([]Level, 0, core.NumLevels)
	for n := range core.NumLevels {
		id, err := core.NewLevelID(n)
		if err != nil {
			return nil, err
		}
		lvl, err := l.Load(id)
		if err != nil {
			return nil, err
		}
		out = append(out, lvl)
	}
	return out, nil
}

// LoadSet loads every level into a simulation level set.
func (l *Loader) LoadSet() (*core.Levels, error) {
	all, err := l.LoadAll()
	if err != nil {
		return nil, err
	}
	data := make([]*core.Level, len(all))
	names := make([]string, len(all))
	for i, lvl := range all {
		data[i] = lvl.Data
		names[i] = lvl.Name
	}
	return core.NewLevels(data, names)
}

// Load loads a single level by id.
func (l *Loader) Load(id core.LevelID) (Level, error) {
	fsys, root := l.source()
	for _, name := range candidateNames(id) {
		path := filepath.ToSlash(filepath.Join(root, name))
		data, err := fs.ReadFile(fsys, path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return Level{}, fmt.Errorf("reading file %s: %w", path, err)
		}

		parsed, err := parseByExtension(data, strings.ToLower(filepath.Ext(name)))
		if err != nil {
			return Level{}, fmt.Errorf("parsing file %s: %w", path, err)
		}
		lvl, err := parsed.ToCore()
		if err != nil {
			return Level{}, fmt.Errorf("building %s: %w", path, err)
		}

		title := parsed.Name
		if title == "" {
			title = id.String()
		}
		return Level{ID: id, Name: title, Data: lvl, FilePath: path}, nil
	}
	return Level{}, fmt.Errorf("level not found: %s in %s", id, l.describe())
}

// LoadFile parses a single level file from disk.
func (l *Loader) LoadFile(path string) (formats.Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return formats.Level{}, fmt.Errorf("reading file %s: %w", path, err)
	}
	parsed, err := parseByExtension(data, strings.ToLower(filepath.Ext(path)))
	if err != nil {
		return formats.Level{}, fmt.Errorf("parsing file %s: %w", path, err)
	}
	return parsed, nil
}

func (l *Loader) source() (fs.FS, string) {
	if l.Root == "" {
		return embedded, "data"
	}
	return os.DirFS(l.Root), "."
}

func (l *Loader) describe() string {
	if l.Root == "" {
		return "built-in levels"
	}
	return l.Root
}

// candidateNames lists file names tried for a level, in priority order.
// Original binaries are named level0.dat..level9.dat.
func candidateNames(id core.LevelID) []string {
	return []string{
		fmt.Sprintf("level%02d.yaml", id.Index()),
		fmt.Sprintf("level%02d.yml", id.Index()),
		fmt.Sprintf("level%d.dat", id.Index()),
	}
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

// parseByExtension routes to the correct parser.
func parseByExtension(data []byte, ext string) (formats.Level, error) {
	if !isSupportedExtension(ext) {
		return formats.Level{}, fmt.Errorf("unsupported extension: %s", ext)
	}
	switch ext {
	case ".dat":
		return formats.ParseDat(data)
	default:
		return formats.ParseYAML(data)
	}
}
