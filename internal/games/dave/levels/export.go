package levels

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/vovakirdan/tui-dave/internal/games/dave/levels/formats"
)

// Export writes levels to dir in the given format ("yaml" or "dat"),
// using the file names Load looks for.
func Export(all []Level, dir, format string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating %s: %w", dir, err)
	}

	var written []string
	for _, lvl := range all {
		src := formats.Level{Name: lvl.Name, Tiles: lvl.Data.Tiles(), Path: lvl.Data.Path()}

		var (
			data []byte
			name string
			err  error
		)
		switch format {
		case "yaml":
			data, err = formats.MarshalYAML(src)
			name = fmt.Sprintf("level%02d.yaml", lvl.ID.Index())
		case "dat":
			data, err = formats.MarshalDat(src)
			name = fmt.Sprintf("level%d.dat", lvl.ID.Index())
		default:
			return written, fmt.Errorf("unsupported format: %s", format)
		}
		if err != nil {
			return written, fmt.Errorf("encoding %s: %w", lvl.ID, err)
		}

		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return written, fmt.Errorf("writing %s: %w", path, err)
		}
		written = append(written, path)
	}
	return written, nil
}
