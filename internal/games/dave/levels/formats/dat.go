package formats

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/vovakirdan/tui-dave/internal/games/dave/core"
)

// Layout of the original binary level files: the patrol path as signed
// (dx, dy) byte pairs, then the tile grid row by row, then padding.
const (
	datPathBytes = core.PathLen * 2
	datTileBytes = core.LevelWidth * core.LevelHeight
	datPadding   = 24
	// DatSize is the full size of a level file, padding included.
	DatSize = datPathBytes + datTileBytes + datPadding
)

type datHeader struct {
	Path  [core.PathLen][2]int8
	Tiles [datTileBytes]uint8
}

// ParseDat parses an original binary level. Trailing padding is optional.
func ParseDat(data []byte) (Level, error) {
	if len(data) < datPathBytes+datTileBytes {
		return Level{}, fmt.Errorf("%w: %d bytes, want at least %d", ErrShortData, len(data), datPathBytes+datTileBytes)
	}

	var h datHeader
	if err := binary.Read(bytes.NewReader(data), binary.LittleEndian, &h); err != nil {
		return Level{}, fmt.Errorf("decoding level: %w", err)
	}

	l := Level{
		Tiles: make([]core.TileID, datTileBytes),
		Path:  make([]core.PathDelta, core.PathLen),
	}
	for i, p := range h.Path {
		l.Path[i] = core.PathDelta{X: p[0], Y: p[1]}
	}
	for i, b := range h.Tiles {
		t, err := core.NewTileID(int(b))
		if err != nil {
			return Level{}, fmt.Errorf("tile %d: %w", i, err)
		}
		l.Tiles[i] = t
	}
	return l, nil
}

// MarshalDat writes a level in the original binary layout, padding included.
func MarshalDat(l Level) ([]byte, error) {
	if len(l.Tiles) != datTileBytes {
		return nil, fmt.Errorf("%w: %d tiles", ErrBadGrid, len(l.Tiles))
	}
	if len(l.Path) > core.PathLen {
		return nil, fmt.Errorf("path has %d steps, max %d", len(l.Path), core.PathLen)
	}

	var h datHeader
	for i := range h.Path {
		d := core.PathEnd
		if i < len(l.Path) {
			d = l.Path[i]
		}
		h.Path[i] = [2]int8{d.X, d.Y}
	}
	for i, t := range l.Tiles {
		h.Tiles[i] = uint8(t)
	}

	var buf bytes.Buffer
	buf.Grow(DatSize)
	if err := binary.Write(&buf, binary.LittleEndian, &h); err != nil {
		return nil, fmt.Errorf("encoding level: %w", err)
	}
	buf.Write(make([]byte, datPadding))
	return buf.Bytes(), nil
}
