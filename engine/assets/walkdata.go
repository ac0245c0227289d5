package assets

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/hubastard/texatlas/engine/atlas"
)

const (
	WalkDataSize  = 640
	walkDataPages = WalkDataSize / atlas.TilesPerPage
)

var ErrWalkData = errors.New("walk data unavailable")

// WalkData is the textwalk.dat table: one byte per atlas tile for the first
// ten pages. Bits 0..3 mark the tile's quadrants walkable, bit (qy*2 + qx).
type WalkData struct {
	flags [WalkDataSize]byte
}

// LoadWalkData reads textwalk.dat. Either the whole table is read or an
// error wrapping ErrWalkData is returned; callers may carry on without it.
func LoadWalkData(path string) (*WalkData, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %q: %v", ErrWalkData, path, err)
	}
	defer f.Close()
	return ReadWalkData(f)
}

func ReadWalkData(r io.Reader) (*WalkData, error) {
	var wd WalkData
	if _, err := io.ReadFull(r, wd.flags[:]); err != nil {
		return nil, fmt.Errorf("%w: read %d bytes: %v", ErrWalkData, WalkDataSize, err)
	}
	return &wd, nil
}

// IsWalkable reports the walk bit for the atlas texel (u,v) on page.
// Texels outside the table are not walkable.
func (wd *WalkData) IsWalkable(page, u, v int) bool {
	if page < 0 || page >= walkDataPages || u < 0 || v < 0 || u >= atlas.PageSize || v >= atlas.PageSize {
		return false
	}
	tile := atlas.CoordsToIndex(page, u, v)
	qx := (u % atlas.TileSize) / (atlas.TileSize / 2)
	qy := (v % atlas.TileSize) / (atlas.TileSize / 2)
	return wd.flags[tile]&(1<<(qy*2+qx)) != 0
}

// CornerWalkable returns the walk bit under each corner of the quad.
func (wd *WalkData) CornerWalkable(q atlas.Quad) []bool {
	cs := q.Corners()
	out := make([]bool, len(cs))
	page := int(q.PageNum())
	for i, c := range cs {
		out[i] = wd.IsWalkable(page, int(c.U), int(c.V))
	}
	return out
}

// SetTile replaces the quadrant bits of one tile.
func (wd *WalkData) SetTile(index int, bits byte) { wd.flags[index] = bits & 0x0f }

// Bytes returns the table in file layout.
func (wd *WalkData) Bytes() []byte {
	out := make([]byte, WalkDataSize)
	copy(out, wd.flags[:])
	return out
}
