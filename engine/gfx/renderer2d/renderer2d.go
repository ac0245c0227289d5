package renderer2d

import (
	"github.com/hubastard/texatlas/engine/atlas"
	"github.com/hubastard/texatlas/engine/colors"
	"github.com/hubastard/texatlas/engine/core"
)

// Vertex: pos2 + uv2 + tint4 => 8 floats
const vStride = 8

// Statistics captures the counts generated during a renderer frame.
type Statistics struct {
	DrawCalls int
	QuadCount int
	FaceCount int
	PageSwaps int
}

// TotalVertexCount reports vertices submitted this frame.
func (s Statistics) TotalVertexCount() int { return s.QuadCount*4 + s.FaceCount*3 }

// Renderer2D batches atlas quads that share a page texture.
type Renderer2D struct {
	r        core.Renderer
	tex      core.Texture
	verts    []float32
	inds     []uint32
	polys    int
	maxPolys int
	vp       [16]float32
	stats    Statistics
}

func New(r core.Renderer, maxPolys int) *Renderer2D {
	if maxPolys <= 0 {
		maxPolys = 10000
	}
	return &Renderer2D{
		r:        r,
		maxPolys: maxPolys,
		verts:    make([]float32, 0, maxPolys*4*vStride),
		inds:     make([]uint32, 0, maxPolys*6),
	}
}

func (rd *Renderer2D) BeginScene(vp [16]float32) {
	rd.vp = vp
	rd.stats = Statistics{}
	rd.resetBatch()
	rd.tex = nil
}

func (rd *Renderer2D) EndScene() error { return rd.flush() }

// Stats returns the current frame statistics snapshot.
func (rd *Renderer2D) Stats() Statistics { return rd.stats }

// DrawFloor draws floor texture q into the screen square at (x,y) of the
// given size. Corners map top-left, top-right, bottom-right, bottom-left.
func (rd *Renderer2D) DrawFloor(x, y, size float32, page core.Texture, q *atlas.FloorTexture, tint colors.Color) error {
	if err := rd.prepare(page); err != nil {
		return err
	}
	pos := [4][2]float32{{x, y}, {x + size, y}, {x + size, y + size}, {x, y + size}}
	base := rd.push(pos[:], QuadUVs(q), tint)
	rd.inds = append(rd.inds, base, base+1, base+2, base, base+2, base+3)
	rd.stats.QuadCount++
	return nil
}

// DrawFace draws face texture q as the upper-left triangle of the square.
func (rd *Renderer2D) DrawFace(x, y, size float32, page core.Texture, q *atlas.FaceTexture, tint colors.Color) error {
	if err := rd.prepare(page); err != nil {
		return err
	}
	pos := [3][2]float32{{x, y}, {x + size, y}, {x, y + size}}
	base := rd.push(pos[:], QuadUVs(q), tint)
	rd.inds = append(rd.inds, base, base+1, base+2)
	rd.stats.FaceCount++
	return nil
}

// --- internals ---

func (rd *Renderer2D) prepare(page core.Texture) error {
	if rd.tex != page {
		if err := rd.flush(); err != nil {
			return err
		}
		if rd.tex != nil {
			rd.stats.PageSwaps++
		}
		rd.tex = page
	}
	if rd.polys >= rd.maxPolys {
		return rd.flush()
	}
	return nil
}

func (rd *Renderer2D) push(pos [][2]float32, uvs [][2]float32, tint colors.Color) uint32 {
	base := uint32(len(rd.verts) / vStride)
	for i := range pos {
		rd.verts = append(rd.verts,
			pos[i][0], pos[i][1],
			uvs[i][0], uvs[i][1],
			tint[0], tint[1], tint[2], tint[3],
		)
	}
	rd.polys++
	return base
}

func (rd *Renderer2D) flush() error {
	if rd.polys == 0 {
		return nil
	}
	err := rd.r.DrawTriangles(rd.tex, rd.vp, rd.verts, rd.inds)
	rd.stats.DrawCalls++
	rd.resetBatch()
	return err
}

func (rd *Renderer2D) resetBatch() {
	rd.verts = rd.verts[:0]
	rd.inds = rd.inds[:0]
	rd.polys = 0
}

// PixelProjection maps framebuffer pixels (origin top-left, Y down) to clip
// space, column-major.
func PixelProjection(w, h int) [16]float32 {
	return ortho(0, float32(w), float32(h), 0, -1, 1)
}

func ortho(l, r, b, t, n, f float32) [16]float32 {
	rl := 1 / (r - l)
	tb := 1 / (t - b)
	fn := 1 / (f - n)
	return [16]float32{
		2 * rl, 0, 0, 0,
		0, 2 * tb, 0, 0,
		0, 0, -2 * fn, 0,
		-(r + l) * rl, -(t + b) * tb, -(f + n) * fn, 1,
	}
}
