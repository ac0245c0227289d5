package renderer2d

import (
	"github.com/hubastard/texatlas/engine/atlas"
	"github.com/hubastard/texatlas/engine/core"
)

// SubTexture2D describes a UV sub-rect of a full texture.
type SubTexture2D struct {
	Texture core.Texture
	U0, V0  float32 // top-left
	U1, V1  float32 // bottom-right
}

// FromPixels builds a subtexture from pixel coordinates within an atlas page.
func FromPixels(tex core.Texture, x, y, w, h, atlasW, atlasH int) SubTexture2D {
	u0 := float32(x) / float32(atlasW)
	v0 := float32(y) / float32(atlasH)
	u1 := float32(x+w) / float32(atlasW)
	v1 := float32(y+h) / float32(atlasH)
	return SubTexture2D{Texture: tex, U0: u0, V0: v0, U1: u1, V1: v1}
}

// FromTile builds the subtexture of a whole atlas tile on its page texture.
func FromTile(page core.Texture, index int) SubTexture2D {
	_, u, v := atlas.IndexToCoords(index)
	return FromPixels(page, u, v, atlas.TileSize, atlas.TileSize, atlas.PageSize, atlas.PageSize)
}

// QuadUVs normalizes a quad's corner texels to page UVs, sampling texel
// centers so a corner at 31 stays inside its tile.
func QuadUVs(q atlas.Quad) [][2]float32 {
	cs := q.Corners()
	out := make([][2]float32, len(cs))
	for i, c := range cs {
		out[i] = [2]float32{
			(float32(c.U) + 0.5) / atlas.PageSize,
			(float32(c.V) + 0.5) / atlas.PageSize,
		}
	}
	return out
}
