package atlas

// UV is one texel corner of a textured polygon.
type UV struct {
	U, V uint16
}

// Quad is a textured polygon whose corners select atlas content. Floor
// textures have four corners, face textures three.
type Quad interface {
	// Corners aliases the corner storage; writes go to the quad.
	Corners() []UV
	PageNum() uint8
	SetPage(page uint8)
}

// FloorTexture is one game_textures entry (legacy SingleFloorTexture).
type FloorTexture struct {
	UV   [4]UV
	Page uint8
}

func (t *FloorTexture) Corners() []UV      { return t.UV[:] }
func (t *FloorTexture) PageNum() uint8     { return t.Page }
func (t *FloorTexture) SetPage(page uint8) { t.Page = page }

// FaceTexture is one face texture entry (legacy SingleTexture).
type FaceTexture struct {
	UV   [3]UV
	Page uint8
}

func (t *FaceTexture) Corners() []UV      { return t.UV[:] }
func (t *FaceTexture) PageNum() uint8     { return t.Page }
func (t *FaceTexture) SetPage(page uint8) { t.Page = page }

// FloorFromTile builds a floor texture covering exactly one tile, corners
// in top-left, top-right, bottom-right, bottom-left order.
func FloorFromTile(index int) FloorTexture {
	page, u, v := IndexToCoords(index)
	u0, v0 := uint16(u), uint16(v)
	u1, v1 := u0+TileSize-1, v0+TileSize-1
	return FloorTexture{
		UV:   [4]UV{{u0, v0}, {u1, v0}, {u1, v1}, {u0, v1}},
		Page: uint8(page),
	}
}

// FaceFromTile builds a face texture on the upper-left triangle of a tile.
func FaceFromTile(index int) FaceTexture {
	page, u, v := IndexToCoords(index)
	u0, v0 := uint16(u), uint16(v)
	u1, v1 := u0+TileSize-1, v0+TileSize-1
	return FaceTexture{
		UV:   [3]UV{{u0, v0}, {u1, v0}, {u0, v1}},
		Page: uint8(page),
	}
}

func minCorner(cs []UV) (minU, minV uint16) {
	minU, minV = cs[0].U, cs[0].V
	for _, c := range cs[1:] {
		if c.U < minU {
			minU = c.U
		}
		if c.V < minV {
			minV = c.V
		}
	}
	return minU, minV
}
