// Package atlas addresses the floor/face texture atlas: 32x32 tiles packed
// 8x8 per 256x256 page, with any number of pages.
package atlas

const (
	TileSize     = 32
	TilesPerRow  = 8
	TilesPerPage = TilesPerRow * TilesPerRow
	PageSize     = TileSize * TilesPerRow
)

// IndexToCoords converts a linear tile index into its page and the
// top-left texel of the tile inside that page. The index is not checked.
func IndexToCoords(index int) (page, u, v int) {
	page = index / TilesPerPage
	u = (index % TilesPerRow) * TileSize
	v = ((index / TilesPerRow) % TilesPerRow) * TileSize
	return page, u, v
}

// CoordsToIndex is the inverse of IndexToCoords. Any texel inside a tile
// maps to that tile.
func CoordsToIndex(page, u, v int) int {
	return page*TilesPerPage + (v/TileSize)*TilesPerRow + u/TileSize
}

// TileBase returns the top-left texel of the tile, ignoring its page.
func TileBase(index int) (u, v int) {
	_, u, v = IndexToCoords(index)
	return u, v
}

// OwningTileIndex returns the anchor tile of a quad: the tile holding its
// minimum U and minimum V, on the quad's page.
func OwningTileIndex(q Quad) int {
	minU, minV := minCorner(q.Corners())
	return CoordsToIndex(int(q.PageNum()), int(minU), int(minV))
}
