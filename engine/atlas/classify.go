package atlas

// IsOnlyUsingTile reports whether the diagonal corners 1 and 3 both lie in
// the tile cell at index. Corners 2 and 4 are not sampled; a quad already
// known to be single-tile is fully described by one diagonal.
func IsOnlyUsingTile(q Quad, index int) bool {
	cs := q.Corners()
	baseU, baseV := TileBase(index)
	return inSpan(cs[0].U, baseU) && inSpan(cs[2].U, baseU) &&
		inSpan(cs[0].V, baseV) && inSpan(cs[2].V, baseV)
}

// StartsWithinTile reports whether index is the lowest tile touched by the
// quad on both axes. The quad may spill into higher tiles.
func StartsWithinTile(q Quad, index int) bool {
	cs := q.Corners()
	baseU, baseV := TileBase(index)
	aboveU, aboveV := true, true
	for _, c := range cs {
		if int(c.U) < baseU || int(c.V) < baseV {
			return false
		}
		if int(c.U) <= baseU+TileSize-1 {
			aboveU = false
		}
		if int(c.V) <= baseV+TileSize-1 {
			aboveV = false
		}
	}
	return !aboveU && !aboveV
}

func inSpan(c uint16, base int) bool {
	return int(c) >= base && int(c) <= base+TileSize-1
}
