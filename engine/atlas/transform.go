package atlas

// Rotate moves every corner's UV into the next corner slot, steps times.
// Each step is a quarter turn on a floor quad; steps wraps at the corner
// count.
func Rotate(q Quad, steps int) {
	cs := q.Corners()
	n := len(cs)
	steps %= n
	if steps < 0 {
		steps += n
	}
	if steps == 0 {
		return
	}
	var buf [4]UV
	prev := buf[:n]
	copy(prev, cs)
	for k := range prev {
		cs[(k+steps)%n] = prev[k]
	}
}

// Relocate translates the quad from the tile holding its minimum corner to
// the tile at newIndex, keeping the offsets and rotation inside the tile.
// The page is switched to the page of newIndex. Quads that were not
// confined to one source tile move by the same delta, unchecked.
func Relocate(q Quad, newIndex int) {
	cs := q.Corners()
	minU, minV := minCorner(cs)
	prevU := int(minU) - int(minU)%TileSize
	prevV := int(minV) - int(minV)%TileSize

	page, newU, newV := IndexToCoords(newIndex)
	du, dv := newU-prevU, newV-prevV
	for i := range cs {
		cs[i].U = uint16(int(cs[i].U) + du)
		cs[i].V = uint16(int(cs[i].V) + dv)
	}
	q.SetPage(uint8(page))
}
