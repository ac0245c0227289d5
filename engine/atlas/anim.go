package atlas

const (
	MaxAnimFrames = 16

	// maxTurnFifties caps the time one turn can add, so a stalled turn does
	// not fast-forward every animation.
	maxTurnFifties = 10
)

// AnimTmap cycles the floor texture at Texture through the records listed
// in TMap. Delay is in units of 16 fifties.
type AnimTmap struct {
	Texture uint16
	TMap    [MaxAnimFrames]uint16
	Delay   [MaxAnimFrames]uint8
	Frames  uint8
	Current uint8
	Time    uint16
}

// AddFrame appends a frame; it reports false once the frame table is full.
func (a *AnimTmap) AddFrame(tmap uint16, delay uint8) bool {
	if int(a.Frames) >= MaxAnimFrames {
		return false
	}
	a.TMap[a.Frames] = tmap
	a.Delay[a.Frames] = delay
	a.Frames++
	return true
}

// AnimateTextures advances every registered animated tile by one game
// turn of fiftiesPerTurn. A tile whose frame delay elapsed steps to its next
// frame and gets that frame's floor record copied over it. It returns the
// number of tiles that stepped.
func (s *Store) AnimateTextures(fiftiesPerTurn int) int {
	dt := uint16(min(max(fiftiesPerTurn, 0), maxTurnFifties))
	stepped := 0
	for i := FirstAnimTmap; i < len(s.anims); i++ {
		a := &s.anims[i]
		a.Time += dt
		if int(a.Time>>4) <= int(a.Delay[a.Current]) {
			continue
		}
		a.Current++
		a.Time = 0
		if a.Current >= a.Frames {
			a.Current = 0
		}
		s.CopyFloor(int(a.Texture), int(a.TMap[a.Current]))
		stepped++
	}
	return stepped
}
