package atlas

// FirstAnimTmap is the first animated slot; slots below it are reserved
// and never animated.
const FirstAnimTmap = 10

// Store owns the atlas tables: floor textures (game_textures), face
// textures and the animated tile registry. Entries are addressed by index
// and always copied by value.
type Store struct {
	Textures []FloorTexture
	Faces    []FaceTexture
	anims    []AnimTmap
}

func NewStore(floors, faces int) *Store {
	s := &Store{
		Textures: make([]FloorTexture, floors),
		Faces:    make([]FaceTexture, faces),
	}
	s.ResetAnims()
	return s
}

// NumAnimTmaps is the registry size (next_anim_tmap).
func (s *Store) NumAnimTmaps() int { return len(s.anims) }

// AddAnimTmap registers an animated tile and returns its slot.
func (s *Store) AddAnimTmap(a AnimTmap) int {
	s.anims = append(s.anims, a)
	return len(s.anims) - 1
}

// AnimTmap returns the registry entry at slot i for in-place edits.
func (s *Store) AnimTmap(i int) *AnimTmap { return &s.anims[i] }

// ResetAnims drops every animated tile; the next one lands at FirstAnimTmap.
func (s *Store) ResetAnims() {
	if cap(s.anims) < FirstAnimTmap {
		s.anims = make([]AnimTmap, FirstAnimTmap, 64)
		return
	}
	s.anims = s.anims[:FirstAnimTmap]
	clear(s.anims)
}

// Floor returns a copy of floor texture i.
func (s *Store) Floor(i int) FloorTexture { return s.Textures[i] }

// SetFloor overwrites floor texture i.
func (s *Store) SetFloor(i int, t FloorTexture) { s.Textures[i] = t }

// CopyFloor copies the whole record at src over dst.
func (s *Store) CopyFloor(dst, src int) { s.Textures[dst] = s.Textures[src] }
