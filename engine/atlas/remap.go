package atlas

// Legacy texture records were authored against an older atlas layout.
// Loading them copies the record and then applies the first matching rule
// of the table for its kind and page.

type MatchKind uint8

const (
	MatchOnlyTile     MatchKind = iota // IsOnlyUsingTile
	MatchStartsWithin                  // StartsWithinTile
)

func (k MatchKind) String() string {
	switch k {
	case MatchOnlyTile:
		return "only-tile"
	case MatchStartsWithin:
		return "starts-within"
	default:
		return "unknown"
	}
}

// RemapRule moves a quad matching Test to Target, then rotates it.
// Test is a tile index within the rule's page; Target is a global index.
type RemapRule struct {
	Match   MatchKind
	Test    int
	Target  int
	Rotate  int
	Closest bool // no exact equivalent exists; Target is the nearest look
}

func (r RemapRule) matches(q Quad) bool {
	switch r.Match {
	case MatchOnlyTile:
		return IsOnlyUsingTile(q, r.Test)
	case MatchStartsWithin:
		return StartsWithinTile(q, r.Test)
	}
	return false
}

func (r RemapRule) apply(q Quad) {
	Relocate(q, r.Target)
	Rotate(q, r.Rotate)
}

type TextureKind uint8

const (
	KindFloor TextureKind = iota
	KindFace
)

func (k TextureKind) String() string {
	if k == KindFace {
		return "face"
	}
	return "floor"
}

// Page 0 swapped several tile pairs between layouts, so a record migrated
// twice moves again.
var floorPage0Rules = []RemapRule{
	{Match: MatchOnlyTile, Test: 3, Target: 2, Rotate: 3},
	{Match: MatchOnlyTile, Test: 6, Target: 7, Rotate: 1},
	{Match: MatchOnlyTile, Test: 7, Target: 6, Rotate: 3},
	{Match: MatchOnlyTile, Test: 19, Target: 18, Rotate: 3},
	{Match: MatchOnlyTile, Test: 22, Target: 23, Rotate: 1},
	{Match: MatchOnlyTile, Test: 23, Target: 22, Rotate: 3},
	{Match: MatchOnlyTile, Test: 44, Target: 46},
	{Match: MatchOnlyTile, Test: 45, Target: 44, Rotate: 2},
	{Match: MatchOnlyTile, Test: 46, Target: 45},
	{Match: MatchOnlyTile, Test: 57, Target: 63, Closest: true},
	{Match: MatchOnlyTile, Test: 60, Target: 62, Rotate: 2},
	{Match: MatchOnlyTile, Test: 62, Target: 60, Rotate: 2},
}

const page4 = 4 * TilesPerPage

var floorPage5Rules = []RemapRule{
	{Match: MatchStartsWithin, Test: 0, Target: page4 + 42},
	{Match: MatchStartsWithin, Test: 1, Target: page4 + 43},
	{Match: MatchStartsWithin, Test: 2, Target: page4 + 44},
	{Match: MatchStartsWithin, Test: 8, Target: page4 + 50},
	{Match: MatchStartsWithin, Test: 9, Target: page4 + 51},
	{Match: MatchStartsWithin, Test: 10, Target: page4 + 52},
}

// Faces share the floor page 5 move; the classifier sees three corners.
var facePage5Rules = floorPage5Rules

// RemapRules returns the ordered rule table for a texture kind and legacy
// page, or nil when records on that page pass through unchanged. The
// returned slice must not be modified.
func RemapRules(kind TextureKind, page int) []RemapRule {
	switch {
	case kind == KindFloor && page == 0:
		return floorPage0Rules
	case kind == KindFloor && page == 5:
		return floorPage5Rules
	case kind == KindFace && page == 5:
		return facePage5Rules
	}
	return nil
}

func remap(kind TextureKind, q Quad) (RemapRule, bool) {
	for _, r := range RemapRules(kind, int(q.PageNum())) {
		if r.matches(q) {
			r.apply(q)
			return r, true
		}
	}
	return RemapRule{}, false
}

// RemapFloorTexture copies a legacy floor record into dst and migrates it
// to the current atlas layout. formatVersion does not select rules; every
// record passed in is migrated, so callers must not pass a record twice.
// It returns the applied rule, and false if the copy was final.
func RemapFloorTexture(dst, src *FloorTexture, formatVersion int) (RemapRule, bool) {
	*dst = *src
	return remap(KindFloor, dst)
}

// RemapFaceTexture is RemapFloorTexture for three-corner face records.
func RemapFaceTexture(dst, src *FaceTexture, formatVersion int) (RemapRule, bool) {
	*dst = *src
	return remap(KindFace, dst)
}
