package assets

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hubastard/texatlas/engine/atlas"
	"github.com/tidwall/gjson"
)

const waterDefs = `{
  "anims": [
    {"texture": 20, "frames": [{"tmap": 30, "delay": 2}, {"tmap": 31, "delay": 2}, {"tmap": 32, "delay": 4}]},
    {"texture": 21, "frames": [{"tmap": 40, "delay": 0}]}
  ]
}`

func TestLoadAnimDefs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "anims.json")
	if err := os.WriteFile(path, []byte(waterDefs), 0o644); err != nil {
		t.Fatal(err)
	}
	store := atlas.NewStore(64, 0)
	n, err := LoadAnimDefs(path, store)
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 || store.NumAnimTmaps() != atlas.FirstAnimTmap+2 {
		t.Fatalf("registered %d, registry size %d", n, store.NumAnimTmaps())
	}
	a := store.AnimTmap(atlas.FirstAnimTmap)
	if a.Texture != 20 || a.Frames != 3 || a.TMap[2] != 32 || a.Delay[2] != 4 {
		t.Fatalf("first anim = %+v", *a)
	}
}

func TestParseAnimDefsRejects(t *testing.T) {
	tests := []struct {
		name, doc, errPart string
	}{
		{"not json", `{"anims": [`, "invalid JSON"},
		{"not array", `{"anims": 3}`, "not an array"},
		{"texture range", `{"anims": [{"texture": 64, "frames": [{"tmap": 1}]}]}`, "texture"},
		{"tmap range", `{"anims": [{"texture": 1, "frames": [{"tmap": -1}]}]}`, "tmap"},
		{"delay range", `{"anims": [{"texture": 1, "frames": [{"tmap": 1, "delay": 300}]}]}`, "delay"},
		{"no frames", `{"anims": [{"texture": 1, "frames": []}]}`, "no frames"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := atlas.NewStore(64, 0)
			_, err := ParseAnimDefs([]byte(tt.doc), store)
			if err == nil || !strings.Contains(err.Error(), tt.errPart) {
				t.Fatalf("err = %v, want mention of %q", err, tt.errPart)
			}
			if store.NumAnimTmaps() != atlas.FirstAnimTmap {
				t.Fatal("rejected defs must not register anything")
			}
		})
	}
}

func TestParseAnimDefsSecondEntryFails(t *testing.T) {
	doc := `{"anims": [{"texture": 1, "frames": [{"tmap": 2}]}, {"texture": 99, "frames": [{"tmap": 2}]}]}`
	store := atlas.NewStore(64, 0)
	_, err := ParseAnimDefs([]byte(doc), store)
	if err == nil || !strings.Contains(err.Error(), "anim 1") {
		t.Fatalf("err = %v", err)
	}
	if store.NumAnimTmaps() != atlas.FirstAnimTmap {
		t.Fatal("partial defs registered")
	}
}

func TestDumpStore(t *testing.T) {
	store := atlas.NewStore(2, 1)
	store.Textures[1] = atlas.FloorFromTile(4*atlas.TilesPerPage + 42)
	store.Faces[0] = atlas.FaceFromTile(9)
	var a atlas.AnimTmap
	a.Texture = 1
	a.AddFrame(0, 3)
	store.AddAnimTmap(a)

	out, err := DumpStore(store)
	if err != nil {
		t.Fatal(err)
	}
	if !gjson.ValidBytes(out) {
		t.Fatalf("invalid JSON: %s", out)
	}
	doc := gjson.ParseBytes(out)
	if got := doc.Get("floors.#").Int(); got != 2 {
		t.Fatalf("floors = %d", got)
	}
	if got := doc.Get("floors.1.tile").Int(); got != 4*atlas.TilesPerPage+42 {
		t.Errorf("floors.1.tile = %d", got)
	}
	if got := doc.Get("floors.1.uv.2.0").Int(); got != 95 {
		t.Errorf("floors.1.uv.2.0 = %d", got)
	}
	if got := doc.Get("faces.0.tile").Int(); got != 9 {
		t.Errorf("faces.0.tile = %d", got)
	}
	if got := doc.Get("anims.0.slot").Int(); got != atlas.FirstAnimTmap {
		t.Errorf("anims.0.slot = %d", got)
	}
	if got := doc.Get("anims.0.frames.0.delay").Int(); got != 3 {
		t.Errorf("anims.0.frames.0.delay = %d", got)
	}
}
