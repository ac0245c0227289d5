package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hubastard/texatlas/engine/atlas"
	"github.com/tidwall/gjson"
)

func writeFloors(t *testing.T, dir string, recs []atlas.FloorTexture) string {
	t.Helper()
	path := filepath.Join(dir, "textures.dat")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := atlas.WriteFloorTextures(f, recs); err != nil {
		t.Fatal(err)
	}
	return path
}

func runOK(t *testing.T, args ...string) string {
	t.Helper()
	var stdout, stderr bytes.Buffer
	if code := run(args, &stdout, &stderr); code != 0 {
		t.Fatalf("textool %v exit %d: %s", args, code, stderr.String())
	}
	return stdout.String()
}

func TestUsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no command", nil},
		{"unknown", []string{"frobnicate"}},
		{"migrate arity", []string{"migrate", "a"}},
		{"bad count", []string{"dump", "x.dat", "many"}},
		{"negative count", []string{"dump", "x.dat", "-1"}},
		{"walk arity", []string{"walk", "w.dat", "0"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			if code := run(tt.args, &stdout, &stderr); code != 1 {
				t.Fatalf("exit %d, want 1", code)
			}
			if stderr.Len() == 0 {
				t.Fatal("no message on stderr")
			}
		})
	}
}

func TestMigrate(t *testing.T) {
	dir := t.TempDir()
	in := writeFloors(t, dir, []atlas.FloorTexture{
		atlas.FloorFromTile(3),
		atlas.FloorFromTile(atlas.TilesPerPage + 3), // page 1 passes through
	})
	out := filepath.Join(dir, "migrated.dat")

	got := runOK(t, "migrate", in, out, "2")
	if !strings.Contains(got, "2 records, 1 migrated, 0 approximate") {
		t.Fatalf("stdout = %q", got)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	recs, err := atlas.ReadFloorTextures(f, 2)
	if err != nil {
		t.Fatal(err)
	}
	want := atlas.FloorFromTile(2)
	atlas.Rotate(&want, 3)
	if recs[0] != want {
		t.Errorf("record 0 = %+v, want %+v", recs[0], want)
	}
	if recs[1] != atlas.FloorFromTile(atlas.TilesPerPage+3) {
		t.Errorf("record 1 changed: %+v", recs[1])
	}
}

func TestMigrateShortInput(t *testing.T) {
	dir := t.TempDir()
	in := writeFloors(t, dir, []atlas.FloorTexture{atlas.FloorFromTile(0)})
	var stdout, stderr bytes.Buffer
	if code := run([]string{"migrate", in, filepath.Join(dir, "o.dat"), "4"}, &stdout, &stderr); code != 1 {
		t.Fatalf("exit %d, want 1", code)
	}
	if !strings.Contains(stderr.String(), "short record") {
		t.Fatalf("stderr = %q", stderr.String())
	}
}

func TestDump(t *testing.T) {
	in := writeFloors(t, t.TempDir(), []atlas.FloorTexture{atlas.FloorFromTile(3), atlas.FloorFromTile(70)})
	got := runOK(t, "dump", in, "2")
	if n := gjson.Get(got, "floors.#").Int(); n != 2 {
		t.Fatalf("floors = %d in %s", n, got)
	}
	if tile := gjson.Get(got, "floors.1.tile").Int(); tile != 70 {
		t.Errorf("floors.1.tile = %d", tile)
	}
	if page := gjson.Get(got, "floors.1.page").Int(); page != 1 {
		t.Errorf("floors.1.page = %d", page)
	}
}

func TestRules(t *testing.T) {
	got := runOK(t, "rules")
	for _, want := range []string{"only-tile", "starts-within", "approximate", "face"} {
		if !strings.Contains(got, want) {
			t.Errorf("rules output missing %q", want)
		}
	}
}

func TestWalk(t *testing.T) {
	data := make([]byte, 640)
	data[9] = 1 // top-left quadrant of tile 9
	path := filepath.Join(t.TempDir(), "textwalk.dat")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	if got := runOK(t, "walk", path, "0", "40", "40"); !strings.Contains(got, "tile 9 walkable=true") {
		t.Errorf("top-left: %q", got)
	}
	if got := runOK(t, "walk", path, "0", "56", "40"); !strings.Contains(got, "walkable=false") {
		t.Errorf("top-right: %q", got)
	}
}

func TestAnimate(t *testing.T) {
	dir := t.TempDir()
	recs := make([]atlas.FloorTexture, atlas.TilesPerPage)
	for i := range recs {
		recs[i] = atlas.FloorFromTile(i)
	}
	in := writeFloors(t, dir, recs)
	anims := filepath.Join(dir, "anims.json")
	doc := `{"anims":[{"texture":5,"frames":[{"tmap":5,"delay":0},{"tmap":6,"delay":0}]}]}`
	if err := os.WriteFile(anims, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	// five fifties per turn: the first frame outlives delay 0 on turn 4
	got := runOK(t, "animate", in, "64", anims, "4")
	if !strings.Contains(got, "turn 3: texture 5 frame 0/2 tile 5") {
		t.Errorf("turn 3 missing:\n%s", got)
	}
	if !strings.Contains(got, "turn 4: texture 5 frame 1/2 tile 6") {
		t.Errorf("turn 4 missing:\n%s", got)
	}
}

func TestSheet(t *testing.T) {
	dir := t.TempDir()
	in := writeFloors(t, dir, []atlas.FloorTexture{
		atlas.FloorFromTile(0),
		atlas.FloorFromTile(9),
		atlas.FloorFromTile(atlas.TilesPerPage),
	})
	out := filepath.Join(dir, "sheet.png")
	got := runOK(t, "sheet", in, "3", "0", out)
	if !strings.Contains(got, "2 records on page 0") {
		t.Fatalf("stdout = %q", got)
	}
	if fi, err := os.Stat(out); err != nil || fi.Size() == 0 {
		t.Fatalf("sheet not written: %v", err)
	}
}
