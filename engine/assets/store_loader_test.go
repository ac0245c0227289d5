package assets

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/hubastard/texatlas/engine/atlas"
	"github.com/hubastard/texatlas/engine/config"
)

func writeRecordFile(t *testing.T, path string, write func(f *os.File) error) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := write(f); err != nil {
		t.Fatal(err)
	}
}

func TestLoadStore(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.DataDir = dir
	cfg.TextureCount = 3
	cfg.FaceCount = 1

	writeRecordFile(t, cfg.Path(cfg.Textures), func(f *os.File) error {
		return atlas.WriteFloorTextures(f, []atlas.FloorTexture{
			atlas.FloorFromTile(3),
			atlas.FloorFromTile(57),
			atlas.FloorFromTile(20),
		})
	})
	writeRecordFile(t, cfg.Path(cfg.Faces), func(f *os.File) error {
		return atlas.WriteFaceTextures(f, []atlas.FaceTexture{atlas.FaceFromTile(5*atlas.TilesPerPage + 9)})
	})
	anims := `{"anims":[{"texture":2,"frames":[{"tmap":0,"delay":1},{"tmap":1,"delay":1}]}]}`
	if err := os.WriteFile(cfg.Path(cfg.Anims), []byte(anims), 0o644); err != nil {
		t.Fatal(err)
	}

	store, stats, err := LoadStore(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if stats.Records != 4 || stats.Migrated != 3 || stats.Closest != 1 {
		t.Errorf("stats = %+v", stats)
	}
	if got := atlas.OwningTileIndex(&store.Textures[1]); got != 63 {
		t.Errorf("tile 57 migrated to %d, want 63", got)
	}
	if got := atlas.OwningTileIndex(&store.Faces[0]); got != 4*atlas.TilesPerPage+51 {
		t.Errorf("face migrated to tile %d", got)
	}
	if store.NumAnimTmaps() != atlas.FirstAnimTmap+1 {
		t.Errorf("anim registry = %d", store.NumAnimTmaps())
	}
}

func TestLoadStoreWithoutAnims(t *testing.T) {
	cfg := config.Default()
	cfg.DataDir = t.TempDir()
	store, _, err := LoadStore(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if len(store.Textures) != 0 || store.NumAnimTmaps() != atlas.FirstAnimTmap {
		t.Fatalf("store = %d floors, %d anims", len(store.Textures), store.NumAnimTmaps())
	}
}

func TestLoadStoreMissingRecords(t *testing.T) {
	cfg := config.Default()
	cfg.DataDir = t.TempDir()
	cfg.TextureCount = 1
	if _, _, err := LoadStore(cfg); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("err = %v", err)
	}
}

func TestLoadStoreShortRecords(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.DataDir = dir
	cfg.TextureCount = 5
	if err := os.WriteFile(filepath.Join(dir, cfg.Textures), make([]byte, atlas.FloorRecordSize), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := LoadStore(cfg); !errors.Is(err, atlas.ErrShortRecord) {
		t.Fatalf("err = %v", err)
	}
}
