package assets

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/hubastard/texatlas/engine/atlas"
	"github.com/hubastard/texatlas/engine/config"
)

// LoadStore builds the atlas tables named by cfg: floor and face records are
// read and migrated, then the anim definitions are registered. A missing
// anim file leaves the registry empty.
func LoadStore(cfg config.Config) (*atlas.Store, atlas.RemapStats, error) {
	var total atlas.RemapStats
	store := atlas.NewStore(0, 0)

	if cfg.TextureCount > 0 {
		err := withFile(cfg.Path(cfg.Textures), func(f *bufio.Reader) error {
			recs, stats, err := atlas.LoadFloorTextures(f, cfg.TextureCount, cfg.FormatVersion)
			store.Textures = recs
			total = addStats(total, stats)
			return err
		})
		if err != nil {
			return nil, total, err
		}
	}
	if cfg.FaceCount > 0 {
		err := withFile(cfg.Path(cfg.Faces), func(f *bufio.Reader) error {
			recs, stats, err := atlas.LoadFaceTextures(f, cfg.FaceCount, cfg.FormatVersion)
			store.Faces = recs
			total = addStats(total, stats)
			return err
		})
		if err != nil {
			return nil, total, err
		}
	}

	n, err := LoadAnimDefs(cfg.Path(cfg.Anims), store)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		log.Printf("no anim defs at %q", cfg.Path(cfg.Anims))
	case err != nil:
		return nil, total, err
	}

	log.Printf("atlas: %d floors, %d faces, %d animated, %d migrated (%d approximate)",
		len(store.Textures), len(store.Faces), n, total.Migrated, total.Closest)
	return store, total, nil
}

func withFile(path string, fn func(*bufio.Reader) error) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := fn(bufio.NewReader(f)); err != nil {
		return fmt.Errorf("%q: %w", path, err)
	}
	return nil
}

func addStats(a, b atlas.RemapStats) atlas.RemapStats {
	return atlas.RemapStats{
		Records:  a.Records + b.Records,
		Migrated: a.Migrated + b.Migrated,
		Closest:  a.Closest + b.Closest,
	}
}
