package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/hubastard/texatlas/engine/assets"
	"github.com/hubastard/texatlas/engine/atlas"
	"github.com/hubastard/texatlas/engine/config"
	"github.com/hubastard/texatlas/engine/core"
)

// --- migrate ---

func runMigrate(w io.Writer, in, out string, count, version int) error {
	f, err := os.Open(in)
	if err != nil {
		return err
	}
	defer f.Close()

	recs, stats, err := atlas.LoadFloorTextures(bufio.NewReader(f), count, version)
	if err != nil {
		return fmt.Errorf("load %q: %w", in, err)
	}

	o, err := os.Create(out)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(o)
	if err := atlas.WriteFloorTextures(bw, recs); err != nil {
		_ = o.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		_ = o.Close()
		return err
	}
	if err := o.Close(); err != nil {
		return err
	}

	fmt.Fprintf(w, "%d records, %d migrated, %d approximate\n", stats.Records, stats.Migrated, stats.Closest)
	return nil
}

// --- dump ---

func readFloors(path string, count int) ([]atlas.FloorTexture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	recs, err := atlas.ReadFloorTextures(bufio.NewReader(f), count)
	if err != nil {
		return nil, fmt.Errorf("read %q: %w", path, err)
	}
	return recs, nil
}

func runDump(w io.Writer, path string, count int) error {
	recs, err := readFloors(path, count)
	if err != nil {
		return err
	}
	store := atlas.NewStore(0, 0)
	store.Textures = recs
	doc, err := assets.DumpStore(store)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(doc))
	return err
}

// --- rules ---

func runRules(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "KIND\tPAGE\tMATCH\tTEST\tTARGET\tROTATE\tNOTE")
	for _, kind := range []atlas.TextureKind{atlas.KindFloor, atlas.KindFace} {
		for _, page := range []int{0, 5} {
			for _, r := range atlas.RemapRules(kind, page) {
				note := ""
				if r.Closest {
					note = "approximate"
				}
				fmt.Fprintf(tw, "%s\t%d\t%s\t%d\t%d\t%d\t%s\n", kind, page, r.Match, r.Test, r.Target, r.Rotate, note)
			}
		}
	}
	return tw.Flush()
}

// --- walk ---

func runWalk(w io.Writer, path string, page, u, v int) error {
	wd, err := assets.LoadWalkData(path)
	if err != nil {
		return err
	}
	tile := atlas.CoordsToIndex(page, u, v)
	fmt.Fprintf(w, "page %d (%d,%d) tile %d walkable=%v\n", page, u, v, tile, wd.IsWalkable(page, u, v))
	return nil
}

// --- animate ---

func runAnimate(w io.Writer, path string, count int, anims string, turns int) error {
	recs, err := readFloors(path, count)
	if err != nil {
		return err
	}
	store := atlas.NewStore(0, 0)
	store.Textures = recs
	n, err := assets.LoadAnimDefs(anims, store)
	if err != nil {
		return err
	}

	cfg, err := config.Load("engine.ini")
	if err != nil {
		return err
	}
	eng := core.NewEngine(store, cfg)
	fmt.Fprintf(w, "%d animated tiles, %d fifties per turn\n", n, cfg.FiftiesPerTurn)
	for t := 0; t < turns; t++ {
		eng.Step(nil)
		for i := atlas.FirstAnimTmap; i < store.NumAnimTmaps(); i++ {
			a := store.AnimTmap(i)
			q := store.Textures[a.Texture]
			fmt.Fprintf(w, "turn %d: texture %d frame %d/%d tile %d\n",
				eng.Turn(), a.Texture, a.Current, a.Frames, atlas.OwningTileIndex(&q))
		}
	}
	return nil
}
