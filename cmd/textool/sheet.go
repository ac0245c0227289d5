package main

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"io"
	"io/fs"
	"log"
	"path/filepath"
	"strconv"

	"github.com/hubastard/texatlas/engine/assets"
	"github.com/hubastard/texatlas/engine/atlas"
	"github.com/hubastard/texatlas/engine/colors"
	"github.com/hubastard/texatlas/engine/text"
)

const (
	sheetScale  = 2
	sheetFontPx = 10
)

// runSheet draws one atlas page at sheetScale with every record that lives
// on it labelled at its anchor tile. The page image is read from next to the
// records file when present.
func runSheet(w io.Writer, path string, count, page int, out string) error {
	recs, err := readFloors(path, count)
	if err != nil {
		return err
	}

	const size = atlas.PageSize * sheetScale
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	pix, err := assets.LoadAtlasPage(filepath.Dir(path), page)
	switch {
	case err == nil:
		src := &image.RGBA{Pix: pix, Stride: 4 * atlas.PageSize, Rect: image.Rect(0, 0, atlas.PageSize, atlas.PageSize)}
		for y := 0; y < size; y++ {
			for x := 0; x < size; x++ {
				img.Set(x, y, src.RGBAAt(x/sheetScale, y/sheetScale))
			}
		}
	case errors.Is(err, fs.ErrNotExist):
		draw.Draw(img, img.Bounds(), image.NewUniform(colors.DarkGray.NRGBA()), image.Point{}, draw.Src)
	default:
		return err
	}
	drawGrid(img)

	face, err := text.LoadMono(sheetFontPx)
	if err != nil {
		return err
	}
	defer face.Close()

	fg, bg := colors.White.NRGBA(), colors.DarkGray.WithAlpha(0.75).NRGBA()
	mark := colors.Highlight.NRGBA()
	labels := make(map[int]int) // tile -> labels already drawn
	drawn := 0
	for i := range recs {
		q := &recs[i]
		if int(q.Page) != page {
			continue
		}
		for _, c := range q.UV {
			img.Set(int(c.U)*sheetScale, int(c.V)*sheetScale, mark)
		}
		tile := atlas.OwningTileIndex(q)
		u, v := atlas.TileBase(tile)
		y := v*sheetScale + 1 + labels[tile]*(face.LineHeight()+2)
		face.DrawLabel(img, u*sheetScale+1, y, strconv.Itoa(i), fg, bg)
		labels[tile]++
		drawn++
	}

	if err := assets.SavePNG(out, img); err != nil {
		return err
	}
	if drawn == 0 {
		log.Printf("no records on page %d", page)
	}
	fmt.Fprintf(w, "%d records on page %d -> %s\n", drawn, page, out)
	return nil
}

func drawGrid(img *image.RGBA) {
	line := colors.Gray.NRGBA()
	size := img.Bounds().Dx()
	step := atlas.TileSize * sheetScale
	for i := 0; i < size; i += step {
		for j := 0; j < size; j++ {
			img.Set(i, j, line)
			img.Set(j, i, line)
		}
	}
}
