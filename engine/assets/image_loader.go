package assets

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"

	"github.com/hubastard/texatlas/engine/atlas"
)

var ErrPageSize = errors.New("atlas page has wrong size")

// PagePath is where atlas page images live inside a data directory.
func PagePath(dir string, page int) string {
	return filepath.Join(dir, fmt.Sprintf("page%02d.png", page))
}

// LoadAtlasPage loads one 256x256 atlas page as tightly packed RGBA8
// (row-major, top-left origin, stride 4*PageSize).
func LoadAtlasPage(dir string, page int) ([]byte, error) {
	path := PagePath(dir, page)
	img, err := decodePNG(path)
	if err != nil {
		return nil, err
	}
	b := img.Bounds()
	if b.Dx() != atlas.PageSize || b.Dy() != atlas.PageSize {
		return nil, fmt.Errorf("%q is %dx%d: %w", path, b.Dx(), b.Dy(), ErrPageSize)
	}
	return tightRGBA(imageToRGBA(img)), nil
}

func decodePNG(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", path, err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode png %q: %w", path, err)
	}
	return img, nil
}

// SavePNG writes img to path.
func SavePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %q: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode png %q: %w", path, err)
	}
	return f.Close()
}

func tightRGBA(m *image.RGBA) []byte {
	w, h := m.Bounds().Dx(), m.Bounds().Dy()
	if m.Stride == w*4 {
		return m.Pix[:w*h*4]
	}
	out := make([]byte, w*h*4)
	for y := 0; y < h; y++ {
		copy(out[y*w*4:(y+1)*w*4], m.Pix[y*m.Stride:y*m.Stride+w*4])
	}
	return out
}

func imageToRGBA(img image.Image) *image.RGBA {
	if m, ok := img.(*image.RGBA); ok && m.Rect.Min == (image.Point{}) {
		return m
	}
	dst := image.NewRGBA(image.Rect(0, 0, img.Bounds().Dx(), img.Bounds().Dy()))
	draw.Draw(dst, dst.Bounds(), img, img.Bounds().Min, draw.Src)
	return dst
}
