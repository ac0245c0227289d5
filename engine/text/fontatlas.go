package text

import (
	"fmt"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
)

// Face is a sized font used to label atlas tiles.
type Face struct {
	SizePx          float32
	Ascent, Descent int // pixels
	face            font.Face
}

func (f *Face) Close() error {
	if f == nil || f.face == nil {
		return nil
	}
	err := f.face.Close()
	f.face = nil
	return err
}

// LoadMono builds a face from the embedded Go Mono font.
func LoadMono(sizePx float32) (*Face, error) {
	return parseFace(gomono.TTF, sizePx)
}

// LoadTTF builds a face from a TTF/OTF file on disk.
func LoadTTF(path string, sizePx float32) (*Face, error) {
	ttfData, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}
	return parseFace(ttfData, sizePx)
}

func parseFace(ttfData []byte, sizePx float32) (*Face, error) {
	ft, err := opentype.Parse(ttfData)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size: float64(sizePx), DPI: 72, Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("new face: %w", err)
	}

	// Metrics in pixels
	m := face.Metrics()
	return &Face{
		SizePx:  sizePx,
		Ascent:  m.Ascent.Round(),
		Descent: m.Descent.Round(),
		face:    face,
	}, nil
}

// LineHeight is ascent plus descent in pixels.
func (f *Face) LineHeight() int { return f.Ascent + f.Descent }
