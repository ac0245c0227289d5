package colors

import "image/color"

// Color is linear RGBA in [0,1], the layout GL tints expect.
type Color [4]float32

var (
	White    = Color{1, 1, 1, 1}
	Red      = Color{1, 0, 0, 1}
	Green    = Color{0, 1, 0, 1}
	Yellow   = Color{1, 1, 0, 1}
	Gray     = Color{0.5, 0.5, 0.5, 1}
	DarkGray = Color{0.08, 0.10, 0.12, 1}

	// Highlight marks animated tiles in the viewer and quad corners on
	// contact sheets.
	Highlight = Color{1, 0.85, 0.4, 1}
)

func (c Color) WithAlpha(a float32) Color {
	c[3] = a
	return c
}

// NRGBA converts to an 8-bit non-premultiplied color for image output.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: to8(c[0]), G: to8(c[1]), B: to8(c[2]), A: to8(c[3])}
}

func to8(f float32) uint8 {
	switch {
	case f <= 0:
		return 0
	case f >= 1:
		return 255
	}
	return uint8(f*255 + 0.5)
}
