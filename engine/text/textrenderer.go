package text

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// labelPad is the gap in pixels between a label's backing box and its text.
const labelPad = 1

// Measure returns the pixel advance of s.
func (f *Face) Measure(s string) int {
	return font.MeasureString(f.face, s).Ceil()
}

// DrawString draws s with its top-left corner at (x, y).
func (f *Face) DrawString(dst draw.Image, x, y int, s string, col color.Color) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: f.face,
		Dot:  fixed.P(x, y+f.Ascent),
	}
	d.DrawString(s)
}

// DrawLabel draws s on a filled backing box at (x, y) and returns the box.
// The box is clipped to dst.
func (f *Face) DrawLabel(dst draw.Image, x, y int, s string, fg, bg color.Color) image.Rectangle {
	box := image.Rect(x, y, x+f.Measure(s)+2*labelPad, y+f.LineHeight()+2*labelPad).Intersect(dst.Bounds())
	if box.Empty() {
		return box
	}
	draw.Draw(dst, box, image.NewUniform(bg), image.Point{}, draw.Over)
	f.DrawString(dst, x+labelPad, y+labelPad, s, fg)
	return box
}
