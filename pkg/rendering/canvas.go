package rendering

import (
	"image"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Canvas is a software raster target with an optional clip.
type Canvas struct {
	img  *image.RGBA
	clip Rect
}

// NewCanvas allocates a transparent canvas of the given pixel size.
func NewCanvas(width, height int) *Canvas {
	width, height = max(width, 0), max(height, 0)
	return &Canvas{
		img:  image.NewRGBA(image.Rect(0, 0, width, height)),
		clip: RectFromLTWH(0, 0, float64(width), float64(height)),
	}
}

// Image returns the backing image.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Size returns the canvas size in pixels.
func (c *Canvas) Size() Size {
	b := c.img.Bounds()
	return Size{Width: float64(b.Dx()), Height: float64(b.Dy())}
}

// ClipRect restricts drawing to r intersected with the canvas bounds.
func (c *Canvas) ClipRect(r Rect) {
	full := RectFromLTWH(0, 0, c.Size().Width, c.Size().Height)
	c.clip = full.Intersect(r)
}

// ResetClip removes any clip.
func (c *Canvas) ResetClip() {
	c.clip = RectFromLTWH(0, 0, c.Size().Width, c.Size().Height)
}

// Clear fills the whole canvas with col, ignoring the clip.
func (c *Canvas) Clear(col Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col.NRGBA()), image.Point{}, draw.Src)
}

// FillRect blends col over r.
func (c *Canvas) FillRect(r Rect, col Color) {
	dst := r.Intersect(c.clip).Pixels()
	if dst.Empty() || col.Alpha() == 0 {
		return
	}
	draw.Draw(c.img, dst, image.NewUniform(col.NRGBA()), image.Point{}, draw.Over)
}

// TextStyle describes how text should be rendered.
type TextStyle struct {
	Color Color
	// Bold overstrikes each glyph one pixel to the right.
	Bold bool
}

// Face is the bitmap face used for all text.
var Face font.Face = basicfont.Face7x13

// MeasureText returns the advance width of s in pixels.
func MeasureText(s string) float64 {
	return fixedToFloat(font.MeasureString(Face, s))
}

// LineHeight returns the height of one line of text.
func LineHeight() float64 {
	m := Face.Metrics()
	return fixedToFloat(m.Ascent + m.Descent)
}

// DrawTextCentered draws s centered horizontally and vertically in r.
// Glyphs are clipped to the canvas clip.
func (c *Canvas) DrawTextCentered(s string, r Rect, style TextStyle) {
	if s == "" {
		return
	}
	m := Face.Metrics()
	x := r.Left + (r.Width()-MeasureText(s))/2
	baseline := r.Top + (r.Height()-LineHeight())/2 + fixedToFloat(m.Ascent)

	clip := c.clip.Pixels()
	if clip.Empty() {
		return
	}
	d := font.Drawer{
		Dst:  c.img.SubImage(clip).(*image.RGBA),
		Src:  image.NewUniform(style.Color.NRGBA()),
		Face: Face,
	}
	d.Dot = fixed.Point26_6{X: floatToFixed(x), Y: floatToFixed(baseline)}
	d.DrawString(s)
	if style.Bold {
		d.Dot = fixed.Point26_6{X: floatToFixed(x + 1), Y: floatToFixed(baseline)}
		d.DrawString(s)
	}
}

// EncodePNG writes the canvas as a PNG image.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return png.Encode(w, c.img)
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}
