package rendering

import (
	"math"

	"github.com/go-drift/picker/pkg/picker"
)

// Theme holds the colors used to paint a picker.
type Theme struct {
	Background Color
	Text       Color
	Selected   Color
	Divider    Color
	// Mask is the fade color; its alpha is replaced by the fade ramp.
	Mask Color
}

// DefaultTheme is a light theme.
var DefaultTheme = Theme{
	Background: ColorWhite,
	Text:       RGB(0x21, 0x21, 0x21),
	Selected:   RGB(0x19, 0x76, 0xD2),
	Divider:    RGBA(0, 0, 0, 0x1F),
	Mask:       ColorWhite,
}

// Header geometry: 12px vertical padding around one line of text.
const (
	headerPadding = 12
	dividerWidth  = 1
)

// HeaderHeight returns the height of the label row, or 0 when hidden.
func HeaderHeight(l picker.Layout) float64 {
	if !l.ShowLabels {
		return 0
	}
	return 2*headerPadding + LineHeight() + dividerWidth
}

// PickerSize returns the canvas size needed to paint l at the given width.
func PickerSize(l picker.Layout, width float64) Size {
	return Size{Width: width, Height: HeaderHeight(l) + l.Height}
}

// PaintPicker paints l onto c, filling its full width. Translate values in
// the layout are used as-is, so presenters can pass eased offsets.
func PaintPicker(c *Canvas, l picker.Layout, theme Theme) {
	c.ResetClip()
	c.Clear(theme.Background)

	size := c.Size()
	n := len(l.Columns)
	if n == 0 {
		return
	}
	colWidth := size.Width / float64(n)

	header := HeaderHeight(l)
	if header > 0 {
		for i, col := range l.Columns {
			r := RectFromLTWH(float64(i)*colWidth, 0, colWidth, header-dividerWidth)
			c.ClipRect(r)
			c.DrawTextCentered(col.Label, r, TextStyle{Color: theme.Text, Bold: true})
		}
		c.ResetClip()
		c.FillRect(RectFromLTWH(0, header-dividerWidth, size.Width, dividerWidth), theme.Divider)
	}

	for i, col := range l.Columns {
		viewport := RectFromLTWH(float64(i)*colWidth, header, colWidth, l.Height)
		paintColumn(c, l, col, viewport, theme)
	}
	c.ResetClip()

	paintMask(c, RectFromLTWH(0, header, size.Width, l.Height), theme.Mask)

	band := RectFromLTWH(0, header+l.MiddlePosition, size.Width, l.ItemHeight)
	c.FillRect(RectFromLTWH(band.Left, band.Top, band.Width(), dividerWidth), theme.Divider)
	c.FillRect(RectFromLTWH(band.Left, band.Bottom-dividerWidth, band.Width(), dividerWidth), theme.Divider)
}

func paintColumn(c *Canvas, l picker.Layout, col picker.ColumnLayout, viewport Rect, theme Theme) {
	c.ClipRect(viewport)
	first, last := l.VisibleRange(col.Translate, len(col.Options))
	for i := first; i < last; i++ {
		item := RectFromLTWH(viewport.Left, viewport.Top+l.ItemTop(col.Translate, i), viewport.Width(), l.ItemHeight)
		style := TextStyle{Color: theme.Text}
		if i == col.SelectedIndex {
			style = TextStyle{Color: theme.Selected, Bold: true}
		}
		c.DrawTextCentered(col.Options[i].Label, item, style)
	}
}

// paintMask fades rows away from the middle: alpha runs 0.95 to 0.6 over the
// top 45% of the viewport and mirrors at the bottom. The middle 10% is clear.
func paintMask(c *Canvas, r Rect, mask Color) {
	rows := int(math.Round(r.Height()))
	for y := range rows {
		t := (float64(y) + 0.5) / r.Height()
		var a float64
		switch {
		case t < 0.45:
			a = 0.95 - (0.95-0.6)*t/0.45
		case t > 0.55:
			a = 0.6 + (0.95-0.6)*(t-0.55)/0.45
		default:
			continue
		}
		row := RectFromLTWH(r.Left, r.Top+float64(y), r.Width(), 1)
		c.FillRect(row, mask.WithAlpha(uint8(math.Round(a*maxByte))))
	}
}

// RenderPicker paints l on a new canvas of the given width.
func RenderPicker(l picker.Layout, width int, theme Theme) *Canvas {
	size := PickerSize(l, float64(width))
	c := NewCanvas(width, int(math.Ceil(size.Height)))
	PaintPicker(c, l, theme)
	return c
}
