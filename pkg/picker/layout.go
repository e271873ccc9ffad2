package picker

import "math"

// Layout describes how a presenter should place the picker's columns.
//
// Rows are laid out top to bottom starting at Translate; the option under
// the highlight band (at MiddlePosition) is the one a snap would commit.
type Layout struct {
	Height         float64
	ItemHeight     float64
	VisibleItems   int
	MiddlePosition float64
	ShowLabels     bool
	Columns        []ColumnLayout
}

// ColumnLayout is the presentation state of one column.
type ColumnLayout struct {
	Label   string
	Options []Option
	// Offset is the controller's scroll offset.
	Offset float64
	// Translate is the vertical translation of the first option.
	Translate float64
	// SelectedIndex is the committed option, or -1 for a static column.
	SelectedIndex int
	Phase         Phase
}

// VisibleItems returns how many whole options fit in height.
func VisibleItems(height, itemHeight float64) int {
	if !(itemHeight > 0) || !(height > 0) {
		return 0
	}
	return int(math.Floor(height / itemHeight))
}

// MiddlePosition returns the top of the highlight band: the row an option
// occupies when its column rests on it.
func MiddlePosition(height, itemHeight float64) float64 {
	return float64(VisibleItems(height, itemHeight)/2) * itemHeight
}

// Layout returns a snapshot of the picker's presentation state.
func (p *Picker) Layout() Layout {
	p.mu.Lock()
	defer p.mu.Unlock()

	h, ih := p.props.Height, p.props.ItemHeight
	l := Layout{
		Height:         h,
		ItemHeight:     ih,
		VisibleItems:   VisibleItems(h, ih),
		MiddlePosition: MiddlePosition(h, ih),
		ShowLabels:     *p.props.ShowLabels,
		Columns:        make([]ColumnLayout, len(p.columns)),
	}
	for i, c := range p.columns {
		col := p.props.Data[i]
		cl := ColumnLayout{
			Label:         col.Label,
			Options:       col.Options,
			Offset:        c.Offset(),
			Translate:     l.MiddlePosition + c.Offset(),
			SelectedIndex: -1,
			Phase:         c.Phase(),
		}
		if c.Column().Len() > 0 {
			cl.SelectedIndex = c.LockedIndex()
		}
		l.Columns[i] = cl
	}
	return l
}

// ItemTop returns the top edge of option i for a column translated by translate.
func (l Layout) ItemTop(translate float64, i int) float64 {
	return translate + float64(i)*l.ItemHeight
}

// VisibleRange returns the half-open range of option indices that intersect
// the viewport when the column is translated by translate.
func (l Layout) VisibleRange(translate float64, n int) (first, last int) {
	if n == 0 || !(l.ItemHeight > 0) {
		return 0, 0
	}
	first = int(math.Floor(-translate / l.ItemHeight))
	last = int(math.Ceil((l.Height - translate) / l.ItemHeight))
	return max(first, 0), min(last, n)
}

// CenterIndex returns the option under the highlight band for a column
// translated by translate, clamped to [0, n-1].
func (l Layout) CenterIndex(translate float64, n int) int {
	if n == 0 || !(l.ItemHeight > 0) {
		return -1
	}
	offset := translate - l.MiddlePosition
	return clampIndex(int(math.Round(math.Abs(math.Min(offset, 0))/l.ItemHeight)), n)
}
