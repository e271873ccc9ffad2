package picker

import (
	"context"
	"log/slog"
	"reflect"
	"sync"
	"time"

	"github.com/go-drift/picker/pkg/animation"
	"github.com/go-drift/picker/pkg/errors"
	"github.com/go-drift/picker/pkg/logging"
)

// Defaults applied when Props leaves a field at its zero value.
const (
	DefaultHeight     = 200
	DefaultItemHeight = 36
)

// Props configures a Picker.
type Props struct {
	// Data lists the columns in display order. Labels must be unique.
	Data []Column

	// InitialValues selects the starting option of each column by value.
	// Missing or unmatched entries start on the first option.
	InitialValues Values

	// Height is the visible viewport height in pixels. Default: 200.
	Height float64

	// ItemHeight is the height of one option in pixels. Default: 36.
	ItemHeight float64

	// ShowLabels toggles the column header row. Nil means true.
	ShowLabels *bool

	// OnChange receives the full selection after every user commit.
	// It is never called while the picker initializes.
	OnChange func(Values)

	// Clock schedules wheel settles. Nil means animation.DefaultClock().
	Clock animation.Clock
}

// Picker is a set of independent columns sharing one selection.
//
// All methods are safe for concurrent use. Input methods, settle callbacks
// and OnChange are serialized; OnChange always runs without the picker's
// lock held, so it may call back into the picker.
type Picker struct {
	mu      sync.Mutex
	props   Props
	columns []*ColumnController
	byLabel map[string]*ColumnController
	agg     *Aggregator

	pending  []Values
	disposed bool
}

// New creates a picker and positions every column on its initial value.
func New(props Props) *Picker {
	p := &Picker{}
	p.props = normalizeProps(props)
	p.initColumns()
	return p
}

// Update applies new props. Columns are rebuilt from scratch when Data,
// InitialValues or ItemHeight changed; otherwise only the viewport, labels
// and callback are replaced and scroll state is kept.
func (p *Picker) Update(props Props) {
	p.run(func() {
		if p.disposed {
			return
		}
		next := normalizeProps(props)
		reinit := next.ItemHeight != p.props.ItemHeight ||
			!reflect.DeepEqual(next.Data, p.props.Data) ||
			!reflect.DeepEqual(next.InitialValues, p.props.InitialValues)
		p.props = next
		if reinit {
			p.initColumns()
		}
	})
}

// DragStart begins a drag on the labelled column.
func (p *Picker) DragStart(label string, y float64) {
	p.withColumn(label, func(c *ColumnController) { c.DragStart(y) })
}

// DragMove continues a drag on the labelled column.
func (p *Picker) DragMove(label string, y float64) {
	p.withColumn(label, func(c *ColumnController) { c.DragMove(y) })
}

// DragEnd releases a drag, snapping and committing the labelled column.
func (p *Picker) DragEnd(label string) {
	p.withColumn(label, func(c *ColumnController) { c.DragEnd() })
}

// Wheel scrolls the labelled column by one wheel tick.
func (p *Picker) Wheel(label string, deltaY float64) {
	p.withColumn(label, func(c *ColumnController) { c.Wheel(deltaY) })
}

// Values returns a copy of the current selection.
func (p *Picker) Values() Values {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.agg.Values()
}

// Labels returns the column labels in display order.
func (p *Picker) Labels() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	labels := make([]string, len(p.props.Data))
	for i, col := range p.props.Data {
		labels[i] = col.Label
	}
	return labels
}

// ColumnState is a snapshot of one column's scroll state.
type ColumnState struct {
	Label       string
	Offset      float64
	LockedIndex int
	Phase       Phase
}

// State returns the scroll state of the labelled column.
func (p *Picker) State(label string) (ColumnState, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	c, ok := p.byLabel[label]
	if !ok {
		return ColumnState{}, false
	}
	return ColumnState{
		Label:       label,
		Offset:      c.Offset(),
		LockedIndex: c.LockedIndex(),
		Phase:       c.Phase(),
	}, true
}

// Offset returns the scroll offset of the labelled column, or 0.
func (p *Picker) Offset(label string) float64 {
	s, _ := p.State(label)
	return s.Offset
}

// SelectedIndex returns the committed index of the labelled column, or -1
// when the column is unknown or empty.
func (p *Picker) SelectedIndex(label string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	c, ok := p.byLabel[label]
	if !ok || c.Column().Len() == 0 {
		return -1
	}
	return c.LockedIndex()
}

// Flush commits every column whose wheel settle is still pending, in column
// order, so Values reflects what the columns show. Hosts call it before
// reading a final selection.
func (p *Picker) Flush() {
	p.run(func() {
		for _, c := range p.columns {
			c.Flush()
		}
	})
}

// Dispose cancels every pending settle. The picker ignores input afterwards.
func (p *Picker) Dispose() {
	p.run(func() {
		for _, c := range p.columns {
			c.Dispose()
		}
		p.disposed = true
	})
}

func (p *Picker) withColumn(label string, fn func(*ColumnController)) {
	p.run(func() {
		if c, ok := p.byLabel[label]; ok {
			fn(c)
		}
	})
}

// run executes fn under the lock and then delivers queued broadcasts in
// commit order.
func (p *Picker) run(fn func()) {
	p.mu.Lock()
	fn()
	pending := p.pending
	p.pending = nil
	onChange := p.props.OnChange
	p.mu.Unlock()

	for _, values := range pending {
		notify(onChange, values)
	}
}

func notify(onChange func(Values), values Values) {
	if onChange == nil {
		return
	}
	defer errors.Recover("picker.OnChange")
	onChange(values)
}

// initColumns replaces all scroll state. Must hold p.mu (or be constructing).
func (p *Picker) initColumns() {
	for _, c := range p.columns {
		c.Dispose()
	}
	p.columns = make([]*ColumnController, 0, len(p.props.Data))
	p.byLabel = make(map[string]*ColumnController, len(p.props.Data))
	p.agg = NewAggregator(func(v Values) { p.pending = append(p.pending, v) })

	clock := &serialClock{Clock: p.props.Clock, picker: p}
	for _, col := range p.props.Data {
		if _, dup := p.byLabel[col.Label]; dup {
			errors.Report(&errors.PickerError{
				Op:     "picker.New",
				Kind:   errors.KindConfig,
				Column: col.Label,
				Err:    errors.ErrDuplicateColumn,
			})
			// Later duplicates render but never scroll or commit.
			p.columns = append(p.columns, NewColumnController(Column{Label: col.Label}, ControllerConfig{ItemHeight: p.props.ItemHeight}))
			continue
		}
		if col.hasUncomparable() {
			errors.Report(&errors.PickerError{
				Op:     "picker.New",
				Kind:   errors.KindConfig,
				Column: col.Label,
				Err:    errors.ErrUncomparableOption,
			})
		}

		label := col.Label
		initial, hasInitial := p.props.InitialValues[label]
		c := NewColumnController(col, ControllerConfig{
			ItemHeight: p.props.ItemHeight,
			Initial:    initial,
			Clock:      clock,
			OnCommit: func(index int, opt Option) {
				slog.DebugContext(columnCtx(label), "commit", "index", index, "value", opt.Value)
				p.agg.Commit(label, opt.Value)
			},
		})
		if hasInitial && col.IndexOf(initial) < 0 && col.Len() > 0 {
			slog.DebugContext(columnCtx(label), "initial value not found, using first option", "value", initial)
		}
		p.columns = append(p.columns, c)
		p.byLabel[label] = c
		if opt, ok := c.Selected(); ok {
			p.agg.Seed(label, opt.Value)
		}
	}
	slog.DebugContext(logging.PackageCtx("picker"), "columns initialized", "count", len(p.columns))
}

func normalizeProps(props Props) Props {
	if props.Height < 0 {
		errors.Report(&errors.PickerError{Op: "picker.Props", Kind: errors.KindConfig, Err: errors.ErrInvalidHeight})
	}
	if !(props.Height > 0) {
		props.Height = DefaultHeight
	}
	if props.ItemHeight < 0 {
		errors.Report(&errors.PickerError{Op: "picker.Props", Kind: errors.KindConfig, Err: errors.ErrInvalidItemHeight})
	}
	if !(props.ItemHeight > 0) {
		props.ItemHeight = DefaultItemHeight
	}
	if props.ShowLabels == nil {
		show := true
		props.ShowLabels = &show
	} else {
		show := *props.ShowLabels
		props.ShowLabels = &show
	}
	if props.Clock == nil {
		props.Clock = animation.DefaultClock()
	}
	data := make([]Column, len(props.Data))
	for i, col := range props.Data {
		data[i] = col.clone()
	}
	props.Data = data
	props.InitialValues = props.InitialValues.Clone()
	return props
}

// serialClock runs settle callbacks through the picker's lock so they are
// serialized with input and followed by broadcast delivery.
type serialClock struct {
	animation.Clock
	picker *Picker
}

func (c *serialClock) AfterFunc(d time.Duration, f func()) animation.Timer {
	return c.Clock.AfterFunc(d, func() { c.picker.run(f) })
}

func columnCtx(label string) context.Context {
	return logging.AppendCtx(logging.PackageCtx("picker"), slog.String("column", label))
}
