// Package tui presents a picker in the terminal with bubbletea.
//
// Mouse wheel and drag events map onto the picker's input surface, and
// settle callbacks are marshalled onto the bubbletea event loop through
// platform.RegisterDispatch so every picker call happens on one goroutine.
package tui

import (
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/go-drift/picker/pkg/animation"
	"github.com/go-drift/picker/pkg/logging"
	"github.com/go-drift/picker/pkg/picker"
)

// FrameInterval is the redraw period while a column eases to its offset.
const FrameInterval = 16 * time.Millisecond

// minColumnWidth is used when the terminal width is not known yet.
const minColumnWidth = 12

// Options configures a Model.
type Options struct {
	Props picker.Props
	// Theme defaults to DefaultTheme().
	Theme *Theme
	// Clock drives the snap easing. Nil means animation.DefaultClock().
	Clock animation.Clock
}

// dispatchMsg carries a callback queued through platform.Dispatch.
type dispatchMsg struct{ fn func() }

// frameMsg redraws an easing column.
type frameMsg time.Time

// changeLog receives broadcasts. It is shared by every copy of a Model.
type changeLog struct {
	last    picker.Values
	count   int
	forward func(picker.Values)
}

func (c *changeLog) record(v picker.Values) {
	c.last = v
	c.count++
	slog.DebugContext(logging.PackageCtx("tui"), "selection changed", "values", v)
	if c.forward != nil {
		c.forward(v)
	}
}

// Model is a bubbletea model wrapping a Picker.
type Model struct {
	picker *picker.Picker
	clock  animation.Clock
	theme  Theme
	labels []string
	shown  []*animation.Transition
	log    *changeLog

	focus    int
	width    int
	dragging string
	ticking  bool
	done     bool
}

// New creates a model and its picker.
func New(opts Options) Model {
	log := &changeLog{forward: opts.Props.OnChange}
	props := opts.Props
	props.OnChange = log.record

	m := Model{
		picker: picker.New(props),
		clock:  opts.Clock,
		log:    log,
	}
	if m.clock == nil {
		m.clock = animation.DefaultClock()
	}
	if opts.Theme != nil {
		m.theme = *opts.Theme
	} else {
		m.theme = DefaultTheme()
	}
	m.labels = m.picker.Labels()
	for _, col := range m.picker.Layout().Columns {
		m.shown = append(m.shown, animation.NewTransition(col.Offset))
	}
	return m
}

// Picker returns the underlying picker.
func (m Model) Picker() *picker.Picker {
	return m.picker
}

// Result returns the current selection and whether the user confirmed it.
func (m Model) Result() (picker.Values, bool) {
	return m.picker.Values(), m.done
}

// Changes returns how many broadcasts the picker has sent.
func (m Model) Changes() int {
	return m.log.count
}

// Focus returns the index of the keyboard-focused column.
func (m Model) Focus() int {
	return m.focus
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		m.handleMouse(msg)
	case dispatchMsg:
		msg.fn()
	case frameMsg:
		m.ticking = false
	}
	return m, m.sync()
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return m, tea.Quit
	case "enter":
		m.picker.Flush()
		m.done = true
		return m, tea.Quit
	case "left", "h", "shift+tab":
		m.moveFocus(-1)
	case "right", "l", "tab":
		m.moveFocus(1)
	case "up", "k":
		m.step(1)
	case "down", "j":
		m.step(-1)
	}
	return m, m.sync()
}

func (m *Model) moveFocus(delta int) {
	if len(m.labels) == 0 {
		return
	}
	m.focus = (m.focus + delta + len(m.labels)) % len(m.labels)
}

// step moves the focused column by whole items as a short drag, which
// commits immediately. Positive items reveal earlier options.
func (m *Model) step(items int) {
	if len(m.labels) == 0 {
		return
	}
	label := m.labels[m.focus]
	ih := m.picker.Layout().ItemHeight
	m.picker.DragStart(label, 0)
	m.picker.DragMove(label, float64(items)*ih)
	m.picker.DragEnd(label)
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	if len(m.labels) == 0 {
		return
	}
	l := m.picker.Layout()
	y := float64(msg.Y-m.headerRows(l)) * l.ItemHeight

	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		m.picker.Wheel(m.columnAt(msg.X), -1)
	case msg.Button == tea.MouseButtonWheelDown:
		m.picker.Wheel(m.columnAt(msg.X), 1)
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		m.focus = m.columnIndexAt(msg.X)
		m.dragging = m.labels[m.focus]
		m.picker.DragStart(m.dragging, y)
	case msg.Action == tea.MouseActionMotion && m.dragging != "":
		m.picker.DragMove(m.dragging, y)
	case msg.Action == tea.MouseActionRelease && m.dragging != "":
		m.picker.DragMove(m.dragging, y)
		m.picker.DragEnd(m.dragging)
		m.dragging = ""
	}
}

func (m Model) columnAt(x int) string {
	return m.labels[m.columnIndexAt(x)]
}

func (m Model) columnIndexAt(x int) int {
	i := x / m.columnWidth()
	return max(0, min(i, len(m.labels)-1))
}

func (m Model) columnWidth() int {
	if len(m.labels) == 0 {
		return minColumnWidth
	}
	if m.width > 0 {
		return max(m.width/len(m.labels), 1)
	}
	return minColumnWidth
}

func (m Model) headerRows(l picker.Layout) int {
	if l.ShowLabels {
		return 1
	}
	return 0
}

// sync points each displayed offset at its controller offset and keeps
// frames coming while any column is still easing.
func (m *Model) sync() tea.Cmd {
	now := m.clock.Now()
	animating := false
	for i, col := range m.picker.Layout().Columns {
		t := m.shown[i]
		if col.Phase == picker.PhaseDragging {
			t.Jump(col.Offset)
		} else {
			t.Retarget(col.Offset, now)
		}
		animating = animating || t.IsAnimating(now)
	}
	if !animating || m.ticking {
		return nil
	}
	m.ticking = true
	return tea.Tick(FrameInterval, func(t time.Time) tea.Msg { return frameMsg(t) })
}

// View implements tea.Model.
func (m Model) View() string {
	l := m.picker.Layout()
	if len(l.Columns) == 0 {
		return m.theme.Help.Render("no columns") + "\n"
	}
	now := m.clock.Now()
	width := m.columnWidth()
	middle := int(l.MiddlePosition / l.ItemHeight)

	blocks := make([]string, len(l.Columns))
	for i, col := range l.Columns {
		var lines []string
		if l.ShowLabels {
			style := m.theme.Header
			if i == m.focus {
				style = m.theme.FocusedHeader
			}
			lines = append(lines, style.Render(col.Label))
		}
		translate := l.MiddlePosition + m.shown[i].Value(now)
		for row := range l.VisibleItems {
			lines = append(lines, m.renderCell(col, rowIndex(row, translate, l.ItemHeight), row, middle))
		}
		blocks[i] = lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(strings.Join(lines, "\n"))
	}

	var b strings.Builder
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, blocks...))
	b.WriteString("\n")
	b.WriteString(m.theme.Footer.Render(FormatValues(m.labels, m.picker.Values())))
	b.WriteString("\n")
	b.WriteString(m.theme.Help.Render("↑/↓ select · ←/→ column · wheel/drag scroll · enter done · q quit"))
	b.WriteString("\n")
	return b.String()
}

func (m Model) renderCell(col picker.ColumnLayout, idx, row, middle int) string {
	text := ""
	if idx >= 0 && idx < len(col.Options) {
		text = col.Options[idx].Label
	}
	style := m.theme.Item
	switch {
	case idx == col.SelectedIndex && text != "":
		style = m.theme.Selected
	case abs(row-middle) >= 2:
		style = m.theme.Faded
	}
	if row == middle {
		style = style.Inherit(m.theme.Band)
	}
	return style.Render(text)
}

// rowIndex returns the option drawn on a terminal row when each row is one
// item tall.
func rowIndex(row int, translate, itemHeight float64) int {
	return int(math.Round((float64(row)*itemHeight - translate) / itemHeight))
}

// FormatValues renders values in column order as "Label: value" pairs.
func FormatValues(labels []string, values picker.Values) string {
	parts := make([]string, 0, len(labels))
	for _, label := range labels {
		v, ok := values[label]
		if !ok {
			continue
		}
		parts = append(parts, label+": "+fmt.Sprint(v))
	}
	return strings.Join(parts, "  ")
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
