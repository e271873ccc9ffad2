package picker

import (
	"math"
	"time"

	"github.com/go-drift/picker/pkg/animation"
)

// SettleDelay is how long the wheel must be quiet before a column snaps and
// commits. Wheel ticks arriving inside the window are coalesced into a
// single commit.
const SettleDelay = 100 * time.Millisecond

// Phase is the interaction state of a column.
type Phase int

const (
	// PhaseIdle means the column rests on a snapped option.
	PhaseIdle Phase = iota
	// PhaseDragging means a drag gesture is in progress.
	PhaseDragging
	// PhasePendingSettle means wheel input moved the column and a settle is scheduled.
	PhasePendingSettle
)

func (p Phase) String() string {
	switch p {
	case PhaseDragging:
		return "dragging"
	case PhasePendingSettle:
		return "pending-settle"
	default:
		return "idle"
	}
}

// ControllerConfig configures a ColumnController.
type ControllerConfig struct {
	// ItemHeight is the height of one option in pixels. Must be positive.
	ItemHeight float64
	// Initial is the value to start on. When no option matches, the
	// controller starts on the first option.
	Initial any
	// Clock schedules settle callbacks. Nil means animation.DefaultClock().
	Clock animation.Clock
	// OnCommit is called with the snapped option on every commit.
	OnCommit func(index int, option Option)
}

// ColumnController owns the scroll state of a single column and turns drag
// and wheel input into commits.
//
// A controller is not safe for concurrent use; callers deliver input and
// settle callbacks on one thread (see [Picker], which serializes them).
type ColumnController struct {
	column     Column
	itemHeight float64
	clock      animation.Clock
	onCommit   func(int, Option)

	offset      float64
	lockedIndex int
	dragAnchor  float64
	dragging    bool

	settle     animation.Timer
	generation uint64
	disposed   bool
}

// NewColumnController creates a controller resting on the option matching
// cfg.Initial. Creating a controller never commits.
func NewColumnController(column Column, cfg ControllerConfig) *ColumnController {
	clock := cfg.Clock
	if clock == nil {
		clock = animation.DefaultClock()
	}
	c := &ColumnController{
		column:     column,
		itemHeight: cfg.ItemHeight,
		clock:      clock,
		onCommit:   cfg.OnCommit,
	}
	if c.inert() {
		return c
	}
	index := column.IndexOf(cfg.Initial)
	if index < 0 {
		index = 0
	}
	c.lockedIndex = index
	c.offset = offsetForIndex(index, c.itemHeight)
	return c
}

// Column returns the column this controller drives.
func (c *ColumnController) Column() Column {
	return c.column
}

// ItemHeight returns the option height in pixels.
func (c *ColumnController) ItemHeight() float64 {
	return c.itemHeight
}

// Offset returns the current scroll offset in pixels (zero or negative).
func (c *ColumnController) Offset() float64 {
	return c.offset
}

// LockedIndex returns the index of the last committed option.
func (c *ColumnController) LockedIndex() int {
	return c.lockedIndex
}

// Selected returns the last committed option. ok is false for an empty column.
func (c *ColumnController) Selected() (option Option, ok bool) {
	if c.column.Len() == 0 {
		return Option{}, false
	}
	return c.column.Options[c.lockedIndex], true
}

// Phase reports the current interaction state.
func (c *ColumnController) Phase() Phase {
	switch {
	case c.dragging:
		return PhaseDragging
	case c.settle != nil:
		return PhasePendingSettle
	default:
		return PhaseIdle
	}
}

// DragStart begins a drag at pointer position y. Any pending settle is
// cancelled. Calling it again before DragEnd moves the anchor.
func (c *ColumnController) DragStart(y float64) {
	if c.inert() || !finite(y) {
		return
	}
	c.cancelSettle()
	c.dragAnchor = y
	c.dragging = true
}

// DragMove moves the column by the pointer travel since the previous
// position. It never commits.
func (c *ColumnController) DragMove(y float64) {
	if c.inert() || !c.dragging || !finite(y) {
		return
	}
	c.offset = c.clamp(c.offset + (y - c.dragAnchor))
	c.dragAnchor = y
}

// DragEnd snaps to the nearest option and commits it.
func (c *ColumnController) DragEnd() {
	if c.inert() || !c.dragging {
		return
	}
	c.dragging = false
	c.snapAndCommit()
}

// Wheel moves the column a third of an item against the sign of deltaY and
// (re)schedules a settle SettleDelay after this call. Wheel input during a
// drag is ignored.
//
// A zero deltaY is ignored as well, unlike a plain sign test that would
// treat it as upward: horizontal-only wheel events carry deltaY == 0 and
// must not move the column.
func (c *ColumnController) Wheel(deltaY float64) {
	if c.inert() || c.dragging || deltaY == 0 || math.IsNaN(deltaY) {
		return
	}
	step := c.itemHeight / 3
	if deltaY > 0 {
		step = -step
	}
	c.offset = c.clamp(c.offset + step)
	c.scheduleSettle()
}

// Flush runs a pending settle now: the column snaps and commits as if
// SettleDelay had elapsed. It reports whether a settle was pending.
func (c *ColumnController) Flush() bool {
	if c.inert() || c.settle == nil {
		return false
	}
	c.cancelSettle()
	c.snapAndCommit()
	return true
}

// Dispose cancels any pending settle. A disposed controller ignores input.
func (c *ColumnController) Dispose() {
	c.cancelSettle()
	c.dragging = false
	c.disposed = true
}

func (c *ColumnController) inert() bool {
	return c.disposed || c.column.Len() == 0 || !(c.itemHeight > 0)
}

func (c *ColumnController) scheduleSettle() {
	c.cancelSettle()
	gen := c.generation
	c.settle = c.clock.AfterFunc(SettleDelay, func() { c.fireSettle(gen) })
}

// cancelSettle stops the pending timer and invalidates any callback that
// already escaped it.
func (c *ColumnController) cancelSettle() {
	if c.settle != nil {
		c.settle.Stop()
		c.settle = nil
	}
	c.generation++
}

func (c *ColumnController) fireSettle(gen uint64) {
	if gen != c.generation || c.settle == nil || c.disposed {
		return
	}
	c.settle = nil
	c.snapAndCommit()
}

func (c *ColumnController) snapAndCommit() {
	index := c.nearestIndex()
	c.offset = offsetForIndex(index, c.itemHeight)
	c.lockedIndex = index
	if c.onCommit != nil {
		c.onCommit(index, c.column.Options[index])
	}
}

// nearestIndex re-clamps on every snap; wheel steps of itemHeight/3 do not
// divide every item height exactly.
func (c *ColumnController) nearestIndex() int {
	index := int(math.Round(math.Abs(c.offset) / c.itemHeight))
	return clampIndex(index, c.column.Len())
}

func (c *ColumnController) clamp(offset float64) float64 {
	lower := -float64(c.column.Len()-1) * c.itemHeight
	if offset < lower {
		offset = lower
	}
	if offset >= 0 {
		return 0
	}
	return offset
}

func clampIndex(index, n int) int {
	if index < 0 {
		return 0
	}
	if index > n-1 {
		return n - 1
	}
	return index
}

func offsetForIndex(index int, itemHeight float64) float64 {
	if index == 0 {
		return 0
	}
	return -float64(index) * itemHeight
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
