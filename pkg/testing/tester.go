package testing

import (
	"testing"
	"time"

	"github.com/go-drift/picker/pkg/animation"
	"github.com/go-drift/picker/pkg/picker"
)

// PickerTester drives a Picker on a fake clock and records every broadcast.
type PickerTester struct {
	picker    *picker.Picker
	clock     *FakeClock
	prevClock animation.Clock
	changes   []picker.Values
	onChange  func(picker.Values)
}

// NewPickerTester creates a picker from props on a fresh FakeClock.
// props.OnChange still runs, after the tester records the broadcast.
// Call Cleanup() when done, or use NewPickerTesterWithT() instead.
func NewPickerTester(props picker.Props) *PickerTester {
	clk := NewFakeClock()
	prev := animation.SetClock(clk)
	t := NewPickerTesterOn(clk, props)
	t.prevClock = prev
	return t
}

// NewPickerTesterOn creates a picker from props that settles on clk only.
// Unlike NewPickerTester it leaves the package animation clock alone, so
// it is safe outside tests.
func NewPickerTesterOn(clk *FakeClock, props picker.Props) *PickerTester {
	t := &PickerTester{clock: clk, onChange: props.OnChange}
	props.Clock = clk
	props.OnChange = t.record
	t.picker = picker.New(props)
	return t
}

// NewPickerTesterWithT creates a tester that auto-cleans up via t.Cleanup().
// This is the recommended constructor for tests.
func NewPickerTesterWithT(t *testing.T, props picker.Props) *PickerTester {
	tester := NewPickerTester(props)
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup disposes the picker and restores the animation clock.
func (t *PickerTester) Cleanup() {
	if t.picker != nil {
		t.picker.Dispose()
	}
	if t.prevClock != nil {
		animation.SetClock(t.prevClock)
		t.prevClock = nil
	}
}

// Picker returns the picker under test.
func (t *PickerTester) Picker() *picker.Picker {
	return t.picker
}

// Clock returns the fake clock driving settles.
func (t *PickerTester) Clock() *FakeClock {
	return t.clock
}

// Update applies new props, keeping the tester's clock and recorder.
func (t *PickerTester) Update(props picker.Props) {
	t.onChange = props.OnChange
	props.Clock = t.clock
	props.OnChange = t.record
	t.picker.Update(props)
}

// Changes returns every broadcast received so far, oldest first.
func (t *PickerTester) Changes() []picker.Values {
	return append([]picker.Values(nil), t.changes...)
}

// LastChange returns the most recent broadcast.
func (t *PickerTester) LastChange() (picker.Values, bool) {
	if len(t.changes) == 0 {
		return nil, false
	}
	return t.changes[len(t.changes)-1], true
}

// Pump advances the fake clock by d, firing due settles.
func (t *PickerTester) Pump(d time.Duration) {
	t.clock.Advance(d)
}

// Settle advances the clock far enough for any pending wheel settle to fire.
func (t *PickerTester) Settle() {
	t.clock.Advance(picker.SettleDelay)
}

func (t *PickerTester) record(v picker.Values) {
	t.changes = append(t.changes, v)
	if t.onChange != nil {
		t.onChange(v)
	}
}
