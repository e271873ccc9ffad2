package testing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/picker/pkg/animation"
	"github.com/go-drift/picker/pkg/picker"
)

func digits(label string, n int) picker.Column {
	col := picker.Column{Label: label}
	for i := range n {
		col.Options = append(col.Options, picker.Option{Label: string(rune('0' + i)), Value: i})
	}
	return col
}

func TestPickerTester_InstallsFakeClock(t *testing.T) {
	tester := NewPickerTesterWithT(t, picker.Props{Data: []picker.Column{digits("D", 5)}})

	assert.Same(t, tester.Clock(), animation.DefaultClock())
}

func TestPickerTester_CleanupRestoresClock(t *testing.T) {
	before := animation.DefaultClock()
	tester := NewPickerTester(picker.Props{Data: []picker.Column{digits("D", 5)}})
	tester.Cleanup()

	assert.Equal(t, before, animation.DefaultClock())
}

func TestNewPickerTesterOn_LeavesPackageClock(t *testing.T) {
	before := animation.DefaultClock()
	clk := NewFakeClock()
	tester := NewPickerTesterOn(clk, picker.Props{Data: []picker.Column{digits("D", 5)}, ItemHeight: 10})
	t.Cleanup(tester.Cleanup)

	assert.Equal(t, before, animation.DefaultClock())

	tester.Picker().Wheel("D", 1)
	assert.Equal(t, 1, clk.PendingTimers(), "settles schedule on the given clock")
	clk.Advance(picker.SettleDelay)
	require.Len(t, tester.Changes(), 1)
	assert.Equal(t, picker.Values{"D": 0}, tester.Changes()[0])
}

func TestPickerTester_RecordsAndForwards(t *testing.T) {
	var forwarded []picker.Values
	tester := NewPickerTesterWithT(t, picker.Props{
		Data:       []picker.Column{digits("D", 5)},
		ItemHeight: 10,
		OnChange:   func(v picker.Values) { forwarded = append(forwarded, v) },
	})

	require.NoError(t, tester.DragBy("D", -20))

	last, ok := tester.LastChange()
	require.True(t, ok)
	assert.Equal(t, picker.Values{"D": 2}, last)
	assert.Equal(t, tester.Changes(), forwarded)
}

func TestPickerTester_UnknownColumn(t *testing.T) {
	tester := NewPickerTesterWithT(t, picker.Props{Data: []picker.Column{digits("D", 5)}})

	assert.EqualError(t, tester.DragBy("Nope", 10), `Drag: no column labelled "Nope"`)
	assert.Error(t, tester.Wheel("Nope", 1))
}

func TestPickerTester_WheelTicksThenSettle(t *testing.T) {
	tester := NewPickerTesterWithT(t, picker.Props{Data: []picker.Column{digits("D", 5)}, ItemHeight: 30})

	require.NoError(t, tester.WheelTicks("D", 1, 3, 20*time.Millisecond))
	assert.Empty(t, tester.Changes())

	tester.Settle()
	require.Len(t, tester.Changes(), 1)
	assert.Equal(t, picker.Values{"D": 1}, tester.Changes()[0])
}
