package picker_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/picker/pkg/errors"
	"github.com/go-drift/picker/pkg/picker"
	pickertest "github.com/go-drift/picker/pkg/testing"
)

type errorRecorder struct {
	mu     sync.Mutex
	errs   []*errors.PickerError
	panics []*errors.PanicError
}

func (r *errorRecorder) HandleError(err *errors.PickerError) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errs = append(r.errs, err)
}

func (r *errorRecorder) HandlePanic(err *errors.PanicError) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.panics = append(r.panics, err)
}

func recordErrors(t *testing.T) *errorRecorder {
	t.Helper()
	rec := &errorRecorder{}
	prev := errors.SetHandler(rec)
	t.Cleanup(func() { errors.SetHandler(prev) })
	return rec
}

func dateProps() picker.Props {
	return picker.Props{
		Data:          []picker.Column{years(), months()},
		InitialValues: picker.Values{"Year": 2021, "Month": 3},
		Height:        250,
		ItemHeight:    40,
	}
}

func TestPicker_MountDoesNotNotify(t *testing.T) {
	tester := pickertest.NewPickerTesterWithT(t, picker.Props{
		Data:          []picker.Column{years()},
		InitialValues: picker.Values{"Year": 2022},
		ItemHeight:    36,
	})
	p := tester.Picker()

	assert.Equal(t, 2, p.SelectedIndex("Year"))
	assert.Equal(t, -72.0, p.Offset("Year"))
	assert.Equal(t, picker.Values{"Year": 2022}, p.Values())
	assert.Empty(t, tester.Changes())
}

func TestPicker_BroadcastIncludesUnchangedColumns(t *testing.T) {
	tester := pickertest.NewPickerTesterWithT(t, dateProps())

	// Month 3 sits at -80; two more items reaches Month 5.
	require.NoError(t, tester.DragBy("Month", -80))

	assert.Equal(t, []picker.Values{{"Year": 2021, "Month": 5}}, tester.Changes())
	assert.Equal(t, picker.Values{"Year": 2021, "Month": 5}, tester.Picker().Values())
}

func TestPicker_BroadcastReflectsLatestCommitOfEveryColumn(t *testing.T) {
	tester := pickertest.NewPickerTesterWithT(t, dateProps())

	require.NoError(t, tester.DragBy("Year", -40))
	require.NoError(t, tester.WheelTicks("Month", -1, 3, 10*time.Millisecond))
	tester.Settle()

	assert.Equal(t, []picker.Values{
		{"Year": 2022, "Month": 3},
		{"Year": 2022, "Month": 2},
	}, tester.Changes())
}

func TestPicker_ColumnsAreIndependent(t *testing.T) {
	tester := pickertest.NewPickerTesterWithT(t, dateProps())
	p := tester.Picker()

	require.NoError(t, tester.Wheel("Year", 1))
	require.NoError(t, tester.DragBy("Month", -40))

	yearState, ok := p.State("Year")
	require.True(t, ok)
	assert.Equal(t, picker.PhasePendingSettle, yearState.Phase)
	assert.Equal(t, []picker.Values{{"Year": 2021, "Month": 4}}, tester.Changes(),
		"year is still pending, so the month broadcast carries the committed year")

	tester.Settle()
	assert.Equal(t, picker.Values{"Year": 2021, "Month": 4}, tester.Changes()[1],
		"a third of an item rounds back to the same year")
}

func TestPicker_UnresolvedInitialValueUsesFirstOption(t *testing.T) {
	tester := pickertest.NewPickerTesterWithT(t, picker.Props{
		Data:          []picker.Column{years(), months()},
		InitialValues: picker.Values{"Year": 1999, "Extra": "ignored"},
	})

	assert.Equal(t, picker.Values{"Year": 2020, "Month": 1}, tester.Picker().Values())
	assert.Empty(t, tester.Changes())
}

func TestPicker_EmptyColumnNeverNotifies(t *testing.T) {
	tester := pickertest.NewPickerTesterWithT(t, picker.Props{
		Data: []picker.Column{{Label: "Empty"}, months()},
	})
	p := tester.Picker()

	require.NoError(t, tester.DragBy("Empty", -200))
	require.NoError(t, tester.WheelTicks("Empty", 1, 5, 10*time.Millisecond))
	tester.Pump(time.Second)

	assert.Empty(t, tester.Changes())
	assert.Equal(t, 0.0, p.Offset("Empty"))
	assert.Equal(t, -1, p.SelectedIndex("Empty"))
	assert.Equal(t, picker.Values{"Month": 1}, p.Values(), "empty columns have no selection entry")
}

func TestPicker_UnknownLabelIsNoOp(t *testing.T) {
	tester := pickertest.NewPickerTesterWithT(t, dateProps())
	p := tester.Picker()

	p.DragStart("Day", 0)
	p.DragMove("Day", -100)
	p.DragEnd("Day")
	p.Wheel("Day", 1)
	tester.Pump(time.Second)

	assert.Empty(t, tester.Changes())
	_, ok := p.State("Day")
	assert.False(t, ok)
	assert.Equal(t, -1, p.SelectedIndex("Day"))
}

func TestPicker_DragCancelsPendingWheelSettle(t *testing.T) {
	tester := pickertest.NewPickerTesterWithT(t, dateProps())
	p := tester.Picker()

	require.NoError(t, tester.WheelTicks("Month", 1, 2, 10*time.Millisecond))
	tester.Pump(50 * time.Millisecond)

	p.DragStart("Month", 100)
	tester.Pump(time.Second)
	assert.Empty(t, tester.Changes())

	p.DragMove("Month", 160)
	p.DragEnd("Month")
	tester.Pump(time.Second)

	// -80 - 80/3 + 60 rounds to index 1
	assert.Equal(t, []picker.Values{{"Year": 2021, "Month": 2}}, tester.Changes())
}

func TestPicker_UpdateWithSameDataKeepsScrollState(t *testing.T) {
	tester := pickertest.NewPickerTesterWithT(t, dateProps())
	p := tester.Picker()
	require.NoError(t, tester.DragBy("Month", -40))

	props := dateProps()
	props.Height = 300
	tester.Update(props)

	assert.Equal(t, 3, p.SelectedIndex("Month"))
	assert.Equal(t, 300.0, p.Layout().Height)
}

func TestPicker_UpdateWithNewInitialValuesReinitializes(t *testing.T) {
	tester := pickertest.NewPickerTesterWithT(t, dateProps())
	p := tester.Picker()
	require.NoError(t, tester.Wheel("Month", 1))

	props := dateProps()
	props.InitialValues = picker.Values{"Year": 2029, "Month": 12}
	tester.Update(props)
	tester.Pump(time.Second)

	assert.Equal(t, picker.Values{"Year": 2029, "Month": 12}, p.Values())
	assert.Equal(t, -440.0, p.Offset("Month"))
	assert.Empty(t, tester.Changes(), "re-initialization is silent and drops the stale settle")
}

func TestPicker_UpdateWithNewItemHeightReinitializes(t *testing.T) {
	tester := pickertest.NewPickerTesterWithT(t, dateProps())
	p := tester.Picker()

	props := dateProps()
	props.ItemHeight = 50
	tester.Update(props)

	assert.Equal(t, -100.0, p.Offset("Month"))
}

func TestPicker_OnChangeMayUpdatePicker(t *testing.T) {
	// Mirrors a host that feeds every broadcast back in as initial values.
	var p *picker.Picker
	props := dateProps()
	props.OnChange = func(v picker.Values) {
		next := dateProps()
		next.InitialValues = v
		next.OnChange = props.OnChange
		p.Update(next)
	}
	tester := pickertest.NewPickerTesterWithT(t, props)
	p = tester.Picker()

	require.NoError(t, tester.DragBy("Month", -40))

	assert.Equal(t, picker.Values{"Year": 2021, "Month": 4}, p.Values())
	assert.Equal(t, -120.0, p.Offset("Month"))
	assert.Len(t, tester.Changes(), 1)
}

func TestPicker_OnChangePanicIsRecovered(t *testing.T) {
	rec := recordErrors(t)
	props := dateProps()
	props.OnChange = func(picker.Values) { panic("consumer bug") }
	tester := pickertest.NewPickerTesterWithT(t, props)

	require.NoError(t, tester.DragBy("Month", -40))
	require.NoError(t, tester.DragBy("Month", -40))

	assert.Len(t, tester.Changes(), 2)
	require.Len(t, rec.panics, 2)
	assert.Equal(t, "picker.OnChange", rec.panics[0].Op)
}

func TestPicker_DuplicateLabelsAreReported(t *testing.T) {
	rec := recordErrors(t)
	dup := months()
	dup.Options = dup.Options[:3]
	tester := pickertest.NewPickerTesterWithT(t, picker.Props{
		Data:          []picker.Column{months(), dup},
		InitialValues: picker.Values{"Month": 6},
	})
	p := tester.Picker()

	require.Len(t, rec.errs, 1)
	assert.ErrorIs(t, rec.errs[0], errors.ErrDuplicateColumn)
	assert.Equal(t, "Month", rec.errs[0].Column)

	require.NoError(t, tester.DragBy("Month", -36))
	assert.Equal(t, []picker.Values{{"Month": 7}}, tester.Changes(), "input routes to the first column")

	layout := p.Layout()
	require.Len(t, layout.Columns, 2)
	assert.Equal(t, -1, layout.Columns[1].SelectedIndex)
}

func TestPicker_InvalidGeometryFallsBackToDefaults(t *testing.T) {
	rec := recordErrors(t)
	tester := pickertest.NewPickerTesterWithT(t, picker.Props{
		Data:       []picker.Column{months()},
		Height:     -10,
		ItemHeight: -1,
	})

	layout := tester.Picker().Layout()
	assert.Equal(t, float64(picker.DefaultHeight), layout.Height)
	assert.Equal(t, float64(picker.DefaultItemHeight), layout.ItemHeight)
	assert.Len(t, rec.errs, 2)
}

func TestPicker_UncomparableValuesAreReported(t *testing.T) {
	rec := recordErrors(t)
	col := picker.Column{Label: "Tags", Options: []picker.Option{
		{Label: "a", Value: []string{"a"}},
		{Label: "b", Value: []string{"b"}},
	}}
	tester := pickertest.NewPickerTesterWithT(t, picker.Props{
		Data:          []picker.Column{col},
		InitialValues: picker.Values{"Tags": []string{"b"}},
	})

	require.Len(t, rec.errs, 1)
	assert.ErrorIs(t, rec.errs[0], errors.ErrUncomparableOption)
	assert.Equal(t, 0, tester.Picker().SelectedIndex("Tags"))
}

func TestPicker_CallerMutationsDoNotLeakIn(t *testing.T) {
	props := dateProps()
	tester := pickertest.NewPickerTesterWithT(t, props)

	props.Data[1].Options[0].Value = 100
	props.InitialValues["Month"] = 1

	assert.Equal(t, picker.Values{"Year": 2021, "Month": 3}, tester.Picker().Values())
}

func TestPicker_DisposeDropsPendingSettles(t *testing.T) {
	tester := pickertest.NewPickerTesterWithT(t, dateProps())
	require.NoError(t, tester.Wheel("Year", 1))

	tester.Picker().Dispose()
	tester.Pump(time.Second)

	assert.Empty(t, tester.Changes())
	assert.Equal(t, 0, tester.Clock().PendingTimers())
}

func TestPicker_RealClockSettles(t *testing.T) {
	changes := make(chan picker.Values, 1)
	p := picker.New(picker.Props{
		Data:     []picker.Column{months()},
		OnChange: func(v picker.Values) { changes <- v },
	})
	defer p.Dispose()

	p.Wheel("Month", 1)
	p.Wheel("Month", 1)

	select {
	case v := <-changes:
		assert.Equal(t, picker.Values{"Month": 2}, v)
	case <-time.After(2 * time.Second):
		t.Fatal("settle never fired")
	}
}

func TestPicker_Labels(t *testing.T) {
	tester := pickertest.NewPickerTesterWithT(t, dateProps())
	assert.Equal(t, []string{"Year", "Month"}, tester.Picker().Labels())
}

func TestPicker_FlushCommitsPendingColumns(t *testing.T) {
	tester := pickertest.NewPickerTesterWithT(t, dateProps())
	p := tester.Picker()

	p.Wheel("Year", 1)
	p.Wheel("Year", 1)
	p.Wheel("Month", -1)
	p.Wheel("Month", -1)

	p.Flush()

	assert.Equal(t, picker.Values{"Year": 2022, "Month": 2}, p.Values())
	assert.Equal(t, []picker.Values{
		{"Year": 2022, "Month": 3},
		{"Year": 2022, "Month": 2},
	}, tester.Changes())
	assert.Equal(t, 0, tester.Clock().PendingTimers())

	p.Flush()
	assert.Len(t, tester.Changes(), 2, "a second flush has nothing to commit")
}
