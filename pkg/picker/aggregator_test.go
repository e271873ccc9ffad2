package picker_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-drift/picker/pkg/picker"
)

func TestAggregator_SeedDoesNotBroadcast(t *testing.T) {
	calls := 0
	agg := picker.NewAggregator(func(picker.Values) { calls++ })

	agg.Seed("Year", 2021)
	agg.Seed("Month", 3)

	assert.Equal(t, 0, calls)
	assert.Equal(t, picker.Values{"Year": 2021, "Month": 3}, agg.Values())
}

func TestAggregator_CommitBroadcastsFullMap(t *testing.T) {
	var got []picker.Values
	agg := picker.NewAggregator(func(v picker.Values) { got = append(got, v) })
	agg.Seed("Year", 2021)
	agg.Seed("Month", 3)

	agg.Commit("Month", 5)
	agg.Commit("Year", 2024)

	assert.Equal(t, []picker.Values{
		{"Year": 2021, "Month": 5},
		{"Year": 2024, "Month": 5},
	}, got)
}

func TestAggregator_SnapshotsAreIndependent(t *testing.T) {
	var got picker.Values
	agg := &picker.Aggregator{OnChange: func(v picker.Values) { got = v }}

	snapshot := agg.Commit("Hour", 12)
	got["Hour"] = 99
	snapshot["Hour"] = 98

	assert.Equal(t, picker.Values{"Hour": 12}, agg.Values())
	assert.Equal(t, 1, agg.Len())
}
