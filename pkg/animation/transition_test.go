package animation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTransition_RestsAtInitialValue(t *testing.T) {
	tr := NewTransition(-72)
	now := time.Now()

	assert.Equal(t, -72.0, tr.Value(now))
	assert.False(t, tr.IsAnimating(now))
}

func TestTransition_EasesTowardTarget(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	tr := NewTransition(0)
	tr.Retarget(-100, start)

	mid := tr.Value(start.Add(SnapDuration / 2))
	assert.Less(t, mid, 0.0)
	assert.Greater(t, mid, -100.0)
	// ease-out covers more than half the distance by the midpoint
	assert.Less(t, mid, -50.0)
	assert.True(t, tr.IsAnimating(start.Add(SnapDuration/2)))

	assert.Equal(t, -100.0, tr.Value(start.Add(SnapDuration)))
	assert.False(t, tr.IsAnimating(start.Add(SnapDuration)))
}

func TestTransition_RetargetMidwayStartsFromDisplayedValue(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	tr := &Transition{Duration: 100 * time.Millisecond, Curve: LinearCurve}
	tr.Jump(0)
	tr.Retarget(-100, start)

	at := start.Add(50 * time.Millisecond)
	assert.InDelta(t, -50.0, tr.Value(at), 1e-9)

	tr.Retarget(0, at)
	assert.InDelta(t, -50.0, tr.Value(at), 1e-9)
	assert.InDelta(t, -25.0, tr.Value(at.Add(50*time.Millisecond)), 1e-9)
	assert.Equal(t, 0.0, tr.Value(at.Add(100*time.Millisecond)))
}

func TestTransition_SameTargetDoesNotRestart(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	tr := &Transition{Duration: 100 * time.Millisecond, Curve: LinearCurve}
	tr.Retarget(-40, start)
	tr.Retarget(-40, start.Add(90*time.Millisecond))

	assert.Equal(t, -40.0, tr.Value(start.Add(100*time.Millisecond)))
}

func TestTransition_JumpCancels(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	tr := NewTransition(0)
	tr.Retarget(-36, start)
	tr.Jump(-72)

	assert.Equal(t, -72.0, tr.Value(start.Add(time.Millisecond)))
	assert.Equal(t, -72.0, tr.Target())
}
