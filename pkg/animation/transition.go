package animation

import "time"

// SnapDuration is the length of the transform transition applied when a
// column moves to a new offset.
const SnapDuration = 300 * time.Millisecond

// Transition eases a displayed value toward a target over Duration.
// It holds no timers; callers sample it with Value on each frame.
type Transition struct {
	// Duration of a full move. Zero means SnapDuration.
	Duration time.Duration
	// Curve shapes progress. Nil means EaseOut.
	Curve func(float64) float64

	from   float64
	to     float64
	start  time.Time
	active bool
}

// NewTransition returns a transition resting at value.
func NewTransition(value float64) *Transition {
	return &Transition{from: value, to: value}
}

// Target returns the value the transition is heading to.
func (t *Transition) Target() float64 {
	return t.to
}

// Jump moves to value immediately, cancelling any running move.
func (t *Transition) Jump(value float64) {
	t.from = value
	t.to = value
	t.active = false
}

// Retarget starts a move from the current displayed value to target.
// Retargeting to the current target is a no-op so repeated calls with an
// unchanged offset do not restart the curve.
func (t *Transition) Retarget(target float64, now time.Time) {
	if target == t.to {
		return
	}
	t.from = t.Value(now)
	t.to = target
	t.start = now
	t.active = true
}

// Value returns the displayed value at now.
func (t *Transition) Value(now time.Time) float64 {
	if !t.active {
		return t.to
	}
	progress := float64(now.Sub(t.start)) / float64(t.duration())
	if progress >= 1 {
		t.from = t.to
		t.active = false
		return t.to
	}
	if progress < 0 {
		progress = 0
	}
	curve := t.Curve
	if curve == nil {
		curve = EaseOut
	}
	return t.from + (t.to-t.from)*curve(progress)
}

// IsAnimating reports whether the displayed value still differs from the
// target at now.
func (t *Transition) IsAnimating(now time.Time) bool {
	t.Value(now)
	return t.active
}

func (t *Transition) duration() time.Duration {
	if t.Duration <= 0 {
		return SnapDuration
	}
	return t.Duration
}
