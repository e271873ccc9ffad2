package animation

import (
	"time"

	"github.com/go-drift/picker/pkg/platform"
)

// Clock provides time and deferred callbacks. The default implementation
// uses system time and delivers callbacks on the UI thread through
// [platform.Dispatch]. Tests can inject a fake clock via SetClock to
// control settle timing deterministically.
type Clock interface {
	Now() time.Time
	// AfterFunc schedules f to run once after d elapses. The returned
	// Timer cancels the callback if it has not fired yet.
	AfterFunc(d time.Duration, f func()) Timer
}

// Timer is a handle to a callback scheduled with [Clock.AfterFunc].
type Timer interface {
	// Stop prevents the callback from firing. It returns false if the
	// callback already fired or the timer was already stopped.
	Stop() bool
}

// realClock uses system time.
type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// AfterFunc fires f on the UI thread when a dispatcher is registered,
// otherwise on the timer goroutine.
func (realClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, func() { platform.DispatchOrRun(f) })
}

// clock is the package-level time source, replaceable for testing.
var clock Clock = realClock{}

// SetClock replaces the animation clock. Returns the previous clock
// so callers can restore it during cleanup. Passing nil restores the
// system clock.
func SetClock(c Clock) Clock {
	prev := clock
	if c == nil {
		c = realClock{}
	}
	clock = c
	return prev
}

// DefaultClock returns the active clock.
func DefaultClock() Clock { return clock }

// Now returns the current time from the active clock.
func Now() time.Time { return clock.Now() }
