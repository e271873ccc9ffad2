package animation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/picker/pkg/platform"
)

type stubClock struct{ now time.Time }

func (c stubClock) Now() time.Time { return c.now }

func (c stubClock) AfterFunc(time.Duration, func()) Timer { return nil }

func TestSetClock_RestoresPrevious(t *testing.T) {
	fixed := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	prev := SetClock(stubClock{now: fixed})
	assert.Equal(t, fixed, Now())

	SetClock(prev)
	assert.NotEqual(t, fixed, Now())
}

func TestSetClock_NilRestoresSystemClock(t *testing.T) {
	prev := SetClock(stubClock{})
	defer SetClock(prev)

	SetClock(nil)
	assert.IsType(t, realClock{}, DefaultClock())
}

func TestRealClock_AfterFuncRoutesThroughDispatch(t *testing.T) {
	dispatched := make(chan func(), 1)
	platform.RegisterDispatch(func(cb func()) { dispatched <- cb })
	defer platform.RegisterDispatch(nil)

	fired := false
	realClock{}.AfterFunc(time.Millisecond, func() { fired = true })

	select {
	case cb := <-dispatched:
		assert.False(t, fired, "callback must not run before the UI thread picks it up")
		cb()
		assert.True(t, fired)
	case <-time.After(time.Second):
		require.Fail(t, "callback was never dispatched")
	}
}

func TestRealClock_StopPreventsCallback(t *testing.T) {
	fired := make(chan struct{}, 1)
	timer := realClock{}.AfterFunc(50*time.Millisecond, func() { fired <- struct{}{} })

	assert.True(t, timer.Stop())
	select {
	case <-fired:
		t.Fatal("stopped timer fired")
	case <-time.After(100 * time.Millisecond):
	}
}
