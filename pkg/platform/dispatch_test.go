package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDispatch_NoDispatcher(t *testing.T) {
	prev := RegisterDispatch(nil)
	defer RegisterDispatch(prev)

	ran := false
	assert.False(t, Dispatch(func() { ran = true }))
	assert.False(t, ran)
}

func TestDispatch_QueuesOnRegisteredDispatcher(t *testing.T) {
	var queue []func()
	prev := RegisterDispatch(func(cb func()) { queue = append(queue, cb) })
	defer RegisterDispatch(prev)

	ran := 0
	assert.True(t, Dispatch(func() { ran++ }))
	assert.False(t, Dispatch(nil))
	assert.Len(t, queue, 1)
	assert.Equal(t, 0, ran)

	queue[0]()
	assert.Equal(t, 1, ran)
}

func TestDispatchOrRun(t *testing.T) {
	prev := RegisterDispatch(nil)
	defer RegisterDispatch(prev)

	ran := false
	DispatchOrRun(func() { ran = true })
	assert.True(t, ran)

	var queue []func()
	RegisterDispatch(func(cb func()) { queue = append(queue, cb) })
	ran = false
	DispatchOrRun(func() { ran = true })
	assert.False(t, ran)
	assert.Len(t, queue, 1)
}
