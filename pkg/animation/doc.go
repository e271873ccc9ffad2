// Package animation provides the timing primitives used by pickers and
// their presenters.
//
// # Clock
//
// [Clock] is the time source and deferred-callback scheduler. Column
// controllers schedule their settle callbacks through it, so replacing it
// with a fake clock (see the testing package) makes wheel coalescing fully
// deterministic:
//
//	prev := animation.SetClock(fake)
//	defer animation.SetClock(prev)
//
// # Transitions
//
// Controllers jump straight to their snapped offset. Presenters that want
// the column to glide there use a [Transition]:
//
//	tr := animation.NewTransition(col.Offset)
//	tr.Retarget(col.Offset, animation.Now())
//	y := tr.Value(animation.Now())
package animation
