package testing

import (
	"fmt"
	"slices"
	"time"
)

// Drag simulates a complete drag on a column: press at startY, move through
// each position in moves, release.
func (t *PickerTester) Drag(label string, startY float64, moves ...float64) error {
	if err := t.checkColumn("Drag", label); err != nil {
		return err
	}
	p := t.picker
	p.DragStart(label, startY)
	for _, y := range moves {
		p.DragMove(label, y)
	}
	p.DragEnd(label)
	return nil
}

// DragBy drags a column by dy pixels in a single move. Negative dy scrolls
// toward later options.
func (t *PickerTester) DragBy(label string, dy float64) error {
	const startY = 400
	return t.Drag(label, startY, startY+dy)
}

// Wheel sends one wheel event with deltaY to a column. It does not advance
// the clock.
func (t *PickerTester) Wheel(label string, deltaY float64) error {
	if err := t.checkColumn("Wheel", label); err != nil {
		return err
	}
	t.picker.Wheel(label, deltaY)
	return nil
}

// WheelTicks sends count wheel events with deltaY, advancing the clock by
// interval after each one except the last.
func (t *PickerTester) WheelTicks(label string, deltaY float64, count int, interval time.Duration) error {
	for i := range count {
		if err := t.Wheel(label, deltaY); err != nil {
			return err
		}
		if i < count-1 {
			t.Pump(interval)
		}
	}
	return nil
}

func (t *PickerTester) checkColumn(op, label string) error {
	if !slices.Contains(t.picker.Labels(), label) {
		return fmt.Errorf("%s: no column labelled %q", op, label)
	}
	return nil
}
