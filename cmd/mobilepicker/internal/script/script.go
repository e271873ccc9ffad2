// Package script replays recorded gestures against a picker on a virtual
// clock.
//
// A script is YAML:
//
//	steps:
//	  - drag: {column: Month, from: 400, to: [380, 320]}
//	  - wheel: {column: Year, deltaY: 1, count: 3, interval: 20ms}
//	  - wait: 150ms
//
// A drag presses at from, moves through each to, and releases. Wheel sends
// count events spaced by interval. Wait advances the clock.
package script

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/picker/cmd/mobilepicker/internal/suggest"
	"github.com/go-drift/picker/pkg/picker"
	pickertest "github.com/go-drift/picker/pkg/testing"
)

// Script is an ordered list of gesture steps.
type Script struct {
	Steps []Step `yaml:"steps"`
}

// Step holds exactly one of Drag, Wheel or Wait.
type Step struct {
	Drag  *Drag         `yaml:"drag,omitempty"`
	Wheel *Wheel        `yaml:"wheel,omitempty"`
	Wait  time.Duration `yaml:"wait,omitempty"`
}

// Drag is a press, a series of moves, and a release.
type Drag struct {
	Column string    `yaml:"column"`
	From   float64   `yaml:"from"`
	To     []float64 `yaml:"to"`
}

// Wheel is a burst of wheel events.
type Wheel struct {
	Column   string        `yaml:"column"`
	DeltaY   float64       `yaml:"deltaY"`
	Count    int           `yaml:"count,omitempty"`
	Interval time.Duration `yaml:"interval,omitempty"`
}

// Load reads a script file.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes and validates a script.
func Parse(data []byte) (*Script, error) {
	var s Script
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	for i, step := range s.Steps {
		if err := step.validate(); err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return &s, nil
}

func (s Step) validate() error {
	kinds := 0
	if s.Drag != nil {
		kinds++
	}
	if s.Wheel != nil {
		kinds++
		if s.Wheel.Count < 0 {
			return errors.New("wheel count must not be negative")
		}
	}
	if s.Wait != 0 {
		kinds++
		if s.Wait < 0 {
			return errors.New("wait must not be negative")
		}
	}
	if kinds != 1 {
		return errors.New("exactly one of drag, wheel or wait is required")
	}
	return nil
}

// Event is one broadcast observed during a replay.
type Event struct {
	// At is the virtual time since the replay started.
	At     time.Duration `json:"at"`
	Values picker.Values `json:"values"`
}

// Result is the outcome of a replay.
type Result struct {
	Events []Event
	// Final is the selection after every pending settle has fired.
	Final picker.Values
	// Layout is the picker's presentation state at the end.
	Layout picker.Layout
}

// Replay runs the script against a fresh picker built from props. Steps
// that name an unknown column fail the replay.
func Replay(props picker.Props, s *Script) (*Result, error) {
	var events []Event
	var tester *pickertest.PickerTester
	var start time.Time

	forward := props.OnChange
	props.OnChange = func(v picker.Values) {
		events = append(events, Event{At: tester.Clock().Now().Sub(start), Values: v})
		if forward != nil {
			forward(v)
		}
	}
	tester = pickertest.NewPickerTesterOn(pickertest.NewFakeClock(), props)
	defer tester.Cleanup()
	start = tester.Clock().Now()

	labels := tester.Picker().Labels()
	for i, step := range s.Steps {
		if err := run(tester, step, labels); err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	tester.Settle()

	return &Result{
		Events: events,
		Final:  tester.Picker().Values(),
		Layout: tester.Picker().Layout(),
	}, nil
}

func run(t *pickertest.PickerTester, step Step, labels []string) error {
	switch {
	case step.Drag != nil:
		if err := t.Drag(step.Drag.Column, step.Drag.From, step.Drag.To...); err != nil {
			return withHint(err, step.Drag.Column, labels)
		}
	case step.Wheel != nil:
		count := max(step.Wheel.Count, 1)
		if err := t.WheelTicks(step.Wheel.Column, step.Wheel.DeltaY, count, step.Wheel.Interval); err != nil {
			return withHint(err, step.Wheel.Column, labels)
		}
	default:
		t.Pump(step.Wait)
	}
	return nil
}

func withHint(err error, column string, labels []string) error {
	if hint := suggest.Hint(column, labels); hint != "" {
		return fmt.Errorf("%w%s", err, hint)
	}
	return err
}
