package picker

import (
	"maps"
	"reflect"
)

// Option is a selectable entry in a column.
type Option struct {
	// Label is the text shown for the option.
	Label string `yaml:"label" json:"label"`
	// Value is reported through OnChange when the option is committed.
	// Values are matched by exact type and value, so 3 and int64(3) differ.
	Value any `yaml:"value" json:"value"`
}

// Column is an ordered list of options identified by a unique label.
type Column struct {
	Label   string   `yaml:"label" json:"label"`
	Options []Option `yaml:"options" json:"options"`
}

// Len returns the number of options.
func (c Column) Len() int {
	return len(c.Options)
}

// IndexOf returns the index of the first option whose value equals value,
// or -1 when there is none.
func (c Column) IndexOf(value any) int {
	for i, opt := range c.Options {
		if equalValues(opt.Value, value) {
			return i
		}
	}
	return -1
}

func (c Column) clone() Column {
	return Column{Label: c.Label, Options: append([]Option(nil), c.Options...)}
}

// hasUncomparable reports whether any option value cannot be matched.
func (c Column) hasUncomparable() bool {
	for _, opt := range c.Options {
		if opt.Value != nil && !reflect.TypeOf(opt.Value).Comparable() {
			return true
		}
	}
	return false
}

// Values maps column labels to selected option values.
type Values map[string]any

// Clone returns a shallow copy; nil stays nil.
func (v Values) Clone() Values {
	if v == nil {
		return nil
	}
	return maps.Clone(v)
}

func equalValues(a, b any) bool {
	if a == nil || b == nil {
		return false
	}
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) || !ta.Comparable() {
		return false
	}
	return a == b
}
