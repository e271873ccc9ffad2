// Package presets provides ready-made column sets for common pickers.
package presets

import (
	"fmt"
	"slices"
	"strconv"
	"time"

	"github.com/go-drift/picker/pkg/picker"
)

// Format renders an option value as its label.
type Format func(v int) string

// Plain formats v in decimal.
func Plain(v int) string {
	return strconv.Itoa(v)
}

// ZeroPad returns a Format that left-pads with zeros to width digits.
func ZeroPad(width int) Format {
	return func(v int) string {
		return fmt.Sprintf("%0*d", width, v)
	}
}

// Range returns a column whose options are the integers from..to inclusive,
// valued as int. A nil format means Plain. An empty column is returned when
// to < from.
func Range(label string, from, to int, format Format) picker.Column {
	if format == nil {
		format = Plain
	}
	col := picker.Column{Label: label}
	if to < from {
		return col
	}
	col.Options = make([]picker.Option, 0, to-from+1)
	for v := from; v <= to; v++ {
		col.Options = append(col.Options, picker.Option{Label: format(v), Value: v})
	}
	return col
}

// Date returns Year, Month and Day columns. Years start at fromYear and span
// count years. Day always offers 1 to 31; the picker does not cross-validate
// columns.
func Date(fromYear, count int) []picker.Column {
	return []picker.Column{
		Range("Year", fromYear, fromYear+count-1, nil),
		Range("Month", 1, 12, nil),
		Range("Day", 1, 31, nil),
	}
}

// Time returns 24-hour Hour and Minute columns with two-digit labels.
func Time() []picker.Column {
	return []picker.Column{
		Range("Hour", 0, 23, ZeroPad(2)),
		Range("Minute", 0, 59, ZeroPad(2)),
	}
}

// Number returns a single "Number" column from..to.
func Number(from, to int) []picker.Column {
	return []picker.Column{Range("Number", from, to, nil)}
}

// Month returns a single "Month" column labelled with English month names
// and valued 1 to 12.
func Month() []picker.Column {
	col := picker.Column{Label: "Month", Options: make([]picker.Option, 0, 12)}
	for m := time.January; m <= time.December; m++ {
		col.Options = append(col.Options, picker.Option{Label: m.String(), Value: int(m)})
	}
	return []picker.Column{col}
}

// Preset is a named picker configuration.
type Preset struct {
	Name          string
	Description   string
	Columns       []picker.Column
	InitialValues picker.Values
	Height        float64
	ItemHeight    float64
}

// Props returns picker props for the preset. The caller sets OnChange.
func (p Preset) Props() picker.Props {
	return picker.Props{
		Data:          p.Columns,
		InitialValues: p.InitialValues.Clone(),
		Height:        p.Height,
		ItemHeight:    p.ItemHeight,
	}
}

var registry = map[string]func() Preset{
	"date": func() Preset {
		return Preset{
			Name:          "date",
			Description:   "Year (2020-2029), month and day",
			Columns:       Date(2020, 10),
			InitialValues: picker.Values{"Year": 2023, "Month": 1, "Day": 1},
			Height:        250,
			ItemHeight:    40,
		}
	},
	"time": func() Preset {
		return Preset{
			Name:          "time",
			Description:   "24-hour hour and minute",
			Columns:       Time(),
			InitialValues: picker.Values{"Hour": 12, "Minute": 30},
			Height:        200,
			ItemHeight:    40,
		}
	},
	"number": func() Preset {
		return Preset{
			Name:          "number",
			Description:   "Numbers 1 to 10",
			Columns:       Number(1, 10),
			InitialValues: picker.Values{"Number": 1},
			Height:        250,
			ItemHeight:    40,
		}
	},
	"month": func() Preset {
		return Preset{
			Name:          "month",
			Description:   "Month names valued 1 to 12",
			Columns:       Month(),
			InitialValues: picker.Values{"Month": 1},
			Height:        250,
			ItemHeight:    40,
		}
	},
}

// Lookup returns a fresh copy of the named preset.
func Lookup(name string) (Preset, bool) {
	build, ok := registry[name]
	if !ok {
		return Preset{}, false
	}
	return build(), true
}

// Names returns the preset names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
