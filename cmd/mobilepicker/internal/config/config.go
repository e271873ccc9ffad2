// Package config loads picker definition files.
//
// A definition is YAML:
//
//	preset: time          # optional starting point
//	height: 200
//	itemHeight: 40
//	showLabels: true
//	columns:
//	  - label: Size
//	    options:
//	      - {label: S, value: s}
//	      - {label: M, value: m}
//	  - label: Count
//	    range: {from: 1, to: 10, pad: 2}
//	initialValues:
//	  Size: m
//
// Columns listed in the file are appended after the preset's columns.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/picker/cmd/mobilepicker/internal/suggest"
	"github.com/go-drift/picker/pkg/logging"
	"github.com/go-drift/picker/pkg/picker"
	"github.com/go-drift/picker/pkg/presets"
)

// Definition is the on-disk form of a picker.
type Definition struct {
	Preset        string         `yaml:"preset,omitempty"`
	Height        float64        `yaml:"height,omitempty"`
	ItemHeight    float64        `yaml:"itemHeight,omitempty"`
	ShowLabels    *bool          `yaml:"showLabels,omitempty"`
	Columns       []ColumnDef    `yaml:"columns,omitempty"`
	InitialValues map[string]any `yaml:"initialValues,omitempty"`
}

// ColumnDef describes one column by explicit options or an integer range.
type ColumnDef struct {
	Label   string          `yaml:"label"`
	Options []picker.Option `yaml:"options,omitempty"`
	Range   *RangeDef       `yaml:"range,omitempty"`
}

// RangeDef generates integer options From..To inclusive. Pad zero-pads
// labels to that many digits.
type RangeDef struct {
	From int `yaml:"from"`
	To   int `yaml:"to"`
	Pad  int `yaml:"pad,omitempty"`
}

// Load reads a definition file.
func Load(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	def, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return def, nil
}

// LoadOptional reads a definition file if path is non-empty and exists.
func LoadOptional(path string) (*Definition, error) {
	if path == "" {
		return &Definition{}, nil
	}
	def, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return &Definition{}, nil
	}
	return def, err
}

// Parse decodes a definition from YAML.
func Parse(data []byte) (*Definition, error) {
	var def Definition
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&def); err != nil {
		if errors.Is(err, io.EOF) {
			return &def, nil
		}
		return nil, err
	}
	return &def, nil
}

// Resolve expands the preset and ranges into picker props.
func (d *Definition) Resolve() (picker.Props, error) {
	var props picker.Props
	if d.Preset != "" {
		p, ok := presets.Lookup(d.Preset)
		if !ok {
			return props, fmt.Errorf("unknown preset %q%s", d.Preset, suggest.Hint(d.Preset, presets.Names()))
		}
		props = p.Props()
	}
	if props.InitialValues == nil {
		props.InitialValues = picker.Values{}
	}

	for i, col := range d.Columns {
		resolved, err := col.resolve()
		if err != nil {
			return picker.Props{}, fmt.Errorf("column %d: %w", i+1, err)
		}
		props.Data = append(props.Data, resolved)
	}

	labels := make([]string, len(props.Data))
	for i, col := range props.Data {
		labels[i] = col.Label
	}
	for label, v := range d.InitialValues {
		if !slices.Contains(labels, label) {
			slog.WarnContext(logging.PackageCtx("config"), "initial value for unknown column"+suggest.Hint(label, labels), "column", label)
		}
		props.InitialValues[label] = v
	}

	if d.Height != 0 {
		props.Height = d.Height
	}
	if d.ItemHeight != 0 {
		props.ItemHeight = d.ItemHeight
	}
	if d.ShowLabels != nil {
		show := *d.ShowLabels
		props.ShowLabels = &show
	}
	return props, nil
}

func (c ColumnDef) resolve() (picker.Column, error) {
	if strings.TrimSpace(c.Label) == "" {
		return picker.Column{}, errors.New("label is required")
	}
	if c.Range != nil && len(c.Options) > 0 {
		return picker.Column{}, fmt.Errorf("%s: options and range are mutually exclusive", c.Label)
	}
	if c.Range == nil {
		return picker.Column{Label: c.Label, Options: c.Options}, nil
	}
	if c.Range.To < c.Range.From {
		return picker.Column{}, fmt.Errorf("%s: range to (%d) is below from (%d)", c.Label, c.Range.To, c.Range.From)
	}
	format := presets.Plain
	if c.Range.Pad > 0 {
		format = presets.ZeroPad(c.Range.Pad)
	}
	return presets.Range(c.Label, c.Range.From, c.Range.To, format), nil
}

// Marshal encodes a definition as YAML.
func Marshal(d *Definition) ([]byte, error) {
	return yaml.Marshal(d)
}

// FromPreset returns a definition equivalent to the named preset, with
// every column spelled out.
func FromPreset(name string) (*Definition, error) {
	p, ok := presets.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("unknown preset %q%s", name, suggest.Hint(name, presets.Names()))
	}
	def := &Definition{
		Height:        p.Height,
		ItemHeight:    p.ItemHeight,
		InitialValues: p.InitialValues,
	}
	for _, col := range p.Columns {
		def.Columns = append(def.Columns, ColumnDef{Label: col.Label, Options: col.Options})
	}
	return def, nil
}
