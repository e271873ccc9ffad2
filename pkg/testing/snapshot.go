package testing

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-drift/picker/pkg/picker"
)

// TestingT is the subset of *testing.T used by MatchesFile, allowing
// test doubles to intercept failures.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
	Errorf(format string, args ...any)
	Name() string
}

// UpdateSnapshotsEnv names the variable that makes MatchesFile rewrite
// golden files instead of comparing.
const UpdateSnapshotsEnv = "PICKER_UPDATE_SNAPSHOTS"

// Snapshot captures what a presenter would show for a picker.
type Snapshot struct {
	Height         float64          `json:"height"`
	ItemHeight     float64          `json:"itemHeight"`
	MiddlePosition float64          `json:"middlePosition"`
	ShowLabels     bool             `json:"showLabels"`
	Columns        []ColumnSnapshot `json:"columns"`
}

// ColumnSnapshot is the visible state of one column.
type ColumnSnapshot struct {
	Label     string   `json:"label"`
	Offset    float64  `json:"offset"`
	Translate float64  `json:"translate"`
	Phase     string   `json:"phase"`
	Selected  string   `json:"selected,omitempty"`
	Visible   []string `json:"visible,omitempty"`
}

// CaptureSnapshot captures the picker's current layout.
func (t *PickerTester) CaptureSnapshot() *Snapshot {
	return SnapshotOf(t.picker.Layout())
}

// SnapshotOf converts a layout into a snapshot. Visible lists the labels of
// the options that intersect the viewport, top to bottom.
func SnapshotOf(l picker.Layout) *Snapshot {
	snap := &Snapshot{
		Height:         l.Height,
		ItemHeight:     l.ItemHeight,
		MiddlePosition: l.MiddlePosition,
		ShowLabels:     l.ShowLabels,
		Columns:        make([]ColumnSnapshot, len(l.Columns)),
	}
	for i, col := range l.Columns {
		cs := ColumnSnapshot{
			Label:     col.Label,
			Offset:    col.Offset,
			Translate: col.Translate,
			Phase:     col.Phase.String(),
		}
		if col.SelectedIndex >= 0 {
			cs.Selected = col.Options[col.SelectedIndex].Label
		}
		first, last := l.VisibleRange(col.Translate, len(col.Options))
		for _, opt := range col.Options[first:last] {
			cs.Visible = append(cs.Visible, opt.Label)
		}
		snap.Columns[i] = cs
	}
	return snap
}

// MatchesFile compares this snapshot against a golden file. On mismatch it
// reports a diff and instructions for updating. When PICKER_UPDATE_SNAPSHOTS=1
// is set, the file is silently updated instead.
func (s *Snapshot) MatchesFile(t TestingT, path string) {
	t.Helper()

	if os.Getenv(UpdateSnapshotsEnv) == "1" {
		if err := s.UpdateFile(path); err != nil {
			t.Fatalf("failed to update snapshot: %v", err)
		}
		return
	}

	expected, err := loadSnapshot(path)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("snapshot file missing: %s\n\nTo create: %s=1 go test -run %s", path, UpdateSnapshotsEnv, t.Name())
			return
		}
		t.Fatalf("failed to load snapshot: %v", err)
		return
	}

	if diff := s.Diff(expected); diff != "" {
		t.Errorf("snapshot mismatch: %s\n%s\n\nTo update: %s=1 go test -run %s", path, diff, UpdateSnapshotsEnv, t.Name())
	}
}

// UpdateFile writes this snapshot to the given path, creating directories
// as needed.
func (s *Snapshot) UpdateFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := marshalSnapshot(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Diff returns a unified diff between this snapshot and other. Returns
// empty string if equal.
func (s *Snapshot) Diff(other *Snapshot) string {
	a, _ := marshalSnapshot(s)
	b, _ := marshalSnapshot(other)
	if bytes.Equal(a, b) {
		return ""
	}
	return unifiedDiff(string(b), string(a))
}

func loadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("invalid snapshot JSON: %w", err)
	}
	return &snap, nil
}

func marshalSnapshot(s *Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// unifiedDiff produces a simple line-oriented diff.
func unifiedDiff(expected, actual string) string {
	expectedLines := strings.Split(expected, "\n")
	actualLines := strings.Split(actual, "\n")

	var buf strings.Builder
	buf.WriteString("--- expected\n+++ actual\n")

	for i := range max(len(expectedLines), len(actualLines)) {
		var e, a string
		if i < len(expectedLines) {
			e = expectedLines[i]
		}
		if i < len(actualLines) {
			a = actualLines[i]
		}
		if e != a {
			if i < len(expectedLines) {
				fmt.Fprintf(&buf, "-%s\n", e)
			}
			if i < len(actualLines) {
				fmt.Fprintf(&buf, "+%s\n", a)
			}
		}
	}

	return buf.String()
}
