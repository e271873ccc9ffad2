package testing

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/picker/pkg/picker"
)

type fakeT struct {
	name   string
	fatals []string
	errs   []string
}

func (f *fakeT) Helper() {}
func (f *fakeT) Name() string { return f.name }
func (f *fakeT) Fatalf(format string, args ...any) { f.fatals = append(f.fatals, fmt.Sprintf(format, args...)) }
func (f *fakeT) Errorf(format string, args ...any) { f.errs = append(f.errs, fmt.Sprintf(format, args...)) }

func snapshotProps() picker.Props {
	return picker.Props{
		Data:          []picker.Column{digits("A", 10), digits("B", 3)},
		InitialValues: picker.Values{"A": 4},
		Height:        120,
		ItemHeight:    40,
	}
}

func TestCaptureSnapshot_Columns(t *testing.T) {
	tester := NewPickerTesterWithT(t, snapshotProps())
	snap := tester.CaptureSnapshot()

	require.Len(t, snap.Columns, 2)
	assert.Equal(t, 40.0, snap.MiddlePosition)

	a := snap.Columns[0]
	assert.Equal(t, "4", a.Selected)
	assert.Equal(t, -120.0, a.Translate)
	assert.Equal(t, []string{"3", "4", "5"}, a.Visible)
	assert.Equal(t, "idle", a.Phase)

	b := snap.Columns[1]
	assert.Equal(t, "0", b.Selected)
	assert.Equal(t, []string{"0", "1"}, b.Visible)
}

func TestCaptureSnapshot_TracksPendingWheel(t *testing.T) {
	tester := NewPickerTesterWithT(t, snapshotProps())
	require.NoError(t, tester.Wheel("B", 1))

	snap := tester.CaptureSnapshot()
	assert.Equal(t, "pending-settle", snap.Columns[1].Phase)
	assert.Equal(t, "0", snap.Columns[1].Selected)
}

func TestSnapshot_Diff(t *testing.T) {
	tester := NewPickerTesterWithT(t, snapshotProps())
	a := tester.CaptureSnapshot()
	assert.Empty(t, a.Diff(tester.CaptureSnapshot()))

	require.NoError(t, tester.DragBy("A", -40))
	diff := a.Diff(tester.CaptureSnapshot())
	assert.Contains(t, diff, `-      "selected": "5"`)
	assert.Contains(t, diff, `+      "selected": "4"`)
}

func TestSnapshot_UpdateAndMatch(t *testing.T) {
	tester := NewPickerTesterWithT(t, snapshotProps())
	snap := tester.CaptureSnapshot()
	path := filepath.Join(t.TempDir(), "golden", "picker.json")

	require.NoError(t, snap.UpdateFile(path))

	ft := &fakeT{name: "TestGolden"}
	snap.MatchesFile(ft, path)
	assert.Empty(t, ft.fatals)
	assert.Empty(t, ft.errs)

	require.NoError(t, tester.DragBy("B", -40))
	tester.CaptureSnapshot().MatchesFile(ft, path)
	require.Len(t, ft.errs, 1)
	assert.Contains(t, ft.errs[0], "snapshot mismatch")
	assert.Contains(t, ft.errs[0], UpdateSnapshotsEnv+"=1 go test -run TestGolden")
}

func TestSnapshot_MissingFile(t *testing.T) {
	t.Setenv(UpdateSnapshotsEnv, "")
	ft := &fakeT{name: "TestMissing"}
	(&Snapshot{}).MatchesFile(ft, filepath.Join(t.TempDir(), "nope.json"))

	require.Len(t, ft.fatals, 1)
	assert.Contains(t, ft.fatals[0], "snapshot file missing")
}

func TestSnapshot_UpdateEnv(t *testing.T) {
	t.Setenv(UpdateSnapshotsEnv, "1")
	path := filepath.Join(t.TempDir(), "new.json")
	ft := &fakeT{name: "TestUpdate"}

	tester := NewPickerTesterWithT(t, snapshotProps())
	tester.CaptureSnapshot().MatchesFile(ft, path)

	assert.Empty(t, ft.fatals)
	loaded, err := loadSnapshot(path)
	require.NoError(t, err)
	assert.Empty(t, loaded.Diff(tester.CaptureSnapshot()))
}
