// Package testing provides a picker testing harness.
//
// # Quick Start
//
// Create a tester, drive gestures, and assert on the broadcasts:
//
//	func TestMonthPicker(t *testing.T) {
//	    tester := pickertest.NewPickerTesterWithT(t, picker.Props{
//	        Data:          presets.Month(),
//	        InitialValues: picker.Values{"Month": 1},
//	        ItemHeight:    40,
//	    })
//
//	    tester.DragBy("Month", -80)
//
//	    last, _ := tester.LastChange()
//	    if last["Month"] != 3 {
//	        t.Errorf("expected March, got %v", last["Month"])
//	    }
//	}
//
// # Time
//
// Settle callbacks run on a [FakeClock]. Nothing fires until the test
// advances it:
//
//	tester.WheelTicks("Month", 1, 3, 20*time.Millisecond)
//	tester.Settle()
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import pickertest "github.com/go-drift/picker/pkg/testing"
package testing
