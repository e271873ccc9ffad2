// Package picker implements mobile-style column pickers: independent
// columns of options that scroll under drag and wheel input and snap to the
// nearest option when the interaction ends.
//
// # Columns
//
// Each column is driven by a [ColumnController] that owns a continuous
// offset in pixels. The offset is always clamped to
// [-(n-1)*itemHeight, 0], where n is the number of options. Dragging moves
// the offset freely within that range; releasing snaps it to the nearest
// option and commits that option. Wheel input moves the offset a third of an
// item per tick and commits once the wheel has been quiet for
// [SettleDelay].
//
// # Pickers
//
// A [Picker] owns one controller per column and an [Aggregator] holding the
// selected value of every column. Every commit broadcasts the complete
// selection to OnChange, never a partial update:
//
//	p := picker.New(picker.Props{
//	    Data: []picker.Column{years, months},
//	    InitialValues: picker.Values{"Year": 2021, "Month": 3},
//	    OnChange: func(v picker.Values) { fmt.Println(v) },
//	})
//	p.DragStart("Month", 100)
//	p.DragMove("Month", 28)
//	p.DragEnd("Month") // prints map[Month:5 Year:2021]
//
// Mounting a picker never calls OnChange; only user-driven commits do.
//
// # Presentation
//
// The package never animates or draws. [Picker.Layout] describes where each
// column sits so a presenter (see the tui and rendering packages) can
// translate rows, draw the highlight band, and ease toward snapped offsets.
package picker
