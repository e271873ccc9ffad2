package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/go-drift/picker/pkg/picker"
	"github.com/go-drift/picker/pkg/platform"
)

// Run shows the picker until the user confirms or quits. It returns the
// final selection and whether the user confirmed it with enter.
//
// While Run is active it owns the platform dispatcher: settle timers fire
// on the bubbletea event loop.
func Run(ctx context.Context, opts Options, progOpts ...tea.ProgramOption) (picker.Values, bool, error) {
	m := New(opts)

	progOpts = append([]tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}, progOpts...)
	prog := tea.NewProgram(m, progOpts...)

	prev := platform.RegisterDispatch(func(cb func()) {
		prog.Send(dispatchMsg{fn: cb})
	})
	defer func() {
		// Dispose first: a settle firing after the dispatcher is restored
		// would commit on the timer goroutine once Run has returned.
		m.picker.Dispose()
		platform.RegisterDispatch(prev)
	}()

	final, err := prog.Run()
	if err != nil {
		return nil, false, fmt.Errorf("run picker: %w", err)
	}
	values, ok := final.(Model).Result()
	return values, ok, nil
}
