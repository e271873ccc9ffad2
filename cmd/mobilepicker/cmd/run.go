package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-drift/picker/pkg/tui"
)

func init() {
	var (
		src       sourceFlags
		themeName string
		accent    string
	)
	c := &cobra.Command{
		Use:   "run",
		Short: "Show a picker in the terminal",
		Long: `Show a picker in the terminal and print the selection on exit.

Scroll a column with the mouse wheel or drag it; the wheel snaps 100ms
after the last tick. The keyboard steps the focused column one option at a
time.

  ↑/k ↓/j      previous / next option
  ←/h →/l tab  change column
  enter        confirm and print the selection
  q esc        quit without printing`,
		Example: `  mobilepicker run --preset time
  mobilepicker run -f sizes.yaml --item-height 30`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			props, err := src.props(cmd)
			if err != nil {
				return err
			}
			td, err := parseTheme(themeName, accent)
			if err != nil {
				return err
			}
			th := tui.ThemeFrom(td.PickerThemeOf())
			values, ok, err := tui.Run(cmd.Context(), tui.Options{Props: props, Theme: &th})
			if err != nil {
				return err
			}
			if ok {
				fmt.Fprintln(cmd.OutOrStdout(), tui.FormatValues(labelsOf(props), values))
			}
			return nil
		},
	}
	src.register(c)
	c.Flags().StringVar(&themeName, "theme", "dark", "color theme: light or dark")
	c.Flags().StringVar(&accent, "accent", "", "selected option color as #rrggbb (overrides the theme)")
	rootCmd.AddCommand(c)
}
