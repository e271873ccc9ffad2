package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/go-drift/picker/cmd/mobilepicker/internal/config"
	"github.com/go-drift/picker/pkg/presets"
)

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "presets [name]",
		Short: "List built-in pickers, or print one as a definition file",
		Long: `Without arguments, list the built-in pickers.

With a name, print that preset as a definition file. The output can be
edited and passed back with --file.`,
		Example: `  mobilepicker presets
  mobilepicker presets time > time.yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			if len(args) == 1 {
				def, err := config.FromPreset(args[0])
				if err != nil {
					return err
				}
				data, err := config.Marshal(def)
				if err != nil {
					return err
				}
				_, err = w.Write(data)
				return err
			}

			tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
			for _, name := range presets.Names() {
				p, _ := presets.Lookup(name)
				fmt.Fprintf(tw, "%s\t%s\n", name, p.Description)
			}
			return tw.Flush()
		},
	})
}
