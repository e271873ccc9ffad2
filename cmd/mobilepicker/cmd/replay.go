package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/go-drift/picker/cmd/mobilepicker/internal/script"
	"github.com/go-drift/picker/pkg/picker"
	"github.com/go-drift/picker/pkg/tui"
)

func init() {
	var (
		src        sourceFlags
		scriptPath string
		asJSON     bool
	)
	c := &cobra.Command{
		Use:   "replay",
		Short: "Replay a gesture script and print every change",
		Long: `Replay a gesture script against a picker on a virtual clock.

Each change broadcast is printed with the virtual time it happened at. Any
wheel settle still pending after the last step is flushed before the final
selection is printed.`,
		Example: `  mobilepicker replay --preset date --script swipe.yaml
  mobilepicker replay -f sizes.yaml -s swipe.yaml --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if scriptPath == "" {
				return errors.New("--script is required")
			}
			props, err := src.props(cmd)
			if err != nil {
				return err
			}
			s, err := script.Load(scriptPath)
			if err != nil {
				return err
			}
			res, err := script.Replay(props, s)
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), res)
			}
			writeText(cmd.OutOrStdout(), labelsOf(props), res)
			return nil
		},
	}
	src.register(c)
	c.Flags().StringVarP(&scriptPath, "script", "s", "", "gesture script (YAML)")
	c.Flags().BoolVar(&asJSON, "json", false, "print JSON lines instead of text")
	rootCmd.AddCommand(c)
}

func writeText(w io.Writer, labels []string, res *script.Result) {
	for _, e := range res.Events {
		fmt.Fprintf(w, "%8s  %s\n", "+"+e.At.String(), tui.FormatValues(labels, e.Values))
	}
	fmt.Fprintf(w, "%8s  %s\n", "final", tui.FormatValues(labels, res.Final))
}

func writeJSON(w io.Writer, res *script.Result) error {
	enc := json.NewEncoder(w)
	for _, e := range res.Events {
		if err := enc.Encode(map[string]any{"at": e.At.String(), "values": e.Values}); err != nil {
			return err
		}
	}
	return enc.Encode(map[string]any{"final": res.Final})
}

func labelsOf(props picker.Props) []string {
	labels := make([]string, len(props.Data))
	for i, col := range props.Data {
		labels[i] = col.Label
	}
	return labels
}
