package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/go-drift/picker/cmd/mobilepicker/internal/config"
	"github.com/go-drift/picker/pkg/picker"
)

// sourceFlags select the picker a command works on.
type sourceFlags struct {
	preset     string
	file       string
	height     float64
	itemHeight float64
	hideLabels bool
}

func (s *sourceFlags) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVarP(&s.preset, "preset", "p", "", "built-in picker (see 'mobilepicker presets')")
	f.StringVarP(&s.file, "file", "f", "", "picker definition file (YAML)")
	f.Float64Var(&s.height, "height", 0, "viewport height in pixels (default from definition, else 200)")
	f.Float64Var(&s.itemHeight, "item-height", 0, "option height in pixels (default from definition, else 36)")
	f.BoolVar(&s.hideLabels, "hide-labels", false, "hide the column header row")
}

// props resolves the selected definition. Geometry flags override the
// definition only when set on the command line or in config.
func (s *sourceFlags) props(cmd *cobra.Command) (picker.Props, error) {
	if s.preset == "" && s.file == "" {
		return picker.Props{}, errors.New("no picker selected: pass --preset or --file")
	}

	def := &config.Definition{}
	if s.file != "" {
		loaded, err := config.Load(s.file)
		if err != nil {
			return picker.Props{}, err
		}
		def = loaded
	}
	if s.preset != "" {
		def.Preset = s.preset
	}

	props, err := def.Resolve()
	if err != nil {
		return picker.Props{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("height") {
		props.Height = s.height
	}
	if flags.Changed("item-height") {
		props.ItemHeight = s.itemHeight
	}
	if flags.Changed("hide-labels") {
		show := !s.hideLabels
		props.ShowLabels = &show
	}
	return props, nil
}
