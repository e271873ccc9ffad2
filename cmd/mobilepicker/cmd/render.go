package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/go-drift/picker/cmd/mobilepicker/internal/script"
	"github.com/go-drift/picker/pkg/picker"
	"github.com/go-drift/picker/pkg/rendering"
)

func init() {
	var (
		src        sourceFlags
		scriptPath string
		out        string
		width      int
		themeName  string
		accent     string
	)
	c := &cobra.Command{
		Use:   "render",
		Short: "Render a picker to PNG",
		Long: `Render a picker to a PNG image.

With --script the gestures are replayed first, so the image shows the
picker's resting state afterwards.`,
		Example: `  mobilepicker render --preset date -o date.png
  mobilepicker render -f sizes.yaml -s swipe.yaml --width 480 -o after.png`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			props, err := src.props(cmd)
			if err != nil {
				return err
			}
			layout, err := layoutFor(props, scriptPath)
			if err != nil {
				return err
			}
			if width <= 0 {
				return fmt.Errorf("width must be positive, got %d", width)
			}

			td, err := parseTheme(themeName, accent)
			if err != nil {
				return err
			}

			canvas := rendering.RenderPicker(layout, width, td.PickerThemeOf().Raster())
			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", out, err)
			}
			if err := canvas.EncodePNG(f); err != nil {
				f.Close()
				return fmt.Errorf("failed to encode %s: %w", out, err)
			}
			if err := f.Close(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", out)
			return nil
		},
	}
	src.register(c)
	c.Flags().StringVarP(&scriptPath, "script", "s", "", "gesture script to replay before rendering")
	c.Flags().StringVarP(&out, "out", "o", "picker.png", "output file")
	c.Flags().IntVar(&width, "width", 320, "image width in pixels")
	c.Flags().StringVar(&themeName, "theme", "light", "color theme: light or dark")
	c.Flags().StringVar(&accent, "accent", "", "selected option color as #rrggbb (overrides the theme)")
	rootCmd.AddCommand(c)
}

func layoutFor(props picker.Props, scriptPath string) (picker.Layout, error) {
	if scriptPath == "" {
		p := picker.New(props)
		defer p.Dispose()
		return p.Layout(), nil
	}
	s, err := script.Load(scriptPath)
	if err != nil {
		return picker.Layout{}, err
	}
	res, err := script.Replay(props, s)
	if err != nil {
		return picker.Layout{}, err
	}
	return res.Layout, nil
}
