package cmd

import (
	"fmt"

	"github.com/go-drift/picker/pkg/rendering"
	"github.com/go-drift/picker/pkg/theme"
)

// parseTheme resolves --theme and, when set, --accent, which replaces the
// scheme's primary color (the selected option).
func parseTheme(name, accent string) (*theme.ThemeData, error) {
	var td *theme.ThemeData
	switch name {
	case "light":
		td = theme.DefaultLightTheme()
	case "dark":
		td = theme.DefaultDarkTheme()
	default:
		return nil, fmt.Errorf("unknown theme %q: want light or dark", name)
	}
	if accent == "" {
		return td, nil
	}
	c, err := rendering.ParseHex(accent)
	if err != nil {
		return nil, fmt.Errorf("--accent: %w", err)
	}
	colors := td.ColorScheme
	colors.Primary = c
	return td.CopyWith(&colors, nil), nil
}
