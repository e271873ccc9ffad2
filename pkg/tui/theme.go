package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/go-drift/picker/pkg/rendering"
	"github.com/go-drift/picker/pkg/theme"
)

// Theme holds the lipgloss styles used by the terminal picker.
type Theme struct {
	Header        lipgloss.Style
	FocusedHeader lipgloss.Style
	Item          lipgloss.Style
	Faded         lipgloss.Style
	Selected      lipgloss.Style
	Band          lipgloss.Style
	Footer        lipgloss.Style
	Help          lipgloss.Style
}

// DefaultTheme returns styles for the default dark theme.
func DefaultTheme() Theme {
	return ThemeFrom(theme.DefaultDarkTheme().PickerThemeOf())
}

// ThemeFrom builds terminal styles from a picker theme. Terminals cannot
// blend, so the fade mask becomes FadedTextColor.
func ThemeFrom(p theme.PickerThemeData) Theme {
	c := func(col rendering.Color) lipgloss.Color { return lipgloss.Color(col.Hex()) }
	return Theme{
		Header:        lipgloss.NewStyle().Bold(true).Foreground(c(p.HeaderColor)),
		FocusedHeader: lipgloss.NewStyle().Bold(true).Underline(true).Foreground(c(p.SelectedColor)),
		Item:          lipgloss.NewStyle().Foreground(c(p.TextColor)),
		Faded:         lipgloss.NewStyle().Foreground(c(p.FadedTextColor)),
		Selected:      lipgloss.NewStyle().Bold(true).Foreground(c(p.SelectedColor)),
		Band:          lipgloss.NewStyle().Background(c(p.BandColor)),
		Footer:        lipgloss.NewStyle().Foreground(c(p.TextColor)).Background(c(p.BandColor)).Padding(0, 2),
		Help:          lipgloss.NewStyle().Foreground(c(p.FadedTextColor)),
	}
}
