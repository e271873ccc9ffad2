// Package theme holds the palettes shared by the picker presenters.
package theme

import "github.com/go-drift/picker/pkg/rendering"

// ThemeData contains the theme configuration for a presenter.
type ThemeData struct {
	// ColorScheme defines the color palette.
	ColorScheme ColorScheme

	// Brightness indicates if this is a light or dark theme.
	Brightness Brightness

	// PickerTheme is optional; it is derived from ColorScheme if nil.
	PickerTheme *PickerThemeData
}

// DefaultLightTheme returns the default light theme.
func DefaultLightTheme() *ThemeData {
	return &ThemeData{
		ColorScheme: LightColorScheme(),
		Brightness:  BrightnessLight,
	}
}

// DefaultDarkTheme returns the default dark theme.
func DefaultDarkTheme() *ThemeData {
	return &ThemeData{
		ColorScheme: DarkColorScheme(),
		Brightness:  BrightnessDark,
	}
}

// ForBrightness returns the default theme for b.
func ForBrightness(b Brightness) *ThemeData {
	if b == BrightnessDark {
		return DefaultDarkTheme()
	}
	return DefaultLightTheme()
}

// CopyWith returns a new ThemeData with the specified fields overridden.
func (t *ThemeData) CopyWith(colorScheme *ColorScheme, brightness *Brightness) *ThemeData {
	result := &ThemeData{
		ColorScheme: t.ColorScheme,
		Brightness:  t.Brightness,
		PickerTheme: t.PickerTheme,
	}
	if colorScheme != nil {
		result.ColorScheme = *colorScheme
	}
	if brightness != nil {
		result.Brightness = *brightness
	}
	return result
}

// PickerThemeOf returns the picker theme, deriving from ColorScheme if not set.
func (t *ThemeData) PickerThemeOf() PickerThemeData {
	if t.PickerTheme != nil {
		return *t.PickerTheme
	}
	return DefaultPickerTheme(t.ColorScheme)
}

// PickerThemeData defines the colors of a column picker.
type PickerThemeData struct {
	// BackgroundColor fills the picker.
	BackgroundColor rendering.Color
	// HeaderColor is the column label color.
	HeaderColor rendering.Color
	// TextColor is the color of unselected options.
	TextColor rendering.Color
	// FadedTextColor is used where a presenter cannot blend a fade mask.
	FadedTextColor rendering.Color
	// SelectedColor is the color of the selected option.
	SelectedColor rendering.Color
	// BandColor tints the highlight band where supported.
	BandColor rendering.Color
	// DividerColor draws the header rule and the band edges.
	DividerColor rendering.Color
	// MaskColor is the fade color; presenters supply the alpha ramp.
	MaskColor rendering.Color
}

// DefaultPickerTheme returns PickerThemeData derived from a ColorScheme.
func DefaultPickerTheme(colors ColorScheme) PickerThemeData {
	return PickerThemeData{
		BackgroundColor: colors.Surface,
		HeaderColor:     colors.OnSurface,
		TextColor:       colors.OnSurface,
		FadedTextColor:  colors.OnSurfaceVariant,
		SelectedColor:   colors.Primary,
		BandColor:       colors.SurfaceContainer,
		DividerColor:    colors.OutlineVariant,
		MaskColor:       colors.Surface,
	}
}

// Raster converts the picker theme for the raster renderer.
func (p PickerThemeData) Raster() rendering.Theme {
	return rendering.Theme{
		Background: p.BackgroundColor,
		Text:       p.TextColor,
		Selected:   p.SelectedColor,
		Divider:    p.DividerColor,
		Mask:       p.MaskColor,
	}
}
