package theme

import "github.com/go-drift/picker/pkg/rendering"

// Brightness indicates whether a theme is light or dark.
type Brightness int

const (
	BrightnessLight Brightness = iota
	BrightnessDark
)

// String returns "light" or "dark".
func (b Brightness) String() string {
	if b == BrightnessDark {
		return "dark"
	}
	return "light"
}

// ColorScheme is the palette pickers are painted with.
type ColorScheme struct {
	// Primary marks the selected option and the focused column.
	Primary rendering.Color
	// Surface is the picker background.
	Surface rendering.Color
	// OnSurface is the default text color.
	OnSurface rendering.Color
	// OnSurfaceVariant is used for de-emphasized text.
	OnSurfaceVariant rendering.Color
	// SurfaceContainer tints the highlight band.
	SurfaceContainer rendering.Color
	// OutlineVariant draws dividers.
	OutlineVariant rendering.Color
}

// LightColorScheme returns the default light palette.
func LightColorScheme() ColorScheme {
	return ColorScheme{
		Primary:          rendering.RGB(0x19, 0x76, 0xD2),
		Surface:          rendering.ColorWhite,
		OnSurface:        rendering.RGB(0x21, 0x21, 0x21),
		OnSurfaceVariant: rendering.RGB(0x75, 0x75, 0x75),
		SurfaceContainer: rendering.RGB(0xF3, 0xF4, 0xF6),
		OutlineVariant:   rendering.RGBA(0, 0, 0, 0x1F),
	}
}

// DarkColorScheme returns the default dark palette (Catppuccin Mocha).
func DarkColorScheme() ColorScheme {
	return ColorScheme{
		Primary:          rendering.RGB(0x89, 0xB4, 0xFA),
		Surface:          rendering.RGB(0x1E, 0x1E, 0x2E),
		OnSurface:        rendering.RGB(0xCD, 0xD6, 0xF4),
		OnSurfaceVariant: rendering.RGB(0x6C, 0x70, 0x86),
		SurfaceContainer: rendering.RGB(0x31, 0x32, 0x44),
		OutlineVariant:   rendering.RGB(0x45, 0x47, 0x5A),
	}
}
