package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-drift/picker/pkg/rendering"
)

func TestPickerThemeOf_DerivesFromColorScheme(t *testing.T) {
	td := DefaultLightTheme()
	pt := td.PickerThemeOf()

	assert.Equal(t, td.ColorScheme.Primary, pt.SelectedColor)
	assert.Equal(t, td.ColorScheme.Surface, pt.BackgroundColor)
	assert.Equal(t, rendering.DefaultTheme, pt.Raster(), "the light theme matches the renderer default")
}

func TestPickerThemeOf_Override(t *testing.T) {
	custom := DefaultPickerTheme(DarkColorScheme())
	custom.SelectedColor = rendering.RGB(0, 150, 136)
	td := DefaultLightTheme()
	td.PickerTheme = &custom

	assert.Equal(t, rendering.RGB(0, 150, 136), td.PickerThemeOf().SelectedColor)
}

func TestCopyWith(t *testing.T) {
	base := DefaultLightTheme()
	dark := DarkColorScheme()
	b := BrightnessDark

	got := base.CopyWith(&dark, &b)
	assert.Equal(t, BrightnessDark, got.Brightness)
	assert.Equal(t, dark.Surface, got.PickerThemeOf().BackgroundColor)
	assert.Equal(t, BrightnessLight, base.Brightness, "the original is unchanged")
}

func TestForBrightness(t *testing.T) {
	assert.Equal(t, "dark", ForBrightness(BrightnessDark).Brightness.String())
	assert.Equal(t, "light", ForBrightness(BrightnessLight).Brightness.String())
}
