// Package rendering paints picker layouts into raster images.
//
// It uses a bitmap font from golang.org/x/image, so output is identical on
// every platform and suitable for golden-file tests:
//
//	c := rendering.RenderPicker(p.Layout(), 320, rendering.DefaultTheme)
//	err := c.EncodePNG(w)
package rendering
