package g2

import (
	"image/color"
)

// RGB returns an opaque color given by red, green, and blue ∈ [0,255].
func RGB(r, g, b uint8) color.RGBA {
	return color.RGBA{r, g, b, 255}
}

// RGBA returns a color given by red, green, and blue ∈ [0,255] (non alpha premultiplied) and alpha ∈ [0,1].
func RGBA(r, g, b uint8, a float64) color.RGBA {
	return color.RGBA{
		uint8(a * float64(r)),
		uint8(a * float64(g)),
		uint8(a * float64(b)),
		uint8(a * 255.0),
	}
}

// Palette is the default categorical color palette, assigned to marks by
// series index modulo its length.
var Palette = []color.RGBA{
	{91, 143, 249, 255},
	{90, 216, 166, 255},
	{93, 112, 146, 255},
	{246, 189, 22, 255},
	{111, 94, 249, 255},
	{109, 200, 236, 255},
	{148, 95, 185, 255},
	{255, 152, 69, 255},
	{30, 148, 147, 255},
	{255, 153, 195, 255},
}
