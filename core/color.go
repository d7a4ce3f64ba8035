package core

import (
	"github.com/lucasb-eyer/go-colorful"
)

// RGB stores explicit 8-bit color channels, decoupled from tcell
type RGB struct {
	R, G, B uint8
}

// Predefined colors
var (
	RGBBlack = RGB{0, 0, 0}
	RGBWhite = RGB{255, 255, 255}
)

// MaxAlpha is the opaque end of the 0-255 alpha scale used by drawing calls
const MaxAlpha = 255.0

// Colorful converts to the go-colorful representation (channels in [0,1])
func (c RGB) Colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

// FromColorful converts back, clamping out-of-gamut channels
func FromColorful(c colorful.Color) RGB {
	r, g, b := c.Clamped().RGB255()
	return RGB{r, g, b}
}

// Blend performs alpha blending: result = src*alpha + dst*(1-alpha), alpha in [0,1]
func (c RGB) Blend(src RGB, alpha float64) RGB {
	if alpha <= 0 {
		return c
	}
	if alpha >= 1 {
		return src
	}
	return FromColorful(c.Colorful().BlendRgb(src.Colorful(), alpha))
}

// BlendAlpha255 blends with alpha given on the 0-255 scale
func (c RGB) BlendAlpha255(src RGB, alpha float64) RGB {
	return c.Blend(src, alpha/MaxAlpha)
}
