// Package color resolves CSS color tokens to concrete colors and blends
// them in linear light for gradient previews.
package color

import (
	"image/color"
	"math"
)

// SRGBToLinear converts an sRGB component to linear light.
// Input and output are in range [0,1].
func SRGBToLinear(s float64) float64 {
	if s <= 0.04045 {
		return s / 12.92
	}
	return math.Pow((s+0.055)/1.055, 2.4)
}

// LinearToSRGB converts a linear component back to sRGB.
// Input and output are in range [0,1].
func LinearToSRGB(l float64) float64 {
	if l <= 0.0031308 {
		return l * 12.92
	}
	return 1.055*math.Pow(l, 1.0/2.4) - 0.055
}

// Mix interpolates between a and b at t in [0,1]. RGB is blended in linear
// light; alpha is blended directly.
func Mix(a, b color.NRGBA, t float64) color.NRGBA {
	t = math.Max(0, math.Min(1, t))
	mix := func(x, y uint8) uint8 {
		lx := SRGBToLinear(float64(x) / 255)
		ly := SRGBToLinear(float64(y) / 255)
		return toU8(LinearToSRGB(lx + (ly-lx)*t))
	}
	return color.NRGBA{
		R: mix(a.R, b.R),
		G: mix(a.G, b.G),
		B: mix(a.B, b.B),
		A: toU8((float64(a.A) + (float64(b.A)-float64(a.A))*t) / 255),
	}
}

// toU8 clamps v to [0,1] and converts to uint8 with rounding.
func toU8(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255.0 + 0.5)
}
