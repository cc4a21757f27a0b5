package gridtone

import "math"

// Pixel is one RGBA sample with non-premultiplied 8-bit channels.
type Pixel struct {
	R, G, B, A uint8
}

// DefaultAlphaThreshold is the alpha value below which a pixel is treated
// as fully transparent.
const DefaultAlphaThreshold = 40

// FlattenPixel composites a pixel over a pure white background. ok is false
// when the pixel's alpha is below the threshold; such pixels contribute no
// color at all. A pixel just above the threshold still blends heavily toward
// white: the threshold and the blend are independent.
func FlattenPixel(p Pixel, threshold int) (r, g, b uint8, ok bool) {
	if int(p.A) < threshold {
		return 0, 0, 0, false
	}
	alpha := float64(p.A) / 255.0
	return blendWhite(p.R, alpha), blendWhite(p.G, alpha), blendWhite(p.B, alpha), true
}

func blendWhite(c uint8, alpha float64) uint8 {
	return uint8(math.Round(float64(c)*alpha + 255.0*(1.0-alpha)))
}
