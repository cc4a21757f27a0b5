package gridtone

import (
	"math"
	"sort"
	"strconv"

	colorful "github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/stat"
)

const (
	// Pixels with HSV saturation above this are considered colorful and
	// contribute to the hue/saturation statistics.
	colorfulSaturation = 0.12

	minToneSaturation = 0.25
	maxToneSaturation = 0.85
	minToneValue      = 0.22
	maxToneValue      = 0.94
)

// TonalPalette derives a monochromatic palette from the given opaque pixels:
// one hue/saturation pair stepped across a brightness ladder. The hue is the
// circular mean of the colorful pixels' hues and the saturation their median,
// so the ramp visually belongs to the source image. No clustering, no
// iterative convergence; the result is a pure function of its input.
//
// buckets is clamped to a minimum of 2. An empty pixel slice is treated as a
// single white pixel so the statistics stay well-defined.
func TonalPalette(pixels []Pixel, buckets int) Palette {
	if buckets < 2 {
		buckets = 2
	}
	if len(pixels) == 0 {
		pixels = []Pixel{{R: 255, G: 255, B: 255, A: 255}}
	}

	var hues, sats []float64
	for _, p := range pixels {
		c := colorful.Color{
			R: float64(p.R) / 255.0,
			G: float64(p.G) / 255.0,
			B: float64(p.B) / 255.0,
		}
		h, s, _ := c.Hsv()
		if s > colorfulSaturation {
			// Hue is angular: collect it in radians for the circular mean.
			hues = append(hues, h/360.0*2.0*math.Pi)
			sats = append(sats, s)
		}
	}

	var hue, sat float64
	if len(hues) > 0 {
		hue = stat.CircularMean(hues, nil) / (2.0 * math.Pi)
		hue -= math.Floor(hue)
		sort.Float64s(sats)
		sat = sats[len(sats)/2]
	}
	sat = math.Min(maxToneSaturation, math.Max(minToneSaturation, sat))

	palette := make(Palette, buckets)
	for i := range palette {
		value := minToneValue +
			(maxToneValue-minToneValue)*float64(i)/float64(buckets-1)
		r, g, b := colorful.Hsv(hue*360.0, sat, value).RGB255()
		palette[i] = PaletteEntry{Name: "tone" + strconv.Itoa(i), R: r, G: g, B: b}
	}
	return palette
}

// opaquePixels filters pixels whose alpha passes the threshold. The raw
// channel values are kept; flattening happens later, per pixel, during grid
// building.
func opaquePixels(pixels []Pixel, threshold int) []Pixel {
	out := make([]Pixel, 0, len(pixels))
	for _, p := range pixels {
		if int(p.A) >= threshold {
			out = append(out, p)
		}
	}
	return out
}
