package gridtone

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	colorful "github.com/lucasb-eyer/go-colorful"
)

func entryHsv(e PaletteEntry) (h, s, v float64) {
	c := colorful.Color{
		R: float64(e.R) / 255.0,
		G: float64(e.G) / 255.0,
		B: float64(e.B) / 255.0,
	}
	return c.Hsv()
}

func TestTonalPalette(t *testing.T) {
	t.Run("bucket count and names", func(t *testing.T) {
		pixels := []Pixel{
			{R: 200, G: 40, B: 40, A: 255},
			{R: 180, G: 60, B: 50, A: 255},
			{R: 220, G: 30, B: 60, A: 255},
		}
		p := TonalPalette(pixels, 6)
		require.Len(t, p, 6)
		for i, entry := range p {
			assert.Equal(t, "tone"+strconv.Itoa(i), entry.Name)
		}
	})

	t.Run("brightness strictly increasing", func(t *testing.T) {
		p := TonalPalette([]Pixel{{R: 40, G: 180, B: 90, A: 255}}, 6)
		require.Len(t, p, 6)
		prev := -1.0
		for _, entry := range p {
			_, _, v := entryHsv(entry)
			assert.Greater(t, v, prev)
			prev = v
		}
	})

	t.Run("buckets clamped to two", func(t *testing.T) {
		for _, buckets := range []int{-3, 0, 1} {
			p := TonalPalette([]Pixel{{R: 10, G: 20, B: 30, A: 255}}, buckets)
			assert.Len(t, p, 2, "buckets %d", buckets)
		}
	})

	t.Run("empty input substitutes white", func(t *testing.T) {
		p := TonalPalette(nil, 4)
		require.Len(t, p, 4)
		// White is achromatic: hue 0, saturation clamped up to 0.25,
		// so every tone leans slightly red.
		for _, entry := range p {
			assert.Greater(t, entry.R, entry.G)
			assert.Equal(t, entry.G, entry.B)
		}
	})

	t.Run("greyscale input gets minimum saturation", func(t *testing.T) {
		grey := make([]Pixel, 8)
		for i := range grey {
			grey[i] = Pixel{R: 128, G: 128, B: 128, A: 255}
		}
		p := TonalPalette(grey, 3)
		require.Len(t, p, 3)
		for _, entry := range p {
			_, s, _ := entryHsv(entry)
			assert.InDelta(t, 0.25, s, 0.02)
		}
	})

	t.Run("saturation clamped down for vivid input", func(t *testing.T) {
		p := TonalPalette([]Pixel{{R: 255, G: 0, B: 0, A: 255}}, 3)
		for _, entry := range p {
			_, s, _ := entryHsv(entry)
			assert.LessOrEqual(t, s, 0.86)
		}
	})

	t.Run("hue mean survives the wraparound boundary", func(t *testing.T) {
		// Two reds straddling hue 0: ~350 degrees and ~10 degrees. A naive
		// arithmetic average would land on cyan at 180; the circular mean
		// must stay red.
		pixels := []Pixel{
			{R: 255, G: 0, B: 43, A: 255},
			{R: 255, G: 43, B: 0, A: 255},
		}
		p := TonalPalette(pixels, 4)
		require.Len(t, p, 4)
		for _, entry := range p {
			assert.Greater(t, entry.R, entry.G)
			assert.Greater(t, entry.R, entry.B)
		}
	})

	t.Run("median saturation drives the ramp", func(t *testing.T) {
		// Three green pixels with saturations around 0.3, 0.5 and 0.8; the
		// median keeps the ramp at moderate saturation, inside the clamp.
		var pixels []Pixel
		for _, s := range []float64{0.3, 0.5, 0.8} {
			r, g, b := colorful.Hsv(120, s, 1.0).RGB255()
			pixels = append(pixels, Pixel{R: r, G: g, B: b, A: 255})
		}
		p := TonalPalette(pixels, 3)
		for _, entry := range p {
			h, s, _ := entryHsv(entry)
			assert.InDelta(t, 120, h, 1.5)
			assert.InDelta(t, 0.5, s, 0.02)
		}
	})

	t.Run("deterministic", func(t *testing.T) {
		pixels := []Pixel{
			{R: 12, G: 200, B: 64, A: 255},
			{R: 40, G: 90, B: 220, A: 255},
		}
		assert.Equal(t, TonalPalette(pixels, 5), TonalPalette(pixels, 5))
	})
}

func TestOpaquePixels(t *testing.T) {
	pixels := []Pixel{
		{R: 1, A: 0},
		{R: 2, A: 39},
		{R: 3, A: 40},
		{R: 4, A: 255},
	}
	got := opaquePixels(pixels, 40)
	require.Len(t, got, 2)
	assert.Equal(t, uint8(3), got[0].R)
	assert.Equal(t, uint8(4), got[1].R)
}
