package gridtone

import (
	"image"
	"image/color"
)

// PreviewImage renders a template back into an image, one scale x scale
// block per grid cell. Transparent cells stay fully transparent. scale is
// clamped to a minimum of 1.
func PreviewImage(t *Template, scale int) *image.NRGBA {
	if scale < 1 {
		scale = 1
	}
	img := image.NewNRGBA(image.Rect(0, 0, t.Width*scale, len(t.Grid)*scale))
	for y, row := range t.Grid {
		for x, v := range row {
			if v < 0 || v >= len(t.Palette) {
				continue
			}
			entry := t.Palette[v]
			c := color.NRGBA{R: entry.R, G: entry.G, B: entry.B, A: 255}
			for dy := 0; dy < scale; dy++ {
				for dx := 0; dx < scale; dx++ {
					img.SetNRGBA(x*scale+dx, y*scale+dy, c)
				}
			}
		}
	}
	return img
}
