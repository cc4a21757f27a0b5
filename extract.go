package gridtone

import (
	"image"
	"math"
	"sort"
	"strconv"

	"github.com/cenkalti/dominantcolor"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/clusters"
	"github.com/muesli/kmeans"
)

// Subsample cap that keeps k-means tractable on large inputs.
const maxClusterSamples = 12000

type weightedColor struct {
	col    colorful.Color
	weight float64
}

// KMeansPalette clusters the opaque pixel colors with k-means and keeps the
// k most diverse cluster centers, ordered dark to bright. Returns nil when
// there are too few opaque pixels to cluster; callers fall back to the tonal
// ramp in that case.
//
// Unlike the fixed and tonal modes, the cluster initialization is
// randomized, so repeated runs may produce slightly different palettes.
func KMeansPalette(pixels []Pixel, width, height, threshold, k int) Palette {
	if k < 2 {
		k = 2
	}
	if width <= 0 || height <= 0 || len(pixels) != width*height {
		return nil
	}

	step := 1
	if width*height > maxClusterSamples {
		step = int(math.Sqrt(float64(width*height)/float64(maxClusterSamples))) + 1
	}

	dataset := make(clusters.Observations, 0, maxClusterSamples)
	for y := 0; y < height; y += step {
		for x := 0; x < width; x += step {
			p := pixels[y*width+x]
			if int(p.A) < threshold {
				continue
			}
			dataset = append(dataset, clusters.Coordinates{
				float64(p.R) / 255.0,
				float64(p.G) / 255.0,
				float64(p.B) / 255.0,
			})
		}
	}

	// Cluster into more groups than requested so the diverse selection has
	// candidates to choose from.
	workK := k * 4
	if workK < k+2 {
		workK = k + 2
	}
	if workK > len(dataset) {
		workK = len(dataset)
	}
	if workK < k {
		return nil
	}

	km := kmeans.New()
	cc, err := km.Partition(dataset, workK)
	if err != nil || len(cc) == 0 {
		return nil
	}

	sort.Slice(cc, func(i, j int) bool {
		return len(cc[i].Observations) > len(cc[j].Observations)
	})

	weighted := make([]weightedColor, 0, len(cc))
	for _, c := range cc {
		if len(c.Center) < 3 {
			continue
		}
		col := colorful.Color{R: c.Center[0], G: c.Center[1], B: c.Center[2]}.Clamped()
		w := float64(len(c.Observations))
		if w <= 0 {
			w = 1e-6
		}
		weighted = append(weighted, weightedColor{col: col, weight: w})
	}

	return namedPalette("kmeans", selectDiverseWeighted(weighted, k))
}

// DominantPalette derives a palette from the most dominant image colors,
// weighted by coverage, ordered dark to bright. Returns nil when no
// candidate colors can be found.
func DominantPalette(pixels []Pixel, width, height, threshold, k int) Palette {
	if k < 2 {
		k = 2
	}
	img := pixelsImage(pixels, width, height, threshold)
	if img == nil {
		return nil
	}
	if len(opaquePixels(pixels, threshold)) == 0 {
		return nil
	}

	nCandidates := k * 8
	if nCandidates < 24 {
		nCandidates = 24
	}
	candidates := dominantcolor.FindWeight(img, nCandidates)
	if len(candidates) == 0 {
		return nil
	}

	weighted := make([]weightedColor, 0, len(candidates))
	for _, c := range candidates {
		col, _ := colorful.MakeColor(c.RGBA)
		w := c.Weight
		if w <= 0 {
			w = 1e-6
		}
		weighted = append(weighted, weightedColor{col: col.Clamped(), weight: w})
	}

	return namedPalette("dominant", selectDiverseWeighted(weighted, k))
}

// selectDiverseWeighted greedily picks up to k colors, seeding with the
// strongest candidate and then preferring colors far from the current
// selection in Lab space, scaled by weight.
func selectDiverseWeighted(cands []weightedColor, k int) []colorful.Color {
	if k <= 0 || len(cands) == 0 {
		return nil
	}
	type item struct {
		col colorful.Color
		lab [3]float64
		w   float64
	}
	items := make([]item, 0, len(cands))
	maxW := 0.0
	for _, c := range cands {
		l, a, b := c.col.Lab()
		if c.weight > maxW {
			maxW = c.weight
		}
		items = append(items, item{col: c.col, lab: [3]float64{l, a, b}, w: c.weight})
	}
	if k > len(items) {
		k = len(items)
	}
	if maxW <= 0 {
		maxW = 1.0
	}

	selectedIdx := make([]int, 0, k)
	selected := make([]bool, len(items))

	bestSeed := 0
	for i := 1; i < len(items); i++ {
		if items[i].w > items[bestSeed].w {
			bestSeed = i
		}
	}
	selectedIdx = append(selectedIdx, bestSeed)
	selected[bestSeed] = true

	for len(selectedIdx) < k {
		bestIdx := -1
		bestScore := -1.0
		for i := range items {
			if selected[i] {
				continue
			}
			minD2 := math.MaxFloat64
			for _, s := range selectedIdx {
				d0 := items[i].lab[0] - items[s].lab[0]
				d1 := items[i].lab[1] - items[s].lab[1]
				d2 := items[i].lab[2] - items[s].lab[2]
				if d := d0*d0 + d1*d1 + d2*d2; d < minD2 {
					minD2 = d
				}
			}
			score := math.Sqrt(minD2) * (0.55 + 0.45*math.Sqrt(items[i].w/maxW))
			if score > bestScore {
				bestScore = score
				bestIdx = i
			}
		}
		if bestIdx < 0 {
			break
		}
		selected[bestIdx] = true
		selectedIdx = append(selectedIdx, bestIdx)
	}

	out := make([]colorful.Color, 0, len(selectedIdx))
	for _, idx := range selectedIdx {
		out = append(out, items[idx].col)
	}
	return out
}

// namedPalette orders colors from darkest to brightest by linear luminance
// and names them prefix0..prefixN-1.
func namedPalette(prefix string, cols []colorful.Color) Palette {
	if len(cols) == 0 {
		return nil
	}
	sort.SliceStable(cols, func(i, j int) bool {
		return linearLuminance(cols[i]) < linearLuminance(cols[j])
	})
	palette := make(Palette, len(cols))
	for i, c := range cols {
		r, g, b := c.RGB255()
		palette[i] = PaletteEntry{Name: prefix + strconv.Itoa(i), R: r, G: g, B: b}
	}
	return palette
}

func linearLuminance(c colorful.Color) float64 {
	r, g, b := c.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// pixelsImage rebuilds an NRGBA image from a row-major pixel buffer.
// Below-threshold pixels are written fully transparent so they stay out of
// the dominant color statistics.
func pixelsImage(pixels []Pixel, width, height, threshold int) *image.NRGBA {
	if width <= 0 || height <= 0 || len(pixels) != width*height {
		return nil
	}
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for i, p := range pixels {
		if int(p.A) < threshold {
			p = Pixel{}
		}
		off := i * 4
		img.Pix[off] = p.R
		img.Pix[off+1] = p.G
		img.Pix[off+2] = p.B
		img.Pix[off+3] = p.A
	}
	return img
}
