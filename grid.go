// Package gridtone converts raster images into fixed-size grids of palette
// indices suitable for embedding as color-by-number drawing templates. The
// pipeline is a stateless single pass: pick or derive a palette, flatten
// translucent pixels against white, map every pixel to its nearest palette
// entry, and reshape the result into rows.
package gridtone

import "fmt"

// TransparentIndex is the grid value for pixels below the alpha threshold,
// distinct from every valid palette index.
const TransparentIndex = -1

// Mode selects how the palette for a conversion is obtained.
type Mode string

const (
	// ModeFixed uses a prefix of the built-in reference catalog.
	ModeFixed Mode = "fixed"
	// ModeTonal synthesizes a brightness ramp from the image's own colors.
	ModeTonal Mode = "tonal"
	// ModeKMeans clusters the image's opaque colors with k-means.
	ModeKMeans Mode = "kmeans"
	// ModeDominant picks dominant image colors weighted by coverage.
	ModeDominant Mode = "dominant"
)

// Options configures one conversion.
type Options struct {
	Width  int
	Height int

	Mode Mode

	// PaletteSize is the catalog prefix length in fixed mode: 16 or 32.
	PaletteSize int

	// Buckets is the number of palette entries in the derived modes,
	// clamped to a minimum of 2.
	Buckets int

	// AlphaThreshold is the alpha value below which pixels become the
	// transparent sentinel. Valid range is 0 to 255.
	AlphaThreshold int
}

func (o *Options) validate(pixelCount int) error {
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("gridtone: dimensions must be positive, got %dx%d: %w",
			o.Width, o.Height, ErrInvalidArgument)
	}
	if pixelCount != o.Width*o.Height {
		return fmt.Errorf("gridtone: pixel count %d does not match %dx%d: %w",
			pixelCount, o.Width, o.Height, ErrInvalidArgument)
	}
	if o.AlphaThreshold < 0 || o.AlphaThreshold > 255 {
		return fmt.Errorf("gridtone: alpha threshold must be within 0-255, got %d: %w",
			o.AlphaThreshold, ErrInvalidArgument)
	}
	switch o.Mode {
	case ModeFixed:
		if o.PaletteSize != 16 && o.PaletteSize != 32 {
			return fmt.Errorf("gridtone: palette size must be 16 or 32, got %d: %w",
				o.PaletteSize, ErrInvalidArgument)
		}
	case ModeTonal, ModeKMeans, ModeDominant:
	default:
		return fmt.Errorf("gridtone: unknown mode %q: %w", o.Mode, ErrInvalidArgument)
	}
	return nil
}

// Template is the result of one conversion: the index grid, the palette the
// indices refer to, and the sorted set of indices actually used.
type Template struct {
	Width   int     `json:"width"`
	Height  int     `json:"height"`
	Grid    [][]int `json:"grid"`
	Palette Palette `json:"palette"`
	Used    []int   `json:"used"`
}

// Convert maps every pixel of a row-major RGBA buffer to its nearest palette
// index, or the transparent sentinel, and reshapes the result into rows of
// Options.Width. All argument validation happens before the first pixel is
// touched; there is no partial output.
func Convert(pixels []Pixel, opts Options) (*Template, error) {
	if err := opts.validate(len(pixels)); err != nil {
		return nil, err
	}

	palette, err := paletteFor(pixels, opts)
	if err != nil {
		return nil, err
	}

	flat := make([]int, 0, len(pixels))
	for _, p := range pixels {
		r, g, b, opaque := FlattenPixel(p, opts.AlphaThreshold)
		if !opaque {
			flat = append(flat, TransparentIndex)
			continue
		}
		flat = append(flat, NearestIndex(r, g, b, palette))
	}

	return &Template{
		Width:   opts.Width,
		Height:  opts.Height,
		Grid:    ChunkRows(flat, opts.Width),
		Palette: palette,
		Used:    UsedIndices(flat),
	}, nil
}

func paletteFor(pixels []Pixel, opts Options) (Palette, error) {
	switch opts.Mode {
	case ModeFixed:
		return PaletteForSize(opts.PaletteSize)
	case ModeKMeans:
		if p := KMeansPalette(pixels, opts.Width, opts.Height, opts.AlphaThreshold, opts.Buckets); p != nil {
			return p, nil
		}
	case ModeDominant:
		if p := DominantPalette(pixels, opts.Width, opts.Height, opts.AlphaThreshold, opts.Buckets); p != nil {
			return p, nil
		}
	}
	// Tonal mode, and the fallback when clustering yields nothing.
	return TonalPalette(opaquePixels(pixels, opts.AlphaThreshold), opts.Buckets), nil
}

// ChunkRows splits a flat index sequence into consecutive rows of the given
// width. A trailing partial chunk is emitted as a short final row rather
// than dropped or padded; in normal use the source supplies exactly
// width*height values and every row comes out full-length.
func ChunkRows(flat []int, width int) [][]int {
	rows := make([][]int, 0, (len(flat)+width-1)/width)
	for len(flat) > 0 {
		n := width
		if n > len(flat) {
			n = len(flat)
		}
		row := make([]int, n)
		copy(row, flat[:n])
		rows = append(rows, row)
		flat = flat[n:]
	}
	return rows
}
