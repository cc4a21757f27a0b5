package gridtone

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is returned for any caller misuse: bad palette size,
// non-positive dimensions, mismatched pixel buffer length, out-of-range
// alpha threshold or unknown mode. All of these are detected before any
// pixel is processed.
var ErrInvalidArgument = errors.New("invalid argument")

// PaletteEntry is a single named reference color.
type PaletteEntry struct {
	Name string `json:"name"`
	R    uint8  `json:"r"`
	G    uint8  `json:"g"`
	B    uint8  `json:"b"`
}

// Palette is an ordered sequence of reference colors. The position of an
// entry is the palette index used in generated templates, so order is part
// of the output contract.
type Palette []PaletteEntry

// catalog is the reference palette in design order. Templates store bare
// indices into it, so entries must never be reordered or removed.
var catalog = Palette{
	{Name: "red", R: 230, G: 57, B: 70},
	{Name: "orange", R: 244, G: 162, B: 97},
	{Name: "yellow", R: 233, G: 196, B: 106},
	{Name: "green", R: 76, G: 175, B: 80},
	{Name: "teal", R: 42, G: 157, B: 143},
	{Name: "brown", R: 141, G: 110, B: 99},
	{Name: "charcoal", R: 47, G: 47, B: 47},
	{Name: "lightgray", R: 176, G: 190, B: 197},
	{Name: "sky", R: 33, G: 150, B: 243},
	{Name: "indigo", R: 63, G: 81, B: 181},
	{Name: "violet", R: 156, G: 39, B: 176},
	{Name: "magenta", R: 233, G: 30, B: 99},
	{Name: "coral", R: 255, G: 112, B: 67},
	{Name: "gold", R: 255, G: 235, B: 59},
	{Name: "seafoam", R: 0, G: 150, B: 136},
	{Name: "umber", R: 121, G: 85, B: 72},
	{Name: "slate", R: 96, G: 125, B: 139},
	{Name: "gray", R: 158, G: 158, B: 158},
	{Name: "bluegray", R: 69, G: 90, B: 100},
	{Name: "deeporange", R: 255, G: 87, B: 34},
	{Name: "lime", R: 205, G: 220, B: 57},
	{Name: "leaf", R: 139, G: 195, B: 74},
	{Name: "cyan", R: 0, G: 188, B: 212},
	{Name: "azure", R: 3, G: 169, B: 244},
	{Name: "purple", R: 103, G: 58, B: 183},
	{Name: "hotpink", R: 255, G: 64, B: 129},
	{Name: "amber", R: 255, G: 152, B: 0},
	{Name: "white", R: 250, G: 250, B: 250},
	{Name: "storm", R: 84, G: 110, B: 122},
	{Name: "petalpink", R: 255, G: 167, B: 192},
	{Name: "darkgray", R: 66, G: 66, B: 66},
	{Name: "black", R: 0, G: 0, B: 0},
}

// PaletteForSize returns the first size entries of the reference catalog.
// Only 16 and 32 are valid sizes.
func PaletteForSize(size int) (Palette, error) {
	if size != 16 && size != 32 {
		return nil, fmt.Errorf("gridtone: palette size must be 16 or 32, got %d: %w",
			size, ErrInvalidArgument)
	}
	return catalog[:size:size], nil
}
