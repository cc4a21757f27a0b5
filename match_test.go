package gridtone

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNearestIndex(t *testing.T) {
	t.Run("exact match", func(t *testing.T) {
		p, err := PaletteForSize(32)
		require.NoError(t, err)
		for i, entry := range p {
			assert.Equal(t, i, NearestIndex(entry.R, entry.G, entry.B, p), entry.Name)
		}
	})

	t.Run("ties resolve to the lowest index", func(t *testing.T) {
		p := Palette{
			{Name: "a"},
			{Name: "b"},
		}
		assert.Equal(t, 0, NearestIndex(0, 0, 0, p))
	})

	t.Run("equidistant entries", func(t *testing.T) {
		p := Palette{
			{Name: "low", R: 10},
			{Name: "high", R: 20},
		}
		// 15 is exactly between both entries.
		assert.Equal(t, 0, NearestIndex(15, 0, 0, p))
	})

	t.Run("squared distance beats channel intuition", func(t *testing.T) {
		p, err := PaletteForSize(32)
		require.NoError(t, err)
		// Pure red is marginally closer to deeporange (255,87,34) than to
		// the catalog's red (230,57,70): 8725 vs 8774.
		assert.Equal(t, 19, NearestIndex(255, 0, 0, p))
	})

	t.Run("single entry palette", func(t *testing.T) {
		p := Palette{{Name: "only", R: 9, G: 9, B: 9}}
		assert.Equal(t, 0, NearestIndex(250, 1, 128, p))
	})
}
