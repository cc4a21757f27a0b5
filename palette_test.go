package gridtone

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaletteForSize(t *testing.T) {
	t.Run("32", func(t *testing.T) {
		p, err := PaletteForSize(32)
		require.NoError(t, err)
		require.Len(t, p, 32)
		assert.Equal(t, PaletteEntry{Name: "red", R: 230, G: 57, B: 70}, p[0])
		assert.Equal(t, PaletteEntry{Name: "black"}, p[31])
	})

	t.Run("16 is a prefix of 32", func(t *testing.T) {
		p16, err := PaletteForSize(16)
		require.NoError(t, err)
		p32, err := PaletteForSize(32)
		require.NoError(t, err)
		require.Len(t, p16, 16)
		assert.Equal(t, p32[:16], p16)
	})

	t.Run("invalid sizes", func(t *testing.T) {
		for _, size := range []int{0, -1, 2, 15, 17, 24, 33, 64} {
			_, err := PaletteForSize(size)
			assert.ErrorIs(t, err, ErrInvalidArgument, "size %d", size)
		}
	})

	t.Run("unique names", func(t *testing.T) {
		seen := make(map[string]bool)
		for _, entry := range catalog {
			assert.False(t, seen[entry.Name], "duplicate name %q", entry.Name)
			seen[entry.Name] = true
		}
	})
}
