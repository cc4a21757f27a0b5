package gridtone

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsedIndices(t *testing.T) {
	t.Run("sorted and deduplicated", func(t *testing.T) {
		flat := []int{5, 1, 5, -1, 3, 1, -1, 0}
		assert.Equal(t, []int{0, 1, 3, 5}, UsedIndices(flat))
	})

	t.Run("sentinel only", func(t *testing.T) {
		assert.Empty(t, UsedIndices([]int{-1, -1}))
	})

	t.Run("does not mutate its input", func(t *testing.T) {
		flat := []int{3, 1, 2}
		UsedIndices(flat)
		assert.Equal(t, []int{3, 1, 2}, flat)
	})
}

func TestUsedEntries(t *testing.T) {
	p, err := PaletteForSize(16)
	require.NoError(t, err)

	entries := UsedEntries([]int{2, 0, 2, -1}, p)
	assert.Equal(t, []UsedEntry{
		{Index: 0, Name: "red"},
		{Index: 2, Name: "yellow"},
	}, entries)

	t.Run("out of range indices are skipped", func(t *testing.T) {
		entries := UsedEntries([]int{0, 99}, p)
		assert.Equal(t, []UsedEntry{{Index: 0, Name: "red"}}, entries)
	})
}
