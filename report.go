package gridtone

import "sort"

// UsedIndices returns the sorted, deduplicated palette indices present in a
// flat index sequence. The transparent sentinel is never reported.
func UsedIndices(flat []int) []int {
	seen := make(map[int]struct{})
	for _, v := range flat {
		if v >= 0 {
			seen[v] = struct{}{}
		}
	}
	used := make([]int, 0, len(seen))
	for v := range seen {
		used = append(used, v)
	}
	sort.Ints(used)
	return used
}

// UsedEntry pairs a used palette index with the entry it refers to, for
// diagnostic reporting.
type UsedEntry struct {
	Index int
	Name  string
}

// UsedEntries resolves each used index against the palette. Indices outside
// the palette are skipped.
func UsedEntries(flat []int, palette Palette) []UsedEntry {
	indices := UsedIndices(flat)
	entries := make([]UsedEntry, 0, len(indices))
	for _, idx := range indices {
		if idx >= len(palette) {
			continue
		}
		entries = append(entries, UsedEntry{Index: idx, Name: palette[idx].Name})
	}
	return entries
}
