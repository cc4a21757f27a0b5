package gridtone

// NearestIndex returns the index of the palette entry closest to the given
// color by squared Euclidean RGB distance. Exact ties resolve to the lowest
// index, which keeps output reproducible for any palette ordering. The scan
// is linear on purpose: palettes are at most 32 entries, and any indexing
// scheme that changes the tie-break order would change the output.
func NearestIndex(r, g, b uint8, palette Palette) int {
	best := 0
	bestDist := int(^uint(0) >> 1)
	for i, entry := range palette {
		dr := int(r) - int(entry.R)
		dg := int(g) - int(entry.G)
		db := int(b) - int(entry.B)
		dist := dr*dr + dg*dg + db*db
		if dist < bestDist {
			bestDist = dist
			best = i
		}
	}
	return best
}
