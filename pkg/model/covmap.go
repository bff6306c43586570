package model

import "strings"

// Glyphs and geometry of the reference coverage bar.
const (
	mapWidth       = 15
	coveredGlyph   = '='
	uncoveredGlyph = '.'
	breakGlyph     = '/'
)

// CoverageMap draws a fixed-width bar showing which stretch of a reference
// of refLen bases the span [start, end] covers. Cells are scaled buckets of
// the reference; a bucket touched by either endpoint counts as covered.
//
// broken renders the two-part variant used for alignments interrupted by a
// gap opening: one cell narrower, split by a slash after the middle cell.
// The bar is a visual aid only, nothing downstream parses it.
func CoverageMap(start, end, refLen int, broken bool) string {
	width := mapWidth
	if broken {
		width--
	}

	scale := 1.0
	if refLen > 0 {
		scale = float64(refLen) / float64(width)
	}
	x := int(float64(start) / scale)
	y := int(float64(end) / scale)

	var b strings.Builder
	b.Grow(mapWidth + 1)
	for i := 0; i < width; i++ {
		if i >= x && i <= y {
			b.WriteByte(coveredGlyph)
		} else {
			b.WriteByte(uncoveredGlyph)
		}
		if broken && i == width/2 {
			b.WriteByte(breakGlyph)
		}
	}
	return b.String()
}
