package otquery

import "golang.org/x/image/font/sfnt"

// FontMetricsInfo contains selected metric information for a font.
type FontMetricsInfo struct {
	UnitsPerEm      sfnt.Units // ad-hoc units per em
	Ascent, Descent sfnt.Units // ascender and descender
	MaxAdvance      sfnt.Units // maximum advance width value in 'hmtx' table
	LineGap         sfnt.Units // typographic line gap
}

// Height returns the distance between ascender and descender.
func (m FontMetricsInfo) Height() sfnt.Units {
	return m.Ascent - m.Descent
}

// GlyphMetricsInfo contains horizontal metric information for a glyph.
type GlyphMetricsInfo struct {
	Advance sfnt.Units // advance width
	LSB     sfnt.Units // left side bearing
}
