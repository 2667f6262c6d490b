package otquery

import (
	"github.com/npillmayer/mathfont/ot"
	"golang.org/x/image/font/sfnt"
)

// --- Font Information -------------------------------------------------

// FontMetrics retrieves selected metrics of a font.
//
// Ascent, descent and line gap are taken from table 'hhea', unless
// table 'OS/2' asks for its typographic metrics to be used. Fonts lacking
// both receive the typographic values of 'OS/2' as a fallback.
func FontMetrics(otf *ot.Font) FontMetricsInfo {
	metrics := FontMetricsInfo{}
	if otf == nil {
		return metrics
	}
	if hhea := otf.HHea; hhea != nil {
		metrics.Ascent = sfnt.Units(hhea.Ascender)
		metrics.Descent = sfnt.Units(hhea.Descender)
		metrics.LineGap = sfnt.Units(hhea.LineGap)
		metrics.MaxAdvance = sfnt.Units(hhea.AdvanceWidthMax)
	}
	if os2 := otf.OS2; os2 != nil {
		if os2.UseTypoMetrics() || (metrics.Ascent == 0 && metrics.Descent == 0) {
			tracer().Debugf("using typographic metrics of OS/2")
			metrics.Ascent = sfnt.Units(os2.TypoAscender)
			metrics.Descent = sfnt.Units(os2.TypoDescender)
			metrics.LineGap = sfnt.Units(os2.TypoLineGap)
		}
	}
	metrics.UnitsPerEm = sfnt.Units(otf.UnitsPerEm())
	return metrics
}

// --- Glyph Routines --------------------------------------------------------

// GlyphMetrics retrieves horizontal metrics for a given glyph.
func GlyphMetrics(otf *ot.Font, gid ot.GlyphIndex) GlyphMetricsInfo {
	metrics := GlyphMetricsInfo{}
	if otf == nil {
		return metrics
	}
	if aw, lsb, ok := otf.HMtx.HMetrics(gid); ok {
		metrics.Advance = sfnt.Units(aw)
		metrics.LSB = sfnt.Units(lsb)
	}
	return metrics
}

// GlyphAdvance returns the horizontal advance of a glyph in design units,
// or 0 for glyph indices outside the font.
func GlyphAdvance(otf *ot.Font, gid ot.GlyphIndex) int32 {
	return int32(GlyphMetrics(otf, gid).Advance)
}
