package otquery

import (
	"github.com/npillmayer/mathfont/ot"
)

// --- MATH accessors --------------------------------------------------------

func mathTable(otf *ot.Font) *ot.MathTable {
	if otf == nil || !otf.Math.HasData() {
		return nil
	}
	return otf.Math
}

// HasMathData reports whether a font carries a usable MATH table.
func HasMathData(otf *ot.Font) bool {
	return mathTable(otf) != nil
}

// MathConstantValue returns a math constant of a font, in design units or
// as a percentage for the scale-down and raise percentages.
// Fonts without MATH data yield 0.
func MathConstantValue(otf *ot.Font, c ot.MathConstant) int32 {
	math := mathTable(otf)
	if math == nil {
		return 0
	}
	return math.Constants.Get(c)
}

// MathItalicsCorrection returns the italics correction of a glyph, or 0.
func MathItalicsCorrection(otf *ot.Font, g ot.GlyphIndex) int32 {
	math := mathTable(otf)
	if math == nil {
		return 0
	}
	v, _ := math.GlyphInfo.ItalicsCorrection.Lookup(g)
	return int32(v)
}

// MathTopAccentAttachment returns the horizontal position for attaching
// accents to a glyph. Glyphs without an attachment record get the center of
// their advance width. Fonts without MATH data yield 0.
func MathTopAccentAttachment(otf *ot.Font, g ot.GlyphIndex) int32 {
	math := mathTable(otf)
	if math == nil {
		return 0
	}
	if v, ok := math.GlyphInfo.TopAccentAttachment.Lookup(g); ok {
		return int32(v)
	}
	return GlyphAdvance(otf, g) / 2
}

// IsMathExtendedShape reports whether a glyph is an extended shape, i.e.
// a glyph which should be treated as a base for sub- and superscripts
// with its full height.
func IsMathExtendedShape(otf *ot.Font, g ot.GlyphIndex) bool {
	math := mathTable(otf)
	if math == nil {
		return false
	}
	return math.GlyphInfo.ExtendedShapes.Contains(g)
}

// MathKerning returns the kern value of a glyph at a corner, for a given
// correction height. Glyphs without a kern table for the corner yield 0.
func MathKerning(otf *ot.Font, g ot.GlyphIndex, corner ot.MathKernCorner, height int32) int32 {
	math := mathTable(otf)
	if math == nil {
		return 0
	}
	kern, ok := math.GlyphInfo.KernInfo.Kern(g, corner)
	if !ok {
		return 0
	}
	v := kern.Value(height)
	tracer().Debugf("math kern of glyph %d at %s, height %d = %d", g, corner, height, v)
	return v
}

// MathMinConnectorOverlap returns the minimum overlap of connecting glyphs
// during glyph construction. The font stores one value for both directions.
func MathMinConnectorOverlap(otf *ot.Font, vertical bool) int32 {
	math := mathTable(otf)
	if math == nil {
		return 0
	}
	return int32(math.Variants.MinConnectorOverlap)
}

// MathGlyphVariant is a pre-built size variant of a glyph.
type MathGlyphVariant struct {
	Glyph   ot.GlyphIndex
	Advance int32 // in the direction of stretching
}

// MathGlyphVariants fetches size variants of glyph g for a direction of
// stretching. Variants from index start on are written into buf, as many
// as fit. The return value is the total number of variants, independent of
// start and of the size of buf; calling with an empty buf is a probe.
func MathGlyphVariants(otf *ot.Font, g ot.GlyphIndex, vertical bool, start int, buf []MathGlyphVariant) int {
	math := mathTable(otf)
	if math == nil {
		return 0
	}
	c, ok := math.Variants.Construction(g, vertical)
	if !ok {
		return 0
	}
	total := c.VariantCount()
	for i, j := max(start, 0), 0; i < total && j < len(buf); i, j = i+1, j+1 {
		rec, _ := c.Variant(i)
		buf[j] = MathGlyphVariant{Glyph: rec.Glyph, Advance: int32(rec.AdvanceMeasurement)}
	}
	return total
}

// MathGlyphPart is a part of a glyph assembly.
type MathGlyphPart struct {
	Glyph                ot.GlyphIndex
	StartConnectorLength int32
	EndConnectorLength   int32
	FullAdvance          int32
	Extender             bool
}

// MathGlyphAssembly fetches the parts for assembling glyph g in a direction
// of stretching, following the protocol of MathGlyphVariants. If italics is
// not nil, it receives the italics correction of the assembly.
func MathGlyphAssembly(otf *ot.Font, g ot.GlyphIndex, vertical bool, start int, buf []MathGlyphPart, italics *int32) int {
	if italics != nil {
		*italics = 0
	}
	math := mathTable(otf)
	if math == nil {
		return 0
	}
	c, ok := math.Variants.Construction(g, vertical)
	if !ok {
		return 0
	}
	assembly, ok := c.Assembly()
	if !ok {
		return 0
	}
	if italics != nil {
		*italics = int32(assembly.ItalicsCorrection)
	}
	total := assembly.PartCount()
	for i, j := max(start, 0), 0; i < total && j < len(buf); i, j = i+1, j+1 {
		p, _ := assembly.Part(i)
		buf[j] = MathGlyphPart{
			Glyph:                p.Glyph,
			StartConnectorLength: int32(p.StartConnectorLength),
			EndConnectorLength:   int32(p.EndConnectorLength),
			FullAdvance:          int32(p.FullAdvance),
			Extender:             p.IsExtender(),
		}
	}
	return total
}

// --- MATH summary ----------------------------------------------------------

// MathTableInfo summarizes the MATH table of a font.
type MathTableInfo struct {
	HasData             bool
	MajorVersion        uint16
	MinorVersion        uint16
	HasConstants        bool
	ItalicsCorrections  int // number of glyphs with italics correction
	TopAccents          int // number of glyphs with top accent attachment
	ExtendedShapes      int
	KernedGlyphs        int
	VerticalGlyphs      int // glyphs with vertical constructions
	HorizontalGlyphs    int // glyphs with horizontal constructions
	MinConnectorOverlap int32
	Errors              []ot.FontError // damaged sub-tables
}

// MathInfo summarizes the MATH table of a font.
func MathInfo(otf *ot.Font) MathTableInfo {
	info := MathTableInfo{}
	if otf == nil {
		return info
	}
	for _, err := range otf.Errors() {
		if err.Table == ot.T("MATH") {
			info.Errors = append(info.Errors, err)
		}
	}
	math := mathTable(otf)
	if math == nil {
		return info
	}
	info.HasData = true
	info.MajorVersion, info.MinorVersion = math.MajorVersion, math.MinorVersion
	info.HasConstants = !math.Constants.IsVoid()
	info.ItalicsCorrections = math.GlyphInfo.ItalicsCorrection.Len()
	info.TopAccents = math.GlyphInfo.TopAccentAttachment.Len()
	info.ExtendedShapes = math.GlyphInfo.ExtendedShapes.Len()
	info.KernedGlyphs = math.GlyphInfo.KernInfo.Len()
	info.VerticalGlyphs = math.Variants.Len(true)
	info.HorizontalGlyphs = math.Variants.Len(false)
	info.MinConnectorOverlap = int32(math.Variants.MinConnectorOverlap)
	return info
}
