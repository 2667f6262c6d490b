package fonttest

// Glyph indices of the MiniMath test font.
const (
	GlyphNotdef uint16 = iota
	GlyphA
	GlyphT
	Glypha
	Glyphc
	Glyphe
	Glyphs
	Glypht
	GlyphBracket       // '['
	GlyphRadical       // U+221A
	GlyphRadicalSize1  // variants of the radical …
	GlyphRadicalSize2  //
	GlyphRadicalSize3  //
	GlyphRadicalSize4  // … up to here
	GlyphRadicalBottom // parts of the radical assembly
	GlyphRadicalExt
	GlyphRadicalTop
	GlyphArrow     // U+2192
	GlyphArrowWide // horizontal variant of the arrow
	MiniMathGlyphCount int = iota
)

// MiniMath metrics.
const (
	MiniMathUpem      = 1000
	MiniMathAscender  = 768
	MiniMathDescender = -256
	MiniMathFamily    = "MiniMath"
)

// MiniMathConstants holds the MathConstants of MiniMath, in OpenType order.
// The values are those of STIX Two Math.
var MiniMathConstants = [56]int16{
	70, 55, 1325, 1800, 150, 258, 480, 656, 210, 368,
	160, 360, 252, 120, 230, 150, 380, 40, 135, 300,
	135, 670, 470, 780, 385, 690, 150, 300, 800, 590,
	68, 68, 585, 640, 585, 640, 68, 150, 68, 68,
	150, 350, 68, 175, 68, 68, 175, 68, 68, 85,
	170, 68, 68, 65, -335, 55,
}

// MiniMathMinConnectorOverlap is the minimum connector overlap of MiniMath.
const MiniMathMinConnectorOverlap = 100

// MiniMathRadicalAssembly are the parts of the vertical radical, bottom to top.
var MiniMathRadicalAssembly = []Part{
	{Glyph: GlyphRadicalBottom, StartConnector: 0, EndConnector: 192, FullAdvance: 1829},
	{Glyph: GlyphRadicalExt, StartConnector: 624, EndConnector: 624, FullAdvance: 625, Extender: true},
	{Glyph: GlyphRadicalTop, StartConnector: 528, EndConnector: 0, FullAdvance: 616},
}

// MiniMathBracketAssembly are the parts of the vertical bracket.
var MiniMathBracketAssembly = []Part{
	{Glyph: GlyphRadicalBottom, StartConnector: 0, EndConnector: 150, FullAdvance: 700},
	{Glyph: GlyphRadicalExt, StartConnector: 150, EndConnector: 150, FullAdvance: 400, Extender: true},
	{Glyph: GlyphRadicalTop, StartConnector: 150, EndConnector: 0, FullAdvance: 700},
}

// MiniMathFont returns the description of MiniMath, a tiny math font.
// Its shapes are nonsense, but its MATH table exercises every sub-table:
//
//   - italics correction for 'A' (43) and 'T' (25)
//   - top accent attachment for 'A' (350) and 'a' (238)
//   - extended shapes '[' and '√'
//   - kerning for 'A' at the top right corner: 0 below height 250,
//     -17 below 350, -63 above; and a constant -30 for 'T' at the
//     bottom right corner
//   - vertical variants and an assembly for '√', an assembly only for '['
//   - horizontal variants for '→'
func MiniMathFont() Font {
	glyphs := make([]Glyph, MiniMathGlyphCount)
	glyphs[GlyphNotdef] = Glyph{Name: ".notdef", Advance: 500}
	glyphs[GlyphA] = Glyph{Name: "A", Rune: 'A', Advance: 700}
	glyphs[GlyphT] = Glyph{Name: "T", Rune: 'T', Advance: 600}
	glyphs[Glypha] = Glyph{Name: "a", Rune: 'a', Advance: 480}
	glyphs[Glyphc] = Glyph{Name: "c", Rune: 'c', Advance: 440}
	glyphs[Glyphe] = Glyph{Name: "e", Rune: 'e', Advance: 450}
	glyphs[Glyphs] = Glyph{Name: "s", Rune: 's', Advance: 380}
	glyphs[Glypht] = Glyph{Name: "t", Rune: 't', Advance: 300}
	glyphs[GlyphBracket] = Glyph{Name: "bracketleft", Rune: '[', Advance: 330}
	glyphs[GlyphRadical] = Glyph{Name: "radical", Rune: '√', Advance: 550}
	for g := GlyphRadicalSize1; g <= GlyphRadicalTop; g++ {
		glyphs[g] = Glyph{Name: "radical.part", Advance: 500}
	}
	glyphs[GlyphArrow] = Glyph{Name: "arrowright", Rune: '→', Advance: 500}
	glyphs[GlyphArrowWide] = Glyph{Name: "arrowright.wide", Advance: 1000}
	return Font{
		FamilyName: MiniMathFamily,
		UnitsPerEm: MiniMathUpem,
		Ascender:   MiniMathAscender,
		Descender:  MiniMathDescender,
		Glyphs:     glyphs,
		Math: &Math{
			Constants:           MiniMathConstants,
			MinConnectorOverlap: MiniMathMinConnectorOverlap,
			ItalicsCorrection:   map[uint16]int16{GlyphA: 43, GlyphT: 25},
			TopAccentAttachment: map[uint16]int16{GlyphA: 350, Glypha: 238},
			ExtendedShapes:      []uint16{GlyphBracket, GlyphRadical},
			Kerns: map[uint16][4]*Kern{
				GlyphA: {0: {Heights: []int16{250, 350}, Values: []int16{0, -17, -63}}},
				GlyphT: {2: {Values: []int16{-30}}},
			},
			Vertical: map[uint16]Construction{
				GlyphBracket: {Assembly: &Assembly{ItalicsCorrection: 15, Parts: MiniMathBracketAssembly}},
				GlyphRadical: {
					Variants: []Variant{
						{GlyphRadicalSize1, 1100}, {GlyphRadicalSize2, 1600},
						{GlyphRadicalSize3, 2100}, {GlyphRadicalSize4, 2600},
					},
					Assembly: &Assembly{Parts: MiniMathRadicalAssembly},
				},
			},
			Horizontal: map[uint16]Construction{
				GlyphArrow: {Variants: []Variant{{GlyphArrow, 500}, {GlyphArrowWide, 1000}}},
			},
		},
	}
}

// MiniMath returns the binary of the MiniMath test font.
func MiniMath() []byte {
	return MiniMathFont().Build()
}

// MiniText returns the binary of a small text font without a MATH table.
func MiniText() []byte {
	return Font{
		FamilyName: "MiniText",
		UnitsPerEm: 2048,
		Ascender:   1900,
		Descender:  -500,
		LineGap:    67,
		Glyphs: []Glyph{
			{Name: ".notdef", Advance: 1000},
			{Name: "c", Rune: 'c', Advance: 1100},
			{Name: "d", Rune: 'd', Advance: 1200},
			{Name: "e", Rune: 'e', Advance: 1150},
			{Name: "o", Rune: 'o', Advance: 1180},
		},
	}.Build()
}
