package otquery

import (
	"testing"

	"github.com/npillmayer/mathfont/internal/fonttest"
	"github.com/npillmayer/mathfont/ot"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

func parse(t *testing.T, font []byte) *ot.Font {
	t.Helper()
	otf, err := ot.Parse(font)
	require.NoError(t, err)
	return otf
}

func TestMathConstantValue(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.opentype.query")
	defer teardown()
	//
	otf := parse(t, fonttest.MiniMath())
	assert.True(t, HasMathData(otf))
	assert.Equal(t, int32(258), MathConstantValue(otf, ot.AxisHeight))
	assert.Equal(t, int32(70), MathConstantValue(otf, ot.ScriptPercentScaleDown))
	assert.Equal(t, int32(68), MathConstantValue(otf, ot.FractionRuleThickness))
	text := parse(t, goregular.TTF)
	assert.False(t, HasMathData(text))
	for c := ot.ScriptPercentScaleDown; int(c) < ot.MathConstantCount; c++ {
		assert.Zero(t, MathConstantValue(text, c), "expected %s to be 0 for Go Regular", c)
	}
}

func TestMathGlyphInfoQueries(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.opentype.query")
	defer teardown()
	//
	otf := parse(t, fonttest.MiniMath())
	A, T := ot.GlyphIndex(fonttest.GlyphA), ot.GlyphIndex(fonttest.GlyphT)
	assert.Equal(t, int32(43), MathItalicsCorrection(otf, A))
	assert.Equal(t, int32(25), MathItalicsCorrection(otf, T))
	assert.Zero(t, MathItalicsCorrection(otf, ot.GlyphIndex(fonttest.Glyphe)))
	assert.Equal(t, int32(350), MathTopAccentAttachment(otf, A))
	assert.Equal(t, int32(225), MathTopAccentAttachment(otf, ot.GlyphIndex(fonttest.Glyphe)),
		"expected glyphs without attachment to use half of their advance")
	assert.True(t, IsMathExtendedShape(otf, ot.GlyphIndex(fonttest.GlyphBracket)))
	assert.False(t, IsMathExtendedShape(otf, A))
	assert.Equal(t, int32(-17), MathKerning(otf, A, ot.TopRight, 300))
	assert.Equal(t, int32(-63), MathKerning(otf, A, ot.TopRight, 350))
	assert.Zero(t, MathKerning(otf, A, ot.BottomLeft, 300))
	assert.Equal(t, int32(-30), MathKerning(otf, T, ot.BottomRight, -1000))
	assert.Equal(t, int32(fonttest.MiniMathMinConnectorOverlap), MathMinConnectorOverlap(otf, true))
	assert.Equal(t, int32(fonttest.MiniMathMinConnectorOverlap), MathMinConnectorOverlap(otf, false))
}

func TestMathQueriesWithoutMath(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.opentype.query")
	defer teardown()
	//
	for _, otf := range []*ot.Font{nil, parse(t, goregular.TTF), parse(t, fonttest.MiniText())} {
		assert.Zero(t, MathItalicsCorrection(otf, 1))
		assert.Zero(t, MathTopAccentAttachment(otf, 1))
		assert.False(t, IsMathExtendedShape(otf, 1))
		assert.Zero(t, MathKerning(otf, 1, ot.TopRight, 100))
		assert.Zero(t, MathMinConnectorOverlap(otf, true))
		buf := make([]MathGlyphVariant, 4)
		assert.Zero(t, MathGlyphVariants(otf, 1, true, 0, buf))
		var italics int32 = 99
		assert.Zero(t, MathGlyphAssembly(otf, 1, true, 0, make([]MathGlyphPart, 4), &italics))
		assert.Zero(t, italics)
		assert.False(t, MathInfo(otf).HasData)
	}
}

func TestMathGlyphVariants(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.opentype.query")
	defer teardown()
	//
	otf := parse(t, fonttest.MiniMath())
	radical := ot.GlyphIndex(fonttest.GlyphRadical)
	n := MathGlyphVariants(otf, radical, true, 0, nil)
	require.Equal(t, 4, n, "expected probe to report 4 variants")
	buf := make([]MathGlyphVariant, 3)
	n = MathGlyphVariants(otf, radical, true, 0, buf)
	assert.Equal(t, 4, n)
	assert.Equal(t, MathGlyphVariant{ot.GlyphIndex(fonttest.GlyphRadicalSize1), 1100}, buf[0])
	assert.Equal(t, MathGlyphVariant{ot.GlyphIndex(fonttest.GlyphRadicalSize3), 2100}, buf[2])
	buf = make([]MathGlyphVariant, 3)
	n = MathGlyphVariants(otf, radical, true, 2, buf)
	assert.Equal(t, 4, n)
	assert.Equal(t, ot.GlyphIndex(fonttest.GlyphRadicalSize3), buf[0].Glyph)
	assert.Equal(t, int32(2600), buf[1].Advance)
	assert.Equal(t, MathGlyphVariant{}, buf[2], "expected entries beyond the variants to be untouched")
	assert.Equal(t, 4, MathGlyphVariants(otf, radical, true, 10, buf))
	assert.Zero(t, MathGlyphVariants(otf, radical, false, 0, buf))
	arrow := ot.GlyphIndex(fonttest.GlyphArrow)
	assert.Equal(t, 2, MathGlyphVariants(otf, arrow, false, 0, buf))
	assert.Equal(t, int32(1000), buf[1].Advance)
}

func TestMathGlyphAssembly(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.opentype.query")
	defer teardown()
	//
	otf := parse(t, fonttest.MiniMath())
	var italics int32
	radical := ot.GlyphIndex(fonttest.GlyphRadical)
	require.Equal(t, 3, MathGlyphAssembly(otf, radical, true, 0, nil, &italics))
	parts := make([]MathGlyphPart, 3)
	MathGlyphAssembly(otf, radical, true, 0, parts, nil)
	for i, want := range fonttest.MiniMathRadicalAssembly {
		assert.Equal(t, MathGlyphPart{
			Glyph:                ot.GlyphIndex(want.Glyph),
			StartConnectorLength: int32(want.StartConnector),
			EndConnectorLength:   int32(want.EndConnector),
			FullAdvance:          int32(want.FullAdvance),
			Extender:             want.Extender,
		}, parts[i])
	}
	bracket := ot.GlyphIndex(fonttest.GlyphBracket)
	parts = make([]MathGlyphPart, 1)
	assert.Equal(t, 3, MathGlyphAssembly(otf, bracket, true, 1, parts, &italics))
	assert.Equal(t, int32(15), italics)
	assert.True(t, parts[0].Extender)
	assert.Zero(t, MathGlyphAssembly(otf, ot.GlyphIndex(fonttest.GlyphArrow), false, 0, parts, &italics))
	assert.Zero(t, italics)
}

func TestMathInfo(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.opentype.query")
	defer teardown()
	//
	info := MathInfo(parse(t, fonttest.MiniMath()))
	assert.True(t, info.HasData)
	assert.True(t, info.HasConstants)
	assert.Equal(t, uint16(1), info.MajorVersion)
	assert.Equal(t, 2, info.ItalicsCorrections)
	assert.Equal(t, 2, info.TopAccents)
	assert.Equal(t, 2, info.ExtendedShapes)
	assert.Equal(t, 2, info.KernedGlyphs)
	assert.Equal(t, 2, info.VerticalGlyphs)
	assert.Equal(t, 1, info.HorizontalGlyphs)
	assert.Equal(t, int32(100), info.MinConnectorOverlap)
	assert.Empty(t, info.Errors)
}
