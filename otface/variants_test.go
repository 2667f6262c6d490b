package otface

import (
	"slices"
	"testing"

	"github.com/npillmayer/mathfont/internal/fonttest"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var radicalVariants = []GlyphVariant{
	{GlyphID(fonttest.GlyphRadicalSize1), 1100},
	{GlyphID(fonttest.GlyphRadicalSize2), 1600},
	{GlyphID(fonttest.GlyphRadicalSize3), 2100},
	{GlyphID(fonttest.GlyphRadicalSize4), 2600},
}

func TestGlyphVariants(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.math")
	defer teardown()
	//
	face := openFace(t, fonttest.MiniMath())
	radical := face.GlyphIndex('√').MustUnwrap()
	seq := face.GlyphVariants(radical, TTB)
	require.Equal(t, 4, seq.Len())
	var drained []GlyphVariant
	for {
		v, ok := seq.Next()
		if !ok {
			break
		}
		drained = append(drained, v)
	}
	assert.Equal(t, radicalVariants, drained)
	assert.Equal(t, seq.Len(), len(drained))
	for range 3 {
		_, ok := seq.Next()
		assert.False(t, ok, "expected exhausted sequence to stay exhausted")
	}
	assert.Equal(t, 4, seq.Len())
	assert.Empty(t, seq.Remaining())
	// horizontal stretching of the radical is not supported by the font
	assert.Zero(t, face.GlyphVariants(radical, LTR).Len())
	arrow := face.GlyphIndex('→').MustUnwrap()
	assert.Equal(t, []GlyphVariant{
		{GlyphID(fonttest.GlyphArrow), 500},
		{GlyphID(fonttest.GlyphArrowWide), 1000},
	}, slices.Collect(face.GlyphVariants(arrow, RTL).All()))
}

func TestVariantsRemaining(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.math")
	defer teardown()
	//
	face := openFace(t, fonttest.MiniMath())
	radical := face.GlyphIndex('√').MustUnwrap()
	seq := face.GlyphVariants(radical, BTT)
	first, ok := seq.Next()
	require.True(t, ok)
	assert.Equal(t, radicalVariants[0], first)
	assert.Equal(t, radicalVariants[1:], seq.Remaining())
	_, ok = seq.Next()
	assert.False(t, ok)
	var none *VariantSequence
	assert.Zero(t, none.Len())
	_, ok = none.Next()
	assert.False(t, ok)
}

func TestGlyphAssembly(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.math")
	defer teardown()
	//
	face := openFace(t, fonttest.MiniMath())
	radical := face.GlyphIndex('√').MustUnwrap()
	assembly := face.GlyphAssembly(radical, TTB)
	require.Len(t, assembly.Parts, len(fonttest.MiniMathRadicalAssembly))
	assert.Zero(t, assembly.ItalicsCorrection)
	for i, p := range fonttest.MiniMathRadicalAssembly {
		assert.Equal(t, GlyphPart{
			Glyph:                GlyphID(p.Glyph),
			StartConnectorLength: int32(p.StartConnector),
			EndConnectorLength:   int32(p.EndConnector),
			FullAdvance:          int32(p.FullAdvance),
			Extender:             p.Extender,
		}, assembly.Parts[i])
	}
	assert.True(t, assembly.Parts[1].Extender)
	bracket := face.GlyphAssembly(face.GlyphIndex('[').MustUnwrap(), TTB)
	assert.Len(t, bracket.Parts, 3)
	assert.Equal(t, int32(15), bracket.ItalicsCorrection)
	a := face.GlyphAssembly(face.GlyphIndex('a').MustUnwrap(), TTB)
	assert.Empty(t, a.Parts)
	assert.Zero(t, a.ItalicsCorrection)
	assert.Empty(t, face.GlyphAssembly(radical, LTR).Parts)
}

func TestMaterialize(t *testing.T) {
	data := []string{"bottom", "extender", "top"}
	var calls, probes int
	fetch := func(start int, buf []string) int {
		calls++
		if len(buf) == 0 {
			probes++
		}
		assert.LessOrEqual(t, len(buf), 1)
		copy(buf, data[min(start, len(data)):])
		return len(data)
	}
	assert.Equal(t, data, materialize[string](fetch))
	assert.Equal(t, 1, probes)
	assert.Equal(t, len(data)+1, calls)
	empty := materialize[int](func(int, []int) int { return 0 })
	assert.Empty(t, empty)
}
