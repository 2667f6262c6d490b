package otface

import (
	"testing"

	"github.com/npillmayer/mathfont/internal/fonttest"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/text/unicode/bidi"
)

type rawFont struct {
	data  []byte
	index int
}

func (rf rawFont) FontData() []byte { return rf.data }
func (rf rawFont) FaceIndex() int   { return rf.index }

func openFace(t *testing.T, data []byte) *Face {
	t.Helper()
	face, err := FromRasterFont(rawFont{data: data})
	require.NoError(t, err)
	t.Cleanup(face.Close)
	return face
}

func TestFaceMetrics(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.math")
	defer teardown()
	//
	face := openFace(t, fonttest.MiniMath())
	assert.Equal(t, 0, face.Index())
	assert.Equal(t, fonttest.MiniMathUpem, face.Upem())
	assert.Equal(t, fonttest.MiniMathGlyphCount, face.GlyphCount())
	assert.Equal(t, int32(fonttest.MiniMathAscender), face.Ascent())
	assert.Equal(t, int32(fonttest.MiniMathDescender), face.Descent())
	assert.True(t, face.HasOTMathTable())
}

func TestGlyphIndex(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.math")
	defer teardown()
	//
	face := openFace(t, fonttest.MiniMath())
	gid, ok := face.GlyphIndex('c').Unwrap()
	require.True(t, ok)
	assert.Equal(t, GlyphID(fonttest.Glyphc), gid)
	assert.Equal(t, GlyphID(fonttest.GlyphRadical), face.GlyphIndex('√').Or(0))
	assert.True(t, face.GlyphIndex(909909).IsNone())
	assert.True(t, face.GlyphIndex('z').IsNone())
	//
	text := openFace(t, goregular.TTF)
	assert.Equal(t, GlyphID(70), text.GlyphIndex('c').Or(0))
	assert.True(t, text.GlyphIndex(909909).IsNone())
}

func TestFaceWithoutMath(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.math")
	defer teardown()
	//
	for _, font := range []struct {
		name string
		data []byte
		upem int
	}{
		{"MiniText", fonttest.MiniText(), 2048},
		{"Go Regular", goregular.TTF, 2048},
	} {
		face := openFace(t, font.data)
		assert.Equal(t, font.upem, face.Upem(), font.name)
		assert.False(t, face.HasOTMathTable(), font.name)
		for c := ScriptPercentScaleDown; int(c) < MathConstantCount; c++ {
			assert.Zero(t, face.MathConstant(c), "%s: expected %s to be 0", font.name, c)
		}
		c := face.GlyphIndex('c').MustUnwrap()
		assert.Zero(t, face.ItalicsCorrection(c))
		assert.Zero(t, face.TopAccentAttachment(c))
		assert.False(t, face.IsExtendedShape(c))
		assert.Zero(t, face.GlyphKerning(c, 100, TopRight))
		assert.Zero(t, face.GlyphVariants(c, TTB).Len())
		assembly := face.GlyphAssembly(c, TTB)
		assert.Empty(t, assembly.Parts)
		assert.Zero(t, assembly.ItalicsCorrection)
	}
}

func TestTextFontExtents(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.math")
	defer teardown()
	//
	face := openFace(t, fonttest.MiniText())
	assert.Equal(t, int32(1900), face.Ascent())
	assert.Equal(t, int32(-500), face.Descent())
	text := openFace(t, goregular.TTF)
	assert.Equal(t, int32(1935), text.Ascent())
	assert.Equal(t, int32(-432), text.Descent())
}

func TestFaceOfCollection(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.math")
	defer teardown()
	//
	ttc := fonttest.Collection(fonttest.MiniText(), fonttest.MiniMath())
	face, err := FromRasterFont(rawFont{data: ttc, index: 1})
	require.NoError(t, err)
	defer face.Close()
	assert.Equal(t, 1, face.Index())
	assert.Equal(t, fonttest.MiniMathUpem, face.Upem())
	assert.True(t, face.HasOTMathTable())
	first, err := FromRasterFont(rawFont{data: ttc, index: 0})
	require.NoError(t, err)
	defer first.Close()
	assert.False(t, first.HasOTMathTable())
	_, err = FromRasterFont(rawFont{data: ttc, index: 2})
	assert.Error(t, err)
	_, err = FromRasterFont(rawFont{data: fonttest.MiniMath(), index: -1})
	assert.Error(t, err)
	_, err = FromRasterFont(rawFont{data: []byte("not a font at all")})
	assert.Error(t, err)
}

func TestFaceContract(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.math")
	defer teardown()
	//
	assert.Panics(t, func() { FromRasterFont(nil) })
	assert.Panics(t, func() { FromPlatformFont(PlatformFont{Name: "nowhere"}) })
	face, err := FromRasterFont(rawFont{data: fonttest.MiniMath()})
	require.NoError(t, err)
	assert.False(t, face.Closed())
	face.Close()
	assert.True(t, face.Closed())
	assert.NotPanics(t, face.Close)
	assert.Panics(t, func() { face.Upem() })
	assert.Panics(t, func() { face.MathConstant(AxisHeight) })
	assert.Panics(t, func() { face.Measure("x", LTR) })
}

func TestFacesAreIndependent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.math")
	defer teardown()
	//
	path := fonttest.WriteFile(t, "MiniMath.ttf", fonttest.MiniMath())
	pf, err := LookupPlatformFont(path)
	require.NoError(t, err)
	assert.Equal(t, path, pf.Path)
	face1, err := FromPlatformFont(pf)
	require.NoError(t, err)
	face2, err := FromPlatformFont(pf)
	require.NoError(t, err)
	defer face2.Close()
	require.NotSame(t, face1, face2)
	radical := face1.GlyphIndex('√').MustUnwrap()
	assert.Equal(t, face1.MathConstant(AxisHeight), face2.MathConstant(AxisHeight))
	assert.Equal(t, face1.GlyphAssembly(radical, TTB), face2.GlyphAssembly(radical, TTB))
	assert.Equal(t, face1.Measure("Test", LTR), face2.Measure("Test", LTR))
	face1.Close()
	assert.Equal(t, int32(258), face2.MathConstant(AxisHeight))
	assert.Equal(t, 4, face2.GlyphVariants(radical, TTB).Len())
}

func TestLookupMissingPlatformFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.math")
	defer teardown()
	//
	_, err := LookupPlatformFont("No-Such-Font-Anywhere-4711.otf")
	assert.Error(t, err)
}

func TestDirection(t *testing.T) {
	for _, s := range []string{"ltr", "RTL", " ttb", "Btt"} {
		_, err := ParseDirection(s)
		assert.NoError(t, err, s)
	}
	_, err := ParseDirection("up")
	assert.Error(t, err)
	d, _ := ParseDirection("btt")
	assert.Equal(t, BTT, d)
	assert.True(t, d.IsVertical())
	assert.False(t, RTL.IsVertical())
	assert.Equal(t, "TTB", TTB.String())
	assert.Equal(t, RTL, DirectionFromBidi(bidi.RightToLeft))
	assert.Equal(t, LTR, DirectionFromBidi(bidi.Mixed))
}
