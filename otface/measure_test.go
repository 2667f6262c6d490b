package otface

import (
	"testing"

	"github.com/npillmayer/mathfont/internal/fonttest"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

func TestMeasureEmpty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.math")
	defer teardown()
	//
	face := openFace(t, fonttest.MiniMath())
	for _, dir := range []Direction{LTR, RTL, TTB, BTT} {
		run := face.Measure("", dir)
		assert.Zero(t, run.Width, dir)
		assert.Zero(t, run.Height, dir)
		assert.Empty(t, run.Glyphs, dir)
	}
}

func TestMeasureText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.math")
	defer teardown()
	//
	face := openFace(t, fonttest.MiniMath())
	run := face.Measure("Test", LTR)
	require.Len(t, run.Glyphs, 4)
	assert.Equal(t, int32(600+450+380+300), run.Width)
	assert.Zero(t, run.Height)
	assert.Equal(t, GlyphID(fonttest.GlyphT), run.Glyphs[0].Glyph)
	assert.Equal(t, int32(600), run.Glyphs[0].XAdvance)
	rtl := face.Measure("Test", RTL)
	require.Len(t, rtl.Glyphs, 4)
	assert.Equal(t, run.Width, rtl.Width)
	assert.Equal(t, GlyphID(fonttest.GlyphT), rtl.Glyphs[3].Glyph, "expected glyphs in visual order")
	//
	text := openFace(t, goregular.TTF)
	assert.Equal(t, int32(1251+1139+1024+579), text.Measure("Test", LTR).Width)
}
