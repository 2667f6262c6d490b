package main

import (
	"strings"
	"testing"

	"github.com/npillmayer/mathfont/internal/fontload"
	"github.com/npillmayer/mathfont/internal/fonttest"
	"github.com/npillmayer/mathfont/otface"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.cli")
	defer teardown()
	//
	ops, err := parseCommand("glyph:√  variants:√:ttb kern:A:300")
	require.NoError(t, err)
	require.Len(t, ops, 3)
	assert.Equal(t, Op{code: GLYPH, arg: "√"}, ops[0])
	assert.Equal(t, Op{code: VARIANTS, arg: "√", format: "ttb"}, ops[1])
	assert.Equal(t, Op{code: KERN, arg: "A", format: "300"}, ops[2])
	ops, err = parseCommand("frobnicate")
	require.NoError(t, err)
	assert.Equal(t, HELP, ops[0].code)
	ops, err = parseCommand("QUIT info")
	require.NoError(t, err)
	assert.Equal(t, []Op{{code: QUIT}}, ops)
	ops, err = parseCommand("measure:a:b:c")
	require.NoError(t, err)
	assert.Equal(t, "b:c", ops[0].format)
	_, err = parseCommand(strings.Repeat("info ", maxOps+1))
	assert.Error(t, err)
}

func TestParseGlyph(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.cli")
	defer teardown()
	//
	sf, err := fontload.ParseScalableFont(fonttest.MiniMath(), 0)
	require.NoError(t, err)
	face, err := otface.FromRasterFont(sf)
	require.NoError(t, err)
	defer face.Close()
	for arg, gid := range map[string]uint16{
		"#14":    fonttest.GlyphRadicalBottom,
		"U+221A": fonttest.GlyphRadical,
		"u+221a": fonttest.GlyphRadical,
		"√":      fonttest.GlyphRadical,
		"A":      fonttest.GlyphA,
	} {
		g, err := parseGlyph(face, arg)
		assert.NoError(t, err, arg)
		assert.Equal(t, otface.GlyphID(gid), g, arg)
	}
	for _, arg := range []string{"", "#", "#x", "U+ZZ", "AB", "z"} {
		_, err := parseGlyph(face, arg)
		assert.Error(t, err, arg)
	}
}

func TestTextDirection(t *testing.T) {
	assert.Equal(t, otface.LTR, textDirection("Test"))
	assert.Equal(t, otface.RTL, textDirection("שלום"))
	assert.Equal(t, otface.RTL, textDirection("مرحبا"))
	assert.Equal(t, otface.LTR, textDirection(""))
	d, err := parseDirection("", otface.TTB)
	assert.NoError(t, err)
	assert.Equal(t, otface.TTB, d)
	_, err = parseDirection("sideways", otface.TTB)
	assert.Error(t, err)
}
