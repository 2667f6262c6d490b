package otquery

import (
	"testing"

	"github.com/npillmayer/mathfont/internal/fonttest"
	"github.com/npillmayer/mathfont/ot"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/suite"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
)

// --- Test Suite Preparation ------------------------------------------------

type InfoTestEnviron struct {
	suite.Suite
	otf  *ot.Font // MiniMath
	text *ot.Font // Go Regular
}

// listen for 'go test' command --> run test methods
func TestInfoFunctions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.opentype.query")
	defer teardown()
	suite.Run(t, new(InfoTestEnviron))
}

// run once, before test suite methods
func (env *InfoTestEnviron) SetupSuite() {
	env.T().Log("Setting up test suite")
	tracing.Select("font.opentype").SetTraceLevel(tracing.LevelError)
	var err error
	env.otf, err = ot.Parse(fonttest.MiniMath())
	env.Require().NoError(err, "cannot parse MiniMath")
	env.text, err = ot.Parse(goregular.TTF)
	env.Require().NoError(err, "cannot parse Go Regular")
	tracing.Select("font.opentype").SetTraceLevel(tracing.LevelInfo)
}

// run once, after test suite methods
func (env *InfoTestEnviron) TearDownSuite() {
	env.T().Log("Tearing down test suite")
}

// --- Tests -----------------------------------------------------------------

func (env *InfoTestEnviron) TestFontTypeInfo() {
	env.Equal("TrueType", FontType(env.otf), "expected font type of test font to be TrueType")
	env.Equal("TrueType", FontType(env.text), "expected font type of Go Regular to be TrueType")
	env.Equal("unknown", FontType(nil))
}

func (env *InfoTestEnviron) TestGeneralInfo() {
	info := NameInfo(env.otf)
	env.T().Logf("info = %v", info)
	fam, ok := info["family"]
	env.Require().True(ok, "font familiy identifier not found in font info")
	env.Equal(fonttest.MiniMathFamily, fam, "expected font family name 'MiniMath'")
	env.Equal("MiniMath-Regular", info["postscript"])
	_, ok = info["version"]
	env.False(ok, "MiniMath has no version string")
	family, subfamily := FamilyName(env.otf)
	env.Equal(fonttest.MiniMathFamily, family)
	env.Equal("Regular", subfamily)
	family, _ = FamilyName(env.text)
	env.Equal("Go", family, "expected Go Regular to belong to family 'Go'")
}

func (env *InfoTestEnviron) TestNamesRange() {
	count := 0
	for id, name := range NamesRange(env.otf) {
		env.NotEmpty(name, "name %d is empty", id)
		count++
	}
	env.Equal(4, count, "expected 4 names in MiniMath")
	for range NamesRange(nil) {
		env.Fail("expected no names for nil font")
	}
}

func (env *InfoTestEnviron) TestHeadInfo() {
	h, ok := HeadInfo(env.otf)
	env.Require().True(ok, "expected to decode table 'head'")

	headTable := env.otf.Table(ot.T("head")).Self().AsHead()
	env.Require().NotNil(headTable, "expected parsed HeadTable")

	env.Equal(headTable.Flags, h.Flags, "expected matching Flags")
	env.Equal(headTable.UnitsPerEm, h.UnitsPerEm, "expected matching UnitsPerEm")
	env.Equal(int16(0), h.IndexToLocFormat, "MiniMath uses short loca offsets")
	env.Equal(uint32(0x5F0F3CF5), h.MagicNumber, "expected OpenType head magic number")
	env.InDelta(1.0, h.Revision(), 0.0001, "expected font revision 1.0")
	env.Equal(1904, h.CreatedTime().Year(), "MiniMath has a zero timestamp")
}

func (env *InfoTestEnviron) TestMaxPInfo() {
	m, ok := MaxPInfo(env.otf)
	env.Require().True(ok, "expected to decode table 'maxp'")

	maxpTable := env.otf.Table(ot.T("maxp")).Self().AsMaxP()
	env.Require().NotNil(maxpTable, "expected parsed MaxPTable")

	env.Equal(uint16(maxpTable.NumGlyphs), m.NumGlyphs, "expected matching numGlyphs")
	env.Equal(uint32(0x00010000), m.VersionFixed, "expected maxp version 1.0")
	env.True(m.HasExtendedProfile)
	env.Equal(uint16(2), m.MaxZones)
	env.Equal("1.0", m.Version())
	env.Equal("0.5", MaxPTableInfo{VersionFixed: 0x00005000}.Version())
}

func (env *InfoTestEnviron) TestFontMetrics() {
	m := FontMetrics(env.otf)
	env.Equal(sfnt.Units(fonttest.MiniMathUpem), m.UnitsPerEm)
	env.Equal(sfnt.Units(fonttest.MiniMathAscender), m.Ascent)
	env.Equal(sfnt.Units(fonttest.MiniMathDescender), m.Descent)
	env.Equal(sfnt.Units(1000), m.MaxAdvance)
	env.Equal(sfnt.Units(768+256), m.Height())
	//
	m = FontMetrics(env.text)
	env.Equal(sfnt.Units(2048), m.UnitsPerEm)
	env.Equal(sfnt.Units(1935), m.Ascent, "expected ascent of Go Regular from hhea")
	env.Equal(sfnt.Units(-432), m.Descent, "expected descent of Go Regular from hhea")
	env.Equal(sfnt.Units(2240), m.MaxAdvance)
	env.Equal(FontMetricsInfo{}, FontMetrics(nil))
}

func (env *InfoTestEnviron) TestGlyphMetrics() {
	env.Equal(int32(700), GlyphAdvance(env.otf, ot.GlyphIndex(fonttest.GlyphA)))
	env.Equal(int32(1000), GlyphAdvance(env.otf, ot.GlyphIndex(fonttest.GlyphArrowWide)))
	env.Equal(int32(0), GlyphAdvance(env.otf, ot.GlyphIndex(fonttest.MiniMathGlyphCount)),
		"expected glyph beyond glyph count to have no advance")
	env.Equal(GlyphMetricsInfo{}, GlyphMetrics(nil, 1))
	env.Equal(int32(1251), GlyphAdvance(env.text, 55), "expected advance of 'T' in Go Regular")
}
