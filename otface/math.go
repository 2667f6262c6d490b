package otface

import (
	"fmt"

	"github.com/npillmayer/mathfont/ot"
	"github.com/npillmayer/mathfont/otquery"
)

// ItalicsCorrection returns the italics correction of a glyph.
func (f *Face) ItalicsCorrection(g GlyphID) int32 {
	otf := f.otf()
	gid, ok := glyph(g)
	if !ok {
		return 0
	}
	return otquery.MathItalicsCorrection(otf, gid)
}

// TopAccentAttachment returns the horizontal position to attach top accents
// to a glyph. Glyphs of a math font without an attachment record are
// attached at the center of their advance.
func (f *Face) TopAccentAttachment(g GlyphID) int32 {
	otf := f.otf()
	gid, ok := glyph(g)
	if !ok {
		return 0
	}
	return otquery.MathTopAccentAttachment(otf, gid)
}

// IsExtendedShape reports whether a glyph is an extended shape.
func (f *Face) IsExtendedShape(g GlyphID) bool {
	otf := f.otf()
	gid, ok := glyph(g)
	if !ok {
		return false
	}
	return otquery.IsMathExtendedShape(otf, gid)
}

// GlyphKerning returns the kern value for a glyph at a corner, for a
// correction height. It is 0 if the font has no kern data for glyph and
// corner.
func (f *Face) GlyphKerning(g GlyphID, correctionHeight int32, corner KernCorner) int32 {
	otf := f.otf()
	gid, ok := glyph(g)
	if !ok {
		return 0
	}
	return otquery.MathKerning(otf, gid, corner.ot(), correctionHeight)
}

// MinConnectorOverlap returns the minimum overlap of connecting parts of a
// glyph assembly in direction dir.
func (f *Face) MinConnectorOverlap(dir Direction) int32 {
	return otquery.MathMinConnectorOverlap(f.otf(), dir.IsVertical())
}

// --- Math constants --------------------------------------------------------

// MathConstant identifies a font-wide math constant. There is one constant
// for each entry of the OpenType MathConstants table, in the order of that
// table, plus the minimum connector overlaps in both directions.
type MathConstant int

// Math constants.
const (
	ScriptPercentScaleDown MathConstant = iota
	ScriptScriptPercentScaleDown
	DelimitedSubFormulaMinHeight
	DisplayOperatorMinHeight
	MathLeading
	AxisHeight
	AccentBaseHeight
	FlattenedAccentBaseHeight
	SubscriptShiftDown
	SubscriptTopMax
	SubscriptBaselineDropMin
	SuperscriptShiftUp
	SuperscriptShiftUpCramped
	SuperscriptBottomMin
	SuperscriptBaselineDropMax
	SubSuperscriptGapMin
	SuperscriptBottomMaxWithSubscript
	SpaceAfterScript
	UpperLimitGapMin
	UpperLimitBaselineRiseMin
	LowerLimitGapMin
	LowerLimitBaselineDropMin
	StackTopShiftUp
	StackTopDisplayStyleShiftUp
	StackBottomShiftDown
	StackBottomDisplayStyleShiftDown
	StackGapMin
	StackDisplayStyleGapMin
	StretchStackTopShiftUp
	StretchStackBottomShiftDown
	StretchStackGapAboveMin
	StretchStackGapBelowMin
	FractionNumeratorShiftUp
	FractionNumeratorDisplayStyleShiftUp
	FractionDenominatorShiftDown
	FractionDenominatorDisplayStyleShiftDown
	FractionNumeratorGapMin
	FractionNumDisplayStyleGapMin
	FractionRuleThickness
	FractionDenominatorGapMin
	FractionDenomDisplayStyleGapMin
	SkewedFractionHorizontalGap
	SkewedFractionVerticalGap
	OverbarVerticalGap
	OverbarRuleThickness
	OverbarExtraAscender
	UnderbarVerticalGap
	UnderbarRuleThickness
	UnderbarExtraDescender
	RadicalVerticalGap
	RadicalDisplayStyleVerticalGap
	RadicalRuleThickness
	RadicalExtraAscender
	RadicalKernBeforeDegree
	RadicalKernAfterDegree
	RadicalDegreeBottomRaisePercent
	MinConnectorOverlapVertical
	MinConnectorOverlapHorizontal
	MathConstantCount int = iota
)

// engineConstant tells where to find a math constant: either in the
// MathConstants table, or as a minimum connector overlap of the
// MathVariants table.
type engineConstant struct {
	constant ot.MathConstant
	overlap  bool
	dir      Direction // direction of overlap
}

func table(c ot.MathConstant) engineConstant {
	return engineConstant{constant: c}
}

var mathConstants = [MathConstantCount]engineConstant{
	ScriptPercentScaleDown:                   table(ot.ScriptPercentScaleDown),
	ScriptScriptPercentScaleDown:             table(ot.ScriptScriptPercentScaleDown),
	DelimitedSubFormulaMinHeight:             table(ot.DelimitedSubFormulaMinHeight),
	DisplayOperatorMinHeight:                 table(ot.DisplayOperatorMinHeight),
	MathLeading:                              table(ot.MathLeading),
	AxisHeight:                               table(ot.AxisHeight),
	AccentBaseHeight:                         table(ot.AccentBaseHeight),
	FlattenedAccentBaseHeight:                table(ot.FlattenedAccentBaseHeight),
	SubscriptShiftDown:                       table(ot.SubscriptShiftDown),
	SubscriptTopMax:                          table(ot.SubscriptTopMax),
	SubscriptBaselineDropMin:                 table(ot.SubscriptBaselineDropMin),
	SuperscriptShiftUp:                       table(ot.SuperscriptShiftUp),
	SuperscriptShiftUpCramped:                table(ot.SuperscriptShiftUpCramped),
	SuperscriptBottomMin:                     table(ot.SuperscriptBottomMin),
	SuperscriptBaselineDropMax:               table(ot.SuperscriptBaselineDropMax),
	SubSuperscriptGapMin:                     table(ot.SubSuperscriptGapMin),
	SuperscriptBottomMaxWithSubscript:        table(ot.SuperscriptBottomMaxWithSubscript),
	SpaceAfterScript:                         table(ot.SpaceAfterScript),
	UpperLimitGapMin:                         table(ot.UpperLimitGapMin),
	UpperLimitBaselineRiseMin:                table(ot.UpperLimitBaselineRiseMin),
	LowerLimitGapMin:                         table(ot.LowerLimitGapMin),
	LowerLimitBaselineDropMin:                table(ot.LowerLimitBaselineDropMin),
	StackTopShiftUp:                          table(ot.StackTopShiftUp),
	StackTopDisplayStyleShiftUp:              table(ot.StackTopDisplayStyleShiftUp),
	StackBottomShiftDown:                     table(ot.StackBottomShiftDown),
	StackBottomDisplayStyleShiftDown:         table(ot.StackBottomDisplayStyleShiftDown),
	StackGapMin:                              table(ot.StackGapMin),
	StackDisplayStyleGapMin:                  table(ot.StackDisplayStyleGapMin),
	StretchStackTopShiftUp:                   table(ot.StretchStackTopShiftUp),
	StretchStackBottomShiftDown:              table(ot.StretchStackBottomShiftDown),
	StretchStackGapAboveMin:                  table(ot.StretchStackGapAboveMin),
	StretchStackGapBelowMin:                  table(ot.StretchStackGapBelowMin),
	FractionNumeratorShiftUp:                 table(ot.FractionNumeratorShiftUp),
	FractionNumeratorDisplayStyleShiftUp:     table(ot.FractionNumeratorDisplayStyleShiftUp),
	FractionDenominatorShiftDown:             table(ot.FractionDenominatorShiftDown),
	FractionDenominatorDisplayStyleShiftDown: table(ot.FractionDenominatorDisplayStyleShiftDown),
	FractionNumeratorGapMin:                  table(ot.FractionNumeratorGapMin),
	FractionNumDisplayStyleGapMin:            table(ot.FractionNumDisplayStyleGapMin),
	FractionRuleThickness:                    table(ot.FractionRuleThickness),
	FractionDenominatorGapMin:                table(ot.FractionDenominatorGapMin),
	FractionDenomDisplayStyleGapMin:          table(ot.FractionDenomDisplayStyleGapMin),
	SkewedFractionHorizontalGap:              table(ot.SkewedFractionHorizontalGap),
	SkewedFractionVerticalGap:                table(ot.SkewedFractionVerticalGap),
	OverbarVerticalGap:                       table(ot.OverbarVerticalGap),
	OverbarRuleThickness:                     table(ot.OverbarRuleThickness),
	OverbarExtraAscender:                     table(ot.OverbarExtraAscender),
	UnderbarVerticalGap:                      table(ot.UnderbarVerticalGap),
	UnderbarRuleThickness:                    table(ot.UnderbarRuleThickness),
	UnderbarExtraDescender:                   table(ot.UnderbarExtraDescender),
	RadicalVerticalGap:                       table(ot.RadicalVerticalGap),
	RadicalDisplayStyleVerticalGap:           table(ot.RadicalDisplayStyleVerticalGap),
	RadicalRuleThickness:                     table(ot.RadicalRuleThickness),
	RadicalExtraAscender:                     table(ot.RadicalExtraAscender),
	RadicalKernBeforeDegree:                  table(ot.RadicalKernBeforeDegree),
	RadicalKernAfterDegree:                   table(ot.RadicalKernAfterDegree),
	RadicalDegreeBottomRaisePercent:          table(ot.RadicalDegreeBottomRaisePercent),
	MinConnectorOverlapVertical:              {overlap: true, dir: TTB},
	MinConnectorOverlapHorizontal:            {overlap: true, dir: LTR},
}

func (c MathConstant) String() string {
	switch {
	case c == MinConnectorOverlapVertical:
		return "MinConnectorOverlapVertical"
	case c == MinConnectorOverlapHorizontal:
		return "MinConnectorOverlapHorizontal"
	case c >= 0 && int(c) < MathConstantCount:
		return mathConstants[c].constant.String()
	}
	return fmt.Sprintf("MathConstant(%d)", int(c))
}

// MathConstant returns a font-wide math constant. Percentages are returned
// as is, all other constants in design units. Faces without MATH data
// return 0 for every constant, as do unknown constants.
func (f *Face) MathConstant(c MathConstant) int32 {
	otf := f.otf()
	if c < 0 || int(c) >= MathConstantCount {
		return 0
	}
	code := mathConstants[c]
	if code.overlap {
		return otquery.MathMinConnectorOverlap(otf, code.dir.IsVertical())
	}
	return otquery.MathConstantValue(otf, code.constant)
}
