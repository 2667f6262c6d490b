package ot

// MathTable gives access to the OpenType MATH table, holding font-wide
// constants for math layout, per-glyph positioning information and data for
// building stretchy glyphs.
//
// Sub-tables which could not be decoded are void. Clients will get zero
// results for queries to a void sub-table, never an error.
type MathTable struct {
	tableBase
	MajorVersion uint16
	MinorVersion uint16
	Constants    MathConstants
	GlyphInfo    MathGlyphInfo
	Variants     MathVariants
}

func newMathTable(tag Tag, b binarySegm, offset, size uint32) *MathTable {
	t := &MathTable{}
	t.bind(t, tag, b, offset, size)
	return t
}

// HasData reports whether the table carries usable MATH data. Version 0 of
// the table is not defined and treated as absent.
func (t *MathTable) HasData() bool {
	return t != nil && t.MajorVersion != 0
}

// --- Math constants --------------------------------------------------------

// MathConstant identifies one entry of the MathConstants table.
// Constants are numbered in the order of the OpenType specification.
type MathConstant int

// All constants of the MathConstants table.
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
	MathConstantCount int = iota
)

var mathConstantNames = [...]string{
	"ScriptPercentScaleDown", "ScriptScriptPercentScaleDown",
	"DelimitedSubFormulaMinHeight", "DisplayOperatorMinHeight", "MathLeading",
	"AxisHeight", "AccentBaseHeight", "FlattenedAccentBaseHeight",
	"SubscriptShiftDown", "SubscriptTopMax", "SubscriptBaselineDropMin",
	"SuperscriptShiftUp", "SuperscriptShiftUpCramped", "SuperscriptBottomMin",
	"SuperscriptBaselineDropMax", "SubSuperscriptGapMin",
	"SuperscriptBottomMaxWithSubscript", "SpaceAfterScript", "UpperLimitGapMin",
	"UpperLimitBaselineRiseMin", "LowerLimitGapMin", "LowerLimitBaselineDropMin",
	"StackTopShiftUp", "StackTopDisplayStyleShiftUp", "StackBottomShiftDown",
	"StackBottomDisplayStyleShiftDown", "StackGapMin", "StackDisplayStyleGapMin",
	"StretchStackTopShiftUp", "StretchStackBottomShiftDown",
	"StretchStackGapAboveMin", "StretchStackGapBelowMin",
	"FractionNumeratorShiftUp", "FractionNumeratorDisplayStyleShiftUp",
	"FractionDenominatorShiftDown", "FractionDenominatorDisplayStyleShiftDown",
	"FractionNumeratorGapMin", "FractionNumDisplayStyleGapMin",
	"FractionRuleThickness", "FractionDenominatorGapMin",
	"FractionDenomDisplayStyleGapMin", "SkewedFractionHorizontalGap",
	"SkewedFractionVerticalGap", "OverbarVerticalGap", "OverbarRuleThickness",
	"OverbarExtraAscender", "UnderbarVerticalGap", "UnderbarRuleThickness",
	"UnderbarExtraDescender", "RadicalVerticalGap",
	"RadicalDisplayStyleVerticalGap", "RadicalRuleThickness",
	"RadicalExtraAscender", "RadicalKernBeforeDegree", "RadicalKernAfterDegree",
	"RadicalDegreeBottomRaisePercent",
}

func (c MathConstant) String() string {
	if c < 0 || int(c) >= MathConstantCount {
		return "MathConstant(?)"
	}
	return mathConstantNames[c]
}

// Layout of the MathConstants table: two int16 percentages, two UFWORD
// heights, 51 MathValueRecords and a trailing int16 percentage.
const (
	mathConstantsSize    = 214
	firstMathValueRecord = int(MathLeading)
	lastMathValueRecord  = int(RadicalKernAfterDegree)
)

// MathConstants is the table of font-wide math layout constants.
type MathConstants struct {
	data binarySegm
}

// IsVoid reports whether the constants table is missing or damaged.
func (mc MathConstants) IsVoid() bool {
	return len(mc.data) < mathConstantsSize
}

// Get returns the value of a constant in design units, or as a percentage
// for the three percentage constants. A void table or an invalid constant
// yield 0.
func (mc MathConstants) Get(c MathConstant) int32 {
	if mc.IsVoid() || c < 0 || int(c) >= MathConstantCount {
		return 0
	}
	switch {
	case c == ScriptPercentScaleDown || c == ScriptScriptPercentScaleDown:
		v, _ := mc.data.i16(2 * int(c))
		return int32(v)
	case c == DelimitedSubFormulaMinHeight || c == DisplayOperatorMinHeight:
		v, _ := mc.data.u16(2 * int(c))
		return int32(v)
	case int(c) >= firstMathValueRecord && int(c) <= lastMathValueRecord:
		v, _ := mc.data.i16(8 + 4*(int(c)-firstMathValueRecord))
		return int32(v)
	}
	v, _ := mc.data.i16(mathConstantsSize - 2) // RadicalDegreeBottomRaisePercent
	return int32(v)
}

// --- Glyph info ------------------------------------------------------------

// MathGlyphInfo holds per-glyph positioning information.
type MathGlyphInfo struct {
	ItalicsCorrection   MathValueTable
	TopAccentAttachment MathValueTable
	ExtendedShapes      Coverage
	KernInfo            MathKernInfo
}

// MathValueTable is a coverage table plus one MathValueRecord per covered
// glyph. It is the layout of MathItalicsCorrectionInfo and
// MathTopAccentAttachment.
type MathValueTable struct {
	Coverage Coverage
	values   array
}

// IsVoid reports whether the table is missing or damaged.
func (t MathValueTable) IsVoid() bool {
	return t.Coverage.IsVoid()
}

// Len returns the number of value records.
func (t MathValueTable) Len() int {
	return t.values.Len()
}

// Lookup returns the value for glyph g, if g is covered.
// Device table adjustments are not applied, values are in design units.
func (t MathValueTable) Lookup(g GlyphIndex) (int16, bool) {
	inx, ok := t.Coverage.Match(g)
	if !ok || inx >= t.values.Len() {
		return 0, false
	}
	v, err := t.values.Get(inx).i16(0)
	return v, err == nil
}

// MathKernCorner selects one of the four corners of a glyph.
type MathKernCorner int

// The four corners, in the order of MathKernInfoRecords.
const (
	TopRight MathKernCorner = iota
	TopLeft
	BottomRight
	BottomLeft
)

func (c MathKernCorner) String() string {
	switch c {
	case TopRight:
		return "TopRight"
	case TopLeft:
		return "TopLeft"
	case BottomRight:
		return "BottomRight"
	case BottomLeft:
		return "BottomLeft"
	}
	return "MathKernCorner(?)"
}

// MathKernInfo links covered glyphs to a MathKern table per corner.
type MathKernInfo struct {
	Coverage Coverage
	records  array // MathKernInfoRecords, 4 × Offset16
	base     binarySegm
}

// IsVoid reports whether the table is missing or damaged.
func (ki MathKernInfo) IsVoid() bool {
	return ki.Coverage.IsVoid()
}

// Len returns the number of glyphs with kern information.
func (ki MathKernInfo) Len() int {
	return ki.records.Len()
}

// Kern returns the kern table for glyph g at a corner, if present.
func (ki MathKernInfo) Kern(g GlyphIndex, corner MathKernCorner) (MathKern, bool) {
	if corner < TopRight || corner > BottomLeft {
		return MathKern{}, false
	}
	inx, ok := ki.Coverage.Match(g)
	if !ok || inx >= ki.records.Len() {
		return MathKern{}, false
	}
	mk, err := ki.kernAt(inx, corner)
	if err != nil {
		return MathKern{}, false
	}
	return mk, !mk.kerns.loc.isEmpty() // NULL links yield an empty kern table
}

func (ki MathKernInfo) kernAt(inx int, corner MathKernCorner) (MathKern, error) {
	link, err := parseLink16(ki.records.Get(inx), 2*int(corner), ki.base, "MathKern")
	if err != nil || link.IsNull() {
		return MathKern{}, err
	}
	b, err := link.Jump()
	if err != nil {
		return MathKern{}, err
	}
	return parseMathKern(b)
}

// MathKern is a piecewise function from correction heights to kern values.
// For n heights there are n+1 kern values.
type MathKern struct {
	heights array
	kerns   array
}

// HeightCount returns the number of correction heights.
func (mk MathKern) HeightCount() int {
	return mk.heights.Len()
}

// Value returns the kern value for a correction height h. The kern at index
// i is chosen such that height[i-1] ≤ h < height[i].
func (mk MathKern) Value(h int32) int32 {
	lo, hi := 0, mk.heights.Len()
	for lo < hi { // upper bound: first height > h
		mid := lo + (hi-lo)/2
		v, _ := mk.heights.Get(mid).i16(0)
		if int32(v) <= h {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	k, _ := mk.kerns.Get(lo).i16(0)
	return int32(k)
}

// --- Variants --------------------------------------------------------------

// MathVariants holds the data for building stretchy glyphs, separately for
// the vertical and the horizontal direction.
type MathVariants struct {
	MinConnectorOverlap uint16
	vertCoverage        Coverage
	horizCoverage       Coverage
	vertConstructions   array // Offset16 to MathGlyphConstruction
	horizConstructions  array
	base                binarySegm
}

// IsVoid reports whether the table is missing or damaged.
func (mv MathVariants) IsVoid() bool {
	return mv.base == nil
}

// Len returns the number of glyph constructions for a direction.
func (mv MathVariants) Len(vertical bool) int {
	if vertical {
		return mv.vertConstructions.Len()
	}
	return mv.horizConstructions.Len()
}

// Construction returns the glyph construction for g in one direction.
func (mv MathVariants) Construction(g GlyphIndex, vertical bool) (MathGlyphConstruction, bool) {
	cov, constructions := mv.horizCoverage, mv.horizConstructions
	if vertical {
		cov, constructions = mv.vertCoverage, mv.vertConstructions
	}
	inx, ok := cov.Match(g)
	if !ok || inx >= constructions.Len() {
		return MathGlyphConstruction{}, false
	}
	c, err := mv.constructionAt(constructions, inx)
	if err != nil {
		return MathGlyphConstruction{}, false
	}
	return c, true
}

func (mv MathVariants) constructionAt(constructions array, inx int) (MathGlyphConstruction, error) {
	link, err := parseLink16(constructions.Get(inx), 0, mv.base, "MathGlyphConstruction")
	if err != nil {
		return MathGlyphConstruction{}, err
	}
	if link.IsNull() {
		return MathGlyphConstruction{}, errFontFormat("NULL link to MathGlyphConstruction")
	}
	b, err := link.Jump()
	if err != nil {
		return MathGlyphConstruction{}, err
	}
	return parseMathGlyphConstruction(b)
}

// MathGlyphConstruction lists the pre-built size variants of a glyph and
// optionally a recipe for assembling it from parts.
type MathGlyphConstruction struct {
	variants array // MathGlyphVariantRecords, 4 bytes each
	assembly GlyphAssemblyTable
	hasParts bool
}

// MathGlyphVariantRecord is a pre-built variant glyph with its advance
// measurement in the direction of stretching.
type MathGlyphVariantRecord struct {
	Glyph              GlyphIndex
	AdvanceMeasurement uint16
}

// VariantCount returns the number of size variants.
func (c MathGlyphConstruction) VariantCount() int {
	return c.variants.Len()
}

// Variant returns size variant i.
func (c MathGlyphConstruction) Variant(i int) (MathGlyphVariantRecord, bool) {
	rec := c.variants.Get(i)
	if rec.Size() < 4 {
		return MathGlyphVariantRecord{}, false
	}
	return MathGlyphVariantRecord{
		Glyph:              GlyphIndex(rec.U16(0)),
		AdvanceMeasurement: rec.U16(2),
	}, true
}

// Assembly returns the glyph assembly, if the construction has one.
func (c MathGlyphConstruction) Assembly() (GlyphAssemblyTable, bool) {
	return c.assembly, c.hasParts
}

// GlyphAssemblyTable describes how to build a stretchy glyph from parts.
type GlyphAssemblyTable struct {
	ItalicsCorrection int16
	parts             array // GlyphPartRecords, 10 bytes each
}

// PartCount returns the number of parts.
func (a GlyphAssemblyTable) PartCount() int {
	return a.parts.Len()
}

// Part returns part i. Parts are ordered from bottom to top for vertical
// constructions and from left to right for horizontal ones.
func (a GlyphAssemblyTable) Part(i int) (GlyphPartRecord, bool) {
	rec := a.parts.Get(i)
	if rec.Size() < 10 {
		return GlyphPartRecord{}, false
	}
	return GlyphPartRecord{
		Glyph:                GlyphIndex(rec.U16(0)),
		StartConnectorLength: rec.U16(2),
		EndConnectorLength:   rec.U16(4),
		FullAdvance:          rec.U16(6),
		PartFlags:            rec.U16(8),
	}, true
}

// GlyphPartRecord is a single part of a glyph assembly.
type GlyphPartRecord struct {
	Glyph                GlyphIndex
	StartConnectorLength uint16
	EndConnectorLength   uint16
	FullAdvance          uint16
	PartFlags            uint16
}

// fExtender marks a part which may be repeated.
const fExtender = 0x0001

// IsExtender reports whether the part may be repeated.
func (p GlyphPartRecord) IsExtender() bool {
	return p.PartFlags&fExtender != 0
}

func (b binarySegm) isEmpty() bool {
	return len(b) == 0
}
