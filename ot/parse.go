package ot

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"math/bits"
)

// See https://learn.microsoft.com/en-us/typography/opentype/spec/ for the
// table layouts.

// Limits for counts read from font data. Larger counts are treated as
// damage.
const (
	MaxFontCount      = 1024 // faces in a collection
	MaxKernHeightsCnt = 1024 // correction heights of a MathKern table
)

// Checked arithmetic for sizes and offsets read from font data. Operands
// are non-negative.

func checkedMulInt(a, b int) (int, error) {
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	if a < 0 || b < 0 || hi != 0 || lo > math.MaxInt {
		return 0, fmt.Errorf("integer overflow: %d * %d", a, b)
	}
	return int(lo), nil
}

func checkedAddInt(a, b int) (int, error) {
	if a < 0 || b < 0 || a > math.MaxInt-b {
		return 0, fmt.Errorf("integer overflow: %d + %d", a, b)
	}
	return a + b, nil
}

func checkedAddUint32(a, b uint32) (uint32, error) {
	sum, carry := bits.Add32(a, b, 0)
	if carry != 0 {
		return 0, fmt.Errorf("integer overflow: %d + %d", a, b)
	}
	return sum, nil
}

// errFontFormat produces user level errors for font parsing.
func errFontFormat(message string) error {
	return fmt.Errorf("OpenType font format: %s", message)
}

const ttcfTag = 0x74746366 // 'ttcf'

// ---------------------------------------------------------------------------

// Parse parses an OpenType font from a byte slice. For font collections
// the first face is parsed, see ParseFace.
//
// An ot.Font needs ongoing access to the fonts byte-data after the Parse function returns.
// Its elements are assumed immutable while the ot.Font remains in use.
func Parse(font []byte, opts ...ParseOption) (*Font, error) {
	return ParseFace(font, 0, opts...)
}

// NumFaces returns the number of faces contained in a font binary.
// Single fonts report 1, collections (*.ttc, *.otc) report the number of
// fonts given in their TTC header.
func NumFaces(font []byte) (int, error) {
	src := binarySegm(font)
	tag, err := src.u32(0)
	if err != nil {
		return 0, errFontFormat("font header too small")
	}
	if tag != ttcfTag {
		return 1, nil
	}
	n, err := src.u32(8)
	if err != nil {
		return 0, errFontFormat("TTC header too small")
	}
	if n == 0 || n > MaxFontCount {
		return 0, errFontFormat(fmt.Sprintf("TTC font count out of range: %d", n))
	}
	return int(n), nil
}

// ParseFace parses the face at a given index from an OpenType font or
// font collection. For single fonts, only index 0 is valid.
//
// The TTC header of a collection is
//
//	Tag     ttcTag         'ttcf'
//	uint16  majorVersion   1 or 2
//	uint16  minorVersion   0
//	uint32  numFonts
//	Offset32 tableDirectoryOffsets[numFonts]
//
// with the offsets counted from the beginning of the file.
func ParseFace(font []byte, index int, opts ...ParseOption) (*Font, error) {
	n, err := NumFaces(font)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= n {
		return nil, errFontFormat(fmt.Sprintf("face index %d out of range [0…%d)", index, n))
	}
	src := binarySegm(font)
	dirOffset := 0
	if u32(font) == ttcfTag {
		off, err := src.u32(12 + 4*index)
		if err != nil {
			return nil, errFontFormat("TTC table directory offsets")
		}
		dirOffset = int(off)
		tracer().Debugf("collection face %d has table directory at %d", index, dirOffset)
	}
	if dirOffset >= len(font) {
		return nil, errFontFormat("table directory offset out of bounds")
	}
	// https://www.microsoft.com/typography/otspec/otff.htm: Offset Table is 12 bytes.
	r := bytes.NewReader(font[dirOffset:])
	h := FontHeader{}
	if err := binary.Read(r, binary.BigEndian, &h); err != nil {
		return nil, err
	}
	tracer().Debugf("header = %v, tag = %x|%s", h, h.FontType, Tag(h.FontType).String())

	// Create error collector for accumulating errors during parsing
	ec := &errorCollector{}

	if !(h.FontType == 0x4f54544f || // OTTO
		h.FontType == 0x00010000 || // TrueType
		h.FontType == 0x74727565) { // true
		return nil, errFontFormat(fmt.Sprintf("font type not supported: %x", h.FontType))
	}
	otf := &Font{Header: &h, FaceIndex: index, tables: make(map[Tag]Table)}
	// "The Offset Table is followed immediately by the Table Record entries …
	// sorted in ascending order by tag", 16 bytes each.
	tableRecordsSize, err := checkedMulInt(16, int(h.TableCount))
	if err != nil {
		return nil, errFontFormat(fmt.Sprintf("table count too large: %v", err))
	}
	recordsStart, err := checkedAddInt(dirOffset, 12)
	if err != nil {
		return nil, errFontFormat(fmt.Sprintf("table directory offset: %v", err))
	}
	buf, err := src.view(recordsStart, tableRecordsSize)
	if err != nil {
		return nil, errFontFormat("table record entries")
	}
	for b, prevTag := buf, Tag(0); len(b) > 0; b = b[16:] {
		tag := MakeTag(b)
		if tag < prevTag {
			return nil, errFontFormat("table order")
		}
		prevTag = tag
		off, size := u32(b[8:12]), u32(b[12:16])
		if off&3 != 0 { // ignore checksums, but "all tables must begin on four byte boundries".
			return nil, errFontFormat("invalid table offset")
		}
		// Validate table bounds before slicing to prevent panic
		tableEnd, err := checkedAddUint32(off, size)
		if err != nil {
			return nil, errFontFormat(fmt.Sprintf("table %s: size calculation overflow: %v", tag, err))
		}
		if off > uint32(len(src)) || tableEnd > uint32(len(src)) {
			return nil, errFontFormat(fmt.Sprintf("table %s: bounds [%d:%d] exceed font size %d",
				tag, off, tableEnd, len(src)))
		}
		otf.tables[tag], err = parseTable(tag, src[off:tableEnd], off, size, ec)
		if err != nil {
			return nil, err
		}
		if otf.tables[tag] == nil {
			delete(otf.tables, tag)
		}
	}
	if err := extractMetricsInfo(otf, ec, opts); err != nil {
		return nil, err
	}
	if ec.hasCriticalErrors() {
		return nil, errFontFormat("font has critical errors")
	}
	ec.moveTo(otf)
	return otf, nil
}

// RequiredTables are the tables without which no metric or MATH query can be
// answered.
var RequiredTables = []string{
	"head", "maxp",
}

// Consistency check and shortcuts to metric tables and MATH.
func extractMetricsInfo(otf *Font, ec *errorCollector, opts []ParseOption) error {
	for _, tag := range RequiredTables {
		if otf.tables[T(tag)] == nil {
			ec.addError(T(tag), "Missing", "missing required table", SeverityCritical, 0)
			return errFontFormat("missing required table " + tag)
		}
	}
	numGlyphs := otf.NumGlyphs()
	if t := otf.tables[T("hhea")]; t != nil {
		otf.HHea = t.Self().AsHHea()
	}
	if t := otf.tables[T("OS/2")]; t != nil {
		otf.OS2 = t.Self().AsOS2()
	}
	if t := otf.tables[T("MATH")]; t != nil {
		otf.Math = t.Self().AsMath()
	}
	if t := otf.tables[T("hmtx")]; t != nil && otf.HHea != nil {
		hmtx := t.Self().AsHMtx()
		if err := hmtx.setCounts(numGlyphs, otf.HHea.NumberOfHMetrics); err != nil {
			ec.addError(T("hmtx"), "HMetrics", err.Error(), SeverityMajor, 0)
		} else {
			otf.HMtx = hmtx
		}
	}
	if otf.HHea == nil || otf.HMtx == nil {
		if hasOption(opts, IsTestfont) {
			ec.addWarning(T("hhea"), "font without horizontal metrics", 0)
		} else {
			ec.addError(T("hmtx"), "Missing", "no usable horizontal metrics", SeverityMajor, 0)
		}
	}
	return nil
}

func hasOption(opts []ParseOption, opt ParseOption) bool {
	for _, o := range opts {
		if o == opt {
			return true
		}
	}
	return false
}

func parseTable(t Tag, b binarySegm, offset, size uint32, ec *errorCollector) (Table, error) {
	switch t {
	case T("head"):
		return parseHead(t, b, offset, size, ec)
	case T("hhea"):
		return parseHHea(t, b, offset, size, ec)
	case T("hmtx"):
		return parseHMtx(t, b, offset, size, ec)
	case T("maxp"):
		return parseMaxP(t, b, offset, size, ec)
	case T("OS/2"):
		return parseOS2(t, b, offset, size, ec)
	case T("MATH"):
		return parseMath(t, b, offset, size, ec)
	}
	tracer().Debugf("font contains table (%s), will not be interpreted", t)
	return newTable(t, b, offset, size), nil
}

// --- Head table ------------------------------------------------------------

func parseHead(tag Tag, b binarySegm, offset, size uint32, ec *errorCollector) (Table, error) {
	if size < 54 {
		ec.addError(tag, "Size", fmt.Sprintf("head table too small: %d bytes (need 54)", size), SeverityCritical, offset)
		return nil, errFontFormat("size of head table")
	}
	t := &HeadTable{}
	t.bind(t, tag, b, offset, size)
	t.Flags, _ = b.u16(16)
	t.UnitsPerEm, _ = b.u16(18)
	if t.UnitsPerEm < 16 || t.UnitsPerEm > 16384 {
		ec.addWarning(tag, fmt.Sprintf("unitsPerEm %d outside of 16…16384", t.UnitsPerEm), offset+18)
	}
	return t, nil
}

// --- MaxP table ------------------------------------------------------------

// This table establishes the memory requirements for this font. Fonts with CFF data
// must use Version 0.5 of this table, specifying only the numGlyphs field. Fonts
// with TrueType outlines must use Version 1.0 of this table, where all data is required.
func parseMaxP(tag Tag, b binarySegm, offset, size uint32, ec *errorCollector) (Table, error) {
	if size < 6 {
		ec.addError(tag, "Size", fmt.Sprintf("maxp table too small: %d bytes", size), SeverityCritical, offset)
		return nil, nil
	}
	t := &MaxPTable{}
	t.bind(t, tag, b, offset, size)
	n, _ := b.u16(4)
	t.NumGlyphs = int(n)
	return t, nil
}

// --- HHea table ------------------------------------------------------------

// The horizontal header contains information for horizontal layout, i.e.
// the font-wide ascender, descender and line gap, and the number of long
// metrics in table hmtx.
func parseHHea(tag Tag, b binarySegm, offset, size uint32, ec *errorCollector) (Table, error) {
	if size == 0 {
		return nil, nil
	}
	tracer().Debugf("HHea table has size %d", size)
	if size < 36 {
		ec.addError(tag, "Size", fmt.Sprintf("hhea table too small: %d bytes (need 36)", size), SeverityMajor, offset)
		return nil, nil
	}
	t := &HHeaTable{}
	t.bind(t, tag, b, offset, size)
	t.Ascender, _ = b.i16(4)
	t.Descender, _ = b.i16(6)
	t.LineGap, _ = b.i16(8)
	t.AdvanceWidthMax, _ = b.u16(10)
	n, _ := b.u16(34)
	t.NumberOfHMetrics = int(n)
	return t, nil
}

// --- HMtx table ------------------------------------------------------------

// Dependencies (taken from Apple Developer page about TrueType):
// The value of the numOfLongHorMetrics field is found in the 'hhea' (Horizontal Header)
// table. Fonts that lack an 'hhea' table must not have an 'hmtx' table.
func parseHMtx(tag Tag, b binarySegm, offset, size uint32, ec *errorCollector) (Table, error) {
	if size == 0 {
		return nil, nil
	}
	t := &HMtxTable{}
	t.bind(t, tag, b, offset, size)
	return t, nil
}

// --- OS/2 table ------------------------------------------------------------

// Only fields up to usWinDescent are interpreted; these are present in every
// version of the table (version 0 tables from Apple may be shorter, in which
// case the table stays generic).
func parseOS2(tag Tag, b binarySegm, offset, size uint32, ec *errorCollector) (Table, error) {
	if size < 78 {
		ec.addWarning(tag, fmt.Sprintf("OS/2 table too small to interpret: %d bytes", size), offset)
		return newTable(tag, b, offset, size), nil
	}
	t := &OS2Table{}
	t.bind(t, tag, b, offset, size)
	t.Version, _ = b.u16(0)
	t.XAvgCharWidth, _ = b.i16(2)
	t.FsSelection, _ = b.u16(62)
	t.TypoAscender, _ = b.i16(68)
	t.TypoDescender, _ = b.i16(70)
	t.TypoLineGap, _ = b.i16(72)
	t.WinAscent, _ = b.u16(74)
	t.WinDescent, _ = b.u16(76)
	return t, nil
}
