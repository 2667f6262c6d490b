package ot

import "fmt"

// Font is a parsed OpenType font face. It keeps every table of the face;
// tables needed for metrics and math layout are decoded, all others stay
// generic.
type Font struct {
	Header        *FontHeader
	FaceIndex     int // within a collection, 0 for single fonts
	tables        map[Tag]Table
	HHea          *HHeaTable
	HMtx          *HMtxTable
	OS2           *OS2Table
	Math          *MathTable // nil for fonts without math support
	parseErrors   []FontError
	parseWarnings []FontWarning
}

// ParseOption relaxes checks during parsing.
type ParseOption int

const (
	// IsTestfont accepts fonts without 'hhea' or 'hmtx'.
	IsTestfont ParseOption = iota
)

// FontHeader is the offset table of a face. FontType is 0x00010000 for
// TrueType outlines and 'OTTO' for CFF outlines.
type FontHeader struct {
	FontType   uint32
	TableCount uint16
}

// Table returns the table for a tag, or nil. Tags are case-sensitive:
//
//	math := otf.Table(ot.T("MATH")).Self().AsMath()
func (otf *Font) Table(tag Tag) Table {
	if t, ok := otf.tables[tag]; ok {
		return t
	}
	return nil
}

// TableTags lists the tags of all tables of the face, in no particular order.
func (otf *Font) TableTags() []Tag {
	tags := make([]Tag, 0, len(otf.tables))
	for tag := range otf.tables {
		tags = append(tags, tag)
	}
	return tags
}

// UnitsPerEm is the design grid size from 'head', 0 for a nil font.
func (otf *Font) UnitsPerEm() int {
	if head := tableOf[*HeadTable](otf, "head"); head != nil {
		return int(head.UnitsPerEm)
	}
	return 0
}

// NumGlyphs is the glyph count from 'maxp', 0 for a nil font.
func (otf *Font) NumGlyphs() int {
	if maxp := tableOf[*MaxPTable](otf, "maxp"); maxp != nil {
		return maxp.NumGlyphs
	}
	return 0
}

func tableOf[X Table](otf *Font, tag string) X {
	var zero X
	if otf == nil {
		return zero
	}
	t, _ := otf.tables[T(tag)].(X)
	return t
}

// GlyphIndex is a glyph index in a font.
type GlyphIndex uint16

// --- Tag -------------------------------------------------------------------

// Tag is a 4-byte OpenType identifier of a table, script, feature or
// similar, read as a big-endian uint32.
type Tag uint32

// MakeTag reads a tag from the first 4 bytes of b. Shorter input is padded
// with leading zeros.
//
//	MakeTag([]byte("MATH"))
func MakeTag(b []byte) Tag {
	var t [4]byte
	if len(b) > 4 {
		b = b[:4]
	}
	copy(t[4-len(b):], b)
	return Tag(u32(t[:]))
}

// T makes a tag from a string, padded with blanks or cut to 4 letters.
func T(t string) Tag {
	return Tag(u32([]byte((t + "    ")[:4])))
}

func (t Tag) String() string {
	return string([]byte{byte(t >> 24), byte(t >> 16), byte(t >> 8), byte(t)})
}

// --- Table -----------------------------------------------------------------

// Table is one of the tables of a font. Decoded tables are 'head', 'hhea',
// 'hmtx', 'maxp', 'OS/2' and 'MATH'; their concrete types are reached
// through Self.
type Table interface {
	Extent() (uint32, uint32) // offset and size within the font data
	Binary() []byte           // view into the font data, read-only
	Self() TableSelf
}

type genericTable struct {
	tableBase
}

func newTable(tag Tag, b binarySegm, offset, size uint32) *genericTable {
	t := &genericTable{}
	t.bind(t, tag, b, offset, size)
	return t
}

type tableBase struct {
	data   binarySegm
	name   Tag
	offset uint32
	length uint32
	self   Table // the concrete table embedding this base
}

// bind attaches a table to its bytes. self is the concrete table embedding
// tb.
func (tb *tableBase) bind(self Table, tag Tag, b binarySegm, offset, size uint32) {
	*tb = tableBase{data: b, name: tag, offset: offset, length: size, self: self}
}

func (tb *tableBase) Extent() (uint32, uint32) {
	return tb.offset, tb.length
}

func (tb *tableBase) Binary() []byte {
	return tb.data
}

func (tb *tableBase) Self() TableSelf {
	return TableSelf{tableBase: tb}
}

// TableSelf converts a table to its concrete flavour.
type TableSelf struct {
	tableBase *tableBase
}

// NameTag is the tag of the table.
func (tself TableSelf) NameTag() Tag {
	if tself.tableBase == nil {
		return 0
	}
	return tself.tableBase.name
}

func as[X Table](tself TableSelf) X {
	var zero X
	if tself.tableBase == nil {
		return zero
	}
	t, _ := tself.tableBase.self.(X)
	return t
}

func (tself TableSelf) AsHead() *HeadTable { return as[*HeadTable](tself) }
func (tself TableSelf) AsMaxP() *MaxPTable { return as[*MaxPTable](tself) }
func (tself TableSelf) AsHHea() *HHeaTable { return as[*HHeaTable](tself) }
func (tself TableSelf) AsHMtx() *HMtxTable { return as[*HMtxTable](tself) }
func (tself TableSelf) AsOS2() *OS2Table   { return as[*OS2Table](tself) }
func (tself TableSelf) AsMath() *MathTable { return as[*MathTable](tself) }

// --- Metric tables ---------------------------------------------------------

// HeadTable holds the font-wide fields of 'head' needed here. otquery.HeadInfo
// reads the rest.
type HeadTable struct {
	tableBase
	Flags      uint16
	UnitsPerEm uint16 // 16 … 16384
}

// MaxPTable holds the glyph count of 'maxp'.
type MaxPTable struct {
	tableBase
	NumGlyphs int
}

// HHeaTable holds the horizontal header.
type HHeaTable struct {
	tableBase
	Ascender         int16
	Descender        int16
	LineGap          int16
	AdvanceWidthMax  uint16
	NumberOfHMetrics int
}

// OS2Table holds the vertical metrics of 'OS/2', used as a fallback for
// font extents.
type OS2Table struct {
	tableBase
	Version       uint16
	XAvgCharWidth int16
	FsSelection   uint16
	TypoAscender  int16
	TypoDescender int16
	TypoLineGap   int16
	WinAscent     uint16
	WinDescent    uint16
}

// UseTypoMetrics reports fsSelection bit 7: typographic metrics take
// precedence over 'hhea'.
func (t *OS2Table) UseTypoMetrics() bool {
	return t != nil && t.FsSelection&(1<<7) != 0
}

// HMtxTable holds advance widths and left side bearings. The first
// NumberOfHMetrics glyphs have a (advance, lsb) pair; the remaining glyphs
// have an lsb only and share the last advance.
// Records are read on demand from the table data.
type HMtxTable struct {
	tableBase
	NumberOfHMetrics int
	numGlyphs        int
}

// setCounts checks that the table is large enough for the counts given by
// 'maxp' and 'hhea'.
func (t *HMtxTable) setCounts(numGlyphs, numberOfHMetrics int) error {
	if numberOfHMetrics < 0 || numberOfHMetrics > numGlyphs {
		return fmt.Errorf("invalid numberOfHMetrics %d (numGlyphs=%d)", numberOfHMetrics, numGlyphs)
	}
	need := 4*numberOfHMetrics + 2*(numGlyphs-numberOfHMetrics)
	if need > t.data.Size() {
		return fmt.Errorf("hmtx table too small: need %d bytes, have %d", need, t.data.Size())
	}
	t.NumberOfHMetrics, t.numGlyphs = numberOfHMetrics, numGlyphs
	return nil
}

// GlyphCount is the number of glyphs covered.
func (t *HMtxTable) GlyphCount() int {
	if t == nil {
		return 0
	}
	return t.numGlyphs
}

// HMetrics returns advance width and left side bearing of a glyph.
func (t *HMtxTable) HMetrics(g GlyphIndex) (advance uint16, lsb int16, ok bool) {
	if t == nil || t.NumberOfHMetrics == 0 || int(g) >= t.numGlyphs {
		return 0, 0, false
	}
	n, i := t.NumberOfHMetrics, int(g)
	if i < n {
		return t.data.U16(4 * i), int16(t.data.U16(4*i + 2)), true
	}
	return t.data.U16(4 * (n - 1)), int16(t.data.U16(4*n + 2*(i-n))), true
}
