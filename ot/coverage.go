package ot

import "fmt"

// Coverage is an indexed set of glyphs. Every glyph-keyed MATH sub-table
// starts with one; the coverage index of a glyph selects its record.
type Coverage struct {
	Format     uint16 // 1: glyph array, 2: range records
	Count      uint16
	GlyphRange GlyphRange
}

// GlyphRange maps glyphs to coverage indices.
type GlyphRange interface {
	Match(g GlyphIndex) (int, bool)
}

// Match returns the coverage index of a glyph.
func (c Coverage) Match(g GlyphIndex) (int, bool) {
	if c.GlyphRange == nil {
		return 0, false
	}
	return c.GlyphRange.Match(g)
}

func (c Coverage) Contains(g GlyphIndex) bool {
	_, ok := c.Match(g)
	return ok
}

// IsVoid is true for a missing or undecodable coverage.
func (c Coverage) IsVoid() bool {
	return c.GlyphRange == nil
}

// Len is the number of glyphs (format 1) or ranges (format 2).
func (c Coverage) Len() int {
	if c.IsVoid() {
		return 0
	}
	return int(c.Count)
}

// Record sizes of the two coverage formats, after a 4-byte header.
var coverageRecordSize = map[uint16]int{1: 2, 2: 6}

func parseCoverage(b binarySegm) (Coverage, error) {
	if len(b) < 4 {
		return Coverage{}, fmt.Errorf("coverage table too small: %d bytes", len(b))
	}
	c := Coverage{Format: b.U16(0), Count: b.U16(2)}
	recsize, ok := coverageRecordSize[c.Format]
	if !ok {
		return Coverage{}, fmt.Errorf("unknown coverage format %d", c.Format)
	}
	records, err := b.view(4, int(c.Count)*recsize)
	if c.Count > 0 && err != nil {
		return Coverage{}, fmt.Errorf("coverage format %d extends beyond bounds: need %d, have %d",
			c.Format, 4+int(c.Count)*recsize, len(b))
	}
	tracer().Debugf("coverage format = %d, count = %d", c.Format, c.Count)
	if c.Format == 1 {
		c.GlyphRange = glyphArray(records)
	} else {
		c.GlyphRange = rangeRecords(records)
	}
	return c, nil
}

// glyphArray is a sorted list of glyphs; the coverage index is the position
// in the list.
type glyphArray binarySegm

func (a glyphArray) Match(g GlyphIndex) (int, bool) {
	lo, hi := 0, len(a)/2
	for lo < hi {
		i := lo + (hi-lo)/2
		switch k := GlyphIndex(binarySegm(a).U16(2 * i)); {
		case k == g:
			return i, true
		case k < g:
			lo = i + 1
		default:
			hi = i
		}
	}
	return 0, false
}

// rangeRecords are (start, end, startCoverageIndex) triples sorted by start.
type rangeRecords binarySegm

func (r rangeRecords) Match(g GlyphIndex) (int, bool) {
	b := binarySegm(r)
	for i := 0; i+6 <= len(b); i += 6 {
		from, to := GlyphIndex(b.U16(i)), GlyphIndex(b.U16(i+2))
		if g < from {
			break
		}
		if g <= to {
			return int(b.U16(i+4)) + int(g-from), true
		}
	}
	return 0, false
}
