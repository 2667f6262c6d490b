/*
Package fonttest synthesizes small OpenType fonts for tests.

Fonts produced here carry the tables every parser of this module relies on
(cmap, glyf, head, hhea, hmtx, loca, maxp, name, OS/2, post) and, optionally,
a MATH table. Glyphs have no outlines. Collections of such fonts may be
packed into a TTC container.
*/
package fonttest

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"golang.org/x/text/encoding/unicode"
)

// Glyph is a glyph of a test font. A zero Rune leaves the glyph unmapped.
type Glyph struct {
	Name    string
	Rune    rune
	Advance uint16
}

// Font describes a test font.
type Font struct {
	FamilyName string
	UnitsPerEm uint16
	Ascender   int16
	Descender  int16
	LineGap    int16
	Glyphs     []Glyph
	Math       *Math // nil for fonts without a MATH table
}

// Build serializes the font.
func (f Font) Build() []byte {
	tables := map[string][]byte{
		"cmap": f.cmap(),
		"glyf": {},
		"head": f.head(),
		"hhea": f.hhea(),
		"hmtx": f.hmtx(),
		"loca": make([]byte, 2*(len(f.Glyphs)+1)),
		"maxp": f.maxp(),
		"name": f.name(),
		"OS/2": f.os2(),
		"post": f.post(),
	}
	if f.Math != nil {
		tables["MATH"] = f.Math.Build()
	}
	return assemble(tables)
}

// --- Table directory -------------------------------------------------------

func assemble(tables map[string][]byte) []byte {
	tags := make([]string, 0, len(tables))
	for tag := range tables {
		tags = append(tags, tag)
	}
	sort.Strings(tags) // byte order, i.e. "MATH" < "OS/2" < "cmap"
	n := len(tags)
	searchRange, entrySelector := 1, 0
	for searchRange*2 <= n {
		searchRange *= 2
		entrySelector++
	}
	out := u32be(nil, 0x00010000)
	out = u16be(out, uint16(n))
	out = u16be(out, uint16(16*searchRange))
	out = u16be(out, uint16(entrySelector))
	out = u16be(out, uint16(16*n-16*searchRange))
	offset := 12 + 16*n
	var data []byte
	for _, tag := range tags {
		t := tables[tag]
		out = append(out, tag...)
		out = u32be(out, checksum(t))
		out = u32be(out, uint32(offset+len(data)))
		out = u32be(out, uint32(len(t)))
		data = append(data, pad4(t)...)
	}
	return append(out, data...)
}

// Collection packs single fonts into a TTC container.
func Collection(fonts ...[]byte) []byte {
	header := u32be(nil, 0x74746366) // 'ttcf'
	header = u32be(header, 0x00010000)
	header = u32be(header, uint32(len(fonts)))
	base := len(header) + 4*len(fonts)
	var body []byte
	for _, font := range fonts {
		start := base + len(body)
		header = u32be(header, uint32(start))
		relocated := append([]byte(nil), font...)
		numTables := int(binary.BigEndian.Uint16(relocated[4:]))
		for i := 0; i < numTables; i++ {
			rec := relocated[12+16*i:]
			off := binary.BigEndian.Uint32(rec[8:])
			binary.BigEndian.PutUint32(rec[8:], off+uint32(start))
		}
		body = append(body, pad4(relocated)...)
	}
	return append(header, body...)
}

// WriteFile writes font data to a temporary directory of a test and returns
// the path of the file.
func WriteFile(t testing.TB, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("cannot write test font: %v", err)
	}
	return path
}

// --- Tables ----------------------------------------------------------------

func (f Font) head() []byte {
	b := make([]byte, 54)
	binary.BigEndian.PutUint32(b[0:], 0x00010000)  // version
	binary.BigEndian.PutUint32(b[4:], 0x00010000)  // fontRevision
	binary.BigEndian.PutUint32(b[12:], 0x5F0F3CF5) // magicNumber
	binary.BigEndian.PutUint16(b[16:], 0x000B)     // flags
	binary.BigEndian.PutUint16(b[18:], f.UnitsPerEm)
	binary.BigEndian.PutUint16(b[38:], uint16(f.Descender)) // yMin
	binary.BigEndian.PutUint16(b[40:], f.maxAdvance())      // xMax
	binary.BigEndian.PutUint16(b[42:], uint16(f.Ascender))  // yMax
	binary.BigEndian.PutUint16(b[46:], 8)                   // lowestRecPPEM
	binary.BigEndian.PutUint16(b[48:], 2)                   // fontDirectionHint
	return b // indexToLocFormat 0 = short loca
}

func (f Font) hhea() []byte {
	b := make([]byte, 36)
	binary.BigEndian.PutUint32(b[0:], 0x00010000)
	binary.BigEndian.PutUint16(b[4:], uint16(f.Ascender))
	binary.BigEndian.PutUint16(b[6:], uint16(f.Descender))
	binary.BigEndian.PutUint16(b[8:], uint16(f.LineGap))
	binary.BigEndian.PutUint16(b[10:], f.maxAdvance())
	binary.BigEndian.PutUint16(b[16:], f.maxAdvance()) // xMaxExtent
	binary.BigEndian.PutUint16(b[18:], 1)              // caretSlopeRise
	binary.BigEndian.PutUint16(b[34:], uint16(len(f.Glyphs)))
	return b
}

func (f Font) hmtx() []byte {
	var b []byte
	for _, g := range f.Glyphs {
		b = u16be(b, g.Advance)
		b = u16be(b, 0)
	}
	return b
}

func (f Font) maxp() []byte {
	b := make([]byte, 32)
	binary.BigEndian.PutUint32(b[0:], 0x00010000)
	binary.BigEndian.PutUint16(b[4:], uint16(len(f.Glyphs)))
	binary.BigEndian.PutUint16(b[14:], 2) // maxZones
	return b
}

func (f Font) os2() []byte {
	b := make([]byte, 96)
	binary.BigEndian.PutUint16(b[0:], 4) // version
	binary.BigEndian.PutUint16(b[2:], f.avgAdvance())
	binary.BigEndian.PutUint16(b[4:], 400) // usWeightClass
	binary.BigEndian.PutUint16(b[6:], 5)   // usWidthClass
	copy(b[58:62], "NPTF")
	binary.BigEndian.PutUint16(b[62:], 0x0040) // fsSelection: REGULAR
	first, last := f.runeRange()
	binary.BigEndian.PutUint16(b[64:], first)
	binary.BigEndian.PutUint16(b[66:], last)
	binary.BigEndian.PutUint16(b[68:], uint16(f.Ascender))
	binary.BigEndian.PutUint16(b[70:], uint16(f.Descender))
	binary.BigEndian.PutUint16(b[72:], uint16(f.LineGap))
	binary.BigEndian.PutUint16(b[74:], uint16(f.Ascender))
	binary.BigEndian.PutUint16(b[76:], uint16(-f.Descender))
	binary.BigEndian.PutUint16(b[86:], uint16(f.UnitsPerEm/2))   // sxHeight
	binary.BigEndian.PutUint16(b[88:], uint16(f.UnitsPerEm*7/10)) // sCapHeight
	binary.BigEndian.PutUint16(b[92:], 0x20)                      // usBreakChar
	binary.BigEndian.PutUint16(b[94:], 1)                         // usMaxContext
	return b
}

func (f Font) post() []byte {
	b := make([]byte, 32)
	binary.BigEndian.PutUint32(b[0:], 0x00030000)
	underline := int16(-100)
	binary.BigEndian.PutUint16(b[8:], uint16(underline)) // underlinePosition
	binary.BigEndian.PutUint16(b[10:], 50)               // underlineThickness
	return b
}

// cmap holds a single format 4 sub-table for platform 3, encoding 1, with
// one segment per mapped rune.
func (f Font) cmap() []byte {
	type seg struct{ code, delta uint16 }
	var segs []seg
	for gid, g := range f.Glyphs {
		if g.Rune > 0 && g.Rune < 0xFFFF {
			segs = append(segs, seg{uint16(g.Rune), uint16(gid) - uint16(g.Rune)})
		}
	}
	sort.Slice(segs, func(i, j int) bool { return segs[i].code < segs[j].code })
	segs = append(segs, seg{0xFFFF, 1})
	n := len(segs)
	searchRange, entrySelector := 1, 0
	for searchRange*2 <= n {
		searchRange *= 2
		entrySelector++
	}
	sub := u16be(nil, 4)
	sub = u16be(sub, uint16(16+8*n))
	sub = u16be(sub, 0) // language
	sub = u16be(sub, uint16(2*n))
	sub = u16be(sub, uint16(2*searchRange))
	sub = u16be(sub, uint16(entrySelector))
	sub = u16be(sub, uint16(2*n-2*searchRange))
	for _, s := range segs {
		sub = u16be(sub, s.code) // endCode
	}
	sub = u16be(sub, 0) // reservedPad
	for _, s := range segs {
		sub = u16be(sub, s.code) // startCode
	}
	for _, s := range segs {
		sub = u16be(sub, s.delta)
	}
	for range segs {
		sub = u16be(sub, 0) // idRangeOffset
	}
	b := u16be(nil, 0) // version
	b = u16be(b, 1)
	b = u16be(b, 3) // platform Windows
	b = u16be(b, 1) // Unicode BMP
	b = u32be(b, 12)
	return append(b, sub...)
}

// name has Windows/Unicode entries for family, subfamily, full name and
// PostScript name.
func (f Font) name() []byte {
	enc := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewEncoder()
	entries := []struct {
		id   uint16
		text string
	}{
		{1, f.FamilyName},
		{2, "Regular"},
		{4, f.FamilyName + " Regular"},
		{6, f.FamilyName + "-Regular"},
	}
	b := u16be(nil, 0)
	b = u16be(b, uint16(len(entries)))
	b = u16be(b, uint16(6+12*len(entries)))
	var strs []byte
	for _, e := range entries {
		s, err := enc.Bytes([]byte(e.text))
		if err != nil {
			panic(err)
		}
		b = u16be(b, 3)      // platform Windows
		b = u16be(b, 1)      // Unicode BMP
		b = u16be(b, 0x0409) // en-US
		b = u16be(b, e.id)
		b = u16be(b, uint16(len(s)))
		b = u16be(b, uint16(len(strs)))
		strs = append(strs, s...)
	}
	return append(b, strs...)
}

func (f Font) maxAdvance() uint16 {
	var m uint16
	for _, g := range f.Glyphs {
		if g.Advance > m {
			m = g.Advance
		}
	}
	return m
}

func (f Font) avgAdvance() uint16 {
	if len(f.Glyphs) == 0 {
		return 0
	}
	sum := 0
	for _, g := range f.Glyphs {
		sum += int(g.Advance)
	}
	return uint16(sum / len(f.Glyphs))
}

func (f Font) runeRange() (uint16, uint16) {
	first, last := uint16(0xFFFF), uint16(0)
	for _, g := range f.Glyphs {
		if g.Rune <= 0 || g.Rune >= 0xFFFF {
			continue
		}
		if uint16(g.Rune) < first {
			first = uint16(g.Rune)
		}
		if uint16(g.Rune) > last {
			last = uint16(g.Rune)
		}
	}
	return first, last
}

// --- Byte helpers ----------------------------------------------------------

func u16be(b []byte, v uint16) []byte {
	return binary.BigEndian.AppendUint16(b, v)
}

func i16be(b []byte, v int16) []byte {
	return binary.BigEndian.AppendUint16(b, uint16(v))
}

func u32be(b []byte, v uint32) []byte {
	return binary.BigEndian.AppendUint32(b, v)
}

func pad4(b []byte) []byte {
	for len(b)%4 != 0 {
		b = append(b, 0)
	}
	return b
}

func checksum(b []byte) uint32 {
	var sum uint32
	b = pad4(append([]byte(nil), b...))
	for i := 0; i < len(b); i += 4 {
		sum += binary.BigEndian.Uint32(b[i:])
	}
	return sum
}
