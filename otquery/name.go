package otquery

import (
	"iter"

	"github.com/npillmayer/mathfont/ot"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/text/encoding/unicode"
)

// A 'name' table starts with a 6-byte header (version, count, storage
// offset), followed by count NameRecords of 12 bytes:
//
//	uint16 platformID, encodingID, languageID, nameID, length, stringOffset
const (
	nameHeaderSize = 6
	nameRecordSize = 12
)

// PlatformID is the platform of a NameRecord.
type PlatformID uint16

const (
	PlatformIDUnicode   PlatformID = 0
	PlatformIDMacintosh PlatformID = 1 // skipped
	PlatformIDWindows   PlatformID = 3
)

// EncodingID is the platform specific encoding of a NameRecord.
type EncodingID uint16

const (
	EncodingIDWindowsSymbol EncodingID = 0 // skipped
	EncodingIDWindowsBMP    EncodingID = 1
	EncodingIDUnicodeBMP    EncodingID = 3
)

// utf16Names reports whether records of a platform/encoding pair hold
// UTF-16BE strings.
func utf16Names(p PlatformID, e EncodingID) bool {
	return p == PlatformIDUnicode && e == EncodingIDUnicodeBMP ||
		p == PlatformIDWindows && e == EncodingIDWindowsBMP
}

// NamesRange yields the (nameID, value) pairs of a font's 'name' table.
// Only UTF-16 records are decoded; malformed records are skipped.
func NamesRange(otf *ot.Font) iter.Seq2[sfnt.NameID, string] {
	b := nameTable(otf)
	return func(yield func(sfnt.NameID, string) bool) {
		if b == nil {
			return
		}
		dec := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewDecoder()
		storage := int(u16(b[4:]))
		for i := range int(u16(b[2:])) {
			rec := b[nameHeaderSize+i*nameRecordSize:]
			if !utf16Names(PlatformID(u16(rec)), EncodingID(u16(rec[2:]))) {
				continue
			}
			start := storage + int(u16(rec[10:]))
			end := start + int(u16(rec[8:]))
			if end > len(b) {
				continue
			}
			value, err := dec.Bytes(b[start:end])
			if err != nil || len(value) == 0 {
				continue
			}
			if !yield(sfnt.NameID(u16(rec[6:])), string(value)) {
				return
			}
		}
	}
}

// FamilyName returns family and subfamily name of a font, or empty strings.
func FamilyName(otf *ot.Font) (family, subfamily string) {
	for id, value := range NamesRange(otf) {
		switch id {
		case sfnt.NameIDFamily:
			family = value
		case sfnt.NameIDSubfamily:
			subfamily = value
		}
	}
	return
}

var nameInfoKeys = map[sfnt.NameID]string{
	sfnt.NameIDFamily:     "family",
	sfnt.NameIDSubfamily:  "subfamily",
	sfnt.NameIDFull:       "fullname",
	sfnt.NameIDVersion:    "version",
	sfnt.NameIDPostScript: "postscript",
}

// NameInfo collects common names of a font, with keys "family",
// "subfamily", "fullname", "version" and "postscript". The first record of
// a name wins; names missing in the font are missing in the map.
func NameInfo(otf *ot.Font) map[string]string {
	info := make(map[string]string)
	for id, value := range NamesRange(otf) {
		key, ok := nameInfoKeys[id]
		if _, seen := info[key]; ok && !seen {
			info[key] = value
		}
	}
	return info
}

// nameTable returns the bytes of table 'name' if its header and record
// section are within bounds.
func nameTable(otf *ot.Font) []byte {
	b := tableBytes(otf, "name")
	if len(b) < nameHeaderSize {
		tracer().Debugf("no usable name table")
		return nil
	}
	count, storage := int(u16(b[2:])), int(u16(b[4:]))
	if storage > len(b) || nameHeaderSize+count*nameRecordSize > len(b) {
		tracer().Debugf("name table out of bounds: %d records, storage at %d", count, storage)
		return nil
	}
	return b
}
