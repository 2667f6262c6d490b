package otquery

import (
	"time"

	"github.com/npillmayer/mathfont/ot"
)

// HeadTableInfo is a typed query view over OpenType table 'head'.
type HeadTableInfo struct {
	MajorVersion      uint16
	MinorVersion      uint16
	FontRevision      uint32 // Fixed 16.16
	MagicNumber       uint32
	Flags             uint16
	UnitsPerEm        uint16
	Created           int64 // seconds since 1904-01-01 00:00 UTC
	Modified          int64
	XMin, YMin        int16
	XMax, YMax        int16
	MacStyle          uint16
	LowestRecPPEM     uint16
	IndexToLocFormat  int16
	FontDirectionHint int16
}

const headTableSize = 54

var epoch1904 = time.Date(1904, time.January, 1, 0, 0, 0, 0, time.UTC)

// CreatedTime converts the creation timestamp of the font.
func (h HeadTableInfo) CreatedTime() time.Time {
	return epoch1904.Add(time.Duration(h.Created) * time.Second)
}

// Revision returns the font revision as a float, e.g. 2.001.
func (h HeadTableInfo) Revision() float64 {
	return float64(h.FontRevision) / 65536
}

// HeadInfo decodes table 'head'. It returns false for a missing or
// truncated table.
func HeadInfo(otf *ot.Font) (HeadTableInfo, bool) {
	var info HeadTableInfo
	b := tableBytes(otf, "head")
	if len(b) < headTableSize {
		return info, false
	}
	info.MajorVersion = u16(b[0:])
	info.MinorVersion = u16(b[2:])
	info.FontRevision = u32(b[4:])
	info.MagicNumber = u32(b[12:])
	info.Flags = u16(b[16:])
	info.UnitsPerEm = u16(b[18:])
	info.Created = i64(b[20:])
	info.Modified = i64(b[28:])
	info.XMin, info.YMin = i16(b[36:]), i16(b[38:])
	info.XMax, info.YMax = i16(b[40:]), i16(b[42:])
	info.MacStyle = u16(b[44:])
	info.LowestRecPPEM = u16(b[46:])
	info.FontDirectionHint = i16(b[48:])
	info.IndexToLocFormat = i16(b[50:])
	return info, true
}

// FontType returns "TrueType" for fonts with glyf outlines, "CFF" for
// PostScript flavoured fonts and "unknown" otherwise.
func FontType(otf *ot.Font) string {
	if otf == nil || otf.Header == nil {
		return "unknown"
	}
	switch otf.Header.FontType {
	case 0x00010000, 0x74727565:
		return "TrueType"
	case 0x4f54544f:
		return "CFF"
	}
	return "unknown"
}
