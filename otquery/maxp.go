package otquery

import (
	"fmt"

	"github.com/npillmayer/mathfont/ot"
)

// MaxPTableInfo is the decoded 'maxp' table. Version 0.5 (CFF outlines)
// has the glyph count only; version 1.0 (TrueType outlines) adds a profile,
// of which the outline limits are decoded.
type MaxPTableInfo struct {
	VersionFixed uint32
	NumGlyphs    uint16

	HasExtendedProfile bool // version 1.0
	MaxPoints          uint16
	MaxContours        uint16
	MaxZones           uint16
	MaxStackElements   uint16
	MaxComponentDepth  uint16
}

// Version formats the table version, e.g. "1.0" or "0.5". The minor
// version is stored as a nibble, 0x00005000 being version 0.5.
func (m MaxPTableInfo) Version() string {
	return fmt.Sprintf("%d.%d", m.VersionFixed>>16, (m.VersionFixed&0xffff)>>12)
}

// MaxPInfo decodes table 'maxp'. It returns false for a missing or
// truncated table.
func MaxPInfo(otf *ot.Font) (MaxPTableInfo, bool) {
	b := tableBytes(otf, "maxp")
	if len(b) < 6 {
		return MaxPTableInfo{}, false
	}
	info := MaxPTableInfo{VersionFixed: u32(b), NumGlyphs: u16(b[4:])}
	if info.VersionFixed == 0x00010000 && len(b) >= 32 {
		info.HasExtendedProfile = true
		info.MaxPoints, info.MaxContours = u16(b[6:]), u16(b[8:])
		info.MaxZones = u16(b[14:])
		info.MaxStackElements = u16(b[24:])
		info.MaxComponentDepth = u16(b[30:])
	}
	return info, true
}
