package otquery

import (
	"encoding/binary"

	"github.com/npillmayer/mathfont/ot"
)

func u16(b []byte) uint16 { return binary.BigEndian.Uint16(b) }
func i16(b []byte) int16  { return int16(binary.BigEndian.Uint16(b)) }
func u32(b []byte) uint32 { return binary.BigEndian.Uint32(b) }
func i64(b []byte) int64  { return int64(binary.BigEndian.Uint64(b)) }

// tableBytes returns the data of a table, or nil if the font lacks it.
func tableBytes(otf *ot.Font, tag string) []byte {
	if otf == nil {
		return nil
	}
	if t := otf.Table(ot.T(tag)); t != nil {
		return t.Binary()
	}
	return nil
}
