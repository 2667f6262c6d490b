package ot

import (
	"encoding/binary"
	"errors"
	"fmt"
)

var errBufferBounds = errors.New("ot: read beyond end of table data")

func u16(b []byte) uint16 { return binary.BigEndian.Uint16(b) }
func u32(b []byte) uint32 { return binary.BigEndian.Uint32(b) }

// --- Byte segments ---------------------------------------------------------

// binarySegm is a bounds-checked view into font data. The exported readers
// yield 0 when reading out of bounds, the unexported ones report an error.
type binarySegm []byte

func (b binarySegm) Size() int {
	return len(b)
}

func (b binarySegm) U16(i int) uint16 {
	n, _ := b.u16(i)
	return n
}

func (b binarySegm) U32(i int) uint32 {
	n, _ := b.u32(i)
	return n
}

// view returns the n bytes at offset as a sub-slice of b.
func (b binarySegm) view(offset, n int) (binarySegm, error) {
	if offset < 0 || n <= 0 || offset > len(b)-n {
		return nil, errBufferBounds
	}
	return b[offset : offset+n], nil
}

func (b binarySegm) u16(i int) (uint16, error) {
	buf, err := b.view(i, 2)
	if err != nil {
		return 0, err
	}
	return u16(buf), nil
}

// i16 reads FWORD values and MathValueRecord values.
func (b binarySegm) i16(i int) (int16, error) {
	n, err := b.u16(i)
	return int16(n), err
}

func (b binarySegm) u32(i int) (uint32, error) {
	buf, err := b.view(i, 4)
	if err != nil {
		return 0, err
	}
	return u32(buf), nil
}

// --- Links -----------------------------------------------------------------

// link16 is a 16-bit offset to a sub-table, relative to a base segment.
// OpenType uses NULL offsets (0) for absent optional sub-tables.
type link16 struct {
	target string     // name of the sub-table, used for tracing
	base   binarySegm // offsets are relative to base
	offset uint16
}

func parseLink16(b binarySegm, offset int, base binarySegm, target string) (link16, error) {
	n, err := b.u16(offset)
	if err != nil {
		return link16{}, err
	}
	return makeLink16(n, base, target), nil
}

func makeLink16(offset uint16, base binarySegm, target string) link16 {
	return link16{target: target, base: base, offset: offset}
}

// IsNull reports whether the link is a NULL offset.
func (l16 link16) IsNull() bool {
	return l16.offset == 0
}

// Jump returns the bytes of the linked sub-table, reaching until the end of
// the base segment. A NULL link jumps to an empty segment.
func (l16 link16) Jump() (binarySegm, error) {
	if l16.IsNull() {
		return binarySegm{}, nil
	}
	if int(l16.offset) >= len(l16.base) {
		return nil, fmt.Errorf("link to %s: offset %d exceeds base size %d",
			l16.target, l16.offset, len(l16.base))
	}
	return l16.base[l16.offset:], nil
}

// --- Arrays ----------------------------------------------------------------

// array is a sequence of fixed-size records, as used by the MATH table for
// MathValueRecords, variant records and part records.
type array struct {
	name       string
	recordSize int
	length     int
	loc        binarySegm
}

// parseArray reads N records of recordSize bytes, starting at offset.
func parseArray(b binarySegm, offset, N, recordSize int, name string) (array, error) {
	size, err := checkedMulInt(N, recordSize)
	if err != nil {
		return array{}, err
	}
	if N == 0 {
		return array{name: name, recordSize: recordSize}, nil
	}
	loc, err := b.view(offset, size)
	if err != nil {
		return array{}, fmt.Errorf("array %s: %d records of size %d exceed table bounds", name, N, recordSize)
	}
	return array{name: name, recordSize: recordSize, length: N, loc: loc}, nil
}

// parseArray16 reads a uint16 record count at offset, followed by the records.
func parseArray16(b binarySegm, offset, recordSize int, name string) (array, error) {
	n, err := b.u16(offset)
	if err != nil {
		return array{}, err
	}
	return parseArray(b, offset+2, int(n), recordSize, name)
}

// Len returns the number of records in the array.
func (a array) Len() int {
	return a.length
}

// Get returns record i, or an empty segment if i is out of range.
func (a array) Get(i int) binarySegm {
	if i < 0 || i >= a.length {
		return binarySegm{}
	}
	return a.loc[i*a.recordSize : (i+1)*a.recordSize]
}
