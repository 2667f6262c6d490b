package fonttest

import (
	"encoding/binary"
	"sort"
)

// Math describes the MATH table of a test font. Glyphs are given as glyph
// indices.
type Math struct {
	Constants           [56]int16 // in OpenType order
	MinConnectorOverlap uint16
	ItalicsCorrection   map[uint16]int16
	TopAccentAttachment map[uint16]int16
	ExtendedShapes      []uint16
	Kerns               map[uint16][4]*Kern // TopRight, TopLeft, BottomRight, BottomLeft
	Vertical            map[uint16]Construction
	Horizontal          map[uint16]Construction
}

// Kern is a MathKern table. Values must have one entry more than Heights.
type Kern struct {
	Heights []int16
	Values  []int16
}

// Construction lists size variants and an optional assembly for a glyph.
type Construction struct {
	Variants []Variant
	Assembly *Assembly
}

// Variant is a size variant of a glyph.
type Variant struct {
	Glyph   uint16
	Advance uint16
}

// Assembly is a recipe for a stretchy glyph.
type Assembly struct {
	ItalicsCorrection int16
	Parts             []Part
}

// Part is one part of an assembly.
type Part struct {
	Glyph          uint16
	StartConnector uint16
	EndConnector   uint16
	FullAdvance    uint16
	Extender       bool
}

// Build serializes the MATH table.
func (m *Math) Build() []byte {
	root := &node{head: make([]byte, 10)}
	binary.BigEndian.PutUint16(root.head[0:], 1) // majorVersion
	root.link(4, &node{head: m.constants()})
	root.link(6, m.glyphInfo())
	root.link(8, m.variants())
	return root.bytes()
}

func (m *Math) constants() []byte {
	b := make([]byte, 0, 214)
	for i, v := range m.Constants {
		switch {
		case i < 4 || i == 55:
			b = i16be(b, v)
		default:
			b = i16be(b, v)
			b = u16be(b, 0) // no device table
		}
	}
	return b
}

func (m *Math) glyphInfo() *node {
	n := &node{head: make([]byte, 8)}
	n.link(0, valueTable(m.ItalicsCorrection))
	n.link(2, valueTable(m.TopAccentAttachment))
	if len(m.ExtendedShapes) > 0 {
		n.link(4, &node{head: coverage(m.ExtendedShapes)})
	}
	n.link(6, m.kernInfo())
	return n
}

func valueTable(values map[uint16]int16) *node {
	if len(values) == 0 {
		return nil
	}
	glyphs := sortedKeys(values)
	head := u16be(nil, 0) // coverage offset
	head = u16be(head, uint16(len(glyphs)))
	for _, g := range glyphs {
		head = i16be(head, values[g])
		head = u16be(head, 0)
	}
	n := &node{head: head}
	n.link(0, &node{head: coverage(glyphs)})
	return n
}

func (m *Math) kernInfo() *node {
	if len(m.Kerns) == 0 {
		return nil
	}
	glyphs := sortedKeys(m.Kerns)
	head := make([]byte, 4+8*len(glyphs))
	binary.BigEndian.PutUint16(head[2:], uint16(len(glyphs)))
	n := &node{head: head}
	n.link(0, &node{head: coverage(glyphs)})
	for i, g := range glyphs {
		for corner, k := range m.Kerns[g] {
			if k == nil {
				continue
			}
			b := u16be(nil, uint16(len(k.Heights)))
			for _, h := range k.Heights {
				b = i16be(b, h)
				b = u16be(b, 0)
			}
			for _, v := range k.Values {
				b = i16be(b, v)
				b = u16be(b, 0)
			}
			n.link(4+8*i+2*corner, &node{head: b})
		}
	}
	return n
}

func (m *Math) variants() *node {
	vglyphs, hglyphs := sortedKeys(m.Vertical), sortedKeys(m.Horizontal)
	head := make([]byte, 10+2*(len(vglyphs)+len(hglyphs)))
	binary.BigEndian.PutUint16(head[0:], m.MinConnectorOverlap)
	binary.BigEndian.PutUint16(head[6:], uint16(len(vglyphs)))
	binary.BigEndian.PutUint16(head[8:], uint16(len(hglyphs)))
	n := &node{head: head}
	if len(vglyphs) > 0 {
		n.link(2, &node{head: coverage(vglyphs)})
	}
	if len(hglyphs) > 0 {
		n.link(4, &node{head: coverage(hglyphs)})
	}
	at := 10
	for _, g := range vglyphs {
		n.link(at, m.Vertical[g].node())
		at += 2
	}
	for _, g := range hglyphs {
		n.link(at, m.Horizontal[g].node())
		at += 2
	}
	return n
}

func (c Construction) node() *node {
	head := u16be(nil, 0) // assembly offset
	head = u16be(head, uint16(len(c.Variants)))
	for _, v := range c.Variants {
		head = u16be(head, v.Glyph)
		head = u16be(head, v.Advance)
	}
	n := &node{head: head}
	if c.Assembly != nil {
		b := i16be(nil, c.Assembly.ItalicsCorrection)
		b = u16be(b, 0)
		b = u16be(b, uint16(len(c.Assembly.Parts)))
		for _, p := range c.Assembly.Parts {
			b = u16be(b, p.Glyph)
			b = u16be(b, p.StartConnector)
			b = u16be(b, p.EndConnector)
			b = u16be(b, p.FullAdvance)
			var flags uint16
			if p.Extender {
				flags = 1
			}
			b = u16be(b, flags)
		}
		n.link(0, &node{head: b})
	}
	return n
}

// coverage builds a format 1 coverage table.
func coverage(glyphs []uint16) []byte {
	b := u16be(nil, 1)
	b = u16be(b, uint16(len(glyphs)))
	for _, g := range glyphs {
		b = u16be(b, g)
	}
	return b
}

func sortedKeys[V any](m map[uint16]V) []uint16 {
	keys := make([]uint16, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// --- Offset graph ----------------------------------------------------------

// node is a sub-table with a header holding Offset16 fields. Children are
// serialized after the header, and offsets are relative to the start of
// the node.
type node struct {
	head     []byte
	children []child
}

type child struct {
	at   int
	node *node
}

func (n *node) link(at int, c *node) {
	if c != nil {
		n.children = append(n.children, child{at: at, node: c})
	}
}

func (n *node) bytes() []byte {
	out := append([]byte(nil), n.head...)
	for _, c := range n.children {
		binary.BigEndian.PutUint16(out[c.at:], uint16(len(out)))
		out = append(out, c.node.bytes()...)
	}
	return out
}
