package otface

import (
	"fmt"
	"strings"

	"github.com/go-text/typesetting/harfbuzz"
	"github.com/npillmayer/mathfont/ot"
	"golang.org/x/text/unicode/bidi"
)

// GlyphID identifies a glyph of a face. Glyph IDs are meaningful only for
// the face that produced them.
type GlyphID uint32

// Direction is the direction of a run of text, and the direction of
// stretching for glyph variants and assemblies.
type Direction uint8

// Directions of text. Horizontal directions stretch glyphs horizontally,
// vertical ones vertically.
const (
	LTR Direction = iota // left to right
	RTL                  // right to left
	TTB                  // top to bottom
	BTT                  // bottom to top
)

func (d Direction) String() string {
	switch d {
	case LTR:
		return "LTR"
	case RTL:
		return "RTL"
	case TTB:
		return "TTB"
	case BTT:
		return "BTT"
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// IsVertical is true for TTB and BTT.
func (d Direction) IsVertical() bool {
	return d == TTB || d == BTT
}

func (d Direction) harfbuzz() harfbuzz.Direction {
	switch d {
	case RTL:
		return harfbuzz.RightToLeft
	case TTB:
		return harfbuzz.TopToBottom
	case BTT:
		return harfbuzz.BottomToTop
	}
	return harfbuzz.LeftToRight
}

// ParseDirection reads a direction from one of "ltr", "rtl", "ttb" or "btt"
// (case insensitive).
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ltr":
		return LTR, nil
	case "rtl":
		return RTL, nil
	case "ttb":
		return TTB, nil
	case "btt":
		return BTT, nil
	}
	return LTR, fmt.Errorf("unknown text direction %q", s)
}

// DirectionFromBidi maps the direction of a bidi paragraph to a horizontal
// direction. Mixed and neutral paragraphs are set left to right.
func DirectionFromBidi(d bidi.Direction) Direction {
	if d == bidi.RightToLeft {
		return RTL
	}
	return LTR
}

// KernCorner selects the corner of a glyph for math kerning.
type KernCorner uint8

// Corners of a glyph.
const (
	TopRight KernCorner = iota
	TopLeft
	BottomRight
	BottomLeft
)

func (c KernCorner) String() string {
	return c.ot().String()
}

func (c KernCorner) ot() ot.MathKernCorner {
	switch c {
	case TopLeft:
		return ot.TopLeft
	case BottomRight:
		return ot.BottomRight
	case BottomLeft:
		return ot.BottomLeft
	}
	return ot.TopRight
}

// GlyphVariant is a pre-built size variant of a glyph.
type GlyphVariant struct {
	Glyph   GlyphID
	Advance int32 // advance in the direction of stretching
}

// GlyphPart is one part of a glyph assembly.
type GlyphPart struct {
	Glyph                GlyphID
	StartConnectorLength int32
	EndConnectorLength   int32
	FullAdvance          int32
	Extender             bool // part may be repeated
}

// GlyphAssembly describes how to build a stretched glyph from parts.
// Parts are ordered from start to end: bottom to top for vertical
// assemblies, left to right for horizontal ones.
type GlyphAssembly struct {
	Parts             []GlyphPart
	ItalicsCorrection int32
}

// GlyphPosition is the position of a shaped glyph.
type GlyphPosition struct {
	Glyph              GlyphID
	XAdvance, YAdvance int32
	XOffset, YOffset   int32
}

// MeasuredRun is the result of shaping a run of text.
type MeasuredRun struct {
	Glyphs []GlyphPosition
	Width  int32 // sum of x-advances plus the x-offset of the last glyph
	Height int32 // sum of y-advances plus the y-offset of the last glyph
}
