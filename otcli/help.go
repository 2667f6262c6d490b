package main

import (
	"strings"

	"github.com/pterm/pterm"
)

func helpOp(intp *Intp, op *Op) (error, bool) {
	help(op.arg)
	return nil, false
}

func help(topic string) {
	tracer().Infof("help %v", topic)
	t := strings.ToLower(topic)
	switch t {
	case "glyph", "glyphs":
		pterm.Info.Println("Glyph arguments")
		pterm.Println(`
	Commands taking a glyph accept
	+--------+------------------------------+
	| #123   | glyph ID 123                 |
	| U+221A | glyph mapped to a code-point |
	| A      | glyph mapped to a character  |
	+--------+------------------------------+
	`)
	case "variants", "assembly", "stretch":
		pterm.Info.Println("Stretchy glyphs")
		pterm.Println(`
	MathVariants lists size variants and an assembly per glyph and direction.
	  variants:√:ttb   size variants for vertical stretching
	  assembly:[       parts to build '[' of arbitrary height
	Directions are ltr, rtl (horizontal) and ttb, btt (vertical); the
	default is vertical. Assembly parts are printed from bottom to top,
	or from left to right.
	`)
	case "kern", "kerning":
		pterm.Info.Println("Math kerning")
		pterm.Println(`
	MathKernInfo holds a kern table for each corner of a glyph:
	+---------------------+----------------------------+
	| correction heights  | h0 < h1 < … < hn-1         |
	+---------------------+----------------------------+
	| kern values         | k0, k1, … kn               |
	+---------------------+----------------------------+
	For a height h, the value ki is used, with i the number of heights <= h.
	  kern:A:300
	`)
	default:
		pterm.Info.Println("Commands")
		pterm.Println(`
	info                   names, metrics and MATH summary
	tables                 tables of the font
	tables:raster:<px>     set pixel size of the raster face
	constants[:filter]     math constants, optionally filtered by name
	glyph:<g>              math info for a glyph
	variants:<g>[:dir]     size variants of a glyph
	assembly:<g>[:dir]     assembly parts of a glyph
	kern:<g>:<height>      math kerning at the corners of a glyph
	measure:<text>[:dir]   shape and measure a text
	help[:topic]           topics: glyph, variants, kern
	quit
	`)
	}
}
