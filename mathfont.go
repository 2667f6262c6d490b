/*
Package mathfont measures fonts for mathematical typesetting.

Laying out formulas needs more than the advance widths of glyphs. The
OpenType MATH table holds font-wide constants (how far to raise a
superscript, how thick to draw a fraction rule), per-glyph data (italics
correction, placement of accents, kerning of scripts at the corners of a
glyph), and instructions for stretching glyphs: pre-built size variants of
delimiters and radicals, and parts to assemble them at arbitrary size.

This module sits between a rasterizer and a shaper. Package engine opens
font files and keeps the rasterizer's view of a face; package otface
presents the face to a formula layout engine and answers all questions in
font design units. Packages ot and otquery parse and query the font's
tables.

There is a certain confusion with the nomenclature of typesetting. We will
stick to the following definitions:

▪︎ A "typeface" is a family of fonts. An example is "STIX Two".
This corresponds to a TrueType "collection" (*.ttc).

▪︎ A "scalable font" is a font, i.e. a variant of a typeface with a
certain weight, slant, etc.  An example is "STIX Two Math regular".

▪︎ A "face" is a scalable font as opened by an engine: one entry of a
collection.

Please note that Go (Golang) does use the terms "font" and "face"
differently–actually more or less in an opposite manner.

# Links

OpenType MATH table:
https://learn.microsoft.com/en-us/typography/opentype/spec/math

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package mathfont

import (
	"github.com/npillmayer/mathfont/engine"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'font.mathfont'
func tracer() tracing.Trace {
	return tracing.Select("font.mathfont")
}

// Open opens face number index of a font file with an engine of its own.
// The engine is torn down when the face is closed.
func Open(path string, index int) (*engine.FontFace, error) {
	e, err := engine.Init()
	if err != nil {
		return nil, err
	}
	defer e.Release() // the face holds its own reference
	face, err := engine.Open(e, path, index)
	if err != nil {
		return nil, err
	}
	tracer().Debugf("opened %s with private engine", path)
	return face, nil
}
