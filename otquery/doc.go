/*
Package otquery answers questions about OpenType fonts parsed by package ot.

Functions in this package never fail. A question which cannot be answered,
e.g. the kern value of a glyph in a font without a MATH table, yields a zero
value. This follows the convention of shaping engines for the MATH table:
absent data is not an error.

MATH queries mirror the accessor surface of a shaping engine: glyph
variants and assembly parts are fetched into caller-supplied buffers, and
every call reports the total count. Calling with an empty buffer is a
cheap probe for the count.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package otquery

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'font.opentype.query'
func tracer() tracing.Trace {
	return tracing.Select("font.opentype.query")
}
