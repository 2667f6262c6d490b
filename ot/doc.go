/*
Package ot provides access to the OpenType font tables needed for mathematical
typesetting. Intended audience for this package are:

▪︎ the query layer in sister package otquery, which answers metric and MATH
questions the way a shaping engine does

▪︎ any application needing to have the internal structure of a math font
available, and possibly extending the methods of package `ot` by handling
additional font tables

Package `ot` will not interpret font tables for clients, but rather expose
the tables. For example, it is not possible to ask package `ot` for the kern
value of a math glyph at a given height; clients have to consult the MATH
table's kern info themselves, or use package otquery.

Tables in `ot` hide format details of the underlying OT tables:

▪︎ Offsets: OT sub-tables are linked with 2-byte offsets relative to varying
bases. Package `ot` resolves them with bounds checks.

▪︎ Bugs in fonts: many fonts in the wild contain entries that infringe upon the
OT specification. A malformed MATH sub-table is recorded as an error on the
font and left void, but does not make the font unusable.

Font collections (*.ttc) are supported through ParseFace. Variable fonts are
not supported.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package ot

// Valuable resource:
// https://learn.microsoft.com/en-us/typography/opentype/spec/math

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'font.opentype'
func tracer() tracing.Trace {
	return tracing.Select("font.opentype")
}

func assertEqualInt(name string, a, b int) {
	if a != b {
		panic(fmt.Sprintf("assertion [%s] failed: %d != %d", name, a, b))
	}
}
