/*
Package otface presents a font face for mathematical typesetting.

A Face is backed by two engines. Package ot parses the font's tables and
answers MATH queries, while go-text's harfbuzz shapes text for
measurement and supplies font-wide metrics. Both engine objects are held
through retained handles; the shaping font keeps the face it is derived
from alive.

Faces are constructed either from a font already loaded by a rasterizer
(FromRasterFont), or from a font located in the host's font directories
(FromPlatformFont). Either way the result is the same kind of Face.

All values are in font design units. Queries for math data a font does not
carry return zero values: 0, false, an empty sequence. They never fail.

Faces are not safe for concurrent use.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package otface

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'font.math'
func tracer() tracing.Trace {
	return tracing.Select("font.math")
}
