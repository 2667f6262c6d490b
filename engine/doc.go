/*
Package engine sets up fonts for rasterization and math measurement.

An Engine holds the settings of the rasterizer. It is reference counted:
every holder obtains its own reference with Retain and gives it up with
Release. The engine is torn down when its last reference is released.

Faces are opened from font files with Open. A FontFace keeps a reference to
its engine for as long as it lives, and carries the shaping face for math
measurement (package otface) which is derived from it when opening.

	e, err := engine.Init(engine.WithDPI(96))
	…
	face, err := engine.Open(e, "/path/to/STIXTwoMath-Regular.otf", 0)
	…
	defer face.Close()
	e.Release() // face still holds a reference
	axis := face.ShapingFace().MathConstant(otface.AxisHeight)

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package engine

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'font.engine'
func tracer() tracing.Trace {
	return tracing.Select("font.engine")
}
