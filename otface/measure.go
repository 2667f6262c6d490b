package otface

import (
	"github.com/go-text/typesetting/harfbuzz"
)

// Measure shapes text as a single run in direction dir and returns the
// positions of the resulting glyphs. No script or language is set for
// shaping. Width is the sum of x-advances plus the x-offset of the last
// glyph, height likewise for y. Empty text measures 0 by 0.
func (f *Face) Measure(text string, dir Direction) MeasuredRun {
	shaper := f.shaper.Value()
	run := MeasuredRun{}
	if text == "" {
		return run
	}
	buf := harfbuzz.NewBuffer()
	buf.Props.Direction = dir.harfbuzz()
	buf.AddRunes([]rune(text), 0, -1)
	buf.Shape(shaper, nil)
	run.Glyphs = make([]GlyphPosition, len(buf.Pos))
	for i, pos := range buf.Pos {
		run.Glyphs[i] = GlyphPosition{
			Glyph:    GlyphID(buf.Info[i].Glyph),
			XAdvance: int32(pos.XAdvance),
			YAdvance: int32(pos.YAdvance),
			XOffset:  int32(pos.XOffset),
			YOffset:  int32(pos.YOffset),
		}
		run.Width += int32(pos.XAdvance)
		run.Height += int32(pos.YAdvance)
	}
	if n := len(run.Glyphs); n > 0 {
		run.Width += run.Glyphs[n-1].XOffset
		run.Height += run.Glyphs[n-1].YOffset
	}
	tracer().Debugf("measured %q %s: %d glyphs, %d x %d", text, dir, len(run.Glyphs), run.Width, run.Height)
	return run
}
