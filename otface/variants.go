package otface

import (
	"iter"

	"github.com/npillmayer/mathfont/otquery"
)

// fetchFunc fetches elements of an engine sequence, starting at index start,
// into buf. It returns the total number of elements of the sequence.
// An empty buf probes for the length.
type fetchFunc[T any] func(start int, buf []T) int

// materialize collects a complete engine sequence: a probe learns its
// length, then every element is fetched with a call of its own.
func materialize[T any](fetch fetchFunc[T]) []T {
	n := fetch(0, nil)
	if n <= 0 {
		return nil
	}
	items := make([]T, n)
	for i := range items {
		fetch(i, items[i:i+1])
	}
	return items
}

// VariantSequence steps through the size variants of a glyph, from smallest
// to largest. Variants are fetched from the font one at a time. A sequence
// cannot be rewound; ask the face for a new one instead.
type VariantSequence struct {
	n     int
	next  int
	fetch fetchFunc[GlyphVariant]
}

// GlyphVariants returns the sequence of size variants of glyph g for
// stretching in direction dir.
func (f *Face) GlyphVariants(g GlyphID, dir Direction) *VariantSequence {
	fetch := f.variantFetcher(g, dir)
	seq := &VariantSequence{fetch: fetch, n: fetch(0, nil)}
	tracer().Debugf("glyph %d has %d %s variants", g, seq.n, dir)
	return seq
}

// Len returns the number of variants, no matter how many have been consumed.
func (seq *VariantSequence) Len() int {
	if seq == nil {
		return 0
	}
	return seq.n
}

// Next returns the next variant. After the last variant it returns false,
// and continues to do so.
func (seq *VariantSequence) Next() (GlyphVariant, bool) {
	var v [1]GlyphVariant
	if seq == nil || seq.next >= seq.n {
		return v[0], false
	}
	seq.fetch(seq.next, v[:])
	seq.next++
	return v[0], true
}

// Remaining fetches all variants not consumed yet with one call to the
// font engine. The sequence is exhausted afterwards.
func (seq *VariantSequence) Remaining() []GlyphVariant {
	if seq == nil || seq.next >= seq.n {
		return nil
	}
	rest := make([]GlyphVariant, seq.n-seq.next)
	seq.fetch(seq.next, rest)
	seq.next = seq.n
	return rest
}

// All returns an iterator over the variants not consumed yet. Ranging over
// it consumes the sequence.
func (seq *VariantSequence) All() iter.Seq[GlyphVariant] {
	return func(yield func(GlyphVariant) bool) {
		for {
			v, ok := seq.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

func (f *Face) variantFetcher(g GlyphID, dir Direction) fetchFunc[GlyphVariant] {
	gid, ok := glyph(g)
	return func(start int, buf []GlyphVariant) int {
		otf := f.otf()
		if !ok {
			return 0
		}
		raw := make([]otquery.MathGlyphVariant, len(buf))
		n := otquery.MathGlyphVariants(otf, gid, dir.IsVertical(), start, raw)
		for i := range buf {
			if start+i >= n {
				break
			}
			buf[i] = GlyphVariant{Glyph: GlyphID(raw[i].Glyph), Advance: raw[i].Advance}
		}
		return n
	}
}

// GlyphAssembly returns the parts to construct glyph g of arbitrary size
// in direction dir. Glyphs without assembly data have no parts and an
// italics correction of 0.
func (f *Face) GlyphAssembly(g GlyphID, dir Direction) GlyphAssembly {
	otf := f.otf()
	gid, ok := glyph(g)
	if !ok {
		return GlyphAssembly{}
	}
	var assembly GlyphAssembly
	fetch := func(start int, buf []GlyphPart) int {
		raw := make([]otquery.MathGlyphPart, len(buf))
		n := otquery.MathGlyphAssembly(otf, gid, dir.IsVertical(), start, raw, &assembly.ItalicsCorrection)
		for i := range buf {
			if start+i >= n {
				break
			}
			buf[i] = fromEnginePart(raw[i])
		}
		return n
	}
	assembly.Parts = materialize[GlyphPart](fetch)
	tracer().Debugf("glyph %d has %d %s assembly parts", g, len(assembly.Parts), dir)
	return assembly
}

func fromEnginePart(p otquery.MathGlyphPart) GlyphPart {
	return GlyphPart{
		Glyph:                GlyphID(p.Glyph),
		StartConnectorLength: p.StartConnectorLength,
		EndConnectorLength:   p.EndConnectorLength,
		FullAdvance:          p.FullAdvance,
		Extender:             p.Extender,
	}
}
