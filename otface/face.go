package otface

import (
	"bytes"
	"fmt"

	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/harfbuzz"
	"github.com/npillmayer/mathfont/internal/fontload"
	"github.com/npillmayer/mathfont/internal/retain"
	"github.com/npillmayer/mathfont/ot"
	"github.com/npillmayer/mathfont/otquery"
)

// metricsFont is the outline and metrics side of a face: the parsed tables
// and go-text's view of the same face.
type metricsFont struct {
	otf  *ot.Font
	face *font.Face
}

// Face is a font face for measuring math. It is created by FromRasterFont
// or FromPlatformFont and must be closed when no longer used. Calling any
// method other than Close on a closed face panics.
type Face struct {
	index   int
	metrics *retain.Handle[metricsFont]
	shaper  *retain.Handle[*harfbuzz.Font]
}

// RasterFont is a font loaded by a rasterizer. It gives access to the
// binary of the font file and the index of the face within it.
// fontload.ScalableFont is a RasterFont.
type RasterFont interface {
	FontData() []byte
	FaceIndex() int
}

var _ RasterFont = (*fontload.ScalableFont)(nil)

// FromRasterFont creates a face from a font loaded by a rasterizer.
// rf must not be nil.
func FromRasterFont(rf RasterFont) (*Face, error) {
	if rf == nil {
		panic("otface: attempt to create face from nil raster font")
	}
	return newFace(rf.FontData(), rf.FaceIndex())
}

// PlatformFont is a font installed on the host.
type PlatformFont struct {
	Name  string // name the font has been looked up by
	Path  string // location of the font file
	Index int    // face index within the file
}

// LookupPlatformFont locates a font in the user and system font
// directories. name may be a file name ("STIXTwoMath-Regular.otf"), a
// file name without extension, or the path of a font file.
func LookupPlatformFont(name string) (PlatformFont, error) {
	path, err := fontload.Locate(name)
	if err != nil {
		return PlatformFont{}, err
	}
	return PlatformFont{Name: name, Path: path}, nil
}

// FromPlatformFont creates a face from a font installed on the host.
// Passing a PlatformFont without a path panics.
func FromPlatformFont(pf PlatformFont) (*Face, error) {
	if pf.Path == "" {
		panic("otface: attempt to create face from unresolved platform font")
	}
	sf, err := fontload.LoadScalableFont(pf.Path, pf.Index)
	if err != nil {
		return nil, err
	}
	return FromRasterFont(sf)
}

func newFace(data []byte, index int) (*Face, error) {
	otf, err := ot.ParseFace(data, index)
	if err != nil {
		return nil, fmt.Errorf("cannot parse face %d: %w", index, err)
	}
	faces, err := font.ParseTTC(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("cannot load face %d for shaping: %w", index, err)
	}
	if index < 0 || index >= len(faces) {
		return nil, fmt.Errorf("face index %d out of range, font has %d faces", index, len(faces))
	}
	metrics := retain.New(metricsFont{otf: otf, face: faces[index]}, func(metricsFont) {
		tracer().Debugf("released metrics of face %d", index)
	})
	// the shaping font is derived from the metrics face and keeps it alive
	derivedFrom := metrics.Retain()
	shaper := retain.New(harfbuzz.NewFont(faces[index]), func(*harfbuzz.Font) {
		derivedFrom.Release()
	})
	f := &Face{index: index, metrics: metrics, shaper: shaper}
	tracer().Infof("created face %d, upem=%d, glyphs=%d, MATH=%v",
		index, f.Upem(), f.GlyphCount(), f.HasOTMathTable())
	return f, nil
}

// Close releases the engine objects of the face. Closing a face twice has no
// effect.
func (f *Face) Close() {
	if f == nil {
		return
	}
	f.shaper.Release()
	f.metrics.Release()
}

// Closed reports whether the face has been closed.
func (f *Face) Closed() bool {
	return f == nil || f.metrics.Released()
}

func (f *Face) otf() *ot.Font {
	if f == nil {
		panic("otface: use of nil face")
	}
	return f.metrics.Value().otf
}

// OpenType returns the parsed tables of the face, for inspection with
// package otquery.
func (f *Face) OpenType() *ot.Font {
	return f.otf()
}

// Index is the index of the face within its font file.
func (f *Face) Index() int {
	f.otf()
	return f.index
}

// Upem returns the design units per em.
func (f *Face) Upem() int {
	return int(f.metrics.Value().face.Upem())
}

// GlyphCount returns the number of glyphs of the face.
func (f *Face) GlyphCount() int {
	return f.otf().NumGlyphs()
}

// GlyphIndex returns the glyph a code-point is mapped to, if any.
func (f *Face) GlyphIndex(r rune) ot.Option[GlyphID] {
	gid, ok := f.metrics.Value().face.NominalGlyph(r)
	return ot.OptionOf(GlyphID(gid), ok)
}

// Ascent returns the ascender of the horizontal font extents.
func (f *Face) Ascent() int32 {
	return int32(f.shaper.Value().ExtentsForDirection(harfbuzz.LeftToRight).Ascender)
}

// Descent returns the descender of the horizontal font extents. It is
// negative for glyphs extending below the baseline.
func (f *Face) Descent() int32 {
	return int32(f.shaper.Value().ExtentsForDirection(harfbuzz.LeftToRight).Descender)
}

// HasOTMathTable reports whether the face has a usable MATH table.
func (f *Face) HasOTMathTable() bool {
	return otquery.HasMathData(f.otf())
}

// glyph converts g for querying the tables. Glyph IDs beyond the range of
// OpenType glyph indices cannot belong to the face.
func glyph(g GlyphID) (ot.GlyphIndex, bool) {
	if g > 0xffff {
		return 0, false
	}
	return ot.GlyphIndex(g), true
}
