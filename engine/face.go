package engine

import (
	"fmt"

	"github.com/npillmayer/mathfont/internal/fontload"
	"github.com/npillmayer/mathfont/otface"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
)

// FontFace is a face of a font file, opened by an engine. It carries a
// shaping face for math measurement, and, after SetPixelSize, a raster
// face.
type FontFace struct {
	engine  *Engine
	raw     *fontload.ScalableFont
	shaping *otface.Face
	raster  font.Face
	width   int
	height  int
	closed  bool
}

// Open opens face number faceIndex of a font file. Collections (*.ttc,
// *.otc) may contain more than one face, all other files have face 0 only.
// Opening with a nil engine panics.
//
// The face holds a reference to e until it is closed.
func Open(e *Engine, path string, faceIndex int) (*FontFace, error) {
	if e == nil {
		panic("engine: attempt to open font with nil engine")
	}
	if err := fontload.CheckPath(path); err != nil {
		return nil, &EncodingError{Path: path, Err: err}
	}
	raw, err := fontload.LoadScalableFont(path, faceIndex)
	if err != nil {
		tracer().Errorf("cannot load font %s: %v", path, err)
		return nil, &OpenError{Path: path, Index: faceIndex, Err: err}
	}
	shaping, err := otface.FromRasterFont(raw)
	if err != nil {
		tracer().Errorf("cannot create shaping face for %s: %v", path, err)
		return nil, &OpenError{Path: path, Index: faceIndex, Err: err}
	}
	face := &FontFace{
		engine:  e.Retain(),
		raw:     raw,
		shaping: shaping,
	}
	tracer().Infof("opened face %d of %s (%s)", faceIndex, path, raw.Fontname)
	return face, nil
}

// Name returns the full name of the face, if the font states one.
func (ff *FontFace) Name() string {
	ff.mustBeOpen()
	return ff.raw.Fontname
}

// Path returns the file the face has been opened from.
func (ff *FontFace) Path() string {
	ff.mustBeOpen()
	return ff.raw.Filepath
}

// ShapingFace returns the face for math measurement.
func (ff *FontFace) ShapingFace() *otface.Face {
	ff.mustBeOpen()
	return ff.shaping
}

// SetPixelSize sets the size of the raster face, in pixels per em. A width
// of 0 means the same as height. Raster faces are scaled uniformly, thus
// width must be 0 or equal to height; other sizes are rejected with an
// error, where FreeType would accept a non-uniform size.
//
// The pixel size has no effect on the shaping face, as math metrics are
// measured in design units.
func (ff *FontFace) SetPixelSize(width, height int) error {
	ff.mustBeOpen()
	if width == 0 {
		width = height
	}
	if height <= 0 || width != height {
		return fmt.Errorf("engine: invalid pixel size %d x %d", width, height)
	}
	dpi := ff.engine.DPI()
	raster, err := opentype.NewFace(ff.raw.SFNT, &opentype.FaceOptions{
		Size:    float64(height) * 72 / dpi,
		DPI:     dpi,
		Hinting: ff.engine.Hinting(),
	})
	if err != nil {
		return err
	}
	ff.closeRaster()
	ff.raster, ff.width, ff.height = raster, width, height
	tracer().Debugf("raster face of %s set to %d px", ff.raw.Fontname, height)
	return nil
}

// PixelSize returns the size set with SetPixelSize, or 0, 0.
func (ff *FontFace) PixelSize() (width, height int) {
	return ff.width, ff.height
}

// RasterFace returns the raster face, or nil if no pixel size has been set.
func (ff *FontFace) RasterFace() font.Face {
	ff.mustBeOpen()
	return ff.raster
}

// RasterMetrics returns the metrics of the raster face. It returns false if
// no pixel size has been set.
func (ff *FontFace) RasterMetrics() (font.Metrics, bool) {
	ff.mustBeOpen()
	if ff.raster == nil {
		return font.Metrics{}, false
	}
	return ff.raster.Metrics(), true
}

// Close releases the shaping face, the raster face and the reference to
// the engine. Closing a face twice has no effect.
func (ff *FontFace) Close() {
	if ff == nil || ff.closed {
		return
	}
	ff.closed = true
	ff.shaping.Close()
	ff.closeRaster()
	ff.engine.Release()
	tracer().Debugf("closed face %d of %s", ff.raw.Index, ff.raw.Filepath)
}

func (ff *FontFace) closeRaster() {
	if ff.raster == nil {
		return
	}
	if err := ff.raster.Close(); err != nil {
		tracer().Errorf("closing raster face: %v", err)
	}
	ff.raster = nil
}

func (ff *FontFace) mustBeOpen() {
	if ff == nil {
		panic("engine: use of nil font face")
	}
	if ff.closed {
		panic("engine: use of closed font face")
	}
}
