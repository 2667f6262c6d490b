package engine

import (
	"errors"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/npillmayer/mathfont/internal/fontload"
	"github.com/npillmayer/mathfont/internal/fonttest"
	"github.com/npillmayer/mathfont/otface"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func initEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := Init()
	require.NoError(t, err)
	t.Cleanup(e.Release)
	return e
}

func TestOpen(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.engine")
	defer teardown()
	//
	e := initEngine(t)
	path := fonttest.WriteFile(t, "MiniMath.ttf", fonttest.MiniMath())
	face, err := Open(e, path, 0)
	require.NoError(t, err)
	assert.Equal(t, "MiniMath Regular", face.Name())
	assert.Equal(t, path, face.Path())
	assert.Equal(t, 2, e.Refs())
	shaping := face.ShapingFace()
	require.NotNil(t, shaping)
	assert.Same(t, shaping, face.ShapingFace())
	assert.True(t, shaping.HasOTMathTable())
	assert.Equal(t, int32(258), shaping.MathConstant(otface.AxisHeight))
	face.Close()
	face.Close()
	assert.True(t, shaping.Closed())
	assert.Equal(t, 1, e.Refs())
	assert.Panics(t, func() { face.ShapingFace() })
}

func TestOpenCollection(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.engine")
	defer teardown()
	//
	e := initEngine(t)
	ttc := fonttest.Collection(fonttest.MiniText(), fonttest.MiniMath())
	path := fonttest.WriteFile(t, "Mini.ttc", ttc)
	face, err := Open(e, path, 1)
	require.NoError(t, err)
	defer face.Close()
	assert.Equal(t, 1, face.ShapingFace().Index())
	assert.True(t, face.ShapingFace().HasOTMathTable())
	_, err = Open(e, path, 2)
	var openErr *OpenError
	require.ErrorAs(t, err, &openErr)
	assert.Equal(t, 2, openErr.Index)
}

func TestOpenSamePathTwice(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.engine")
	defer teardown()
	//
	e := initEngine(t)
	path := fonttest.WriteFile(t, "MiniMath.ttf", fonttest.MiniMath())
	face1, err := Open(e, path, 0)
	require.NoError(t, err)
	defer face1.Close()
	face2, err := Open(e, path, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, e.Refs())
	m1, m2 := face1.ShapingFace(), face2.ShapingFace()
	assert.NotSame(t, m1, m2)
	assert.Equal(t, m1.Upem(), m2.Upem())
	assert.Equal(t, m1.Ascent(), m2.Ascent())
	assert.Equal(t, m1.Descent(), m2.Descent())
	for c := otface.ScriptPercentScaleDown; int(c) < otface.MathConstantCount; c++ {
		assert.Equal(t, m1.MathConstant(c), m2.MathConstant(c), c.String())
	}
	radical := m1.GlyphIndex('√').MustUnwrap()
	assert.Equal(t, m1.GlyphAssembly(radical, otface.TTB), m2.GlyphAssembly(radical, otface.TTB))
	assert.Equal(t, m1.Measure("Test", otface.LTR), m2.Measure("Test", otface.LTR))
	face2.Close()
	assert.Equal(t, 2, e.Refs())
	assert.False(t, m1.Closed(), "closing one face must leave the other open")
	assert.Equal(t, int32(258), m1.MathConstant(otface.AxisHeight))
}

func TestOpenErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.engine")
	defer teardown()
	//
	e := initEngine(t)
	_, err := Open(e, "Mini\x00Math.ttf", 0)
	var encErr *EncodingError
	require.ErrorAs(t, err, &encErr)
	assert.ErrorIs(t, err, fontload.ErrNulInPath)
	//
	missing := filepath.Join(t.TempDir(), "missing.otf")
	_, err = Open(e, missing, 0)
	var openErr *OpenError
	require.ErrorAs(t, err, &openErr)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	//
	junk := fonttest.WriteFile(t, "junk.otf", []byte("this is not a font"))
	_, err = Open(e, junk, 0)
	assert.ErrorAs(t, err, &openErr)
	assert.Equal(t, 1, e.Refs(), "failed opens must not hold on to the engine")
	//
	assert.Panics(t, func() { Open(nil, junk, 0) })
}

func TestFaceOutlivesEngineReference(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.engine")
	defer teardown()
	//
	e, err := Init()
	require.NoError(t, err)
	path := fonttest.WriteFile(t, "MiniMath.ttf", fonttest.MiniMath())
	face, err := Open(e, path, 0)
	require.NoError(t, err)
	e.Release()
	select {
	case <-e.Done():
		t.Fatal("engine torn down while a face holds a reference")
	default:
	}
	require.NoError(t, face.SetPixelSize(0, 20))
	face.Close()
	select {
	case <-e.Done():
	default:
		t.Error("expected engine to be torn down after closing the last face")
	}
}

func TestSetPixelSize(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.engine")
	defer teardown()
	//
	e := initEngine(t)
	path := fonttest.WriteFile(t, "MiniMath.ttf", fonttest.MiniMath())
	face, err := Open(e, path, 0)
	require.NoError(t, err)
	defer face.Close()
	_, ok := face.RasterMetrics()
	assert.False(t, ok)
	assert.Nil(t, face.RasterFace())
	shaping := face.ShapingFace()
	before := shaping.MathConstant(otface.FractionRuleThickness)
	radical := shaping.GlyphIndex('√').MustUnwrap()
	assemblyBefore := shaping.GlyphAssembly(radical, otface.TTB)
	//
	require.NoError(t, face.SetPixelSize(100, 100))
	w, h := face.PixelSize()
	assert.Equal(t, 100, w)
	assert.Equal(t, 100, h)
	metrics, ok := face.RasterMetrics()
	require.True(t, ok)
	assert.Equal(t, 77, metrics.Ascent.Ceil())
	assert.Equal(t, 26, metrics.Descent.Ceil())
	assert.NotNil(t, face.RasterFace())
	//
	require.NoError(t, face.SetPixelSize(0, 12))
	assert.Equal(t, before, shaping.MathConstant(otface.FractionRuleThickness))
	assert.Equal(t, assemblyBefore, shaping.GlyphAssembly(radical, otface.TTB))
	assert.Equal(t, int32(fonttest.MiniMathAscender), shaping.Ascent())
	//
	assert.Error(t, face.SetPixelSize(10, 12))
	assert.Error(t, face.SetPixelSize(0, 0))
	_, h = face.PixelSize()
	assert.Equal(t, 12, h)
}
