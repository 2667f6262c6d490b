package fontload

import (
	"errors"
	"testing"

	"github.com/npillmayer/mathfont/internal/fonttest"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

func TestLoadScalableFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.load")
	defer teardown()
	//
	path := fonttest.WriteFile(t, "MiniMath.ttf", fonttest.MiniMath())
	f, err := LoadScalableFont(path, 0)
	require.NoError(t, err)
	assert.Equal(t, "MiniMath Regular", f.Fontname)
	assert.Equal(t, path, f.Filepath)
	assert.Equal(t, fonttest.MiniMathGlyphCount, f.SFNT.NumGlyphs())
	//
	_, err = LoadScalableFont(path, 1)
	assert.Error(t, err, "expected face index 1 of a single font to fail")
	_, err = LoadScalableFont(path+".missing", 0)
	assert.Error(t, err)
	_, err = LoadScalableFont("Mini\x00Math.ttf", 0)
	assert.True(t, errors.Is(err, ErrNulInPath))
}

func TestLoadCollection(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.load")
	defer teardown()
	//
	path := fonttest.WriteFile(t, "Mini.ttc", fonttest.Collection(fonttest.MiniText(), fonttest.MiniMath()))
	f, err := LoadScalableFont(path, 1)
	require.NoError(t, err)
	assert.Equal(t, "MiniMath Regular", f.Fontname)
	assert.Equal(t, 1, f.Index)
	f, err = LoadScalableFont(path, 0)
	require.NoError(t, err)
	assert.Equal(t, "MiniText Regular", f.Fontname)
	_, err = LoadScalableFont(path, 2)
	assert.Error(t, err)
}

func TestParseScalableFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.load")
	defer teardown()
	//
	f, err := ParseScalableFont(goregular.TTF, 0)
	require.NoError(t, err)
	assert.Equal(t, "Go Regular", f.Fontname)
	_, err = ParseScalableFont([]byte("no font"), 0)
	assert.Error(t, err)
}

func TestLocate(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.load")
	defer teardown()
	//
	path := fonttest.WriteFile(t, "MiniMath.otf", fonttest.MiniMath())
	located, err := Locate(path)
	require.NoError(t, err)
	assert.Equal(t, path, located)
	_, err = Locate("no-such-font-anywhere-4711.ttf")
	assert.Error(t, err)
	_, err = Locate("a\x00b")
	assert.ErrorIs(t, err, ErrNulInPath)
}
