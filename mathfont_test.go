package mathfont

import (
	"testing"

	"github.com/npillmayer/mathfont/engine"
	"github.com/npillmayer/mathfont/internal/fonttest"
	"github.com/npillmayer/mathfont/otface"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.mathfont")
	defer teardown()
	//
	path := fonttest.WriteFile(t, "MiniMath.otf", fonttest.MiniMath())
	face, err := Open(path, 0)
	require.NoError(t, err)
	math := face.ShapingFace()
	assert.Equal(t, int32(70), math.MathConstant(otface.ScriptPercentScaleDown))
	assert.Equal(t, int32(55), math.MathConstant(otface.ScriptScriptPercentScaleDown))
	face.Close()
	assert.True(t, math.Closed())
}

func TestOpenMissing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.mathfont")
	defer teardown()
	//
	_, err := Open(t.TempDir()+"/nothing.otf", 0)
	var openErr *engine.OpenError
	assert.ErrorAs(t, err, &openErr)
}
