package fonttest

import (
	"encoding/binary"
	"testing"

	"github.com/npillmayer/mathfont/ot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostTable(t *testing.T) {
	otf, err := ot.Parse(MiniMath())
	require.NoError(t, err)
	post := otf.Table(ot.T("post"))
	require.NotNil(t, post)
	b := post.Binary()
	require.GreaterOrEqual(t, len(b), 12)
	assert.Equal(t, uint32(0x00030000), binary.BigEndian.Uint32(b))
	assert.Equal(t, int16(-100), int16(binary.BigEndian.Uint16(b[8:])), "underline position")
	assert.Equal(t, uint16(50), binary.BigEndian.Uint16(b[10:]), "underline thickness")
}
