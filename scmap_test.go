package isom

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewScMapDimensions(t *testing.T) {
	m := NewScMap(8, 6, BrushBadlands)
	assert.Equal(t, 5, m.IsomWidth())
	assert.Equal(t, 7, m.IsomHeight())
	assert.Len(t, m.Tiles, 48)
	assert.Len(t, m.EditorTiles, 48)
	assert.Len(t, m.IsomRects, 35)
}

func TestScMapIsInBounds(t *testing.T) {
	m := NewScMap(8, 6, BrushBadlands)
	assert.True(t, m.IsInBounds(RectPoint{X: 0, Y: 0}))
	assert.True(t, m.IsInBounds(RectPoint{X: 4, Y: 6}))
	assert.False(t, m.IsInBounds(RectPoint{X: 5, Y: 0}))
	assert.False(t, m.IsInBounds(RectPoint{X: -1, Y: 0}))
}

func TestScMapIsomRectAtRoundTrip(t *testing.T) {
	m := NewScMap(8, 6, BrushBadlands)
	p := RectPoint{X: 2, Y: 3}
	m.IsomRectAt(p).Left = 77
	assert.Equal(t, uint16(77), m.IsomRectAt(p).Left)
}

func TestScMapIsomRectBoundsChecked(t *testing.T) {
	m := NewScMap(8, 6, BrushBadlands)

	r, err := m.IsomRect(0)
	require.NoError(t, err)
	assert.NotNil(t, r)

	_, err = m.IsomRect(-1)
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = m.IsomRect(len(m.IsomRects))
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestScMapSetTileValueKeepsTilesInLockstep(t *testing.T) {
	m := NewScMap(4, 4, BrushBadlands)
	m.setTileValue(1, 2, 99)
	assert.Equal(t, uint16(99), m.getTileValue(1, 2))
	assert.Equal(t, uint16(99), m.Tiles[2*int(m.TileWidth)+1])
}

func TestTileGroupOf(t *testing.T) {
	assert.Equal(t, uint16(0), tileGroupOf(5))
	assert.Equal(t, uint16(1), tileGroupOf(16))
	assert.Equal(t, uint16(2), tileGroupOf(35))
}

func TestScMapEncodeDecodeRoundTrip(t *testing.T) {
	m := NewScMap(4, 4, BrushBadlands)
	m.Tiles[0] = 12
	m.EditorTiles[1] = 34
	m.IsomRects[2] = IsomRect{Left: 1, Top: 2, Right: 3, Bottom: 4}

	var buf bytes.Buffer
	require.NoError(t, m.Encode(&buf))

	decoded, err := Decode(&buf)
	require.NoError(t, err)

	assert.Equal(t, m.TileWidth, decoded.TileWidth)
	assert.Equal(t, m.TileHeight, decoded.TileHeight)
	assert.Equal(t, m.Brush, decoded.Brush)
	assert.Equal(t, m.Tiles, decoded.Tiles)
	assert.Equal(t, m.EditorTiles, decoded.EditorTiles)
	assert.Equal(t, m.IsomRects, decoded.IsomRects)
}

func TestScMapWriteFileAndOpenRoundTrip(t *testing.T) {
	m := NewScMap(4, 4, BrushBadlands)
	m.IsomRects[3] = IsomRect{Left: 9, Top: 8, Right: 7, Bottom: 6}

	fname := t.TempDir() + "/map.xml"
	require.NoError(t, m.WriteFile(fname))

	reopened, err := Open(fname)
	require.NoError(t, err)
	assert.Equal(t, m.IsomRects, reopened.IsomRects)
}

func TestDecodeRectsMalformed(t *testing.T) {
	_, err := decodeRects([]byte("1,2,3"))
	assert.Error(t, err)
}

func TestEncodeDecodeCSVUint16Empty(t *testing.T) {
	out, err := decodeCSVUint16(encodeCSVUint16(nil))
	require.NoError(t, err)
	assert.Nil(t, out)
}
