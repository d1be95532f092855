package isom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTileset(t *testing.T) *Tileset {
	t.Helper()
	ts, err := LoadTileset(BrushBadlands, nil)
	require.NoError(t, err)
	return ts
}

func TestNewCacheDimensions(t *testing.T) {
	c := NewCache(testTileset(t), 10, 10)
	assert.Equal(t, 6, c.IsomWidth)
	assert.Equal(t, 11, c.IsomHeight)
	assert.Len(t, c.undoMap, c.IsomWidth*c.IsomHeight)
}

func TestCacheResetAndSetAllChanged(t *testing.T) {
	c := NewCache(testTileset(t), 4, 4)
	c.SetAllChanged()
	assert.Equal(t, BoundingBox{Left: 0, Top: 0, Right: c.IsomWidth - 1, Bottom: c.IsomHeight - 1}, c.ChangedArea)

	c.ResetChangedArea()
	assert.Greater(t, c.ChangedArea.Left, c.ChangedArea.Right)
	assert.Greater(t, c.ChangedArea.Top, c.ChangedArea.Bottom)
}

func TestCacheTerrainTypeIsomValue(t *testing.T) {
	c := NewCache(testTileset(t), 4, 4)
	assert.Equal(t, c.Tileset.TerrainTypes[badlandsDirt].IsomValue, c.TerrainTypeIsomValue(badlandsDirt))
	assert.Equal(t, uint16(0), c.TerrainTypeIsomValue(-1))
	assert.Equal(t, uint16(0), c.TerrainTypeIsomValue(len(c.Tileset.TerrainTypes)+5))
}

func TestCacheRandomSubtileOutOfRangeGroup(t *testing.T) {
	c := NewCache(testTileset(t), 4, 4)
	assert.Equal(t, uint16(16*999), c.RandomSubtile(999))
}

func TestCacheFinalizeUndoableOperation(t *testing.T) {
	c := NewCache(testTileset(t), 4, 4)
	u := RectUndo{}
	c.undoMap[0] = &u

	c.FinalizeUndoableOperation()
	assert.Nil(t, c.undoMap[0])
}
