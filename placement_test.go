package isom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMapAndCache(t *testing.T, tileWidth, tileHeight uint16) (*ScMap, *Cache) {
	t.Helper()
	ts := testTileset(t)
	m := NewScMap(tileWidth, tileHeight, BrushBadlands)
	cache := NewCache(ts, int(tileWidth), int(tileHeight))
	return m, cache
}

func TestPlaceTerrainStampsCenterDiamond(t *testing.T) {
	m, cache := newTestMapAndCache(t, 32, 32)

	center := Diamond{X: 16, Y: 16}
	placed, err := m.PlaceTerrain(center, badlandsDirt, 3, cache)
	require.NoError(t, err)
	assert.True(t, placed)

	isomValue := m.IsomRectAt(center.Point()).Left >> 4
	assert.Equal(t, cache.Tileset.TerrainTypes[badlandsDirt].IsomValue, isomValue)

	assert.LessOrEqual(t, cache.ChangedArea.Left, cache.ChangedArea.Right)
	assert.LessOrEqual(t, cache.ChangedArea.Top, cache.ChangedArea.Bottom)
}

func TestPlaceTerrainInvalidDiamondRejected(t *testing.T) {
	m, cache := newTestMapAndCache(t, 32, 32)

	placed, err := m.PlaceTerrain(Diamond{X: 1, Y: 0}, badlandsDirt, 3, cache)
	assert.False(t, placed)
	assert.ErrorIs(t, err, ErrInvalidPlacement)
}

func TestPlaceTerrainUnknownTerrainTypeRejected(t *testing.T) {
	m, cache := newTestMapAndCache(t, 32, 32)

	placed, err := m.PlaceTerrain(Diamond{X: 16, Y: 16}, 1, 3, cache)
	assert.False(t, placed)
	assert.ErrorIs(t, err, ErrInvalidPlacement)
}

func TestSetDiamondIsomValuesWritesAllFourQuadrants(t *testing.T) {
	m, cache := newTestMapAndCache(t, 32, 32)
	d := Diamond{X: 16, Y: 16}

	m.SetDiamondIsomValues(d, 7, false, cache)

	for _, q := range Quadrants {
		p := d.RectCoords(q)
		pq := ProjectedQuadrantAt(q)
		assert.Equal(t, uint16(7<<4)|uint16(pq.FirstEdgeFlag), m.IsomRectAt(p).GetIsomValue(pq.FirstSide))
	}
}

func TestAddIsomUndoDedupsBySlot(t *testing.T) {
	m, cache := newTestMapAndCache(t, 32, 32)
	p := RectPoint{X: 4, Y: 4}

	m.addIsomUndo(p, cache)
	first := cache.undoMap[m.isomRectIndex(p)]
	require.NotNil(t, first)

	m.addIsomUndo(p, cache)
	assert.Same(t, first, cache.undoMap[m.isomRectIndex(p)])
}

func TestSetIsomValueOutOfBoundsIsNoop(t *testing.T) {
	m, cache := newTestMapAndCache(t, 4, 4)
	m.setIsomValue(RectPoint{X: -1, Y: -1}, TopLeft, 5, false, cache)
}
