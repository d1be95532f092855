package isom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFillIsomRectsStampsEveryRectUniformly(t *testing.T) {
	m, cache := newTestMapAndCache(t, 32, 32)
	isomValue := cache.Tileset.TerrainTypes[badlandsDirt].IsomValue

	m.fillIsomRects(isomValue)

	want := IsomRect{
		Left:   (isomValue << 4) | FlagModified,
		Top:    (isomValue << 4) | FlagModified,
		Right:  (isomValue << 4) | FlagModified,
		Bottom: (isomValue << 4) | FlagModified,
	}
	for _, rect := range m.IsomRects {
		assert.Equal(t, want, rect)
	}
}

func TestFillTerrainResetsChangedArea(t *testing.T) {
	m, cache := newTestMapAndCache(t, 32, 32)

	filled, err := m.FillTerrain(badlandsDirt, cache)
	require.NoError(t, err)
	assert.True(t, filled)

	// UpdateTilesFromIsom resets the changed-area box once it has consumed it.
	assert.Greater(t, cache.ChangedArea.Left, cache.ChangedArea.Right)
}

func TestFillTerrainUnknownTerrainTypeRejected(t *testing.T) {
	m, cache := newTestMapAndCache(t, 32, 32)

	filled, err := m.FillTerrain(1, cache)
	assert.False(t, filled)
	assert.ErrorIs(t, err, ErrInvalidPlacement)

	for _, rect := range m.IsomRects {
		assert.Equal(t, IsomRect{}, rect)
	}
}

func TestFillTerrainReprojectsTiles(t *testing.T) {
	m, cache := newTestMapAndCache(t, 32, 32)

	_, err := m.FillTerrain(badlandsDirt, cache)
	require.NoError(t, err)

	for _, rect := range m.IsomRects {
		assert.False(t, rect.IsLeftModified())
	}
}
