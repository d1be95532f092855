package isom

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdjacencyCachePutGet(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "adjacency.sqlite")
	cache, err := OpenAdjacencyCache(fname)
	require.NoError(t, err)
	defer cache.Close()

	_, ok, err := cache.Get(BrushBadlands)
	require.NoError(t, err)
	assert.False(t, ok)

	expanded := []uint16{1, 2, 3, 4}
	require.NoError(t, cache.Put(BrushBadlands, expanded))

	got, ok, err := cache.Get(BrushBadlands)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, expanded, got)
}

func TestAdjacencyCachePutOverwrites(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "adjacency.sqlite")
	cache, err := OpenAdjacencyCache(fname)
	require.NoError(t, err)
	defer cache.Close()

	require.NoError(t, cache.Put(BrushBadlands, []uint16{1}))
	require.NoError(t, cache.Put(BrushBadlands, []uint16{2, 3}))

	got, ok, err := cache.Get(BrushBadlands)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []uint16{2, 3}, got)
}

func TestLoadTilesetCachedNilCacheFallsBackToLoadTileset(t *testing.T) {
	ts, err := LoadTilesetCached(BrushBadlands, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, BrushBadlands, ts.Brush)
}

func TestLoadTilesetCachedPopulatesAndReuses(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "adjacency.sqlite")
	cache, err := OpenAdjacencyCache(fname)
	require.NoError(t, err)
	defer cache.Close()

	ts1, err := LoadTilesetCached(BrushBadlands, nil, cache)
	require.NoError(t, err)

	_, ok, err := cache.Get(BrushBadlands)
	require.NoError(t, err)
	assert.True(t, ok)

	ts2, err := LoadTilesetCached(BrushBadlands, nil, cache)
	require.NoError(t, err)
	assert.Equal(t, ts1.TerrainTypeMap, ts2.TerrainTypeMap)
}
