package isom

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCV5Fixture(t *testing.T, groups []TileGroup) string {
	t.Helper()
	fname := filepath.Join(t.TempDir(), "fixture.cv5")
	f, err := os.Create(fname)
	require.NoError(t, err)
	defer f.Close()

	for _, g := range groups {
		require.NoError(t, binary.Write(f, binary.LittleEndian, g.TerrainType))
		require.NoError(t, binary.Write(f, binary.LittleEndian, g.Buildability))
		require.NoError(t, binary.Write(f, binary.LittleEndian, g.GroundHeight))
		require.NoError(t, binary.Write(f, binary.LittleEndian, uint16(g.Links.Left)))
		require.NoError(t, binary.Write(f, binary.LittleEndian, uint16(g.Links.Top)))
		require.NoError(t, binary.Write(f, binary.LittleEndian, uint16(g.Links.Right)))
		require.NoError(t, binary.Write(f, binary.LittleEndian, uint16(g.Links.Bottom)))
		require.NoError(t, binary.Write(f, binary.LittleEndian, g.StackConnection.Top))
		require.NoError(t, binary.Write(f, binary.LittleEndian, g.StackConnection.Bottom))
		require.NoError(t, binary.Write(f, binary.LittleEndian, g.MegaTileIndex))
	}
	return fname
}

func TestLoadTileGroupsFromCV5RoundTrip(t *testing.T) {
	want := []TileGroup{
		{
			TerrainType:     badlandsDirt,
			Buildability:    1,
			GroundHeight:    2,
			Links:           DirectionalLinks{Left: 1, Top: 2, Right: 3, Bottom: 4},
			StackConnection: StackConnection{Top: 5, Bottom: 6},
			MegaTileIndex:   [16]uint16{1, 2, 3},
		},
		{
			TerrainType:   badlandsGrass,
			MegaTileIndex: [16]uint16{10},
		},
	}

	fname := writeCV5Fixture(t, want)

	got, err := LoadTileGroupsFromCV5(fname)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadTileGroupsFromCV5MissingFile(t *testing.T) {
	_, err := LoadTileGroupsFromCV5(filepath.Join(t.TempDir(), "missing.cv5"))
	assert.ErrorIs(t, err, ErrMissingAsset)
}

func TestLoadTileGroupsFromCV5CorruptSize(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "corrupt.cv5")
	require.NoError(t, os.WriteFile(fname, make([]byte, tileGroupRecordSize+3), 0644))

	_, err := LoadTileGroupsFromCV5(fname)
	assert.ErrorIs(t, err, ErrCorruptAsset)
}

func TestLoadTilesetUnknownBrush(t *testing.T) {
	_, err := LoadTileset(BrushId(-1), nil)
	assert.ErrorIs(t, err, ErrInvalidPlacement)

	_, err = LoadTileset(brushTotal, nil)
	assert.ErrorIs(t, err, ErrInvalidPlacement)
}

func TestLoadTilesetBadlandsEmptyGroups(t *testing.T) {
	ts, err := LoadTileset(BrushBadlands, nil)
	require.NoError(t, err)
	require.NotNil(t, ts)

	assert.Equal(t, BrushBadlands, ts.Brush)
	assert.NotEmpty(t, ts.TerrainTypes)
	assert.NotEmpty(t, ts.IsomLinks)

	dirtIsomValue := ts.TerrainTypes[badlandsDirt].IsomValue
	require.Less(t, int(dirtIsomValue), len(ts.IsomLinks))
	assert.EqualValues(t, badlandsDirt, ts.IsomLinks[dirtIsomValue].TerrainType)
}

func TestTilesetSearchStartOutOfRangeIsZero(t *testing.T) {
	ts := &Tileset{TerrainTypes: make([]TerrainTypeInfo, 3), TerrainTypeMap: []uint16{0, 1, 2, 3, 4, 5, 6, 7, 8}}
	assert.Equal(t, uint16(0), ts.SearchStart(99, 0))

	empty := &Tileset{}
	assert.Equal(t, uint16(0), empty.SearchStart(0, 0))
}
