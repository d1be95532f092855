package isom

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// AdjacencyCache memoizes the expanded terrain-type adjacency matrix for
// a brush so repeated LoadTileset calls for the same brush skip the
// flood-fill expansion in populateTerrainTypeMap.
type AdjacencyCache struct {
	filename string
	db       *sqlx.DB
}

// NewAdjacencyCache creates a temp-file backed AdjacencyCache.
func NewAdjacencyCache() (*AdjacencyCache, error) {
	return OpenAdjacencyCache(filepath.Join(os.TempDir(), "isom-adjacency-cache.sqlite"))
}

// OpenAdjacencyCache opens (creating if needed) an AdjacencyCache at fname.
func OpenAdjacencyCache(fname string) (*AdjacencyCache, error) {
	db, err := sqlx.Open("sqlite3", fname)
	if err != nil {
		return nil, err
	}
	c := &AdjacencyCache{filename: fname, db: db}
	return c, c.init()
}

func (c *AdjacencyCache) init() error {
	_, err := c.db.Exec(`CREATE TABLE IF NOT EXISTS adjacency_map(
		brush INTEGER PRIMARY KEY,
		expanded TEXT NOT NULL
	);`)
	return err
}

// Filename returns the path to the adjacency cache database on disk.
func (c *AdjacencyCache) Filename() string { return c.filename }

// Get returns the previously-expanded terrain-type matrix for brush, if
// one has been stored.
func (c *AdjacencyCache) Get(brush BrushId) ([]uint16, bool, error) {
	rows, err := c.db.NamedQuery("SELECT brush, expanded FROM adjacency_map WHERE brush=:brush LIMIT 1;",
		map[string]interface{}{"brush": int(brush)})
	if err != nil {
		return nil, false, err
	}
	defer rows.Close()

	var row dbAdjacency
	found := false
	for rows.Next() {
		if err := rows.StructScan(&row); err != nil {
			return nil, false, err
		}
		found = true
	}
	if !found {
		return nil, false, nil
	}

	var expanded []uint16
	if err := json.Unmarshal([]byte(row.Expanded), &expanded); err != nil {
		return nil, false, err
	}
	return expanded, true, nil
}

// Put stores the expanded terrain-type matrix for brush.
func (c *AdjacencyCache) Put(brush BrushId, expanded []uint16) error {
	data, err := json.Marshal(expanded)
	if err != nil {
		return err
	}
	_, err = c.db.NamedExec(
		`INSERT INTO adjacency_map (brush, expanded) VALUES (:brush, :expanded)
		 ON CONFLICT (brush) DO UPDATE SET expanded=EXCLUDED.expanded;`,
		dbAdjacency{Brush: int(brush), Expanded: string(data)},
	)
	return err
}

// Close releases the underlying database handle.
func (c *AdjacencyCache) Close() error { return c.db.Close() }

type dbAdjacency struct {
	Brush    int    `db:"brush"`
	Expanded string `db:"expanded"`
}

// LoadTilesetCached is LoadTileset with the adjacency-matrix expansion
// memoized through cache.
func LoadTilesetCached(brush BrushId, tileGroups []TileGroup, cache *AdjacencyCache) (*Tileset, error) {
	if cache == nil {
		return LoadTileset(brush, tileGroups)
	}

	if expanded, ok, err := cache.Get(brush); err != nil {
		return nil, err
	} else if ok {
		return loadTileset(brush, tileGroups, expanded)
	}

	t, err := LoadTileset(brush, tileGroups)
	if err != nil {
		return nil, err
	}
	if err := cache.Put(brush, t.TerrainTypeMap); err != nil {
		return nil, fmt.Errorf("isom: caching adjacency matrix: %w", err)
	}
	return t, nil
}
