// Command isombrush drives PlaceTerrain over a persisted ScMap: load (or
// create) a map and its tileset, stamp a brush of terrain at a diamond
// coordinate, re-project the affected tiles, and write the result back
// out. The flag layout and fileExists helper follow the teacher's
// cmd/map-render.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/voidshard/isom"
	"github.com/voidshard/isom/pkglog"
)

const desc = `Places ISOM terrain on a map and writes the result to disk.`

var cli struct {
	Config string `short:"c" help:"optional yaml config providing map/brush defaults and log settings"`

	Input  string `short:"i" help:"existing isom map file to edit; a fresh map is created if this is omitted or missing"`
	Output string `short:"o" help:"where to write the resulting isom map (required)"`

	CV5 string `help:"path to the tileset's CV5 asset (required)"`

	Brush int `default:"0" help:"BrushId of the tileset to load"`

	TileWidth  uint `default:"128" help:"tile width for a freshly created map"`
	TileHeight uint `default:"128" help:"tile height for a freshly created map"`

	DiamondX int `help:"x coordinate of the isom diamond to place terrain on"`
	DiamondY int `help:"y coordinate of the isom diamond to place terrain on"`

	TerrainType int `help:"terrain type index to place"`
	BrushExtent int  `default:"3" help:"width/height, in diamonds, of the brush"`

	AdjacencyCacheDB string `help:"optional sqlite path for the adjacency-matrix cache"`
	UndoDB           string `help:"optional sqlite path to record an undo log to"`
}

func main() {
	kong.Parse(&cli, kong.Name("isombrush"), kong.Description(desc))

	if cli.Output == "" {
		panic("output path is required")
	}

	cfg := isom.DefaultConfig()
	if cli.Config != "" {
		loaded, err := isom.LoadConfig(cli.Config)
		if err != nil {
			panic(err)
		}
		cfg = loaded
	}
	if err := pkglog.Init(cfg.LogLevel, cfg.LogFile); err != nil {
		panic(err)
	}

	tileGroups, err := isom.LoadTileGroupsFromCV5(cli.CV5)
	if err != nil {
		panic(err)
	}

	var adjacency *isom.AdjacencyCache
	if cli.AdjacencyCacheDB != "" {
		adjacency, err = isom.OpenAdjacencyCache(cli.AdjacencyCacheDB)
		if err != nil {
			panic(err)
		}
		defer adjacency.Close()
	}

	tileset, err := isom.LoadTilesetCached(isom.BrushId(cli.Brush), tileGroups, adjacency)
	if err != nil {
		panic(err)
	}

	var m *isom.ScMap
	fresh := cli.Input == "" || !fileExists(cli.Input)
	if fresh {
		m = isom.NewScMap(uint16(cli.TileWidth), uint16(cli.TileHeight), isom.BrushId(cli.Brush))
	} else {
		m, err = isom.Open(cli.Input)
		if err != nil {
			panic(err)
		}
	}

	cache := isom.NewCache(tileset, int(m.TileWidth), int(m.TileHeight))

	if cli.UndoDB != "" {
		store, err := isom.OpenUndoStore(cli.UndoDB)
		if err != nil {
			panic(err)
		}
		defer store.Close()
		cache.Sink = store
	}

	if fresh && cfg.DefaultTerrainType != 0 {
		if _, err := m.FillTerrain(cfg.DefaultTerrainType, cache); err != nil {
			panic(err)
		}
	}

	placed, err := m.PlaceTerrain(isom.Diamond{X: cli.DiamondX, Y: cli.DiamondY}, cli.TerrainType, cli.BrushExtent, cache)
	if err != nil {
		panic(err)
	}
	if !placed {
		panic("terrain placement rejected: invalid diamond or terrain type")
	}

	m.UpdateTilesFromIsom(cache)
	cache.FinalizeUndoableOperation()

	if err := m.WriteFile(cli.Output); err != nil {
		panic(err)
	}
	fmt.Printf("wrote %s\n", cli.Output)
}

func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && !info.IsDir()
}
