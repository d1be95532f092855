package isom

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the knobs needed to stand up a fresh ScMap and Cache: map
// dimensions, the tileset to load, and the terrain type newly-placed
// diamonds default to. Grounded on the teacher's own Config (map/tile
// dimensions + defaults), extended with the ISOM-specific fields a tile
// map alone doesn't need.
type Config struct {
	// MapWidth/MapHeight are in tiles.
	MapWidth  uint `yaml:"map_width"`
	MapHeight uint `yaml:"map_height"`

	// TileWidth/TileHeight are in pixels. No code in this module reads
	// them; cmd/isomrender sizes its swatches from its own flags.
	TileWidth  uint `yaml:"tile_width"`
	TileHeight uint `yaml:"tile_height"`

	// Brush selects which of the eight built-in tileset descriptors a
	// freshly loaded Tileset should use.
	Brush BrushId `yaml:"brush"`

	// DefaultTerrainType is the terrain type index a freshly created map
	// is filled with via ScMap.FillTerrain, or 0 to leave a fresh map
	// unterrain'd (an all-zero isom grid).
	DefaultTerrainType int `yaml:"default_terrain_type"`

	// LogLevel/LogFile configure pkglog.
	LogLevel string `yaml:"log_level"`
	LogFile  string `yaml:"log_file"`
}

// DefaultConfig returns a Config with the teacher's own default map
// dimensions, Badlands as the default tileset, and no terrain pre-placed.
func DefaultConfig() *Config {
	return &Config{
		MapWidth:           128,
		MapHeight:          128,
		TileWidth:          32,
		TileHeight:         32,
		Brush:              BrushBadlands,
		DefaultTerrainType: 0,
		LogLevel:           "info",
	}
}

// LoadConfig reads a yaml Config from path, filling in DefaultConfig
// values for any field the file leaves unset.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
