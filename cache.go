package isom

import "math/rand"

// UndoSink receives RectUndo entries as edits happen. NewCache installs a
// sink that records nothing; NewUndoStore/OpenUndoStore provide a
// persistent one.
type UndoSink interface {
	AddIsomUndo(u RectUndo)
}

// noopUndoSink is the default sink when a caller has no undo log.
type noopUndoSink struct{}

func (noopUndoSink) AddIsomUndo(RectUndo) {}

// Cache holds everything needed to edit a grid of isom diamonds that is
// not part of the map itself: the active tileset's link table, the
// expanded terrain-type adjacency matrix, the isom-rect dimensions, the
// changed-area scratch box, and the per-position undo-dedup map. A Cache
// must be rebuilt whenever the tileset, map width, or map height change.
type Cache struct {
	Tileset *Tileset

	IsomWidth  int
	IsomHeight int

	ChangedArea BoundingBox

	undoMap []*RectUndo
	Sink    UndoSink

	Rand *rand.Rand
}

// NewCache builds a Cache sized for a tileWidth x tileHeight map using
// tileset. tileWidth must be even (one isom diamond spans two tiles).
func NewCache(tileset *Tileset, tileWidth, tileHeight int) *Cache {
	c := &Cache{
		Tileset:    tileset,
		IsomWidth:  tileWidth/2 + 1,
		IsomHeight: tileHeight + 1,
		Sink:       noopUndoSink{},
		Rand:       rand.New(rand.NewSource(1)),
	}
	c.undoMap = make([]*RectUndo, c.IsomWidth*c.IsomHeight)
	c.ResetChangedArea()
	return c
}

// ResetChangedArea collapses the changed-area box to empty (the original
// uses left > right / top > bottom as the empty sentinel).
func (c *Cache) ResetChangedArea() {
	c.ChangedArea = BoundingBox{Left: c.IsomWidth, Right: 0, Top: c.IsomHeight, Bottom: 0}
}

// SetAllChanged marks the entire isom grid as changed.
func (c *Cache) SetAllChanged() {
	c.ChangedArea = BoundingBox{Left: 0, Right: c.IsomWidth - 1, Top: 0, Bottom: c.IsomHeight - 1}
}

// TerrainTypeIsomValue returns the isom value placed in the ISOM section
// for terrainType, or 0 if terrainType is out of range.
func (c *Cache) TerrainTypeIsomValue(terrainType int) uint16 {
	if terrainType < 0 || terrainType >= len(c.Tileset.TerrainTypes) {
		return 0
	}
	return c.Tileset.TerrainTypes[terrainType].IsomValue
}

// RandomSubtile picks one concrete tile index out of tileGroup's 16
// mega-tile slots: common tiles fill the front of the array up to the
// first zero, and rare tiles (1 in 20 chance of being picked) follow that
// zero up to the next one.
func (c *Cache) RandomSubtile(tileGroup uint16) uint16 {
	if int(tileGroup) >= len(c.Tileset.TileGroups) {
		return 16 * tileGroup
	}
	group := c.Tileset.TileGroups[tileGroup]

	totalCommon := 0
	for totalCommon < 16 && group.MegaTileIndex[totalCommon] != 0 {
		totalCommon++
	}
	totalRare := 0
	for totalCommon+totalRare+1 < 16 && group.MegaTileIndex[totalCommon+totalRare+1] != 0 {
		totalRare++
	}

	if totalRare != 0 && c.Rand.Intn(20) == 0 {
		return 16*tileGroup + uint16(totalCommon+1+c.Rand.Intn(totalRare))
	}
	if totalCommon != 0 {
		return 16*tileGroup + uint16(c.Rand.Intn(totalCommon))
	}
	return 16 * tileGroup
}

// FinalizeUndoableOperation clears the undo-dedup map so the next
// undoable operation (a brush stroke, a paste, a resize) can record
// fresh before/after entries for every position it touches.
func (c *Cache) FinalizeUndoableOperation() {
	for i := range c.undoMap {
		c.undoMap[i] = nil
	}
}
