package isom

// FillTerrain implements the fourth editing primitive, "new": it stamps
// every isom rect in m uniformly with terrainType's isom value, marks the
// whole grid changed, and re-projects tiles from the freshly filled isom
// values. Unlike PlaceTerrain, there is no brush shape or propagation --
// every field of every rect gets the same raw value, matching the
// original's newMap (IsomTests.cpp:94-109).
//
// Returns false (with ErrInvalidPlacement) if terrainType has no usable
// isom value in cache's tileset, leaving m untouched.
//
// The uniform-fill step below leaves every rect's fields reading
// (isom_value<<4)|Modified; the UpdateTilesFromIsom call that follows then
// clears those Modified flags as it re-projects tiles, exactly as it does
// for any other write -- see IsomApi.h:1776's unconditional
// isomRect.clearEditorFlags() -- so that post-condition is only observable
// between fillIsomRects and UpdateTilesFromIsom, not on FillTerrain's return.
func (m *ScMap) FillTerrain(terrainType int, cache *Cache) (bool, error) {
	isomValue := cache.TerrainTypeIsomValue(terrainType)
	if isomValue == 0 {
		return false, ErrInvalidPlacement
	}

	m.fillIsomRects(isomValue)
	cache.SetAllChanged()
	m.UpdateTilesFromIsom(cache)
	return true, nil
}

// fillIsomRects stamps every isom rect in m with the raw field value
// (isomValue<<4)|Modified, with no edge-flag nibble -- the actual
// assignment FillTerrain performs before re-projecting.
func (m *ScMap) fillIsomRects(isomValue uint16) {
	field := (isomValue << 4) | FlagModified
	for i := range m.IsomRects {
		m.IsomRects[i] = IsomRect{Left: field, Top: field, Right: field, Bottom: field}
	}
}
