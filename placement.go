package isom

// addIsomUndo records the current (pre-edit) isom rect at p into the
// cache's undo map the first time p is touched during an undoable
// operation, and forwards the same before/after-zero record to the undo
// sink. Later edits to the same position within the operation reuse the
// existing undoMap slot instead of recording again (the dedup is by slot
// occupancy, not by any flag on the stored rect -- see DESIGN.md).
func (m *ScMap) addIsomUndo(p RectPoint, cache *Cache) {
	idx := m.isomRectIndex(p)
	if cache.undoMap[idx] != nil {
		return
	}
	u := NewRectUndo(Diamond{X: p.X, Y: p.Y}, *m.IsomRectAt(p), IsomRect{})
	cache.undoMap[idx] = &u
	cache.Sink.AddIsomUndo(u)
}

// setIsomValue writes isomValue into the named quadrant of the isom rect
// at p, stamps it Modified, and grows the cache's changed-area box to
// cover p. When undoable, the pre-existing undo record (if this is the
// first touch of p this operation) has its NewValue refreshed to the
// rect's state after the write.
func (m *ScMap) setIsomValue(p RectPoint, q Quadrant, isomValue uint16, undoable bool, cache *Cache) {
	if !m.IsInBounds(p) {
		return
	}

	idx := m.isomRectIndex(p)
	var tracked *RectUndo
	if undoable && idx < len(cache.undoMap) {
		m.addIsomUndo(p, cache)
		tracked = cache.undoMap[idx]
	}

	rect := m.IsomRectAt(p)
	rect.Set(ProjectedQuadrantAt(q), isomValue)
	rect.SetModified(ProjectedQuadrantAt(q))
	cache.ChangedArea.ExpandToInclude(p.X, p.Y)

	if tracked != nil {
		tracked.SetNewValue(*rect)
	}
}

// SetDiamondIsomValues writes isomValue into all four quadrants
// surrounding d. Implements DiamondSetter.
func (m *ScMap) SetDiamondIsomValues(d Diamond, isomValue uint16, undoable bool, cache *Cache) {
	for _, q := range Quadrants {
		m.setIsomValue(d.RectCoords(q), q, isomValue, undoable, cache)
	}
}

// PlaceTerrain stamps terrainType's isom value across a square brush of
// diamonds centered on d (brushExtent diamonds wide, with the usual
// off-by-one adjustment for even extents), then radially propagates the
// brush's edge diamonds outward so neighboring terrain blends in. Returns
// false (with ErrInvalidPlacement) if d is not a valid diamond coordinate
// or terrainType has no usable isom value in cache's tileset.
func (m *ScMap) PlaceTerrain(d Diamond, terrainType int, brushExtent int, cache *Cache) (bool, error) {
	isomValue := cache.TerrainTypeIsomValue(terrainType)
	if isomValue == 0 || !d.IsValid() || int(isomValue) >= len(cache.Tileset.IsomLinks) || cache.Tileset.IsomLinks[isomValue].TerrainType == 0 {
		return false, ErrInvalidPlacement
	}

	brushMin := brushExtent / -2
	brushMax := brushMin + brushExtent
	if brushExtent%2 == 0 {
		brushMin++
		brushMax++
	}

	cache.ResetChangedArea()

	var diamondsToUpdate []Diamond
	for brushOffsetX := brushMin; brushOffsetX < brushMax; brushOffsetX++ {
		for brushOffsetY := brushMin; brushOffsetY < brushMax; brushOffsetY++ {
			brushX := d.X + brushOffsetX - brushOffsetY
			brushY := d.Y + brushOffsetX + brushOffsetY
			brushDiamond := Diamond{X: brushX, Y: brushY}
			if !m.IsInBounds(brushDiamond.Point()) {
				continue
			}

			m.SetDiamondIsomValues(brushDiamond, isomValue, true, cache)

			onEdge := brushOffsetX == brushMin || brushOffsetX == brushMax-1 ||
				brushOffsetY == brushMin || brushOffsetY == brushMax-1
			if onEdge {
				for _, n := range Neighbors {
					neighbor := brushDiamond.Neighbor(n)
					if diamondNeedsUpdate(m, neighbor) {
						diamondsToUpdate = append(diamondsToUpdate, neighbor)
					}
				}
			}
		}
	}

	RadiallyUpdateTerrain(m, m, true, diamondsToUpdate, cache)
	return true, nil
}
