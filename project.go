package isom

// UpdateTilesFromIsom walks cache's changed-area box and re-projects every
// diamond whose left or right rectangle field was left Modified by a prior
// placement/propagation/resize, then clears editor flags across the whole
// box and resets it.
func (m *ScMap) UpdateTilesFromIsom(cache *Cache) {
	for y := cache.ChangedArea.Top; y <= cache.ChangedArea.Bottom; y++ {
		for x := cache.ChangedArea.Left; x <= cache.ChangedArea.Right; x++ {
			p := RectPoint{X: x, Y: y}
			rect := m.IsomRectAt(p)
			if rect.IsLeftOrRightModified() {
				m.updateTileFromIsom(Diamond{X: x, Y: y}, cache)
			}
			rect.ClearEditorFlags()
		}
	}
	cache.ResetChangedArea()
}

// updateTileFromIsom is the tile projector: it hashes the diamond's isom
// rect into a set of candidate tile groups, picks the one whose stack-top
// connection matches the tile group above it (if any), writes the two
// tile columns the diamond covers, and then walks the vertical tile stack
// both upward (to find the stack's top) and downward (to keep every tile
// below in the stack wearing a consistent subtile) so multi-tile-tall
// terrain features stay visually uniform.
func (m *ScMap) updateTileFromIsom(d Diamond, cache *Cache) {
	isomWidth := cache.IsomWidth
	isomHeight := cache.IsomHeight
	if d.X+1 >= isomWidth || d.Y+1 >= isomHeight {
		return
	}

	leftTileX := 2 * d.X
	rightTileX := leftTileX + 1

	totalGroups := len(cache.Tileset.TileGroups)

	hash := m.IsomRectAt(d.Point()).GetHash(cache.Tileset.IsomLinks)
	potentialGroups, ok := cache.Tileset.HashToTileGroup[hash]
	if !ok {
		m.setTileValue(leftTileX, d.Y, 0)
		m.setTileValue(rightTileX, d.Y, 0)
		return
	}

	destTileGroup := potentialGroups[0]
	if d.Y > 0 {
		aboveGroup := tileGroupOf(m.getTileValue(leftTileX, d.Y-1))
		if int(aboveGroup) < totalGroups {
			tileGroupBottom := cache.Tileset.TileGroups[aboveGroup].StackConnection.Bottom
			for _, candidate := range potentialGroups {
				if cache.Tileset.TileGroups[candidate].StackConnection.Top == tileGroupBottom {
					destTileGroup = candidate
					break
				}
			}
		}
	}

	destSubtile := cache.RandomSubtile(destTileGroup) % 16
	m.setTileValue(leftTileX, d.Y, 16*destTileGroup+destSubtile)
	m.setTileValue(rightTileX, d.Y, 16*(destTileGroup+1)+destSubtile)

	stackTopY := d.Y
	curr := tileGroupOf(m.getTileValue(leftTileX, stackTopY))
	for stackTopY > 0 && int(curr) < totalGroups && cache.Tileset.TileGroups[curr].StackConnection.Top != 0 {
		above := tileGroupOf(m.getTileValue(leftTileX, stackTopY-1))
		if int(above) >= totalGroups || cache.Tileset.TileGroups[curr].StackConnection.Top != cache.Tileset.TileGroups[above].StackConnection.Bottom {
			break
		}
		curr = above
		stackTopY--
	}

	m.setTileValue(leftTileX, stackTopY, 16*tileGroupOf(m.getTileValue(leftTileX, stackTopY))+destSubtile)
	m.setTileValue(rightTileX, stackTopY, 16*tileGroupOf(m.getTileValue(rightTileX, stackTopY))+destSubtile)

	for y := stackTopY + 1; y < int(m.TileHeight); y++ {
		tileGroup := tileGroupOf(m.getTileValue(leftTileX, y-1))
		nextTileGroup := tileGroupOf(m.getTileValue(leftTileX, y))

		if int(tileGroup) >= totalGroups || int(nextTileGroup) >= totalGroups ||
			cache.Tileset.TileGroups[tileGroup].StackConnection.Bottom == 0 ||
			cache.Tileset.TileGroups[nextTileGroup].StackConnection.Top == 0 {
			break
		}

		bottomConnection := cache.Tileset.TileGroups[tileGroup].StackConnection.Bottom
		leftTileGroup := tileGroupOf(m.getTileValue(leftTileX, y))
		rightTileGroup := tileGroupOf(m.getTileValue(rightTileX, y))
		if bottomConnection != cache.Tileset.TileGroups[nextTileGroup].StackConnection.Top {
			seamHash := m.IsomRectAt(RectPoint{X: d.X, Y: y}).GetHash(cache.Tileset.IsomLinks)
			if seamGroups, ok := cache.Tileset.HashToTileGroup[seamHash]; ok {
				for _, candidate := range seamGroups {
					if cache.Tileset.TileGroups[candidate].StackConnection.Top == bottomConnection {
						leftTileGroup = candidate
						rightTileGroup = candidate + 1
						break
					}
				}
			}
		}

		m.setTileValue(leftTileX, y, 16*leftTileGroup+destSubtile)
		m.setTileValue(rightTileX, y, 16*rightTileGroup+destSubtile)
	}
}
