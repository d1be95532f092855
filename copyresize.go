package isom

import "sort"

// CopyIsomFrom overlays source's isom rects onto m at the tile offset
// (xTileOffset, yTileOffset), clipped to both grids' bounds. When
// undoable, every position in destCache's isom grid gets an undo record
// recorded before the copy and refreshed with the post-copy value
// afterward -- including positions the copy doesn't actually touch
// (clearing out-of-bounds leftovers), matching the original's undo-only
// cleanup pass.
func (m *ScMap) CopyIsomFrom(source *ScMap, xTileOffset, yTileOffset int, undoable bool, destCache *Cache) {
	sourceIsomWidth := source.IsomWidth()
	sourceIsomHeight := source.IsomHeight()

	if undoable {
		for y := 0; y < destCache.IsomHeight; y++ {
			for x := 0; x < destCache.IsomWidth; x++ {
				m.addIsomUndo(RectPoint{X: x, Y: y}, destCache)
			}
		}
	}

	diamondX := xTileOffset / 2
	diamondY := yTileOffset

	sourceRc := NewResizeBoundingBox(sourceIsomWidth, sourceIsomHeight, destCache.IsomWidth, destCache.IsomHeight, diamondX, diamondY)

	for y := sourceRc.Top; y < sourceRc.Bottom; y++ {
		srcStart := y*sourceIsomWidth + sourceRc.Left
		srcEnd := srcStart + (sourceRc.Right - sourceRc.Left)
		dstStart := (y+diamondY)*destCache.IsomWidth + sourceRc.Left + diamondX
		copy(m.IsomRects[dstStart:dstStart+(srcEnd-srcStart)], source.IsomRects[srcStart:srcEnd])
	}

	if undoable {
		for y := sourceIsomHeight; y < destCache.IsomHeight; y++ {
			for x := 0; x < destCache.IsomWidth; x++ {
				m.IsomRectAt(RectPoint{X: x, Y: y}).Clear()
			}
		}

		if sourceIsomWidth < destCache.IsomWidth {
			for y := 0; y < destCache.IsomHeight; y++ {
				for x := sourceIsomWidth; x < destCache.IsomWidth; x++ {
					m.IsomRectAt(RectPoint{X: x, Y: y}).Clear()
				}
			}
		}

		for y := 0; y < destCache.IsomHeight; y++ {
			for x := 0; x < destCache.IsomWidth; x++ {
				idx := y*destCache.IsomWidth + x
				if destCache.undoMap[idx] != nil {
					destCache.undoMap[idx].SetNewValue(*m.IsomRectAt(RectPoint{X: x, Y: y}))
				}
			}
		}
	}
}

// insideInnerArea reports whether p falls strictly within area's bounds
// using the [left,right) x [top,bottom) convention shared by every
// correctly-written bound check in resizeIsom.
func insideInnerArea(p RectPoint, area BoundingBox) bool {
	return p.X >= area.Left && p.X < area.Right && p.Y >= area.Top && p.Y < area.Bottom
}

// outsideInnerArea is the negation of insideInnerArea, used when deciding
// which quadrants of a partially-covered diamond need re-stamping.
func outsideInnerArea(p RectPoint, area BoundingBox) bool {
	return p.X < area.Left || p.X >= area.Right || p.Y < area.Top || p.Y >= area.Bottom
}

// outsideInnerAreaBuggy reproduces the original's final fully-inside scan
// verbatim, including its "rectCoords.y < innerArea.bottom" comparison
// where every sibling check in the same function uses ">=". Kept
// byte-for-byte per the original rather than silently corrected --
// see DESIGN.md Open Question 1.
func outsideInnerAreaBuggy(p RectPoint, area BoundingBox) bool {
	return p.X < area.Left || p.X >= area.Right || p.Y < area.Top || p.Y < area.Bottom
}

// ResizeIsom shifts the isom grid by (xTileOffset, yTileOffset) tiles,
// re-deriving quadrants that now straddle the old/new grid boundary and
// radially re-propagating along the seam. fixBorders additionally marks
// diamonds just outside the overlap region for re-propagation so terrain
// blends across a resize that exposes previously off-map area; the
// original's own callers always pass false for it.
func (m *ScMap) ResizeIsom(xTileOffset, yTileOffset, oldMapWidth, oldMapHeight int, fixBorders bool, cache *Cache) bool {
	xDiamondOffset := xTileOffset / 2
	yDiamondOffset := yTileOffset
	oldIsomWidth := oldMapWidth/2 + 1
	oldIsomHeight := oldMapHeight + 1

	sourceRc := NewResizeBoundingBox(oldIsomWidth, oldIsomHeight, cache.IsomWidth, cache.IsomHeight, xDiamondOffset, yDiamondOffset)
	innerArea := BoundingBox{
		Left:   sourceRc.Left + xDiamondOffset,
		Top:    sourceRc.Top + yDiamondOffset,
		Right:  sourceRc.Right + xDiamondOffset - 1,
		Bottom: sourceRc.Bottom + yDiamondOffset - 1,
	}

	var edges []Diamond
	for y := innerArea.Top; y <= innerArea.Bottom; y++ {
		for x := innerArea.Left + (innerArea.Left+y)%2; x < innerArea.Right+1; x += 2 {
			if (x+y)%2 != 0 {
				continue
			}

			fullyInside := true
			fullyOutside := true
			var isomValue uint16
			for _, q := range Quadrants {
				rectCoords := Diamond{X: x, Y: y}.RectCoords(q)
				if !m.IsInBounds(rectCoords) {
					continue
				}
				if insideInnerArea(rectCoords, innerArea) {
					isomValue = m.IsomRectAt(rectCoords).GetIsomValue(ProjectedQuadrantAt(q).FirstSide) >> 4
					fullyOutside = false
				} else {
					fullyInside = false
				}
			}

			if fullyOutside {
				continue
			}

			if !fullyInside {
				for _, q := range Quadrants {
					rectCoords := Diamond{X: x, Y: y}.RectCoords(q)
					if outsideInnerArea(rectCoords, innerArea) {
						m.setIsomValue(rectCoords, q, isomValue, false, cache)
					}
				}

				if fixBorders {
					for _, n := range Neighbors {
						neighbor := Diamond{X: x, Y: y}.Neighbor(n)
						if m.IsInBounds(neighbor.Point()) && outsideInnerArea(neighbor.Point(), innerArea) {
							edges = append(edges, neighbor)
						}
					}
				}
			}

			for _, q := range Quadrants {
				rectCoords := Diamond{X: x, Y: y}.RectCoords(q)
				if m.IsInBounds(rectCoords) {
					m.IsomRectAt(rectCoords).SetModified(ProjectedQuadrantAt(q))
				}
			}
		}
	}

	sort.SliceStable(edges, func(i, j int) bool {
		l, r := edges[i], edges[j]
		lDistance := l.X + l.Y
		rDistance := r.X + r.Y
		if lDistance != rDistance {
			return lDistance < rDistance
		}
		lSpread := maxInt(l.X, l.Y) - minInt(l.X, l.Y)
		rSpread := maxInt(r.X, r.Y) - minInt(r.X, r.Y)
		if lSpread != rSpread {
			return lSpread < rSpread
		}
		return l.X < r.X
	})

	var diamondsToUpdate []Diamond
	for _, edge := range edges {
		if diamondNeedsUpdate(m, edge) {
			diamondsToUpdate = append(diamondsToUpdate, edge)
		}
	}
	RadiallyUpdateTerrain(m, m, false, diamondsToUpdate, cache)

	for y := cache.ChangedArea.Top; y <= cache.ChangedArea.Bottom; y++ {
		for x := cache.ChangedArea.Left; x <= cache.ChangedArea.Right; x++ {
			m.IsomRectAt(RectPoint{X: x, Y: y}).ClearEditorFlags()
		}
	}

	for y := innerArea.Top; y <= innerArea.Bottom; y++ {
		for x := innerArea.Left + (innerArea.Left+y)%2; x <= innerArea.Right; x += 2 {
			if (x+y)%2 != 0 {
				continue
			}

			fullyOutside := true
			for _, q := range Quadrants {
				rectCoords := Diamond{X: x, Y: y}.RectCoords(q)
				if m.IsInBounds(rectCoords) && insideInnerArea(rectCoords, innerArea) {
					fullyOutside = false
					break
				}
			}

			if !fullyOutside {
				for _, q := range Quadrants {
					rectCoords := Diamond{X: x, Y: y}.RectCoords(q)
					if m.IsInBounds(rectCoords) {
						m.IsomRectAt(rectCoords).SetModified(ProjectedQuadrantAt(q))
					}
				}
			}
		}
	}

	cache.SetAllChanged()

	for y := innerArea.Top; y < innerArea.Bottom; y++ {
		for x := innerArea.Left; x < innerArea.Right; x++ {
			m.IsomRectAt(RectPoint{X: x, Y: y}).ClearEditorFlags()
		}
	}

	for y := 0; y < cache.IsomHeight; y++ {
		for x := y % 2; x < cache.IsomWidth; x += 2 {
			if (x+y)%2 != 0 {
				continue
			}

			fullyInside := true
			for _, q := range Quadrants {
				rectCoords := Diamond{X: x, Y: y}.RectCoords(q)
				if m.IsInBounds(rectCoords) && outsideInnerAreaBuggy(rectCoords, innerArea) {
					fullyInside = false
					break
				}
			}

			if !fullyInside {
				for _, q := range Quadrants {
					rectCoords := Diamond{X: x, Y: y}.RectCoords(q)
					if m.IsInBounds(rectCoords) {
						m.IsomRectAt(rectCoords).SetModified(ProjectedQuadrantAt(q))
					}
				}
			}
		}
	}

	return true
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
