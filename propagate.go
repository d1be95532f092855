package isom

// neighborQuadrant is one of the four diagonal neighbors gathered before
// searching for a replacement isom value.
type neighborQuadrant struct {
	LinkId   LinkId
	IsomValue uint16
	Modified bool
}

// isomNeighbors bundles the four neighbor diamonds' relevant info plus
// the best match found so far, addressed by Quadrant since each
// neighbor overlaps the center diamond through exactly one quadrant.
type isomNeighbors struct {
	quadrants [quadrantTotal]neighborQuadrant

	maxModifiedOfFour uint8

	bestMatchIsomValue uint16
	bestMatchCount     uint16
}

func (n *isomNeighbors) at(q Quadrant) *neighborQuadrant { return &n.quadrants[q] }

// Grid is the minimal surface the propagator and projector need from a
// concrete map: isom-rect storage addressed by rectangle coordinates.
type Grid interface {
	IsInBounds(p RectPoint) bool
	IsomRectAt(p RectPoint) *IsomRect
}

// centralIsomValue reads the diamond's own (bottom-right rectangle,
// left-field) isom value -- the "central" value the original keys
// matching off of.
func centralIsomValue(g Grid, d Diamond) uint16 {
	return g.IsomRectAt(d.Point()).Left >> 4
}

func centralIsomValueModified(g Grid, d Diamond) bool {
	return g.IsomRectAt(d.Point()).IsLeftModified()
}

// diamondNeedsUpdate reports whether d is in bounds, not already
// modified this operation, and carries a nonzero central isom value
// (zero means "no terrain placed here").
func diamondNeedsUpdate(g Grid, d Diamond) bool {
	if !g.IsInBounds(d.Point()) {
		return false
	}
	return !centralIsomValueModified(g, d) && centralIsomValue(g, d) != 0
}

// loadNeighborInfo gathers each of the four diagonal neighbors' central
// isom value, modified flag, and the LinkId facing back toward d.
func loadNeighborInfo(g Grid, d Diamond, isomLinks []ShapeLinks) isomNeighbors {
	var neighbors isomNeighbors
	for _, n := range Neighbors {
		neighbor := d.Neighbor(n)
		if !g.IsInBounds(neighbor.Point()) {
			continue
		}
		q := Quadrant(n)
		nq := neighbors.at(q)
		nq.IsomValue = centralIsomValue(g, neighbor)
		nq.Modified = centralIsomValueModified(g, neighbor)
		if int(nq.IsomValue) < len(isomLinks) {
			nq.LinkId = isomLinks[nq.IsomValue].GetLinkId(OppositeQuadrant(q))
			if nq.Modified && isomLinks[nq.IsomValue].TerrainType > neighbors.maxModifiedOfFour {
				neighbors.maxModifiedOfFour = isomLinks[nq.IsomValue].TerrainType
			}
		}
	}
	return neighbors
}

// countNeighborMatches scores a candidate shapeLinks row by how many of
// the four neighbor quadrants it agrees with. Any modified neighbor that
// disagrees immediately disqualifies the candidate (returns 0).
func countNeighborMatches(shapeLinks ShapeLinks, neighbors *isomNeighbors, isomLinks []ShapeLinks) uint16 {
	terrainType := shapeLinks.TerrainType
	var total uint16
	for _, q := range Quadrants {
		nq := neighbors.at(q)
		var neighborTerrainType uint8
		if int(nq.IsomValue) < len(isomLinks) {
			neighborTerrainType = isomLinks[nq.IsomValue].TerrainType
		}
		neighborLinkId := nq.LinkId
		quadrantLinkId := shapeLinks.GetLinkId(q)

		if neighborLinkId == quadrantLinkId && (quadrantLinkId < OnlyMatchSameType || terrainType == neighborTerrainType) {
			total++
		} else if nq.Modified {
			return 0
		}
	}
	return total
}

// searchForBestMatch scans the link table starting at startingTerrainType's
// anchor isom value, updating neighbors.bestMatch whenever a candidate
// scores higher than the current best. A startingTerrainType of zero
// scans to the end of the table; the sentinel "total/2+1" scans until a
// strictly higher terrain type is reached.
func searchForBestMatch(startingTerrainType uint16, neighbors *isomNeighbors, cache *Cache) {
	total := len(cache.Tileset.TerrainTypes)
	searchUntilHigherTerrainType := int(startingTerrainType) == total/2+1
	searchUntilEnd := startingTerrainType == 0

	isomValue := cache.TerrainTypeIsomValue(int(startingTerrainType))
	for ; int(isomValue) < len(cache.Tileset.IsomLinks); isomValue++ {
		terrainType := uint16(cache.Tileset.IsomLinks[isomValue].TerrainType)
		if !searchUntilEnd && terrainType != startingTerrainType && (!searchUntilHigherTerrainType || terrainType > startingTerrainType) {
			break
		}

		matchCount := countNeighborMatches(cache.Tileset.IsomLinks[isomValue], neighbors, cache.Tileset.IsomLinks)
		if matchCount > neighbors.bestMatchCount {
			neighbors.bestMatchIsomValue = isomValue
			neighbors.bestMatchCount = matchCount
		}
	}
}

// findBestMatchIsomValue runs the three-pass search described by the
// propagator: first via the terrain-type-map anchor for the diamond's
// previous terrain type, then via the highest modified terrain type seen
// among its neighbors, then a final pass up through the table. Returns
// false if the diamond's existing isom value is already optimal.
func findBestMatchIsomValue(g Grid, d Diamond, cache *Cache) (uint16, bool) {
	neighbors := loadNeighborInfo(g, d, cache.Tileset.IsomLinks)

	prevIsomValue := centralIsomValue(g, d)
	if int(prevIsomValue) < len(cache.Tileset.IsomLinks) {
		prevTerrainType := cache.Tileset.IsomLinks[prevIsomValue].TerrainType
		mappedTerrainType := cache.Tileset.SearchStart(uint16(neighbors.maxModifiedOfFour), uint16(prevTerrainType))
		searchForBestMatch(mappedTerrainType, &neighbors, cache)
	}
	searchForBestMatch(uint16(neighbors.maxModifiedOfFour), &neighbors, cache)
	searchForBestMatch(uint16(len(cache.Tileset.TerrainTypes)/2+1), &neighbors, cache)

	if neighbors.bestMatchIsomValue == prevIsomValue {
		return 0, false
	}
	return neighbors.bestMatchIsomValue, true
}

// RadiallyUpdateTerrain drains the worklist of diamonds needing an
// update, visiting each once, replacing its isom value with the best
// match found among its neighbors, and enqueuing any newly-affected
// neighbors in turn.
func RadiallyUpdateTerrain(g Grid, setter DiamondSetter, undoable bool, diamondsToUpdate []Diamond, cache *Cache) {
	queue := append([]Diamond{}, diamondsToUpdate...)

	for len(queue) > 0 {
		d := queue[0]
		queue = queue[1:]

		if !diamondNeedsUpdate(g, d) || g.IsomRectAt(d.Point()).IsVisited() {
			continue
		}
		g.IsomRectAt(d.Point()).SetVisited()
		cache.ChangedArea.ExpandToInclude(d.Point().X, d.Point().Y)

		bestMatch, changed := findBestMatchIsomValue(g, d, cache)
		if !changed {
			continue
		}
		if bestMatch != 0 {
			setter.SetDiamondIsomValues(d, bestMatch, undoable, cache)
		}

		for _, n := range Neighbors {
			neighbor := d.Neighbor(n)
			if diamondNeedsUpdate(g, neighbor) {
				queue = append(queue, neighbor)
			}
		}
	}
}

// DiamondSetter is implemented by a concrete map so the propagator can
// write updated isom values back without depending on the map type.
type DiamondSetter interface {
	SetDiamondIsomValues(d Diamond, isomValue uint16, undoable bool, cache *Cache)
}
