package isom

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/voidshard/isom/pkglog"
)

// tileGroupRecordSize is the on-disk size of one CV5 tile-group record:
// terrainType(2) + buildability(1) + groundHeight(1) + links(4*2) +
// stackConnections(2*2) + megaTileIndex(16*2), little-endian throughout.
const tileGroupRecordSize = 48

// LoadTileGroupsFromCV5 reads a tileset's raw CV5 asset from path and
// decodes it into the fixed-layout TileGroup records it contains.
// ErrMissingAsset is returned if the file cannot be opened, ErrCorruptAsset
// if its size is not a whole multiple of one 48-byte record.
func LoadTileGroupsFromCV5(path string) ([]TileGroup, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("isom: opening %s: %w", path, ErrMissingAsset)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("isom: stat %s: %w", path, ErrMissingAsset)
	}
	if info.Size()%tileGroupRecordSize != 0 {
		return nil, fmt.Errorf("isom: %s: size %d not a multiple of %d: %w", path, info.Size(), tileGroupRecordSize, ErrCorruptAsset)
	}

	total := int(info.Size() / tileGroupRecordSize)
	groups := make([]TileGroup, total)
	for i := range groups {
		if err := readTileGroup(f, &groups[i]); err != nil {
			return nil, fmt.Errorf("isom: decoding tile group %d of %s: %w", i, path, ErrCorruptAsset)
		}
	}
	pkglog.Debug(fmt.Sprintf("loaded %d tile groups from %s", total, path))
	return groups, nil
}

func readTileGroup(r io.Reader, tg *TileGroup) error {
	var raw struct {
		TerrainType     uint16
		Buildability    uint8
		GroundHeight    uint8
		Left            uint16
		Top             uint16
		Right           uint16
		Bottom          uint16
		StackTop        uint16
		StackBottom     uint16
		MegaTileIndex   [16]uint16
	}
	if err := binary.Read(r, binary.LittleEndian, &raw); err != nil {
		return err
	}
	*tg = TileGroup{
		TerrainType:  raw.TerrainType,
		Buildability: raw.Buildability,
		GroundHeight: raw.GroundHeight,
		Links: DirectionalLinks{
			Left: Link(raw.Left), Top: Link(raw.Top), Right: Link(raw.Right), Bottom: Link(raw.Bottom),
		},
		StackConnection: StackConnection{Top: raw.StackTop, Bottom: raw.StackBottom},
		MegaTileIndex:   raw.MegaTileIndex,
	}
	return nil
}

// Tileset is one loaded tileset's terrain-type catalog and link table:
// the raw tile groups, the expanded terrain-type adjacency matrix, the
// hash index used by the tile projector, and the generated link table
// ("isomLinks").
type Tileset struct {
	Brush BrushId

	TileGroups []TileGroup

	// TerrainTypeMap is the expanded totalTerrainTypes x totalTerrainTypes
	// matrix: TerrainTypeMap[from*total+to] names the terrain type the
	// radial search should begin at when walking from "from" toward "to".
	TerrainTypeMap []uint16

	HashToTileGroup map[uint32][]uint16

	IsomLinks []ShapeLinks

	TerrainTypes []TerrainTypeInfo
	BrushList    []TerrainTypeInfo
	DefaultBrush TerrainTypeInfo
}

// totalTerrainTypes is the row/column count of the expanded adjacency
// matrix, equal to len(TerrainTypes).
func (t *Tileset) totalTerrainTypes() int { return len(t.TerrainTypes) }

// SearchStart returns the terrain type the radial propagator should use
// as its initial search anchor when resolving a boundary between from
// and to.
func (t *Tileset) SearchStart(from, to uint16) uint16 {
	total := t.totalTerrainTypes()
	if total == 0 {
		return 0
	}
	idx := int(from)*total + int(to)
	if idx < 0 || idx >= len(t.TerrainTypeMap) {
		return 0
	}
	return t.TerrainTypeMap[idx]
}

// LoadTileset builds a Tileset from a brush descriptor and its raw CV5
// tile-group records (each record covers two 16-entry mega-tile groups,
// the original scans every other entry since CV5 duplicates rows).
func LoadTileset(brush BrushId, tileGroups []TileGroup) (*Tileset, error) {
	return loadTileset(brush, tileGroups, nil)
}

// loadTileset is LoadTileset's real body. When cachedMap is non-nil and
// holds exactly totalTerrainTypes^2 entries, the flood-fill expansion in
// populateTerrainTypeMap is skipped and cachedMap is used as the expanded
// adjacency matrix directly; otherwise the matrix is recomputed.
func loadTileset(brush BrushId, tileGroups []TileGroup, cachedMap []uint16) (*Tileset, error) {
	if brush < 0 || brush >= brushTotal {
		return nil, fmt.Errorf("isom: %w: brush id %d", ErrInvalidPlacement, brush)
	}
	descriptor := Brushes[brush]

	t := &Tileset{
		Brush:           brush,
		TileGroups:      tileGroups,
		TerrainTypes:    descriptor.TerrainTypeInfo,
		HashToTileGroup: map[uint32][]uint16{},
	}

	if cachedMap != nil && len(cachedMap) == len(descriptor.TerrainTypeInfo)*len(descriptor.TerrainTypeInfo) {
		t.TerrainTypeMap = cachedMap
	} else {
		t.populateTerrainTypeMap(descriptor.TerrainTypeMap)
	}

	for i := 0; i+1 < len(tileGroups); i += 2 {
		links := tileGroups[i].Links
		left, top, right, bottom := uint32(links.Left), uint32(links.Top), uint32(links.Right), uint32(links.Bottom)

		hash := (((left<<6 | top) << 6 | right) << 6 | bottom) << 6
		if left >= 48 || top >= 48 || right >= 48 || bottom >= 48 {
			hash |= uint32(tileGroups[i].TerrainType)
		}
		t.HashToTileGroup[hash] = append(t.HashToTileGroup[hash], uint16(i))
	}

	if err := t.generateIsomLinks(); err != nil {
		return nil, err
	}

	for _, tt := range descriptor.TerrainTypeInfo {
		if tt.BrushSortOrder >= 0 {
			t.BrushList = append(t.BrushList, tt)
		}
	}
	sort.SliceStable(t.BrushList, func(i, j int) bool {
		return t.BrushList[i].BrushSortOrder < t.BrushList[j].BrushSortOrder
	})

	t.DefaultBrush = descriptor.TerrainTypeInfo[descriptor.DefaultTerrainIndex]

	pkglog.Debug(fmt.Sprintf("loaded tileset brush=%d tileGroups=%d", brush, len(tileGroups)))
	return t, nil
}

// populateTerrainTypeMap expands the brush's compressed, zero-terminated
// adjacency list into the full square search-anchor matrix by flooding
// outward from every terrain type with an explicit queue (spec's design
// note: recursion depth is unbounded by terrain-type count, so use a
// worklist instead of the original's recursive walk).
func (t *Tileset) populateTerrainTypeMap(compressed []uint16) {
	total := len(t.TerrainTypes)
	t.TerrainTypeMap = make([]uint16, total*total)
	tempTypeMap := make([]uint16, total*total)

	for i := 0; i < len(compressed) && compressed[i] != 0; i++ {
		from := int(compressed[i])
		i++
		for j := total * from; i < len(compressed) && compressed[i] != 0; i, j = i+1, j+1 {
			if j < len(tempTypeMap) {
				tempTypeMap[j] = compressed[i]
			}
		}
	}

	for i := total - 1; i >= 0; i-- {
		rowData := make([]uint16, total)
		queue := []uint16{uint16(i)}
		t.TerrainTypeMap[total*i+i] = uint16(i)

		for len(queue) > 0 {
			destRow := queue[0]
			queue = queue[1:]

			start := i * total
			for j := int(destRow) * total; j < len(tempTypeMap) && tempTypeMap[j] != 0; j++ {
				tempPath := tempTypeMap[j]
				if t.TerrainTypeMap[start+int(tempPath)] == 0 {
					nextValue := tempPath
					if rowData[destRow] != 0 {
						nextValue = rowData[destRow]
					}
					queue = append(queue, tempPath)
					t.TerrainTypeMap[start+int(tempPath)] = nextValue
					rowData[tempPath] = nextValue
				}
			}
		}
	}
}

// generateIsomLinks builds the link table: one row per solid-brush
// terrain type (a single ShapeLinks summarizing its uniform links), then
// 14 rows per remaining terrain type (one per Shape).
func (t *Tileset) generateIsomLinks() error {
	totalTileGroups := len(t.TileGroups)
	if totalTileGroups > 1024 {
		totalTileGroups = 1024
	}

	terrainTypeTileGroups := make([][]uint16, len(t.TerrainTypes))
	for i := 0; i+1 < totalTileGroups; i += 2 {
		tt := t.TileGroups[i].TerrainType
		if tt > 0 && int(tt) < len(terrainTypeTileGroups) {
			terrainTypeTileGroups[tt] = append(terrainTypeTileGroups[tt], uint16(i))
		}
	}

	var solidBrushes []TerrainTypeInfo
	var otherTerrainTypes []TerrainTypeInfo
	half := len(t.TerrainTypes) / 2
	i := 1
	for ; i <= half; i++ {
		if t.TerrainTypes[i].IsomValue != 0 {
			solidBrushes = append(solidBrushes, t.TerrainTypes[i])
		}
	}
	for ; i < len(t.TerrainTypes); i++ {
		if t.TerrainTypes[i].IsomValue != 0 {
			otherTerrainTypes = append(otherTerrainTypes, TerrainTypeInfo{Index: uint16(i), IsomValue: t.TerrainTypes[i].IsomValue})
		}
	}
	sort.SliceStable(solidBrushes, func(a, b int) bool { return solidBrushes[a].IsomValue < solidBrushes[b].IsomValue })
	sort.SliceStable(otherTerrainTypes, func(a, b int) bool { return otherTerrainTypes[a].IsomValue < otherTerrainTypes[b].IsomValue })

	for _, solidBrush := range solidBrushes {
		for len(t.IsomLinks) < int(solidBrush.IsomValue) {
			t.IsomLinks = append(t.IsomLinks, ShapeLinks{})
		}
		groups := terrainTypeTileGroups[solidBrush.Index]
		if len(groups) == 0 {
			t.IsomLinks = append(t.IsomLinks, ShapeLinks{TerrainType: uint8(solidBrush.Index)})
			continue
		}
		links := t.TileGroups[groups[0]].Links
		t.IsomLinks = append(t.IsomLinks, ShapeLinks{
			TerrainType: uint8(solidBrush.Index),
			TopLeft:     topLeftQuadrant{Right: links.Right, Bottom: links.Bottom, LinkId: solidBrush.LinkId},
			TopRight:    topRightQuadrant{Left: links.Left, Bottom: links.Bottom, LinkId: solidBrush.LinkId},
			BottomRight: bottomRightQuadrant{Left: links.Left, Top: links.Top, LinkId: solidBrush.LinkId},
			BottomLeft:  bottomLeftQuadrant{Top: links.Top, Right: links.Right, LinkId: solidBrush.LinkId},
		})
	}

	totalSolidBrushEntries := len(t.IsomLinks)
	if len(otherTerrainTypes) == 0 {
		return nil
	}
	for len(t.IsomLinks) < int(otherTerrainTypes[0].IsomValue) {
		t.IsomLinks = append(t.IsomLinks, ShapeLinks{})
	}

	for _, otherType := range otherTerrainTypes {
		terrainTypeIsomLinkStart := len(t.IsomLinks)
		for i := 0; i < int(shapeTotal); i++ {
			t.IsomLinks = append(t.IsomLinks, ShapeLinks{TerrainType: uint8(otherType.Index)})
		}

		var shapes terrainTypeShapes
		var shapeTileGroups [shapeTotal]ShapeTileGroup
		for idx := range shapeTileGroups {
			shapeTileGroups[idx] = ShapeTileGroup{TopLeft: noTileGroup, TopRight: noTileGroup, BottomRight: noTileGroup, BottomLeft: noTileGroup}
		}

		for _, tileGroupIndex := range terrainTypeTileGroups[otherType.Index] {
			tileGroup := t.TileGroups[tileGroupIndex]
			if !tileGroup.Links.IsShapeQuadrant() {
				continue
			}
			noStackAbove := tileGroup.StackConnection.Top == 0

			for shapeIndex := ShapeId(0); shapeIndex < shapeTotal; shapeIndex++ {
				checkShape := shapeTemplates[shapeIndex]
				row := shapes.at(shapeIndex)
				tg := &shapeTileGroups[shapeIndex]

				if checkShape.Matches(TopLeft, tileGroup.Links, noStackAbove) {
					row.TopLeft.Right = tileGroup.Links.Right
					row.TopLeft.Bottom = tileGroup.Links.Bottom
					tg.TopLeft = tileGroupIndex
				}
				if checkShape.Matches(TopRight, tileGroup.Links, noStackAbove) {
					row.TopRight.Left = tileGroup.Links.Left
					row.TopRight.Bottom = tileGroup.Links.Bottom
					tg.TopRight = tileGroupIndex
				}
				if checkShape.Matches(BottomRight, tileGroup.Links, noStackAbove) {
					row.BottomRight.Left = tileGroup.Links.Left
					row.BottomRight.Top = tileGroup.Links.Top
					tg.BottomRight = tileGroupIndex
				}
				if checkShape.Matches(BottomLeft, tileGroup.Links, noStackAbove) {
					row.BottomLeft.Top = tileGroup.Links.Top
					row.BottomLeft.Right = tileGroup.Links.Right
					tg.BottomLeft = tileGroupIndex
				}
			}
		}

		shapes.populateJutInEastWest(t.TileGroups, shapeTileGroups)
		shapes.populateEmptyQuadrantLinks()
		shapes.populateHardcodedLinkIds()
		shapes.populateLinkIdsToSolidBrushes(t.TileGroups, shapeTileGroups, totalSolidBrushEntries, t.IsomLinks)

		for i, row := range shapes.rows() {
			t.IsomLinks[terrainTypeIsomLinkStart+i] = *row
		}
	}

	return nil
}
