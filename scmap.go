package isom

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"strconv"
	"strings"
)

// ScMap is a grid of isom diamonds plus the two parallel tile arrays they
// drive: EditorTiles (the designer's intent, what PlaceTerrain/propagation
// write) and Tiles (the doodad-overlaid array actually rendered). ScMap
// owns no Tileset or Cache directly -- those are supplied by callers so the
// same map can be edited against different loaded tilesets across a
// process lifetime.
type ScMap struct {
	TileWidth  uint16
	TileHeight uint16
	Brush      BrushId

	Tiles       []uint16
	EditorTiles []uint16
	IsomRects   []IsomRect
}

// NewScMap builds an empty ScMap sized for tileWidth x tileHeight tiles,
// with every tile and isom rect zeroed (no terrain placed).
func NewScMap(tileWidth, tileHeight uint16, brush BrushId) *ScMap {
	isomWidth := int(tileWidth)/2 + 1
	isomHeight := int(tileHeight) + 1
	return &ScMap{
		TileWidth:   tileWidth,
		TileHeight:  tileHeight,
		Brush:       brush,
		Tiles:       make([]uint16, int(tileWidth)*int(tileHeight)),
		EditorTiles: make([]uint16, int(tileWidth)*int(tileHeight)),
		IsomRects:   make([]IsomRect, isomWidth*isomHeight),
	}
}

// IsomWidth is the isom-rect row length: one more than half the tile width,
// since each isom diamond spans two tile columns.
func (m *ScMap) IsomWidth() int { return int(m.TileWidth)/2 + 1 }

// IsomHeight is the isom-rect column length, one more than the tile height.
func (m *ScMap) IsomHeight() int { return int(m.TileHeight) + 1 }

// IsInBounds reports whether p addresses a live isom rect. Implements Grid.
func (m *ScMap) IsInBounds(p RectPoint) bool {
	return p.X >= 0 && p.X < m.IsomWidth() && p.Y >= 0 && p.Y < m.IsomHeight()
}

// isomRectIndex converts a rect point into a flat IsomRects index, assuming
// the point is already known to be in bounds.
func (m *ScMap) isomRectIndex(p RectPoint) int {
	return p.Y*m.IsomWidth() + p.X
}

// IsomRectAt returns a pointer to the isom rect at p without bounds
// checking -- callers must have already confirmed IsInBounds. Implements
// Grid, and is used internally by every propagation/placement routine, the
// same way the original's private isomRectAt never re-checks bounds.
func (m *ScMap) IsomRectAt(p RectPoint) *IsomRect {
	return &m.IsomRects[m.isomRectIndex(p)]
}

// IsomRect is the public, bounds-checked accessor: Sc::ScMap::getIsomRect
// throws std::out_of_range on a bad index, which we surface as
// ErrOutOfRange rather than a panic.
func (m *ScMap) IsomRect(index int) (*IsomRect, error) {
	if index < 0 || index >= len(m.IsomRects) {
		return nil, fmt.Errorf("isom: index %d: %w", index, ErrOutOfRange)
	}
	return &m.IsomRects[index], nil
}

// getTileValue/setTileValue address EditorTiles/Tiles by tile coordinates.
func (m *ScMap) getTileValue(tileX, tileY int) uint16 {
	return m.EditorTiles[tileY*int(m.TileWidth)+tileX]
}

func (m *ScMap) setTileValue(tileX, tileY int, tileValue uint16) {
	idx := tileY*int(m.TileWidth) + tileX
	m.EditorTiles[idx] = tileValue
	// A real doodad-aware renderer would recompute Tiles from EditorTiles
	// plus any doodad overlays here; ScMap carries no doodad layer, so the
	// two arrays stay in lockstep.
	m.Tiles[idx] = tileValue
}

// tileGroupOf decomposes a packed tile value into its owning group index.
func tileGroupOf(tileValue uint16) uint16 { return tileValue / 16 }

// --- XML persistence -------------------------------------------------

// scMapDocument is the on-disk XML shape for an ScMap: its own element
// names (ISOM diamonds have no Tiled-TMX equivalent), encoded the same way
// tmx.go's Map packs tile ids as a CSV text blob inside a <data> element.
type scMapDocument struct {
	XMLName     xml.Name `xml:"isommap"`
	TileWidth   uint16   `xml:"tilewidth,attr"`
	TileHeight  uint16   `xml:"tileheight,attr"`
	Brush       int      `xml:"brush,attr"`
	Tiles       csvBlob  `xml:"tiles"`
	EditorTiles csvBlob  `xml:"editortiles"`
	IsomRects   rectBlob `xml:"isomrects"`
}

// csvBlob is a comma-separated list of uint16s, stored as element text.
type csvBlob struct {
	RawData []byte `xml:",innerxml"`
}

func encodeCSVUint16(in []uint16) []byte {
	parts := make([]string, len(in))
	for i, v := range in {
		parts[i] = strconv.Itoa(int(v))
	}
	return []byte(strings.Join(parts, ","))
}

func decodeCSVUint16(raw []byte) ([]uint16, error) {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" {
		return nil, nil
	}
	parts := strings.Split(trimmed, ",")
	out := make([]uint16, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(p), 10, 16)
		if err != nil {
			return nil, err
		}
		out[i] = uint16(v)
	}
	return out, nil
}

// rectBlob is a semicolon-separated list of "left,top,right,bottom"
// isom-rect quads, stored as element text.
type rectBlob struct {
	RawData []byte `xml:",innerxml"`
}

func encodeRects(in []IsomRect) []byte {
	parts := make([]string, len(in))
	for i, r := range in {
		parts[i] = fmt.Sprintf("%d,%d,%d,%d", r.Left, r.Top, r.Right, r.Bottom)
	}
	return []byte(strings.Join(parts, ";"))
}

func decodeRects(raw []byte) ([]IsomRect, error) {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" {
		return nil, nil
	}
	groups := strings.Split(trimmed, ";")
	out := make([]IsomRect, len(groups))
	for i, g := range groups {
		fields := strings.Split(strings.TrimSpace(g), ",")
		if len(fields) != 4 {
			return nil, fmt.Errorf("isom: malformed isom rect %q", g)
		}
		var vals [4]uint16
		for j, f := range fields {
			v, err := strconv.ParseUint(strings.TrimSpace(f), 10, 16)
			if err != nil {
				return nil, err
			}
			vals[j] = uint16(v)
		}
		out[i] = IsomRect{Left: vals[0], Top: vals[1], Right: vals[2], Bottom: vals[3]}
	}
	return out, nil
}

// Encode writes m as XML to w, following tmx.go's Map.Encode shape:
// build the serializable document, fill its CSV-text fields, then hand
// off to the stdlib encoder.
func (m *ScMap) Encode(w io.Writer) error {
	doc := scMapDocument{
		TileWidth:  m.TileWidth,
		TileHeight: m.TileHeight,
		Brush:      int(m.Brush),
	}
	doc.Tiles.RawData = encodeCSVUint16(m.Tiles)
	doc.EditorTiles.RawData = encodeCSVUint16(m.EditorTiles)
	doc.IsomRects.RawData = encodeRects(m.IsomRects)
	return xml.NewEncoder(w).Encode(doc)
}

// Decode reads an XML-encoded ScMap from r.
func Decode(r io.Reader) (*ScMap, error) {
	var doc scMapDocument
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, err
	}

	tiles, err := decodeCSVUint16(doc.Tiles.RawData)
	if err != nil {
		return nil, fmt.Errorf("isom: decoding tiles: %w", err)
	}
	editorTiles, err := decodeCSVUint16(doc.EditorTiles.RawData)
	if err != nil {
		return nil, fmt.Errorf("isom: decoding editor tiles: %w", err)
	}
	rects, err := decodeRects(doc.IsomRects.RawData)
	if err != nil {
		return nil, fmt.Errorf("isom: decoding isom rects: %w", err)
	}

	return &ScMap{
		TileWidth:   doc.TileWidth,
		TileHeight:  doc.TileHeight,
		Brush:       BrushId(doc.Brush),
		Tiles:       tiles,
		EditorTiles: editorTiles,
		IsomRects:   rects,
	}, nil
}

// Open reads and decodes an ScMap from fname.
func Open(fname string) (*ScMap, error) {
	f, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}

// WriteFile encodes m and writes it to fname.
func (m *ScMap) WriteFile(fname string) error {
	buf := bytes.Buffer{}
	if err := m.Encode(&buf); err != nil {
		return err
	}
	return ioutil.WriteFile(fname, buf.Bytes(), 0644)
}
