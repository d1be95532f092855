package isom

// EditorFlag values overlay the lowest bit (Modified) and the highest bit
// (Visited) of an IsomRect field. See spec §3/§6.1.
const (
	FlagModified uint16 = 0x0001
	FlagVisited  uint16 = 0x8000

	// ClearAll masks off both editor flags, leaving the 12-bit row index
	// and 4-bit edge-flag nibble.
	ClearAll uint16 = 0x7FFE
)

// IsomRect is an 8-byte cell at rectangle coordinates (x, y) with four
// 16-bit fields. Each field packs a 12-bit link-table row index with a
// 4-bit edge-flag nibble, plus the Modified/Visited editor-flag bits.
type IsomRect struct {
	Left, Top, Right, Bottom uint16
}

// side returns a pointer to the named field so callers can read or
// mutate it uniformly.
func (r *IsomRect) side(s Side) *uint16 {
	switch s {
	case SideLeft:
		return &r.Left
	case SideTop:
		return &r.Top
	case SideRight:
		return &r.Right
	default: // SideBottom
		return &r.Bottom
	}
}

// GetIsomValue reads the named side with editor flags cleared.
func (r IsomRect) GetIsomValue(s Side) uint16 {
	switch s {
	case SideLeft:
		return r.Left & ClearAll
	case SideTop:
		return r.Top & ClearAll
	case SideRight:
		return r.Right & ClearAll
	default: // SideBottom
		return r.Bottom & ClearAll
	}
}

// SetIsomValue overwrites the named side's raw field value (editor flags
// included, as encoded by the caller).
func (r *IsomRect) SetIsomValue(s Side, value uint16) {
	*r.side(s) = value
}

// Set writes value into the two sides that quadrant occupies, per the
// §6.1 encoding: field = (value<<4) | edgeFlag.
func (r *IsomRect) Set(q ProjectedQuadrant, value uint16) {
	r.SetIsomValue(q.FirstSide, (value<<4)|uint16(q.FirstEdgeFlag))
	r.SetIsomValue(q.SecondSide, (value<<4)|uint16(q.SecondEdgeFlag))
}

// IsLeftModified reports the Modified flag on the left field (the
// "central" modified bit for this rectangle's diamond).
func (r IsomRect) IsLeftModified() bool {
	return r.Left&FlagModified != 0
}

// IsLeftOrRightModified reports whether either the left or right field's
// Modified flag is set, used by the tile projector to decide whether a
// diamond needs re-projecting (spec §4.7/§3).
func (r IsomRect) IsLeftOrRightModified() bool {
	return (r.Left|r.Right)&FlagModified == FlagModified
}

// SetModified stamps the Modified flag onto both sides quadrant occupies.
func (r *IsomRect) SetModified(q ProjectedQuadrant) {
	*r.side(q.FirstSide) |= FlagModified
	*r.side(q.SecondSide) |= FlagModified
}

// IsVisited reports the Visited flag, stored on Right only.
func (r IsomRect) IsVisited() bool {
	return r.Right&FlagVisited == FlagVisited
}

// SetVisited stamps the Visited flag on Right.
func (r *IsomRect) SetVisited() {
	r.Right |= FlagVisited
}

// ClearEditorFlags masks off Modified/Visited from all four fields.
func (r *IsomRect) ClearEditorFlags() {
	r.Left &= ClearAll
	r.Top &= ClearAll
	r.Right &= ClearAll
	r.Bottom &= ClearAll
}

// Clear zeroes all four fields.
func (r *IsomRect) Clear() {
	*r = IsomRect{}
}

// GetHash computes the 6-bit-per-edge shape hash used to look up
// candidate tile groups. See spec §4.7 step 1.
func (r IsomRect) GetHash(isomLinks []ShapeLinks) uint32 {
	var hash uint32
	var lastTerrainType uint16
	for _, s := range Sides {
		isomValue := r.GetIsomValue(s)
		row := isomValue >> 4
		var shapeLinks ShapeLinks
		if int(row) < len(isomLinks) {
			shapeLinks = isomLinks[row]
		}
		edgeLink := shapeLinks.GetEdgeLink(isomValue)
		hash = (hash | uint32(edgeLink)) << 6

		if shapeLinks.TerrainType != 0 && edgeLink > SoftLinkMax {
			lastTerrainType = uint16(shapeLinks.TerrainType)
		}
	}
	return hash | uint32(lastTerrainType)
}

// RectUndo is a single undoable edit: the diamond touched, and the
// isom-rect values before and after, with editor flags always cleared
// (spec §9 design note — stored values are masked with ClearAll
// regardless of whether the rect was modified before the undo was
// opened; the dedup is by undo-map slot occupancy, not by flag).
type RectUndo struct {
	Diamond  Diamond
	OldValue IsomRect
	NewValue IsomRect
}

func clearedRect(r IsomRect) IsomRect {
	return IsomRect{
		Left:   r.Left & ClearAll,
		Top:    r.Top & ClearAll,
		Right:  r.Right & ClearAll,
		Bottom: r.Bottom & ClearAll,
	}
}

// SetOldValue stores old with editor flags cleared.
func (u *RectUndo) SetOldValue(old IsomRect) { u.OldValue = clearedRect(old) }

// SetNewValue stores new with editor flags cleared.
func (u *RectUndo) SetNewValue(new IsomRect) { u.NewValue = clearedRect(new) }

// NewRectUndo builds a RectUndo, clearing editor flags on both values.
func NewRectUndo(d Diamond, old, new IsomRect) RectUndo {
	u := RectUndo{Diamond: d}
	u.SetOldValue(old)
	u.SetNewValue(new)
	return u
}
