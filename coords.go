package isom

// EdgeFlags is the low nibble of an encoded rectangle field, identifying
// which diamond quadrant and which of that quadrant's two outward-facing
// sides the field represents. See spec §6.1.
type EdgeFlags uint16

const (
	TopLeftRight    EdgeFlags = 0x0
	TopLeftBottom   EdgeFlags = 0x2
	TopRightLeft    EdgeFlags = 0x4
	TopRightBottom  EdgeFlags = 0x6
	BottomRightLeft EdgeFlags = 0x8
	BottomRightTop  EdgeFlags = 0xA
	BottomLeftTop   EdgeFlags = 0xC
	BottomLeftRight EdgeFlags = 0xE

	edgeFlagMask EdgeFlags = 0xE
)

// ProjectedQuadrant is, for one diamond quadrant, exactly which two sides
// of the surrounding rectangles carry that quadrant's link value, and
// with which edge-flag nibbles. Fixed per §6.1; the first side must
// precede the second in rect-normal order (left, top, right, bottom).
type ProjectedQuadrant struct {
	FirstSide, SecondSide         Side
	FirstEdgeFlag, SecondEdgeFlag EdgeFlags
}

// projectedQuadrants is the fixed per-quadrant lookup table from §6.1.
var projectedQuadrants = [quadrantTotal]ProjectedQuadrant{
	TopLeft:     {SideRight, SideBottom, TopLeftRight, TopLeftBottom},
	TopRight:    {SideLeft, SideBottom, TopRightLeft, TopRightBottom},
	BottomRight: {SideLeft, SideTop, BottomRightLeft, BottomRightTop},
	BottomLeft:  {SideTop, SideRight, BottomLeftTop, BottomLeftRight},
}

// ProjectedQuadrantAt returns the fixed side/edge-flag mapping for q.
func ProjectedQuadrantAt(q Quadrant) ProjectedQuadrant {
	return projectedQuadrants[q]
}

// Neighbor names one of the four diagonal neighbors of a diamond.
type Neighbor int

const (
	UpperLeft Neighbor = iota
	UpperRight
	LowerRight
	LowerLeft
	neighborTotal
)

// Neighbors enumerates the four Neighbor values.
var Neighbors = [neighborTotal]Neighbor{UpperLeft, UpperRight, LowerRight, LowerLeft}

// RectPoint is a coordinate into the isom-rect grid.
type RectPoint struct {
	X, Y int
}

// Diamond is a logical isometric cell at (x, y) where (x+y)%2 == 0. Each
// diamond projects onto four surrounding isom rectangles, one per
// quadrant.
type Diamond struct {
	X, Y int
}

// IsValid reports the diamond parity invariant (x+y)%2 == 0.
func (d Diamond) IsValid() bool {
	return (d.X+d.Y)%2 == 0
}

// Neighbor offsets d by +/-1 in both axes toward the given diagonal.
func (d Diamond) Neighbor(n Neighbor) Diamond {
	switch n {
	case UpperLeft:
		return Diamond{d.X - 1, d.Y - 1}
	case UpperRight:
		return Diamond{d.X + 1, d.Y - 1}
	case LowerRight:
		return Diamond{d.X + 1, d.Y + 1}
	default: // LowerLeft
		return Diamond{d.X - 1, d.Y + 1}
	}
}

// RectCoords maps this diamond to the rectangle coordinates of the
// surrounding cell that holds quadrant q's link value.
func (d Diamond) RectCoords(q Quadrant) RectPoint {
	switch q {
	case TopLeft:
		return RectPoint{d.X - 1, d.Y - 1}
	case TopRight:
		return RectPoint{d.X, d.Y - 1}
	case BottomRight:
		return RectPoint{d.X, d.Y} // the diamond's own coordinate is its bottom-right rectangle
	default: // BottomLeft
		return RectPoint{d.X - 1, d.Y}
	}
}

// Point returns the diamond's bottom-right rectangle coordinate.
func (d Diamond) Point() RectPoint {
	return RectPoint{d.X, d.Y}
}

// BoundingBox is an inclusive [left,right] x [top,bottom] rectangle over
// isom-rect coordinates, used as the "changed area" scratch state.
type BoundingBox struct {
	Left, Top, Right, Bottom int
}

// ExpandToInclude grows the box so that (x, y) lies within it.
func (b *BoundingBox) ExpandToInclude(x, y int) {
	if x < b.Left {
		b.Left = x
	}
	if x > b.Right {
		b.Right = x
	}
	if y < b.Top {
		b.Top = y
	}
	if y > b.Bottom {
		b.Bottom = y
	}
}

// NewResizeBoundingBox computes the intersection rectangle for a resize
// or copy between an old/source and new/destination grid offset by
// (xOffset, yOffset), per the "old-width, old-height, new-width,
// new-height, +dx, +dy" rule in spec §4.6.
func NewResizeBoundingBox(oldWidth, oldHeight, newWidth, newHeight, xOffset, yOffset int) BoundingBox {
	left := 0
	if xOffset <= 0 {
		left = -xOffset
	}
	top := 0
	if yOffset <= 0 {
		top = -yOffset
	}
	right := oldWidth
	if newWidth-xOffset < right {
		right = newWidth - xOffset
	}
	bottom := oldHeight
	if newHeight-yOffset < bottom {
		bottom = newHeight - yOffset
	}
	return BoundingBox{Left: left, Top: top, Right: right, Bottom: bottom}
}
