package isom

// The 14 canonical shape templates, hard-coded exactly as the original
// tileset-independent constants they are (spec §3 "Shape", §9 "hard-coded
// templated constants" design note): initialized once here and referenced
// by ShapeId, never mutated.
var shapeTemplates = [shapeTotal]Shape{
	ShapeEdgeNorthWest: {
		TopRight:    ShapeQuadrant{Right: LinkBR, Bottom: LinkBR, LinkId: LinkIdTRBL_NW, IsStackTop: true},
		BottomRight: ShapeQuadrant{Left: LinkBR, Top: LinkBR},
		BottomLeft:  ShapeQuadrant{Right: LinkBR, Bottom: LinkFR, LinkId: LinkIdTRBL_NW, IsStackTop: true},
	},
	ShapeEdgeNorthEast: {
		TopLeft:     ShapeQuadrant{Left: LinkBL, Bottom: LinkBL, LinkId: LinkIdTLBR_NE, IsStackTop: true},
		BottomRight: ShapeQuadrant{Left: LinkBL, Bottom: LinkFL, LinkId: LinkIdTLBR_NE, IsStackTop: true},
		BottomLeft:  ShapeQuadrant{Top: LinkBL, Right: LinkBL},
	},
	ShapeEdgeSouthEast: {
		TopLeft:    ShapeQuadrant{Right: LinkTL, Bottom: LinkTL},
		TopRight:   ShapeQuadrant{Left: LinkTL, Top: LinkFL, LinkId: LinkIdTRBL_SE},
		BottomLeft: ShapeQuadrant{Left: LinkTL, Top: LinkTL, LinkId: LinkIdTRBL_SE},
	},
	ShapeEdgeSouthWest: {
		TopLeft:     ShapeQuadrant{Top: LinkFR, Right: LinkTR, LinkId: LinkIdTLBR_SW},
		TopRight:    ShapeQuadrant{Left: LinkTR, Bottom: LinkTR},
		BottomRight: ShapeQuadrant{Top: LinkTR, Right: LinkTR, LinkId: LinkIdTLBR_SW},
	},
	ShapeJutOutNorth: {
		BottomRight: ShapeQuadrant{Left: LinkBL, Bottom: LinkBL, LinkId: LinkIdTLBR_NE, IsStackTop: true},
		BottomLeft:  ShapeQuadrant{Right: LinkBR, Bottom: LinkBR, LinkId: LinkIdTRBL_NW, IsStackTop: true},
	},
	ShapeJutOutEast: {
		TopLeft:    ShapeQuadrant{Left: LinkBL, Bottom: LinkFL, LinkId: LinkIdTLBR_NE, IsStackTop: true},
		BottomLeft: ShapeQuadrant{Left: LinkTL, Top: LinkFL, LinkId: LinkIdTRBL_SE},
	},
	ShapeJutOutSouth: {
		TopLeft:  ShapeQuadrant{Top: LinkTR, Right: LinkTR, LinkId: LinkIdTLBR_SW},
		TopRight: ShapeQuadrant{Left: LinkTL, Top: LinkTL, LinkId: LinkIdTRBL_SE},
	},
	ShapeJutOutWest: {
		TopRight:    ShapeQuadrant{Right: LinkBR, Bottom: LinkFR, LinkId: LinkIdTRBL_NW, IsStackTop: true},
		BottomRight: ShapeQuadrant{Top: LinkFR, Right: LinkTR, LinkId: LinkIdTLBR_SW},
	},
	ShapeJutInEast: {
		TopLeft:     ShapeQuadrant{Top: LinkFR, Right: LinkTR, LinkId: LinkIdTLBR_SW},
		TopRight:    ShapeQuadrant{Left: LinkRH, Bottom: LinkRH},
		BottomRight: ShapeQuadrant{Left: LinkRH, Top: LinkRH},
		BottomLeft:  ShapeQuadrant{Right: LinkBR, Bottom: LinkFR, LinkId: LinkIdTRBL_NW},
	},
	ShapeJutInWest: {
		TopLeft:     ShapeQuadrant{Right: LinkLH, Bottom: LinkLH},
		TopRight:    ShapeQuadrant{Left: LinkTL, Top: LinkFL, LinkId: LinkIdTRBL_SE},
		BottomRight: ShapeQuadrant{Left: LinkBL, Bottom: LinkFL, LinkId: LinkIdTLBR_NE},
		BottomLeft:  ShapeQuadrant{Top: LinkLH, Right: LinkLH},
	},
	ShapeJutInNorth: {
		TopLeft:     ShapeQuadrant{Left: LinkBL, Bottom: LinkBL, LinkId: LinkIdTLBR_NE, IsStackTop: true},
		TopRight:    ShapeQuadrant{Right: LinkBR, Bottom: LinkBR, LinkId: LinkIdTRBL_NW, IsStackTop: true},
		BottomRight: ShapeQuadrant{Left: LinkBR, Top: LinkBR},
		BottomLeft:  ShapeQuadrant{Top: LinkBL, Right: LinkBL},
	},
	ShapeJutInSouth: {
		TopLeft:     ShapeQuadrant{Right: LinkTL, Bottom: LinkTL},
		TopRight:    ShapeQuadrant{Left: LinkTR, Bottom: LinkTR},
		BottomRight: ShapeQuadrant{Top: LinkTR, Right: LinkTR, LinkId: LinkIdTLBR_SW},
		BottomLeft:  ShapeQuadrant{Left: LinkTL, Top: LinkTL, LinkId: LinkIdTRBL_SE},
	},
	ShapeHorizontal: {
		TopLeft:     ShapeQuadrant{Top: LinkTR, Right: LinkTR, LinkId: LinkIdTLBR_SW},
		TopRight:    ShapeQuadrant{Left: LinkTL, Top: LinkTL, LinkId: LinkIdTRBL_SE},
		BottomRight: ShapeQuadrant{Left: LinkBL, Bottom: LinkBL, LinkId: LinkIdTLBR_NE},
		BottomLeft:  ShapeQuadrant{Right: LinkBR, Bottom: LinkBR, LinkId: LinkIdTRBL_NW},
	},
	ShapeVertical: {
		TopLeft:     ShapeQuadrant{Left: LinkBL, Bottom: LinkFL, LinkId: LinkIdTLBR_NE},
		TopRight:    ShapeQuadrant{Right: LinkBR, Bottom: LinkFR, LinkId: LinkIdTRBL_NW},
		BottomRight: ShapeQuadrant{Top: LinkFR, Right: LinkTR, LinkId: LinkIdTLBR_SW},
		BottomLeft:  ShapeQuadrant{Left: LinkTL, Top: LinkFL, LinkId: LinkIdTRBL_SE},
	},
}

// shapeQuadrantOf returns quadrant q of shape s.
func shapeQuadrantOf(s Shape, q Quadrant) ShapeQuadrant {
	switch q {
	case TopLeft:
		return s.TopLeft
	case TopRight:
		return s.TopRight
	case BottomRight:
		return s.BottomRight
	default:
		return s.BottomLeft
	}
}
