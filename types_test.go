package isom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDirectionalLinksHasNoHardLinks(t *testing.T) {
	soft := DirectionalLinks{Left: 1, Top: 2, Right: 3, Bottom: 4}
	assert.True(t, soft.HasNoHardLinks())
	assert.False(t, soft.IsAllHardLinks())
	assert.False(t, soft.IsShapeQuadrant())
}

func TestDirectionalLinksIsAllHardLinks(t *testing.T) {
	hard := DirectionalLinks{Left: LinkBL, Top: LinkTR, Right: LinkBR, Bottom: LinkTL}
	assert.True(t, hard.IsAllHardLinks())
	assert.False(t, hard.HasNoHardLinks())
	assert.False(t, hard.IsShapeQuadrant())
}

func TestDirectionalLinksIsShapeQuadrant(t *testing.T) {
	mixed := DirectionalLinks{Left: LinkBL, Top: 1, Right: 2, Bottom: 3}
	assert.True(t, mixed.IsShapeQuadrant())
}

func TestLinkIsHard(t *testing.T) {
	assert.False(t, Link(SoftLinkMax).IsHard())
	assert.True(t, LinkBL.IsHard())
}

func TestOppositeQuadrant(t *testing.T) {
	assert.Equal(t, BottomRight, OppositeQuadrant(TopLeft))
	assert.Equal(t, BottomLeft, OppositeQuadrant(TopRight))
	assert.Equal(t, TopLeft, OppositeQuadrant(BottomRight))
	assert.Equal(t, TopRight, OppositeQuadrant(BottomLeft))
}

func TestShapeQuadrantMatches(t *testing.T) {
	sq := ShapeQuadrant{Left: 5, Top: LinkNone, Right: 7, Bottom: LinkNone}

	exact := DirectionalLinks{Left: 5, Top: 1, Right: 7, Bottom: 2}
	assert.True(t, sq.Matches(exact, true))

	mismatch := DirectionalLinks{Left: 6, Top: 1, Right: 7, Bottom: 2}
	assert.False(t, sq.Matches(mismatch, true))
}

func TestShapeQuadrantMatchesStackTop(t *testing.T) {
	sq := ShapeQuadrant{IsStackTop: true}
	assert.True(t, sq.Matches(DirectionalLinks{}, true))
	assert.False(t, sq.Matches(DirectionalLinks{}, false))
}

func TestShapeLinksGetLinkId(t *testing.T) {
	s := ShapeLinks{
		TopLeft:     topLeftQuadrant{LinkId: 1},
		TopRight:    topRightQuadrant{LinkId: 2},
		BottomRight: bottomRightQuadrant{LinkId: 3},
		BottomLeft:  bottomLeftQuadrant{LinkId: 4},
	}
	assert.Equal(t, LinkId(1), s.GetLinkId(TopLeft))
	assert.Equal(t, LinkId(2), s.GetLinkId(TopRight))
	assert.Equal(t, LinkId(3), s.GetLinkId(BottomRight))
	assert.Equal(t, LinkId(4), s.GetLinkId(BottomLeft))
}

func TestShapeLinksGetEdgeLink(t *testing.T) {
	s := ShapeLinks{
		TopLeft:     topLeftQuadrant{Right: 11, Bottom: 12},
		TopRight:    topRightQuadrant{Left: 13, Bottom: 14},
		BottomRight: bottomRightQuadrant{Left: 15, Top: 16},
		BottomLeft:  bottomLeftQuadrant{Top: 17, Right: 18},
	}

	assert.Equal(t, Link(11), s.GetEdgeLink(uint16(TopLeftRight)))
	assert.Equal(t, Link(12), s.GetEdgeLink(uint16(TopLeftBottom)))
	assert.Equal(t, Link(13), s.GetEdgeLink(uint16(TopRightLeft)))
	assert.Equal(t, Link(14), s.GetEdgeLink(uint16(TopRightBottom)))
	assert.Equal(t, Link(15), s.GetEdgeLink(uint16(BottomRightLeft)))
	assert.Equal(t, Link(16), s.GetEdgeLink(uint16(BottomRightTop)))
	assert.Equal(t, Link(17), s.GetEdgeLink(uint16(BottomLeftTop)))
	assert.Equal(t, Link(18), s.GetEdgeLink(uint16(BottomLeftRight)))
}
