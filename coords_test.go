package isom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiamondIsValid(t *testing.T) {
	assert.True(t, Diamond{X: 0, Y: 0}.IsValid())
	assert.True(t, Diamond{X: 3, Y: 1}.IsValid())
	assert.False(t, Diamond{X: 1, Y: 0}.IsValid())
}

func TestDiamondNeighbor(t *testing.T) {
	d := Diamond{X: 4, Y: 4}
	assert.Equal(t, Diamond{X: 3, Y: 3}, d.Neighbor(UpperLeft))
	assert.Equal(t, Diamond{X: 5, Y: 3}, d.Neighbor(UpperRight))
	assert.Equal(t, Diamond{X: 5, Y: 5}, d.Neighbor(LowerRight))
	assert.Equal(t, Diamond{X: 3, Y: 5}, d.Neighbor(LowerLeft))
}

func TestDiamondRectCoords(t *testing.T) {
	d := Diamond{X: 4, Y: 4}
	assert.Equal(t, RectPoint{X: 3, Y: 3}, d.RectCoords(TopLeft))
	assert.Equal(t, RectPoint{X: 4, Y: 3}, d.RectCoords(TopRight))
	assert.Equal(t, RectPoint{X: 4, Y: 4}, d.RectCoords(BottomRight))
	assert.Equal(t, RectPoint{X: 3, Y: 4}, d.RectCoords(BottomLeft))
	assert.Equal(t, d.Point(), d.RectCoords(BottomRight))
}

func TestBoundingBoxExpandToInclude(t *testing.T) {
	b := BoundingBox{Left: 5, Top: 5, Right: 5, Bottom: 5}
	b.ExpandToInclude(2, 8)
	assert.Equal(t, 2, b.Left)
	assert.Equal(t, 5, b.Right)
	assert.Equal(t, 5, b.Top)
	assert.Equal(t, 8, b.Bottom)
}

func TestNewResizeBoundingBoxNoOffset(t *testing.T) {
	b := NewResizeBoundingBox(10, 10, 10, 10, 0, 0)
	assert.Equal(t, BoundingBox{Left: 0, Top: 0, Right: 10, Bottom: 10}, b)
}

func TestNewResizeBoundingBoxShrink(t *testing.T) {
	b := NewResizeBoundingBox(10, 10, 6, 6, 0, 0)
	assert.Equal(t, BoundingBox{Left: 0, Top: 0, Right: 6, Bottom: 6}, b)
}

func TestNewResizeBoundingBoxNegativeOffset(t *testing.T) {
	b := NewResizeBoundingBox(10, 10, 10, 10, -2, -3)
	assert.Equal(t, 2, b.Left)
	assert.Equal(t, 3, b.Top)
}

func TestProjectedQuadrantAt(t *testing.T) {
	pq := ProjectedQuadrantAt(TopLeft)
	assert.Equal(t, SideRight, pq.FirstSide)
	assert.Equal(t, SideBottom, pq.SecondSide)
	assert.Equal(t, TopLeftRight, pq.FirstEdgeFlag)
	assert.Equal(t, TopLeftBottom, pq.SecondEdgeFlag)
}
