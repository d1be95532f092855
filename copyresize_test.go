package isom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInsideAndOutsideInnerArea(t *testing.T) {
	area := BoundingBox{Left: 2, Top: 2, Right: 5, Bottom: 5}

	assert.True(t, insideInnerArea(RectPoint{X: 3, Y: 3}, area))
	assert.False(t, insideInnerArea(RectPoint{X: 5, Y: 3}, area))

	assert.False(t, outsideInnerArea(RectPoint{X: 3, Y: 3}, area))
	assert.True(t, outsideInnerArea(RectPoint{X: 5, Y: 3}, area))
}

func TestOutsideInnerAreaBuggyMatchesDocumentedTypo(t *testing.T) {
	area := BoundingBox{Left: 2, Top: 2, Right: 5, Bottom: 5}

	// y=1 is below Top (2) on both checks.
	assert.True(t, outsideInnerAreaBuggy(RectPoint{X: 3, Y: 1}, area))

	// y=6 is >= Bottom, which the correct outsideInnerArea would flag, but
	// the buggy "<" comparison never does.
	assert.False(t, outsideInnerAreaBuggy(RectPoint{X: 3, Y: 6}, area))
	assert.True(t, outsideInnerArea(RectPoint{X: 3, Y: 6}, area))
}

func TestMaxMinInt(t *testing.T) {
	assert.Equal(t, 5, maxInt(5, 3))
	assert.Equal(t, 3, minInt(5, 3))
}

func TestCopyIsomFromOverlaysOverlap(t *testing.T) {
	source := NewScMap(8, 8, BrushBadlands)
	source.IsomRects[0] = IsomRect{Left: 11, Top: 22, Right: 33, Bottom: 44}

	dest, cache := newTestMapAndCache(t, 8, 8)
	dest.CopyIsomFrom(source, 0, 0, false, cache)

	assert.Equal(t, source.IsomRects[0], dest.IsomRects[0])
}

func TestCopyIsomFromUndoableTracksPositions(t *testing.T) {
	source := NewScMap(8, 8, BrushBadlands)
	dest, cache := newTestMapAndCache(t, 8, 8)

	dest.CopyIsomFrom(source, 0, 0, true, cache)

	for i := range cache.undoMap {
		assert.NotNil(t, cache.undoMap[i])
	}
}

func TestResizeIsomShrinkDoesNotPanic(t *testing.T) {
	m, cache := newTestMapAndCache(t, 16, 16)
	ok := m.ResizeIsom(0, 0, 32, 32, false, cache)
	assert.True(t, ok)
}
