package isom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsomRectSetAndGetIsomValue(t *testing.T) {
	var r IsomRect
	r.Set(ProjectedQuadrantAt(TopLeft), 42)
	assert.Equal(t, uint16(42), r.GetIsomValue(SideRight))
	assert.Equal(t, uint16(42), r.GetIsomValue(SideBottom))
}

func TestIsomRectSetModifiedAndLeftModified(t *testing.T) {
	var r IsomRect
	assert.False(t, r.IsLeftModified())

	r.Set(ProjectedQuadrantAt(BottomRight), 1)
	r.SetModified(ProjectedQuadrantAt(BottomRight))

	assert.True(t, r.IsLeftModified())
	assert.True(t, r.IsLeftOrRightModified())
}

func TestIsomRectVisited(t *testing.T) {
	var r IsomRect
	assert.False(t, r.IsVisited())
	r.SetVisited()
	assert.True(t, r.IsVisited())
}

func TestIsomRectClearEditorFlags(t *testing.T) {
	var r IsomRect
	r.Set(ProjectedQuadrantAt(TopLeft), 3)
	r.SetModified(ProjectedQuadrantAt(TopLeft))
	r.SetVisited()

	r.ClearEditorFlags()

	assert.False(t, r.IsLeftModified())
	assert.False(t, r.IsVisited())
	assert.Equal(t, uint16(3<<4)|uint16(TopLeftRight), r.GetIsomValue(SideRight))
}

func TestIsomRectClear(t *testing.T) {
	r := IsomRect{Left: 1, Top: 2, Right: 3, Bottom: 4}
	r.Clear()
	assert.Equal(t, IsomRect{}, r)
}

func TestIsomRectSetIsomValueRaw(t *testing.T) {
	var r IsomRect
	r.SetIsomValue(SideTop, 0x1234)
	assert.Equal(t, uint16(0x1234), r.Top)
}

func TestNewRectUndoClearsEditorFlags(t *testing.T) {
	old := IsomRect{Left: FlagModified | 1, Top: 2, Right: FlagVisited | 3, Bottom: 4}
	new := IsomRect{Left: 5, Top: 6, Right: 7, Bottom: 8}

	u := NewRectUndo(Diamond{X: 1, Y: 1}, old, new)

	assert.Equal(t, uint16(1), u.OldValue.Left)
	assert.Equal(t, uint16(3), u.OldValue.Right)
	assert.Equal(t, new, u.NewValue)
}

func TestIsomRectGetHashEmptyLinks(t *testing.T) {
	var r IsomRect
	hash := r.GetHash(nil)
	assert.Equal(t, uint32(0), hash)
}
