package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRotateFourTimesIsIdentity(t *testing.T) {
	for _, shape := range Shapes() {
		for _, dir := range []int{1, -1} {
			m := NewPiece(shape).Cells
			r := m
			for i := 0; i < 4; i++ {
				r = Rotate(r, dir)
			}
			assert.True(t, m.Equal(r), "%s dir %d:\n%v\n%v", shape, dir, m, r)
		}
	}
}

func TestRotateOppositeDirectionsCancel(t *testing.T) {
	for _, shape := range Shapes() {
		m := NewPiece(shape).Cells
		assert.True(t, m.Equal(Rotate(Rotate(m, 1), -1)), "%s", shape)
	}
}

func TestRotateT(t *testing.T) {
	tee := NewPiece(ShapeT).Cells

	cw := Matrix{
		{0, 1, 0},
		{1, 1, 0},
		{0, 1, 0},
	}
	ccw := Matrix{
		{0, 1, 0},
		{0, 1, 1},
		{0, 1, 0},
	}
	assert.Equal(t, cw, Rotate(tee, 1))
	assert.Equal(t, ccw, Rotate(tee, -1))
}

func TestPiecesDoNotShareCatalogMemory(t *testing.T) {
	p := NewPiece(ShapeL)
	p.Cells[0][1] = Bomb
	_ = Rotate(p.Cells, 1)

	fresh := NewPiece(ShapeL)
	assert.Equal(t, BlockL, fresh.Cells[0][1])
	assert.Zero(t, countSpecials(fresh.Cells))

	c := fresh.Clone()
	c.Cells[1][1] = Laser
	assert.Equal(t, BlockL, fresh.Cells[1][1])
}

func TestCatalogShapesHaveFourBlocks(t *testing.T) {
	for _, shape := range Shapes() {
		p := NewPiece(shape)
		assert.Len(t, p.Cells.Occupied(), 4, "%s", shape)
		assert.Equal(t, len(p.Cells), p.Width(), "%s is not square", shape)
	}
}

func TestOccupiedIsRowMajor(t *testing.T) {
	pts := NewPiece(ShapeS).Cells.Occupied()
	assert.Equal(t, []Point{{1, 0}, {2, 0}, {0, 1}, {1, 1}}, pts)
}
