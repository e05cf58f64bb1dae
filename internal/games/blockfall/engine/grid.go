package engine

import (
	"fmt"
	"strings"
)

// Grid is the play field: a W x H matrix of block ids with a parallel matrix
// of bomb fuse timers. Cells are stored in row-major order: index = y*W + x.
// A timer is only meaningful where the cell holds a Bomb; every mutator keeps
// the timer at 0 everywhere else.
type Grid struct {
	W      int
	H      int
	cells  []BlockID
	timers []int
}

// NewGrid creates an empty grid with the given dimensions.
func NewGrid(w, h int) *Grid {
	return &Grid{
		W:      w,
		H:      h,
		cells:  make([]BlockID, w*h),
		timers: make([]int, w*h),
	}
}

func (g *Grid) index(x, y int) int {
	return y*g.W + x
}

// InBounds reports whether (x, y) lies inside the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// At returns the block at (x, y), or Empty when out of bounds.
func (g *Grid) At(x, y int) BlockID {
	if !g.InBounds(x, y) {
		return Empty
	}
	return g.cells[g.index(x, y)]
}

// Timer returns the bomb fuse at (x, y). It is 0 for anything but a bomb.
func (g *Grid) Timer(x, y int) int {
	if !g.InBounds(x, y) {
		return 0
	}
	return g.timers[g.index(x, y)]
}

// Set writes a block id. Writing anything over a bomb disarms its timer.
func (g *Grid) Set(x, y int, id BlockID) {
	if !g.InBounds(x, y) {
		return
	}
	i := g.index(x, y)
	g.cells[i] = id
	g.timers[i] = 0
}

// SetBomb writes a bomb with the given fuse.
func (g *Grid) SetBomb(x, y, timer int) {
	if !g.InBounds(x, y) {
		return
	}
	i := g.index(x, y)
	g.cells[i] = Bomb
	g.timers[i] = timer
}

// Clear empties every cell and timer.
func (g *Grid) Clear() {
	clear(g.cells)
	clear(g.timers)
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	c := NewGrid(g.W, g.H)
	copy(c.cells, g.cells)
	copy(c.timers, g.timers)
	return c
}

// Equal reports whether two grids have the same size, cells and timers.
func (g *Grid) Equal(other *Grid) bool {
	if g.W != other.W || g.H != other.H {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] || g.timers[i] != other.timers[i] {
			return false
		}
	}
	return true
}

// Filled returns the number of non-empty cells.
func (g *Grid) Filled() int {
	n := 0
	for _, c := range g.cells {
		if c != Empty {
			n++
		}
	}
	return n
}

// Collide reports whether matrix m placed at off overlaps an occupied cell or
// leaves the grid through a side or the bottom. Cells above the top edge never
// collide, so pieces can spawn and rotate partly off-grid.
func (g *Grid) Collide(m Matrix, off Point) bool {
	for y, row := range m {
		for x, v := range row {
			if v == Empty {
				continue
			}
			gx, gy := x+off.X, y+off.Y
			if gx < 0 || gx >= g.W || gy >= g.H {
				return true
			}
			if gy >= 0 && g.cells[g.index(gx, gy)] != Empty {
				return true
			}
		}
	}
	return false
}

// ApplyGravity compacts every column downwards, keeping the top-to-bottom
// order of its blocks. Bomb timers travel with their bombs.
func (g *Grid) ApplyGravity() {
	for x := 0; x < g.W; x++ {
		write := g.H - 1
		for y := g.H - 1; y >= 0; y-- {
			i := g.index(x, y)
			if g.cells[i] == Empty {
				continue
			}
			if y != write {
				w := g.index(x, write)
				g.cells[w], g.timers[w] = g.cells[i], g.timers[i]
			}
			write--
		}
		for y := write; y >= 0; y-- {
			i := g.index(x, y)
			g.cells[i] = Empty
			g.timers[i] = 0
		}
	}
}

// ClearRow removes row y and inserts an empty row at the top; every row above
// y moves down by one.
func (g *Grid) ClearRow(y int) {
	if y < 0 || y >= g.H {
		return
	}
	copy(g.cells[g.W:(y+1)*g.W], g.cells[:y*g.W])
	copy(g.timers[g.W:(y+1)*g.W], g.timers[:y*g.W])
	clear(g.cells[:g.W])
	clear(g.timers[:g.W])
}

// EmptyRow sets every cell of row y to Empty in place, without shifting.
func (g *Grid) EmptyRow(y int) {
	if y < 0 || y >= g.H {
		return
	}
	clear(g.cells[y*g.W : (y+1)*g.W])
	clear(g.timers[y*g.W : (y+1)*g.W])
}

// ClearArea empties the square of the given radius around (cx, cy), clipped
// to the grid. Returns how many occupied cells were removed.
func (g *Grid) ClearArea(cx, cy, radius int) int {
	removed := 0
	for y := cy - radius; y <= cy+radius; y++ {
		for x := cx - radius; x <= cx+radius; x++ {
			if !g.InBounds(x, y) {
				continue
			}
			i := g.index(x, y)
			if g.cells[i] != Empty {
				removed++
			}
			g.cells[i] = Empty
			g.timers[i] = 0
		}
	}
	return removed
}

// RowFull reports whether row y has no empty cell.
func (g *Grid) RowFull(y int) bool {
	if y < 0 || y >= g.H {
		return false
	}
	for _, c := range g.cells[y*g.W : (y+1)*g.W] {
		if c == Empty {
			return false
		}
	}
	return true
}

// SweepFullRows clears every full row, scanning from the bottom up and
// re-testing an index after a row shifts into it. Row 0 is never tested, so
// the top row cannot be swept even when full.
// Returns the cleared row indices in clearing order.
func (g *Grid) SweepFullRows() []int {
	var cleared []int
	for y := g.H - 1; y > 0; y-- {
		if !g.RowFull(y) {
			continue
		}
		g.ClearRow(y)
		cleared = append(cleared, y)
		y++
	}
	return cleared
}

// Rows returns a copy of the cells as a slice of rows.
func (g *Grid) Rows() [][]BlockID {
	rows := make([][]BlockID, g.H)
	for y := range rows {
		rows[y] = make([]BlockID, g.W)
		copy(rows[y], g.cells[y*g.W:(y+1)*g.W])
	}
	return rows
}

// TimerRows returns a copy of the bomb timers as a slice of rows.
func (g *Grid) TimerRows() [][]int {
	rows := make([][]int, g.H)
	for y := range rows {
		rows[y] = make([]int, g.W)
		copy(rows[y], g.timers[y*g.W:(y+1)*g.W])
	}
	return rows
}

// blockRunes maps ids to the characters used by String and ParseGrid.
const blockRunes = ".1234567BLX"

// String renders the grid one row per line: '.' empty, '1'-'7' normal
// blocks, 'B' bomb, 'L' laser, 'X' extruder.
func (g *Grid) String() string {
	var sb strings.Builder
	for y := 0; y < g.H; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < g.W; x++ {
			id := g.cells[g.index(x, y)]
			if int(id) < len(blockRunes) {
				sb.WriteByte(blockRunes[id])
			} else {
				sb.WriteByte('?')
			}
		}
	}
	return sb.String()
}

// ParseGrid builds a grid from rows in the String format. All rows must have
// the same width. Bombs get the given fuse.
func ParseGrid(rows []string, bombTimer int) (*Grid, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("parse grid: no rows")
	}
	w := len(rows[0])
	g := NewGrid(w, len(rows))
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("parse grid: row %d has width %d, want %d", y, len(row), w)
		}
		for x := 0; x < w; x++ {
			k := strings.IndexByte(blockRunes, row[x])
			if k < 0 {
				return nil, fmt.Errorf("parse grid: unknown cell %q at (%d, %d)", row[x], x, y)
			}
			id := BlockID(k)
			if id == Bomb {
				g.SetBomb(x, y, bombTimer)
			} else {
				g.Set(x, y, id)
			}
		}
	}
	return g, nil
}
