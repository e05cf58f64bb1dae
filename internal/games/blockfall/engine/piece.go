package engine

// Matrix is a piece-local block layout indexed [y][x]. Catalog matrices are square.
type Matrix [][]BlockID

// Shape names one of the seven tetrominoes.
type Shape int

const (
	ShapeT Shape = iota
	ShapeO
	ShapeL
	ShapeJ
	ShapeI
	ShapeS
	ShapeZ
)

// String returns the single-letter shape name.
func (s Shape) String() string {
	switch s {
	case ShapeT:
		return "T"
	case ShapeO:
		return "O"
	case ShapeL:
		return "L"
	case ShapeJ:
		return "J"
	case ShapeI:
		return "I"
	case ShapeS:
		return "S"
	case ShapeZ:
		return "Z"
	default:
		return "?"
	}
}

// catalog holds the canonical orientation of every shape. Never mutated.
var catalog = map[Shape]Matrix{
	ShapeT: {
		{0, 0, 0},
		{1, 1, 1},
		{0, 1, 0},
	},
	ShapeO: {
		{2, 2},
		{2, 2},
	},
	ShapeL: {
		{0, 3, 0},
		{0, 3, 0},
		{0, 3, 3},
	},
	ShapeJ: {
		{0, 4, 0},
		{0, 4, 0},
		{4, 4, 0},
	},
	ShapeI: {
		{0, 5, 0, 0},
		{0, 5, 0, 0},
		{0, 5, 0, 0},
		{0, 5, 0, 0},
	},
	ShapeS: {
		{0, 6, 6},
		{6, 6, 0},
		{0, 0, 0},
	},
	ShapeZ: {
		{7, 7, 0},
		{0, 7, 7},
		{0, 0, 0},
	},
}

// spawnOrder is the order shapes are indexed by the random picker.
var spawnOrder = []Shape{ShapeT, ShapeJ, ShapeL, ShapeO, ShapeS, ShapeZ, ShapeI}

// Shapes returns the seven shapes in random-pick order.
func Shapes() []Shape {
	out := make([]Shape, len(spawnOrder))
	copy(out, spawnOrder)
	return out
}

// Piece is a tetromino instance: its shape and its current (possibly rotated
// and decorated) cells.
type Piece struct {
	Shape Shape
	Cells Matrix
}

// NewPiece returns a fresh copy of the catalog layout for s.
func NewPiece(s Shape) Piece {
	return Piece{Shape: s, Cells: catalog[s].Clone()}
}

// Clone returns a deep copy of the piece.
func (p Piece) Clone() Piece {
	return Piece{Shape: p.Shape, Cells: p.Cells.Clone()}
}

// Width returns the width of the piece's bounding box.
func (p Piece) Width() int {
	return p.Cells.Width()
}

// Clone returns a deep copy of the matrix.
func (m Matrix) Clone() Matrix {
	out := make(Matrix, len(m))
	for y, row := range m {
		out[y] = make([]BlockID, len(row))
		copy(out[y], row)
	}
	return out
}

// Width returns the length of the first row, or 0 for an empty matrix.
func (m Matrix) Width() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// Occupied returns the local positions of non-empty cells in row-major order.
func (m Matrix) Occupied() []Point {
	var pts []Point
	for y, row := range m {
		for x, v := range row {
			if v != Empty {
				pts = append(pts, Point{X: x, Y: y})
			}
		}
	}
	return pts
}

// Equal reports whether two matrices have identical layout and ids.
func (m Matrix) Equal(other Matrix) bool {
	if len(m) != len(other) {
		return false
	}
	for y := range m {
		if len(m[y]) != len(other[y]) {
			return false
		}
		for x := range m[y] {
			if m[y][x] != other[y][x] {
				return false
			}
		}
	}
	return true
}

// Rotate returns m turned a quarter turn: clockwise for dir > 0, counter-clockwise
// otherwise. It transposes and then mirrors, which is a true rotation only for
// square matrices; every catalog shape is square.
func Rotate(m Matrix, dir int) Matrix {
	n := len(m)
	out := make(Matrix, n)
	for y := range out {
		out[y] = make([]BlockID, n)
		for x := range out[y] {
			out[y][x] = m[x][y]
		}
	}
	if dir > 0 {
		for _, row := range out {
			for i, j := 0, len(row)-1; i < j; i, j = i+1, j-1 {
				row[i], row[j] = row[j], row[i]
			}
		}
	} else {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return out
}
