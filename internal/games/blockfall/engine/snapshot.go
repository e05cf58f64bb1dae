package engine

import "time"

// Snapshot is a read-only copy of everything a renderer or test needs.
type Snapshot struct {
	ID     string
	Width  int
	Height int
	Cells  [][]BlockID // [y][x]
	Timers [][]int     // bomb fuses, 0 where the cell is not a bomb

	Shape Shape
	Piece Matrix
	Pos   Point

	Score   int
	Lines   int
	Pieces  int
	TopOuts int

	SinceBomb     int
	SinceLaser    int
	SinceExtruder int

	DropInterval time.Duration
}

// Snapshot captures the current session state. The result shares no memory
// with the session.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		ID:            s.id,
		Width:         s.grid.W,
		Height:        s.grid.H,
		Cells:         s.grid.Rows(),
		Timers:        s.grid.TimerRows(),
		Shape:         s.piece.Shape,
		Piece:         s.piece.Cells.Clone(),
		Pos:           s.pos,
		Score:         s.score,
		Lines:         s.lines,
		Pieces:        s.pieces,
		TopOuts:       s.topOuts,
		SinceBomb:     s.spawner.Since(Bomb),
		SinceLaser:    s.spawner.Since(Laser),
		SinceExtruder: s.spawner.Since(Extruder),
		DropInterval:  s.dropInterval,
	}
}

// PieceAt returns the active piece's block covering grid cell (x, y), or
// Empty when the piece does not cover it.
func (s Snapshot) PieceAt(x, y int) BlockID {
	ly, lx := y-s.Pos.Y, x-s.Pos.X
	if ly < 0 || ly >= len(s.Piece) || lx < 0 || lx >= len(s.Piece[ly]) {
		return Empty
	}
	return s.Piece[ly][lx]
}
