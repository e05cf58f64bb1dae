package engine

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Session owns one game: the grid, the active piece, the score and the spawn
// counters. Every method runs to completion before returning, so a lock
// (merge, sweep, respawn) is never interleaved with another command.
// A Session is not safe for concurrent use.
type Session struct {
	cfg     Config
	rng     Rand
	id      string
	grid    *Grid
	spawner *Spawner

	piece Piece
	pos   Point

	score   int
	lines   int
	pieces  int
	topOuts int

	dropInterval time.Duration
	dropAcc      time.Duration

	events []Event
}

// NewSession validates cfg and starts a fresh game drawing from rng.
func NewSession(cfg Config, rng Rand) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, errors.New("blockfall: nil random source")
	}
	s := &Session{
		cfg:     cfg,
		rng:     rng,
		spawner: NewSpawner(cfg.BombProbability, cfg.LaserProbability, cfg.ExtruderProbability),
	}
	s.Reset()
	return s, nil
}

// Reset clears the grid, timers, score and counters and spawns a new piece.
// A new session id is assigned.
func (s *Session) Reset() {
	s.id = uuid.NewString()
	s.grid = NewGrid(s.cfg.Width, s.cfg.Height)
	s.spawner.Reset()
	s.score = 0
	s.lines = 0
	s.pieces = 0
	s.topOuts = 0
	s.dropInterval = s.cfg.DropInterval
	s.dropAcc = 0
	s.events = s.events[:0]
	s.emit(Event{Kind: EventReset})
	s.spawn()
}

// Apply executes one player command. Values outside the six commands are
// ignored and report false.
func (s *Session) Apply(cmd Command) bool {
	switch cmd {
	case CommandMoveLeft:
		s.Move(-1)
	case CommandMoveRight:
		s.Move(1)
	case CommandSoftDrop:
		s.SoftDrop()
	case CommandHardDrop:
		s.HardDrop()
	case CommandRotateCW:
		s.Rotate(1)
	case CommandRotateCCW:
		s.Rotate(-1)
	default:
		return false
	}
	return true
}

// Advance accumulates elapsed time and performs an automatic soft drop once
// the accumulator exceeds the drop interval.
func (s *Session) Advance(dt time.Duration) {
	if dt <= 0 {
		return
	}
	s.dropAcc += dt
	if s.dropAcc > s.dropInterval {
		s.SoftDrop()
	}
}

// Move shifts the active piece horizontally by dir, undoing the shift if it
// collides. Reports whether the piece moved.
func (s *Session) Move(dir int) bool {
	s.pos.X += dir
	if s.grid.Collide(s.piece.Cells, s.pos) {
		s.pos.X -= dir
		return false
	}
	return true
}

// SoftDrop moves the piece down one row, locking it when it cannot move.
// Reports whether the piece locked. The drop accumulator is reset either way.
func (s *Session) SoftDrop() bool {
	s.dropAcc = 0
	s.pos.Y++
	if !s.grid.Collide(s.piece.Cells, s.pos) {
		return false
	}
	s.pos.Y--
	s.lock()
	return true
}

// HardDrop drops the piece as far as it goes and locks it.
// Returns the number of rows travelled.
func (s *Session) HardDrop() int {
	start := s.pos.Y
	for !s.grid.Collide(s.piece.Cells, s.pos) {
		s.pos.Y++
	}
	s.pos.Y--
	travelled := s.pos.Y - start
	s.lock()
	s.dropAcc = 0
	return travelled
}

// Rotate turns the piece clockwise (dir > 0) or counter-clockwise and, if the
// new orientation collides, searches horizontal kicks +1, -2, +3, -4 ...
// applied cumulatively. When the next kick would exceed the piece width the
// rotation is abandoned and the piece is restored exactly.
// Reports whether the rotation stuck.
func (s *Session) Rotate(dir int) bool {
	orig := s.piece.Cells
	origX := s.pos.X

	s.piece.Cells = Rotate(orig, dir)
	offset := 1
	for s.grid.Collide(s.piece.Cells, s.pos) {
		s.pos.X += offset
		if offset > 0 {
			offset = -(offset + 1)
		} else {
			offset = -(offset - 1)
		}
		if offset > s.piece.Width() {
			s.piece.Cells = orig
			s.pos.X = origX
			return false
		}
	}
	return true
}

// lock commits the active piece: resolve it into the grid, sweep full rows,
// then bring in the next piece.
func (s *Session) lock() {
	s.emit(Event{Kind: EventLocked, Shape: s.piece.Shape, At: s.pos})
	s.merge()
	s.sweep()
	s.spawn()
}

// spawn advances bomb fuses, then places a new random piece centred at the
// top. A piece that collides on arrival tops the session out: the grid is
// wiped and the score zeroed, and play continues with that piece.
func (s *Session) spawn() {
	s.tickBombs()

	shape := spawnOrder[s.rng.Intn(len(spawnOrder))]
	p := NewPiece(shape)
	special := s.spawner.Decorate(&p, s.rng)

	s.piece = p
	s.pos = Point{X: s.cfg.Width/2 - p.Width()/2, Y: 0}
	s.pieces++
	s.emit(Event{Kind: EventSpawned, Shape: shape, Special: special, At: s.pos})

	if s.grid.Collide(s.piece.Cells, s.pos) {
		s.grid.Clear()
		s.score = 0
		s.topOuts++
		s.emit(Event{Kind: EventTopOut, Shape: shape, At: s.pos})
	}
}

// sweep clears full rows and scores them: the k-th row of one sweep is worth
// LineScore * 2^k.
func (s *Session) sweep() {
	rows := s.grid.SweepFullRows()
	if len(rows) == 0 {
		return
	}
	points := 0
	worth := s.cfg.LineScore
	for range rows {
		points += worth
		worth *= 2
	}
	s.score += points
	s.lines += len(rows)
	s.emit(Event{Kind: EventRowsCleared, Rows: rows, Points: points})
}

func (s *Session) emit(e Event) {
	s.events = append(s.events, e)
}

// Events returns and forgets everything that happened since the last call.
func (s *Session) Events() []Event {
	if len(s.events) == 0 {
		return nil
	}
	out := make([]Event, len(s.events))
	copy(out, s.events)
	s.events = s.events[:0]
	return out
}

// SetDropInterval changes the auto-drop interval, e.g. for difficulty
// progression. Non-positive values are ignored.
func (s *Session) SetDropInterval(d time.Duration) {
	if d > 0 {
		s.dropInterval = d
	}
}

// DropInterval returns the current auto-drop interval.
func (s *Session) DropInterval() time.Duration {
	return s.dropInterval
}

// ID returns the session id assigned at the last reset.
func (s *Session) ID() string { return s.id }

// Config returns the rules the session was created with.
func (s *Session) Config() Config { return s.cfg }

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// Lines returns the rows cleared since the last reset.
func (s *Session) Lines() int { return s.lines }

// Pieces returns the pieces spawned since the last reset.
func (s *Session) Pieces() int { return s.pieces }

// TopOuts returns how many times the field filled up since the last reset.
func (s *Session) TopOuts() int { return s.topOuts }

// Grid returns a copy of the play field.
func (s *Session) Grid() *Grid { return s.grid.Clone() }

// Active returns a copy of the falling piece and its position.
func (s *Session) Active() (Piece, Point) {
	return s.piece.Clone(), s.pos
}
