package engine

// merge writes the active piece into the grid cell by cell in row-major order,
// firing special blocks as they are reached:
//   - a normal block overwrites its target;
//   - a bomb is armed with the configured fuse and detonates on later spawns;
//   - a laser empties its whole row at once;
//   - an extruder fills its neighbourhood with random normal blocks.
//
// Lasers and extruders leave holes or overhangs, so gravity runs once after
// the last cell if either fired. Cells outside the grid are dropped.
func (s *Session) merge() {
	reshaped := false
	for _, at := range s.piece.Cells.Occupied() {
		id := s.piece.Cells[at.Y][at.X]
		x, y := s.pos.X+at.X, s.pos.Y+at.Y
		if !s.grid.InBounds(x, y) {
			continue
		}
		cell := Point{X: x, Y: y}

		switch id {
		case Bomb:
			s.grid.SetBomb(x, y, s.cfg.BombTimer)
			s.emit(Event{Kind: EventBombArmed, At: cell})
		case Laser:
			s.grid.EmptyRow(y)
			reshaped = true
			s.emit(Event{Kind: EventLaserFired, At: cell, Rows: []int{y}})
		case Extruder:
			s.extrude(x, y)
			reshaped = true
			s.emit(Event{Kind: EventExtruded, At: cell})
		default:
			s.grid.Set(x, y, id)
		}
	}
	if reshaped {
		s.grid.ApplyGravity()
	}
}

// extrude overwrites every in-bounds cell around (cx, cy), the centre
// included, with a random normal block.
func (s *Session) extrude(cx, cy int) {
	r := s.cfg.BlastRadius
	for y := cy - r; y <= cy+r; y++ {
		for x := cx - r; x <= cx+r; x++ {
			if !s.grid.InBounds(x, y) {
				continue
			}
			s.grid.Set(x, y, BlockID(1+s.rng.Intn(NormalKinds)))
		}
	}
}
