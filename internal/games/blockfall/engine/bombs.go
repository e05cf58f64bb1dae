package engine

// burnFuses decrements the timer of every bomb and returns the bombs whose
// timer reached zero, in row-major order. The grid cells are not touched.
func (g *Grid) burnFuses() []Point {
	var expired []Point
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			i := g.index(x, y)
			if g.cells[i] != Bomb {
				continue
			}
			g.timers[i]--
			if g.timers[i] <= 0 {
				expired = append(expired, Point{X: x, Y: y})
			}
		}
	}
	return expired
}

// tickBombs runs once per spawn. All fuses burn first, so every bomb that
// expires in this tick is found on the grid as it stood before any blast;
// then each expired bomb clears its neighbourhood and gravity runs once.
// A live bomb caught in a blast is removed without detonating.
func (s *Session) tickBombs() {
	expired := s.grid.burnFuses()
	if len(expired) == 0 {
		return
	}
	for _, b := range expired {
		s.grid.ClearArea(b.X, b.Y, s.cfg.BlastRadius)
		s.emit(Event{Kind: EventBombDetonated, At: b})
	}
	s.grid.ApplyGravity()
}

// LiveBombs returns the positions of armed bombs in row-major order.
func (g *Grid) LiveBombs() []Point {
	var out []Point
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			if g.cells[g.index(x, y)] == Bomb {
				out = append(out, Point{X: x, Y: y})
			}
		}
	}
	return out
}
