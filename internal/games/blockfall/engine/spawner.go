package engine

import "math"

// specialRule is one entry of the decoration policy.
type specialRule struct {
	block       BlockID
	probability float64
	interval    int // guaranteed trigger once since >= interval; 0 = never guaranteed
	since       int // pieces spawned since this block was last chosen
}

// Spawner decides, once per spawned piece, whether one of its cells becomes a
// special block. Rules are tried in priority order (bomb, laser, extruder) and
// the first that triggers wins, so a piece never carries two specials.
type Spawner struct {
	rules []specialRule
}

// NewSpawner creates a spawner with the given per-piece probabilities.
// A probability <= 0 disables that block type.
func NewSpawner(bomb, laser, extruder float64) *Spawner {
	return &Spawner{
		rules: []specialRule{
			newRule(Bomb, bomb),
			newRule(Laser, laser),
			newRule(Extruder, extruder),
		},
	}
}

func newRule(block BlockID, p float64) specialRule {
	return specialRule{block: block, probability: p, interval: GuaranteedInterval(p)}
}

// GuaranteedInterval returns ceil(1/p): a type with probability p is forced
// once this many pieces have spawned without it. 0 when p <= 0.
func GuaranteedInterval(p float64) int {
	if p <= 0 {
		return 0
	}
	return int(math.Ceil(1 / p))
}

// Decorate advances every counter by one, picks at most one special type and
// writes it over a uniformly chosen non-empty cell of p.
// Returns the special id placed, or Empty.
func (s *Spawner) Decorate(p *Piece, rng Rand) BlockID {
	for i := range s.rules {
		s.rules[i].since++
	}

	chosen := Empty
	for i := range s.rules {
		r := &s.rules[i]
		if r.probability <= 0 {
			continue
		}
		if rng.Float64() < r.probability || r.since >= r.interval {
			r.since = 0
			chosen = r.block
			break
		}
	}
	if chosen == Empty {
		return Empty
	}

	cells := p.Cells.Occupied()
	if len(cells) == 0 {
		return Empty
	}
	at := cells[rng.Intn(len(cells))]
	p.Cells[at.Y][at.X] = chosen
	return chosen
}

// Since returns how many pieces have spawned since block was last chosen.
func (s *Spawner) Since(block BlockID) int {
	for _, r := range s.rules {
		if r.block == block {
			return r.since
		}
	}
	return 0
}

// Interval returns the guaranteed spawn interval for block, 0 when disabled.
func (s *Spawner) Interval(block BlockID) int {
	for _, r := range s.rules {
		if r.block == block {
			return r.interval
		}
	}
	return 0
}

// Reset zeroes every counter.
func (s *Spawner) Reset() {
	for i := range s.rules {
		s.rules[i].since = 0
	}
}
