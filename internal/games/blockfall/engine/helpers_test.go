package engine

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// scriptedRand replays fixed values. Once a script runs out, Intn returns 0
// and Float64 returns 0.99 (never below a special probability).
type scriptedRand struct {
	ints   []int
	floats []float64
}

func (r *scriptedRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	return v % n
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0.99
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

// plainConfig is the default field with special blocks switched off.
func plainConfig() Config {
	cfg := DefaultConfig()
	cfg.BombProbability = 0
	cfg.LaserProbability = 0
	cfg.ExtruderProbability = 0
	return cfg
}

func newTestSession(t *testing.T, cfg Config, seed int64) *Session {
	t.Helper()
	s, err := NewSession(cfg, rand.New(rand.NewSource(seed)))
	require.NoError(t, err)
	return s
}

// mustGrid parses a grid drawn top to bottom; rows are padded above with
// empty rows up to height h.
func mustGrid(t *testing.T, h int, rows ...string) *Grid {
	t.Helper()
	require.NotEmpty(t, rows)
	full := make([]string, 0, h)
	for len(full)+len(rows) < h {
		full = append(full, strings.Repeat(".", len(rows[0])))
	}
	full = append(full, rows...)
	g, err := ParseGrid(full, 3)
	require.NoError(t, err)
	return g
}

// countSpecials returns how many special blocks a matrix holds.
func countSpecials(m Matrix) int {
	n := 0
	for _, row := range m {
		for _, v := range row {
			if v.IsSpecial() {
				n++
			}
		}
	}
	return n
}
