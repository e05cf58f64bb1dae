package engine

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig is wrapped by every Config validation failure.
var ErrInvalidConfig = errors.New("invalid blockfall config")

// Config holds the rule parameters of a session.
type Config struct {
	Width        int
	Height       int
	DropInterval time.Duration // auto-drop fires once accumulated time exceeds this
	BombTimer    int           // spawns until a merged bomb detonates
	BlastRadius  int           // 1 = 3x3 neighbourhood for bombs and extruders
	LineScore    int           // points for the first row of a sweep; doubles per extra row

	BombProbability     float64
	LaserProbability    float64
	ExtruderProbability float64
}

// DefaultConfig returns the standard 10x20 rules with all specials at 25%.
func DefaultConfig() Config {
	return Config{
		Width:               10,
		Height:              20,
		DropInterval:        1000 * time.Millisecond,
		BombTimer:           3,
		BlastRadius:         1,
		LineScore:           10,
		BombProbability:     0.25,
		LaserProbability:    0.25,
		ExtruderProbability: 0.25,
	}
}

// Validate checks that the rules describe a playable field.
func (c Config) Validate() error {
	switch {
	case c.Width < 4:
		return fmt.Errorf("width %d below 4: %w", c.Width, ErrInvalidConfig)
	case c.Height < 4:
		return fmt.Errorf("height %d below 4: %w", c.Height, ErrInvalidConfig)
	case c.DropInterval <= 0:
		return fmt.Errorf("drop interval %s must be positive: %w", c.DropInterval, ErrInvalidConfig)
	case c.BombTimer < 1:
		return fmt.Errorf("bomb timer %d below 1: %w", c.BombTimer, ErrInvalidConfig)
	case c.BlastRadius < 0:
		return fmt.Errorf("blast radius %d is negative: %w", c.BlastRadius, ErrInvalidConfig)
	case c.LineScore < 0:
		return fmt.Errorf("line score %d is negative: %w", c.LineScore, ErrInvalidConfig)
	}
	for name, p := range map[string]float64{
		"bomb":     c.BombProbability,
		"laser":    c.LaserProbability,
		"extruder": c.ExtruderProbability,
	} {
		if p < 0 || p > 1 {
			return fmt.Errorf("%s probability %g outside [0, 1]: %w", name, p, ErrInvalidConfig)
		}
	}
	return nil
}
