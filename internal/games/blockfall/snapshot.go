package blockfall

import "github.com/vovakirdan/blockfall/internal/games/blockfall/engine"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the adapter and engine state for determinism testing.
type Snapshot struct {
	Tick    uint64
	Variant Variant
	State   GameStateType
	Engine  engine.Snapshot
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.paused:
		state = StatePaused
	}

	snap := Snapshot{
		Tick:    g.tick,
		Variant: g.variant,
		State:   state,
	}
	if g.session != nil {
		snap.Engine = g.session.Snapshot()
	}
	return snap
}
