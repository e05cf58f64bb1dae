package engine

// EventKind classifies something notable that happened inside the engine.
type EventKind int

const (
	EventSpawned EventKind = iota
	EventLocked
	EventRowsCleared
	EventBombArmed
	EventBombDetonated
	EventLaserFired
	EventExtruded
	EventTopOut
	EventReset
)

// String returns the event name used in logs.
func (k EventKind) String() string {
	switch k {
	case EventSpawned:
		return "spawned"
	case EventLocked:
		return "locked"
	case EventRowsCleared:
		return "rows_cleared"
	case EventBombArmed:
		return "bomb_armed"
	case EventBombDetonated:
		return "bomb_detonated"
	case EventLaserFired:
		return "laser_fired"
	case EventExtruded:
		return "extruded"
	case EventTopOut:
		return "top_out"
	case EventReset:
		return "reset"
	default:
		return "unknown"
	}
}

// Event records one engine occurrence. Fields not relevant to Kind are zero.
type Event struct {
	Kind    EventKind
	At      Point   // cell involved (bombs, lasers, extruders) or piece position
	Shape   Shape   // spawned/locked shape
	Special BlockID // decoration on a spawned piece
	Rows    []int   // cleared row indices
	Points  int     // score gained
}
