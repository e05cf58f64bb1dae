// Package engine implements the Blockfall rules: a falling-block puzzle with
// bomb, laser and extruder special blocks.
// This package is UI-agnostic. Given the same random source, play is
// deterministic; only the session id assigned on each reset is not.
package engine

// BlockID identifies what occupies a grid or piece cell.
type BlockID uint8

const (
	Empty BlockID = iota
	BlockT
	BlockO
	BlockL
	BlockJ
	BlockI
	BlockS
	BlockZ
	Bomb
	Laser
	Extruder
)

// NormalKinds is the number of plain tetromino block ids (1..7).
const NormalKinds = 7

// IsNormal reports whether id is one of the seven plain tetromino blocks.
func (id BlockID) IsNormal() bool {
	return id >= BlockT && id <= BlockZ
}

// IsSpecial reports whether id is a bomb, laser or extruder.
func (id BlockID) IsSpecial() bool {
	return id == Bomb || id == Laser || id == Extruder
}

// String returns a short name for the block id.
func (id BlockID) String() string {
	switch id {
	case Empty:
		return "empty"
	case BlockT:
		return "T"
	case BlockO:
		return "O"
	case BlockL:
		return "L"
	case BlockJ:
		return "J"
	case BlockI:
		return "I"
	case BlockS:
		return "S"
	case BlockZ:
		return "Z"
	case Bomb:
		return "bomb"
	case Laser:
		return "laser"
	case Extruder:
		return "extruder"
	default:
		return "unknown"
	}
}

// Point is an integer grid position. Y grows downwards.
type Point struct {
	X, Y int
}

// Rand is the random source the engine draws from.
// *math/rand.Rand satisfies it; tests may script exact values.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// Command is one of the six player inputs the engine accepts.
type Command int

const (
	CommandMoveLeft Command = iota + 1
	CommandMoveRight
	CommandSoftDrop
	CommandHardDrop
	CommandRotateCW
	CommandRotateCCW
)

// String returns the command name.
func (c Command) String() string {
	switch c {
	case CommandMoveLeft:
		return "MoveLeft"
	case CommandMoveRight:
		return "MoveRight"
	case CommandSoftDrop:
		return "SoftDrop"
	case CommandHardDrop:
		return "HardDrop"
	case CommandRotateCW:
		return "RotateCW"
	case CommandRotateCCW:
		return "RotateCCW"
	default:
		return "Unknown"
	}
}
