package mines

import "fmt"

// CellState is a combination of the Mined, Flagged and Open bits. Only Mined
// is hidden from the player.
type CellState uint8

const (
	Mined CellState = 1 << iota
	Flagged
	Open
)

const (
	Empty       CellState = 0
	OpenMine              = Mined | Open
	FlaggedMine           = Mined | Flagged
)

// Has reports whether every bit of f is set in s.
func (s CellState) Has(f CellState) bool {
	return s&f == f
}

func (s CellState) IsMined() bool   { return s&Mined != 0 }
func (s CellState) IsFlagged() bool { return s&Flagged != 0 }
func (s CellState) IsOpen() bool    { return s&Open != 0 }

// IsHidden reports whether the cell has not been opened yet, flagged or not.
func (s CellState) IsHidden() bool { return s&Open == 0 }

func (s CellState) With(f CellState) CellState    { return s | f }
func (s CellState) Without(f CellState) CellState { return s &^ f }
func (s CellState) Toggle(f CellState) CellState  { return s ^ f }

func (s CellState) String() string {
	switch s {
	case Empty:
		return "empty"
	case Mined:
		return "mined"
	case Flagged:
		return "flagged"
	case Open:
		return "open"
	case OpenMine:
		return "open mine"
	case FlaggedMine:
		return "flagged mine"
	default:
		return fmt.Sprintf("CellState(%d)", uint8(s))
	}
}
