// Package render turns a board into glyphs, colored text, desktop colors
// and JSON snapshots.
package render

import (
	"iter"
	"strconv"

	"github.com/vancomm/arcade-mines/internal/mines"
)

// Board is the read-only view of a game the renderers need.
type Board interface {
	Columns() int
	Rows() int
	Mines() int
	MinesLeft() int
	CellsToOpen() int
	IsWon() bool
	IsLost() bool
	Hint(col, row int) (int, error)
	Enumerate() iter.Seq2[mines.Point, mines.CellState]
}

type Kind uint8

const (
	Hidden Kind = iota
	Flag
	Number
	Detonated
	Mine      // hidden mine shown after a loss
	WrongFlag // flag on a safe cell shown after a loss
)

type Glyph struct {
	Kind Kind
	Hint int
}

// Classify decides how a cell is shown. With revealOnLoss set, a lost board
// also shows its remaining mines and wrong flags. The board itself is never
// changed.
func Classify(b Board, p mines.Point, s mines.CellState, revealOnLoss bool) Glyph {
	reveal := revealOnLoss && b.IsLost()
	switch {
	case s == mines.OpenMine:
		return Glyph{Kind: Detonated}
	case s.IsOpen():
		hint, _ := b.Hint(p.Col, p.Row)
		return Glyph{Kind: Number, Hint: hint}
	case reveal && s == mines.Flagged:
		return Glyph{Kind: WrongFlag}
	case s.IsFlagged():
		return Glyph{Kind: Flag}
	case reveal && s.IsMined():
		return Glyph{Kind: Mine}
	default:
		return Glyph{Kind: Hidden}
	}
}

func (g Glyph) String() string {
	switch g.Kind {
	case Flag:
		return "F"
	case Number:
		if g.Hint == 0 {
			return "."
		}
		return strconv.Itoa(g.Hint)
	case Detonated:
		return "X"
	case Mine:
		return "*"
	case WrongFlag:
		return "x"
	default:
		return "-"
	}
}

// Glyphs returns the board's glyphs as [row][col].
func Glyphs(b Board, revealOnLoss bool) [][]Glyph {
	rows := make([][]Glyph, b.Rows())
	for row := range rows {
		rows[row] = make([]Glyph, b.Columns())
	}
	for p, s := range b.Enumerate() {
		rows[p.Row][p.Col] = Classify(b, p, s, revealOnLoss)
	}
	return rows
}
