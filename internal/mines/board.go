package mines

import (
	"fmt"
	"iter"
	"math/rand/v2"

	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/stack"
)

var Log = logrus.New()

type Lifecycle uint8

const (
	Ungenerated Lifecycle = iota // no mines placed yet
	Generated
)

func (l Lifecycle) String() string {
	switch l {
	case Ungenerated:
		return "ungenerated"
	case Generated:
		return "generated"
	default:
		return fmt.Sprintf("Lifecycle(%d)", uint8(l))
	}
}

// Board is a single minesweeper game. Mines are placed on the first call to
// Reveal so that the first opened cell is never mined.
//
// A Board is not safe for concurrent use.
type Board struct {
	params      GameParams
	grid        *Grid
	minesLeft   int
	cellsToOpen int
	alive       bool
	lifecycle   Lifecycle
	rnd         *rand.Rand
}

func newBoard(params GameParams, r *rand.Rand) *Board {
	return &Board{
		params:      params,
		grid:        newGrid(params.Columns, params.Rows),
		minesLeft:   params.Mines,
		cellsToOpen: params.Cells() - params.Mines,
		alive:       true,
		lifecycle:   Ungenerated,
		rnd:         r,
	}
}

// NewBoard creates an ungenerated board. A nil r is replaced with a randomly
// seeded source.
func NewBoard(params GameParams, r *rand.Rand) (*Board, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if r == nil {
		r = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return newBoard(params, r), nil
}

// NewBoardFromLayout creates a board that already has its mines at the given
// cells.
func NewBoardFromLayout(columns, rows int, mines []Point) (*Board, error) {
	params := GameParams{Columns: columns, Rows: rows, Mines: len(mines)}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	b := newBoard(params, nil)

	seen := mapset.New[Point]()
	for _, p := range mines {
		if err := b.grid.check(p.Col, p.Row); err != nil {
			return nil, err
		}
		if seen.Has(p) {
			return nil, fmt.Errorf("%w: mine %s listed twice", ErrInvalidParams, p)
		}
		seen.Put(p)
		b.grid.mine(p)
	}
	b.lifecycle = Generated
	return b, nil
}

func (b *Board) Params() GameParams   { return b.params }
func (b *Board) Columns() int         { return b.params.Columns }
func (b *Board) Rows() int            { return b.params.Rows }
func (b *Board) Mines() int           { return b.params.Mines }
func (b *Board) MinesLeft() int       { return b.minesLeft }
func (b *Board) CellsToOpen() int     { return b.cellsToOpen }
func (b *Board) Lifecycle() Lifecycle { return b.lifecycle }
func (b *Board) Generated() bool      { return b.lifecycle == Generated }

func (b *Board) InBounds(col, row int) bool {
	return b.grid.InBounds(col, row)
}

func (b *Board) Get(col, row int) (CellState, error) {
	return b.grid.Get(col, row)
}

func (b *Board) Hint(col, row int) (int, error) {
	return b.grid.Hint(col, row)
}

// Enumerate yields every cell with its state in row-major order. The
// sequence can be ranged over any number of times.
func (b *Board) Enumerate() iter.Seq2[Point, CellState] {
	return b.grid.All()
}

func (b *Board) IsLost() bool {
	return !b.alive
}

// IsWon reports whether every mine has been flagged or every safe cell has
// been opened. A lost board is never won, and neither is one without mines
// placed, so the first reveal of a mine-free board still opens it.
func (b *Board) IsWon() bool {
	return b.lifecycle == Generated && b.alive &&
		(b.minesLeft == 0 || b.cellsToOpen == 0)
}

func (b *Board) terminal() bool {
	return b.IsLost() || b.IsWon()
}

func (b *Board) generate(exclude int) error {
	if b.lifecycle != Ungenerated {
		return AssertionError{"mines already generated"}
	}
	if err := b.grid.placeMines(exclude, b.params.Mines, b.rnd); err != nil {
		return err
	}
	b.lifecycle = Generated

	/*
	 * Cells flagged before the first reveal may have become mines.
	 */
	b.minesLeft = b.params.Mines
	for _, s := range b.grid.All() {
		if s == FlaggedMine {
			b.minesLeft--
		}
	}

	Log.WithFields(logrus.Fields{
		"params":   b.params.Seed(),
		"placed":   b.grid.countMines(),
		"excluded": b.grid.PointAt(exclude),
	}).Debug("mines placed")
	return nil
}

// Reveal opens the cell, placing the mines first if this is the first reveal
// of the game. Opening a cell with no mined neighbors opens its neighbors as
// well. Flagged and open cells are left alone, as is every cell once the
// game is over.
func (b *Board) Reveal(col, row int) error {
	if err := b.grid.check(col, row); err != nil {
		return err
	}
	if b.terminal() {
		return nil
	}
	if b.lifecycle == Ungenerated {
		if err := b.generate(b.grid.Index(col, row)); err != nil {
			return err
		}
	}
	b.open(col, row)
	return nil
}

func (b *Board) open(col, row int) {
	todo := stack.New[Point]()
	todo.Push(Point{Col: col, Row: row})

	for todo.Size() > 0 {
		p := todo.Pop()
		s := b.grid.at(p.Col, p.Row)
		if s.IsFlagged() || s.IsOpen() {
			continue
		}

		s = s.With(Open)
		b.grid.set(p.Col, p.Row, s)
		if s == OpenMine {
			b.alive = false
			Log.WithField("cell", p).Debug("mine detonated")
			return
		}

		b.cellsToOpen--
		if b.grid.hints[p.Row][p.Col] == 0 {
			for _, n := range b.grid.Neighbors(p.Col, p.Row) {
				todo.Push(n)
			}
		}
	}
}

// ToggleFlag flags or unflags a cell that has not been opened.
func (b *Board) ToggleFlag(col, row int) error {
	if err := b.grid.check(col, row); err != nil {
		return err
	}
	if b.terminal() {
		return nil
	}

	s := b.grid.at(col, row)
	if s.IsOpen() {
		return nil
	}
	b.grid.set(col, row, s.Toggle(Flagged))

	switch s {
	case Mined:
		b.minesLeft--
	case FlaggedMine:
		b.minesLeft++
	}
	return nil
}

// Chord opens every hidden, unflagged neighbor of an open cell whose hint
// matches the number of flags around it.
func (b *Board) Chord(col, row int) error {
	if err := b.grid.check(col, row); err != nil {
		return err
	}
	if b.terminal() {
		return nil
	}

	s := b.grid.at(col, row)
	if !s.IsOpen() || s.IsMined() {
		return nil
	}

	var (
		flags  int
		hidden []Point
	)
	for _, n := range b.grid.Neighbors(col, row) {
		ns := b.grid.at(n.Col, n.Row)
		if ns.IsFlagged() {
			flags++
		} else if ns.IsHidden() {
			hidden = append(hidden, n)
		}
	}
	if flags != b.grid.hints[row][col] {
		return nil
	}

	for _, n := range hidden {
		b.open(n.Col, n.Row)
		if b.terminal() {
			break
		}
	}
	return nil
}

func (b *Board) String() string {
	return b.grid.String()
}
