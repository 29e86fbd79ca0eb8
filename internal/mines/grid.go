package mines

import (
	"fmt"
	"iter"
	"strconv"
	"strings"
)

type Point struct {
	Col int `json:"col"`
	Row int `json:"row"`
}

func (p Point) String() string {
	return fmt.Sprintf("%d:%d", p.Col, p.Row)
}

// Grid stores cell states and hint counts, both addressed as [row][col].
type Grid struct {
	columns, rows int
	cells         [][]CellState
	hints         [][]int
}

// Moore neighborhood offsets (dcol, drow), row by row.
var neighborhood = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

func newGrid(columns, rows int) *Grid {
	cells := make([][]CellState, rows)
	hints := make([][]int, rows)
	for row := range rows {
		cells[row] = make([]CellState, columns)
		hints[row] = make([]int, columns)
	}
	return &Grid{
		columns: columns,
		rows:    rows,
		cells:   cells,
		hints:   hints,
	}
}

func (g *Grid) Columns() int { return g.columns }
func (g *Grid) Rows() int    { return g.rows }

func (g *Grid) InBounds(col, row int) bool {
	return 0 <= col && col < g.columns && 0 <= row && row < g.rows
}

func (g *Grid) check(col, row int) error {
	if !g.InBounds(col, row) {
		return fmt.Errorf("%w: %d:%d is outside %dx%d",
			ErrOutOfBounds, col, row, g.columns, g.rows)
	}
	return nil
}

func (g *Grid) Get(col, row int) (CellState, error) {
	if err := g.check(col, row); err != nil {
		return Empty, err
	}
	return g.cells[row][col], nil
}

// Hint returns the number of mined neighbors of the cell. It is zero for
// every cell until mines are placed.
func (g *Grid) Hint(col, row int) (int, error) {
	if err := g.check(col, row); err != nil {
		return 0, err
	}
	return g.hints[row][col], nil
}

func (g *Grid) at(col, row int) CellState {
	return g.cells[row][col]
}

func (g *Grid) set(col, row int, s CellState) {
	g.cells[row][col] = s
}

func (g *Grid) Index(col, row int) int {
	return row*g.columns + col
}

func (g *Grid) PointAt(i int) Point {
	return Point{Col: i % g.columns, Row: i / g.columns}
}

// Neighbors returns the in-bounds Moore neighbors of the cell, always in the
// same order.
func (g *Grid) Neighbors(col, row int) []Point {
	ns := make([]Point, 0, len(neighborhood))
	for _, d := range neighborhood {
		c, r := col+d[0], row+d[1]
		if g.InBounds(c, r) {
			ns = append(ns, Point{Col: c, Row: r})
		}
	}
	return ns
}

// All yields every cell with its state in row-major order.
func (g *Grid) All() iter.Seq2[Point, CellState] {
	return func(yield func(Point, CellState) bool) {
		for row := range g.rows {
			for col := range g.columns {
				if !yield(Point{Col: col, Row: row}, g.cells[row][col]) {
					return
				}
			}
		}
	}
}

func (g *Grid) String() string {
	var b strings.Builder
	for row := range g.rows {
		for col := range g.columns {
			s := g.cells[row][col]
			var ch string
			switch {
			case s.IsOpen() && s.IsMined():
				ch = "X"
			case s.IsOpen():
				ch = strconv.Itoa(g.hints[row][col])
			case s.IsFlagged():
				ch = "F"
			case s.IsMined():
				ch = "*"
			default:
				ch = "-"
			}
			fmt.Fprint(&b, ch+" ")
		}
		fmt.Fprint(&b, "\n")
	}
	return b.String()
}
