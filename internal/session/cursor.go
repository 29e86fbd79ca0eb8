package session

import "github.com/vancomm/arcade-mines/internal/mines"

// Cursor is a position on the board that wraps around at the edges.
type Cursor struct {
	pos   mines.Point
	edges mines.Point
}

func NewCursor(columns, rows int) Cursor {
	return Cursor{edges: mines.Point{Col: columns, Row: rows}}
}

func (c Cursor) Pos() mines.Point {
	return c.pos
}

func (c *Cursor) Move(dcol, drow int) {
	c.pos.Col = mod(c.pos.Col+dcol, c.edges.Col)
	c.pos.Row = mod(c.pos.Row+drow, c.edges.Row)
}

// Set places the cursor at p, wrapped into the board.
func (c *Cursor) Set(p mines.Point) {
	c.pos = mines.Point{}
	c.Move(p.Col, p.Row)
}

func mod(a, n int) int {
	return (a%n + n) % n
}
