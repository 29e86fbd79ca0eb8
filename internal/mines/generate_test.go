package mines

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bruteHint(g *Grid, col, row int) (n int) {
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if (dc != 0 || dr != 0) && g.InBounds(col+dc, row+dr) &&
				g.at(col+dc, row+dr).IsMined() {
				n++
			}
		}
	}
	return
}

func TestPlaceMines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		params GameParams
	}{
		{name: "1x2(1)", params: GameParams{Columns: 1, Rows: 2, Mines: 1}},
		{name: "9x9(10)", params: GameParams{Columns: 9, Rows: 9, Mines: 10}},
		{name: "10x10(16)", params: GameParams{Columns: 10, Rows: 10, Mines: 16}},
		{name: "16x16(40)", params: GameParams{Columns: 16, Rows: 16, Mines: 40}},
		{name: "30x16(99)", params: GameParams{Columns: 30, Rows: 16, Mines: 99}},
		{name: "5x3(14)", params: GameParams{Columns: 5, Rows: 3, Mines: 14}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			r := rand.New(rand.NewPCG(1, 2))
			params := test.params
			for exclude := range params.Cells() {
				g := newGrid(params.Columns, params.Rows)
				require.NoError(t, g.placeMines(exclude, params.Mines, r))

				assert.Equal(t, params.Mines, g.countMines())
				p := g.PointAt(exclude)
				assert.False(t, g.at(p.Col, p.Row).IsMined(), "excluded cell %s mined", p)

				for p := range g.All() {
					hint, err := g.Hint(p.Col, p.Row)
					require.NoError(t, err)
					require.Equal(t, bruteHint(g, p.Col, p.Row), hint, "hint at %s", p)
				}
			}
		})
	}
}

func TestPlaceMinesTooMany(t *testing.T) {
	g := newGrid(2, 2)
	err := g.placeMines(0, 4, rand.New(rand.NewPCG(1, 2)))
	var ae AssertionError
	assert.ErrorAs(t, err, &ae)

	err = g.placeMines(4, 1, rand.New(rand.NewPCG(1, 2)))
	assert.ErrorIs(t, err, ErrOutOfBounds)
}
