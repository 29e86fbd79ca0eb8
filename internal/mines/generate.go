package mines

import (
	"fmt"
	"math/rand/v2"
)

// placeMines puts count mines on distinct cells other than the one with
// linear index exclude, and fills in the hints.
func (g *Grid) placeMines(exclude, count int, r *rand.Rand) error {
	size := g.columns * g.rows
	if exclude < 0 || exclude >= size {
		return fmt.Errorf("%w: excluded index %d on %dx%d",
			ErrOutOfBounds, exclude, g.columns, g.rows)
	}

	/*
	 * Write down the list of possible mine locations.
	 */
	candidates := make([]int, 0, size-1)
	for i := range size {
		if i != exclude {
			candidates = append(candidates, i)
		}
	}
	if count > len(candidates) {
		return AssertionError{fmt.Sprintf(
			"cannot place %d mines on %d free cells", count, len(candidates),
		)}
	}

	/*
	 * Now pick count off the list at random.
	 */
	k := len(candidates)
	for range count {
		i := r.IntN(k)
		g.mine(g.PointAt(candidates[i]))
		k--
		candidates[i] = candidates[k]
	}
	return nil
}

// mine marks p as mined and bumps the hint of every neighbor. p must not be
// mined already.
func (g *Grid) mine(p Point) {
	g.set(p.Col, p.Row, g.at(p.Col, p.Row).With(Mined))
	for _, n := range g.Neighbors(p.Col, p.Row) {
		g.hints[n.Row][n.Col]++
	}
}

func (g *Grid) countMines() (count int) {
	for _, s := range g.All() {
		if s.IsMined() {
			count++
		}
	}
	return
}
