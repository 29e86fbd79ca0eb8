package mines

import (
	"fmt"
	"strings"
)

type GameParams struct {
	Columns, Rows, Mines int
}

func (p GameParams) Cells() int {
	return p.Columns * p.Rows
}

// Validate checks that the board has at least one cell and that at least one
// cell stays free of mines.
func (p GameParams) Validate() error {
	if p.Columns <= 0 || p.Rows <= 0 {
		return fmt.Errorf("%w: board must be at least 1x1, got %dx%d",
			ErrInvalidParams, p.Columns, p.Rows)
	}
	if p.Mines < 0 || p.Mines >= p.Cells() {
		return fmt.Errorf("%w: mine count must be in [0, %d), got %d",
			ErrInvalidParams, p.Cells(), p.Mines)
	}
	return nil
}

func (p GameParams) Seed() string {
	return fmt.Sprintf("%d:%d:%d", p.Columns, p.Rows, p.Mines)
}

func (p GameParams) String() string {
	return fmt.Sprintf("%dx%d(%d)", p.Columns, p.Rows, p.Mines)
}

func ParseSeed(seed string) (*GameParams, error) {
	p := &GameParams{}
	sseed := strings.ReplaceAll(seed, ":", " ")
	n, err := fmt.Sscanf(sseed, "%d %d %d", &p.Columns, &p.Rows, &p.Mines)
	if n != 3 || err != nil {
		return nil, fmt.Errorf(
			`invalid game params seed (sseed = "%s", n = %d, err = %w)`,
			sseed, n, err,
		)
	}
	return p, nil
}
