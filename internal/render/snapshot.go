package render

type Snapshot struct {
	Columns     int      `json:"columns"`
	Rows        int      `json:"rows"`
	Mines       int      `json:"mines"`
	MinesLeft   int      `json:"mines_left"`
	CellsToOpen int      `json:"cells_to_open"`
	Won         bool     `json:"won"`
	Lost        bool     `json:"lost"`
	Grid        []string `json:"grid"`
}

// NewSnapshot captures the board with one glyph string per row.
func NewSnapshot(b Board, revealOnLoss bool) Snapshot {
	text := Text{RevealOnLoss: revealOnLoss}
	glyphs := Glyphs(b, revealOnLoss)
	grid := make([]string, len(glyphs))
	for row, cells := range glyphs {
		var line []byte
		for _, g := range cells {
			line = append(line, text.Glyph(g)...)
		}
		grid[row] = string(line)
	}
	return Snapshot{
		Columns:     b.Columns(),
		Rows:        b.Rows(),
		Mines:       b.Mines(),
		MinesLeft:   b.MinesLeft(),
		CellsToOpen: b.CellsToOpen(),
		Won:         b.IsWon(),
		Lost:        b.IsLost(),
		Grid:        grid,
	}
}
