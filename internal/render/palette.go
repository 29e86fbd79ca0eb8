package render

import (
	"image/color"

	"github.com/vancomm/arcade-mines/internal/mines"
	"golang.org/x/image/colornames"
)

// Palette colors cells in the desktop window.
type Palette struct {
	Cells      map[mines.CellState]color.RGBA
	Glyphs     map[Kind]color.RGBA
	GridLine   color.RGBA
	Cursor     color.RGBA
	Background color.RGBA
	Text       color.RGBA
}

func DefaultPalette() Palette {
	return Palette{
		Cells: map[mines.CellState]color.RGBA{
			mines.Empty:       colornames.Darkgray,
			mines.Mined:       colornames.Darkgray,
			mines.Open:        colornames.White,
			mines.Flagged:     colornames.Greenyellow,
			mines.FlaggedMine: colornames.Greenyellow,
			mines.OpenMine:    colornames.Darkred,
		},
		Glyphs: map[Kind]color.RGBA{
			Mine:      colornames.Black,
			WrongFlag: colornames.Orangered,
		},
		GridLine:   colornames.Black,
		Cursor:     colornames.Dodgerblue,
		Background: colornames.Dimgray,
		Text:       colornames.White,
	}
}

// Cell returns the fill color of a cell. Mines and wrong flags revealed
// after a loss get their glyph color instead.
func (p Palette) Cell(s mines.CellState, g Glyph) color.RGBA {
	if c, ok := p.Glyphs[g.Kind]; ok {
		return c
	}
	return p.Cells[s]
}
