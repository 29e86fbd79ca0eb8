package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/gookit/color"
)

var numberStyles = [9]color.Style{
	{color.FgGray},
	{color.FgBlue},
	{color.FgGreen},
	{color.FgRed},
	{color.FgMagenta, color.OpBold},
	{color.FgRed, color.OpBold},
	{color.FgCyan},
	{color.FgWhite, color.OpBold},
	{color.FgGray, color.OpBold},
}

var kindStyles = map[Kind]color.Style{
	Hidden:    {color.FgDarkGray},
	Flag:      {color.FgGreen, color.OpBold},
	Detonated: {color.FgWhite, color.BgRed, color.OpBold},
	Mine:      {color.FgRed},
	WrongFlag: {color.FgYellow, color.OpBold},
}

// Text renders a board as rows of space separated glyphs.
type Text struct {
	Colors       bool
	RevealOnLoss bool
}

func (t Text) Style(g Glyph) color.Style {
	if g.Kind == Number {
		return numberStyles[g.Hint]
	}
	return kindStyles[g.Kind]
}

func (t Text) Glyph(g Glyph) string {
	if !t.Colors {
		return g.String()
	}
	return t.Style(g).Sprint(g.String())
}

func (t Text) Render(w io.Writer, b Board) error {
	for _, row := range Glyphs(b, t.RevealOnLoss) {
		cells := make([]string, len(row))
		for col, g := range row {
			cells[col] = t.Glyph(g)
		}
		if _, err := fmt.Fprintln(w, strings.Join(cells, " ")); err != nil {
			return err
		}
	}
	return nil
}

func (t Text) Sprint(b Board) string {
	var sb strings.Builder
	_ = t.Render(&sb, b)
	return sb.String()
}

// State is "won", "lost" or "playing".
func State(b Board) string {
	switch {
	case b.IsLost():
		return "lost"
	case b.IsWon():
		return "won"
	default:
		return "playing"
	}
}

func Status(b Board) string {
	return fmt.Sprintf("state=%s mines_left=%d cells_to_open=%d",
		State(b), b.MinesLeft(), b.CellsToOpen())
}
