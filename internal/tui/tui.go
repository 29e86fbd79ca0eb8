// Package tui plays a session in the terminal.
package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"
	"github.com/vancomm/arcade-mines/internal/locale"
	"github.com/vancomm/arcade-mines/internal/mines"
	"github.com/vancomm/arcade-mines/internal/render"
	"github.com/vancomm/arcade-mines/internal/session"
)

var Log = logrus.New()

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#04B575"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FAFAFA"))
	wonStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ADFF2F"))
	lostStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF5F5F"))
	boardStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#626262")).Padding(0, 1)
	cursorStyle = lipgloss.NewStyle().Reverse(true)

	kindStyles = map[render.Kind]lipgloss.Style{
		render.Hidden:    lipgloss.NewStyle().Foreground(lipgloss.Color("#626262")),
		render.Flag:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ADFF2F")),
		render.Detonated: lipgloss.NewStyle().Bold(true).Background(lipgloss.Color("#8B0000")),
		render.Mine:      lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F5F")),
		render.WrongFlag: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFA500")),
	}
	numberColors = [9]lipgloss.Color{
		"#808080", "#5F87FF", "#5FD75F", "#FF5F5F", "#AF5FFF",
		"#D75F00", "#00D7D7", "#FAFAFA", "#A8A8A8",
	}
)

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

type Model struct {
	session   *session.Session
	catalog   *locale.Catalog
	keys      keyMap
	help      help.Model
	boardName string
}

func New(s *session.Session, c *locale.Catalog, boardName string) *Model {
	return &Model{
		session:   s,
		catalog:   c,
		keys:      newKeyMap(c),
		help:      help.New(),
		boardName: boardName,
	}
}

func (m *Model) Init() tea.Cmd {
	return tick()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	case tickMsg:
		return m, tick()
	case tea.KeyMsg:
		a := m.keys.action(msg)
		if a == session.Quit {
			return m, tea.Quit
		}
		if err := m.session.Apply(a); err != nil {
			Log.WithError(err).WithField("action", a).Error("move failed")
		}
	}
	return m, nil
}

func (m *Model) cell(g render.Glyph) lipgloss.Style {
	if g.Kind == render.Number {
		return lipgloss.NewStyle().Foreground(numberColors[g.Hint])
	}
	return kindStyles[g.Kind]
}

func (m *Model) board() string {
	b := m.session.Board()
	cursor := m.session.Cursor()
	rows := render.Glyphs(b, true)

	var sb strings.Builder
	for row, cells := range rows {
		for col, g := range cells {
			style := m.cell(g)
			if (mines.Point{Col: col, Row: row}) == cursor {
				style = style.Inherit(cursorStyle)
			}
			sb.WriteString(style.Render(g.String()))
			if col < len(cells)-1 {
				sb.WriteByte(' ')
			}
		}
		if row < len(rows)-1 {
			sb.WriteByte('\n')
		}
	}
	return boardStyle.Render(sb.String())
}

func (m *Model) View() string {
	b := m.session.Board()
	c := m.catalog

	lines := []string{
		titleStyle.Render(c.Get(locale.Title)) + "  " +
			statusStyle.Render(c.Get(locale.Board, m.boardName)),
		m.board(),
		statusStyle.Render(c.Get(locale.MinesLeft, b.MinesLeft()) + "   " +
			c.Get(locale.CellsToOpen, b.CellsToOpen()) + "   " +
			c.Get(locale.Time, m.session.Elapsed().Truncate(time.Second).String())),
	}
	switch {
	case b.IsLost():
		lines = append(lines, lostStyle.Render(c.Get(locale.Lost))+" "+c.Get(locale.NewGameHint))
	case b.IsWon():
		lines = append(lines, wonStyle.Render(c.Get(locale.Won))+" "+c.Get(locale.NewGameHint))
	}
	lines = append(lines, m.help.View(m.keys))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// Run plays the session until the player quits.
func Run(m *Model, opts ...tea.ProgramOption) error {
	_, err := tea.NewProgram(m, append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)...).Run()
	return err
}
