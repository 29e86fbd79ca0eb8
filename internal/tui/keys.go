package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/vancomm/arcade-mines/internal/locale"
	"github.com/vancomm/arcade-mines/internal/session"
)

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Reveal key.Binding
	Flag   key.Binding
	Chord  key.Binding
	New    key.Binding
	Quit   key.Binding
}

func newKeyMap(c *locale.Catalog) keyMap {
	return keyMap{
		Up:     key.NewBinding(key.WithKeys("w", "up")),
		Down:   key.NewBinding(key.WithKeys("s", "down")),
		Left:   key.NewBinding(key.WithKeys("a", "left")),
		Right:  key.NewBinding(key.WithKeys("d", "right"), key.WithHelp("wasd/←↑↓→", c.Get(locale.HelpMove))),
		Reveal: key.NewBinding(key.WithKeys("o", " ", "space"), key.WithHelp("o", c.Get(locale.HelpReveal))),
		Flag:   key.NewBinding(key.WithKeys("p", "f"), key.WithHelp("p", c.Get(locale.HelpFlag))),
		Chord:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", c.Get(locale.HelpChord))),
		New:    key.NewBinding(key.WithKeys("n"), key.WithHelp("n", c.Get(locale.HelpNew))),
		Quit:   key.NewBinding(key.WithKeys("esc", "q", "ctrl+c"), key.WithHelp("esc", c.Get(locale.HelpQuit))),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Right, k.Reveal, k.Flag, k.Chord, k.New, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func (k keyMap) action(msg tea.KeyMsg) session.Action {
	for _, b := range []struct {
		binding key.Binding
		action  session.Action
	}{
		{k.Up, session.Up},
		{k.Down, session.Down},
		{k.Left, session.Left},
		{k.Right, session.Right},
		{k.Reveal, session.Reveal},
		{k.Flag, session.Flag},
		{k.Chord, session.Chord},
		{k.New, session.NewGame},
		{k.Quit, session.Quit},
	} {
		if key.Matches(msg, b.binding) {
			return b.action
		}
	}
	return session.None
}
