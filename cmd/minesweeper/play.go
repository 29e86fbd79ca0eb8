package main

import (
	"errors"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/vancomm/arcade-mines/internal/tui"
	"golang.org/x/term"
)

type PlayCmd struct {
	BoardFlags
}

// Run plays in the terminal. Without a terminal on stdin it behaves like the
// script command.
func (c *PlayCmd) Run(g *Globals) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		script := ScriptCmd{BoardFlags: c.BoardFlags}
		return script.Run(g)
	}

	a, err := g.setup(io.Discard)
	if err != nil {
		return err
	}
	s, name, err := a.newSession(c.BoardFlags)
	if err != nil {
		return err
	}

	ctx, stop := mainContext()
	defer stop()

	err = tui.Run(tui.New(s, a.catalog, name), tea.WithContext(ctx))
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
