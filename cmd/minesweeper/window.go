package main

import (
	"context"
	"os"

	"github.com/vancomm/arcade-mines/internal/buttons"
	"github.com/vancomm/arcade-mines/internal/desktop"
	"github.com/vancomm/arcade-mines/internal/render"
	"golang.org/x/sync/errgroup"
)

type WindowCmd struct {
	BoardFlags

	Fullscreen bool `help:"Open the window in fullscreen mode."`
	BlockSize  int  `help:"Cell size in pixels, overrides the config."`
	GPIO       bool `name:"gpio" help:"Read the GPIO button panel."`
}

func (c *WindowCmd) Run(g *Globals) error {
	a, err := g.setup(os.Stderr)
	if err != nil {
		return err
	}
	s, name, err := a.newSession(c.BoardFlags)
	if err != nil {
		return err
	}

	display := a.config.Display
	opts := desktop.Options{
		BlockSize:  display.BlockSize,
		Fullscreen: display.Fullscreen || c.Fullscreen,
		Width:      display.Width,
		Height:     display.Height,
		Palette:    render.DefaultPalette(),
		BoardName:  name,
	}
	if c.BlockSize > 0 {
		opts.BlockSize = c.BlockSize
	}

	mainCtx, stop := mainContext()
	defer stop()
	ctx, cancel := context.WithCancel(mainCtx)
	defer cancel()

	gr, gCtx := errgroup.WithContext(ctx)

	var panel desktop.EventSource
	if c.GPIO || a.config.Buttons.Enabled {
		p, err := buttons.Open(a.config.Buttons.Pins())
		if err != nil {
			return err
		}
		gr.Go(func() error {
			return p.Run(gCtx)
		})
		panel = p
	}

	// the window has to run on the main goroutine
	err = desktop.New(s, a.catalog, opts, panel).Run(gCtx)
	cancel()
	if werr := gr.Wait(); err == nil {
		err = werr
	}
	if err != nil {
		log.Printf("exit reason: %s\n", err)
	}
	return err
}
