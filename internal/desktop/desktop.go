// Package desktop plays a session in a window, drawing every cell as a
// colored block.
package desktop

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/sirupsen/logrus"
	"github.com/vancomm/arcade-mines/internal/buttons"
	"github.com/vancomm/arcade-mines/internal/locale"
	"github.com/vancomm/arcade-mines/internal/render"
	"github.com/vancomm/arcade-mines/internal/session"
)

var Log = logrus.New()

const (
	TPS          = 60
	statusHeight = 40
	margin       = 10
)

var keyActions = []struct {
	key    ebiten.Key
	action session.Action
}{
	{ebiten.KeyW, session.Up},
	{ebiten.KeyArrowUp, session.Up},
	{ebiten.KeyA, session.Left},
	{ebiten.KeyArrowLeft, session.Left},
	{ebiten.KeyS, session.Down},
	{ebiten.KeyArrowDown, session.Down},
	{ebiten.KeyD, session.Right},
	{ebiten.KeyArrowRight, session.Right},
	{ebiten.KeyO, session.Reveal},
	{ebiten.KeySpace, session.Reveal},
	{ebiten.KeyP, session.Flag},
	{ebiten.KeyF, session.Flag},
	{ebiten.KeyC, session.Chord},
	{ebiten.KeyN, session.NewGame},
	{ebiten.KeyEscape, session.Quit},
	{ebiten.KeyQ, session.Quit},
}

// EventSource delivers button panel events, see [buttons.Panel].
type EventSource interface {
	Drain() []buttons.Event
}

type Options struct {
	BlockSize  int
	Fullscreen bool
	Width      int
	Height     int
	Palette    render.Palette
	BoardName  string
}

type Game struct {
	ctx     context.Context
	session *session.Session
	catalog *locale.Catalog
	opts    Options
	panel   EventSource
}

// New creates the window game. panel may be nil.
func New(s *session.Session, c *locale.Catalog, opts Options, panel EventSource) *Game {
	return &Game{
		ctx:     context.Background(),
		session: s,
		catalog: c,
		opts:    opts,
		panel:   panel,
	}
}

func (g *Game) apply(a session.Action) error {
	if a == session.Quit {
		return ebiten.Termination
	}
	if err := g.session.Apply(a); err != nil {
		Log.WithError(err).WithField("action", a).Error("move failed")
	}
	return nil
}

func (g *Game) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}
	for _, ka := range keyActions {
		if inpututil.IsKeyJustPressed(ka.key) {
			if err := g.apply(ka.action); err != nil {
				return err
			}
		}
	}
	if g.panel != nil {
		for _, ev := range g.panel.Drain() {
			if err := g.apply(ev.Action()); err != nil {
				return err
			}
		}
	}
	return nil
}

func (g *Game) boardSize() (int, int) {
	b := g.session.Board()
	return b.Columns() * g.opts.BlockSize, b.Rows() * g.opts.BlockSize
}

func (g *Game) Draw(screen *ebiten.Image) {
	p := g.opts.Palette
	screen.Fill(p.Background)

	bs := float32(g.opts.BlockSize)
	b := g.session.Board()
	cursor := g.session.Cursor()
	for pos, state := range b.Enumerate() {
		glyph := render.Classify(b, pos, state, true)
		x, y := float32(margin)+float32(pos.Col)*bs, float32(margin)+float32(pos.Row)*bs

		vector.DrawFilledRect(screen, x, y, bs, bs, p.Cell(state, glyph), false)
		vector.StrokeRect(screen, x, y, bs, bs, 1, p.GridLine, false)
		if glyph.Kind == render.Number && glyph.Hint > 0 {
			ebitenutil.DebugPrintAt(screen, strconv.Itoa(glyph.Hint),
				int(x+bs/2)-3, int(y+bs/2)-8)
		}
		if pos == cursor {
			vector.StrokeRect(screen, x+1, y+1, bs-2, bs-2, 3, p.Cursor, false)
		}
	}

	_, h := g.boardSize()
	c := g.catalog
	status := fmt.Sprintf("%s   %s   %s   %s",
		c.Get(locale.Board, g.opts.BoardName),
		c.Get(locale.MinesLeft, b.MinesLeft()),
		c.Get(locale.CellsToOpen, b.CellsToOpen()),
		c.Get(locale.Time, g.session.Elapsed().Truncate(time.Second).String()),
	)
	switch {
	case b.IsLost():
		status += "   " + c.Get(locale.Lost) + " " + c.Get(locale.NewGameHint)
	case b.IsWon():
		status += "   " + c.Get(locale.Won) + " " + c.Get(locale.NewGameHint)
	}
	ebitenutil.DebugPrintAt(screen, status, margin, margin+h+margin)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.boardSize()
	return w + 2*margin, h + 2*margin + statusHeight
}

// Run opens the window and plays until the player quits or ctx is done.
func (g *Game) Run(ctx context.Context) error {
	g.ctx = ctx

	w, h := g.Layout(0, 0)
	if g.opts.Width > w {
		w = g.opts.Width
	}
	if g.opts.Height > h {
		h = g.opts.Height
	}
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(g.catalog.Get(locale.Title))
	ebiten.SetWindowResizable(true)
	ebiten.SetTPS(TPS)
	ebiten.SetFullscreen(g.opts.Fullscreen)

	Log.WithFields(logrus.Fields{
		"board":      g.opts.BoardName,
		"block_size": g.opts.BlockSize,
		"fullscreen": g.opts.Fullscreen,
		"buttons":    g.panel != nil,
	}).Info("opening window")
	return ebiten.RunGame(g)
}
