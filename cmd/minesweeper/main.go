package main

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/sirupsen/logrus"
	"github.com/vancomm/arcade-mines/internal/buttons"
	"github.com/vancomm/arcade-mines/internal/config"
	"github.com/vancomm/arcade-mines/internal/desktop"
	"github.com/vancomm/arcade-mines/internal/locale"
	"github.com/vancomm/arcade-mines/internal/logging"
	"github.com/vancomm/arcade-mines/internal/mines"
	"github.com/vancomm/arcade-mines/internal/session"
	"github.com/vancomm/arcade-mines/internal/tui"
)

var log = logrus.New()

type Globals struct {
	Config string `short:"c" default:"minesweeper.hcl" type:"path" help:"HCL config file; a missing file means defaults."`
	Debug  bool   `help:"Enable debug logging."`
	Lang   string `help:"Language of player messages (${languages})."`
}

type CLI struct {
	Globals

	Play    PlayCmd    `cmd:"" default:"1" help:"Play in the terminal."`
	Window  WindowCmd  `cmd:"" help:"Play in a desktop window."`
	Script  ScriptCmd  `cmd:"" help:"Read text commands from stdin and print the board after each one."`
	Presets PresetsCmd `cmd:"" help:"List board presets."`
}

// BoardFlags select the board of a new game.
type BoardFlags struct {
	Board string `short:"b" help:"Preset name, seed like 10:10:16, or query like columns=10&rows=10&mines=16."`
	Seed  string `help:"Random seed as two unsigned integers, hi:lo."`
}

type app struct {
	config  *config.Config
	catalog *locale.Catalog
}

// setup loads the config and points every package logger at one logger
// writing to console.
func (g *Globals) setup(console io.Writer) (*app, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, err
	}
	if g.Debug {
		cfg.Log.Level = "debug"
	}
	if g.Lang != "" {
		cfg.Display.Language = g.Lang
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", g.Config, err)
	}

	logger, err := logging.New(cfg.Log, console, console == os.Stderr)
	if err != nil {
		return nil, err
	}
	log = logger
	mines.Log = logger
	session.Log = logger
	buttons.Log = logger
	tui.Log = logger
	desktop.Log = logger

	log.WithFields(cfg.Fields()).Debug("config")

	catalog := locale.MustLoad(cfg.Display.Language)
	if lang := catalog.Language(); lang != cfg.Display.Language {
		log.WithFields(logrus.Fields{
			"language": cfg.Display.Language,
			"using":    lang,
		}).Warn("unknown language")
	}
	return &app{config: cfg, catalog: catalog}, nil
}

func parseRandSeed(s string) (*rand.Rand, error) {
	if s == "" {
		return nil, nil
	}
	var hi, lo uint64
	n, err := fmt.Sscanf(strings.ReplaceAll(s, ":", " "), "%d %d", &hi, &lo)
	if n != 2 || err != nil {
		return nil, fmt.Errorf(`invalid random seed %q, want "hi:lo"`, s)
	}
	return rand.New(rand.NewPCG(hi, lo)), nil
}

// newSession starts a session on the selected board and returns the board
// name to show.
func (a *app) newSession(flags BoardFlags) (*session.Session, string, error) {
	params, err := a.config.ParseBoard(flags.Board)
	if err != nil {
		return nil, "", err
	}
	r, err := parseRandSeed(flags.Seed)
	if err != nil {
		return nil, "", err
	}
	s, err := session.New(params, r, nil)
	if err != nil {
		return nil, "", err
	}

	name := flags.Board
	if name == "" {
		name = a.config.DefaultBoard
	}
	log.WithFields(logrus.Fields{
		"board":  name,
		"params": params.Seed(),
	}).Info("new session")
	return s, name, nil
}

func mainContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("minesweeper"),
		kong.Description("Minesweeper for the terminal, the desktop and arcade button panels."),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"languages": strings.Join(locale.Languages(), ", "),
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
