package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/vancomm/arcade-mines/internal/commands"
	"github.com/vancomm/arcade-mines/internal/render"
	"github.com/vancomm/arcade-mines/internal/session"
	"golang.org/x/term"
)

type ScriptCmd struct {
	BoardFlags

	JSON  bool `name:"json" help:"Print a JSON snapshot instead of text."`
	Batch bool `help:"Run all of stdin as one message and print the board once."`
}

func (c *ScriptCmd) Run(g *Globals) error {
	a, err := g.setup(os.Stderr)
	if err != nil {
		return err
	}
	s, _, err := a.newSession(c.BoardFlags)
	if err != nil {
		return err
	}
	text := render.Text{
		Colors:       term.IsTerminal(int(os.Stdout.Fd())),
		RevealOnLoss: true,
	}
	if c.Batch {
		return runBatch(os.Stdin, os.Stdout, s, text, c.JSON)
	}
	return runScript(os.Stdin, os.Stdout, s, text, c.JSON)
}

type reporter struct {
	out    io.Writer
	s      *session.Session
	text   render.Text
	asJSON bool
}

func (r reporter) report(cmdErr error) error {
	if r.asJSON {
		if cmdErr != nil {
			return json.NewEncoder(r.out).Encode(map[string]string{"error": cmdErr.Error()})
		}
		return json.NewEncoder(r.out).Encode(r.s)
	}
	if cmdErr != nil {
		_, err := fmt.Fprintf(r.out, "error: %s\n", cmdErr)
		return err
	}
	if err := r.text.Render(r.out, r.s.Board()); err != nil {
		return err
	}
	_, err := fmt.Fprintln(r.out, render.Status(r.s.Board()))
	return err
}

// runScript executes one command per input line and prints the board after
// each one. Bad commands are reported and skipped. It returns once the game
// is over or the input ends.
func runScript(in io.Reader, out io.Writer, s *session.Session, text render.Text, asJSON bool) error {
	r := reporter{out: out, s: s, text: text, asJSON: asJSON}

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		err := commands.Execute(s.Board(), line)
		s.Sync()
		if err != nil {
			log.WithError(err).WithField("line", line).Debug("command failed")
		}
		if err := r.report(err); err != nil {
			return err
		}
		if s.Over() {
			break
		}
	}
	return scanner.Err()
}

// runBatch executes all of in as one message. A failing command stops the
// batch; its error is reported before the board.
func runBatch(in io.Reader, out io.Writer, s *session.Session, text render.Text, asJSON bool) error {
	r := reporter{out: out, s: s, text: text, asJSON: asJSON}

	msg, err := io.ReadAll(in)
	if err != nil {
		return err
	}
	n, cmdErr := commands.ExecuteAll(s.Board(), string(msg))
	s.Sync()
	log.WithField("commands", n).Debug("batch done")
	if cmdErr != nil {
		log.WithError(cmdErr).Debug("command failed")
		if err := r.report(cmdErr); err != nil {
			return err
		}
	}
	return r.report(nil)
}
