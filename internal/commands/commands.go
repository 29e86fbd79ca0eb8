// Package commands implements the line-oriented text protocol used to play
// a board from scripts: "g", "o x y", "f x y" and "c x y".
package commands

import (
	"errors"
	"fmt"
	"iter"
	"strconv"
	"strings"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrArgCount       = errors.New("invalid number of arguments")
	ErrNotInt         = errors.New("argument must be an int")
)

type Board interface {
	Reveal(col, row int) error
	ToggleFlag(col, row int) error
	Chord(col, row int) error
	IsWon() bool
	IsLost() bool
}

// Maps known commands to number of arguments
var commandNargs = map[string]int{
	"g": 0,
	"o": 2,
	"f": 2,
	"c": 2,
}

func parseXY(twoStrings []string) (x int, y int, err error) {
	if x, err = strconv.Atoi(twoStrings[0]); err != nil {
		err = fmt.Errorf("first %w, got %q", ErrNotInt, twoStrings[0])
		return
	}
	if y, err = strconv.Atoi(twoStrings[1]); err != nil {
		err = fmt.Errorf("second %w, got %q", ErrNotInt, twoStrings[1])
		return
	}
	return
}

// Execute runs a single command against b.
func Execute(b Board, c string) error {
	parts := strings.Fields(c)
	if len(parts) == 0 {
		return fmt.Errorf("%w: empty line", ErrUnknownCommand)
	}
	nargs, ok := commandNargs[parts[0]]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCommand, parts[0])
	}
	if nargs != len(parts)-1 {
		return fmt.Errorf("%w: %s takes %d, got %d",
			ErrArgCount, parts[0], nargs, len(parts)-1)
	}
	if parts[0] == "g" {
		return nil
	}

	x, y, err := parseXY(parts[1:])
	if err != nil {
		return err
	}
	switch parts[0] {
	case "o":
		return b.Reveal(x, y)
	case "f":
		return b.ToggleFlag(x, y)
	case "c":
		return b.Chord(x, y)
	}
	return ErrUnknownCommand
}

// ExecuteAll runs newline separated commands, skipping blank lines. It stops
// at the first error or once the game is over, and returns how many commands
// were run.
func ExecuteAll(b Board, msg string) (n int, err error) {
	for i, line := range byPiece(msg, "\n") {
		if b.IsWon() || b.IsLost() {
			return
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if err = Execute(b, line); err != nil {
			err = fmt.Errorf("line %d: %w", i+1, err)
			return
		}
		n++
	}
	return
}

func byPiece(s string, sep string) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		i := 0
		found := true
		var piece string
		for found {
			piece, s, found = strings.Cut(s, sep)
			if !yield(i, piece) {
				return
			}
			i += 1
		}
	}
}
