package session

import "fmt"

type Action uint8

const (
	None Action = iota
	Up
	Down
	Left
	Right
	Reveal
	Flag
	Chord
	NewGame
	Quit
)

var actionNames = [...]string{
	None:    "none",
	Up:      "up",
	Down:    "down",
	Left:    "left",
	Right:   "right",
	Reveal:  "reveal",
	Flag:    "flag",
	Chord:   "chord",
	NewGame: "new",
	Quit:    "quit",
}

func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return fmt.Sprintf("Action(%d)", uint8(a))
}

// Move returns the cursor offset of a movement action.
func (a Action) Move() (dcol, drow int, ok bool) {
	switch a {
	case Up:
		return 0, -1, true
	case Down:
		return 0, 1, true
	case Left:
		return -1, 0, true
	case Right:
		return 1, 0, true
	}
	return 0, 0, false
}
