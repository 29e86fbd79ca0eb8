// Package session ties a board to a cursor and a game clock so that every
// front end plays the same way.
package session

import (
	"encoding/json"
	"math/rand/v2"
	"time"

	"github.com/coder/quartz"
	"github.com/sirupsen/logrus"
	"github.com/vancomm/arcade-mines/internal/mines"
	"github.com/vancomm/arcade-mines/internal/render"
)

var Log = logrus.New()

type Session struct {
	params mines.GameParams
	board  *mines.Board
	cursor Cursor
	rnd    *rand.Rand
	clock  quartz.Clock

	StartedAt time.Time
	EndedAt   time.Time
}

// New starts a session. The clock starts with the first reveal and stops
// when the game is over.
func New(params mines.GameParams, r *rand.Rand, clock quartz.Clock) (*Session, error) {
	if r == nil {
		r = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if clock == nil {
		clock = quartz.NewReal()
	}
	s := &Session{
		params: params,
		rnd:    r,
		clock:  clock,
		cursor: NewCursor(params.Columns, params.Rows),
	}
	if err := s.Restart(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Session) Board() *mines.Board { return s.board }
func (s *Session) Cursor() mines.Point { return s.cursor.Pos() }

// Over reports whether the current game is won or lost.
func (s *Session) Over() bool {
	return s.board.IsWon() || s.board.IsLost()
}

// Restart replaces the board with a fresh one of the same size. The cursor
// keeps its position.
func (s *Session) Restart() error {
	board, err := mines.NewBoard(s.params, s.rnd)
	if err != nil {
		return err
	}
	s.board = board
	s.StartedAt = time.Time{}
	s.EndedAt = time.Time{}
	return nil
}

// Apply performs a on the board at the cursor. Quit and None do nothing.
func (s *Session) Apply(a Action) error {
	if dcol, drow, ok := a.Move(); ok {
		s.cursor.Move(dcol, drow)
		return nil
	}

	p := s.cursor.Pos()
	var err error
	switch a {
	case Reveal:
		err = s.board.Reveal(p.Col, p.Row)
	case Flag:
		err = s.board.ToggleFlag(p.Col, p.Row)
	case Chord:
		err = s.board.Chord(p.Col, p.Row)
	case NewGame:
		return s.Restart()
	default:
		return nil
	}
	if err != nil {
		return err
	}
	s.Sync()
	return nil
}

// Sync updates the clock after the board changed. Callers that drive the
// board directly call it after every move.
func (s *Session) Sync() {
	if s.StartedAt.IsZero() && s.board.Generated() {
		s.StartedAt = s.clock.Now()
	}
	if s.EndedAt.IsZero() && !s.StartedAt.IsZero() && s.Over() {
		s.EndedAt = s.clock.Now()
		Log.WithFields(logrus.Fields{
			"params":  s.params.Seed(),
			"result":  render.State(s.board),
			"elapsed": s.Elapsed().String(),
		}).Info("game over")
	}
}

func (s *Session) Elapsed() time.Duration {
	switch {
	case s.StartedAt.IsZero():
		return 0
	case s.EndedAt.IsZero():
		return s.clock.Since(s.StartedAt)
	default:
		return s.EndedAt.Sub(s.StartedAt)
	}
}

type sessionJSON struct {
	render.Snapshot
	Cursor    mines.Point `json:"cursor"`
	StartedAt int64       `json:"started_at,omitempty"`
	EndedAt   *int64      `json:"ended_at,omitempty"`
	ElapsedMs int64       `json:"elapsed_ms"`
}

func (s *Session) MarshalJSON() ([]byte, error) {
	var startedAt int64
	if !s.StartedAt.IsZero() {
		startedAt = s.StartedAt.UnixMilli()
	}
	var endedAt *int64
	if !s.EndedAt.IsZero() {
		e := s.EndedAt.UnixMilli()
		endedAt = &e
	}
	return json.Marshal(sessionJSON{
		Snapshot:  render.NewSnapshot(s.board, true),
		Cursor:    s.cursor.Pos(),
		StartedAt: startedAt,
		EndedAt:   endedAt,
		ElapsedMs: s.Elapsed().Milliseconds(),
	})
}
