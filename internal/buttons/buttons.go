// Package buttons reads the arcade button panel wired to the GPIO header:
// a cross of four direction buttons and two extra buttons A and B, all with
// pull-up inputs.
package buttons

import (
	"context"
	"fmt"
	"iter"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vancomm/arcade-mines/internal/session"
	"golang.org/x/sync/errgroup"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"
)

var Log = logrus.New()

type Button uint8

const (
	CrossUp Button = iota
	CrossLeft
	CrossRight
	CrossDown
	ExtraA
	ExtraB
)

var buttonNames = [...]string{
	CrossUp:    "up",
	CrossLeft:  "left",
	CrossRight: "right",
	CrossDown:  "down",
	ExtraA:     "a",
	ExtraB:     "b",
}

func (b Button) String() string {
	if int(b) < len(buttonNames) {
		return buttonNames[b]
	}
	return fmt.Sprintf("Button(%d)", uint8(b))
}

func ParseButton(s string) (Button, error) {
	for b, name := range buttonNames {
		if name == s {
			return Button(b), nil
		}
	}
	return 0, fmt.Errorf("unknown button %q", s)
}

// Action maps a pressed button to a game action.
func (b Button) Action() session.Action {
	switch b {
	case CrossUp:
		return session.Up
	case CrossLeft:
		return session.Left
	case CrossRight:
		return session.Right
	case CrossDown:
		return session.Down
	case ExtraA:
		return session.Reveal
	case ExtraB:
		return session.Flag
	}
	return session.None
}

type EventType uint8

const (
	ButtonDown EventType = iota
	ButtonUp
)

func (t EventType) String() string {
	if t == ButtonDown {
		return "down"
	}
	return "up"
}

type Event struct {
	Button Button
	Type   EventType
}

// Action is the action of a button-down event, [session.None] otherwise.
func (e Event) Action() session.Action {
	if e.Type != ButtonDown {
		return session.None
	}
	return e.Button.Action()
}

// Pin is the part of [gpio.PinIO] the panel uses.
type Pin interface {
	Name() string
	In(pull gpio.Pull, edge gpio.Edge) error
	Read() gpio.Level
	WaitForEdge(timeout time.Duration) bool
}

type Panel struct {
	pins   map[Button]Pin
	events chan Event
	// how long a reader blocks on a pin before checking for cancellation
	poll time.Duration
}

func NewPanel(pins map[Button]Pin) *Panel {
	return &Panel{
		pins:   pins,
		events: make(chan Event, 64),
		poll:   100 * time.Millisecond,
	}
}

// Open initializes the host drivers and looks up the named buttons by their
// BCM pin numbers.
func Open(pins iter.Seq2[string, int]) (*Panel, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("unable to initialize gpio host: %w", err)
	}
	m := map[Button]Pin{}
	for name, n := range pins {
		b, err := ParseButton(name)
		if err != nil {
			return nil, err
		}
		p := gpioreg.ByName(fmt.Sprintf("GPIO%d", n))
		if p == nil {
			return nil, fmt.Errorf("no gpio pin %d for button %s", n, b)
		}
		m[b] = p
	}
	return NewPanel(m), nil
}

// Drain returns the events received since the last call without blocking.
func (p *Panel) Drain() []Event {
	var events []Event
	for {
		select {
		case ev, ok := <-p.events:
			if !ok {
				return events
			}
			events = append(events, ev)
		default:
			return events
		}
	}
}

// Run watches every pin until ctx is cancelled or a pin fails. The events
// channel is closed when Run returns.
func (p *Panel) Run(ctx context.Context) error {
	defer close(p.events)

	for b, pin := range p.pins {
		if err := pin.In(gpio.PullUp, gpio.BothEdges); err != nil {
			return fmt.Errorf("unable to set up %s on %s: %w", b, pin.Name(), err)
		}
	}

	g, gCtx := errgroup.WithContext(ctx)
	for b, pin := range p.pins {
		g.Go(func() error {
			return p.watch(gCtx, b, pin)
		})
	}
	Log.WithField("buttons", len(p.pins)).Debug("panel running")

	err := g.Wait()
	if ctx.Err() != nil {
		return nil
	}
	return err
}

func (p *Panel) watch(ctx context.Context, b Button, pin Pin) error {
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if !pin.WaitForEdge(p.poll) {
			continue
		}

		ev := Event{Button: b, Type: ButtonUp}
		if pin.Read() == gpio.High {
			ev.Type = ButtonDown
		}
		Log.WithFields(logrus.Fields{
			"button": b,
			"event":  ev.Type,
		}).Trace("edge")

		select {
		case p.events <- ev:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
