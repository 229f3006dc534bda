package input

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// EventStream derives button state from tcell key events.
type EventStream struct {
	ch      chan tcell.Event
	state   keyState
	tracker Tracker
}

// StartEventStream spawns a goroutine that forwards screen events.
// The stream reports Quit once the screen stops delivering events.
func StartEventStream(screen tcell.Screen) *EventStream {
	s := &EventStream{
		ch: make(chan tcell.Event, 128),
	}
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(s.ch)
				return
			}
			s.ch <- ev
		}
	}()
	return s
}

// Poll implements Source.
func (s *EventStream) Poll() Input {
	now := time.Now()
	closed := false

drain:
	for {
		select {
		case ev, ok := <-s.ch:
			if !ok {
				closed = true
				break drain
			}
			applyEvent(&s.state, ev, now)
		default:
			break drain
		}
	}

	held, quit := s.state.held(now)
	return s.tracker.Next(held, quit || closed)
}

// applyEvent updates the key state from a single tcell event.
func applyEvent(state *keyState, ev tcell.Event, now time.Time) {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return
	}
	switch key.Key() {
	case tcell.KeyUp:
		state.buttons[Up] = now
	case tcell.KeyDown:
		state.buttons[Down] = now
	case tcell.KeyLeft:
		state.buttons[Left] = now
	case tcell.KeyRight:
		state.buttons[Right] = now
	case tcell.KeyEnter:
		state.buttons[Start] = now
	case tcell.KeyCtrlC, tcell.KeyEscape:
		state.quit = now
	case tcell.KeyRune:
		if r := key.Rune(); r < 0x80 {
			applyByteToState(state, byte(r), now)
		}
	}
}
