// Package input turns raw terminal key traffic into per-frame button state.
// Terminals only report key presses (plus auto-repeat), so a button counts as
// held for a short window after its last press.
package input

import (
	"bufio"
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last press.
// It has to bridge the gap between terminal auto-repeat events.
const keyHoldDuration = 80 * time.Millisecond

// Button is one of the fixed game buttons.
type Button int

const (
	Left Button = iota
	Right
	Up
	Down
	Fire
	Bomb
	Pause
	Start
	buttonCount
)

var buttonNames = [buttonCount]string{"left", "right", "up", "down", "fire", "bomb", "pause", "start"}

func (b Button) String() string {
	if b < 0 || b >= buttonCount {
		return "unknown"
	}
	return buttonNames[b]
}

// Input represents the current frame's input state.
type Input struct {
	held    [buttonCount]bool
	pressed [buttonCount]bool
	Quit    bool
}

// Held reports whether b is down this frame.
func (in Input) Held(b Button) bool {
	return b >= 0 && b < buttonCount && in.held[b]
}

// Pressed reports whether b went down this frame.
func (in Input) Pressed(b Button) bool {
	return b >= 0 && b < buttonCount && in.pressed[b]
}

// Active reports whether any button is held.
func (in Input) Active() bool {
	for _, h := range in.held {
		if h {
			return true
		}
	}
	return false
}

// Hold returns an Input with the given buttons held but not newly pressed.
func Hold(buttons ...Button) Input {
	var in Input
	for _, b := range buttons {
		in.held[b] = true
	}
	return in
}

// Press returns an Input with the given buttons held and newly pressed.
func Press(buttons ...Button) Input {
	in := Hold(buttons...)
	for _, b := range buttons {
		in.pressed[b] = true
	}
	return in
}

// Source is anything that can be polled once per frame for input.
type Source interface {
	Poll() Input
}

// Tracker derives pressed-this-frame edges from successive held states.
type Tracker struct {
	prev [buttonCount]bool
}

// Next returns the Input for a frame whose held buttons are held.
func (t *Tracker) Next(held [buttonCount]bool, quit bool) Input {
	in := Input{held: held, Quit: quit}
	for b := range held {
		in.pressed[b] = held[b] && !t.prev[b]
	}
	t.prev = held
	return in
}

// keyState tracks the last time each key was pressed.
type keyState struct {
	buttons [buttonCount]time.Time
	quit    time.Time
}

// held resolves the key timestamps into held flags as of now.
func (k *keyState) held(now time.Time) (held [buttonCount]bool, quit bool) {
	for b := range k.buttons {
		held[b] = now.Sub(k.buttons[b]) < keyHoldDuration
	}
	return held, now.Sub(k.quit) < keyHoldDuration
}

// Stream delivers input bytes via a channel and tracks key state for combinations.
type Stream struct {
	ch      chan byte
	state   keyState
	tracker Tracker
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{
		ch: make(chan byte, 128),
	}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// Poll implements Source.
func (s *Stream) Poll() Input {
	return ReadInput(s)
}

// ReadInput drains all available bytes from the stream (non-blocking).
// Handles escape sequences for arrow keys and accumulates all pressed keys.
// A closed stream (disconnected reader) reports Quit.
func ReadInput(s *Stream) Input {
	now := time.Now()
	var buf []byte
	closed := false

	// Drain all available bytes
drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	applyBytes(&s.state, buf, now)

	held, quit := s.state.held(now)
	return s.tracker.Next(held, quit || closed)
}

// applyBytes parses raw key bytes and updates the key state timestamps.
func applyBytes(state *keyState, buf []byte, now time.Time) {
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// CSI sequence: ESC [ <code>
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			switch buf[i+2] {
			case 'A':
				state.buttons[Up] = now
			case 'B':
				state.buttons[Down] = now
			case 'C':
				state.buttons[Right] = now
			case 'D':
				state.buttons[Left] = now
			}
			i += 2
			continue
		}

		applyByteToState(state, b, now)
	}
}

// applyByteToState updates the key state timestamps based on the pressed byte.
func applyByteToState(state *keyState, b byte, now time.Time) {
	switch b {
	case 'q', 'Q', '\x03':
		state.quit = now
	case 'a', 'A', 'h', 'H':
		state.buttons[Left] = now
	case 'd', 'D', 'l', 'L':
		state.buttons[Right] = now
	case 'w', 'W', 'k', 'K':
		state.buttons[Up] = now
	case 's', 'S', 'j', 'J':
		state.buttons[Down] = now
	case 'z', 'Z':
		state.buttons[Fire] = now
	case 'x', 'X':
		state.buttons[Bomb] = now
	case 'p', 'P':
		state.buttons[Pause] = now
	case ' ', '\n', '\r':
		state.buttons[Start] = now
	}
}
