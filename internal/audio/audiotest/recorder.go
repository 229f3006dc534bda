// Package audiotest provides an audio.Player that records cues for tests.
package audiotest

import "github.com/tomz197/xevious/internal/audio"

// Recorder remembers every cue it is asked to play.
type Recorder struct {
	Cues []audio.Cue
}

var _ audio.Player = (*Recorder)(nil)

// Play implements audio.Player.
func (r *Recorder) Play(c audio.Cue) {
	r.Cues = append(r.Cues, c)
}

// Count returns how many times c was played.
func (r *Recorder) Count(c audio.Cue) int {
	n := 0
	for _, got := range r.Cues {
		if got == c {
			n++
		}
	}
	return n
}
