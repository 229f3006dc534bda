// Package speaker plays audio cues on the default output device. It is
// kept apart from package audio so that silent binaries do not link the
// device backend.
package speaker

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep/effects"
	beepspeaker "github.com/gopxl/beep/speaker"

	"github.com/tomz197/xevious/internal/audio"
)

// Output plays pre-rendered cues on the default audio device.
type Output struct {
	mu       sync.Mutex
	buffers  audio.Buffers
	exponent float64
	silent   bool
	closed   bool
}

// New renders the bank and opens the audio device. level runs from 0
// (mute) to 1 (full volume).
func New(bank audio.Bank, level float64) (*Output, error) {
	buffers, err := audio.Render(bank)
	if err != nil {
		return nil, err
	}
	if err := beepspeaker.Init(audio.SampleRate, audio.SampleRate.N(time.Second/20)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	exponent, silent := audio.Gain(level)
	return &Output{buffers: buffers, exponent: exponent, silent: silent}, nil
}

// Play implements audio.Player. Cues overlap freely; the call never
// blocks on playback.
func (o *Output) Play(c audio.Cue) {
	if int(c) < 0 || int(c) >= len(o.buffers) {
		return
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.closed || o.silent {
		return
	}
	buf := o.buffers[c]
	beepspeaker.Play(&effects.Volume{
		Streamer: buf.Streamer(0, buf.Len()),
		Base:     2,
		Volume:   o.exponent,
	})
}

// Close stops playback and releases the device.
func (o *Output) Close() {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.closed {
		return
	}
	o.closed = true
	beepspeaker.Clear()
	beepspeaker.Close()
}

// Open returns a device-backed Player, or a silent one if the device is
// unavailable. The returned close function is always safe to call.
func Open(bank audio.Bank, level float64, logger *log.Logger) (audio.Player, func()) {
	if _, silent := audio.Gain(level); silent {
		logger.Debug("audio muted", "level", level)
		return audio.Nop{}, func() {}
	}
	o, err := New(bank, level)
	if err != nil {
		logger.Warn("audio disabled", "err", err)
		return audio.Nop{}, func() {}
	}
	return o, o.Close
}
