package audio

import (
	"fmt"
	"math"

	"github.com/gopxl/beep"
)

var format = beep.Format{SampleRate: SampleRate, NumChannels: 2, Precision: 2}

// Buffers holds one pre-rendered buffer per cue.
type Buffers [cueCount]*beep.Buffer

// Render synthesizes every cue in bank into an in-memory buffer.
func Render(bank Bank) (Buffers, error) {
	var buffers Buffers
	for _, cue := range Cues() {
		streamer, err := bank.Sound(cue).Streamer(SampleRate)
		if err != nil {
			return buffers, fmt.Errorf("render cue %s: %w", cue, err)
		}
		buf := beep.NewBuffer(format)
		buf.Append(streamer)
		buffers[cue] = buf
	}
	return buffers, nil
}

// Gain converts a volume level in [0, 1] to the base-2 exponent used by
// effects.Volume. Levels at or below 0 are silent; levels above 1 are
// capped at full volume.
func Gain(level float64) (exponent float64, silent bool) {
	if level <= 0 || math.IsNaN(level) {
		return 0, true
	}
	return math.Log2(min(level, 1)), false
}
