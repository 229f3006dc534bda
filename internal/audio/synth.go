package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// SampleRate is the rate every cue is synthesized at.
const SampleRate = beep.SampleRate(44100)

// stepDuration is the length of one speed unit.
const stepDuration = time.Second / 120

// masterGain keeps full-volume notes well below clipping when cues overlap.
const masterGain = 0.25

// voice renders a Sound note by note.
type voice struct {
	notes      []int
	tones      string
	volumes    string
	effects    string
	noteLen    int
	pos        int
	phase      float64
	noiseSeed  uint32
	noiseValue float64
}

// Streamer synthesizes s at rate. The streamer ends after the last note.
func (s Sound) Streamer(rate beep.SampleRate) (beep.Streamer, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	notes, _ := ParseNotes(s.Notes)
	noteLen := rate.N(time.Duration(s.Speed) * stepDuration)
	if noteLen < 1 {
		noteLen = 1
	}
	v := &voice{
		notes:     notes,
		tones:     s.Tones,
		volumes:   s.Volumes,
		effects:   s.Effects,
		noteLen:   noteLen,
		noiseSeed: 0x2545f491,
	}
	v.nextNoise()
	return v, nil
}

// letter returns the i-th letter of s, repeating the last one; def if s is empty.
func letter(s string, i int, def byte) byte {
	if len(s) == 0 {
		return def
	}
	if i >= len(s) {
		return s[len(s)-1]
	}
	return s[i]
}

func (v *voice) Stream(samples [][2]float64) (n int, ok bool) {
	total := len(v.notes) * v.noteLen
	for i := range samples {
		if v.pos >= total {
			return i, i > 0
		}
		idx := v.pos / v.noteLen
		within := float64(v.pos%v.noteLen) / float64(v.noteLen)

		sample := 0.0
		if note := v.notes[idx]; note != rest {
			freq := noteFrequency(note)
			gain := float64(letter(v.volumes, idx, '7')-'0') / 7

			switch letter(v.effects, idx, 'n') {
			case 's':
				if idx > 0 && v.notes[idx-1] != rest {
					prev := noteFrequency(v.notes[idx-1])
					freq = prev + (freq-prev)*within
				}
			case 'v':
				t := float64(v.pos) / float64(SampleRate)
				freq *= 1 + 0.015*math.Sin(2*math.Pi*6*t)
			case 'f':
				gain *= 1 - within
			}

			sample = gain * masterGain * v.wave(letter(v.tones, idx, 't'))
			v.phase += freq / float64(SampleRate)
			if v.phase >= 1 {
				v.phase -= math.Floor(v.phase)
				v.nextNoise()
			}
		}

		samples[i][0] = sample
		samples[i][1] = sample
		v.pos++
	}
	return len(samples), true
}

// wave returns the oscillator value for the current phase.
func (v *voice) wave(tone byte) float64 {
	switch tone {
	case 's':
		if v.phase < 0.5 {
			return 1
		}
		return -1
	case 'p':
		if v.phase < 0.25 {
			return 1
		}
		return -1
	case 'n':
		return v.noiseValue
	default:
		return 4*math.Abs(v.phase-0.5) - 1
	}
}

// nextNoise advances the xorshift generator. Noise holds one value per
// oscillator period so the note pitch still colors it.
func (v *voice) nextNoise() {
	v.noiseSeed ^= v.noiseSeed << 13
	v.noiseSeed ^= v.noiseSeed >> 17
	v.noiseSeed ^= v.noiseSeed << 5
	v.noiseValue = float64(v.noiseSeed)/float64(math.MaxUint32)*2 - 1
}

func (v *voice) Err() error { return nil }
