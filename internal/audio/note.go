package audio

import (
	"fmt"
	"math"
	"strings"
)

// rest marks a silent step in a parsed note sequence.
const rest = -1

// ParseNotes parses a note string such as "c3e3g3c4" into semitone numbers
// counted from c0. Sharps ("c#2") and flats ("d-2") are accepted, "r" is a
// rest and whitespace is ignored. Octaves run from 0 to 4.
func ParseNotes(s string) ([]int, error) {
	s = strings.ToLower(strings.Join(strings.Fields(s), ""))
	var notes []int
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if ch == 'r' {
			notes = append(notes, rest)
			continue
		}

		semitone := strings.IndexByte("c d ef g a b", ch)
		if semitone < 0 || ch == ' ' {
			return nil, fmt.Errorf("invalid note %q at %d", ch, i)
		}

		if i+1 < len(s) {
			switch s[i+1] {
			case '#':
				semitone++
				i++
			case '-':
				semitone--
				i++
			}
		}

		if i+1 >= len(s) || s[i+1] < '0' || s[i+1] > '4' {
			return nil, fmt.Errorf("missing octave for note %q at %d", ch, i)
		}
		i++
		n := int(s[i]-'0')*12 + semitone
		if n < 0 {
			return nil, fmt.Errorf("note below c0 at %d", i)
		}
		notes = append(notes, n)
	}
	return notes, nil
}

// noteFrequency converts a semitone number to Hz. Semitone 33 (a2) is 440 Hz.
func noteFrequency(n int) float64 {
	return 440 * math.Pow(2, float64(n-33)/12)
}
