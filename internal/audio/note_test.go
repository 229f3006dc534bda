package audio

import (
	"math"
	"slices"
	"testing"
)

func TestParseNotes(t *testing.T) {
	tests := []struct {
		in      string
		want    []int
		wantErr bool
	}{
		{in: "c3e3g3c4", want: []int{36, 40, 43, 48}},
		{in: "a2", want: []int{33}},
		{in: "C#1 d-1", want: []int{13, 13}},
		{in: "f1rc2", want: []int{17, rest, 24}},
		{in: "", want: nil},
		{in: "h2", wantErr: true},
		{in: "c", wantErr: true},
		{in: "c9", wantErr: true},
		{in: "c-0", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseNotes(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseNotes(%q) succeeded, want error", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseNotes(%q): %v", tt.in, err)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("ParseNotes(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestNoteFrequency(t *testing.T) {
	if got := noteFrequency(33); got != 440 {
		t.Errorf("a2 = %f Hz, want 440", got)
	}
	if got := noteFrequency(45); math.Abs(got-880) > 1e-9 {
		t.Errorf("a3 = %f Hz, want 880", got)
	}
}
