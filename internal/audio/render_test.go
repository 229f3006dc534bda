package audio

import (
	"math"
	"testing"
)

func TestRenderBank(t *testing.T) {
	buffers, err := Render(DefaultBank())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	for _, cue := range Cues() {
		if buffers[cue] == nil || buffers[cue].Len() == 0 {
			t.Errorf("cue %s rendered empty", cue)
		}
	}

	bad := DefaultBank()
	bad[Kill].Notes = "??"
	if _, err := Render(bad); err == nil {
		t.Error("Render should reject invalid notes")
	}
}

func TestGain(t *testing.T) {
	tests := []struct {
		level      float64
		wantAmp    float64
		wantSilent bool
	}{
		{level: 0, wantSilent: true},
		{level: -0.5, wantSilent: true},
		{level: math.NaN(), wantSilent: true},
		{level: 0.25, wantAmp: 0.25},
		{level: 0.5, wantAmp: 0.5},
		{level: 1, wantAmp: 1},
		{level: 3, wantAmp: 1},
	}

	for _, tt := range tests {
		exp, silent := Gain(tt.level)
		if silent != tt.wantSilent {
			t.Errorf("Gain(%v) silent = %v, want %v", tt.level, silent, tt.wantSilent)
			continue
		}
		if silent {
			continue
		}
		// effects.Volume scales amplitude by Base^Volume with Base 2
		if amp := math.Pow(2, exp); math.Abs(amp-tt.wantAmp) > 1e-12 {
			t.Errorf("Gain(%v) amplitude = %v, want %v", tt.level, amp, tt.wantAmp)
		}
	}
}
