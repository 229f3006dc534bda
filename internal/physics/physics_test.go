package physics

import (
	"math"
	"testing"
)

func TestDistanceSquared(t *testing.T) {
	if got := DistanceSquared(1, 1, 4, 5); got != 25 {
		t.Errorf("DistanceSquared = %f, want 25", got)
	}
}

func TestNear(t *testing.T) {
	tests := []struct {
		name           string
		x1, y1, x2, y2 float64
		want           bool
	}{
		{name: "same point", want: true},
		{name: "inside", x1: 0, y1: 0, x2: 11.9, y2: -11.9, want: true},
		{name: "on x edge", x1: 0, y1: 0, x2: 12, y2: 0, want: false},
		{name: "on y edge", x1: 0, y1: 0, x2: 0, y2: -12, want: false},
		{name: "diagonal inside box", x1: 0, y1: 0, x2: 11, y2: 11, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Near(tt.x1, tt.y1, tt.x2, tt.y2, 12, 12); got != tt.want {
				t.Errorf("Near = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInRadius(t *testing.T) {
	if !InRadius(0, 0, 3, 0, 3.5) {
		t.Error("point at distance 3 should be inside radius 3.5")
	}
	if InRadius(0, 0, 3, 4, 5) {
		t.Error("point exactly on the circle should be outside")
	}
	if InRadius(0, 0, 0, 0, -1) || InRadius(0, 0, 0, 0, 0) {
		t.Error("non-positive radius should contain nothing")
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(-1, 0, 10); got != 0 {
		t.Errorf("Clamp low = %f", got)
	}
	if got := Clamp(11, 0, 10); got != 10 {
		t.Errorf("Clamp high = %f", got)
	}
	if got := Clamp(math.Pi, 0, 10); got != math.Pi {
		t.Errorf("Clamp mid = %f", got)
	}
}
