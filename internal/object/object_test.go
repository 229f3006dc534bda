package object

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/tomz197/xevious/internal/audio/audiotest"
)

var testScreen = Screen{Width: 256, Height: 192}

// fixedRand returns the same float and always picks the lowest integer.
type fixedRand struct{ f float64 }

func (r fixedRand) Float64() float64 { return r.f }
func (r fixedRand) Intn(int) int     { return 0 }

func newRand() *rand.Rand {
	return rand.New(rand.NewSource(1))
}

func updateCtx(in Input, sound *audiotest.Recorder) UpdateContext {
	ctx := UpdateContext{Input: in, Screen: testScreen, Rand: newRand()}
	if sound != nil {
		ctx.Sound = sound
	}
	return ctx
}

func TestRemove(t *testing.T) {
	a, b, c := NewShot(1, 1), NewShot(2, 2), NewShot(3, 3)
	items := []*Shot{a, b, c, b}

	if !Remove(&items, b) {
		t.Fatal("Remove should find a present item")
	}
	if !slices.Equal(items, []*Shot{a, c, b}) {
		t.Errorf("after Remove: %v, want first occurrence dropped in order", items)
	}
	if Remove(&items, NewShot(0, 0)) || len(items) != 3 {
		t.Error("removing an absent item should leave the list unchanged")
	}
}
