// Package object holds the game entities: the player craft, its shots and
// bombs, air and ground enemies, and the scrolling terrain.
package object

import (
	"github.com/tomz197/xevious/internal/audio"
	"github.com/tomz197/xevious/internal/draw"
	"github.com/tomz197/xevious/internal/input"
)

// Input is an alias for the input package's Input type.
type Input = input.Input

// Random is the randomness source entities draw from. *rand.Rand satisfies it.
type Random interface {
	Float64() float64
	Intn(n int) int
}

// UpdateContext provides all the information an object needs during update.
type UpdateContext struct {
	Input  Input
	Screen Screen
	Rand   Random
	Sound  audio.Player
}

// play triggers c if a sound player is attached.
func (ctx UpdateContext) play(c audio.Cue) {
	if ctx.Sound != nil {
		ctx.Sound.Play(c)
	}
}

// DrawContext provides drawing resources for objects.
type DrawContext struct {
	Surface draw.Surface
	Screen  Screen
	Rand    Random // Decorative only, never the simulation source
}

// Screen is the logical play field size in field units.
type Screen struct {
	Width  int
	Height int
}

// W returns the field width as a float.
func (s Screen) W() float64 { return float64(s.Width) }

// H returns the field height as a float.
func (s Screen) H() float64 { return float64(s.Height) }

// Object is a drawable and updatable game entity.
type Object interface {
	// Update advances the object one frame. Returns true if the object should be removed.
	Update(ctx UpdateContext) (remove bool)

	// Draw renders the object onto ctx.Surface.
	Draw(ctx DrawContext)
}

// uniform returns a float in [lo, hi).
func uniform(r Random, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// randInt returns an integer in [lo, hi], both inclusive.
func randInt(r Random, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.Intn(hi-lo+1)
}

// spawnX picks the horizontal spawn column shared by air and ground enemies.
func spawnX(r Random, s Screen) float64 {
	return float64(randInt(r, 16, s.Width-32))
}

var (
	_ Object = (*Player)(nil)
	_ Object = (*Shot)(nil)
	_ Object = (*Bomb)(nil)
	_ Object = (*AirEnemy)(nil)
	_ Object = (*GroundEnemy)(nil)
	_ Object = (*Terrain)(nil)
)
