package object

import (
	"github.com/tomz197/xevious/internal/audio"
	"github.com/tomz197/xevious/internal/draw"
)

// Bomb tunables.
const (
	BombSpeed        = 4.0
	BombRadius       = 2.0
	bombRadiusGrowth = 0.5
	// BombLifetime is how many frames an explosion lingers.
	BombLifetime = 20
	// bombFloorMargin is how far below the field an unexploded bomb may fall.
	bombFloorMargin = 16.0
	shockwaveFade   = 20.0
)

var explosionColors = [...]draw.Color{draw.Yellow, draw.Orange, draw.Red, draw.Brown}

// Bomb is a ground-targeted projectile. It falls until it explodes, then
// stays put while the blast and shockwave grow.
type Bomb struct {
	X, Y      float64
	Speed     float64
	Radius    float64
	Shockwave float64
	Exploded  bool
	Age       int // Frames since the explosion
}

// NewBomb creates an unexploded bomb at (x, y).
func NewBomb(x, y float64) *Bomb {
	return &Bomb{X: x, Y: y, Speed: BombSpeed, Radius: BombRadius}
}

// Explode detonates the bomb. Returns false if it had already exploded;
// the explosion cue only plays on the first call.
func (b *Bomb) Explode(sound audio.Player) bool {
	if b.Exploded {
		return false
	}
	b.Exploded = true
	if sound != nil {
		sound.Play(audio.Explosion)
	}
	return true
}

// Update advances the bomb one frame and reports whether it is finished:
// an explosion older than BombLifetime, or a dud that fell off the field.
func (b *Bomb) Update(ctx UpdateContext) bool {
	if !b.Exploded {
		b.Y += b.Speed
		return b.Y > ctx.Screen.H()+bombFloorMargin
	}
	b.Age++
	b.Radius += bombRadiusGrowth
	b.Shockwave++
	return b.Age > BombLifetime
}

// Draw renders the falling bomb with its tail, or the layered explosion.
func (b *Bomb) Draw(ctx DrawContext) {
	s := ctx.Surface
	if !b.Exploded {
		s.Circle(b.X, b.Y, 3, draw.Yellow)
		for i := 0; i < 3; i++ {
			s.Pixel(b.X-1+float64(i), b.Y-2-float64(i), draw.White)
		}
		return
	}

	for i, c := range explosionColors {
		if b.Age > i*3 {
			s.Circle(b.X, b.Y, b.Radius-float64(i), c)
		}
	}
	if b.Shockwave < shockwaveFade {
		s.CircleOutline(b.X, b.Y, b.Shockwave, draw.White)
		s.CircleOutline(b.X, b.Y, b.Shockwave-2, draw.Red)
	}
}
