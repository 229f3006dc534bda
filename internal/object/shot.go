package object

import "github.com/tomz197/xevious/internal/draw"

// Shot tunables.
const (
	ShotSpeed = 6.0
	shotTopY  = -8.0
)

// Shot is a player projectile travelling straight up.
type Shot struct {
	X, Y  float64
	Speed float64
}

// NewShot creates a shot at (x, y).
func NewShot(x, y float64) *Shot {
	return &Shot{X: x, Y: y, Speed: ShotSpeed}
}

// Update moves the shot up. Shots above the top bound are removed.
func (s *Shot) Update(UpdateContext) bool {
	s.Y -= s.Speed
	return s.Y < shotTopY
}

// Draw renders the shot as a thin white bar.
func (s *Shot) Draw(ctx DrawContext) {
	ctx.Surface.Rect(s.X-1, s.Y, 2, 6, draw.White)
}
