package object

import (
	"github.com/tomz197/xevious/internal/audio"
	"github.com/tomz197/xevious/internal/draw"
	"github.com/tomz197/xevious/internal/input"
	"github.com/tomz197/xevious/internal/physics"
)

// Player tunables. Times are in frames.
const (
	PlayerSpeed    = 2.5
	PlayerLives    = 3
	ShotCooldown   = 8
	BombCooldown   = 30
	InvincibleTime = 120
	reticleOffsetX = 8.0
	reticleOffsetY = -32.0
)

// Play margins: the craft stays within [marginLeft, Width-marginFar] and
// [marginTop, Height-marginFar].
const (
	marginLeft   = 8.0
	marginTop    = 16.0
	marginFar    = 24.0
	playerSpawnY = 40.0 // Distance from the bottom of the field
)

// Player is the controllable craft. It owns its shots and bombs.
type Player struct {
	X, Y             float64
	Speed            float64
	Shots            []*Shot
	Bombs            []*Bomb
	Lives            int
	Score            int
	TargetX, TargetY float64 // Bomb reticle
	Invincible       int     // Frames of immunity left
	ShotCooldown     int
	BombCooldown     int
	Engine           int // Engine flame animation counter
}

// NewPlayer creates a player at the spawn point of a screen.
func NewPlayer(s Screen) *Player {
	p := &Player{
		X:     s.W() / 2,
		Y:     s.H() - playerSpawnY,
		Speed: PlayerSpeed,
		Lives: PlayerLives,
	}
	p.TargetX = p.X + reticleOffsetX
	p.TargetY = p.Y + reticleOffsetY
	return p
}

// Update handles movement, firing and bombing, then advances the shots.
// Bombs are advanced by the owner of the collision pass, not here.
func (p *Player) Update(ctx UpdateContext) bool {
	if p.Invincible > 0 {
		p.Invincible--
	}
	if p.ShotCooldown > 0 {
		p.ShotCooldown--
	}
	if p.BombCooldown > 0 {
		p.BombCooldown--
	}
	p.Engine++

	p.move(ctx.Input, ctx.Screen)

	if ctx.Input.Held(input.Fire) && p.ShotCooldown == 0 {
		p.fire(ctx)
	}
	if ctx.Input.Pressed(input.Bomb) && p.BombCooldown == 0 {
		p.Bombs = append(p.Bombs, NewBomb(p.TargetX, p.TargetY))
		ctx.play(audio.BombLaunch)
		p.BombCooldown = BombCooldown
	}

	kept := p.Shots[:0]
	for _, s := range p.Shots {
		if !s.Update(ctx) {
			kept = append(kept, s)
		}
	}
	clear(p.Shots[len(kept):])
	p.Shots = kept

	return false
}

// move applies the directional buttons one axis at a time. Each press
// clamps to the play margins and re-aims the reticle on that axis.
func (p *Player) move(in Input, s Screen) {
	if in.Held(input.Left) {
		p.X = physics.Clamp(p.X-p.Speed, marginLeft, s.W()-marginFar)
		p.TargetX = p.X + reticleOffsetX
	}
	if in.Held(input.Right) {
		p.X = physics.Clamp(p.X+p.Speed, marginLeft, s.W()-marginFar)
		p.TargetX = p.X + reticleOffsetX
	}
	if in.Held(input.Up) {
		p.Y = physics.Clamp(p.Y-p.Speed, marginTop, s.H()-marginFar)
		p.TargetY = p.Y + reticleOffsetY
	}
	if in.Held(input.Down) {
		p.Y = physics.Clamp(p.Y+p.Speed, marginTop, s.H()-marginFar)
		p.TargetY = p.Y + reticleOffsetY
	}
}

// fire spawns the twin shots from the nose of the craft.
func (p *Player) fire(ctx UpdateContext) {
	p.Shots = append(p.Shots, NewShot(p.X+6, p.Y-2), NewShot(p.X+10, p.Y-2))
	ctx.play(audio.Fire)
	p.ShotCooldown = ShotCooldown
}

// TakeDamage costs a life unless the player is still invincible.
// Returns true if the hit landed.
func (p *Player) TakeDamage(sound audio.Player) bool {
	if p.Invincible > 0 {
		return false
	}
	p.Lives--
	p.Invincible = InvincibleTime
	if sound != nil {
		sound.Play(audio.Damage)
	}
	return true
}

// RemoveShot drops s from the shot list. Returns false if s is not live.
func (p *Player) RemoveShot(s *Shot) bool {
	return Remove(&p.Shots, s)
}

// Draw renders the craft, the bomb reticle and every projectile.
// The craft blinks while invincible.
func (p *Player) Draw(ctx DrawContext) {
	s := ctx.Surface
	if p.Invincible == 0 || p.Invincible%8 < 4 {
		s.Rect(p.X+4, p.Y, 8, 16, draw.Lime)
		s.Rect(p.X, p.Y+6, 4, 8, draw.Yellow)
		s.Rect(p.X+12, p.Y+6, 4, 8, draw.Yellow)

		flame := draw.Red
		if p.Engine%8 < 4 {
			flame = draw.Orange
		}
		s.Pixel(p.X+6, p.Y+16, flame)
		s.Pixel(p.X+9, p.Y+16, flame)
	}

	tx, ty := p.TargetX, p.TargetY
	s.RectOutline(tx-6, ty-6, 12, 12, draw.Yellow)
	s.Line(tx-6, ty, tx+6, ty, draw.Yellow)
	s.Line(tx, ty-6, tx, ty+6, draw.Yellow)
	s.Circle(tx, ty, 1, draw.Yellow)

	for _, shot := range p.Shots {
		shot.Draw(ctx)
	}
	for _, b := range p.Bombs {
		b.Draw(ctx)
	}
}
