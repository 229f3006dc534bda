package object

import (
	"math"

	"github.com/tomz197/xevious/internal/draw"
)

// GroundType identifies a ground enemy variant.
type GroundType int

const (
	Domogram GroundType = iota
	Barra
	Logram
)

func (t GroundType) String() string {
	switch t {
	case Domogram:
		return "domogram"
	case Barra:
		return "barra"
	case Logram:
		return "logram"
	}
	return "unknown"
}

// groundOffset is the distance from the bottom edge to a ground enemy's top.
const groundOffset = 16.0

// GroundEnemy is a unit on the terrain. Only bombs can reach it.
type GroundEnemy struct {
	X, Y      float64
	Type      GroundType
	Size      float64 // Footprint width
	Speed     float64
	Health    int
	Points    int
	Color     draw.Color
	Animation int
}

// NewGroundEnemy creates an enemy of type t near the bottom edge.
func NewGroundEnemy(t GroundType, r Random, s Screen) *GroundEnemy {
	e := &GroundEnemy{
		X:      spawnX(r, s),
		Y:      s.H() - groundOffset,
		Type:   t,
		Health: 1,
	}

	switch t {
	case Barra:
		// Stationary, but the speed is still rolled like the other types.
		e.Speed = uniform(r, 1, 2)
		e.Color = draw.LightBlue
		e.Size = 24
		e.Points = 500
		e.Health = 2
	case Logram:
		e.Speed = uniform(r, 0.3, 1)
		e.Color = draw.DarkBlue
		e.Size = 20
		e.Points = 300
	default:
		e.Speed = uniform(r, 0.5, 1.5)
		e.Color = draw.Brown
		e.Size = 16
		e.Points = 200
	}
	return e
}

// Update advances the animation counter and moves the enemy. Ground
// enemies never leave on their own.
func (e *GroundEnemy) Update(ctx UpdateContext) bool {
	e.Animation++
	switch e.Type {
	case Domogram:
		e.X += e.Speed
		if e.X <= 0 || e.X >= ctx.Screen.W()-e.Size {
			e.Speed = -e.Speed
		}
	case Logram:
		e.X += e.Speed * math.Sin(float64(e.Animation)/30)
	}
	return false
}

// RadarOn reports whether a barra's radar light is lit this frame.
func (e *GroundEnemy) RadarOn() bool {
	return e.Type == Barra && e.Animation%60 < 30
}

// Center returns the point bombs are measured against.
func (e *GroundEnemy) Center() (x, y float64) {
	return e.X + e.Size/2, e.Y + 8
}

// Draw renders the enemy's silhouette.
func (e *GroundEnemy) Draw(ctx DrawContext) {
	s := ctx.Surface
	switch e.Type {
	case Domogram:
		s.Rect(e.X, e.Y+8, e.Size, 8, e.Color)
		s.Rect(e.X+4, e.Y+4, e.Size-8, 4, e.Color)
		s.Rect(e.X+6, e.Y, 4, 4, e.Color)
	case Barra:
		s.Rect(e.X, e.Y, e.Size, 16, e.Color)
		s.Rect(e.X+4, e.Y-4, 16, 4, e.Color)
		if e.RadarOn() {
			s.Rect(e.X+8, e.Y-8, 8, 4, draw.Red)
		}
	default:
		s.Rect(e.X+2, e.Y+4, e.Size-4, 12, e.Color)
		s.Circle(e.X+4, e.Y+10, 3, draw.Navy)
		s.Circle(e.X+e.Size-4, e.Y+10, 3, draw.Navy)
	}
}
