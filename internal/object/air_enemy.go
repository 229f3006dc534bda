package object

import (
	"math"

	"github.com/tomz197/xevious/internal/draw"
	"github.com/tomz197/xevious/internal/physics"
)

// AirType identifies an airborne enemy variant.
type AirType int

const (
	Toroid AirType = iota
	Garu
	Zakato
)

func (t AirType) String() string {
	switch t {
	case Toroid:
		return "toroid"
	case Garu:
		return "garu"
	case Zakato:
		return "zakato"
	}
	return "unknown"
}

// Pattern is an air enemy's motion model.
type Pattern int

const (
	Straight Pattern = iota
	Wave
	Dive
	Formation
)

func (p Pattern) String() string {
	switch p {
	case Straight:
		return "straight"
	case Wave:
		return "wave"
	case Dive:
		return "dive"
	case Formation:
		return "formation"
	}
	return "unknown"
}

// Air enemy tunables.
const (
	AirEnemySize  = 16.0
	airSpawnY     = -16.0
	airExitMargin = 16.0
	diveThreshold = 60.0
	diveStep      = 0.15
)

// AirEnemy is a flying enemy moving down the field along its pattern.
type AirEnemy struct {
	X, Y    float64
	Type    AirType
	Pattern Pattern
	Speed   float64
	Health  int
	Points  int
	Color   draw.Color
	Angle   float64 // Dive accumulator
	Phase   float64 // Sway offset for wave and formation, in [0, 2π)
}

// NewAirEnemy creates an enemy of type t just above the top edge.
func NewAirEnemy(t AirType, r Random, s Screen) *AirEnemy {
	e := &AirEnemy{
		X:      spawnX(r, s),
		Y:      airSpawnY,
		Type:   t,
		Health: 1,
	}
	e.Phase = r.Float64() * 2 * math.Pi

	switch t {
	case Garu:
		e.Speed = uniform(r, 2, 3)
		e.Pattern = Dive
		e.Color = draw.Orange
		e.Points = 200
	case Zakato:
		e.Speed = uniform(r, 1, 2)
		e.Pattern = Formation
		e.Color = draw.Blue
		e.Points = 150
	default:
		e.Speed = uniform(r, 1.5, 2.5)
		e.Pattern = Straight
		if r.Intn(2) == 1 {
			e.Pattern = Wave
		}
		e.Color = draw.Red
		e.Points = 100
	}
	return e
}

// Update moves the enemy along its pattern and keeps it inside the field
// horizontally. Returns true once it has left through the bottom.
func (e *AirEnemy) Update(ctx UpdateContext) bool {
	switch e.Pattern {
	case Straight:
		e.Y += e.Speed
	case Wave:
		e.Y += e.Speed
		e.X += math.Sin(e.Y/15+e.Phase) * 1.5
	case Dive:
		e.Angle += diveStep
		e.Y += e.Speed + math.Sin(e.Angle)*0.5
		if e.Y > diveThreshold {
			e.X += math.Cos(e.Angle) * 2
		}
	case Formation:
		e.Y += e.Speed
		e.X += math.Sin(e.Y/20+e.Phase) * 0.8
	}

	e.X = physics.Clamp(e.X, 0, ctx.Screen.W()-AirEnemySize)
	return e.Y > ctx.Screen.H()+airExitMargin
}

// Draw renders the enemy's silhouette.
func (e *AirEnemy) Draw(ctx DrawContext) {
	s := ctx.Surface
	switch e.Type {
	case Toroid:
		s.Circle(e.X+8, e.Y+8, 6, e.Color)
		s.Circle(e.X+8, e.Y+8, 3, draw.Black)
	case Garu:
		s.Rect(e.X+2, e.Y, 12, 16, e.Color)
		s.Rect(e.X, e.Y+4, 16, 8, e.Color)
	default:
		s.Rect(e.X+4, e.Y, 8, 16, e.Color)
		s.Triangle(e.X, e.Y+8, e.X+4, e.Y+4, e.X+4, e.Y+12, e.Color)
		s.Triangle(e.X+12, e.Y+4, e.X+16, e.Y+8, e.X+12, e.Y+12, e.Color)
	}
}
