package object

import (
	"slices"

	"github.com/tomz197/xevious/internal/draw"
)

// Feature is the decoration of a terrain segment.
type Feature int

const (
	Plain Feature = iota
	Forest
	City
	River
	featureCount
)

func (f Feature) String() string {
	switch f {
	case Plain:
		return "plain"
	case Forest:
		return "forest"
	case City:
		return "city"
	case River:
		return "river"
	}
	return "unknown"
}

// Terrain tunables.
const (
	SegmentSpacing  = 4
	MaxSegments     = 50
	terrainOverscan = 40 // Initial segments extend this far below the field
	drawTopY        = -8.0
)

// Segment is one horizontal strip of terrain.
type Segment struct {
	Y       float64
	Feature Feature
}

// Terrain is the scrolling background. Segments are ordered top to bottom.
type Terrain struct {
	Segments []Segment
	offset   int
}

// NewTerrain fills the field and the overscan below it with random segments.
func NewTerrain(r Random, s Screen) *Terrain {
	t := &Terrain{}
	for y := 0; y < s.Height+terrainOverscan; y += SegmentSpacing {
		t.Segments = append(t.Segments, Segment{Y: float64(y), Feature: randomFeature(r)})
	}
	return t
}

func randomFeature(r Random) Feature {
	return Feature(r.Intn(int(featureCount)))
}

// Update scrolls the terrain down by one unit. Every SegmentSpacing frames
// a fresh segment enters at the top and the list is trimmed to MaxSegments.
func (t *Terrain) Update(ctx UpdateContext) bool {
	t.offset++
	if t.offset >= SegmentSpacing {
		t.offset = 0
		t.Segments = slices.Insert(t.Segments, 0, Segment{Y: -SegmentSpacing, Feature: randomFeature(ctx.Rand)})
		for len(t.Segments) > MaxSegments {
			t.Segments = t.Segments[:len(t.Segments)-1]
		}
	}

	for i := range t.Segments {
		t.Segments[i].Y++
	}
	return false
}

// Draw renders the visible segments. Forest and city detail is scattered
// with ctx.Rand every frame.
func (t *Terrain) Draw(ctx DrawContext) {
	s := ctx.Surface
	w := ctx.Screen.W()
	for _, seg := range t.Segments {
		y := seg.Y
		if y < drawTopY || y > ctx.Screen.H() {
			continue
		}
		switch seg.Feature {
		case Forest:
			for x := 0; x < ctx.Screen.Width; x += 16 {
				if ctx.Rand.Float64() < 0.3 {
					s.Circle(float64(x+randInt(ctx.Rand, 0, 12)), y, 2, draw.Teal)
				}
			}
		case City:
			for x := 0; x < ctx.Screen.Width; x += 20 {
				if ctx.Rand.Float64() < 0.4 {
					h := float64(randInt(ctx.Rand, 2, 6))
					s.Rect(float64(x+randInt(ctx.Rand, 0, 8)), y-h, 8, h, draw.Gray)
				}
			}
		case River:
			s.Line(0, y, w, y+2, draw.Blue)
			s.Line(0, y+1, w, y+3, draw.DarkBlue)
		}
	}
}
