// Package physics provides collision detection and distance utilities.
package physics

import "math"

// DistanceSquared calculates the squared distance between two points.
// Use this when comparing distances to avoid the sqrt cost.
func DistanceSquared(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}

// Near reports whether two points are closer than reachX horizontally and
// reachY vertically. Both comparisons are strict.
func Near(x1, y1, x2, y2, reachX, reachY float64) bool {
	return math.Abs(x1-x2) < reachX && math.Abs(y1-y2) < reachY
}

// InRadius reports whether a point lies strictly inside a circle.
// A circle with a non-positive radius contains nothing.
func InRadius(px, py, cx, cy, radius float64) bool {
	return radius > 0 && DistanceSquared(px, py, cx, cy) < radius*radius
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
