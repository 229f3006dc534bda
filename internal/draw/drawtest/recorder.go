// Package drawtest provides a draw.Surface that records calls for tests.
package drawtest

import (
	"strings"

	"github.com/tomz197/xevious/internal/draw"
)

// Call is one recorded drawing primitive.
type Call struct {
	Op    string
	Args  []float64
	Text  string
	Color draw.Color
}

// Recorder is a draw.Surface that keeps every call in order.
type Recorder struct {
	Calls []Call
}

var _ draw.Surface = (*Recorder)(nil)

func (r *Recorder) add(op string, c draw.Color, args ...float64) {
	r.Calls = append(r.Calls, Call{Op: op, Args: args, Color: c})
}

func (r *Recorder) Clear(c draw.Color) { r.add("clear", c) }

func (r *Recorder) Rect(x, y, w, h float64, c draw.Color) { r.add("rect", c, x, y, w, h) }

func (r *Recorder) RectOutline(x, y, w, h float64, c draw.Color) {
	r.add("rectb", c, x, y, w, h)
}

func (r *Recorder) Circle(x, y, rad float64, c draw.Color) { r.add("circ", c, x, y, rad) }

func (r *Recorder) CircleOutline(x, y, rad float64, c draw.Color) {
	r.add("circb", c, x, y, rad)
}

func (r *Recorder) Pixel(x, y float64, c draw.Color) { r.add("pset", c, x, y) }

func (r *Recorder) Line(x1, y1, x2, y2 float64, c draw.Color) {
	r.add("line", c, x1, y1, x2, y2)
}

func (r *Recorder) Triangle(x1, y1, x2, y2, x3, y3 float64, c draw.Color) {
	r.add("tri", c, x1, y1, x2, y2, x3, y3)
}

func (r *Recorder) Text(x, y float64, s string, c draw.Color) {
	r.Calls = append(r.Calls, Call{Op: "text", Args: []float64{x, y}, Text: s, Color: c})
}

// Count returns how many calls used op.
func (r *Recorder) Count(op string) int {
	n := 0
	for _, c := range r.Calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

// HasText reports whether any text call contains substr.
func (r *Recorder) HasText(substr string) bool {
	for _, c := range r.Calls {
		if c.Op == "text" && strings.Contains(c.Text, substr) {
			return true
		}
	}
	return false
}

// Reset drops all recorded calls.
func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
}
