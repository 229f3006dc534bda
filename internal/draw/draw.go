// Package draw provides the drawing surface used by the game: a fixed
// 16-color palette, the Surface primitives, and a terminal Canvas that
// rasterizes them into colored half-block cells.
package draw

// Point represents a 2D coordinate.
type Point struct {
	X, Y float64
}

// Color is an index into the fixed palette.
type Color uint8

// Palette indices.
const (
	Black Color = iota
	Navy
	Purple
	Teal
	Brown
	DarkBlue
	LightBlue
	White
	Red
	Orange
	Yellow
	Lime
	Blue
	Gray
	Pink
	Peach
)

// paletteRGB holds the 24-bit value of each palette entry.
var paletteRGB = [16]uint32{
	0x000000, 0x2b335f, 0x7e2072, 0x19959c,
	0x8b4852, 0x395c98, 0xa9c1ff, 0xeeeeee,
	0xd4186c, 0xd38441, 0xe9c35b, 0x70c6a9,
	0x7696de, 0xa3a3a3, 0xff9798, 0xedc7b0,
}

// RGB returns the color's red, green and blue components.
// Indices outside the palette wrap around.
func (c Color) RGB() (r, g, b uint8) {
	v := paletteRGB[int(c)%len(paletteRGB)]
	return uint8(v >> 16), uint8(v >> 8), uint8(v)
}

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// Surface is the set of drawing primitives the game renders with.
// Coordinates are logical field units; implementations scale as needed.
type Surface interface {
	// Clear fills the whole surface with c and drops any pending text.
	Clear(c Color)
	// Rect fills the w x h rectangle whose top-left corner is (x, y).
	Rect(x, y, w, h float64, c Color)
	// RectOutline draws the border of the w x h rectangle at (x, y).
	RectOutline(x, y, w, h float64, c Color)
	// Circle fills a circle of radius r centered on (x, y).
	Circle(x, y, r float64, c Color)
	// CircleOutline draws the circumference of a circle.
	CircleOutline(x, y, r float64, c Color)
	// Pixel sets a single point.
	Pixel(x, y float64, c Color)
	// Line draws a segment between two points.
	Line(x1, y1, x2, y2 float64, c Color)
	// Triangle fills the triangle spanned by three points.
	Triangle(x1, y1, x2, y2, x3, y3 float64, c Color)
	// Text writes s with its top-left corner at (x, y).
	Text(x, y float64, s string, c Color)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
