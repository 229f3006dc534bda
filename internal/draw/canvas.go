package draw

import (
	"io"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Canvas is a drawing buffer with 2x vertical resolution using half-block characters.
// Each terminal cell shows two pixels: the upper one as foreground, the lower one as
// background. Drawing happens in logical coordinates that are scaled to pixels.
type Canvas struct {
	termWidth      int     // Actual terminal columns
	termHeight     int     // Actual terminal rows
	subPixelHeight int     // termHeight * 2
	pixels         []Color // Flat slice: [y * termWidth + x]

	// Scaling from logical to pixel coordinates
	logicalWidth  float64
	logicalHeight float64
	scaleX        float64 // termWidth / logicalWidth
	scaleY        float64 // (termHeight*2) / logicalHeight

	// Offset for centering the render area when the terminal is larger than
	// the maximum render size. These are 0-based terminal offsets.
	offsetCol int
	offsetRow int

	texts []text

	// Reusable buffers to reduce allocations
	renderBuf       strings.Builder
	numBuf          [20]byte
	scaledBuf       []Point
	intersectionBuf []float64
}

// text is a pending string overlay in logical coordinates.
type text struct {
	x, y  float64
	value string
	color Color
}

// Label is a text overlay resolved to 0-based canvas cell coordinates.
type Label struct {
	Col, Row int
	Value    string
	Color    Color
}

// Compile-time check that Canvas implements Surface.
var _ Surface = (*Canvas)(nil)

// NewScaledCanvas creates a canvas that scales from logical coordinates to terminal pixels.
// logicalWidth/Height define the coordinate space used by game objects.
// termWidth/Height are the actual terminal dimensions.
func NewScaledCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) *Canvas {
	c := &Canvas{
		logicalWidth:  logicalWidth,
		logicalHeight: logicalHeight,
	}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize updates the canvas for new terminal dimensions while keeping logical size.
func (c *Canvas) Resize(termWidth, termHeight int) {
	if termWidth < 1 {
		termWidth = 1
	}
	if termHeight < 1 {
		termHeight = 1
	}
	subPixelHeight := termHeight * 2

	if termWidth != c.termWidth || termHeight != c.termHeight {
		c.pixels = make([]Color, subPixelHeight*termWidth)
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subPixelHeight = subPixelHeight
	}

	c.scaleX = float64(termWidth) / c.logicalWidth
	c.scaleY = float64(subPixelHeight) / c.logicalHeight
}

// SetOffset sets the column and row offset for centering the canvas.
func (c *Canvas) SetOffset(col, row int) {
	c.offsetCol = col
	c.offsetRow = row
}

// Clear fills every pixel with col and drops pending text.
func (c *Canvas) Clear(col Color) {
	for i := range c.pixels {
		c.pixels[i] = col
	}
	c.texts = c.texts[:0]
}

// setPixel sets a pixel at actual pixel coordinates (no scaling).
func (c *Canvas) setPixel(x, y int, col Color) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		c.pixels[y*c.termWidth+x] = col
	}
}

// toPixel converts logical coordinates to pixel coordinates.
func (c *Canvas) toPixel(x, y float64) (int, int) {
	return int(math.Floor(x * c.scaleX)), int(math.Floor(y * c.scaleY))
}

// Pixel sets a single logical point.
func (c *Canvas) Pixel(x, y float64, col Color) {
	px, py := c.toPixel(x, y)
	c.setPixel(px, py, col)
}

// Rect fills a logical rectangle. Non-empty rectangles cover at least one pixel.
func (c *Canvas) Rect(x, y, w, h float64, col Color) {
	if w <= 0 || h <= 0 {
		return
	}
	x0, y0, x1, y1 := c.pixelBounds(x, y, w, h)
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			c.setPixel(px, py, col)
		}
	}
}

// RectOutline draws the border of a logical rectangle.
func (c *Canvas) RectOutline(x, y, w, h float64, col Color) {
	if w <= 0 || h <= 0 {
		return
	}
	x0, y0, x1, y1 := c.pixelBounds(x, y, w, h)
	for px := x0; px < x1; px++ {
		c.setPixel(px, y0, col)
		c.setPixel(px, y1-1, col)
	}
	for py := y0; py < y1; py++ {
		c.setPixel(x0, py, col)
		c.setPixel(x1-1, py, col)
	}
}

// pixelBounds returns the half-open pixel range covered by a logical rectangle.
func (c *Canvas) pixelBounds(x, y, w, h float64) (x0, y0, x1, y1 int) {
	x0 = int(math.Round(x * c.scaleX))
	y0 = int(math.Round(y * c.scaleY))
	x1 = int(math.Round((x + w) * c.scaleX))
	y1 = int(math.Round((y + h) * c.scaleY))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return x0, y0, x1, y1
}

// Circle fills a logical circle. The scaled shape is an ellipse in pixel space
// whenever the axes scale differently.
func (c *Canvas) Circle(x, y, r float64, col Color) {
	if r <= 0 {
		c.Pixel(x, y, col)
		return
	}
	y0 := int(math.Floor((y - r) * c.scaleY))
	y1 := int(math.Ceil((y + r) * c.scaleY))
	x0 := int(math.Floor((x - r) * c.scaleX))
	x1 := int(math.Ceil((x + r) * c.scaleX))
	r2 := r * r
	for py := y0; py <= y1; py++ {
		ly := (float64(py)+0.5)/c.scaleY - y
		for px := x0; px <= x1; px++ {
			lx := (float64(px)+0.5)/c.scaleX - x
			if lx*lx+ly*ly <= r2 {
				c.setPixel(px, py, col)
			}
		}
	}
	// Small circles may fall between pixel centers
	c.Pixel(x, y, col)
}

// CircleOutline draws a circle's circumference by sampling it densely enough
// to leave no gaps at the current scale.
func (c *Canvas) CircleOutline(x, y, r float64, col Color) {
	if r <= 0 {
		c.Pixel(x, y, col)
		return
	}
	scale := math.Max(c.scaleX, c.scaleY)
	steps := int(2 * math.Pi * r * scale * 2)
	if steps < 16 {
		steps = 16
	}
	for i := 0; i < steps; i++ {
		angle := 2 * math.Pi * float64(i) / float64(steps)
		c.Pixel(x+math.Cos(angle)*r, y+math.Sin(angle)*r, col)
	}
}

// Line draws a line on the canvas using Bresenham's algorithm.
// Coordinates are in logical space and get scaled to pixels.
func (c *Canvas) Line(lx1, ly1, lx2, ly2 float64, col Color) {
	x1, y1 := c.toPixel(lx1, ly1)
	x2, y2 := c.toPixel(lx2, ly2)

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy

	for {
		c.setPixel(x1, y1, col)

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// Triangle fills a triangle and traces its edges so thin shapes stay visible.
func (c *Canvas) Triangle(x1, y1, x2, y2, x3, y3 float64, col Color) {
	points := []Point{{X: x1, Y: y1}, {X: x2, Y: y2}, {X: x3, Y: y3}}
	c.fillPolygon(points, col)
	for i := range points {
		next := points[(i+1)%len(points)]
		c.Line(points[i].X, points[i].Y, next.X, next.Y, col)
	}
}

// fillPolygon fills a polygon using scanline algorithm.
// Works in pixel space for proper scaling.
func (c *Canvas) fillPolygon(points []Point, col Color) {
	if cap(c.scaledBuf) < len(points) {
		c.scaledBuf = make([]Point, len(points))
	}
	scaled := c.scaledBuf[:len(points)]

	for i, p := range points {
		scaled[i] = Point{
			X: p.X * c.scaleX,
			Y: p.Y * c.scaleY,
		}
	}

	minY, maxY := scaled[0].Y, scaled[0].Y
	for _, p := range scaled {
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}

	yStart := int(math.Floor(minY))
	yEnd := int(math.Ceil(maxY))

	for y := yStart; y <= yEnd; y++ {
		scanY := float64(y) + 0.5

		intersections := c.intersectionBuf[:0]

		n := len(scaled)
		for i := 0; i < n; i++ {
			p1 := scaled[i]
			p2 := scaled[(i+1)%n]

			if (p1.Y <= scanY && p2.Y > scanY) || (p2.Y <= scanY && p1.Y > scanY) {
				t := (scanY - p1.Y) / (p2.Y - p1.Y)
				x := p1.X + t*(p2.X-p1.X)
				intersections = append(intersections, x)
			}
		}

		c.intersectionBuf = intersections

		sort.Float64s(intersections)

		for i := 0; i+1 < len(intersections); i += 2 {
			xStart := int(math.Ceil(intersections[i]))
			xEnd := int(math.Floor(intersections[i+1]))
			for x := xStart; x <= xEnd; x++ {
				c.setPixel(x, y, col)
			}
		}
	}
}

// Text queues a string overlay. It is placed on the cell containing (x, y)
// and written after the pixel pass.
func (c *Canvas) Text(x, y float64, s string, col Color) {
	if s == "" {
		return
	}
	c.texts = append(c.texts, text{x: x, y: y, value: s, color: col})
}

// Cell returns the upper and lower pixel colors of a 0-based terminal cell.
func (c *Canvas) Cell(col, row int) (top, bottom Color) {
	if col < 0 || col >= c.termWidth || row < 0 || row >= c.termHeight {
		return Black, Black
	}
	top = c.pixels[(row*2)*c.termWidth+col]
	bottom = c.pixels[(row*2+1)*c.termWidth+col]
	return top, bottom
}

// Labels resolves the pending text overlays to cell coordinates, clipping
// anything that falls outside the canvas.
func (c *Canvas) Labels() []Label {
	labels := make([]Label, 0, len(c.texts))
	for _, t := range c.texts {
		col := int(math.Floor(t.x * c.scaleX))
		row := int(math.Floor(t.y*c.scaleY)) / 2
		if row < 0 || row >= c.termHeight || col >= c.termWidth {
			continue
		}
		value := t.value
		if col < 0 {
			if -col >= len(value) {
				continue
			}
			value = value[-col:]
			col = 0
		}
		if col+len(value) > c.termWidth {
			value = value[:c.termWidth-col]
		}
		labels = append(labels, Label{Col: col, Row: row, Value: value, Color: t.color})
	}
	return labels
}

// maxChunkSize is the maximum bytes to write at once for optimal network flow.
// 1400 bytes stays under a typical 1500-byte MTU after SSH framing.
const maxChunkSize = 1400

// Render outputs the canvas to the writer using half-block characters with
// 24-bit foreground/background colors. Color escapes are only emitted when
// they change between neighboring cells.
func (c *Canvas) Render(w io.Writer) error {
	c.renderBuf.Reset()
	c.renderBuf.Grow(c.termWidth * c.termHeight * 8)

	for row := 0; row < c.termHeight; row++ {
		c.moveCursor(row+1+c.offsetRow, 1+c.offsetCol)
		first := true
		var lastTop, lastBottom Color
		for col := 0; col < c.termWidth; col++ {
			top, bottom := c.Cell(col, row)
			if first || top != lastTop {
				c.writeColor(38, top)
			}
			if first || bottom != lastBottom {
				c.writeColor(48, bottom)
			}
			first = false
			lastTop, lastBottom = top, bottom
			c.renderBuf.WriteRune(BlockUpperHalf)
		}
	}

	for _, l := range c.Labels() {
		// Text sits on the cell's upper pixel color
		bg, _ := c.Cell(l.Col, l.Row)
		c.moveCursor(l.Row+1+c.offsetRow, l.Col+1+c.offsetCol)
		c.writeColor(38, l.Color)
		c.writeColor(48, bg)
		c.renderBuf.WriteString(l.Value)
	}
	c.renderBuf.WriteString("\033[0m")

	// Write output in chunks for optimal network flow
	data := c.renderBuf.String()
	for len(data) > 0 {
		chunk := data
		if len(chunk) > maxChunkSize {
			chunk = data[:maxChunkSize]
		}
		if _, err := io.WriteString(w, chunk); err != nil {
			return err
		}
		data = data[len(chunk):]
	}
	return nil
}

// moveCursor appends an ANSI cursor position sequence (1-based).
func (c *Canvas) moveCursor(row, col int) {
	c.renderBuf.WriteString("\033[")
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(row), 10))
	c.renderBuf.WriteByte(';')
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(col), 10))
	c.renderBuf.WriteByte('H')
}

// writeColor appends a 24-bit SGR color sequence. layer is 38 (fg) or 48 (bg).
func (c *Canvas) writeColor(layer int, col Color) {
	r, g, b := col.RGB()
	c.renderBuf.WriteString("\033[")
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(layer), 10))
	c.renderBuf.WriteString(";2;")
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(r), 10))
	c.renderBuf.WriteByte(';')
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(g), 10))
	c.renderBuf.WriteByte(';')
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(b), 10))
	c.renderBuf.WriteByte('m')
}
