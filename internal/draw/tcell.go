package draw

import "github.com/gdamore/tcell/v2"

// TcellColor converts a palette entry to a tcell RGB color.
func TcellColor(c Color) tcell.Color {
	r, g, b := c.RGB()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// Present copies the canvas onto a tcell screen and shows it.
func (c *Canvas) Present(screen tcell.Screen) {
	for row := 0; row < c.termHeight; row++ {
		for col := 0; col < c.termWidth; col++ {
			top, bottom := c.Cell(col, row)
			style := tcell.StyleDefault.Foreground(TcellColor(top)).Background(TcellColor(bottom))
			screen.SetContent(col+c.offsetCol, row+c.offsetRow, BlockUpperHalf, nil, style)
		}
	}

	for _, l := range c.Labels() {
		bg, _ := c.Cell(l.Col, l.Row)
		style := tcell.StyleDefault.Foreground(TcellColor(l.Color)).Background(TcellColor(bg))
		for i, r := range l.Value {
			screen.SetContent(l.Col+i+c.offsetCol, l.Row+c.offsetRow, r, nil, style)
		}
	}

	screen.Show()
}
