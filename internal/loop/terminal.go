package loop

import (
	"bufio"
	"context"
	"io"

	"github.com/tomz197/xevious/internal/draw"
	"github.com/tomz197/xevious/internal/input"
)

// ansiDisplay writes frames as raw escape sequences.
type ansiDisplay struct {
	w        io.Writer
	termSize draw.TermSizeFunc
}

func (d ansiDisplay) Size() (int, int, error) {
	return d.termSize()
}

func (d ansiDisplay) Present(c *draw.Canvas, resized bool) error {
	if resized {
		draw.ClearScreen(d.w)
	}
	return c.Render(d.w)
}

// Run plays a game on a raw-mode terminal stream, as used by the local
// binary and by SSH sessions. termSize may be nil to query stdout.
func Run(ctx context.Context, r *bufio.Reader, w io.Writer, termSize draw.TermSizeFunc, opts Options) error {
	if termSize == nil {
		termSize = draw.DefaultTermSizeFunc
	}

	draw.HideCursor(w)
	defer draw.ShowCursor(w)
	draw.ClearScreen(w)
	defer draw.ClearScreen(w)

	runner := NewRunner(input.StartStream(r), ansiDisplay{w: w, termSize: termSize}, opts)
	return runner.Run(ctx)
}
