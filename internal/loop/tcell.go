package loop

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/tomz197/xevious/internal/draw"
	"github.com/tomz197/xevious/internal/input"
)

// tcellDisplay presents frames through a tcell screen.
type tcellDisplay struct {
	screen tcell.Screen
}

func (d tcellDisplay) Size() (int, int, error) {
	w, h := d.screen.Size()
	return w, h, nil
}

func (d tcellDisplay) Present(c *draw.Canvas, resized bool) error {
	if resized {
		d.screen.Clear()
	}
	c.Present(d.screen)
	return nil
}

// RunTcell plays a game on a tcell screen. The screen is initialized and
// finalized here.
func RunTcell(ctx context.Context, screen tcell.Screen, opts Options) error {
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack))
	screen.HideCursor()
	screen.Clear()

	runner := NewRunner(input.StartEventStream(screen), tcellDisplay{screen: screen}, opts)
	return runner.Run(ctx)
}
