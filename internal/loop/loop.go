// Package loop drives a game at a fixed frame rate: poll input, step the
// simulation, draw onto a canvas and present it.
package loop

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/xevious/internal/draw"
	"github.com/tomz197/xevious/internal/game"
	"github.com/tomz197/xevious/internal/input"
)

const targetFrameTime = time.Second / game.FPS

// Largest render area in terminal cells. Bigger terminals get a centered
// field with a border of empty cells.
const (
	maxRenderWidth  = 256
	maxRenderHeight = 96
)

// ErrIdle is returned by Run when no button was held for the idle timeout.
var ErrIdle = errors.New("session idle")

// Display is where finished frames go.
type Display interface {
	// Size returns the terminal size in cells.
	Size() (width, height int, err error)
	// Present shows the canvas. resized is true on the first frame and
	// whenever the render area changed.
	Present(c *draw.Canvas, resized bool) error
}

// Options configures a Runner.
type Options struct {
	Game        game.Options
	Logger      *log.Logger
	IdleTimeout time.Duration // 0 disables
}

// Runner owns one game and the canvas it is drawn on.
type Runner struct {
	game    *game.Game
	source  input.Source
	display Display
	canvas  *draw.Canvas
	logger  *log.Logger

	idleTimeout time.Duration
	lastActive  time.Time

	renderW, renderH int
	offCol, offRow   int
}

// NewRunner creates a runner with a fresh game.
func NewRunner(source input.Source, display Display, opts Options) *Runner {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	gopts := opts.Game
	if gopts.Logger == nil {
		gopts.Logger = logger
	}
	g := game.New(gopts)
	screen := g.Screen()

	return &Runner{
		game:        g,
		source:      source,
		display:     display,
		canvas:      draw.NewScaledCanvas(1, 1, screen.W(), screen.H()),
		logger:      logger,
		idleTimeout: opts.IdleTimeout,
	}
}

// Game returns the game being run.
func (r *Runner) Game() *game.Game { return r.game }

// Run plays until the player quits, the context is cancelled, or the
// session goes idle. Quitting is not an error.
func (r *Runner) Run(ctx context.Context) error {
	r.lastActive = time.Now()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		frameStart := time.Now()

		// ===== INPUT PHASE =====
		in := r.source.Poll()
		if in.Quit {
			return nil
		}
		if in.Active() {
			r.lastActive = frameStart
		} else if r.idleTimeout > 0 && frameStart.Sub(r.lastActive) > r.idleTimeout {
			return ErrIdle
		}

		// ===== UPDATE PHASE =====
		r.game.Step(in)

		// ===== DRAW PHASE =====
		if err := r.drawFrame(); err != nil {
			return err
		}

		// ===== FRAME TIMING =====
		elapsed := time.Since(frameStart)
		if elapsed < targetFrameTime {
			time.Sleep(targetFrameTime - elapsed)
		}
	}
}

// drawFrame fits the canvas to the terminal, draws the game and presents it.
func (r *Runner) drawFrame() error {
	resized, err := r.updateScreen()
	if err != nil {
		return err
	}
	r.game.Draw(r.canvas)
	return r.display.Present(r.canvas, resized)
}

// updateScreen checks for terminal resize and updates canvas scaling.
func (r *Runner) updateScreen() (bool, error) {
	termWidth, termHeight, err := r.display.Size()
	if err != nil {
		return false, err
	}

	screen := r.game.Screen()
	fw, fh, col, row := draw.FitTerminal(termWidth, termHeight, maxRenderWidth, maxRenderHeight)
	w, h := fitAspect(fw, fh, screen.Width, screen.Height)
	col += (fw - w) / 2
	row += (fh - h) / 2

	changed := w != r.renderW || h != r.renderH || col != r.offCol || row != r.offRow
	if changed {
		r.renderW, r.renderH, r.offCol, r.offRow = w, h, col, row
		r.canvas.Resize(w, h)
		r.canvas.SetOffset(col, row)
		r.logger.Debug("render area", "cols", w, "rows", h, "col", col, "row", row)
	}
	return changed, nil
}

// fitAspect shrinks a cols x rows area so its half-block pixels keep the
// field's proportions. Each row holds two pixels.
func fitAspect(cols, rows, fieldW, fieldH int) (int, int) {
	if cols < 1 || rows < 1 || fieldW < 1 || fieldH < 1 {
		return max(cols, 1), max(rows, 1)
	}
	if want := rows * 2 * fieldW / fieldH; want < cols {
		return max(want, 1), rows
	}
	return cols, max(cols*fieldH/(2*fieldW), 1)
}
