// Package game runs the simulation: the phase machine, enemy spawning,
// collision resolution and the per-frame draw pass.
package game

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/xevious/internal/audio"
	"github.com/tomz197/xevious/internal/input"
	"github.com/tomz197/xevious/internal/object"
)

// Phase is the current game phase.
type Phase int

const (
	PhaseTitle    Phase = iota // Title screen
	PhasePlay                  // Active gameplay
	PhasePause                 // Simulation frozen until resumed
	PhaseGameOver              // Out of lives, waiting for restart
)

func (p Phase) String() string {
	switch p {
	case PhaseTitle:
		return "title"
	case PhasePlay:
		return "play"
	case PhasePause:
		return "pause"
	case PhaseGameOver:
		return "gameover"
	}
	return "unknown"
}

// Options configures a Game. Zero values pick sensible defaults.
type Options struct {
	Screen object.Screen // Defaults to FieldWidth x FieldHeight
	Seed   int64         // Seeds both random sources; 0 uses the clock
	Rand   object.Random // Simulation source, overrides Seed
	Decor  object.Random // Terrain decoration source, overrides Seed
	Sound  audio.Player  // Defaults to silence
	Logger *log.Logger   // Defaults to discarding
}

// Game owns the player, the terrain and every enemy.
type Game struct {
	Player        *object.Player
	Terrain       *object.Terrain
	AirEnemies    []*object.AirEnemy
	GroundEnemies []*object.GroundEnemy

	phase   Phase
	wave    int
	spawned int // Air enemies spawned this wave
	frame   int

	screen object.Screen
	rand   object.Random
	decor  object.Random
	sound  audio.Player
	logger *log.Logger
}

// HUD is the status shown above the play field.
type HUD struct {
	Score int
	Wave  int
	Lives int
	Phase Phase
}

// New creates a game on the title screen.
func New(opts Options) *Game {
	g := &Game{
		screen: opts.Screen,
		rand:   opts.Rand,
		decor:  opts.Decor,
		sound:  opts.Sound,
		logger: opts.Logger,
	}
	if g.screen.Width == 0 || g.screen.Height == 0 {
		g.screen = object.Screen{Width: FieldWidth, Height: FieldHeight}
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if g.rand == nil {
		g.rand = rand.New(rand.NewSource(seed))
	}
	if g.decor == nil {
		g.decor = rand.New(rand.NewSource(seed ^ 0x5eed))
	}
	if g.sound == nil {
		g.sound = audio.Nop{}
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}

	g.Reset()
	return g
}

// Reset discards the current run and returns to the title screen.
// The frame counter keeps running.
func (g *Game) Reset() {
	g.Player = object.NewPlayer(g.screen)
	g.Terrain = object.NewTerrain(g.rand, g.screen)
	g.AirEnemies = nil
	g.GroundEnemies = nil
	g.wave = initialWave
	g.spawned = 0
	g.setPhase(PhaseTitle)
}

// Step advances the game by one frame.
func (g *Game) Step(in input.Input) {
	defer func() { g.frame++ }()

	switch g.phase {
	case PhaseTitle:
		if in.Pressed(input.Start) {
			g.setPhase(PhasePlay)
		}
	case PhasePause:
		if in.Pressed(input.Pause) {
			g.setPhase(PhasePlay)
		}
	case PhaseGameOver:
		if in.Pressed(input.Start) {
			g.Reset()
		}
	case PhasePlay:
		g.play(in)
	}
}

func (g *Game) setPhase(p Phase) {
	if g.phase != p {
		g.logger.Debug("phase change", "from", g.phase, "to", p, "frame", g.frame)
	}
	g.phase = p
}

// Phase returns the current phase.
func (g *Game) Phase() Phase { return g.phase }

// Wave returns the current wave, starting at 1.
func (g *Game) Wave() int { return g.wave }

// Frame returns the number of frames stepped so far.
func (g *Game) Frame() int { return g.frame }

// Screen returns the play field size.
func (g *Game) Screen() object.Screen { return g.screen }

// HUD returns the status line values.
func (g *Game) HUD() HUD {
	return HUD{
		Score: g.Player.Score,
		Wave:  g.wave,
		Lives: g.Player.Lives,
		Phase: g.phase,
	}
}

func (g *Game) updateContext(in input.Input) object.UpdateContext {
	return object.UpdateContext{
		Input:  in,
		Screen: g.screen,
		Rand:   g.rand,
		Sound:  g.sound,
	}
}
