package game

import (
	"fmt"

	"github.com/tomz197/xevious/internal/draw"
	"github.com/tomz197/xevious/internal/object"
)

const hudHeight = 16

// Draw renders the current frame: the title screen, or the play field with
// the HUD and any pause or game-over panel on top.
func (g *Game) Draw(s draw.Surface) {
	s.Clear(draw.Navy)

	if g.phase == PhaseTitle {
		g.drawTitle(s)
		return
	}

	g.drawPlay(s)
	switch g.phase {
	case PhasePause:
		g.drawPanel(s, "PAUSED", -20, "PRESS P TO RESUME", -48)
	case PhaseGameOver:
		g.drawPanel(s, "GAME OVER", -32, "PRESS SPACE TO RESTART", -60)
	}
}

func (g *Game) drawContext(s draw.Surface) object.DrawContext {
	return object.DrawContext{
		Surface: s,
		Screen:  g.screen,
		Rand:    g.decor,
	}
}

// drawPlay renders terrain, entities and the HUD in that order.
func (g *Game) drawPlay(s draw.Surface) {
	ctx := g.drawContext(s)

	g.Terrain.Draw(ctx)
	g.Player.Draw(ctx)
	for _, e := range g.AirEnemies {
		e.Draw(ctx)
	}
	for _, e := range g.GroundEnemies {
		e.Draw(ctx)
	}

	g.drawHUD(s)
}

// drawHUD draws the status bar along the top edge.
func (g *Game) drawHUD(s draw.Surface) {
	hud := g.HUD()
	s.Rect(0, 0, g.screen.W(), hudHeight, draw.Black)
	s.Text(4, 4, fmt.Sprintf("SCORE: %06d", hud.Score), draw.White)
	s.Text(120, 4, fmt.Sprintf("WAVE: %d", hud.Wave), draw.White)
	s.Text(180, 4, fmt.Sprintf("LIVES: %d", hud.Lives), draw.White)
	for i := 0; i < hud.Lives; i++ {
		s.Rect(220+float64(i)*12, 6, 8, 4, draw.Lime)
	}
}

// drawTitle draws the title screen. The credit line blinks every half second.
func (g *Game) drawTitle(s draw.Surface) {
	cx := g.screen.W() / 2
	s.Text(cx-32, 40, "X E V I O U S", draw.White)
	s.Text(cx-48, 60, "FARDRAUT SAGA", draw.Yellow)

	s.Text(cx-60, 100, "PRESS SPACE TO START", draw.Red)
	s.Text(cx-80, 120, "ARROW KEYS: MOVE", draw.LightBlue)
	s.Text(cx-80, 130, "Z: SHOOT    X: BOMB", draw.LightBlue)
	s.Text(cx-80, 140, "P: PAUSE", draw.LightBlue)

	if g.frame%FPS < FPS/2 {
		s.Text(cx-60, 160, "1984 NAMCO LTD.", draw.Orange)
	}
}

// drawPanel draws a bordered box with a title and a prompt, each offset
// horizontally from the field center.
func (g *Game) drawPanel(s draw.Surface, title string, titleDX float64, prompt string, promptDX float64) {
	cx := g.screen.W() / 2
	s.Rect(60, 70, 136, 50, draw.Black)
	s.RectOutline(60, 70, 136, 50, draw.White)
	s.Text(cx+titleDX, 85, title, draw.Red)
	s.Text(cx+promptDX, 100, prompt, draw.White)
}
