package game

import (
	"slices"

	"github.com/tomz197/xevious/internal/audio"
	"github.com/tomz197/xevious/internal/input"
	"github.com/tomz197/xevious/internal/object"
	"github.com/tomz197/xevious/internal/physics"
)

// play runs one frame of active gameplay. Pausing ends the frame at once.
func (g *Game) play(in input.Input) {
	if in.Pressed(input.Pause) {
		g.setPhase(PhasePause)
		return
	}

	ctx := g.updateContext(in)
	g.Terrain.Update(ctx)
	g.Player.Update(ctx)
	g.spawn()

	g.updateAirEnemies(ctx)
	g.updateGroundEnemies(ctx)
	g.updateBombs(ctx)
}

// updateAirEnemies moves each air enemy and resolves its contact with the
// player, then with the player's shots. Iterates a snapshot so removals
// take effect immediately without disturbing the walk.
func (g *Game) updateAirEnemies(ctx object.UpdateContext) {
	p := g.Player
	for _, e := range slices.Clone(g.AirEnemies) {
		if e.Update(ctx) {
			object.Remove(&g.AirEnemies, e)
			continue
		}

		if physics.Near(e.X, e.Y, p.X, p.Y, playerReach, playerReach) {
			if p.TakeDamage(g.sound) {
				object.Remove(&g.AirEnemies, e)
				g.checkGameOver()
			}
			continue
		}

		for _, s := range p.Shots {
			if physics.Near(e.X+hitboxHalf, e.Y+hitboxHalf, s.X, s.Y, shotReach, shotReach) {
				p.Score += e.Points
				object.Remove(&g.AirEnemies, e)
				p.RemoveShot(s)
				g.sound.Play(audio.Kill)
				break
			}
		}
	}
}

// updateGroundEnemies moves each ground enemy and resolves its contact
// with the player, then with the player's bombs. Ground enemies survive
// touching the player.
func (g *Game) updateGroundEnemies(ctx object.UpdateContext) {
	p := g.Player
	for _, e := range slices.Clone(g.GroundEnemies) {
		e.Update(ctx)

		half := e.Size / 2
		if physics.Near(e.X+half, e.Y+hitboxHalf, p.X+hitboxHalf, p.Y+hitboxHalf, half+hitboxHalf, playerReach) {
			if p.TakeDamage(g.sound) {
				g.checkGameOver()
			}
			continue
		}

		cx, cy := e.Center()
		for _, b := range p.Bombs {
			if physics.InRadius(b.X, b.Y, cx, cy, b.Radius+half) {
				e.Health--
				if e.Health <= 0 {
					p.Score += e.Points
					object.Remove(&g.GroundEnemies, e)
				}
				b.Explode(g.sound)
				break
			}
		}
	}
}

// updateBombs advances every bomb once and drops finished ones.
func (g *Game) updateBombs(ctx object.UpdateContext) {
	p := g.Player
	kept := p.Bombs[:0]
	for _, b := range p.Bombs {
		if !b.Update(ctx) {
			kept = append(kept, b)
		}
	}
	clear(p.Bombs[len(kept):])
	p.Bombs = kept
}

// checkGameOver ends the run once the player is out of lives.
func (g *Game) checkGameOver() {
	if g.Player.Lives <= 0 {
		g.setPhase(PhaseGameOver)
		g.logger.Info("game over", "score", g.Player.Score, "wave", g.wave)
	}
}
