package game

import (
	"time"

	"go.uber.org/zap"
)

// Frame runs one tick at the clock's current time.
func (g *Game) Frame() bool {
	return g.Tick(g.clock.Now())
}

// Tick advances the simulation by one frame at the monotonic timestamp now
// and publishes the result to the sinks. It returns false once the game is
// over so the host can stop scheduling frames.
func (g *Game) Tick(now time.Duration) bool {
	if !g.started || g.over || g.paused {
		return !g.over
	}
	g.now = now
	g.frame++
	in := g.input.sample()

	g.spawn(now)

	g.updatePlayer(&in, now)
	g.updateBullets()
	g.updateEnemies(&in.InputState, now)
	g.updateParticles()
	g.updatePowerUps()
	g.updateExplosions()

	g.collide(now)

	g.publish(now)
	return !g.over
}

// updatePlayer moves the player, fires and runs the power-up timers.
func (g *Game) updatePlayer(in *frameInput, now time.Duration) {
	p := g.Player
	p.Move(&in.InputState, g.cfg.Arena)

	if in.Fire {
		p.Fire(now, g.Bullets)
	}

	if kind := p.ExpirePowerUp(now); kind != NoPowerUp {
		g.log.Debug("power-up expired", zap.Stringer("kind", kind))
		g.notify(now, kind.Label()+" expired", kind.Color())
	}

	if in.Activate && p.ReapplyPowerUp(g.cfg.PowerUp) {
		g.notify(now, p.PowerUp.Label()+" activated", p.PowerUp.Color())
	}
}

// updateBullets moves both bullet pools and drops bullets that left the arena.
func (g *Game) updateBullets() {
	moveBullets(g.Bullets)
	moveBullets(g.EnemyBullets)
	cullBullets(g.Bullets, g.cfg.Arena)
	cullBullets(g.EnemyBullets, g.cfg.Arena)
}

// publish hands the frame to the sinks.
func (g *Game) publish(now time.Duration) {
	g.expireNotices(now)

	if g.notifier != nil {
		for _, n := range g.outbox {
			g.notifier.Notify(n)
		}
	}
	g.outbox = g.outbox[:0]

	if g.renderer != nil {
		g.renderer.Render(g.Snapshot())
	}
	if g.hud != nil {
		g.hud.UpdateHUD(g.HUD())
	}
	if g.over && !g.reported {
		g.reported = true
		if g.gameOver != nil {
			g.gameOver.GameOver(g.Result())
		}
	}
}
