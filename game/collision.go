package game

import (
	"time"

	"go.uber.org/zap"

	"github.com/simukka/tank-assault/common"
)

// collide resolves hits in a fixed order: player bullets against enemies,
// enemy bullets against the player, then the player against power-ups.
// Each pass compacts its pools before the next one runs.
func (g *Game) collide(now time.Duration) {
	g.collidePlayerBullets(now)
	g.collideEnemyBullets(now)
	g.collidePowerUps(now)
}

// collidePlayerBullets lets each bullet hit at most one enemy.
func (g *Game) collidePlayerBullets(now time.Duration) {
	g.Bullets.ForEach(func(b *Bullet) {
		if b.spent {
			return
		}
		for i := 0; i < g.Enemies.Len(); i++ {
			e := g.Enemies.At(i)
			if e.destroyed || !e.Contains(b.X, b.Y) {
				continue
			}
			b.spent = true
			e.Health -= b.Impact()
			if e.Health <= 0 {
				e.destroyed = true
				g.destroyEnemy(e, now)
			}
			break
		}
	})

	g.Enemies.Retain(func(e *Enemy) bool { return !e.destroyed })
	cullBullets(g.Bullets, g.cfg.Arena)
}

// destroyEnemy scores a kill. It runs exactly once per enemy.
func (g *Game) destroyEnemy(e *Enemy, now time.Duration) {
	fx := g.cfg.Effects
	g.Explode(e.X, e.Y, fx.ExplosionRadius, ColorEnemy)
	g.Burst(e.X, e.Y, fx.BurstParticles, ColorEnemy)

	g.Score += g.cfg.Progression.ScorePerKill * g.Level
	g.Kills++
	g.log.Debug("enemy destroyed", zap.Int("kills", g.Kills), zap.Int("score", g.Score))

	g.checkLevelUp(now)
}

// collideEnemyBullets damages the player. Nothing is checked while the
// player is invulnerable or after the game has ended.
func (g *Game) collideEnemyBullets(now time.Duration) {
	p := g.Player
	if g.over || p.Invulnerable(now) {
		return
	}

	g.EnemyBullets.ForEach(func(b *Bullet) {
		if g.over || b.spent || !common.PointInRect(b.X, b.Y, p.X, p.Y, p.Size, p.Size) {
			return
		}
		b.spent = true
		p.Hurt(b.Impact())
		g.Explode(p.X, p.Y, g.cfg.Effects.HitRadius, ColorPlayerHit)
		if !p.IsAlive() {
			g.endGame()
		}
	})

	cullBullets(g.EnemyBullets, g.cfg.Arena)
}

// collidePowerUps collects every power-up the player overlaps, in pool order.
// Pickups still apply in the tick the game ends.
func (g *Game) collidePowerUps(now time.Duration) {
	p := g.Player
	g.PowerUps.ForEach(func(pu *PowerUp) {
		if pu.taken || common.Distance(p.X, p.Y, pu.X, pu.Y) >= (p.Size+pu.Size)/2 {
			return
		}
		pu.taken = true
		g.collect(pu, now)
	})

	g.PowerUps.Retain(func(pu *PowerUp) bool { return !pu.taken })
}

func (g *Game) collect(pu *PowerUp, now time.Duration) {
	p := g.Player
	p.ActivatePowerUp(pu.Kind, now, g.cfg.PowerUp)
	g.Burst(pu.X, pu.Y, g.cfg.Effects.PickupParticles, pu.Kind.Color())

	if pu.Kind.Timed() {
		g.notify(now, pu.Kind.Label()+" activated", pu.Kind.Color())
	} else {
		g.notify(now, pu.Kind.Label()+" collected", pu.Kind.Color())
	}
	g.log.Debug("power-up collected",
		zap.Stringer("kind", pu.Kind), zap.Float64("health", p.Health))
}

// endGame moves the world to its terminal state.
func (g *Game) endGame() {
	if g.over {
		return
	}
	g.over = true
	p := g.Player
	g.Explode(p.X, p.Y, g.cfg.Effects.ExplosionRadius*2, ColorPlayer)
	g.log.Info("game over",
		zap.Int("score", g.Score), zap.Int("level", g.Level), zap.Int("kills", g.Kills))
}
