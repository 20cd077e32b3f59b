package game

import (
	"time"

	"go.uber.org/zap"

	"github.com/simukka/tank-assault/common"
)

// Edge identifies a side of the arena.
type Edge int

const (
	EdgeTop Edge = iota
	EdgeRight
	EdgeBottom
	EdgeLeft
)

// Spawner tracks when enemies and power-ups were last created.
type Spawner struct {
	LastEnemy     time.Duration
	LastPowerUp   time.Duration
	EnemyInterval time.Duration

	primed bool
}

// prime starts both timers at the first simulated tick of a session.
func (s *Spawner) prime(now time.Duration) {
	if s.primed {
		return
	}
	s.LastEnemy = now
	s.LastPowerUp = now
	s.primed = true
}

// spawn creates an enemy and/or power-up when their intervals have elapsed.
func (g *Game) spawn(now time.Duration) {
	s := &g.Spawner
	s.prime(now)

	if now-s.LastEnemy > s.EnemyInterval {
		g.SpawnEnemy(now)
		s.LastEnemy = now
	}
	if now-s.LastPowerUp > g.cfg.Spawn.PowerUpInterval {
		g.SpawnPowerUp()
		s.LastPowerUp = now
	}
}

// SpawnEnemy places a new enemy just outside a random arena edge with stats
// scaled to the current level.
func (g *Game) SpawnEnemy(now time.Duration) *Enemy {
	cfg := g.cfg.Enemy
	arena := g.cfg.Arena
	margin := cfg.Size / 2

	var x, y float64
	switch Edge(common.Intn(g.rng, 4)) {
	case EdgeTop:
		x, y = g.rng.Float64()*arena.Width, -margin
	case EdgeRight:
		x, y = arena.Width+margin, g.rng.Float64()*arena.Height
	case EdgeBottom:
		x, y = g.rng.Float64()*arena.Width, arena.Height+margin
	case EdgeLeft:
		x, y = -margin, g.rng.Float64()*arena.Height
	}

	health := cfg.EnemyHealth(g.Level)
	e := g.Enemies.Acquire()
	e.X = x
	e.Y = y
	e.Size = cfg.Size
	e.Health = health
	e.MaxHealth = health
	e.Speed = cfg.EnemySpeed(g.Level, g.rng.Float64())
	e.Cooldown = cfg.ShootCooldown(g.Level)
	e.LastShot = now

	g.log.Debug("enemy spawned",
		zap.Float64("x", x), zap.Float64("y", y),
		zap.Float64("health", health), zap.Duration("cooldown", e.Cooldown))
	return e
}

// SpawnPowerUp places a random power-up kind at a random in-bounds position.
func (g *Game) SpawnPowerUp() *PowerUp {
	arena := g.cfg.Arena
	m := g.cfg.Spawn.PowerUpMargin

	pu := g.PowerUps.Acquire()
	pu.Kind = PowerUpKinds[common.Intn(g.rng, len(PowerUpKinds))]
	pu.X = m + g.rng.Float64()*(arena.Width-2*m)
	pu.Y = m + g.rng.Float64()*(arena.Height-2*m)
	pu.Size = g.cfg.PowerUp.Size

	g.log.Debug("power-up spawned", zap.Stringer("kind", pu.Kind))
	return pu
}

// updatePowerUps spins the collectibles.
func (g *Game) updatePowerUps() {
	g.PowerUps.ForEach(func(pu *PowerUp) {
		pu.Rotation += 0.05
	})
}
