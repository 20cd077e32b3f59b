package game

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// LevelFor is the level reached after kills kills.
func LevelFor(kills, killsPerLevel int) int {
	if kills < 0 || killsPerLevel <= 0 {
		return 1
	}
	return kills/killsPerLevel + 1
}

// checkLevelUp raises the level when the kill count calls for it. Levels only
// ever go up.
func (g *Game) checkLevelUp(now time.Duration) {
	level := LevelFor(g.Kills, g.cfg.Progression.KillsPerLevel)
	if level <= g.Level {
		return
	}
	g.Level = level
	g.Spawner.EnemyInterval = g.cfg.Spawn.EnemyInterval(level)

	p := g.Player
	p.InvulnerableUntil = now + g.cfg.Progression.Invulnerability
	g.Burst(p.X, p.Y, g.cfg.Effects.LevelUpParticles, ColorLevelUp)
	g.notify(now, fmt.Sprintf("Level %d", level), ColorLevelUp)

	g.log.Info("level up",
		zap.Int("level", level), zap.Duration("spawn_interval", g.Spawner.EnemyInterval))
}
