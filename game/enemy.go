package game

import (
	"math"
	"time"

	"github.com/simukka/tank-assault/common"
	"github.com/simukka/tank-assault/config"
)

// Enemy is a hostile tank.
type Enemy struct {
	X, Y        float64
	Size        float64
	Health      float64
	MaxHealth   float64
	Speed       float64
	Angle       float64 // body facing, radians
	TurretAngle float64
	LastShot    time.Duration
	Cooldown    time.Duration

	destroyed bool
}

// GetPosition implements Positioned.
func (e *Enemy) GetPosition() (x, y float64) {
	return e.X, e.Y
}

// Contains reports whether the point lies inside the enemy's hitbox.
func (e *Enemy) Contains(x, y float64) bool {
	return common.PointInRect(x, y, e.X, e.Y, e.Size, e.Size)
}

// Steer moves the enemy one frame relative to the player at (px, py).
// Outside the pursuit range it drives straight at the player; inside it
// circles along a direction offset from the direct bearing. The turret always
// tracks the player. It returns the distance to the player before moving.
func (e *Enemy) Steer(px, py float64, cfg config.Enemy) float64 {
	dx := px - e.X
	dy := py - e.Y
	dist := math.Hypot(dx, dy)

	if dist > cfg.PursuitRange {
		nx, ny := common.Normalize(dx, dy)
		e.X += nx * e.Speed
		e.Y += ny * e.Speed
		e.Angle = math.Atan2(dy, dx)
	} else if dist > 0 {
		heading := math.Atan2(dy, dx) + cfg.OrbitOffset
		e.X += math.Cos(heading) * e.Speed
		e.Y += math.Sin(heading) * e.Speed
		e.Angle = heading
	}

	e.TurretAngle = common.AngleTo(e.X, e.Y, px, py)
	return dist
}

// ReadyToFire reports whether the enemy's cooldown has elapsed and the
// player is within range.
func (e *Enemy) ReadyToFire(now time.Duration, dist float64, cfg config.Enemy) bool {
	return now-e.LastShot > e.Cooldown && dist < cfg.FireRange
}

// Fire shoots one bullet along angle.
func (e *Enemy) Fire(now time.Duration, angle float64, bullets *Pool[Bullet], cfg config.Enemy) {
	b := bullets.Acquire()
	b.X = e.X + math.Cos(angle)*cfg.MuzzleOffset
	b.Y = e.Y + math.Sin(angle)*cfg.MuzzleOffset
	b.VX = math.Cos(angle) * cfg.BulletSpeed
	b.VY = math.Sin(angle) * cfg.BulletSpeed
	b.Radius = cfg.BulletRadius
	b.Damage = cfg.BulletDamage
	b.DamageMultiplier = 1
	e.LastShot = now
}

// AimAt returns the firing angle toward a player at (px, py).
//
// With predictive aim the player's held movement keys stand in for its
// velocity and the shot leads to the intercept point; the player's real
// motion history is not considered.
func (e *Enemy) AimAt(px, py, pvx, pvy float64, cfg config.Enemy) float64 {
	if !cfg.PredictiveAim || (pvx == 0 && pvy == 0) {
		return common.AngleTo(e.X, e.Y, px, py)
	}
	return common.InterceptAngle(e.X, e.Y, px, py, pvx, pvy, cfg.BulletSpeed)
}

// updateEnemies steers every enemy and lets the ones in range fire.
func (g *Game) updateEnemies(in *InputState, now time.Duration) {
	cfg := g.cfg.Enemy
	p := g.Player
	pvx, pvy := p.Velocity(in.Direction())

	g.Enemies.ForEach(func(e *Enemy) {
		dist := e.Steer(p.X, p.Y, cfg)
		if e.ReadyToFire(now, dist, cfg) {
			e.Fire(now, e.AimAt(p.X, p.Y, pvx, pvy, cfg), g.EnemyBullets, cfg)
		}
	})
}
