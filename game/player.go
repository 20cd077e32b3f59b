package game

import (
	"math"
	"time"

	"github.com/simukka/tank-assault/common"
	"github.com/simukka/tank-assault/config"
)

// Player holds the player tank state.
type Player struct {
	X, Y        float64
	Size        float64
	Angle       float64 // body facing, radians
	TurretAngle float64 // radians, follows the pointer
	Health      float64
	MaxHealth   float64

	// Current stats. Power-ups modify these from the baseline in cfg.
	Speed            float64
	FireInterval     time.Duration
	DamageMultiplier float64
	DamageFactor     float64 // fraction of incoming damage taken
	Spread           float64 // angular offset of side shots; 0 fires one bullet

	PowerUp           PowerUpKind
	PowerUpExpires    time.Duration
	InvulnerableUntil time.Duration

	lastShot time.Duration
	hasShot  bool
	cfg      config.Player
}

// NewPlayer creates a player at full health in the centre of the arena.
func NewPlayer(cfg config.Player, arena config.Arena) *Player {
	p := &Player{
		X:         arena.Width / 2,
		Y:         arena.Height / 2,
		Size:      cfg.Size,
		Health:    cfg.MaxHealth,
		MaxHealth: cfg.MaxHealth,
		cfg:       cfg,
	}
	p.resetStats()
	return p
}

// GetPosition implements Positioned.
func (p *Player) GetPosition() (x, y float64) {
	return p.X, p.Y
}

// IsAlive reports whether the player has health remaining.
func (p *Player) IsAlive() bool {
	return p.Health > 0
}

// Invulnerable reports whether incoming damage is ignored at now.
func (p *Player) Invulnerable(now time.Duration) bool {
	return now < p.InvulnerableUntil
}

// resetStats restores the baseline stats.
func (p *Player) resetStats() {
	p.Speed = p.cfg.Speed
	p.FireInterval = p.cfg.FireInterval
	p.DamageMultiplier = 1
	p.DamageFactor = 1
	p.Spread = 0
}

// Velocity is the per-frame displacement the held input produces.
func (p *Player) Velocity(dx, dy float64) (vx, vy float64) {
	nx, ny := common.Normalize(dx, dy)
	return nx * p.Speed, ny * p.Speed
}

// Move applies one frame of input. Diagonals are normalised so they are no
// faster than axis movement; the body angle only changes while moving.
func (p *Player) Move(in *InputState, arena config.Arena) {
	dx, dy := in.Direction()
	if dx != 0 || dy != 0 {
		vx, vy := p.Velocity(dx, dy)
		p.X += vx
		p.Y += vy
		p.Angle = math.Atan2(dy, dx)
	}

	half := p.Size / 2
	p.X = common.Clamp(p.X, half, arena.Width-half)
	p.Y = common.Clamp(p.Y, half, arena.Height-half)

	p.TurretAngle = common.AngleTo(p.X, p.Y, in.PointerX, in.PointerY)
}

// CanFire reports whether the fire interval has elapsed at now.
func (p *Player) CanFire(now time.Duration) bool {
	return !p.hasShot || now-p.lastShot >= p.FireInterval
}

// Fire emits bullets along the turret when the fire interval allows.
// With a spread active it fires three bullets fanned around the turret angle.
// It returns the number of bullets fired.
func (p *Player) Fire(now time.Duration, bullets *Pool[Bullet]) int {
	if !p.CanFire(now) {
		return 0
	}
	p.lastShot = now
	p.hasShot = true

	angles := [3]float64{p.TurretAngle}
	n := 1
	if p.Spread != 0 {
		angles = [3]float64{p.TurretAngle - p.Spread, p.TurretAngle, p.TurretAngle + p.Spread}
		n = 3
	}

	for _, a := range angles[:n] {
		b := bullets.Acquire()
		b.X = p.X + math.Cos(a)*p.cfg.MuzzleOffset
		b.Y = p.Y + math.Sin(a)*p.cfg.MuzzleOffset
		b.VX = math.Cos(a) * p.cfg.BulletSpeed
		b.VY = math.Sin(a) * p.cfg.BulletSpeed
		b.Radius = p.cfg.BulletRadius
		b.Damage = p.cfg.BulletDamage
		b.DamageMultiplier = p.DamageMultiplier
	}
	return n
}

// Hurt applies incoming damage scaled by the shield factor and clamps health
// at zero. It returns the damage actually taken.
func (p *Player) Hurt(damage float64) float64 {
	taken := damage * p.DamageFactor
	if taken > p.Health {
		taken = p.Health
	}
	p.Health -= taken
	return taken
}

// Heal adds health up to MaxHealth.
func (p *Player) Heal(amount float64) {
	p.Health = math.Min(p.MaxHealth, p.Health+amount)
}
