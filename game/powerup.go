package game

import (
	"image/color"
	"time"

	"github.com/simukka/tank-assault/config"
)

// PowerUpKind enumerates collectible power-ups.
type PowerUpKind int

const (
	NoPowerUp PowerUpKind = iota
	SpeedBoost
	DamageBoost
	ShieldBoost
	RapidFire
	HealthPack
)

// PowerUpKinds lists the kinds the spawner draws from.
var PowerUpKinds = []PowerUpKind{SpeedBoost, DamageBoost, ShieldBoost, RapidFire, HealthPack}

func (k PowerUpKind) String() string {
	switch k {
	case SpeedBoost:
		return "speed"
	case DamageBoost:
		return "damage"
	case ShieldBoost:
		return "shield"
	case RapidFire:
		return "rapid"
	case HealthPack:
		return "health"
	default:
		return "none"
	}
}

// Label is the display name of the kind.
func (k PowerUpKind) Label() string {
	switch k {
	case SpeedBoost:
		return "Speed Boost"
	case DamageBoost:
		return "Double Damage"
	case ShieldBoost:
		return "Shield"
	case RapidFire:
		return "Rapid Fire"
	case HealthPack:
		return "Health"
	default:
		return "None"
	}
}

// Color is the tint used for the pickup and its effects.
func (k PowerUpKind) Color() color.RGBA {
	switch k {
	case SpeedBoost:
		return color.RGBA{0x34, 0x98, 0xdb, 0xff}
	case DamageBoost:
		return color.RGBA{0xe7, 0x4c, 0x3c, 0xff}
	case ShieldBoost:
		return color.RGBA{0x9b, 0x59, 0xb6, 0xff}
	case RapidFire:
		return color.RGBA{0xf1, 0xc4, 0x0f, 0xff}
	case HealthPack:
		return color.RGBA{0x2e, 0xcc, 0x71, 0xff}
	default:
		return color.RGBA{0xff, 0xff, 0xff, 0xff}
	}
}

// Timed reports whether the kind becomes an active status with an expiry.
// Health is consumed instantly.
func (k PowerUpKind) Timed() bool {
	switch k {
	case SpeedBoost, DamageBoost, ShieldBoost, RapidFire:
		return true
	default:
		return false
	}
}

// Apply modifies baseline player stats for the kind.
func (k PowerUpKind) Apply(p *Player, cfg config.PowerUp) {
	switch k {
	case SpeedBoost:
		p.Speed *= cfg.SpeedMultiplier
	case DamageBoost:
		p.DamageMultiplier = cfg.DamageMultiplier
	case ShieldBoost:
		p.DamageFactor = cfg.ShieldFactor
	case RapidFire:
		p.FireInterval = cfg.RapidInterval
		p.Spread = cfg.RapidSpread
	case HealthPack:
		p.Heal(cfg.HealAmount)
	case NoPowerUp:
	}
}

// PowerUp is a collectible lying in the arena.
type PowerUp struct {
	X, Y     float64
	Size     float64
	Kind     PowerUpKind
	Rotation float64 // cosmetic spin phase

	taken bool
}

// GetPosition implements Positioned.
func (p *PowerUp) GetPosition() (x, y float64) {
	return p.X, p.Y
}

// ActivatePowerUp makes kind the player's active power-up until now+duration.
// Stats return to baseline first so effects never stack. Instant kinds such as
// HealthPack take effect without disturbing the active power-up.
func (p *Player) ActivatePowerUp(kind PowerUpKind, now time.Duration, cfg config.PowerUp) {
	if !kind.Timed() {
		kind.Apply(p, cfg)
		return
	}
	p.resetStats()
	kind.Apply(p, cfg)
	p.PowerUp = kind
	p.PowerUpExpires = now + cfg.Duration
}

// ReapplyPowerUp re-applies the active power-up from baseline without touching
// its expiry. It returns false when no power-up is active.
func (p *Player) ReapplyPowerUp(cfg config.PowerUp) bool {
	if p.PowerUp == NoPowerUp {
		return false
	}
	p.resetStats()
	p.PowerUp.Apply(p, cfg)
	return true
}

// ExpirePowerUp clears the active power-up once its expiry has passed.
// It returns the kind that expired, or NoPowerUp.
func (p *Player) ExpirePowerUp(now time.Duration) PowerUpKind {
	if p.PowerUp == NoPowerUp || now < p.PowerUpExpires {
		return NoPowerUp
	}
	kind := p.PowerUp
	p.resetStats()
	p.PowerUp = NoPowerUp
	p.PowerUpExpires = 0
	return kind
}

// PowerUpRemaining returns the time left on the active power-up.
func (p *Player) PowerUpRemaining(now time.Duration) time.Duration {
	if p.PowerUp == NoPowerUp || now >= p.PowerUpExpires {
		return 0
	}
	return p.PowerUpExpires - now
}
