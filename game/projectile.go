package game

import "github.com/simukka/tank-assault/config"

// Bullet is a projectile fired by the player or an enemy.
type Bullet struct {
	X, Y   float64
	VX, VY float64 // per-frame velocity
	Radius float64
	Damage float64
	// DamageMultiplier scales Damage for player bullets; 1 for enemy bullets.
	DamageMultiplier float64

	spent bool
}

// GetPosition implements Positioned.
func (b *Bullet) GetPosition() (x, y float64) {
	return b.X, b.Y
}

// Impact is the damage the bullet deals on hit.
func (b *Bullet) Impact() float64 {
	return b.Damage * b.DamageMultiplier
}

// InBounds reports whether the bullet is inside the arena.
func (b *Bullet) InBounds(arena config.Arena) bool {
	return b.X >= 0 && b.X <= arena.Width && b.Y >= 0 && b.Y <= arena.Height
}

// moveBullets advances every bullet by one frame.
func moveBullets(bullets *Pool[Bullet]) {
	bullets.ForEach(func(b *Bullet) {
		b.X += b.VX
		b.Y += b.VY
	})
}

// cullBullets removes spent bullets and bullets that left the arena.
func cullBullets(bullets *Pool[Bullet], arena config.Arena) {
	bullets.Retain(func(b *Bullet) bool {
		return !b.spent && b.InBounds(arena)
	})
}
