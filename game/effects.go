package game

import (
	"image/color"

	"github.com/simukka/tank-assault/common"
)

// Particle is a purely visual fragment.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Life    int // frames remaining
	MaxLife int
	Color   color.RGBA
	Size    float64
}

// GetPosition implements Positioned.
func (p *Particle) GetPosition() (x, y float64) {
	return p.X, p.Y
}

// Alpha is the fade factor in [0, 1] derived from remaining life.
func (p *Particle) Alpha() float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	return float64(p.Life) / float64(p.MaxLife)
}

// Explosion is an expanding ring whose radius eases toward MaxRadius.
type Explosion struct {
	X, Y      float64
	Radius    float64
	MaxRadius float64
	Life      int // frames remaining
	MaxLife   int
	Color     color.RGBA
}

// GetPosition implements Positioned.
func (e *Explosion) GetPosition() (x, y float64) {
	return e.X, e.Y
}

// Alpha is the fade factor in [0, 1] derived from remaining life.
func (e *Explosion) Alpha() float64 {
	if e.MaxLife <= 0 {
		return 0
	}
	return float64(e.Life) / float64(e.MaxLife)
}

// Burst scatters count particles from (x, y).
func (g *Game) Burst(x, y float64, count int, c color.RGBA) {
	fx := g.cfg.Effects
	half := fx.ParticleSpeed / 2
	for i := 0; i < count; i++ {
		p := g.Particles.Acquire()
		p.X = x
		p.Y = y
		p.VX = common.Between(g.rng, -half, half)
		p.VY = common.Between(g.rng, -half, half)
		p.Life = fx.ParticleLife
		p.MaxLife = fx.ParticleLife
		p.Color = c
		p.Size = common.Between(g.rng, 2, 6)
	}
}

// Explode adds an expanding ring at (x, y).
func (g *Game) Explode(x, y, maxRadius float64, c color.RGBA) {
	e := g.Explosions.Acquire()
	e.X = x
	e.Y = y
	e.MaxRadius = maxRadius
	e.Life = g.cfg.Effects.ExplosionLife
	e.MaxLife = g.cfg.Effects.ExplosionLife
	e.Color = c
}

// updateParticles moves particles and drops the expired ones.
func (g *Game) updateParticles() {
	g.Particles.Retain(func(p *Particle) bool {
		p.X += p.VX
		p.Y += p.VY
		p.Life--
		return p.Life > 0
	})
}

// updateExplosions grows rings toward their max radius and drops the expired ones.
func (g *Game) updateExplosions() {
	ease := g.cfg.Effects.ExplosionEase
	g.Explosions.Retain(func(e *Explosion) bool {
		e.Radius += (e.MaxRadius - e.Radius) * ease
		e.Life--
		return e.Life > 0
	})
}
