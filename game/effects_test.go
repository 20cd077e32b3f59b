package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExplosion_EasesAndExpires(t *testing.T) {
	g := newTestGame(t)
	g.Explode(100, 100, 50, ColorEnemy)
	require.Equal(t, 1, g.Explosions.Len())

	g.updateExplosions()
	assert.InDelta(t, 0.2*50, g.Explosions.At(0).Radius, 1e-9)

	for i := 1; i < 29; i++ {
		g.updateExplosions()
	}
	require.Equal(t, 1, g.Explosions.Len(), "alive for its last frame")
	assert.Greater(t, g.Explosions.At(0).Radius, 0.99*50)
	assert.LessOrEqual(t, g.Explosions.At(0).Radius, 50.0)

	g.updateExplosions()
	assert.Equal(t, 0, g.Explosions.Len())
}

func TestBurst_ExpiresAfterLife(t *testing.T) {
	g := newTestGame(t)
	g.Burst(200, 200, 15, ColorPlayer)
	require.Equal(t, 15, g.Particles.Len())

	for i := 0; i < 59; i++ {
		g.updateParticles()
	}
	assert.Equal(t, 15, g.Particles.Len())
	g.Particles.ForEach(func(p *Particle) {
		assert.Equal(t, 1, p.Life)
		assert.InDelta(t, 1.0/60, p.Alpha(), 1e-9)
	})

	g.updateParticles()
	assert.Equal(t, 0, g.Particles.Len())
}

func TestUpdateParticles_IdempotentPastExpiry(t *testing.T) {
	g := newTestGame(t)
	short := g.Particles.Acquire()
	short.Life = 1
	short.MaxLife = 1
	long := g.Particles.Acquire()
	long.X = 7
	long.Life = 100
	long.MaxLife = 100

	g.updateParticles()
	first := g.Particles.Len()
	g.updateParticles()

	require.Equal(t, 1, first)
	assert.Equal(t, first, g.Particles.Len())
	assert.Equal(t, 7.0, g.Particles.At(0).X)
}

func TestMinimap_Project(t *testing.T) {
	g := newTestGame(t)
	m := NewMinimap(1000, 150, 840, 585)

	x, y := m.Project(g.Player)
	assert.InDelta(t, 915, x, 1e-9)
	assert.InDelta(t, 637.5, y, 1e-9)

	// one transform for every entity
	e := addEnemy(g, 0, 0, 50)
	x, y = m.Project(e)
	assert.InDelta(t, 840, x, 1e-9)
	assert.InDelta(t, 585, y, 1e-9)

	x, y = m.WorldToScreen(1000, 700)
	assert.InDelta(t, 990, x, 1e-9)
	assert.InDelta(t, 690, y, 1e-9)
}
