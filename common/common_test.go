package common

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSeededRNG_Deterministic(t *testing.T) {
	a := NewSeededRNG(42)
	b := NewSeededRNG(42)

	for i := 0; i < 100; i++ {
		va := a.Float64()
		assert.Equal(t, va, b.Float64())
		assert.GreaterOrEqual(t, va, 0.0)
		assert.Less(t, va, 1.0)
	}

	a.Reset()
	b.SetSeed(42)
	assert.Equal(t, a.Float64(), b.Float64())
}

func TestSeedFromString_Stable(t *testing.T) {
	assert.Equal(t, SeedFromString("session"), SeedFromString("session"))
	assert.NotEqual(t, SeedFromString("session-a"), SeedFromString("session-b"))
}

func TestIntn_InRange(t *testing.T) {
	r := NewSeededRNG(7)
	for i := 0; i < 1000; i++ {
		n := Intn(r, 4)
		assert.GreaterOrEqual(t, n, 0)
		assert.Less(t, n, 4)
	}
}

func TestAngleTo(t *testing.T) {
	tests := []struct {
		name           string
		sx, sy, dx, dy float64
		want           float64
	}{
		{"right", 500, 350, 600, 350, 0},
		{"down", 0, 0, 0, 10, math.Pi / 2},
		{"left", 10, 0, 0, 0, math.Pi},
		{"up", 0, 10, 0, 0, -math.Pi / 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, AngleTo(tt.sx, tt.sy, tt.dx, tt.dy), 1e-9)
		})
	}
}

func TestNormalize_ZeroVector(t *testing.T) {
	x, y := Normalize(0, 0)
	assert.Equal(t, 0.0, x)
	assert.Equal(t, 0.0, y)

	x, y = Normalize(3, 4)
	assert.InDelta(t, 0.6, x, 1e-9)
	assert.InDelta(t, 0.8, y, 1e-9)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 1.0, Clamp(-5, 1, 3))
	assert.Equal(t, 3.0, Clamp(5, 1, 3))
	assert.Equal(t, 2.0, Clamp(2, 1, 3))
}

func TestPointInRect(t *testing.T) {
	assert.True(t, PointInRect(10, 10, 10, 10, 4, 4))
	assert.False(t, PointInRect(12, 10, 10, 10, 4, 4), "edge is exclusive")
	assert.False(t, PointInRect(20, 10, 10, 10, 4, 4))
}

func TestInterceptAngle_StationaryTarget(t *testing.T) {
	got := InterceptAngle(0, 0, 100, 0, 0, 0, 4)
	assert.InDelta(t, 0.0, got, 1e-9)
}

func TestInterceptAngle_LeadsMovingTarget(t *testing.T) {
	// Target straight right moving down: the shot must aim below the target.
	got := InterceptAngle(0, 0, 100, 0, 0, 2, 4)
	assert.Greater(t, got, 0.0)
	assert.Less(t, got, math.Pi/2)
}

func TestManualClock(t *testing.T) {
	c := NewManualClock(time.Second)
	assert.Equal(t, time.Second, c.Now())
	c.Advance(500 * time.Millisecond)
	assert.Equal(t, 1500*time.Millisecond, c.Now())
	c.Set(0)
	assert.Equal(t, time.Duration(0), c.Now())
}

func TestFromMillis(t *testing.T) {
	assert.Equal(t, 16*time.Millisecond+500*time.Microsecond, FromMillis(16.5))
}

func TestNewLogger(t *testing.T) {
	l, err := NewLogger("debug", true)
	assert.NoError(t, err)
	assert.NotNil(t, l)

	_, err = NewLogger("loud", false)
	assert.Error(t, err)
}
