//go:build !js
// +build !js

package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/simukka/tank-assault/game"
)

const (
	minimapWidth  = 150
	minimapMargin = 10
	barHeight     = 5
)

// Screen keeps the latest snapshot and draws it into the ebiten window.
type Screen struct {
	Width, Height int
	ShowStats     bool

	snap    game.Snapshot
	result  *game.Result
	minimap game.Viewport
}

func NewScreen(width, height int) *Screen {
	mh := float64(minimapWidth) * float64(height) / float64(width)
	return &Screen{
		Width:  width,
		Height: height,
		minimap: game.NewMinimap(float64(width), minimapWidth,
			float64(width-minimapWidth-minimapMargin), float64(height)-mh-minimapMargin),
	}
}

// Render implements game.Renderer.
func (s *Screen) Render(snap game.Snapshot) {
	s.snap = snap
}

// GameOver implements game.GameOverSink.
func (s *Screen) GameOver(r game.Result) {
	s.result = &r
}

// Reset clears the end screen.
func (s *Screen) Reset() {
	s.result = nil
}

func (s *Screen) Draw(dst *ebiten.Image) {
	snap := s.snap
	dst.Fill(colornames.Midnightblue)

	for i := range snap.PowerUps {
		pu := &snap.PowerUps[i]
		drawSquare(dst, pu.X, pu.Y, pu.Size, pu.Kind.Color())
	}
	for i := range snap.Bullets {
		b := &snap.Bullets[i]
		vector.DrawFilledCircle(dst, float32(b.X), float32(b.Y), float32(b.Radius), game.ColorPlayerShot, true)
	}
	for i := range snap.EnemyBullets {
		b := &snap.EnemyBullets[i]
		vector.DrawFilledCircle(dst, float32(b.X), float32(b.Y), float32(b.Radius), game.ColorEnemyShot, true)
	}
	for i := range snap.Enemies {
		e := &snap.Enemies[i]
		drawTank(dst, e.X, e.Y, e.Size, e.Angle, e.TurretAngle, game.ColorEnemy, colornames.Darkred)
		drawHealthBar(dst, e.X, e.Y, e.Size, e.Health, e.MaxHealth)
	}

	p := &snap.Player
	body := game.ColorPlayer
	if snap.Invulnerable && snap.Frame%10 < 5 {
		body = game.ColorInvulnerable
	}
	drawTank(dst, p.X, p.Y, p.Size, p.Angle, p.TurretAngle, body, colornames.Darkgreen)
	drawHealthBar(dst, p.X, p.Y, p.Size, p.Health, p.MaxHealth)
	if p.PowerUp == game.ShieldBoost {
		vector.StrokeCircle(dst, float32(p.X), float32(p.Y), float32(p.Size*0.8), 3, game.ShieldBoost.Color(), true)
	}

	for i := range snap.Particles {
		pt := &snap.Particles[i]
		drawSquare(dst, pt.X, pt.Y, pt.Size, fade(pt.Color, pt.Alpha()))
	}
	for i := range snap.Explosions {
		e := &snap.Explosions[i]
		vector.StrokeCircle(dst, float32(e.X), float32(e.Y), float32(e.Radius), 3, fade(e.Color, e.Alpha()), true)
	}

	s.drawMinimap(dst)
	s.drawHUD(dst)
}

func (s *Screen) drawMinimap(dst *ebiten.Image) {
	v := s.minimap
	snap := s.snap
	w := float32(minimapWidth)
	h := float32(float64(minimapWidth) * float64(s.Height) / float64(s.Width))
	vector.DrawFilledRect(dst, float32(v.OffsetX), float32(v.OffsetY), w, h, color.RGBA{0, 0, 0, 0x80}, false)
	vector.StrokeRect(dst, float32(v.OffsetX), float32(v.OffsetY), w, h, 1, colornames.Lightgray, false)

	dot := func(e game.Positioned, size float64, c color.Color) {
		x, y := v.Project(e)
		vector.DrawFilledRect(dst, float32(x-size/2), float32(y-size/2), float32(size), float32(size), c, false)
	}
	for i := range snap.PowerUps {
		dot(&snap.PowerUps[i], 3, snap.PowerUps[i].Kind.Color())
	}
	for i := range snap.Enemies {
		dot(&snap.Enemies[i], 4, game.ColorEnemy)
	}
	dot(&snap.Player, 5, game.ColorPlayer)
}

func (s *Screen) drawHUD(dst *ebiten.Image) {
	h := s.snap.HUD
	ebitenutil.DebugPrintAt(dst, fmt.Sprintf("Score %d  Health %d  Enemies %d  Level %d  Power-up %s %s",
		h.Score, h.Health, h.Enemies, h.Level, h.PowerUp.Label(), h.RemainingLabel()), 10, 10)

	for i, n := range s.snap.Notifications {
		ebitenutil.DebugPrintAt(dst, n.Text, s.Width/2-len(n.Text)*3, 60+i*16)
	}

	if s.ShowStats {
		ebitenutil.DebugPrintAt(dst, fmt.Sprintf("FPS %.1f  TPS %.1f  frame %d  particles %d",
			ebiten.ActualFPS(), ebiten.ActualTPS(), s.snap.Frame, len(s.snap.Particles)), 10, 30)
	}

	cx, cy := s.Width/2-60, s.Height/2
	switch {
	case s.result != nil:
		r := s.result
		ebitenutil.DebugPrintAt(dst, "GAME OVER", cx, cy-20)
		ebitenutil.DebugPrintAt(dst, fmt.Sprintf("Score %d  Level %d  Kills %d", r.Score, r.Level, r.Kills), cx, cy)
		ebitenutil.DebugPrintAt(dst, "Enter to play again", cx, cy+20)
	case !s.snap.Started:
		ebitenutil.DebugPrintAt(dst, "TANK ASSAULT - Enter to start", cx, cy)
	case s.snap.Paused:
		ebitenutil.DebugPrintAt(dst, "PAUSED", cx, cy)
	}
}

// drawTank draws the fallback tank: a square body, a short line for the
// body facing and a barrel along the turret angle.
func drawTank(dst *ebiten.Image, x, y, size, bodyAngle, turretAngle float64, body, barrel color.Color) {
	drawSquare(dst, x, y, size, body)
	vector.StrokeLine(dst, float32(x), float32(y),
		float32(x+math.Cos(bodyAngle)*size/2), float32(y+math.Sin(bodyAngle)*size/2), 2, colornames.Black, true)
	vector.StrokeLine(dst, float32(x), float32(y),
		float32(x+math.Cos(turretAngle)*size*0.7), float32(y+math.Sin(turretAngle)*size*0.7), 8, barrel, true)
}

func drawSquare(dst *ebiten.Image, x, y, size float64, c color.Color) {
	vector.DrawFilledRect(dst, float32(x-size/2), float32(y-size/2), float32(size), float32(size), c, false)
}

func drawHealthBar(dst *ebiten.Image, x, y, size, health, maxHealth float64) {
	if maxHealth <= 0 {
		return
	}
	frac := math.Max(0, math.Min(1, health/maxHealth))
	bx := float32(x - size/2)
	by := float32(y - size/2 - 10)
	fill := colornames.Limegreen
	if frac <= 0.25 {
		fill = colornames.Red
	} else if frac <= 0.5 {
		fill = colornames.Yellow
	}
	vector.DrawFilledRect(dst, bx, by, float32(size), barHeight, colornames.Black, false)
	vector.DrawFilledRect(dst, bx, by, float32(size*frac), barHeight, fill, false)
	vector.StrokeRect(dst, bx, by, float32(size), barHeight, 1, colornames.White, false)
}

// fade scales c by alpha as premultiplied RGBA.
func fade(c color.RGBA, alpha float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}
