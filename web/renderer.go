//go:build js
// +build js

package web

import (
	"image/color"
	"math"

	"github.com/gopherjs/gopherjs/js"
	"go.uber.org/zap"

	"github.com/simukka/tank-assault/game"
)

// Sprites are the optional tank images.
type Sprites struct {
	Player string
	Enemy  string
}

// CanvasRenderer draws snapshots onto a 2D canvas.
type CanvasRenderer struct {
	Ctx     *js.Object
	Overlay *StatsOverlay

	width, height float64
	background    *js.Object
	player        *Sprite
	enemy         *Sprite
	minimap       game.Viewport
	minimapHeight float64
}

// NewCanvasRenderer prepares a renderer for a canvas sized to the arena.
func NewCanvasRenderer(ctx *js.Object, width, height float64, sprites Sprites, log *zap.Logger) *CanvasRenderer {
	mw := Theme.MinimapWidth
	mx := width - mw - Theme.MinimapMargin
	my := height - mw*height/width - Theme.MinimapMargin
	return &CanvasRenderer{
		Ctx:           ctx,
		Overlay:       NewStatsOverlay(width),
		width:         width,
		height:        height,
		background:    renderBackground(int(width), int(height)),
		player:        LoadSprite(sprites.Player, log),
		enemy:         LoadSprite(sprites.Enemy, log),
		minimap:       game.NewMinimap(width, mw, mx, my),
		minimapHeight: mw * height / width,
	}
}

// Render implements game.Renderer.
func (r *CanvasRenderer) Render(s game.Snapshot) {
	ctx := r.Ctx
	ctx.Call("drawImage", r.background, 0, 0)

	r.renderPowerUps(s)
	r.renderBullets(s.Bullets, game.ColorPlayerShot)
	r.renderBullets(s.EnemyBullets, game.ColorEnemyShot)
	r.renderEnemies(s)
	r.renderPlayer(s)
	r.renderParticles(s)
	r.renderExplosions(s)
	r.renderMinimap(s)

	if s.Paused {
		r.renderPaused()
	}
	r.Overlay.Render(ctx, s)
}

func (r *CanvasRenderer) renderPowerUps(s game.Snapshot) {
	ctx := r.Ctx
	for i := range s.PowerUps {
		pu := &s.PowerUps[i]
		ctx.Call("save")
		ctx.Call("translate", pu.X, pu.Y)
		ctx.Call("rotate", pu.Rotation)
		ctx.Set("fillStyle", rgba(pu.Kind.Color(), 1))
		ctx.Call("fillRect", -pu.Size/2, -pu.Size/2, pu.Size, pu.Size)
		ctx.Call("restore")

		ctx.Set("fillStyle", Theme.TextColor)
		ctx.Set("font", Theme.OverlayFont)
		ctx.Set("textAlign", "center")
		ctx.Call("fillText", pu.Kind.String(), pu.X, pu.Y+pu.Size)
	}
	ctx.Set("textAlign", "left")
}

func (r *CanvasRenderer) renderBullets(bullets []game.Bullet, c color.RGBA) {
	ctx := r.Ctx
	ctx.Set("fillStyle", rgba(c, 1))
	for i := range bullets {
		b := &bullets[i]
		ctx.Call("beginPath")
		ctx.Call("arc", b.X, b.Y, b.Radius, 0, math.Pi*2)
		ctx.Call("fill")
	}
}

func (r *CanvasRenderer) renderEnemies(s game.Snapshot) {
	for i := range s.Enemies {
		e := &s.Enemies[i]
		drawTank(r.Ctx, r.enemy, e.X, e.Y, e.Size, e.Angle, e.TurretAngle, Theme.EnemyBody, Theme.EnemyBarrel)
		drawHealthBar(r.Ctx, e.X, e.Y, e.Size, e.Health, e.MaxHealth)
	}
}

func (r *CanvasRenderer) renderPlayer(s game.Snapshot) {
	ctx := r.Ctx
	p := &s.Player
	body := Theme.PlayerBody
	if s.Invulnerable && s.Frame%10 < 5 {
		body = rgba(game.ColorInvulnerable, 1)
	}
	drawTank(ctx, r.player, p.X, p.Y, p.Size, p.Angle, p.TurretAngle, body, Theme.PlayerBarrel)
	drawHealthBar(ctx, p.X, p.Y, p.Size, p.Health, p.MaxHealth)

	if p.PowerUp == game.ShieldBoost {
		ctx.Set("strokeStyle", Theme.ShieldStroke)
		ctx.Set("lineWidth", 3)
		ctx.Call("beginPath")
		ctx.Call("arc", p.X, p.Y, p.Size*0.8, 0, math.Pi*2)
		ctx.Call("stroke")
	}
}

func (r *CanvasRenderer) renderParticles(s game.Snapshot) {
	ctx := r.Ctx
	for i := range s.Particles {
		p := &s.Particles[i]
		ctx.Set("fillStyle", rgba(p.Color, p.Alpha()))
		ctx.Call("fillRect", p.X-p.Size/2, p.Y-p.Size/2, p.Size, p.Size)
	}
}

func (r *CanvasRenderer) renderExplosions(s game.Snapshot) {
	ctx := r.Ctx
	ctx.Set("lineWidth", 3)
	for i := range s.Explosions {
		e := &s.Explosions[i]
		ctx.Set("strokeStyle", rgba(e.Color, e.Alpha()))
		ctx.Call("beginPath")
		ctx.Call("arc", e.X, e.Y, e.Radius, 0, math.Pi*2)
		ctx.Call("stroke")
	}
}

// renderMinimap draws every entity through the minimap viewport.
func (r *CanvasRenderer) renderMinimap(s game.Snapshot) {
	ctx := r.Ctx
	v := r.minimap
	mw := Theme.MinimapWidth

	ctx.Set("fillStyle", Theme.MinimapBackground)
	ctx.Call("fillRect", v.OffsetX, v.OffsetY, mw, r.minimapHeight)
	ctx.Set("strokeStyle", Theme.MinimapBorder)
	ctx.Set("lineWidth", 1)
	ctx.Call("strokeRect", v.OffsetX, v.OffsetY, mw, r.minimapHeight)

	dot := func(e game.Positioned, size float64, style string) {
		x, y := v.Project(e)
		ctx.Set("fillStyle", style)
		ctx.Call("fillRect", x-size/2, y-size/2, size, size)
	}

	for i := range s.PowerUps {
		dot(&s.PowerUps[i], 3, rgba(s.PowerUps[i].Kind.Color(), 1))
	}
	for i := range s.Enemies {
		dot(&s.Enemies[i], 4, Theme.EnemyBody)
	}
	dot(&s.Player, 5, Theme.PlayerBody)
}

func (r *CanvasRenderer) renderPaused() {
	ctx := r.Ctx
	ctx.Set("fillStyle", "rgba(0,0,0,0.5)")
	ctx.Call("fillRect", 0, 0, r.width, r.height)
	ctx.Set("fillStyle", Theme.TextColor)
	ctx.Set("font", Theme.PausedFont)
	ctx.Set("textAlign", "center")
	ctx.Call("fillText", "PAUSED", r.width/2, r.height/2)
	ctx.Set("textAlign", "left")
}
