//go:build js
// +build js

package web

import (
	"math"

	"github.com/gopherjs/gopherjs/js"
	"go.uber.org/zap"
)

// RenderToCanvas creates an off-screen canvas and renders to it.
func RenderToCanvas(width, height int, renderFn func(canvas, ctx *js.Object)) *js.Object {
	document := js.Global.Get("document")
	canvas := document.Call("createElement", "canvas")
	canvas.Set("width", width)
	canvas.Set("height", height)
	ctx := canvas.Call("getContext", "2d")
	renderFn(canvas, ctx)
	return canvas
}

// Sprite is an image that may still be loading or may have failed to load.
type Sprite struct {
	Image  *js.Object
	loaded bool
}

// LoadSprite starts loading src. Until the image arrives, Ready reports
// false and tanks are drawn with the fallback shape.
func LoadSprite(src string, log *zap.Logger) *Sprite {
	s := &Sprite{}
	if src == "" {
		return s
	}
	img := js.Global.Get("Image").New()
	img.Set("onload", func() {
		s.loaded = true
		log.Debug("sprite loaded", zap.String("src", src))
	})
	img.Set("onerror", func() {
		log.Warn("sprite unavailable, using fallback", zap.String("src", src))
	})
	img.Set("src", src)
	s.Image = img
	return s
}

// Ready reports whether the image can be drawn.
func (s *Sprite) Ready() bool {
	return s != nil && s.loaded
}

// drawTank draws a tank body rotated to bodyAngle and a barrel rotated to
// turretAngle. Without a sprite the body is a solid square.
func drawTank(ctx *js.Object, sprite *Sprite, x, y, size, bodyAngle, turretAngle float64, body, barrel string) {
	ctx.Call("save")
	ctx.Call("translate", x, y)

	ctx.Call("save")
	ctx.Call("rotate", bodyAngle)
	if sprite.Ready() {
		ctx.Call("drawImage", sprite.Image, -size/2, -size/2, size, size)
	} else {
		ctx.Set("fillStyle", body)
		ctx.Call("fillRect", -size/2, -size/2, size, size)
	}
	ctx.Call("restore")

	ctx.Call("rotate", turretAngle)
	ctx.Set("fillStyle", barrel)
	ctx.Call("fillRect", 0, -Theme.BarrelWidth/2, size*0.7, Theme.BarrelWidth)

	ctx.Call("restore")
}

// drawHealthBar draws a bar above an entity of the given size.
func drawHealthBar(ctx *js.Object, x, y, size, health, maxHealth float64) {
	if maxHealth <= 0 {
		return
	}
	frac := math.Max(0, math.Min(1, health/maxHealth))
	barX := x - size/2
	barY := y - size/2 - Theme.HealthBarGap

	ctx.Set("fillStyle", Theme.HealthBarBackground)
	ctx.Call("fillRect", barX, barY, size, Theme.HealthBarHeight)
	ctx.Set("fillStyle", healthColor(frac))
	ctx.Call("fillRect", barX, barY, size*frac, Theme.HealthBarHeight)
	ctx.Set("strokeStyle", Theme.HealthBarBorder)
	ctx.Set("lineWidth", 1)
	ctx.Call("strokeRect", barX, barY, size, Theme.HealthBarHeight)
}

// renderBackground pre-renders the arena floor.
func renderBackground(width, height int) *js.Object {
	return RenderToCanvas(width, height, func(canvas, ctx *js.Object) {
		ctx.Set("fillStyle", Theme.BackgroundColor)
		ctx.Call("fillRect", 0, 0, width, height)

		ctx.Set("strokeStyle", Theme.GridColor)
		ctx.Set("lineWidth", 1)
		ctx.Call("beginPath")
		for x := 0.0; x <= float64(width); x += Theme.GridStep {
			ctx.Call("moveTo", x, 0)
			ctx.Call("lineTo", x, height)
		}
		for y := 0.0; y <= float64(height); y += Theme.GridStep {
			ctx.Call("moveTo", 0, y)
			ctx.Call("lineTo", width, y)
		}
		ctx.Call("stroke")
	})
}
