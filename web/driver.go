//go:build js
// +build js

// Package web is the browser frontend: canvas rendering, DOM HUD and input.
package web

import (
	"github.com/gopherjs/gopherjs/js"
	"go.uber.org/zap"

	"github.com/simukka/tank-assault/common"
	"github.com/simukka/tank-assault/game"
)

// Driver schedules game ticks with requestAnimationFrame.
type Driver struct {
	Game     *game.Game
	Renderer *CanvasRenderer
	EndPage  GameOverScreen

	log              *zap.Logger
	animationFrameID int
	running          bool
}

func NewDriver(g *game.Game, r *CanvasRenderer, log *zap.Logger) *Driver {
	return &Driver{Game: g, Renderer: r, log: log}
}

// Start begins the session and the frame loop.
func (d *Driver) Start() {
	d.Game.Start()
	d.run()
}

// Restart begins a fresh session.
func (d *Driver) Restart() {
	d.EndPage.Hide()
	d.Game.Restart()
	d.run()
}

// Stop cancels the pending frame.
func (d *Driver) Stop() {
	if !d.running {
		return
	}
	js.Global.Call("cancelAnimationFrame", d.animationFrameID)
	d.running = false
}

func (d *Driver) run() {
	if d.running {
		return
	}
	d.running = true
	d.schedule()
}

func (d *Driver) schedule() {
	d.animationFrameID = js.Global.Call("requestAnimationFrame", d.loop).Int()
}

// loop runs once per animation frame. Scheduling stops when the game ends.
func (d *Driver) loop(currentTime float64) {
	d.Renderer.Overlay.UpdateFPS(currentTime)

	g := d.Game
	if !g.Started() || g.Paused() {
		d.Renderer.Render(g.Snapshot())
		d.schedule()
		return
	}

	if !g.Tick(common.FromMillis(currentTime)) {
		d.running = false
		d.log.Info("frame loop stopped", zap.Int("score", g.Score))
		return
	}
	d.schedule()
}
