//go:build js
// +build js

package web

import (
	"fmt"

	"github.com/gopherjs/gopherjs/js"

	"github.com/simukka/tank-assault/common"
	"github.com/simukka/tank-assault/game"
)

// fpsWindow is the number of frame timestamps averaged for the FPS readout.
const fpsWindow = 30

// statRow is one label/value pair in the stats panel.
type statRow struct {
	label string
	value string
	color string
}

// StatsOverlay is the F10 panel with frame timing and entity counts.
type StatsOverlay struct {
	Visible bool

	frames *common.FrameRate

	x, y, width float64
}

// NewStatsOverlay places the panel in the top right of a canvas of the given width.
func NewStatsOverlay(canvasWidth float64) *StatsOverlay {
	return &StatsOverlay{
		frames: common.NewFrameRate(fpsWindow),
		x:      canvasWidth - 216,
		y:      12,
		width:  204,
	}
}

func (s *StatsOverlay) Toggle() { s.Visible = !s.Visible }

// UpdateFPS records a requestAnimationFrame timestamp in milliseconds.
func (s *StatsOverlay) UpdateFPS(currentTime float64) {
	s.frames.Record(currentTime)
}

func (s *StatsOverlay) rows(snap game.Snapshot) []statRow {
	hud := snap.HUD
	return []statRow{
		{"fps", fmt.Sprintf("%.0f", s.frames.FPS()), "#2ecc71"},
		{"frame", fmt.Sprint(snap.Frame), "#95a5a6"},
		{"session", snap.SessionID[:8], "#95a5a6"},
		{"level / kills", fmt.Sprintf("%d / %d", hud.Level, hud.Kills), "#f1c40f"},
		{"enemies", fmt.Sprint(len(snap.Enemies)), rgba(game.ColorEnemy, 1)},
		{"shots", fmt.Sprintf("%d vs %d", len(snap.Bullets), len(snap.EnemyBullets)), rgba(game.ColorPlayerShot, 1)},
		{"effects", fmt.Sprintf("%d + %d", len(snap.Particles), len(snap.Explosions)), "#ecf0f1"},
		{"power-up", hud.PowerUp.String() + " " + hud.RemainingLabel(), "#3498db"},
		{"tank", fmt.Sprintf("%.0f,%.0f", snap.Player.X, snap.Player.Y), "#95a5a6"},
	}
}

// Render draws the panel when visible.
func (s *StatsOverlay) Render(ctx *js.Object, snap game.Snapshot) {
	if !s.Visible {
		return
	}
	rows := s.rows(snap)
	const lineHeight = 16
	height := float64(len(rows))*lineHeight + 34

	ctx.Call("save")
	ctx.Set("fillStyle", "rgba(20, 24, 28, 0.8)")
	ctx.Call("fillRect", s.x, s.y, s.width, height)

	ctx.Set("font", Theme.OverlayFont)
	ctx.Set("fillStyle", "#ecf0f1")
	ctx.Call("fillText", "stats (F10)", s.x+8, s.y+16)

	y := s.y + 34
	for _, r := range rows {
		ctx.Set("textAlign", "left")
		ctx.Set("fillStyle", "#7f8c8d")
		ctx.Call("fillText", r.label, s.x+8, y)
		ctx.Set("textAlign", "right")
		ctx.Set("fillStyle", r.color)
		ctx.Call("fillText", r.value, s.x+s.width-8, y)
		y += lineHeight
	}
	ctx.Call("restore")
}
