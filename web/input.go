//go:build js
// +build js

package web

import (
	"github.com/gopherjs/gopherjs/js"

	"github.com/simukka/tank-assault/config"
	"github.com/simukka/tank-assault/game"
)

// statsKey toggles the stats overlay.
const statsKey = "F10"

// SetupInputHandlers binds keyboard and pointer events to the game's input
// state. Pointer coordinates are converted from CSS pixels to arena units.
func SetupInputHandlers(g *game.Game, canvas *js.Object, overlay *StatsOverlay) {
	doc := js.Global.Get("document")
	in := g.Input()
	arena := g.Config().Arena

	doc.Call("addEventListener", "keydown", func(event *js.Object) {
		key := event.Get("key").String()
		if key == statsKey {
			overlay.Toggle()
			event.Call("preventDefault")
			return
		}

		c := game.TranslateKey(key)
		if c == game.ControlNone {
			return
		}
		event.Call("preventDefault")
		if c == game.ControlPause {
			if !event.Get("repeat").Bool() {
				g.TogglePause()
			}
			return
		}
		in.SetControl(c, true)
	})

	doc.Call("addEventListener", "keyup", func(event *js.Object) {
		in.SetControl(game.TranslateKey(event.Get("key").String()), false)
	})

	canvas.Call("addEventListener", "mousemove", func(event *js.Object) {
		in.SetPointer(toArena(arena, canvas, event))
	})

	canvas.Call("addEventListener", "mousedown", func(event *js.Object) {
		if event.Get("button").Int() != 0 {
			return
		}
		in.SetPointer(toArena(arena, canvas, event))
		in.SetFiring(true)
	})

	// Releasing outside the canvas still stops firing.
	doc.Call("addEventListener", "mouseup", func(event *js.Object) {
		if event.Get("button").Int() == 0 {
			in.SetFiring(false)
		}
	})

	js.Global.Call("addEventListener", "blur", func() {
		in.Reset()
	})
}

// toArena maps a mouse event to arena coordinates.
func toArena(arena config.Arena, canvas, event *js.Object) (x, y float64) {
	rect := canvas.Call("getBoundingClientRect")
	w := rect.Get("width").Float()
	h := rect.Get("height").Float()
	if w == 0 || h == 0 {
		return 0, 0
	}
	sx := arena.Width / w
	sy := arena.Height / h
	x = (event.Get("clientX").Float() - rect.Get("left").Float()) * sx
	y = (event.Get("clientY").Float() - rect.Get("top").Float()) * sy
	return x, y
}
