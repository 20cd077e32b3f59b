//go:build js
// +build js

// Command tank-assault is the browser build. GopherJS 1.20 compiles it
// against a Go 1.20 GOROOT:
//
//	GOPHERJS_GOROOT="$(go1.20.14 env GOROOT)" gopherjs build -o server/main.js .
//
// The desktop and server commands build with the regular toolchain.
package main

import (
	"github.com/gopherjs/gopherjs/js"

	"github.com/simukka/tank-assault/common"
	"github.com/simukka/tank-assault/config"
	"github.com/simukka/tank-assault/game"
	"github.com/simukka/tank-assault/web"
)

func main() {
	log, err := common.NewLogger("info", true)
	if err != nil {
		panic(err)
	}

	// Get the canvas element
	doc := js.Global.Get("document")
	canvas := doc.Call("getElementById", "c")
	if canvas == nil || canvas == js.Undefined {
		panic("canvas element not found")
	}

	cfg := config.Default()
	canvas.Set("width", cfg.Arena.Width)
	canvas.Set("height", cfg.Arena.Height)
	ctx := canvas.Call("getContext", "2d")

	renderer := web.NewCanvasRenderer(ctx, cfg.Arena.Width, cfg.Arena.Height, web.Sprites{
		Player: "player-tank.png",
		Enemy:  "enemy-tank.png",
	}, log)

	g := game.New(cfg,
		game.WithLogger(log),
		game.WithRenderer(renderer),
		game.WithHUD(web.NewDOMHUD()),
		game.WithNotifier(web.NewDOMNotifier()),
		game.WithGameOver(web.GameOverScreen{}),
	)
	web.SetupInputHandlers(g, canvas, renderer.Overlay)

	driver := web.NewDriver(g, renderer, log)

	// Expose controls to the page
	js.Global.Set("TankAssault", map[string]interface{}{
		"start":   driver.Start,
		"restart": driver.Restart,
		"pause": func() bool {
			return g.TogglePause()
		},
		"session": func() string {
			return g.SessionID
		},
	})

	js.Global.Call("addEventListener", "beforeunload", func() {
		driver.Stop()
		_ = log.Sync()
	})

	select {}
}
