//go:build !js
// +build !js

// Command desktop runs the game natively in an ebiten window.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/simukka/tank-assault/common"
	"github.com/simukka/tank-assault/config"
	"github.com/simukka/tank-assault/game"
)

// errQuit ends the ebiten loop without an error exit.
var errQuit = errors.New("quit")

// keyControls maps ebiten keys to game controls. Both WASD and the arrows steer.
var keyControls = map[ebiten.Key]game.Control{
	ebiten.KeyW:          game.ControlUp,
	ebiten.KeyArrowUp:    game.ControlUp,
	ebiten.KeyS:          game.ControlDown,
	ebiten.KeyArrowDown:  game.ControlDown,
	ebiten.KeyA:          game.ControlLeft,
	ebiten.KeyArrowLeft:  game.ControlLeft,
	ebiten.KeyD:          game.ControlRight,
	ebiten.KeyArrowRight: game.ControlRight,
	ebiten.KeySpace:      game.ControlFire,
}

// App adapts the simulation to ebiten.Game.
type App struct {
	game   *game.Game
	screen *Screen
}

func (a *App) Update() error {
	g := a.game
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) && ebiten.IsKeyPressed(ebiten.KeyControl) {
		return errQuit
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF10) {
		a.screen.ShowStats = !a.screen.ShowStats
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		switch {
		case !g.Started():
			g.Start()
		case g.Over():
			a.screen.Reset()
			g.Restart()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.TogglePause()
	}

	a.pollInput()

	if !g.Started() || g.Paused() || g.Over() {
		a.screen.Render(g.Snapshot())
		return nil
	}
	g.Frame()
	return nil
}

// pollInput copies the current device state into the game input.
func (a *App) pollInput() {
	in := a.game.Input()

	held := map[game.Control]bool{}
	for key, c := range keyControls {
		if ebiten.IsKeyPressed(key) {
			held[c] = true
		}
	}
	held[game.ControlFire] = held[game.ControlFire] || ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	for _, c := range []game.Control{game.ControlUp, game.ControlDown, game.ControlLeft, game.ControlRight, game.ControlFire} {
		in.SetControl(c, held[c])
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyE) {
		in.RequestActivation()
	}

	x, y := ebiten.CursorPosition()
	in.SetPointer(float64(x), float64(y))
}

func (a *App) Draw(screen *ebiten.Image) {
	a.screen.Draw(screen)
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.screen.Width, a.screen.Height
}

func main() {
	configPath := flag.String("config", "", "YAML tuning file (defaults when empty)")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	log, err := common.NewLogger(*logLevel, true)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync()

	cfg := config.Default()
	if *configPath != "" {
		if cfg, err = config.LoadFile(*configPath); err != nil {
			log.Fatal("load config", zap.Error(err))
		}
	}

	screen := NewScreen(int(cfg.Arena.Width), int(cfg.Arena.Height))
	g := game.New(cfg,
		game.WithLogger(log),
		game.WithRenderer(screen),
		game.WithGameOver(screen),
	)
	app := &App{game: g, screen: screen}

	ebiten.SetWindowSize(screen.Width, screen.Height)
	ebiten.SetWindowTitle("Tank Assault")
	if err := ebiten.RunGame(app); err != nil && !errors.Is(err, errQuit) {
		log.Fatal("run", zap.Error(err))
	}
}
