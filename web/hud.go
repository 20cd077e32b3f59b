//go:build js
// +build js

package web

import (
	"strconv"

	"github.com/gopherjs/gopherjs/js"

	"github.com/simukka/tank-assault/game"
)

// Element ids the page is expected to provide. Missing elements are skipped.
const (
	ScoreID         = "score"
	HealthID        = "health"
	EnemyCountID    = "enemyCount"
	LevelID         = "level"
	PowerUpID       = "powerUp"
	PowerUpTimeID   = "powerUpTime"
	NotificationsID = "notifications"
	GameOverID      = "gameOver"
	FinalScoreID    = "finalScore"
	FinalLevelID    = "finalLevel"
	FinalKillsID    = "finalKills"
)

func byID(id string) *js.Object {
	el := js.Global.Get("document").Call("getElementById", id)
	if el == nil || el == js.Undefined {
		return nil
	}
	return el
}

func setText(el *js.Object, text string) {
	if el != nil {
		el.Set("textContent", text)
	}
}

// DOMHUD writes HUD values into page elements.
type DOMHUD struct {
	score, health, enemies, level, powerUp, remaining *js.Object
	last                                              game.HUD
	drawn                                             bool
}

// NewDOMHUD looks up the HUD elements.
func NewDOMHUD() *DOMHUD {
	return &DOMHUD{
		score:     byID(ScoreID),
		health:    byID(HealthID),
		enemies:   byID(EnemyCountID),
		level:     byID(LevelID),
		powerUp:   byID(PowerUpID),
		remaining: byID(PowerUpTimeID),
	}
}

// UpdateHUD implements game.HUDSink. Unchanged values are not rewritten.
func (h *DOMHUD) UpdateHUD(v game.HUD) {
	if h.drawn && v == h.last {
		return
	}
	h.last = v
	h.drawn = true

	setText(h.score, strconv.Itoa(v.Score))
	setText(h.health, strconv.Itoa(v.Health))
	setText(h.enemies, strconv.Itoa(v.Enemies))
	setText(h.level, strconv.Itoa(v.Level))
	setText(h.powerUp, v.PowerUp.Label())
	setText(h.remaining, v.RemainingLabel())
}

// DOMNotifier shows notifications as CSS-animated elements.
type DOMNotifier struct {
	container *js.Object
}

func NewDOMNotifier() *DOMNotifier {
	return &DOMNotifier{container: byID(NotificationsID)}
}

// Notify implements game.Notifier. The element is removed after the
// notification's duration.
func (n *DOMNotifier) Notify(msg game.Notification) {
	if n.container == nil {
		return
	}
	el := js.Global.Get("document").Call("createElement", "div")
	el.Set("className", "notification show")
	el.Set("textContent", msg.Text)
	el.Get("style").Set("color", rgba(msg.Color, 1))
	n.container.Call("appendChild", el)

	js.Global.Call("setTimeout", func() {
		el.Get("classList").Call("remove", "show")
		el.Call("remove")
	}, msg.Duration.Milliseconds())
}

// GameOverScreen shows the final tally.
type GameOverScreen struct{}

// GameOver implements game.GameOverSink.
func (GameOverScreen) GameOver(r game.Result) {
	setText(byID(FinalScoreID), strconv.Itoa(r.Score))
	setText(byID(FinalLevelID), strconv.Itoa(r.Level))
	setText(byID(FinalKillsID), strconv.Itoa(r.Kills))
	if el := byID(GameOverID); el != nil {
		el.Get("classList").Call("add", "show")
	}
}

// Hide removes the end screen.
func (GameOverScreen) Hide() {
	if el := byID(GameOverID); el != nil {
		el.Get("classList").Call("remove", "show")
	}
}
