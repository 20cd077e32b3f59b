package game

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/simukka/tank-assault/config"
)

// Renderer draws a frame.
type Renderer interface {
	Render(s Snapshot)
}

// HUDSink displays the score panel.
type HUDSink interface {
	UpdateHUD(h HUD)
}

// Notifier shows transient messages.
type Notifier interface {
	Notify(n Notification)
}

// GameOverSink shows the end screen.
type GameOverSink interface {
	GameOver(r Result)
}

// Notification is a transient message shown for Duration from At.
type Notification struct {
	Text     string
	Color    color.RGBA
	At       time.Duration
	Duration time.Duration
}

// Visible reports whether the message is still on screen at now.
func (n Notification) Visible(now time.Duration) bool {
	return now < n.At+n.Duration
}

// HUD holds the values shown in the score panel.
type HUD struct {
	Score     int
	Health    int // floored and never negative
	MaxHealth int
	Enemies   int
	Level     int
	Kills     int
	PowerUp   PowerUpKind
	Remaining time.Duration
}

// RemainingLabel is the power-up time left in whole seconds, or ∞ when no
// power-up is active.
func (h HUD) RemainingLabel() string {
	if h.PowerUp == NoPowerUp {
		return "∞"
	}
	return fmt.Sprintf("%ds", int(math.Ceil(h.Remaining.Seconds())))
}

// Result is the final tally reported when the game ends.
type Result struct {
	SessionID string
	Score     int
	Level     int
	Kills     int
}

// Snapshot is a copy of the world for one frame. Mutating it does not
// affect the game.
type Snapshot struct {
	SessionID string
	Frame     uint64
	Time      time.Duration
	Arena     config.Arena

	Player       Player
	Invulnerable bool
	Enemies      []Enemy
	Bullets      []Bullet
	EnemyBullets []Bullet
	Particles    []Particle
	Explosions   []Explosion
	PowerUps     []PowerUp

	Notifications []Notification
	HUD           HUD

	Started bool
	Over    bool
	Paused  bool
}

// Snapshot copies the current world state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		SessionID:     g.SessionID,
		Frame:         g.frame,
		Time:          g.now,
		Arena:         g.cfg.Arena,
		Player:        *g.Player,
		Invulnerable:  g.Player.Invulnerable(g.now),
		Enemies:       g.Enemies.Values(),
		Bullets:       g.Bullets.Values(),
		EnemyBullets:  g.EnemyBullets.Values(),
		Particles:     g.Particles.Values(),
		Explosions:    g.Explosions.Values(),
		PowerUps:      g.PowerUps.Values(),
		Notifications: append([]Notification(nil), g.notices...),
		HUD:           g.HUD(),
		Started:       g.started,
		Over:          g.over,
		Paused:        g.paused,
	}
}

// HUD returns the current score panel values.
func (g *Game) HUD() HUD {
	p := g.Player
	return HUD{
		Score:     g.Score,
		Health:    int(math.Max(0, math.Floor(p.Health))),
		MaxHealth: int(p.MaxHealth),
		Enemies:   g.Enemies.Len(),
		Level:     g.Level,
		Kills:     g.Kills,
		PowerUp:   p.PowerUp,
		Remaining: p.PowerUpRemaining(g.now),
	}
}

// Result returns the current tally.
func (g *Game) Result() Result {
	return Result{
		SessionID: g.SessionID,
		Score:     g.Score,
		Level:     g.Level,
		Kills:     g.Kills,
	}
}

// notify queues a message for the notifier and the snapshot.
func (g *Game) notify(now time.Duration, text string, c color.RGBA) {
	n := Notification{
		Text:     text,
		Color:    c,
		At:       now,
		Duration: g.cfg.HUD.NotificationDuration,
	}
	g.notices = append(g.notices, n)
	g.outbox = append(g.outbox, n)
}

// expireNotices drops messages whose display time has passed.
func (g *Game) expireNotices(now time.Duration) {
	kept := g.notices[:0]
	for _, n := range g.notices {
		if n.Visible(now) {
			kept = append(kept, n)
		}
	}
	g.notices = kept
}
