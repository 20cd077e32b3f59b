package game

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/simukka/tank-assault/common"
	"github.com/simukka/tank-assault/config"
)

// Game holds the complete state of one play session.
type Game struct {
	SessionID string

	// Entities
	Player       *Player
	Enemies      *Pool[Enemy]
	Bullets      *Pool[Bullet]
	EnemyBullets *Pool[Bullet]
	Particles    *Pool[Particle]
	Explosions   *Pool[Explosion]
	PowerUps     *Pool[PowerUp]

	// Progress
	Score   int
	Level   int
	Kills   int
	Spawner Spawner

	started  bool
	over     bool
	reported bool
	paused   bool
	frame    uint64
	now      time.Duration

	cfg     config.Config
	baseLog *zap.Logger
	log     *zap.Logger
	rng     common.Rand
	seeded  *common.SeededRNG // set when the game owns its RNG
	clock   common.Clock
	input   InputState

	notices []Notification
	outbox  []Notification

	renderer Renderer
	hud      HUDSink
	notifier Notifier
	gameOver GameOverSink
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger. Every record carries the session id.
func WithLogger(l *zap.Logger) Option {
	return func(g *Game) { g.baseLog = l }
}

// WithRand replaces the session-seeded RNG.
func WithRand(r common.Rand) Option {
	return func(g *Game) { g.rng = r }
}

// WithClock sets the clock Frame reads.
func WithClock(c common.Clock) Option {
	return func(g *Game) { g.clock = c }
}

func WithRenderer(r Renderer) Option {
	return func(g *Game) { g.renderer = r }
}

func WithHUD(h HUDSink) Option {
	return func(g *Game) { g.hud = h }
}

func WithNotifier(n Notifier) Option {
	return func(g *Game) { g.notifier = n }
}

func WithGameOver(s GameOverSink) Option {
	return func(g *Game) { g.gameOver = s }
}

// New creates a game that is ready but not started.
func New(cfg config.Config, opts ...Option) *Game {
	g := &Game{
		cfg:          cfg,
		Enemies:      NewPool[Enemy](32),
		Bullets:      NewPool[Bullet](64),
		EnemyBullets: NewPool[Bullet](64),
		Particles:    NewPool[Particle](256),
		Explosions:   NewPool[Explosion](32),
		PowerUps:     NewPool[PowerUp](8),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.baseLog == nil {
		g.baseLog = zap.NewNop()
	}
	if g.rng == nil {
		g.seeded = common.NewSeededRNG(0)
		g.rng = g.seeded
	}
	if g.clock == nil {
		g.clock = common.NewMonotonicClock()
	}
	g.reset()
	return g
}

// reset returns the world to its initial state under a fresh session id.
func (g *Game) reset() {
	g.SessionID = uuid.NewString()
	if g.seeded != nil {
		g.seeded.SetSeed(common.SeedFromString(g.SessionID))
	}
	g.log = g.baseLog.With(zap.String("session", g.SessionID))

	g.Player = NewPlayer(g.cfg.Player, g.cfg.Arena)
	g.Enemies.Clear()
	g.Bullets.Clear()
	g.EnemyBullets.Clear()
	g.Particles.Clear()
	g.Explosions.Clear()
	g.PowerUps.Clear()

	g.Score = 0
	g.Level = 1
	g.Kills = 0
	g.Spawner = Spawner{EnemyInterval: g.cfg.Spawn.EnemyInterval(1)}

	g.started = false
	g.over = false
	g.reported = false
	g.paused = false
	g.frame = 0
	g.notices = nil
	g.outbox = nil
	g.input.Reset()
}

// Start clears the not-started guard so ticks begin simulating.
func (g *Game) Start() {
	if g.started {
		return
	}
	g.started = true
	g.log.Info("session started")
}

// Restart discards the current session and starts a new one.
func (g *Game) Restart() {
	prev := g.SessionID
	g.reset()
	g.started = true
	g.log.Info("session restarted", zap.String("previous", prev))
}

// TogglePause pauses or resumes a running session and returns the new state.
// Held controls are released so nothing sticks across the pause.
func (g *Game) TogglePause() bool {
	if !g.started || g.over {
		return g.paused
	}
	g.paused = !g.paused
	g.input.Reset()
	g.log.Debug("pause toggled", zap.Bool("paused", g.paused))
	return g.paused
}

// Input returns the input state frontends write to.
func (g *Game) Input() *InputState {
	return &g.input
}

// Config returns the tuning the game was created with.
func (g *Game) Config() config.Config {
	return g.cfg
}

func (g *Game) Started() bool { return g.started }
func (g *Game) Over() bool    { return g.over }
func (g *Game) Paused() bool  { return g.paused }

// Now is the timestamp of the last simulated tick.
func (g *Game) Now() time.Duration {
	return g.now
}
