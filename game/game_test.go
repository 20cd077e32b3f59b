package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simukka/tank-assault/common"
	"github.com/simukka/tank-assault/config"
)

// recorder captures everything the game publishes.
type recorder struct {
	frames  []Snapshot
	huds    []HUD
	notes   []Notification
	results []Result
}

func (r *recorder) Render(s Snapshot) { r.frames = append(r.frames, s) }
func (r *recorder) UpdateHUD(h HUD) { r.huds = append(r.huds, h) }
func (r *recorder) Notify(n Notification) { r.notes = append(r.notes, n) }
func (r *recorder) GameOver(res Result) { r.results = append(r.results, res) }
func (r *recorder) lastHUD() HUD { return r.huds[len(r.huds)-1] }
func (r *recorder) lastFrame() Snapshot { return r.frames[len(r.frames)-1] }
func (r *recorder) noteTexts() (out []string) {
	for _, n := range r.notes {
		out = append(out, n.Text)
	}
	return out
}

func newTestGame(t *testing.T, opts ...Option) *Game {
	t.Helper()
	opts = append([]Option{
		WithRand(common.NewSeededRNG(42)),
		WithClock(common.NewManualClock(0)),
	}, opts...)
	g := New(config.Default(), opts...)
	g.Start()
	return g
}

// addEnemy places a stationary enemy that never fires.
func addEnemy(g *Game, x, y, health float64) *Enemy {
	e := g.Enemies.Acquire()
	e.X = x
	e.Y = y
	e.Size = g.cfg.Enemy.Size
	e.Health = health
	e.MaxHealth = health
	e.Cooldown = time.Hour
	return e
}

// addBullet places a motionless bullet.
func addBullet(pool *Pool[Bullet], x, y, damage float64) *Bullet {
	b := pool.Acquire()
	b.X = x
	b.Y = y
	b.Radius = 6
	b.Damage = damage
	b.DamageMultiplier = 1
	return b
}

func addPowerUp(g *Game, kind PowerUpKind, x, y float64) *PowerUp {
	pu := g.PowerUps.Acquire()
	pu.Kind = kind
	pu.X = x
	pu.Y = y
	pu.Size = g.cfg.PowerUp.Size
	return pu
}

func TestNew_InitialState(t *testing.T) {
	g := New(config.Default())

	assert.False(t, g.Started())
	assert.False(t, g.Over())
	assert.NotEmpty(t, g.SessionID)
	assert.Equal(t, 1, g.Level)
	assert.Equal(t, 0, g.Score)
	assert.Equal(t, 0, g.Kills)
	assert.Equal(t, 500.0, g.Player.X)
	assert.Equal(t, 350.0, g.Player.Y)
	assert.Equal(t, 100.0, g.Player.Health)
	assert.Equal(t, 2*time.Second, g.Spawner.EnemyInterval)
}

func TestGame_ConfigSurvivesRestart(t *testing.T) {
	cfg := config.Default()
	cfg.Arena.Width = 1200
	cfg.Arena.Height = 800
	g := New(cfg)

	assert.Equal(t, cfg, g.Config())
	g.Start()
	g.Restart()
	assert.Equal(t, 1200.0, g.Config().Arena.Width)
	assert.Equal(t, 600.0, g.Player.X, "player respawns at the configured centre")
}

func TestTick_NotStartedIsSkipped(t *testing.T) {
	rec := &recorder{}
	g := New(config.Default(), WithRenderer(rec), WithHUD(rec))
	g.Input().SetControl(ControlRight, true)

	assert.True(t, g.Tick(time.Second))
	assert.Equal(t, 500.0, g.Player.X)
	assert.Empty(t, rec.frames)
	assert.Empty(t, rec.huds)
}

func TestTick_PublishesEveryFrame(t *testing.T) {
	rec := &recorder{}
	g := newTestGame(t, WithRenderer(rec), WithHUD(rec))

	for i := 1; i <= 3; i++ {
		assert.True(t, g.Tick(time.Duration(i)*16*time.Millisecond))
	}

	require.Len(t, rec.frames, 3)
	require.Len(t, rec.huds, 3)
	assert.Equal(t, uint64(3), rec.lastFrame().Frame)
	assert.Equal(t, 48*time.Millisecond, rec.lastFrame().Time)
}

func TestFrame_ReadsClock(t *testing.T) {
	clock := common.NewManualClock(0)
	g := newTestGame(t, WithClock(clock))

	clock.Set(5 * time.Second)
	g.Frame()
	assert.Equal(t, 5*time.Second, g.Now())
}

func TestTick_TurretAndFireScenario(t *testing.T) {
	g := newTestGame(t)
	in := g.Input()
	in.SetPointer(600, 350)
	in.SetFiring(true)

	g.Tick(time.Second)

	p := g.Player
	assert.Equal(t, 500.0, p.X)
	assert.Equal(t, 350.0, p.Y)
	assert.InDelta(t, 0, p.TurretAngle, 1e-9)

	require.Equal(t, 1, g.Bullets.Len())
	b := g.Bullets.At(0)
	// fired at the muzzle (530, 350) and moved one frame
	assert.InDelta(t, 538, b.X, 1e-9)
	assert.InDelta(t, 350, b.Y, 1e-9)
	assert.InDelta(t, 8, b.VX, 1e-9)
	assert.InDelta(t, 0, b.VY, 1e-9)
}

func TestTick_ClickFiresOnceAfterRelease(t *testing.T) {
	g := newTestGame(t)
	in := g.Input()
	in.SetPointer(600, 350)
	in.SetFiring(true)
	in.SetFiring(false)

	g.Tick(time.Second)
	assert.Equal(t, 1, g.Bullets.Len())

	g.Tick(2 * time.Second)
	assert.Equal(t, 1, g.Bullets.Len(), "released button must not keep firing")
}

func TestTick_HoldToFireRespectsInterval(t *testing.T) {
	g := newTestGame(t)
	in := g.Input()
	in.SetPointer(600, 350)
	in.SetFiring(true)

	g.Tick(time.Second)
	g.Tick(time.Second + 100*time.Millisecond)
	assert.Equal(t, 1, g.Bullets.Len())

	g.Tick(time.Second + 300*time.Millisecond)
	assert.Equal(t, 2, g.Bullets.Len())
}

func TestTick_BulletLeavingArenaIsRemoved(t *testing.T) {
	g := newTestGame(t)
	b := addBullet(g.Bullets, 996, 100, 25)
	b.VX = 8

	g.Tick(time.Second)
	assert.Equal(t, 0, g.Bullets.Len())
}

func TestSpawner_PrimesOnFirstTick(t *testing.T) {
	g := newTestGame(t)

	g.Tick(100 * time.Second)
	assert.Equal(t, 0, g.Enemies.Len(), "first tick only starts the timers")
	assert.Equal(t, 0, g.PowerUps.Len())

	g.Tick(102 * time.Second)
	assert.Equal(t, 0, g.Enemies.Len(), "interval must be strictly exceeded")

	g.Tick(102*time.Second + time.Millisecond)
	assert.Equal(t, 1, g.Enemies.Len())
}

func TestSpawner_EnemiesAppearOutsideArena(t *testing.T) {
	g := newTestGame(t)
	arena := g.cfg.Arena

	for i := 0; i < 200; i++ {
		e := g.SpawnEnemy(0)
		outside := e.X < 0 || e.X > arena.Width || e.Y < 0 || e.Y > arena.Height
		assert.True(t, outside, "enemy at (%v, %v) spawned inside the arena", e.X, e.Y)
		assert.GreaterOrEqual(t, e.X, -e.Size/2)
		assert.LessOrEqual(t, e.X, arena.Width+e.Size/2)
		assert.GreaterOrEqual(t, e.Y, -e.Size/2)
		assert.LessOrEqual(t, e.Y, arena.Height+e.Size/2)
	}
}

func TestSpawner_EnemyStatsScaleWithLevel(t *testing.T) {
	g := newTestGame(t)

	e := g.SpawnEnemy(0)
	assert.Equal(t, 50.0, e.Health)
	assert.Equal(t, 50.0, e.MaxHealth)
	assert.GreaterOrEqual(t, e.Speed, 1.0)
	assert.LessOrEqual(t, e.Speed, 3.0)
	assert.Equal(t, 2000*time.Millisecond, e.Cooldown)

	g.Level = 5
	e = g.SpawnEnemy(0)
	assert.Equal(t, 90.0, e.Health)
	assert.Equal(t, 1600*time.Millisecond, e.Cooldown)

	g.Level = 40
	e = g.SpawnEnemy(0)
	assert.Equal(t, 3.0, e.Speed)
	assert.Equal(t, 600*time.Millisecond, e.Cooldown)
}

func TestSpawner_PowerUpsInsideMargin(t *testing.T) {
	g := newTestGame(t)
	arena := g.cfg.Arena
	seen := map[PowerUpKind]bool{}

	for i := 0; i < 500; i++ {
		pu := g.SpawnPowerUp()
		seen[pu.Kind] = true
		assert.GreaterOrEqual(t, pu.X, 50.0)
		assert.LessOrEqual(t, pu.X, arena.Width-50)
		assert.GreaterOrEqual(t, pu.Y, 50.0)
		assert.LessOrEqual(t, pu.Y, arena.Height-50)
	}
	for _, k := range PowerUpKinds {
		assert.True(t, seen[k], "kind %v never spawned", k)
	}
}

func TestSpawner_PowerUpInterval(t *testing.T) {
	g := newTestGame(t)
	g.Tick(0)
	g.Tick(10 * time.Second)
	assert.Equal(t, time.Duration(0), g.Spawner.LastPowerUp)
	g.Tick(10*time.Second + time.Millisecond)
	assert.Equal(t, 10*time.Second+time.Millisecond, g.Spawner.LastPowerUp)
}

func TestCollide_BulletDestroysEnemyOnce(t *testing.T) {
	g := newTestGame(t)
	addEnemy(g, 300, 300, 25)
	addBullet(g.Bullets, 300, 300, 25)
	addBullet(g.Bullets, 301, 300, 25)

	g.collide(time.Second)

	assert.Equal(t, 0, g.Enemies.Len())
	assert.Equal(t, 1, g.Kills)
	assert.Equal(t, 100, g.Score)
	assert.Equal(t, 1, g.Bullets.Len(), "second bullet has nothing left to hit")
	assert.Equal(t, 1, g.Explosions.Len())
	assert.Equal(t, g.cfg.Effects.BurstParticles, g.Particles.Len())
}

func TestCollide_BulletHitsOnlyFirstEnemy(t *testing.T) {
	g := newTestGame(t)
	first := addEnemy(g, 300, 300, 50)
	second := addEnemy(g, 305, 300, 50)
	addBullet(g.Bullets, 302, 300, 25)

	g.collide(time.Second)

	assert.Equal(t, 25.0, first.Health)
	assert.Equal(t, 50.0, second.Health)
	assert.Equal(t, 0, g.Bullets.Len())
	assert.Equal(t, 2, g.Enemies.Len())
}

func TestCollide_DamageMultiplier(t *testing.T) {
	g := newTestGame(t)
	e := addEnemy(g, 300, 300, 100)
	b := addBullet(g.Bullets, 300, 300, 25)
	b.DamageMultiplier = 2

	g.collide(time.Second)
	assert.Equal(t, 50.0, e.Health)
}

func TestCollide_ScoreUsesCurrentLevel(t *testing.T) {
	g := newTestGame(t)
	g.Level = 3
	g.Kills = 20
	addEnemy(g, 300, 300, 10)
	addBullet(g.Bullets, 300, 300, 25)

	g.collide(time.Second)
	assert.Equal(t, 300, g.Score)
	assert.Equal(t, 21, g.Kills)
}

func TestCollide_EnemyBulletHurtsPlayer(t *testing.T) {
	g := newTestGame(t)
	p := g.Player
	addBullet(g.EnemyBullets, p.X+10, p.Y, 10)

	g.collide(time.Second)

	assert.Equal(t, 90.0, p.Health)
	assert.Equal(t, 0, g.EnemyBullets.Len())
	assert.Equal(t, 1, g.Explosions.Len())
}

func TestCollide_ShieldHalvesDamage(t *testing.T) {
	g := newTestGame(t)
	p := g.Player
	p.ActivatePowerUp(ShieldBoost, 0, g.cfg.PowerUp)
	addBullet(g.EnemyBullets, p.X, p.Y, 10)

	g.collide(time.Second)
	assert.Equal(t, 95.0, p.Health)
}

func TestCollide_InvulnerablePlayerIgnoresBullets(t *testing.T) {
	g := newTestGame(t)
	p := g.Player
	p.InvulnerableUntil = 2 * time.Second
	addBullet(g.EnemyBullets, p.X, p.Y, 10)

	g.collide(time.Second)
	assert.Equal(t, 100.0, p.Health)
	assert.Equal(t, 1, g.EnemyBullets.Len(), "bullets are not consumed while invulnerable")

	g.collide(2 * time.Second)
	assert.Equal(t, 90.0, p.Health)
}

func TestCollide_HealthClampsAndGameEnds(t *testing.T) {
	rec := &recorder{}
	g := newTestGame(t, WithGameOver(rec), WithHUD(rec))
	p := g.Player
	p.Health = 5
	addBullet(g.EnemyBullets, p.X, p.Y, 10)
	addBullet(g.EnemyBullets, p.X+1, p.Y, 10)

	assert.False(t, g.Tick(time.Second))

	assert.Equal(t, 0.0, p.Health)
	assert.True(t, g.Over())
	assert.Equal(t, 1, g.EnemyBullets.Len(), "damage stops once the player is dead")
	assert.Equal(t, 0, rec.lastHUD().Health)
	require.Len(t, rec.results, 1)
	assert.Equal(t, Result{SessionID: g.SessionID, Score: 0, Level: 1, Kills: 0}, rec.results[0])

	// the world stays frozen
	assert.False(t, g.Tick(2*time.Second))
	assert.Equal(t, time.Second, g.Now())
	assert.Len(t, rec.results, 1)
}

func TestCollide_PickupAppliesInDyingTick(t *testing.T) {
	g := newTestGame(t)
	p := g.Player
	p.Health = 5
	addBullet(g.EnemyBullets, p.X, p.Y, 10)
	addPowerUp(g, DamageBoost, p.X, p.Y)

	g.collide(time.Second)

	assert.True(t, g.Over())
	assert.Equal(t, DamageBoost, p.PowerUp)
	assert.Equal(t, 0, g.PowerUps.Len())
}

func TestCollide_HealthPickupScenario(t *testing.T) {
	rec := &recorder{}
	g := newTestGame(t, WithNotifier(rec))
	p := g.Player
	p.Health = 70
	addPowerUp(g, HealthPack, p.X+20, p.Y)

	g.Tick(time.Second)

	assert.Equal(t, 100.0, p.Health)
	assert.Equal(t, 0, g.PowerUps.Len())
	assert.Equal(t, NoPowerUp, p.PowerUp, "health is not a timed power-up")
	assert.Equal(t, []string{"Health collected"}, rec.noteTexts())
}

func TestCollide_PowerUpOutOfReach(t *testing.T) {
	g := newTestGame(t)
	p := g.Player
	addPowerUp(g, SpeedBoost, p.X+40, p.Y)

	g.collide(time.Second)
	assert.Equal(t, 1, g.PowerUps.Len())
	assert.Equal(t, NoPowerUp, p.PowerUp)
}

func TestCollide_PickupOrderFollowsPool(t *testing.T) {
	tests := []struct {
		name      string
		kinds     []PowerUpKind
		active    PowerUpKind
		speed     float64
		interval  time.Duration
		healthIn  float64
		healthOut float64
	}{
		{"rapid then speed", []PowerUpKind{RapidFire, SpeedBoost}, SpeedBoost, 6, 300 * time.Millisecond, 100, 100},
		{"speed then rapid", []PowerUpKind{SpeedBoost, RapidFire}, RapidFire, 4, 100 * time.Millisecond, 100, 100},
		{"health then damage", []PowerUpKind{HealthPack, DamageBoost}, DamageBoost, 4, 300 * time.Millisecond, 50, 80},
		{"damage then health", []PowerUpKind{DamageBoost, HealthPack}, DamageBoost, 4, 300 * time.Millisecond, 50, 80},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recorder{}
			g := newTestGame(t, WithNotifier(rec))
			p := g.Player
			p.Health = tt.healthIn
			// the farther power-up comes first in the pool
			addPowerUp(g, tt.kinds[0], p.X+30, p.Y)
			addPowerUp(g, tt.kinds[1], p.X, p.Y)

			g.Tick(time.Second)

			assert.Equal(t, tt.active, p.PowerUp)
			assert.Equal(t, tt.speed, p.Speed)
			assert.Equal(t, tt.interval, p.FireInterval)
			assert.Equal(t, tt.healthOut, p.Health)
			assert.Equal(t, 0, g.PowerUps.Len())
			require.Len(t, rec.notes, 2)
			assert.Contains(t, rec.notes[0].Text, tt.kinds[0].Label())
			assert.Contains(t, rec.notes[1].Text, tt.kinds[1].Label())
		})
	}
}

func TestLevelFor(t *testing.T) {
	tests := []struct {
		kills int
		want  int
	}{
		{0, 1},
		{1, 1},
		{9, 1},
		{10, 2},
		{19, 2},
		{25, 3},
		{99, 10},
		{1000, 101},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, LevelFor(tt.kills, 10), "kills=%d", tt.kills)
	}
	assert.Equal(t, 1, LevelFor(-1, 10))
}

func TestLevelUp_OnTenthKill(t *testing.T) {
	rec := &recorder{}
	g := newTestGame(t, WithNotifier(rec))
	g.Kills = 9
	addEnemy(g, 300, 300, 10)
	addBullet(g.Bullets, 300, 300, 25)

	g.Tick(5 * time.Second)

	assert.Equal(t, 10, g.Kills)
	assert.Equal(t, 2, g.Level)
	assert.Equal(t, 100, g.Score, "kill is scored at the level it was made in")
	assert.Equal(t, 1900*time.Millisecond, g.Spawner.EnemyInterval)
	assert.Equal(t, 7*time.Second, g.Player.InvulnerableUntil)
	assert.True(t, g.Player.Invulnerable(6*time.Second))
	assert.Equal(t, []string{"Level 2"}, rec.noteTexts())
	assert.Equal(t, g.cfg.Effects.BurstParticles+g.cfg.Effects.LevelUpParticles, g.Particles.Len())
}

func TestLevelUp_NeverDecreases(t *testing.T) {
	g := newTestGame(t)
	g.Level = 4
	g.Kills = 5
	g.checkLevelUp(time.Second)
	assert.Equal(t, 4, g.Level)
}

func TestLevelUp_DifficultyMonotonic(t *testing.T) {
	g := newTestGame(t)
	prev := g.Spawner.EnemyInterval
	for kills := 1; kills <= 300; kills++ {
		g.Kills = kills
		g.checkLevelUp(0)
		assert.LessOrEqual(t, g.Spawner.EnemyInterval, prev)
		assert.GreaterOrEqual(t, g.Spawner.EnemyInterval, g.cfg.Spawn.MinInterval)
		prev = g.Spawner.EnemyInterval
	}
	assert.Equal(t, 31, g.Level)
}

func TestPowerUp_ExpiresDuringTick(t *testing.T) {
	rec := &recorder{}
	g := newTestGame(t, WithNotifier(rec))
	p := g.Player
	addPowerUp(g, SpeedBoost, p.X, p.Y)

	g.Tick(time.Second)
	assert.Equal(t, SpeedBoost, p.PowerUp)
	assert.Equal(t, 6.0, p.Speed)

	g.Tick(10 * time.Second)
	assert.Equal(t, SpeedBoost, p.PowerUp)

	g.Tick(11 * time.Second)
	assert.Equal(t, NoPowerUp, p.PowerUp)
	assert.Equal(t, 4.0, p.Speed)
	assert.Equal(t, []string{"Speed Boost activated", "Speed Boost expired"}, rec.noteTexts())
}

func TestPowerUp_ReactivationKeepsExpiry(t *testing.T) {
	g := newTestGame(t)
	p := g.Player
	addPowerUp(g, RapidFire, p.X, p.Y)
	g.Tick(time.Second)
	expires := p.PowerUpExpires

	p.FireInterval = time.Second
	g.Input().SetControl(ControlActivate, true)
	g.Tick(2 * time.Second)

	assert.Equal(t, RapidFire, p.PowerUp)
	assert.Equal(t, 100*time.Millisecond, p.FireInterval)
	assert.Equal(t, expires, p.PowerUpExpires)
}

func TestHUD_Values(t *testing.T) {
	g := newTestGame(t)
	g.Tick(time.Second)
	g.Player.Health = 42.7
	addEnemy(g, 10, 10, 50)

	h := g.HUD()
	assert.Equal(t, 42, h.Health)
	assert.Equal(t, 100, h.MaxHealth)
	assert.Equal(t, 1, h.Enemies)
	assert.Equal(t, "∞", h.RemainingLabel())

	g.Player.ActivatePowerUp(DamageBoost, time.Second, g.cfg.PowerUp)
	h = g.HUD()
	assert.Equal(t, DamageBoost, h.PowerUp)
	assert.Equal(t, 10*time.Second, h.Remaining)
	assert.Equal(t, "10s", h.RemainingLabel())

	g.Player.Health = -3
	assert.Equal(t, 0, g.HUD().Health)
}

func TestRemainingLabel_RoundsUp(t *testing.T) {
	h := HUD{PowerUp: SpeedBoost, Remaining: 2100 * time.Millisecond}
	assert.Equal(t, "3s", h.RemainingLabel())
}

func TestSnapshot_IsACopy(t *testing.T) {
	g := newTestGame(t)
	addEnemy(g, 100, 100, 50)
	addBullet(g.Bullets, 10, 10, 25)

	s := g.Snapshot()
	s.Enemies[0].Health = 1
	s.Bullets[0].X = 999
	s.Player.Health = 1

	assert.Equal(t, 50.0, g.Enemies.At(0).Health)
	assert.Equal(t, 10.0, g.Bullets.At(0).X)
	assert.Equal(t, 100.0, g.Player.Health)
	assert.Equal(t, g.SessionID, s.SessionID)
	assert.True(t, s.Started)
}

func TestNotifications_ExpireFromSnapshot(t *testing.T) {
	g := newTestGame(t)
	g.Tick(time.Second)
	g.notify(time.Second, "hello", ColorLevelUp)

	g.Tick(2 * time.Second)
	require.Len(t, g.Snapshot().Notifications, 1)

	g.Tick(3 * time.Second)
	assert.Empty(t, g.Snapshot().Notifications)
}

func TestTogglePause(t *testing.T) {
	g := newTestGame(t)
	g.Input().SetControl(ControlRight, true)
	g.Tick(time.Second)
	x := g.Player.X

	assert.True(t, g.TogglePause())
	assert.True(t, g.Tick(2*time.Second))
	assert.Equal(t, x, g.Player.X)
	assert.False(t, g.Input().Right, "pausing releases held keys")

	assert.False(t, g.TogglePause())
	g.Input().SetControl(ControlRight, true)
	g.Tick(3 * time.Second)
	assert.Greater(t, g.Player.X, x)
}

func TestTogglePause_IgnoredBeforeStart(t *testing.T) {
	g := New(config.Default())
	assert.False(t, g.TogglePause())
}

func TestRestart_ResetsWorld(t *testing.T) {
	g := newTestGame(t)
	first := g.SessionID
	g.Score = 1200
	g.Kills = 12
	g.Level = 2
	g.Player.Health = 0
	g.over = true
	addEnemy(g, 10, 10, 50)
	addBullet(g.EnemyBullets, 1, 1, 10)

	g.Restart()

	assert.NotEqual(t, first, g.SessionID)
	assert.True(t, g.Started())
	assert.False(t, g.Over())
	assert.Equal(t, 0, g.Score)
	assert.Equal(t, 0, g.Kills)
	assert.Equal(t, 1, g.Level)
	assert.Equal(t, 100.0, g.Player.Health)
	assert.Equal(t, 0, g.Enemies.Len())
	assert.Equal(t, 0, g.EnemyBullets.Len())
	assert.True(t, g.Tick(time.Second))
}

func TestSessions_AreIndependent(t *testing.T) {
	a := newTestGame(t)
	b := newTestGame(t)
	a.Input().SetControl(ControlLeft, true)

	a.Tick(time.Second)
	b.Tick(time.Second)

	assert.Less(t, a.Player.X, b.Player.X)
	assert.NotEqual(t, a.SessionID, b.SessionID)
}
