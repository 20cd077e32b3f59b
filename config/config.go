// Package config holds the gameplay tuning shared by every frontend.
package config

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config is the complete gameplay tuning.
type Config struct {
	Arena       Arena       `yaml:"arena"`
	Player      Player      `yaml:"player"`
	Enemy       Enemy       `yaml:"enemy"`
	Spawn       Spawn       `yaml:"spawn"`
	PowerUp     PowerUp     `yaml:"power_up"`
	Progression Progression `yaml:"progression"`
	Effects     Effects     `yaml:"effects"`
	HUD         HUD         `yaml:"hud"`
}

// Arena is the fixed play area.
type Arena struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type Player struct {
	Size         float64       `yaml:"size"`
	Speed        float64       `yaml:"speed"` // pixels per frame
	MaxHealth    float64       `yaml:"max_health"`
	FireInterval time.Duration `yaml:"fire_interval"`
	MuzzleOffset float64       `yaml:"muzzle_offset"`
	BulletSpeed  float64       `yaml:"bullet_speed"`
	BulletRadius float64       `yaml:"bullet_radius"`
	BulletDamage float64       `yaml:"bullet_damage"`
}

type Enemy struct {
	Size           float64       `yaml:"size"`
	BaseHealth     float64       `yaml:"base_health"`
	HealthPerLevel float64       `yaml:"health_per_level"`
	BaseSpeed      float64       `yaml:"base_speed"`
	SpeedJitter    float64       `yaml:"speed_jitter"`
	SpeedPerLevel  float64       `yaml:"speed_per_level"`
	MaxSpeed       float64       `yaml:"max_speed"`
	BaseCooldown   time.Duration `yaml:"base_cooldown"`
	CooldownStep   time.Duration `yaml:"cooldown_step"`
	MinCooldown    time.Duration `yaml:"min_cooldown"`
	PursuitRange   float64       `yaml:"pursuit_range"`
	FireRange      float64       `yaml:"fire_range"`
	OrbitOffset    float64       `yaml:"orbit_offset"` // radians added to the direct angle while orbiting
	BulletSpeed    float64       `yaml:"bullet_speed"`
	BulletRadius   float64       `yaml:"bullet_radius"`
	MuzzleOffset   float64       `yaml:"muzzle_offset"`
	BulletDamage   float64       `yaml:"bullet_damage"`
	PredictiveAim  bool          `yaml:"predictive_aim"`
}

type Spawn struct {
	BaseInterval    time.Duration `yaml:"base_interval"`
	IntervalStep    time.Duration `yaml:"interval_step"`
	MinInterval     time.Duration `yaml:"min_interval"`
	PowerUpInterval time.Duration `yaml:"power_up_interval"`
	PowerUpMargin   float64       `yaml:"power_up_margin"`
}

type PowerUp struct {
	Size             float64       `yaml:"size"`
	Duration         time.Duration `yaml:"duration"`
	SpeedMultiplier  float64       `yaml:"speed_multiplier"`
	DamageMultiplier float64       `yaml:"damage_multiplier"`
	ShieldFactor     float64       `yaml:"shield_factor"` // fraction of incoming damage taken
	RapidInterval    time.Duration `yaml:"rapid_interval"`
	RapidSpread      float64       `yaml:"rapid_spread"`
	HealAmount       float64       `yaml:"heal_amount"`
}

type Progression struct {
	KillsPerLevel   int           `yaml:"kills_per_level"`
	ScorePerKill    int           `yaml:"score_per_kill"`
	Invulnerability time.Duration `yaml:"invulnerability"`
}

type Effects struct {
	BurstParticles   int     `yaml:"burst_particles"`
	LevelUpParticles int     `yaml:"level_up_particles"`
	PickupParticles  int     `yaml:"pickup_particles"`
	ParticleLife     int     `yaml:"particle_life"` // frames
	ParticleSpeed    float64 `yaml:"particle_speed"`
	ExplosionLife    int     `yaml:"explosion_life"` // frames
	ExplosionEase    float64 `yaml:"explosion_ease"`
	ExplosionRadius  float64 `yaml:"explosion_radius"`
	HitRadius        float64 `yaml:"hit_radius"`
}

type HUD struct {
	NotificationDuration time.Duration `yaml:"notification_duration"`
}

// Default returns the canonical tuning.
func Default() Config {
	return Config{
		Arena: Arena{Width: 1000, Height: 700},
		Player: Player{
			Size:         50,
			Speed:        4,
			MaxHealth:    100,
			FireInterval: 300 * time.Millisecond,
			MuzzleOffset: 30,
			BulletSpeed:  8,
			BulletRadius: 6,
			BulletDamage: 25,
		},
		Enemy: Enemy{
			Size:           35,
			BaseHealth:     50,
			HealthPerLevel: 10,
			BaseSpeed:      1,
			SpeedJitter:    0.5,
			SpeedPerLevel:  0.25,
			MaxSpeed:       3,
			BaseCooldown:   2000 * time.Millisecond,
			CooldownStep:   100 * time.Millisecond,
			MinCooldown:    600 * time.Millisecond,
			PursuitRange:   200,
			FireRange:      400,
			OrbitOffset:    math.Pi / 2,
			BulletSpeed:    4,
			BulletRadius:   6,
			MuzzleOffset:   20,
			BulletDamage:   10,
			PredictiveAim:  true,
		},
		Spawn: Spawn{
			BaseInterval:    2000 * time.Millisecond,
			IntervalStep:    100 * time.Millisecond,
			MinInterval:     500 * time.Millisecond,
			PowerUpInterval: 10 * time.Second,
			PowerUpMargin:   50,
		},
		PowerUp: PowerUp{
			Size:             30,
			Duration:         10 * time.Second,
			SpeedMultiplier:  1.5,
			DamageMultiplier: 2,
			ShieldFactor:     0.5,
			RapidInterval:    100 * time.Millisecond,
			RapidSpread:      0.2,
			HealAmount:       30,
		},
		Progression: Progression{
			KillsPerLevel:   10,
			ScorePerKill:    100,
			Invulnerability: 2 * time.Second,
		},
		Effects: Effects{
			BurstParticles:   15,
			LevelUpParticles: 40,
			PickupParticles:  10,
			ParticleLife:     60,
			ParticleSpeed:    6,
			ExplosionLife:    30,
			ExplosionEase:    0.2,
			ExplosionRadius:  40,
			HitRadius:        20,
		},
		HUD: HUD{NotificationDuration: 2 * time.Second},
	}
}

// Load decodes YAML from r on top of the defaults and validates the result.
func Load(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadFile reads and decodes the YAML file at path.
func LoadFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()
	return Load(f)
}

// Validate reports the first field that cannot drive a simulation.
func (c Config) Validate() error {
	checks := []struct {
		ok    bool
		field string
	}{
		{c.Arena.Width > 0 && c.Arena.Height > 0, "arena"},
		{c.Player.Size > 0, "player.size"},
		{c.Player.Speed > 0, "player.speed"},
		{c.Player.MaxHealth > 0, "player.max_health"},
		{c.Player.FireInterval > 0, "player.fire_interval"},
		{c.Player.BulletSpeed > 0, "player.bullet_speed"},
		{c.Enemy.Size > 0, "enemy.size"},
		{c.Enemy.BaseHealth > 0, "enemy.base_health"},
		{c.Enemy.HealthPerLevel >= 0, "enemy.health_per_level"},
		{c.Enemy.SpeedPerLevel >= 0, "enemy.speed_per_level"},
		{c.Enemy.MaxSpeed > 0, "enemy.max_speed"},
		{c.Enemy.CooldownStep >= 0, "enemy.cooldown_step"},
		{c.Enemy.MinCooldown > 0 && c.Enemy.MinCooldown <= c.Enemy.BaseCooldown, "enemy.min_cooldown"},
		{c.Enemy.BulletSpeed > 0, "enemy.bullet_speed"},
		{c.Spawn.IntervalStep >= 0, "spawn.interval_step"},
		{c.Spawn.MinInterval > 0 && c.Spawn.MinInterval <= c.Spawn.BaseInterval, "spawn.min_interval"},
		{c.Spawn.PowerUpInterval > 0, "spawn.power_up_interval"},
		{2*c.Spawn.PowerUpMargin < math.Min(c.Arena.Width, c.Arena.Height), "spawn.power_up_margin"},
		{c.PowerUp.Size > 0, "power_up.size"},
		{c.PowerUp.Duration > 0, "power_up.duration"},
		{c.PowerUp.ShieldFactor >= 0 && c.PowerUp.ShieldFactor <= 1, "power_up.shield_factor"},
		{c.PowerUp.RapidInterval > 0, "power_up.rapid_interval"},
		{c.Progression.KillsPerLevel > 0, "progression.kills_per_level"},
		{c.Effects.ParticleLife > 0, "effects.particle_life"},
		{c.Effects.ExplosionLife > 0, "effects.explosion_life"},
	}
	for _, ch := range checks {
		if !ch.ok {
			return fmt.Errorf("%w: %s", ErrInvalidConfig, ch.field)
		}
	}
	return nil
}

// EnemyHealth is the spawn health of an enemy at level.
func (e Enemy) EnemyHealth(level int) float64 {
	return e.BaseHealth + float64(level-1)*e.HealthPerLevel
}

// EnemySpeed is the movement speed of an enemy at level given a jitter roll in [0, 1).
func (e Enemy) EnemySpeed(level int, roll float64) float64 {
	return math.Min(e.MaxSpeed, e.BaseSpeed+roll*e.SpeedJitter+float64(level-1)*e.SpeedPerLevel)
}

// ShootCooldown is the per-enemy fire cooldown at level.
func (e Enemy) ShootCooldown(level int) time.Duration {
	cd := e.BaseCooldown - time.Duration(level-1)*e.CooldownStep
	if cd < e.MinCooldown {
		return e.MinCooldown
	}
	return cd
}

// EnemyInterval is the enemy spawn interval at level.
func (s Spawn) EnemyInterval(level int) time.Duration {
	iv := s.BaseInterval - time.Duration(level-1)*s.IntervalStep
	if iv < s.MinInterval {
		return s.MinInterval
	}
	return iv
}
