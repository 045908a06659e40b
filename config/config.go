package config

import (
	"image/color"
	"time"
)

// Config holds window, loop and logging settings
type Config struct {
	Width          int
	Height         int
	TPS            int     // fixed simulation ticks per second
	PixelsPerMetre float64 // level and render scale
	LogLevel       string
}

// LossPolicy selects how an engaged mostro notices that the player is gone.
type LossPolicy string

const (
	// LossByTrigger accrues the give-up timer while the player is outside the sensor volume.
	LossByTrigger LossPolicy = "trigger"
	// LossByDistance accrues the give-up timer while the player is beyond the chase distance.
	LossByDistance LossPolicy = "distance"
)

// DetectionConfig tunes the trigger-volume sensor
type DetectionConfig struct {
	PlayerTag      string        `yaml:"player_tag"`
	Radius         float64       `yaml:"radius"`          // sensor radius in metres
	DebounceWindow time.Duration `yaml:"debounce_window"` // minimum time between honoured alert flips
	TurnRate       float64       `yaml:"turn_rate"`       // slerp factor per second while alert
}

// PatrolConfig tunes waypoint patrol
type PatrolConfig struct {
	Speed           float64       `yaml:"speed"`
	ArrivalDistance float64       `yaml:"arrival_distance"`
	WatchDuration   time.Duration `yaml:"watch_duration"`
	TurnRate        float64       `yaml:"turn_rate"`
}

// CombatConfig tunes the notice / pursue / attack state machine
type CombatConfig struct {
	Policy           LossPolicy    `yaml:"policy"`
	ChaseDistance    float64       `yaml:"chase_distance"`     // engage radius for the distance policy
	LossRadiusFactor float64       `yaml:"loss_radius_factor"` // loss accrues beyond ChaseDistance*factor
	Speed            float64       `yaml:"speed"`
	TurnRate         float64       `yaml:"turn_rate"`
	AttackRange      float64       `yaml:"attack_range"`
	AttackMargin     float64       `yaml:"attack_margin"`     // clearance so the body does not touch the player
	ArrivalTolerance float64       `yaml:"arrival_tolerance"` // how close to the stand-off point counts as there
	RetreatSlack     float64       `yaml:"retreat_slack"`     // extra range before attacking gives way to pursuit
	AttackInterval   time.Duration `yaml:"attack_interval"`
	Damage           int           `yaml:"damage"`
	NoticeDelay      time.Duration `yaml:"notice_delay"`
	GiveUpAfter      time.Duration `yaml:"give_up_after"`
}

// HealthConfig tunes damage and the death sequence
type HealthConfig struct {
	Max             int           `yaml:"max"`
	Invulnerability time.Duration `yaml:"invulnerability"`
	DeathDelay      time.Duration `yaml:"death_delay"`  // time for the death animation to play
	RemoveDelay     time.Duration `yaml:"remove_delay"` // grace before the entity is removed
	DeathEffect     string        `yaml:"death_effect"` // effect name, empty for none
}

// MostroTypeConfig contains configuration for a specific mostro type
type MostroTypeConfig struct {
	Name       string          `yaml:"name"`
	BodyRadius float64         `yaml:"body_radius"`
	Tint       string          `yaml:"tint"` // "#rrggbb"
	Detection  DetectionConfig `yaml:"detection"`
	Patrol     PatrolConfig    `yaml:"patrol"`
	Combat     CombatConfig    `yaml:"combat"`
	Health     HealthConfig    `yaml:"health"`
}

// MostroConfig contains the mostro type table
type MostroConfig struct {
	Types       map[string]MostroTypeConfig
	DefaultType string
}

// PlayerConfig contains player-related configuration values
type PlayerConfig struct {
	Tag             string
	Speed           float64 // metres per second
	Radius          float64
	Health          int
	Invulnerability time.Duration
	HitDamage       int     // damage dealt by the debug hit action
	HitReach        float64 // metres
}

// EffectConfig contains the death effect tween settings
type EffectConfig struct {
	Duration    time.Duration
	StartRadius float64
	EndRadius   float64
}

// DebugConfig contains debug toggles, some of them persisted between runs
type DebugConfig struct {
	ShowSensors bool
}

var C *Config
var Mostro MostroConfig
var Player PlayerConfig
var Effect EffectConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightGreen   = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	Blue         = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	Grass        = color.RGBA{R: 34, G: 58, B: 32, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

// DefaultMostroType returns a fresh copy of the baseline slime tuning.
func DefaultMostroType() MostroTypeConfig {
	return MostroTypeConfig{
		Name:       "Slime",
		BodyRadius: 0.4,
		Tint:       "#7ac74f",
		Detection: DetectionConfig{
			PlayerTag:      "Player",
			Radius:         6.0,
			DebounceWindow: 250 * time.Millisecond,
			TurnRate:       5.0,
		},
		Patrol: PatrolConfig{
			Speed:           2.0,
			ArrivalDistance: 0.15,
			WatchDuration:   5 * time.Second,
			TurnRate:        5.0,
		},
		Combat: CombatConfig{
			Policy:           LossByTrigger,
			ChaseDistance:    6.0,
			LossRadiusFactor: 1.2,
			Speed:            3.0,
			TurnRate:         6.0,
			AttackRange:      1.5,
			AttackMargin:     0.35,
			ArrivalTolerance: 0.05,
			RetreatSlack:     0.15,
			AttackInterval:   800 * time.Millisecond,
			Damage:           1,
			NoticeDelay:      2 * time.Second,
			GiveUpAfter:      1500 * time.Millisecond,
		},
		Health: HealthConfig{
			Max:             3,
			Invulnerability: 100 * time.Millisecond,
			DeathDelay:      600 * time.Millisecond,
			RemoveDelay:     100 * time.Millisecond,
			DeathEffect:     "poof",
		},
	}
}

func init() {
	C = &Config{
		Width:          960,
		Height:         544,
		TPS:            60,
		PixelsPerMetre: 32,
		LogLevel:       "info",
	}

	Player = PlayerConfig{
		Tag:             "Player",
		Speed:           4.5,
		Radius:          0.35,
		Health:          10,
		Invulnerability: 500 * time.Millisecond,
		HitDamage:       1,
		HitReach:        2.5,
	}

	slime := DefaultMostroType()

	bigSlime := DefaultMostroType()
	bigSlime.Name = "BigSlime"
	bigSlime.BodyRadius = 0.7
	bigSlime.Tint = "#3f8f6b"
	bigSlime.Patrol.Speed = 1.4
	bigSlime.Combat.Speed = 2.2
	bigSlime.Combat.AttackRange = 2.0
	bigSlime.Combat.AttackInterval = 1200 * time.Millisecond
	bigSlime.Combat.Damage = 2
	bigSlime.Health.Max = 6

	Mostro = MostroConfig{
		Types: map[string]MostroTypeConfig{
			"Slime":    slime,
			"BigSlime": bigSlime,
		},
		DefaultType: "Slime",
	}

	Effect = EffectConfig{
		Duration:    450 * time.Millisecond,
		StartRadius: 0.3,
		EndRadius:   1.2,
	}

	Debug = DebugConfig{
		ShowSensors: true,
	}
}

// TickDuration is the simulated time covered by one fixed tick.
func TickDuration() time.Duration {
	if C == nil || C.TPS <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(C.TPS)
}

// MostroType returns the named type, falling back to the default type.
func MostroType(name string) (MostroTypeConfig, bool) {
	if t, ok := Mostro.Types[name]; ok {
		return t, true
	}
	return Mostro.Types[Mostro.DefaultType], false
}
