package config

import (
	"errors"
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"
)

// fileConfig is the on-disk overlay. Mostro types are kept as raw nodes so
// each one can be decoded over its defaults.
type fileConfig struct {
	LogLevel    string               `yaml:"log_level"`
	DefaultType string               `yaml:"default_type"`
	Mostros     map[string]yaml.Node `yaml:"mostros"`
}

// Load reads a YAML overlay from fsys and merges it into the package
// configuration. Fields missing from the file keep their current values; a
// new type starts from the default type.
func Load(fsys fs.FS, path string) error {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	return Apply(data)
}

// Apply merges YAML bytes into the package configuration.
func Apply(data []byte) error {
	var file fileConfig
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	types := make(map[string]MostroTypeConfig, len(Mostro.Types)+len(file.Mostros))
	for name, t := range Mostro.Types {
		types[name] = t
	}

	for name, node := range file.Mostros {
		base, ok := types[name]
		if !ok {
			base = DefaultMostroType()
			if def, ok := types[Mostro.DefaultType]; ok {
				base = def
			}
		}
		if err := node.Decode(&base); err != nil {
			return fmt.Errorf("mostro %q: %w", name, err)
		}
		base.Name = name
		if err := base.Validate(); err != nil {
			return fmt.Errorf("mostro %q: %w", name, err)
		}
		types[name] = base
	}

	defaultType := Mostro.DefaultType
	if file.DefaultType != "" {
		if _, ok := types[file.DefaultType]; !ok {
			return fmt.Errorf("default_type %q is not a known mostro type", file.DefaultType)
		}
		defaultType = file.DefaultType
	}

	Mostro = MostroConfig{Types: types, DefaultType: defaultType}
	if file.LogLevel != "" {
		C.LogLevel = file.LogLevel
	}
	return nil
}

// Validate reports every out-of-range tuning value at once.
func (t MostroTypeConfig) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}
	nonNegative := func(name string, v float64) {
		if v < 0 {
			errs = append(errs, fmt.Errorf("%s must not be negative, got %v", name, v))
		}
	}

	positive("body_radius", t.BodyRadius)
	positive("detection.radius", t.Detection.Radius)
	nonNegative("detection.debounce_window", t.Detection.DebounceWindow.Seconds())
	positive("patrol.speed", t.Patrol.Speed)
	positive("patrol.arrival_distance", t.Patrol.ArrivalDistance)
	nonNegative("patrol.watch_duration", t.Patrol.WatchDuration.Seconds())
	positive("combat.speed", t.Combat.Speed)
	positive("combat.chase_distance", t.Combat.ChaseDistance)
	positive("combat.loss_radius_factor", t.Combat.LossRadiusFactor)
	nonNegative("combat.attack_range", t.Combat.AttackRange)
	nonNegative("combat.attack_margin", t.Combat.AttackMargin)
	positive("combat.arrival_tolerance", t.Combat.ArrivalTolerance)
	nonNegative("combat.retreat_slack", t.Combat.RetreatSlack)
	positive("combat.attack_interval", t.Combat.AttackInterval.Seconds())
	nonNegative("combat.notice_delay", t.Combat.NoticeDelay.Seconds())
	positive("combat.give_up_after", t.Combat.GiveUpAfter.Seconds())
	positive("health.max", float64(t.Health.Max))
	nonNegative("health.invulnerability", t.Health.Invulnerability.Seconds())
	nonNegative("health.death_delay", t.Health.DeathDelay.Seconds())

	switch t.Combat.Policy {
	case LossByTrigger, LossByDistance:
	default:
		errs = append(errs, fmt.Errorf("combat.policy %q is not one of %q, %q", t.Combat.Policy, LossByTrigger, LossByDistance))
	}

	return errors.Join(errs...)
}
