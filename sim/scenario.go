package sim

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/automoto/mostro/components"
	cfg "github.com/automoto/mostro/config"
	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"
)

// Scenario scripts one headless run: the level, how the player moves and
// when it swings at the nearest mostro.
type Scenario struct {
	Name     string         `yaml:"name"`
	Level    string         `yaml:"level"`
	Duration time.Duration  `yaml:"duration"`
	Policy   cfg.LossPolicy `yaml:"policy"` // overrides every type when set
	Seed     uint64         `yaml:"seed"`
	Loop     bool           `yaml:"loop"`
	Path     []Step         `yaml:"path"`
	Hits     []Hit          `yaml:"hits"`
}

// Step is a ground-plane destination in metres.
type Step struct {
	X    float64       `yaml:"x"`
	Z    float64       `yaml:"z"`
	Wait time.Duration `yaml:"wait"`
}

// Hit is a scheduled player attack.
type Hit struct {
	At     time.Duration `yaml:"at"`
	Damage int           `yaml:"damage"`
}

type scenarioFile struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// LoadScenarios reads and validates a scenario file.
func LoadScenarios(fsys fs.FS, path string) ([]Scenario, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("read scenarios %s: %w", path, err)
	}
	return ParseScenarios(data)
}

func ParseScenarios(data []byte) ([]Scenario, error) {
	var file scenarioFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse scenarios: %w", err)
	}

	var errs []error
	seen := make(map[string]bool, len(file.Scenarios))
	for i, sc := range file.Scenarios {
		if err := sc.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("scenario %d: %w", i, err))
			continue
		}
		if seen[sc.Name] {
			errs = append(errs, fmt.Errorf("scenario %q is defined twice", sc.Name))
		}
		seen[sc.Name] = true
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return file.Scenarios, nil
}

func (sc Scenario) Validate() error {
	var errs []error
	if sc.Name == "" {
		errs = append(errs, errors.New("name is required"))
	}
	if sc.Level == "" {
		errs = append(errs, errors.New("level is required"))
	}
	if sc.Duration <= 0 {
		errs = append(errs, fmt.Errorf("duration must be positive, got %v", sc.Duration))
	}
	switch sc.Policy {
	case "", cfg.LossByTrigger, cfg.LossByDistance:
	default:
		errs = append(errs, fmt.Errorf("policy %q is not one of %q, %q", sc.Policy, cfg.LossByTrigger, cfg.LossByDistance))
	}
	for i, h := range sc.Hits {
		if h.Damage <= 0 {
			errs = append(errs, fmt.Errorf("hit %d: damage must be positive", i))
		}
	}
	return errors.Join(errs...)
}

// PlayerPath converts the steps for the player component.
func (sc Scenario) PlayerPath() []components.PathStep {
	path := make([]components.PathStep, len(sc.Path))
	for i, s := range sc.Path {
		path[i] = components.PathStep{Target: mgl64.Vec3{s.X, 0, s.Z}, Wait: s.Wait}
	}
	return path
}
