// Package config loads aocsearch settings from YAML.
//
// Load starts from the embedded default.yaml and overlays the file at path,
// so a user file only needs the fields it changes.
package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/statespace/internal/logging"
)

//go:embed default.yaml
var defaultYAML []byte

// ErrInvalidConfig is returned by Validate and Load for unusable settings.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the full aocsearch configuration.
type Config struct {
	Inputs      string `yaml:"inputs"`
	Concurrency int    `yaml:"concurrency"`

	Log        Log        `yaml:"log"`
	Cubicles   Cubicles   `yaml:"cubicles"`
	Elevator   Elevator   `yaml:"elevator"`
	Wizard     Wizard     `yaml:"wizard"`
	Assembunny Assembunny `yaml:"assembunny"`
}

// Log selects the logger level and format.
type Log struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}

// Cubicles holds the walk target and the step bound of the reach count.
type Cubicles struct {
	TargetX  int `yaml:"target_x"`
	TargetY  int `yaml:"target_y"`
	MaxSteps int `yaml:"max_steps"`
}

// Elevator holds the number of pairs added on the ground floor for part 2.
type Elevator struct {
	ExtraPairs int `yaml:"extra_pairs"`
}

// Wizard holds the player's starting stats.
type Wizard struct {
	HP   int `yaml:"hp"`
	Mana int `yaml:"mana"`
}

// Assembunny bounds the clock-signal scan.
type Assembunny struct {
	ClockLength int `yaml:"clock_length"`
	ClockLimit  int `yaml:"clock_limit"`
	MaxSteps    int `yaml:"max_steps"`
}

// Default returns the embedded configuration.
func Default() Config {
	var c Config
	if err := yaml.Unmarshal(defaultYAML, &c); err != nil {
		panic(fmt.Sprintf("config: embedded default.yaml: %v", err))
	}

	return c
}

// Load returns Default overlaid with the YAML file at path. An empty path
// returns Default. The result is validated.
func Load(path string) (Config, error) {
	c := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err = Parse(data, &c); err != nil {
			return Config{}, err
		}
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

// Parse overlays the YAML document data onto c. Unknown fields are rejected.
func Parse(data []byte, c *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return nil
}

// Validate checks every field for a usable value.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
		}
	}
	check(c.Inputs != "", "inputs directory is empty")
	check(c.Concurrency > 0, "concurrency must be positive, got %d", c.Concurrency)
	_, err := logging.ParseLevel(c.Log.Level)
	check(err == nil, "log level %q", c.Log.Level)
	check(c.Cubicles.TargetX >= 0 && c.Cubicles.TargetY >= 0, "cubicles target must be non-negative")
	check(c.Cubicles.MaxSteps >= 0, "cubicles max_steps must be non-negative")
	check(c.Elevator.ExtraPairs >= 0, "elevator extra_pairs must be non-negative")
	check(c.Wizard.HP > 0 && c.Wizard.Mana >= 0, "wizard stats must be positive")
	check(c.Assembunny.ClockLength > 0, "assembunny clock_length must be positive")
	check(c.Assembunny.ClockLimit >= 0 && c.Assembunny.MaxSteps >= 0, "assembunny bounds must be non-negative")

	return errors.Join(errs...)
}

// LogConfig translates c.Log into a logging.Config.
func (c Config) LogConfig() (logging.Config, error) {
	lvl, err := logging.ParseLevel(c.Log.Level)
	if err != nil {
		return logging.Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return logging.Config{Level: lvl, JSON: c.Log.JSON, Service: "aocsearch"}, nil
}
