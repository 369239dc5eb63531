package plugin

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dahldesign/dahl-properties/calcs"
	"github.com/dahldesign/dahl-properties/interval"
)

// DefaultHistory is the number of past frames kept for lagged computations.
const DefaultHistory = 10

// SchedulerConfig sizes the counter, rate table and frame history.
type SchedulerConfig struct {
	Modulus int   `yaml:"modulus"`
	Rates   []int `yaml:"rates"`
	History int   `yaml:"history"`
}

// Config is the full plugin configuration file. All sections must be listed
// here to satisfy strict KnownFields parsing.
type Config struct {
	Scheduler SchedulerConfig `yaml:"scheduler"`
	Settings  calcs.Settings  `yaml:"settings"`
}

// DefaultConfig returns the 60-tick scheduler with factory settings.
func DefaultConfig() Config {
	rates := interval.DefaultRates()
	return Config{
		Scheduler: SchedulerConfig{Modulus: rates.Modulus, Rates: rates.Rates, History: DefaultHistory},
		Settings:  calcs.DefaultSettings(),
	}
}

// Rates returns the scheduler section as an interval.RateConfig.
func (c Config) Rates() interval.RateConfig {
	return interval.RateConfig{Modulus: c.Scheduler.Modulus, Rates: c.Scheduler.Rates}
}

// Validate checks the configuration before any property is declared.
func (c Config) Validate() error {
	if err := c.Rates().Validate(); err != nil {
		return err
	}
	if c.Scheduler.History <= 0 {
		return fmt.Errorf("%w: history must be > 0, got %d", interval.ErrInvalidConfig, c.Scheduler.History)
	}
	if err := c.Settings.Validate(c.Scheduler.History); err != nil {
		return fmt.Errorf("%w: settings: %v", interval.ErrInvalidConfig, err)
	}
	return nil
}

// LoadConfig reads a YAML configuration file over the defaults. Keys left out
// of the file keep their default values; unknown keys are errors.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading plugin config: %w", err)
	}
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("parsing plugin config: %w", err)
	}
	return cfg, nil
}
