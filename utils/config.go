package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the driver settings. The rule never lives here; it comes from the command line.
type Config struct {
	Width               int           `json:"width"`
	Height              int           `json:"height"`
	FrameRate           time.Duration `json:"frame_rate"`
	MaxGenerations      int           `json:"max_generations"`
	Seed                int64         `json:"seed"`
	SeedNumerator       int           `json:"seed_numerator"`
	SeedDenominator     int           `json:"seed_denominator"`
	UseParallel         bool          `json:"use_parallel"`
	Workers             int           `json:"workers"`
	StagnationThreshold int           `json:"stagnation_threshold"`
	StopOnStagnation    bool          `json:"stop_on_stagnation"`
	AutoRestart         bool          `json:"auto_restart"`
	RefreshInterval     int           `json:"refresh_interval"`
	InjectionCount      int           `json:"injection_count"`
	ShowPatterns        bool          `json:"show_patterns"`
	Colors              bool          `json:"colors"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:               60,
		Height:              30,
		FrameRate:           time.Second / 12,
		MaxGenerations:      0, // Run until interrupted
		Seed:                0, // Pick from the clock
		SeedNumerator:       1,
		SeedDenominator:     3,
		UseParallel:         false,
		Workers:             0, // One per CPU
		StagnationThreshold: 5,
		StopOnStagnation:    false,
		AutoRestart:         false, // Stop on extinction instead of reseeding
		RefreshInterval:     200,   // Only used with AutoRestart
		InjectionCount:      3,
		ShowPatterns:        false,
		Colors:              true,
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	if err = config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] file: %+v", filename)
	}

	return config, nil
}

// Validate checks the settings the engine would otherwise reject later.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return errors.Wrapf(ErrInvalidConfig, "grid %dx%d must be positive", c.Width, c.Height)
	case c.SeedDenominator <= 0 || c.SeedNumerator < 0 || c.SeedNumerator > c.SeedDenominator:
		return errors.Wrapf(ErrInvalidConfig, "seed probability %d/%d", c.SeedNumerator, c.SeedDenominator)
	case c.FrameRate < 0:
		return errors.Wrapf(ErrInvalidConfig, "negative frame rate %v", c.FrameRate)
	case c.MaxGenerations < 0:
		return errors.Wrapf(ErrInvalidConfig, "negative max generations %d", c.MaxGenerations)
	case c.RefreshInterval < 0 || c.InjectionCount < 0:
		return errors.Wrapf(ErrInvalidConfig, "negative refresh interval %d or injection count %d", c.RefreshInterval, c.InjectionCount)
	}
	return nil
}
