package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
)

// ErrInvalidConfig is returned by Validate
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the configuration for the game
type Config struct {
	Rows           int           `json:"rows"`
	Cols           int           `json:"cols"`
	MaxGenerations int           `json:"max_generations"`
	FrameRate      time.Duration `json:"frame_rate"`
	ClearScreen    bool          `json:"clear_screen"`
	LiveCells      []model.Coord `json:"live_cells"`
}

// envOverrides are the scalar Config fields that may be set from the environment
type envOverrides struct {
	Rows           int           `env:"GOL_ROWS"`
	Cols           int           `env:"GOL_COLS"`
	MaxGenerations int           `env:"GOL_MAX_GENERATIONS"`
	FrameRate      time.Duration `env:"GOL_FRAME_RATE"`
	ClearScreen    bool          `env:"GOL_CLEAR_SCREEN"`
}

// DefaultConfig returns a horizontal blinker on a 5x5 grid
func DefaultConfig() Config {
	return Config{
		Rows:           5,
		Cols:           5,
		MaxGenerations: 105,
		LiveCells: []model.Coord{
			{Row: 2, Col: 1},
			{Row: 2, Col: 2},
			{Row: 2, Col: 3},
		},
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

	return config, nil
}

// ApplyEnv overrides config values with any GOL_* environment variables that are set
func (c *Config) ApplyEnv() error {
	o := envOverrides{
		Rows:           c.Rows,
		Cols:           c.Cols,
		MaxGenerations: c.MaxGenerations,
		FrameRate:      c.FrameRate,
		ClearScreen:    c.ClearScreen,
	}
	if err := env.Parse(&o); err != nil {
		return errors.Wrap(err, "[ApplyEnv] failed to parse environment")
	}

	c.Rows = o.Rows
	c.Cols = o.Cols
	c.MaxGenerations = o.MaxGenerations
	c.FrameRate = o.FrameRate
	c.ClearScreen = o.ClearScreen
	return nil
}

// Validate checks the config for values the simulation cannot run with.
// Live cells are bounds-checked by the grid itself when seeded.
func (c Config) Validate() error {
	switch {
	case c.Rows < 0 || c.Cols < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] grid %dx%d", c.Rows, c.Cols)
	case c.MaxGenerations < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] max_generations %d", c.MaxGenerations)
	case c.FrameRate < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] frame_rate %v", c.FrameRate)
	}
	return nil
}
