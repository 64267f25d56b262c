package config

import (
	"fmt"
	"os"
	"time"

	"github.com/cbodonnell/tetris/pkg/game/constants"
	"gopkg.in/yaml.v3"
)

// Config holds the tunable rules of a game.
type Config struct {
	Board   BoardConfig   `yaml:"board"`
	Gravity GravityConfig `yaml:"gravity"`
	Scoring ScoringConfig `yaml:"scoring"`
	// Seed seeds piece selection. Zero means seed from the clock.
	Seed uint64 `yaml:"seed"`
	// FrameInterval is the frame length used by headless frame loops.
	FrameInterval time.Duration `yaml:"frameInterval"`
}

type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type GravityConfig struct {
	Base time.Duration `yaml:"base"`
	Step time.Duration `yaml:"step"`
	Min  time.Duration `yaml:"min"`
}

type ScoringConfig struct {
	// Table is indexed by the number of rows cleared in one event.
	Table         []int `yaml:"table"`
	LinesPerLevel int   `yaml:"linesPerLevel"`
	StartLevel    int   `yaml:"startLevel"`
}

// Default returns the canonical 10x20 rules.
func Default() *Config {
	return &Config{
		Board: BoardConfig{
			Width:  constants.BoardWidth,
			Height: constants.BoardHeight,
		},
		Gravity: GravityConfig{
			Base: constants.GravityBaseInterval,
			Step: constants.GravityStep,
			Min:  constants.GravityMinInterval,
		},
		Scoring: ScoringConfig{
			Table:         append([]int(nil), constants.ScoreTable[:]...),
			LinesPerLevel: constants.LinesPerLevel,
			StartLevel:    constants.StartLevel,
		},
		FrameInterval: constants.FrameInterval,
	}
}

// Load reads a YAML config file. Fields missing from the file keep
// their default values.
func Load(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return Parse(data)
}

// Parse decodes YAML config data on top of the defaults and validates it.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Validate checks that the rules describe a playable game.
func (c *Config) Validate() error {
	if c.Board.Width < 4 {
		return fmt.Errorf("board width must be at least 4, got %d", c.Board.Width)
	}
	if c.Board.Height < 4 {
		return fmt.Errorf("board height must be at least 4, got %d", c.Board.Height)
	}

	if c.Gravity.Min <= 0 {
		return fmt.Errorf("gravity min must be positive, got %s", c.Gravity.Min)
	}
	if c.Gravity.Base < c.Gravity.Min {
		return fmt.Errorf("gravity base %s is below gravity min %s", c.Gravity.Base, c.Gravity.Min)
	}
	if c.Gravity.Step < 0 {
		return fmt.Errorf("gravity step cannot be negative, got %s", c.Gravity.Step)
	}

	if len(c.Scoring.Table) != 5 {
		return fmt.Errorf("score table must have 5 entries (0 through 4 lines), got %d", len(c.Scoring.Table))
	}
	for i := 1; i < len(c.Scoring.Table); i++ {
		if c.Scoring.Table[i] < c.Scoring.Table[i-1] {
			return fmt.Errorf("score table must be non-decreasing, entry %d is %d after %d", i, c.Scoring.Table[i], c.Scoring.Table[i-1])
		}
	}
	if c.Scoring.Table[0] < 0 {
		return fmt.Errorf("score table entries cannot be negative")
	}
	if c.Scoring.LinesPerLevel < 1 {
		return fmt.Errorf("lines per level must be at least 1, got %d", c.Scoring.LinesPerLevel)
	}
	if c.Scoring.StartLevel < 1 {
		return fmt.Errorf("start level must be at least 1, got %d", c.Scoring.StartLevel)
	}

	if c.FrameInterval <= 0 {
		return fmt.Errorf("frame interval must be positive, got %s", c.FrameInterval)
	}

	return nil
}
