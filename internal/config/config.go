package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/sortviz/internal/algo"
	"github.com/san-kum/sortviz/internal/source"
)

const (
	DefaultSize     = 50
	DefaultMin      = 0
	DefaultMax      = 100
	DefaultFPS      = 60
	DefaultTheme    = "cyberpunk"
	DefaultLogLevel = "info"

	MaxFPS = 240
)

type Config struct {
	Algorithm string         `yaml:"algorithm"`
	Direction string         `yaml:"direction"`
	Sequence  SequenceConfig `yaml:"sequence"`
	Display   DisplayConfig  `yaml:"display"`
	Log       LogConfig      `yaml:"log"`
}

type SequenceConfig struct {
	Size    int    `yaml:"size"`
	Min     int    `yaml:"min"`
	Max     int    `yaml:"max"`
	Seed    int64  `yaml:"seed"`
	Pattern string `yaml:"pattern"`
	// Values, when set, replaces the generated sequence.
	Values []int `yaml:"values,omitempty"`
}

type DisplayConfig struct {
	FPS   int    `yaml:"fps"`
	Theme string `yaml:"theme"`
}

type LogConfig struct {
	File  string `yaml:"file"`
	Level string `yaml:"level"`
}

func DefaultConfig() *Config {
	return &Config{
		Algorithm: algo.Bubble.String(),
		Direction: algo.Ascending.String(),
		Sequence: SequenceConfig{
			Size:    DefaultSize,
			Min:     DefaultMin,
			Max:     DefaultMax,
			Seed:    1,
			Pattern: string(source.PatternRandom),
		},
		Display: DisplayConfig{
			FPS:   DefaultFPS,
			Theme: DefaultTheme,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if _, err := algo.ParseID(c.Algorithm); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := algo.ParseDirection(c.Direction); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Display.FPS < 1 || c.Display.FPS > MaxFPS {
		return fmt.Errorf("config: fps must be within [1, %d], got %d", MaxFPS, c.Display.FPS)
	}
	if len(c.Sequence.Values) > 0 {
		return nil
	}
	if err := c.SourceOptions().Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

func (c *Config) AlgorithmID() (algo.ID, error) {
	return algo.ParseID(c.Algorithm)
}

func (c *Config) SortDirection() (algo.Direction, error) {
	return algo.ParseDirection(c.Direction)
}

func (c *Config) SourceOptions() source.Options {
	return source.Options{
		Size:    c.Sequence.Size,
		Min:     c.Sequence.Min,
		Max:     c.Sequence.Max,
		Seed:    c.Sequence.Seed,
		Pattern: source.Pattern(c.Sequence.Pattern),
	}
}

// NewSource returns a fixed source when explicit values are configured and a
// seeded generator otherwise.
func (c *Config) NewSource() (source.Source, error) {
	if len(c.Sequence.Values) > 0 {
		return source.NewFixed(c.Sequence.Values)
	}
	return source.New(c.SourceOptions())
}
