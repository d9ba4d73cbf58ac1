package birthday

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed data/greeting.yaml
var defaultConfigYAML []byte

// Config personalizes the greeting.
//
// Text fields may contain {name}, replaced with Recipient.
type Config struct {
	Recipient  string          `yaml:"recipient"`
	Intro      []string        `yaml:"intro"`
	Typing     TypingConfig    `yaml:"typing"`
	Message    string          `yaml:"message"`
	Photos     []string        `yaml:"photos"`
	Window     WindowConfig    `yaml:"window"`
	ClearColor string          `yaml:"clearColor"`
	Fireworks  FireworksConfig `yaml:"fireworks"`
	Debug      bool            `yaml:"debug"`
}

// TypingConfig controls the intro typewriter.
type TypingConfig struct {
	CharsPerSecond float64 `yaml:"charsPerSecond"`
	LinePause      float64 `yaml:"linePause"`
	// PostDelay is the pause after the last line before the scene starts.
	PostDelay float64 `yaml:"postDelay"`
}

// WindowConfig sizes the window and the render target.
type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// FireworksConfig positions the fireworks launch point.
type FireworksConfig struct {
	Offset PositionConfig `yaml:"offset"`
}

// PositionConfig is a YAML-friendly 3D position.
type PositionConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// Vec3 converts to a Vec3.
func (p PositionConfig) Vec3() Vec3 {
	return Vec3{p.X, p.Y, p.Z}
}

// DefaultConfig returns the embedded default configuration.
func DefaultConfig() *Config {
	cfg, err := ParseConfig(defaultConfigYAML)
	if err != nil {
		panic(fmt.Sprintf("birthday: embedded config: %v", err))
	}
	return cfg
}

// LoadConfig reads a YAML file layered over the defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg, err := parseOver(defaultConfigYAML, data)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig parses and validates a complete YAML configuration.
func ParseConfig(data []byte) (*Config, error) {
	return parseOver(nil, data)
}

func parseOver(base, data []byte) (*Config, error) {
	var cfg Config
	if base != nil {
		if err := yaml.Unmarshal(base, &cfg); err != nil {
			return nil, fmt.Errorf("parse defaults: %w", err)
		}
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// Validate checks the configuration for values the greeting cannot use.
func (c *Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Typing.CharsPerSecond < 0 {
		errs = append(errs, fmt.Errorf("typing.charsPerSecond %v must not be negative", c.Typing.CharsPerSecond))
	}
	if c.Typing.LinePause < 0 {
		errs = append(errs, fmt.Errorf("typing.linePause %v must not be negative", c.Typing.LinePause))
	}
	if c.Typing.PostDelay < 0 {
		errs = append(errs, fmt.Errorf("typing.postDelay %v must not be negative", c.Typing.PostDelay))
	}
	if c.ClearColor != "" {
		if _, err := ColorFromHex(c.ClearColor); err != nil {
			errs = append(errs, fmt.Errorf("clearColor %q: %w", c.ClearColor, err))
		}
	}
	return errors.Join(errs...)
}

// Personalize replaces {name} with the recipient.
func (c *Config) Personalize(s string) string {
	return strings.ReplaceAll(s, "{name}", c.Recipient)
}

// IntroLines returns the personalized intro lines.
func (c *Config) IntroLines() []string {
	out := make([]string, len(c.Intro))
	for i, l := range c.Intro {
		out[i] = c.Personalize(l)
	}
	return out
}

// Background returns the parsed clear color, or opaque black.
func (c *Config) Background() Color {
	bg, err := ColorFromHex(c.ClearColor)
	if err != nil {
		return Color{A: 1}
	}
	return bg
}
