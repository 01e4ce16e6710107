package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"

	"github.com/san-kum/particlefield/internal/particle"
	"gopkg.in/yaml.v3"
)

const (
	DefaultFPS   = 60
	DefaultTheme = "ocean"
	// MobileBreakpoint is the viewport width below which the lighter hero
	// preset is used.
	MobileBreakpoint = 768
)

var (
	ErrInvalidFPS   = errors.New("config: fps must be positive")
	ErrInvalidCount = errors.New("config: particle count must not be negative")
	ErrBounceCount  = errors.New("config: bounce count must be within [0, count]")
	ErrSizeRange    = errors.New("config: size range must satisfy 0 < min_size <= max_size")
	ErrSpeed        = errors.New("config: max_speed must not be negative")
	ErrPalette      = errors.New("config: palette must hold at least one colour")
)

// Config describes a scene: one hero field behind everything and any
// number of card fields.
type Config struct {
	FPS   int           `yaml:"fps"`
	Seed  uint64        `yaml:"seed"`
	Theme string        `yaml:"theme"`
	Hero  FieldConfig   `yaml:"hero"`
	Cards []FieldConfig `yaml:"cards"`
}

// FieldConfig is the on-disk form of particle.Config.
type FieldConfig struct {
	Count       int      `yaml:"count"`
	BounceCount int      `yaml:"bounce_count"`
	MaxSpeed    float64  `yaml:"max_speed"`
	MinSize     float64  `yaml:"min_size"`
	MaxSize     float64  `yaml:"max_size"`
	Palette     []string `yaml:"palette"`
}

func DefaultConfig() *Config {
	hero := *GetPreset("hero")
	card := *GetPreset("card")
	return &Config{
		FPS:   DefaultFPS,
		Theme: DefaultTheme,
		Hero:  hero,
		Cards: []FieldConfig{card, card, card},
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
	if err := cfg.Validate(); err != nil {
		return nil, err
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

// Validate reports every problem in c at once.
func (c *Config) Validate() error {
	var errs []error
	if c.FPS <= 0 {
		errs = append(errs, fmt.Errorf("%w, got %d", ErrInvalidFPS, c.FPS))
	}
	if err := c.Hero.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("hero: %w", err))
	}
	for i, card := range c.Cards {
		if err := card.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("cards[%d]: %w", i, err))
		}
	}
	return errors.Join(errs...)
}

func (f FieldConfig) Validate() error {
	var errs []error
	if f.Count < 0 {
		errs = append(errs, fmt.Errorf("%w, got %d", ErrInvalidCount, f.Count))
	}
	if f.BounceCount < 0 || f.BounceCount > f.Count {
		errs = append(errs, fmt.Errorf("%w, got %d of %d", ErrBounceCount, f.BounceCount, f.Count))
	}
	if f.MinSize <= 0 || f.MaxSize < f.MinSize {
		errs = append(errs, fmt.Errorf("%w, got [%g, %g]", ErrSizeRange, f.MinSize, f.MaxSize))
	}
	if f.MaxSpeed < 0 {
		errs = append(errs, fmt.Errorf("%w, got %g", ErrSpeed, f.MaxSpeed))
	}
	if len(f.Palette) == 0 {
		errs = append(errs, ErrPalette)
	}
	for _, s := range f.Palette {
		if _, err := ParseRGBA(s); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Particle converts f for the simulator. Colours that fail to parse are
// skipped; call Validate first to surface them.
func (f FieldConfig) Particle() particle.Config {
	palette := make([]color.NRGBA, 0, len(f.Palette))
	for _, s := range f.Palette {
		if c, err := ParseRGBA(s); err == nil {
			palette = append(palette, c)
		}
	}
	return particle.Config{
		Count:       f.Count,
		BounceCount: f.BounceCount,
		Palette:     palette,
		MaxSpeed:    f.MaxSpeed,
		MinSize:     f.MinSize,
		MaxSize:     f.MaxSize,
	}
}

// HeroForWidth picks the hero preset suited to a viewport width.
func HeroForWidth(width float64) FieldConfig {
	if width < MobileBreakpoint {
		return *GetPreset("hero-mobile")
	}
	return *GetPreset("hero")
}
