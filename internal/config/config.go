// Package config provides YAML-based configuration loading for the snake
// game, with an embedded default and a user override search path.
package config

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/termsnake/internal/games/snake"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// SnakeConfig contains all configuration for a snake session.
type SnakeConfig struct {
	Grid   GridConfig   `yaml:"grid"`
	Snake  SnakeSetup   `yaml:"snake"`
	Timing TimingConfig `yaml:"timing"`
	Rules  RulesConfig  `yaml:"rules"`
	Glyphs GlyphConfig  `yaml:"glyphs"`
}

// GridConfig defines the board size, wall ring included.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SnakeSetup defines the starting snake.
type SnakeSetup struct {
	InitialLength int `yaml:"initial_length"`
}

// TimingConfig defines the tick clock.
type TimingConfig struct {
	PollTimeoutMs int `yaml:"poll_timeout_ms"` // Longest wait for a key before the snake moves
}

// RulesConfig toggles optional game rules.
type RulesConfig struct {
	SelfCollision bool `yaml:"self_collision"`
}

// GlyphConfig defines the single-character strings used to draw the board.
type GlyphConfig struct {
	Head       string `yaml:"head"`
	Body       string `yaml:"body"`
	Wall       string `yaml:"wall"`
	Food       string `yaml:"food"`
	Background string `yaml:"background"`
}

// PollTimeout returns the tick timeout as a duration.
func (c SnakeConfig) PollTimeout() time.Duration {
	return time.Duration(c.Timing.PollTimeoutMs) * time.Millisecond
}

// Validate checks the config for values the engine cannot use.
func (c SnakeConfig) Validate() error {
	if c.Grid.Width <= 0 || c.Grid.Height <= 0 {
		return fmt.Errorf("%w: grid %dx%d must be positive", ErrInvalid, c.Grid.Width, c.Grid.Height)
	}
	if c.Snake.InitialLength <= 0 {
		return fmt.Errorf("%w: snake.initial_length %d must be positive", ErrInvalid, c.Snake.InitialLength)
	}
	if c.Timing.PollTimeoutMs <= 0 {
		return fmt.Errorf("%w: timing.poll_timeout_ms %d must be positive", ErrInvalid, c.Timing.PollTimeoutMs)
	}

	glyphs := map[string]string{
		"head":       c.Glyphs.Head,
		"body":       c.Glyphs.Body,
		"wall":       c.Glyphs.Wall,
		"food":       c.Glyphs.Food,
		"background": c.Glyphs.Background,
	}
	for name, g := range glyphs {
		if utf8.RuneCountInString(g) != 1 {
			return fmt.Errorf("%w: glyphs.%s %q must be exactly one character", ErrInvalid, name, g)
		}
	}

	if err := c.ToOptions(0, nil).Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// ToOptions converts the config into engine options.
func (c SnakeConfig) ToOptions(seed int64, logger *log.Logger) snake.Options {
	return snake.Options{
		Width:         c.Grid.Width,
		Height:        c.Grid.Height,
		InitialLength: c.Snake.InitialLength,
		PollTimeout:   c.PollTimeout(),
		SelfCollision: c.Rules.SelfCollision,
		Seed:          seed,
		Logger:        logger,
	}
}

// ToGlyphs converts the glyph strings into runes. Call Validate first;
// empty strings fall back to the defaults.
func (c SnakeConfig) ToGlyphs() snake.Glyphs {
	def := snake.DefaultGlyphs()
	return snake.Glyphs{
		Head:       firstRune(c.Glyphs.Head, def.Head),
		Body:       firstRune(c.Glyphs.Body, def.Body),
		Wall:       firstRune(c.Glyphs.Wall, def.Wall),
		Food:       firstRune(c.Glyphs.Food, def.Food),
		Background: firstRune(c.Glyphs.Background, def.Background),
	}
}

func firstRune(s string, fallback rune) rune {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || r == utf8.RuneError {
		return fallback
	}
	return r
}
