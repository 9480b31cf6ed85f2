package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default snake configuration.
// It mirrors defaults/snake.yaml and is used if the embedded file fails to parse.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: GridConfig{
			Width:  40,
			Height: 20,
		},
		Snake: SnakeSetup{
			InitialLength: 3,
		},
		Timing: TimingConfig{
			PollTimeoutMs: 500,
		},
		Rules: RulesConfig{
			SelfCollision: true,
		},
		Glyphs: GlyphConfig{
			Head:       "S",
			Body:       "S",
			Wall:       "#",
			Food:       "•",
			Background: " ",
		},
	}
}
