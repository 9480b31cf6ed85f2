package tui

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/termsnake/internal/config"
	"github.com/vovakirdan/termsnake/internal/games/snake"
)

// NewEngine builds an engine from a validated config.
func NewEngine(cfg config.SnakeConfig, seed int64, logger *log.Logger) (*snake.Engine, error) {
	return snake.NewEngine(cfg.ToOptions(seed, logger))
}
