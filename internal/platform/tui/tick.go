// Package tui connects the snake engine to a terminal through Bubble Tea.
// The engine keeps its own tick loop; this package supplies the drawing
// surface and the input poller it runs against, locally or over SSH.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// gameOverLinger is how long the final board stays up before the program
// exits on its own.
const gameOverLinger = 3 * time.Second

// lingerDoneMsg is sent once the game-over screen has been shown long enough.
type lingerDoneMsg time.Time

// lingerCmd returns a Bubble Tea command that fires after gameOverLinger.
func lingerCmd() tea.Cmd {
	return tea.Tick(gameOverLinger, func(t time.Time) tea.Msg {
		return lingerDoneMsg(t)
	})
}
