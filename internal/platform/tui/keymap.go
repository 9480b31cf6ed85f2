package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/termsnake/internal/games/snake"
)

// KeyMap defines the key bindings for a game session.
// This centralizes key bindings and makes them testable.
type KeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Quit  key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Quit},
	}
}

// DefaultKeyMap returns arrow keys, WASD and vim keys for movement.
// "й" sits on the same physical key as "q" in the Russian layout.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "й", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Action translates a key message into a game action.
// Unbound keys yield the zero Action.
func (k KeyMap) Action(msg tea.KeyMsg) snake.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return snake.Quit()
	case key.Matches(msg, k.Up):
		return snake.Move(snake.DirUp)
	case key.Matches(msg, k.Down):
		return snake.Move(snake.DirDown)
	case key.Matches(msg, k.Left):
		return snake.Move(snake.DirLeft)
	case key.Matches(msg, k.Right):
		return snake.Move(snake.DirRight)
	}
	return snake.Action{}
}
