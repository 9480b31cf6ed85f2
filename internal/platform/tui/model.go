package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/termsnake/internal/core"
	"github.com/vovakirdan/termsnake/internal/games/snake"
)

var footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

// Model is the Bubble Tea model for one snake session. It owns no game
// logic: it forwards key presses to the engine through the bridge and
// draws whatever frame the engine sent last.
type Model struct {
	bridge   *Bridge
	keys     KeyMap
	help     help.Model
	glyphs   snake.Glyphs
	screen   *core.Screen
	frame    snake.Frame
	hasFrame bool
	finished bool
	quitting bool
	width    int
	height   int
}

// NewModel creates a model attached to the given bridge.
func NewModel(b *Bridge, glyphs snake.Glyphs) Model {
	return Model{
		bridge: b,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		glyphs: glyphs,
		screen: core.NewScreen(0, 0),
	}
}

// Init starts listening for frames.
func (m Model) Init() tea.Cmd {
	return m.bridge.waitForFrame()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case frameMsg:
		m.frame = snake.Frame(msg)
		m.hasFrame = true
		return m, m.bridge.waitForFrame()

	case finishedMsg:
		return m.handleFinished()

	case lingerDoneMsg:
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleKey forwards game keys to the engine. Once the game is over any
// key dismisses the final board.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.finished {
		m.quitting = true
		return m, tea.Quit
	}
	m.bridge.Send(m.keys.Action(msg))
	return m, nil
}

// handleFinished exits right away after a quit and keeps the board on
// screen for a moment after a collision.
func (m Model) handleFinished() (tea.Model, tea.Cmd) {
	m.finished = true
	switch m.frame.Reason {
	case snake.EndWall, snake.EndSelf, snake.EndBoardFull:
		return m, lingerCmd()
	}
	m.quitting = true
	return m, tea.Quit
}

// View renders the last frame plus a help footer.
func (m Model) View() string {
	if m.quitting || !m.hasFrame {
		return ""
	}

	m.screen.Resize(m.frame.Width, m.frame.Height)
	m.screen.Clear()
	m.frame.Render(m.screen, m.glyphs)

	footer := m.help.View(m.keys)
	if m.finished {
		footer = "press any key to exit"
	}
	return RenderScreen(m.screen) + "\n" + footerStyle.Render(footer)
}
