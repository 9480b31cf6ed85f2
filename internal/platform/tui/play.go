package tui

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/vovakirdan/termsnake/internal/games/snake"
)

// ErrTerminalTooSmall is returned when the terminal cannot show the board.
var ErrTerminalTooSmall = errors.New("tui: terminal too small")

// footerLines is the room needed below the board for the help line.
const footerLines = 1

// CheckTerminal verifies that f is a terminal large enough for a board of
// width x height. Any failure here is fatal: no game should start.
func CheckTerminal(f *os.File, width, height int) error {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return fmt.Errorf("tui: %s is not a terminal", f.Name())
	}
	w, h, err := term.GetSize(fd)
	if err != nil {
		return fmt.Errorf("tui: cannot query terminal size: %w", err)
	}
	return checkSize(w, h, width, height)
}

func checkSize(termW, termH, width, height int) error {
	if termW < width || termH < height+footerLines {
		return fmt.Errorf("%w: need %dx%d, have %dx%d",
			ErrTerminalTooSmall, width, height+footerLines, termW, termH)
	}
	return nil
}

// Play runs one local session: the engine loop on its own goroutine and the
// Bubble Tea program on the terminal. It returns when both have stopped.
func Play(ctx context.Context, eng *snake.Engine, glyphs snake.Glyphs, opts ...tea.ProgramOption) error {
	bridge := NewBridge()

	programOpts := append([]tea.ProgramOption{
		tea.WithAltScreen(), // Use alternate screen buffer
		tea.WithContext(ctx),
	}, opts...)
	p := tea.NewProgram(NewModel(bridge, glyphs), programOpts...)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := eng.Run(gctx, bridge, bridge); err != nil && !errors.Is(err, ErrClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		// Whatever ends the program, unblock the engine.
		defer bridge.Close()
		if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
			return fmt.Errorf("tui: %w", err)
		}
		return nil
	})

	return g.Wait()
}
