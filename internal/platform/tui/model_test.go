package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/termsnake/internal/games/snake"
)

func testFrame(reason snake.EndReason) snake.Frame {
	f := snake.Frame{
		Tick:   1,
		Width:  10,
		Height: 6,
		Body:   []snake.Point{snake.Pt(3, 3), snake.Pt(4, 3)},
		Score:  2,
		Dir:    snake.DirRight,
		State:  snake.StateRunning,
	}
	if reason != snake.EndNone {
		f.State = snake.StateEnded
		f.Reason = reason
	}
	return f
}

func TestModelStoresFrames(t *testing.T) {
	m := NewModel(NewBridge(), snake.DefaultGlyphs())

	if m.View() != "" {
		t.Error("View() should be empty before the first frame")
	}

	updated, cmd := m.Update(frameMsg(testFrame(snake.EndNone)))
	m = updated.(Model)

	if cmd == nil {
		t.Error("frameMsg should schedule a wait for the next frame")
	}
	view := m.View()
	if !strings.Contains(view, "Score: 2") {
		t.Errorf("View() should show the score, got %q", view)
	}
	if !strings.Contains(view, "quit") {
		t.Errorf("View() should show the help footer, got %q", view)
	}
}

func TestModelForwardsKeys(t *testing.T) {
	b := NewBridge()
	m := NewModel(b, snake.DefaultGlyphs())

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyUp})
	if cmd != nil {
		t.Error("game keys should not produce a command")
	}

	select {
	case a := <-b.actions:
		if a != snake.Move(snake.DirUp) {
			t.Errorf("queued action = %v, expected move up", a)
		}
	default:
		t.Fatal("key press should queue an action on the bridge")
	}

	// Unbound keys still wake the engine for an early tick.
	m.Update(runeKey('x'))
	select {
	case a := <-b.actions:
		if !a.IsNone() {
			t.Errorf("queued action = %v, expected none", a)
		}
	default:
		t.Fatal("unbound key should still wake the engine")
	}

	// Quit is forwarded to the engine too: the engine decides when to stop.
	m.Update(runeKey('q'))
	select {
	case a := <-b.actions:
		if a != snake.Quit() {
			t.Errorf("queued action = %v, expected quit", a)
		}
	default:
		t.Fatal("quit key should queue an action on the bridge")
	}
}

func TestModelFinished(t *testing.T) {
	tests := []struct {
		name       string
		reason     snake.EndReason
		quitsRight bool
	}{
		{"quit", snake.EndQuit, true},
		{"canceled", snake.EndCanceled, true},
		{"wall", snake.EndWall, false},
		{"self", snake.EndSelf, false},
		{"board full", snake.EndBoardFull, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := NewModel(NewBridge(), snake.DefaultGlyphs())
			updated, _ := m.Update(frameMsg(testFrame(tc.reason)))
			updated, cmd := updated.(Model).Update(finishedMsg{})
			m = updated.(Model)

			if !m.finished {
				t.Error("model should be finished after finishedMsg")
			}
			if tc.quitsRight {
				if m.View() != "" {
					t.Error("View() should be empty when quitting")
				}
				return
			}
			if cmd == nil {
				t.Fatal("collision endings should schedule the linger timer")
			}
			if !strings.Contains(m.View(), "press any key") {
				t.Errorf("View() = %q, expected the exit hint", m.View())
			}
		})
	}
}

func TestModelAnyKeyExitsAfterFinish(t *testing.T) {
	m := NewModel(NewBridge(), snake.DefaultGlyphs())
	updated, _ := m.Update(frameMsg(testFrame(snake.EndWall)))
	updated, _ = updated.(Model).Update(finishedMsg{})

	updated, cmd := updated.(Model).Update(runeKey('x'))
	if cmd == nil {
		t.Fatal("a key after the game ended should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.Quit after the game ended")
	}
	if updated.(Model).View() != "" {
		t.Error("View() should be empty when quitting")
	}

	_, cmd = m.Update(lingerDoneMsg(time.Now()))
	if cmd == nil {
		t.Fatal("linger timeout should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.Quit after the linger timeout")
	}
}

func TestCheckSize(t *testing.T) {
	tests := []struct {
		name         string
		termW, termH int
		wantErr      bool
	}{
		{"exact fit", 40, 21, false},
		{"roomy", 120, 40, false},
		{"too narrow", 39, 21, true},
		{"no room for footer", 40, 20, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := checkSize(tc.termW, tc.termH, 40, 20)
			if (err != nil) != tc.wantErr {
				t.Fatalf("checkSize() error = %v, wantErr %v", err, tc.wantErr)
			}
			if err != nil && !errors.Is(err, ErrTerminalTooSmall) {
				t.Errorf("checkSize() error = %v, expected ErrTerminalTooSmall", err)
			}
		})
	}
}
