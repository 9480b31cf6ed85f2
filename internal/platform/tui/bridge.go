package tui

import (
	"context"
	"errors"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/termsnake/internal/games/snake"
)

// ErrClosed is returned by Bridge.Draw after the terminal side has gone away.
var ErrClosed = errors.New("tui: surface closed")

// actionBuffer is how many key presses may queue between two polls.
const actionBuffer = 8

// Bridge is the engine's view of a Bubble Tea program. It implements
// snake.Surface and snake.Input over channels: frames flow from the engine
// goroutine to the model, and actions flow back.
type Bridge struct {
	frames   chan snake.Frame
	actions  chan snake.Action
	finished chan struct{} // Closed by Restore: no more frames
	done     chan struct{} // Closed by Close: the program has exited

	finishOnce sync.Once
	closeOnce  sync.Once
}

// NewBridge creates an open bridge.
func NewBridge() *Bridge {
	return &Bridge{
		frames:   make(chan snake.Frame),
		actions:  make(chan snake.Action, actionBuffer),
		finished: make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Prepare fails once the program has exited. The program itself enters the
// alternate screen when it starts, and every frame carries the board size.
func (b *Bridge) Prepare(_, _ int) error {
	select {
	case <-b.done:
		return ErrClosed
	default:
		return nil
	}
}

// Draw hands a frame to the model and blocks until it is taken.
func (b *Bridge) Draw(f snake.Frame) error {
	select {
	case b.frames <- f:
		return nil
	case <-b.done:
		return ErrClosed
	}
}

// Restore tells the model that the session is over. The terminal itself
// is restored when the program exits.
func (b *Bridge) Restore() error {
	b.finishOnce.Do(func() { close(b.finished) })
	return nil
}

// Poll waits up to timeout for one queued action. A closed bridge yields
// Quit so the engine winds down.
func (b *Bridge) Poll(ctx context.Context, timeout time.Duration) snake.Action {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case a := <-b.actions:
		return a
	case <-timer.C:
		return snake.Action{}
	case <-b.done:
		return snake.Quit()
	case <-ctx.Done():
		return snake.Action{}
	}
}

// Send queues an action for the next poll. The zero Action is queued too:
// any key press ends the wait and ticks the engine early. When the queue
// is full the action is dropped.
func (b *Bridge) Send(a snake.Action) bool {
	select {
	case b.actions <- a:
		return true
	default:
		return false
	}
}

// Close marks the terminal side as gone. It is safe to call more than once.
func (b *Bridge) Close() {
	b.closeOnce.Do(func() { close(b.done) })
}

// CloseOnDone closes the bridge when ctx is canceled.
func (b *Bridge) CloseOnDone(ctx context.Context) {
	go func() {
		select {
		case <-ctx.Done():
			b.Close()
		case <-b.done:
		}
	}()
}

// frameMsg carries one engine frame into the model.
type frameMsg snake.Frame

// finishedMsg tells the model no more frames will arrive.
type finishedMsg struct{}

// waitForFrame returns a command that blocks until the next frame or the
// end of the session.
func (b *Bridge) waitForFrame() tea.Cmd {
	return func() tea.Msg {
		select {
		case f := <-b.frames:
			return frameMsg(f)
		case <-b.finished:
			return finishedMsg{}
		case <-b.done:
			return finishedMsg{}
		}
	}
}
