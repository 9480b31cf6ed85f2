package snake

// State is the engine's lifecycle state.
type State string

const (
	StateRunning State = "running"
	StateEnded   State = "ended"
)

// EndReason records why a game ended.
type EndReason string

const (
	EndNone      EndReason = ""
	EndQuit      EndReason = "quit"
	EndWall      EndReason = "wall"
	EndSelf      EndReason = "self"
	EndBoardFull EndReason = "board_full"
	EndCanceled  EndReason = "canceled"
)

// Frame is a read-only snapshot of the engine, taken once per tick for
// drawing and for determinism checks.
type Frame struct {
	Tick    uint64
	Width   int
	Height  int
	Body    []Point // Head first
	Food    Point
	HasFood bool
	Score   int
	Dir     Direction
	State   State
	Reason  EndReason
}

// Head returns the first body cell.
func (f Frame) Head() Point {
	if len(f.Body) == 0 {
		return Point{}
	}
	return f.Body[0]
}

// Frame returns a snapshot of the current state.
func (e *Engine) Frame() Frame {
	return Frame{
		Tick:    e.tick,
		Width:   e.width,
		Height:  e.height,
		Body:    e.snake.Body(),
		Food:    e.food,
		HasFood: e.hasFood,
		Score:   e.score,
		Dir:     e.snake.Direction(),
		State:   e.state,
		Reason:  e.reason,
	}
}
