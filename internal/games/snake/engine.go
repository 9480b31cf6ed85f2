// Package snake implements the snake game state machine: a snake moving on
// a walled grid, eating food to grow and score, until it hits a wall or the
// player quits. Terminal drawing and key decoding are supplied by the caller
// through the Surface and Input interfaces.
package snake

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/termsnake/internal/core"
)

var (
	// ErrGridTooSmall is returned when the snake and one food item cannot
	// fit inside the wall ring.
	ErrGridTooSmall = errors.New("snake: grid too small")

	// ErrInvalidLength is returned for an initial length below one.
	ErrInvalidLength = errors.New("snake: initial length must be at least 1")
)

// Surface is the rendering side of a session. Calls arrive in a fixed
// order from a single goroutine: Prepare once, Draw once per tick, then
// Restore exactly once on every exit path.
type Surface interface {
	Prepare(width, height int) error
	Draw(f Frame) error
	Restore() error
}

// Input supplies at most one action per tick. Poll waits up to timeout
// and returns the zero Action when nothing recognizable arrived.
type Input interface {
	Poll(ctx context.Context, timeout time.Duration) Action
}

// Options configures a new Engine.
type Options struct {
	Width         int           // Grid width including the wall ring
	Height        int           // Grid height including the wall ring
	InitialLength int           // Starting body length
	PollTimeout   time.Duration // Upper bound on time between ticks
	SelfCollision bool          // End the game when the head hits the body
	Seed          int64         // RNG seed for direction and food placement
	Logger        *log.Logger   // Nil discards log output
}

// DefaultOptions returns the classic 40x20 board with a 3-cell snake and a
// half-second tick.
func DefaultOptions() Options {
	return Options{
		Width:         40,
		Height:        20,
		InitialLength: 3,
		PollTimeout:   500 * time.Millisecond,
	}
}

// Validate checks that the snake fits inside the walls in every starting
// direction, with at least one interior cell left over for food.
func (o Options) Validate() error {
	if o.InitialLength < 1 {
		return ErrInvalidLength
	}
	if o.PollTimeout <= 0 {
		return fmt.Errorf("snake: poll timeout must be positive, got %s", o.PollTimeout)
	}
	// The head starts at the center; the tail trails up to length-1 cells
	// towards either wall depending on the random direction.
	reach := o.InitialLength - 1
	cx, cy := o.Width/2, o.Height/2
	if cx-reach < 1 || cx+reach > o.Width-2 || cy-reach < 1 || cy+reach > o.Height-2 {
		return fmt.Errorf("%w: %dx%d cannot hold a snake of length %d",
			ErrGridTooSmall, o.Width, o.Height, o.InitialLength)
	}
	if (o.Width-2)*(o.Height-2) <= o.InitialLength {
		return fmt.Errorf("%w: no room for food on %dx%d", ErrGridTooSmall, o.Width, o.Height)
	}
	return nil
}

// Engine owns the grid, the snake, the food and the score, and advances
// them one tick at a time. It is not safe for concurrent use; Run drives it
// from a single goroutine.
type Engine struct {
	width         int
	height        int
	interior      core.Rect
	pollTimeout   time.Duration
	selfCollision bool
	rng           *rand.Rand
	logger        *log.Logger

	snake   *Snake
	food    Point
	hasFood bool
	score   int
	tick    uint64
	state   State
	reason  EndReason
}

// NewEngine validates opts and starts a game in the Running state: a snake
// of the initial length centered on the grid facing a random direction,
// and one food item on a free interior cell.
func NewEngine(opts Options) (*Engine, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	e := &Engine{
		width:         opts.Width,
		height:        opts.Height,
		interior:      core.NewRect(0, 0, opts.Width, opts.Height).Inset(1),
		pollTimeout:   opts.PollTimeout,
		selfCollision: opts.SelfCollision,
		rng:           rand.New(rand.NewSource(opts.Seed)),
		logger:        logger,
		state:         StateRunning,
	}

	start := Pt(e.width/2, e.height/2)
	e.snake = NewSnake(start, opts.InitialLength, randomDirection(e.rng))
	e.spawnFood()

	e.logger.Debug("game started",
		"width", e.width,
		"height", e.height,
		"head", start,
		"direction", e.snake.Direction(),
		"food", e.food,
	)
	return e, nil
}

// Width returns the grid width including walls.
func (e *Engine) Width() int { return e.width }

// Height returns the grid height including walls.
func (e *Engine) Height() int { return e.height }

// Score returns the number of food items eaten.
func (e *Engine) Score() int { return e.score }

// State returns Running or Ended.
func (e *Engine) State() State { return e.state }

// Reason returns why the game ended, or EndNone while running.
func (e *Engine) Reason() EndReason { return e.reason }

// Direction returns the snake's current direction.
func (e *Engine) Direction() Direction { return e.snake.Direction() }

// IsWall reports whether p lies on the wall ring. Cells beyond the ring
// count as walls too.
func (e *Engine) IsWall(p Point) bool {
	return !e.interior.Contains(p.X, p.Y)
}

// Step applies one tick with the given action, which may be the zero
// Action. It returns the state after the tick; an ended engine ignores
// further steps.
func (e *Engine) Step(a Action) State {
	if e.state != StateRunning {
		return e.state
	}
	e.tick++

	switch a.Kind {
	case ActionQuit:
		e.end(EndQuit)
		return e.state
	case ActionMove:
		e.turn(a.Dir)
	}

	next := e.snake.NextHead()

	// Collisions are checked before the move is committed, so nothing is
	// ever rolled back.
	if e.IsWall(next) {
		e.end(EndWall)
		return e.state
	}
	if e.selfCollision && e.snake.Bites(next) {
		e.end(EndSelf)
		return e.state
	}

	ate := e.hasFood && next == e.food
	if ate {
		e.snake.Grow()
		e.score++
	}

	e.snake.Slide()

	if ate {
		e.logger.Debug("food eaten", "at", next, "score", e.score, "length", e.snake.Len())
		if !e.spawnFood() {
			e.end(EndBoardFull)
		}
	}
	return e.state
}

// turn applies a direction change unless it would reverse the snake onto
// its own neck.
func (e *Engine) turn(d Direction) {
	current := e.snake.Direction()
	if d == current.Opposite() || d == current {
		return
	}
	e.snake.SetDirection(d)
	e.logger.Debug("direction changed", "from", current, "to", d)
}

// spawnFood places food on a free interior cell. It reports false when
// the interior is full.
func (e *Engine) spawnFood() bool {
	e.food, e.hasFood = RandomNonColliding(e.rng, e.width, e.height, e.snake)
	return e.hasFood
}

func (e *Engine) end(reason EndReason) {
	e.state = StateEnded
	e.reason = reason
	e.logger.Info("game over",
		"reason", reason,
		"score", e.score,
		"length", e.snake.Len(),
		"ticks", e.tick,
	)
	if e.logger.GetLevel() <= log.DebugLevel {
		e.logger.Debug("final board", "board", e.Frame().String())
	}
}

// Run plays the game to completion: each tick draws the current frame,
// waits up to the poll timeout for one action, and steps the engine.
// The surface is prepared first and restored on every return path.
// Run returns nil when the game ends by quitting, collision or context
// cancellation, and an error when the surface fails.
func (e *Engine) Run(ctx context.Context, surface Surface, input Input) (err error) {
	if err := surface.Prepare(e.width, e.height); err != nil {
		return fmt.Errorf("snake: prepare surface: %w", err)
	}
	defer func() {
		if rerr := surface.Restore(); rerr != nil && err == nil {
			err = fmt.Errorf("snake: restore surface: %w", rerr)
		}
	}()

	for e.state == StateRunning {
		if ctx.Err() != nil {
			e.end(EndCanceled)
			break
		}
		if err := surface.Draw(e.Frame()); err != nil {
			return fmt.Errorf("snake: draw tick %d: %w", e.tick, err)
		}
		a := input.Poll(ctx, e.pollTimeout)
		// A cancel that arrives mid-poll must not commit another move.
		if ctx.Err() != nil {
			e.end(EndCanceled)
			break
		}
		if !a.IsNone() {
			e.logger.Debug("input", "tick", e.tick, "action", a)
		}
		e.Step(a)
	}

	// One last frame so the surface can show how the game ended.
	if e.reason != EndCanceled {
		if err := surface.Draw(e.Frame()); err != nil {
			return fmt.Errorf("snake: draw final frame: %w", err)
		}
	}
	return nil
}
