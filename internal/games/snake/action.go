package snake

// ActionKind identifies what an input event asks the engine to do.
type ActionKind int

const (
	ActionNone ActionKind = iota // No recognized event
	ActionMove                   // Change direction
	ActionQuit                   // End the session
)

// Action is the result of interpreting one input event.
// The zero value means no recognized event arrived.
type Action struct {
	Kind ActionKind
	Dir  Direction // Only meaningful for ActionMove
}

// Move returns an action requesting a turn towards d.
func Move(d Direction) Action {
	return Action{Kind: ActionMove, Dir: d}
}

// Quit returns an action requesting the end of the session.
func Quit() Action {
	return Action{Kind: ActionQuit}
}

// IsNone reports whether a carries no request.
func (a Action) IsNone() bool {
	return a.Kind == ActionNone
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a.Kind {
	case ActionNone:
		return "none"
	case ActionMove:
		return "move " + a.Dir.String()
	case ActionQuit:
		return "quit"
	default:
		return "unknown"
	}
}
