package history

import "errors"

// Errors returned by command lifecycle operations.
var (
	// ErrAlreadyExecuted indicates Execute was called on an executed command.
	ErrAlreadyExecuted = errors.New("command already executed")

	// ErrNotExecuted indicates Undo was called on an undone command.
	ErrNotExecuted = errors.New("command not in executed state")

	// ErrNotUndone indicates Redo was called on a command that was never undone.
	ErrNotUndone = errors.New("command not in undone state")

	// ErrCompositeSealed indicates Add was called on a composite that has
	// already executed.
	ErrCompositeSealed = errors.New("composite command already executed")
)

// State tracks where a command is in its lifecycle.
type State uint8

const (
	StateIdle     State = iota // Never executed
	StateExecuted              // Effect is applied
	StateUndone                // Effect has been reversed
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateExecuted:
		return "executed"
	case StateUndone:
		return "undone"
	default:
		return "unknown"
	}
}

// Command is a reversible unit of work. Implementations record whatever
// state Execute needs for an exact inverse, so repeated undo/redo cycles
// restore text bit-identically.
type Command interface {
	// ID returns the command's unique identity.
	ID() string

	// Label returns a human-readable description of the command.
	Label() string

	// State returns the command's lifecycle state.
	State() State

	// Execute performs the mutation. Legal from Idle or Undone.
	Execute() error

	// Undo reverses the mutation. Legal from Executed; a no-op from Idle.
	Undo() error

	// Redo re-applies the mutation. Legal only from Undone.
	Redo() error
}
