package history

import "sync"

// DefaultMaxEntries bounds the undo stack when no limit is given.
const DefaultMaxEntries = 1000

// EventKind identifies a history change notification.
type EventKind uint8

const (
	CommandExecuted EventKind = iota // A command ran and joined the undo stack
	CommandUndone                    // A command was undone
	CommandRedone                    // A command was redone
)

// String returns the event kind name.
func (k EventKind) String() string {
	switch k {
	case CommandExecuted:
		return "command-executed"
	case CommandUndone:
		return "command-undone"
	case CommandRedone:
		return "command-redone"
	default:
		return "unknown"
	}
}

// Event carries the affected command to history listeners.
type Event struct {
	Kind    EventKind
	Command Command
}

// Listener receives history change notifications.
type Listener func(Event)

// History keeps bounded undo and redo stacks of executed commands.
// It is a linear history: executing a new command clears the redo stack,
// and when the undo stack exceeds its maximum the oldest entry is
// evicted.
type History struct {
	mu         sync.Mutex
	undo       []Command
	redo       []Command
	maxEntries int
	listeners  []Listener
}

// New creates a history with the given stack bound. Non-positive values
// use DefaultMaxEntries.
func New(maxEntries int) *History {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &History{maxEntries: maxEntries}
}

// Notify registers a listener for history change events. Listeners are
// invoked synchronously after the stacks are updated.
func (h *History) Notify(l Listener) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.listeners = append(h.listeners, l)
}

// Execute runs the command and pushes it onto the undo stack. The redo
// stack is cleared; a mutation after undo forfeits the undone branch.
func (h *History) Execute(cmd Command) error {
	if err := cmd.Execute(); err != nil {
		return err
	}

	h.mu.Lock()
	h.undo = append(h.undo, cmd)
	h.redo = nil
	if len(h.undo) > h.maxEntries {
		excess := len(h.undo) - h.maxEntries
		h.undo = h.undo[excess:]
	}
	h.mu.Unlock()

	h.emit(Event{Kind: CommandExecuted, Command: cmd})
	return nil
}

// Undo reverses the most recent command. Returns false with no error
// when the undo stack is empty. If the command's undo fails, the entry
// is restored and the error returned.
func (h *History) Undo() (bool, error) {
	h.mu.Lock()
	if len(h.undo) == 0 {
		h.mu.Unlock()
		return false, nil
	}
	cmd := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	h.mu.Unlock()

	if err := cmd.Undo(); err != nil {
		h.mu.Lock()
		h.undo = append(h.undo, cmd)
		h.mu.Unlock()
		return false, err
	}

	h.mu.Lock()
	h.redo = append(h.redo, cmd)
	h.mu.Unlock()

	h.emit(Event{Kind: CommandUndone, Command: cmd})
	return true, nil
}

// Redo re-applies the most recently undone command. Returns false with
// no error when the redo stack is empty.
func (h *History) Redo() (bool, error) {
	h.mu.Lock()
	if len(h.redo) == 0 {
		h.mu.Unlock()
		return false, nil
	}
	cmd := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	h.mu.Unlock()

	if err := cmd.Redo(); err != nil {
		h.mu.Lock()
		h.redo = append(h.redo, cmd)
		h.mu.Unlock()
		return false, err
	}

	h.mu.Lock()
	h.undo = append(h.undo, cmd)
	h.mu.Unlock()

	h.emit(Event{Kind: CommandRedone, Command: cmd})
	return true, nil
}

// CanUndo returns true if undo is available.
func (h *History) CanUndo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.undo) > 0
}

// CanRedo returns true if redo is available.
func (h *History) CanRedo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.redo) > 0
}

// UndoCount returns the number of undoable commands.
func (h *History) UndoCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.undo)
}

// RedoCount returns the number of redoable commands.
func (h *History) RedoCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.redo)
}

// MaxEntries returns the undo stack bound.
func (h *History) MaxEntries() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.maxEntries
}

// PeekUndo returns the command that Undo would reverse next.
func (h *History) PeekUndo() (Command, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.undo) == 0 {
		return nil, false
	}
	return h.undo[len(h.undo)-1], true
}

// PeekRedo returns the command that Redo would re-apply next.
func (h *History) PeekRedo() (Command, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.redo) == 0 {
		return nil, false
	}
	return h.redo[len(h.redo)-1], true
}

// Clear empties both stacks without undoing anything. Switching
// documents invalidates all prior history silently; there is no
// cross-document undo.
func (h *History) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.undo = nil
	h.redo = nil
}

// emit delivers an event to all listeners outside the stack lock.
func (h *History) emit(ev Event) {
	h.mu.Lock()
	listeners := make([]Listener, len(h.listeners))
	copy(listeners, h.listeners)
	h.mu.Unlock()

	for _, l := range listeners {
		l(ev)
	}
}
