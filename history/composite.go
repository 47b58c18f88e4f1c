package history

import (
	"fmt"

	"github.com/google/uuid"
)

// Composite groups an ordered list of commands into one undo unit.
// Execute runs children front-to-back, Undo back-to-front. Children may
// not be added once the composite has executed.
type Composite struct {
	id    string
	label string
	state State
	cmds  []Command

	// sealed is set on first execution; Add is an error afterwards.
	sealed bool
}

// NewComposite creates an empty composite command.
func NewComposite(label string) *Composite {
	return &Composite{
		id:    uuid.NewString(),
		label: label,
	}
}

// ID returns the command's unique identity.
func (c *Composite) ID() string { return c.id }

// State returns the command's lifecycle state.
func (c *Composite) State() State { return c.state }

// Label returns the composite's name, or a derived description.
func (c *Composite) Label() string {
	if c.label != "" {
		return c.label
	}
	if len(c.cmds) == 1 {
		return c.cmds[0].Label()
	}
	return fmt.Sprintf("%d operations", len(c.cmds))
}

// Len returns the number of child commands.
func (c *Composite) Len() int { return len(c.cmds) }

// IsEmpty returns true if the composite has no children.
func (c *Composite) IsEmpty() bool { return len(c.cmds) == 0 }

// Commands returns the child commands in execution order.
func (c *Composite) Commands() []Command {
	out := make([]Command, len(c.cmds))
	copy(out, c.cmds)
	return out
}

// Add appends a child command. Returns ErrCompositeSealed once the
// composite has executed.
func (c *Composite) Add(cmd Command) error {
	if c.sealed {
		return ErrCompositeSealed
	}
	c.cmds = append(c.cmds, cmd)
	return nil
}

// Execute runs the children front-to-back. If a child fails, the
// already-executed children are undone in reverse so the buffer is left
// as it was before the composite ran.
func (c *Composite) Execute() error {
	if c.state == StateExecuted {
		return ErrAlreadyExecuted
	}

	c.sealed = true
	if err := c.run(); err != nil {
		return err
	}
	c.state = StateExecuted
	return nil
}

// Undo reverses the children back-to-front. A no-op when the composite
// never executed.
func (c *Composite) Undo() error {
	switch c.state {
	case StateIdle:
		return nil
	case StateUndone:
		return ErrNotExecuted
	}

	for i := len(c.cmds) - 1; i >= 0; i-- {
		if err := c.cmds[i].Undo(); err != nil {
			return fmt.Errorf("undo %q step %d: %w", c.Label(), i, err)
		}
	}
	c.state = StateUndone
	return nil
}

// Redo re-runs the children front-to-back.
func (c *Composite) Redo() error {
	if c.state != StateUndone {
		return ErrNotUndone
	}
	if err := c.run(); err != nil {
		return err
	}
	c.state = StateExecuted
	return nil
}

// run executes or redoes each child depending on its state, rolling back
// on failure.
func (c *Composite) run() error {
	for i, cmd := range c.cmds {
		var err error
		if cmd.State() == StateUndone {
			err = cmd.Redo()
		} else {
			err = cmd.Execute()
		}
		if err != nil {
			for j := i - 1; j >= 0; j-- {
				_ = c.cmds[j].Undo()
			}
			return fmt.Errorf("%q step %d: %w", c.Label(), i, err)
		}
	}
	return nil
}
