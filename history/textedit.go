package history

import (
	"fmt"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/dshills/textcore/buffer"
)

// TextEdit replaces a range of buffer text with new text. On execution it
// captures the exact text it overwrote and the exact resulting range, so
// Undo restores the previous content and Redo re-applies it precisely.
//
// An empty target range is a pure insert and an empty replacement text a
// pure delete; each maps onto the corresponding single buffer mutation so
// the version counter moves the same way it would for a direct call.
type TextEdit struct {
	id     string
	label  string
	buf    *buffer.LineBuffer
	target buffer.Range
	text   string
	state  State

	// Captured transactionally inside Execute/Redo.
	oldText string
	result  buffer.Range
}

// NewTextEdit creates a text edit command bound to a buffer. An empty
// target range inserts; empty text deletes.
func NewTextEdit(buf *buffer.LineBuffer, target buffer.Range, text string) *TextEdit {
	return &TextEdit{
		id:     uuid.NewString(),
		buf:    buf,
		target: target,
		text:   text,
	}
}

// NewLabeledTextEdit creates a text edit command with an explicit label.
func NewLabeledTextEdit(buf *buffer.LineBuffer, target buffer.Range, text, label string) *TextEdit {
	c := NewTextEdit(buf, target, text)
	c.label = label
	return c
}

// ID returns the command's unique identity.
func (c *TextEdit) ID() string { return c.id }

// State returns the command's lifecycle state.
func (c *TextEdit) State() State { return c.state }

// Label returns the command's description. Without an explicit label a
// description is derived from the edit shape.
func (c *TextEdit) Label() string {
	if c.label != "" {
		return c.label
	}
	n := utf8.RuneCountInString(c.text)
	switch {
	case c.target.IsEmpty() && n > 0:
		return fmt.Sprintf("Insert %d characters", n)
	case n == 0:
		return "Delete text"
	default:
		return fmt.Sprintf("Replace with %d characters", n)
	}
}

// Result returns the range of the replacement text after the most recent
// execution. Zero until the command first executes.
func (c *TextEdit) Result() buffer.Range { return c.result }

// OldText returns the text the most recent execution overwrote.
func (c *TextEdit) OldText() string { return c.oldText }

// Execute applies the edit and records its inverse.
func (c *TextEdit) Execute() error {
	if c.state == StateExecuted {
		return ErrAlreadyExecuted
	}
	c.apply()
	return nil
}

// Undo restores the overwritten text. A no-op when the command never
// executed.
func (c *TextEdit) Undo() error {
	switch c.state {
	case StateIdle:
		return nil
	case StateUndone:
		return ErrNotExecuted
	}

	// Each shape reverses with its single inverse mutation. The restored
	// range equals the original target, keeping execute/undo exact
	// inverses across repeated cycles.
	switch {
	case c.target.IsEmpty():
		c.buf.Delete(c.result)
	case c.text == "":
		c.target = c.buf.Insert(c.result.Start, c.oldText)
	default:
		_, restored := c.buf.Replace(c.result, c.oldText)
		c.target = restored
	}
	c.state = StateUndone
	return nil
}

// Redo re-applies the edit, recapturing the overwritten text.
func (c *TextEdit) Redo() error {
	if c.state != StateUndone {
		return ErrNotUndone
	}
	c.apply()
	return nil
}

func (c *TextEdit) apply() {
	target := c.buf.ValidateRange(c.target)
	c.target = target

	switch {
	case target.IsEmpty():
		c.oldText = ""
		c.result = c.buf.Insert(target.Start, c.text)
	case c.text == "":
		c.oldText = c.buf.Delete(target)
		c.result = buffer.Range{Start: target.Start, End: target.Start}
	default:
		c.oldText, c.result = c.buf.Replace(target, c.text)
	}
	c.state = StateExecuted
}
