package engine

import (
	"errors"
	"time"

	"github.com/dshills/textcore/buffer"
	"github.com/dshills/textcore/document"
	"github.com/dshills/textcore/history"
)

// Errors returned by engine operations.
var (
	// ErrNoSelections indicates an attempt to set an empty selection
	// set; at least one selection must always exist.
	ErrNoSelections = errors.New("selection set cannot be empty")
)

// Engine is the facade over a document, its command history, and the
// undo grouper.
type Engine struct {
	doc     *document.Document
	hist    *history.History
	grouper *history.Grouper

	selections []buffer.Selection

	// Creation-time settings.
	uri         string
	languageID  string
	content     string
	maxUndo     int
	groupWindow time.Duration
	tabWidth    int
	ending      buffer.LineEnding
	forceEnding bool
	groupErr    func(error)
}

// New creates an engine with the given options.
func New(opts ...Option) *Engine {
	e := &Engine{
		languageID:  "plaintext",
		maxUndo:     history.DefaultMaxEntries,
		groupWindow: history.DefaultGroupWindow,
		tabWidth:    4,
	}
	for _, opt := range opts {
		opt(e)
	}

	bufOpts := []buffer.Option{buffer.WithTabWidth(e.tabWidth)}
	if e.forceEnding {
		bufOpts = append(bufOpts, buffer.WithLineEnding(e.ending))
	}
	e.doc = document.New(e.uri, e.languageID, e.content, bufOpts...)
	e.hist = history.New(e.maxUndo)
	e.grouper = history.NewGrouper(e.groupWindow, e.executeGroup)
	e.selections = []buffer.Selection{buffer.NewCursorSelection(buffer.Position{})}
	return e
}

// executeGroup pushes auto-closed groups through the history.
func (e *Engine) executeGroup(c *history.Composite) {
	if err := e.hist.Execute(c); err != nil && e.groupErr != nil {
		e.groupErr(err)
	}
}

// Document returns the engine's document.
func (e *Engine) Document() *document.Document { return e.doc }

// History returns the engine's command history.
func (e *Engine) History() *history.History { return e.hist }

// Grouper returns the engine's undo grouper.
func (e *Engine) Grouper() *history.Grouper { return e.grouper }

// Read surface.

// Text returns the full document text.
func (e *Engine) Text() string { return e.doc.Text() }

// TextRange returns the text covered by the range.
func (e *Engine) TextRange(r buffer.Range) string { return e.doc.TextRange(r) }

// LineCount returns the number of lines.
func (e *Engine) LineCount() int { return e.doc.LineCount() }

// LineContent returns the text of a specific line.
func (e *Engine) LineContent(line int) (string, error) { return e.doc.LineContent(line) }

// Version returns the live buffer's content generation.
func (e *Engine) Version() int { return e.doc.Buffer().Version() }

// FindNext searches forward from the given position.
func (e *Engine) FindNext(needle string, from buffer.Position, opts buffer.FindOptions) (buffer.Range, bool) {
	return e.doc.FindNext(needle, from, opts)
}

// FindAll returns all non-overlapping matches.
func (e *Engine) FindAll(needle string, opts buffer.FindOptions) []buffer.Range {
	return e.doc.FindAll(needle, opts)
}

// WordRangeAt returns the range of the word containing the position.
func (e *Engine) WordRangeAt(p buffer.Position, pattern string) (buffer.Range, bool) {
	return e.doc.WordRangeAt(p, pattern)
}

// Mutations. Each builds a text edit command and runs it through the
// history so it can be undone.

// Insert inserts text at the position and returns the inserted range.
func (e *Engine) Insert(pos buffer.Position, text string) (buffer.Range, error) {
	cmd := history.NewTextEdit(e.doc.Buffer(), buffer.Range{Start: pos, End: pos}, text)
	if err := e.hist.Execute(cmd); err != nil {
		return buffer.Range{}, err
	}
	e.placeCursor(cmd.Result().End)
	return cmd.Result(), nil
}

// Delete removes the text in the range and returns it.
func (e *Engine) Delete(r buffer.Range) (string, error) {
	cmd := history.NewTextEdit(e.doc.Buffer(), r, "")
	if err := e.hist.Execute(cmd); err != nil {
		return "", err
	}
	e.placeCursor(cmd.Result().Start)
	return cmd.OldText(), nil
}

// Replace swaps the text in the range and returns the previous text and
// the range of the replacement.
func (e *Engine) Replace(r buffer.Range, text string) (string, buffer.Range, error) {
	cmd := history.NewTextEdit(e.doc.Buffer(), r, text)
	if err := e.hist.Execute(cmd); err != nil {
		return "", buffer.Range{}, err
	}
	e.placeCursor(cmd.Result().End)
	return cmd.OldText(), cmd.Result(), nil
}

// Undo reverses the most recent command. Returns false when there is
// nothing to undo.
func (e *Engine) Undo() (bool, error) { return e.hist.Undo() }

// Redo re-applies the most recently undone command.
func (e *Engine) Redo() (bool, error) { return e.hist.Redo() }

// CanUndo returns true if undo is available.
func (e *Engine) CanUndo() bool { return e.hist.CanUndo() }

// CanRedo returns true if redo is available.
func (e *Engine) CanRedo() bool { return e.hist.CanRedo() }

// Grouping. BeginGroup opens a coalescing group; edits made through
// GroupReplace join it and are executed as one undo unit when the group
// closes (explicitly via EndGroup or by the idle timeout).

// BeginGroup opens a new undo group.
func (e *Engine) BeginGroup(label string) {
	e.grouper.Start(label)
}

// GroupReplace queues a replace edit into the open group. The edit does
// not apply until the group closes and executes.
func (e *Engine) GroupReplace(r buffer.Range, text string) {
	e.grouper.Add(history.NewTextEdit(e.doc.Buffer(), r, text))
}

// EndGroup closes the open group and executes it as one undo unit.
// A nil or empty group is a no-op.
func (e *Engine) EndGroup() error {
	c := e.grouper.End()
	if c == nil || c.IsEmpty() {
		return nil
	}
	return e.hist.Execute(c)
}

// Selections.

// Selections returns the current selection set. Never empty.
func (e *Engine) Selections() []buffer.Selection {
	out := make([]buffer.Selection, len(e.selections))
	copy(out, e.selections)
	return out
}

// SetSelections replaces the selection set, validating each selection
// against the buffer. An empty set is rejected with ErrNoSelections.
func (e *Engine) SetSelections(sels []buffer.Selection) error {
	if len(sels) == 0 {
		return ErrNoSelections
	}
	validated := make([]buffer.Selection, len(sels))
	for i, s := range sels {
		validated[i] = buffer.Selection{
			Anchor: e.doc.ValidatePosition(s.Anchor),
			Active: e.doc.ValidatePosition(s.Active),
		}
	}
	e.selections = validated
	return nil
}

// placeCursor collapses the selection set to a single cursor. Cursor
// placement after an edit is editor policy; this default keeps the
// cursor at the edit boundary.
func (e *Engine) placeCursor(p buffer.Position) {
	e.selections = []buffer.Selection{buffer.NewCursorSelection(p)}
}

// SwitchDocument replaces the engine's document and silently discards
// all history; there is no cross-document undo. The grouper is drained
// so no stale group can execute against the new document.
func (e *Engine) SwitchDocument(uri, languageID, content string) {
	e.grouper.End()
	e.doc = document.New(uri, languageID, content)
	e.hist.Clear()
	e.selections = []buffer.Selection{buffer.NewCursorSelection(buffer.Position{})}
}

// Close disposes the engine's grouper timer.
func (e *Engine) Close() {
	e.grouper.Stop()
}
