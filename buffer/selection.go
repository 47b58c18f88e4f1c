package buffer

import "fmt"

// Selection represents a range of selected text plus the direction the
// user dragged. Anchor is where the selection started; Active is the
// position that moves (where typing would occur). When Anchor == Active
// the selection is just a cursor.
// Selection is an immutable value type.
type Selection struct {
	Anchor Position // Where the selection started
	Active Position // Current cursor position
}

// NewSelection creates a selection from anchor to active.
func NewSelection(anchor, active Position) Selection {
	return Selection{Anchor: anchor, Active: active}
}

// NewCursorSelection creates a selection representing just a cursor.
func NewCursorSelection(p Position) Selection {
	return Selection{Anchor: p, Active: p}
}

// String returns a human-readable representation of the selection.
func (s Selection) String() string {
	return fmt.Sprintf("[%s->%s]", s.Anchor, s.Active)
}

// IsEmpty returns true if the selection has no extent.
func (s Selection) IsEmpty() bool {
	return s.Anchor.Compare(s.Active) == 0
}

// IsReversed returns true if the active end precedes the anchor.
func (s Selection) IsReversed() bool {
	return s.Active.Before(s.Anchor)
}

// Range returns the selection as a normalized range (Start <= End).
func (s Selection) Range() Range {
	return Range{Start: s.Anchor, End: s.Active}.Normalize()
}

// Start returns the lower bound of the selection.
func (s Selection) Start() Position {
	if s.IsReversed() {
		return s.Active
	}
	return s.Anchor
}

// End returns the upper bound of the selection.
func (s Selection) End() Position {
	if s.IsReversed() {
		return s.Anchor
	}
	return s.Active
}
