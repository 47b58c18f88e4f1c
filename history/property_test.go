package history

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/dshills/textcore/buffer"
)

// TestPropUndoAllRedoAllExactness executes a random sequence of text
// edits, undoes all of them, redoes all of them, and checks that both
// endpoints reproduce exact text.
func TestPropUndoAllRedoAllExactness(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		original := rapid.StringMatching(`[a-z \n]{0,30}`).Draw(t, "original")
		buf := buffer.NewFromString(original)
		h := New(0)

		n := rapid.IntRange(1, 8).Draw(t, "edits")
		for i := 0; i < n; i++ {
			start := buffer.Position{
				Line:   rapid.IntRange(0, buf.LineCount()-1).Draw(t, "startLine"),
				Column: rapid.IntRange(0, 30).Draw(t, "startCol"),
			}
			end := buffer.Position{
				Line:   rapid.IntRange(0, buf.LineCount()-1).Draw(t, "endLine"),
				Column: rapid.IntRange(0, 30).Draw(t, "endCol"),
			}
			text := rapid.StringMatching(`[a-z \n]{0,10}`).Draw(t, "text")

			// Ranges may be backwards or out of bounds; validation
			// normalizes them inside the edit.
			cmd := NewTextEdit(buf, buffer.Range{Start: start, End: end}, text)
			if err := h.Execute(cmd); err != nil {
				t.Fatalf("Execute: %v", err)
			}
		}
		final := buf.Text()

		for h.CanUndo() {
			if _, err := h.Undo(); err != nil {
				t.Fatalf("Undo: %v", err)
			}
		}
		if buf.Text() != original {
			t.Fatalf("undo all: %q, want %q", buf.Text(), original)
		}

		for h.CanRedo() {
			if _, err := h.Redo(); err != nil {
				t.Fatalf("Redo: %v", err)
			}
		}
		if buf.Text() != final {
			t.Fatalf("redo all: %q, want %q", buf.Text(), final)
		}
	})
}
