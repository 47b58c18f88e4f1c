package document

import (
	"errors"
	"testing"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/dshills/textcore/buffer"
)

func TestNewDocument(t *testing.T) {
	d := New("file:///tmp/main.go", "go", "package main\n")

	if d.URI() != "file:///tmp/main.go" {
		t.Errorf("URI() = %q", d.URI())
	}
	if d.LanguageID() != "go" {
		t.Errorf("LanguageID() = %q", d.LanguageID())
	}
	if d.Version() != 0 {
		t.Errorf("Version() = %d, want 0", d.Version())
	}
	if d.Text() != "package main\n" {
		t.Errorf("Text() = %q", d.Text())
	}
}

func TestDocumentDelegatesReads(t *testing.T) {
	d := New("file:///a", "plaintext", "hello world\nsecond")

	if d.LineCount() != 2 {
		t.Errorf("LineCount() = %d, want 2", d.LineCount())
	}
	line, err := d.LineContent(1)
	if err != nil || line != "second" {
		t.Errorf("LineContent(1) = %q, %v", line, err)
	}
	if _, err := d.LineContent(9); !errors.Is(err, buffer.ErrLineOutOfRange) {
		t.Errorf("LineContent(9) error = %v", err)
	}
	r, ok := d.WordRangeAt(buffer.Position{Line: 0, Column: 7}, "")
	if !ok || r.Start.Column != 6 || r.End.Column != 11 {
		t.Errorf("WordRangeAt = %v, %v", r, ok)
	}
	if got := d.ValidatePosition(buffer.Position{Line: -1, Column: 99}); (got != buffer.Position{Line: 0, Column: 11}) {
		t.Errorf("ValidatePosition = %v", got)
	}
}

func TestApplyChangesReturnsNewDocument(t *testing.T) {
	d := New("file:///a", "plaintext", "hello world")

	next, err := d.ApplyChanges([]Change{
		{Range: buffer.Range{Start: buffer.Position{Line: 0, Column: 6}, End: buffer.Position{Line: 0, Column: 11}}, Text: "Go"},
	})
	if err != nil {
		t.Fatalf("ApplyChanges: %v", err)
	}

	if next.Text() != "hello Go" {
		t.Errorf("next.Text() = %q, want %q", next.Text(), "hello Go")
	}
	if next.Version() != 1 {
		t.Errorf("next.Version() = %d, want 1", next.Version())
	}

	// The original is untouched.
	if d.Text() != "hello world" {
		t.Errorf("original mutated: %q", d.Text())
	}
	if d.Version() != 0 {
		t.Errorf("original version bumped: %d", d.Version())
	}
	if next.URI() != d.URI() || next.LanguageID() != d.LanguageID() {
		t.Error("identity must carry over to the snapshot")
	}
}

func TestApplyChangesDescendingOrder(t *testing.T) {
	d := New("file:///a", "plaintext", "aaa bbb ccc")

	// Supplied in ascending order; both must land correctly because the
	// batch is applied bottom-first.
	next, err := d.ApplyChanges([]Change{
		{Range: buffer.Range{Start: buffer.Position{Line: 0, Column: 0}, End: buffer.Position{Line: 0, Column: 3}}, Text: "X"},
		{Range: buffer.Range{Start: buffer.Position{Line: 0, Column: 8}, End: buffer.Position{Line: 0, Column: 11}}, Text: "Y"},
	})
	if err != nil {
		t.Fatalf("ApplyChanges: %v", err)
	}
	if next.Text() != "X bbb Y" {
		t.Errorf("next.Text() = %q, want %q", next.Text(), "X bbb Y")
	}
}

func TestApplyChangesMultiLine(t *testing.T) {
	d := New("file:///a", "plaintext", "one\ntwo\nthree")

	next, err := d.ApplyChanges([]Change{
		{Range: buffer.Range{Start: buffer.Position{Line: 0, Column: 3}, End: buffer.Position{Line: 1, Column: 0}}, Text: " "},
		{Range: buffer.Range{Start: buffer.Position{Line: 2, Column: 0}, End: buffer.Position{Line: 2, Column: 5}}, Text: "3"},
	})
	if err != nil {
		t.Fatalf("ApplyChanges: %v", err)
	}
	if next.Text() != "one two\n3" {
		t.Errorf("next.Text() = %q, want %q", next.Text(), "one two\n3")
	}
}

func TestApplyChangesRejectsOverlap(t *testing.T) {
	d := New("file:///a", "plaintext", "abcdef")

	_, err := d.ApplyChanges([]Change{
		{Range: buffer.Range{Start: buffer.Position{Line: 0, Column: 0}, End: buffer.Position{Line: 0, Column: 4}}, Text: "x"},
		{Range: buffer.Range{Start: buffer.Position{Line: 0, Column: 2}, End: buffer.Position{Line: 0, Column: 6}}, Text: "y"},
	})
	if !errors.Is(err, ErrChangesOverlap) {
		t.Errorf("error = %v, want ErrChangesOverlap", err)
	}
}

func TestApplyChangesRejectsOverlapAcrossEmptyChange(t *testing.T) {
	d := New("file:///a", "plaintext", "0123456789")

	// The empty change shares a start with the widest one; the two outer
	// changes still overlap and the whole batch must be rejected.
	_, err := d.ApplyChanges([]Change{
		{Range: buffer.Range{Start: buffer.Position{Line: 0, Column: 5}, End: buffer.Position{Line: 0, Column: 10}}, Text: "X"},
		{Range: buffer.Range{Start: buffer.Position{Line: 0, Column: 5}, End: buffer.Position{Line: 0, Column: 5}}, Text: "+"},
		{Range: buffer.Range{Start: buffer.Position{Line: 0, Column: 3}, End: buffer.Position{Line: 0, Column: 7}}, Text: "Y"},
	})
	if !errors.Is(err, ErrChangesOverlap) {
		t.Errorf("error = %v, want ErrChangesOverlap", err)
	}
}

func TestApplyChangesInsertAtReplaceStart(t *testing.T) {
	d := New("file:///a", "plaintext", "0123456789")

	// An insert touching the start of a replace is legal; the wider
	// change applies first so the inserted text lands before it.
	next, err := d.ApplyChanges([]Change{
		{Range: buffer.Range{Start: buffer.Position{Line: 0, Column: 5}, End: buffer.Position{Line: 0, Column: 5}}, Text: "+"},
		{Range: buffer.Range{Start: buffer.Position{Line: 0, Column: 5}, End: buffer.Position{Line: 0, Column: 10}}, Text: "X"},
	})
	if err != nil {
		t.Fatalf("ApplyChanges: %v", err)
	}
	if next.Text() != "01234+X" {
		t.Errorf("next.Text() = %q, want %q", next.Text(), "01234+X")
	}
}

func TestApplyChangesTouchingRangesAllowed(t *testing.T) {
	d := New("file:///a", "plaintext", "abcdef")

	next, err := d.ApplyChanges([]Change{
		{Range: buffer.Range{Start: buffer.Position{Line: 0, Column: 0}, End: buffer.Position{Line: 0, Column: 3}}, Text: "X"},
		{Range: buffer.Range{Start: buffer.Position{Line: 0, Column: 3}, End: buffer.Position{Line: 0, Column: 6}}, Text: "Y"},
	})
	if err != nil {
		t.Fatalf("ApplyChanges: %v", err)
	}
	if next.Text() != "XY" {
		t.Errorf("next.Text() = %q, want %q", next.Text(), "XY")
	}
}

func TestApplyChangesEmptyBatch(t *testing.T) {
	d := New("file:///a", "plaintext", "abc")

	next, err := d.ApplyChanges(nil)
	if err != nil {
		t.Fatalf("ApplyChanges: %v", err)
	}
	if next.Text() != "abc" || next.Version() != 1 {
		t.Errorf("next = %q v%d, want abc v1", next.Text(), next.Version())
	}
}

func TestDiff(t *testing.T) {
	d := New("file:///a", "plaintext", "hello world")
	next, err := d.ApplyChanges([]Change{
		{Range: buffer.Range{Start: buffer.Position{Line: 0, Column: 6}, End: buffer.Position{Line: 0, Column: 11}}, Text: "Go"},
	})
	if err != nil {
		t.Fatalf("ApplyChanges: %v", err)
	}

	diffs := d.Diff(next)
	var inserted, deleted string
	for _, diff := range diffs {
		switch diff.Type {
		case diffmatchpatch.DiffInsert:
			inserted += diff.Text
		case diffmatchpatch.DiffDelete:
			deleted += diff.Text
		}
	}
	if inserted != "Go" {
		t.Errorf("inserted = %q, want %q", inserted, "Go")
	}
	if deleted != "world" {
		t.Errorf("deleted = %q, want %q", deleted, "world")
	}
}
