package document

import (
	"errors"
	"sort"

	"github.com/dshills/textcore/buffer"
)

// Errors returned by document operations.
var (
	// ErrChangesOverlap indicates two changes in one batch cover
	// intersecting ranges.
	ErrChangesOverlap = errors.New("changes overlap")
)

// Change describes one edit in a batch: a range to replace and the new
// text. An empty range is an insertion; empty text is a deletion.
type Change struct {
	Range buffer.Range
	Text  string
}

// Document pairs a line buffer with immutable identity and a version
// counter bumped once per applied batch.
type Document struct {
	uri        string
	languageID string
	version    int
	buf        *buffer.LineBuffer
}

// New creates a document with the given identity and initial content.
func New(uri, languageID, content string, opts ...buffer.Option) *Document {
	return &Document{
		uri:        uri,
		languageID: languageID,
		buf:        buffer.NewFromString(content, opts...),
	}
}

// URI returns the document's URI.
func (d *Document) URI() string { return d.uri }

// LanguageID returns the document's language identifier.
func (d *Document) LanguageID() string { return d.languageID }

// Version returns the document's snapshot version: the number of change
// batches applied through ApplyChanges. The live buffer keeps its own
// finer-grained counter, available via Buffer().Version().
func (d *Document) Version() int { return d.version }

// Buffer returns the owned line buffer. Direct mutation is reserved for
// command implementations; arbitrary callers should go through commands
// to preserve undoability.
func (d *Document) Buffer() *buffer.LineBuffer { return d.buf }

// Read queries, delegating to the buffer.

// Text returns the full document text.
func (d *Document) Text() string { return d.buf.Text() }

// TextRange returns the text covered by the given range.
func (d *Document) TextRange(r buffer.Range) string { return d.buf.TextRange(r) }

// LineCount returns the number of lines.
func (d *Document) LineCount() int { return d.buf.LineCount() }

// LineContent returns the text of a specific line.
func (d *Document) LineContent(line int) (string, error) { return d.buf.LineContent(line) }

// ValidatePosition clamps a position into the document.
func (d *Document) ValidatePosition(p buffer.Position) buffer.Position {
	return d.buf.ValidatePosition(p)
}

// ValidateRange clamps and normalizes a range.
func (d *Document) ValidateRange(r buffer.Range) buffer.Range {
	return d.buf.ValidateRange(r)
}

// WordRangeAt returns the range of the word containing the position.
func (d *Document) WordRangeAt(p buffer.Position, pattern string) (buffer.Range, bool) {
	return d.buf.WordRangeAt(p, pattern)
}

// FindNext searches forward from the given position.
func (d *Document) FindNext(needle string, from buffer.Position, opts buffer.FindOptions) (buffer.Range, bool) {
	return d.buf.FindNext(needle, from, opts)
}

// FindAll returns all non-overlapping matches.
func (d *Document) FindAll(needle string, opts buffer.FindOptions) []buffer.Range {
	return d.buf.FindAll(needle, opts)
}

// ApplyChanges applies a batch of non-overlapping changes and returns a
// new Document with version+1. The receiver is not mutated.
//
// Changes are applied bottom-of-document first (descending start
// position) so that applying one change never invalidates the positions
// of the others. Overlapping changes in one batch are rejected with
// ErrChangesOverlap.
func (d *Document) ApplyChanges(changes []Change) (*Document, error) {
	fresh := buffer.NewFromString(d.buf.Text(), buffer.WithLineEnding(d.buf.LineEnding()))

	validated := make([]Change, len(changes))
	for i, c := range changes {
		validated[i] = Change{Range: fresh.ValidateRange(c.Range), Text: c.Text}
	}

	sort.SliceStable(validated, func(i, j int) bool {
		a, b := validated[i].Range, validated[j].Range
		if a.Start != b.Start {
			return b.Start.Before(a.Start)
		}
		return b.End.Before(a.End)
	})

	// Descending order: each change must end at or before the lowest
	// start seen so far. Comparing only neighbors would let an empty
	// change sharing a start with a wider one mask an overlap further
	// down the batch.
	if len(validated) > 0 {
		bound := validated[0].Range.Start
		for _, c := range validated[1:] {
			if bound.Before(c.Range.End) {
				return nil, ErrChangesOverlap
			}
			bound = c.Range.Start
		}
	}

	for _, c := range validated {
		fresh.Replace(c.Range, c.Text)
	}

	return &Document{
		uri:        d.uri,
		languageID: d.languageID,
		version:    d.version + 1,
		buf:        fresh,
	}, nil
}
