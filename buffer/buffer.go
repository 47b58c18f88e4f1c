package buffer

import (
	"errors"
	"strings"
	"sync"
)

// Errors returned by buffer operations.
var (
	// ErrLineOutOfRange indicates a line index beyond the buffer's line count.
	ErrLineOutOfRange = errors.New("line index out of range")
)

// LineEnding specifies the line ending style used to join lines.
type LineEnding uint8

const (
	LineEndingLF   LineEnding = iota // Unix: \n
	LineEndingCRLF                   // Windows: \r\n
	LineEndingCR                     // Old Mac: \r
)

// String returns the string representation of the line ending.
func (le LineEnding) String() string {
	switch le {
	case LineEndingCRLF:
		return "\\r\\n"
	case LineEndingCR:
		return "\\r"
	default:
		return "\\n"
	}
}

// Sequence returns the actual line ending characters.
func (le LineEnding) Sequence() string {
	switch le {
	case LineEndingCRLF:
		return "\r\n"
	case LineEndingCR:
		return "\r"
	default:
		return "\n"
	}
}

// DetectLineEnding inspects content and returns the line ending style,
// preferring CRLF, then CR, then LF. Content without any line break
// defaults to LF.
func DetectLineEnding(s string) LineEnding {
	if strings.Contains(s, "\r\n") {
		return LineEndingCRLF
	}
	if strings.Contains(s, "\r") {
		return LineEndingCR
	}
	return LineEndingLF
}

// splitLines splits text on any of \r\n, \r, or \n.
// The result is never empty; empty input yields a single empty line.
func splitLines(s string) []string {
	lines := []string{}
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\n':
			lines = append(lines, s[start:i])
			start = i + 1
		case '\r':
			lines = append(lines, s[start:i])
			if i+1 < len(s) && s[i+1] == '\n' {
				i++
			}
			start = i + 1
		}
	}
	lines = append(lines, s[start:])
	return lines
}

// LineBuffer owns a document's text as an ordered sequence of lines.
// It always holds at least one (possibly empty) line. Every successful
// mutation bumps the version counter by exactly one.
//
// All methods are thread-safe. Grouped edits can execute from a timer
// goroutine, so the buffer must tolerate a reader and a writer at once.
// Compound operations built from several calls still need external
// coordination if they must be atomic.
type LineBuffer struct {
	mu       sync.RWMutex
	lines    []string
	ending   LineEnding
	version  int
	tabWidth int
}

// New creates a new empty buffer.
func New(opts ...Option) *LineBuffer {
	b := &LineBuffer{
		lines:    []string{""},
		ending:   LineEndingLF,
		tabWidth: 4,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// NewFromString creates a buffer with initial content. The line ending
// style is detected from the content unless forced with WithLineEnding.
func NewFromString(s string, opts ...Option) *LineBuffer {
	b := &LineBuffer{
		lines:    splitLines(s),
		ending:   DetectLineEnding(s),
		tabWidth: 4,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Version returns the buffer's content generation. It starts at 0 and
// increases by one on every successful mutation.
func (b *LineBuffer) Version() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.version
}

// LineEnding returns the buffer's line ending style.
func (b *LineBuffer) LineEnding() LineEnding {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.ending
}

// TabWidth returns the buffer's tab width.
func (b *LineBuffer) TabWidth() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.tabWidth
}

// LineCount returns the number of lines. Always at least 1.
func (b *LineBuffer) LineCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.lines)
}

// LineContent returns the text of a specific line (without line ending).
// An out-of-range index is a caller logic bug and returns
// ErrLineOutOfRange rather than clamping.
func (b *LineBuffer) LineContent(line int) (string, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if line < 0 || line >= len(b.lines) {
		return "", ErrLineOutOfRange
	}
	return b.lines[line], nil
}

// Text returns the full buffer content, lines joined with the buffer's
// line ending.
func (b *LineBuffer) Text() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.text()
}

func (b *LineBuffer) text() string {
	return strings.Join(b.lines, b.ending.Sequence())
}

// TextRange returns the text covered by the given range. The range is
// validated and normalized first.
func (b *LineBuffer) TextRange(r Range) string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.textRange(r)
}

func (b *LineBuffer) textRange(r Range) string {
	r = b.validateRange(r)
	if r.IsSingleLine() {
		return b.lines[r.Start.Line][r.Start.Column:r.End.Column]
	}

	sep := b.ending.Sequence()
	var sb strings.Builder
	sb.WriteString(b.lines[r.Start.Line][r.Start.Column:])
	for line := r.Start.Line + 1; line < r.End.Line; line++ {
		sb.WriteString(sep)
		sb.WriteString(b.lines[line])
	}
	sb.WriteString(sep)
	sb.WriteString(b.lines[r.End.Line][:r.End.Column])
	return sb.String()
}

// ValidatePosition clamps a position into the buffer. Line is clamped
// into [0, lineCount-1], column into [0, len(line)]. Validation is total;
// it never fails.
func (b *LineBuffer) ValidatePosition(p Position) Position {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.validatePosition(p)
}

func (b *LineBuffer) validatePosition(p Position) Position {
	if p.Line < 0 {
		p.Line = 0
	} else if p.Line >= len(b.lines) {
		p.Line = len(b.lines) - 1
	}
	if p.Column < 0 {
		p.Column = 0
	} else if max := len(b.lines[p.Line]); p.Column > max {
		p.Column = max
	}
	return p
}

// ValidateRange clamps both endpoints independently, then normalizes a
// backwards range by swapping. Validation is order-correcting, not
// error-reporting.
func (b *LineBuffer) ValidateRange(r Range) Range {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.validateRange(r)
}

func (b *LineBuffer) validateRange(r Range) Range {
	r.Start = b.validatePosition(r.Start)
	r.End = b.validatePosition(r.End)
	return r.Normalize()
}

// SetText replaces the entire buffer content, re-detecting the line
// ending style from the new content. Bumps the version.
func (b *LineBuffer) SetText(s string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.lines = splitLines(s)
	b.ending = DetectLineEnding(s)
	b.version++
}

// Insert splices text into the buffer at the given position and returns
// the range spanned by the inserted text. The position is clamped first.
// Bumps the version exactly once regardless of how many lines the text
// introduces.
func (b *LineBuffer) Insert(pos Position, text string) Range {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.insert(pos, text)
}

func (b *LineBuffer) insert(pos Position, text string) Range {
	pos = b.validatePosition(pos)
	segments := splitLines(text)
	line := b.lines[pos.Line]
	before, after := line[:pos.Column], line[pos.Column:]

	var end Position
	if len(segments) == 1 {
		b.lines[pos.Line] = before + segments[0] + after
		end = Position{Line: pos.Line, Column: pos.Column + len(segments[0])}
	} else {
		last := segments[len(segments)-1]
		b.lines[pos.Line] = before + segments[0]

		inserted := make([]string, 0, len(segments)-1)
		inserted = append(inserted, segments[1:len(segments)-1]...)
		inserted = append(inserted, last+after)

		rest := make([]string, len(b.lines[pos.Line+1:]))
		copy(rest, b.lines[pos.Line+1:])
		b.lines = append(b.lines[:pos.Line+1], append(inserted, rest...)...)

		end = Position{Line: pos.Line + len(segments) - 1, Column: len(last)}
	}

	b.version++
	return Range{Start: pos, End: end}
}

// Delete removes the text covered by the given range and returns it as
// the caller's undo payload, joined with the buffer's line ending. The
// range is validated and normalized first. Bumps the version.
func (b *LineBuffer) Delete(r Range) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.remove(r)
}

func (b *LineBuffer) remove(r Range) string {
	r = b.validateRange(r)
	deleted := b.textRange(r)

	if r.IsSingleLine() {
		line := b.lines[r.Start.Line]
		b.lines[r.Start.Line] = line[:r.Start.Column] + line[r.End.Column:]
	} else {
		head := b.lines[r.Start.Line][:r.Start.Column]
		tail := b.lines[r.End.Line][r.End.Column:]
		b.lines[r.Start.Line] = head + tail
		b.lines = append(b.lines[:r.Start.Line+1], b.lines[r.End.Line+1:]...)
	}

	b.version++
	return deleted
}

// Replace deletes the range and inserts text at its start. It returns
// the replaced text and the range of the replacement. Replace is
// delete-then-insert and bumps the version twice; both steps happen
// under one lock so no reader can observe the intermediate state.
func (b *LineBuffer) Replace(r Range, text string) (string, Range) {
	b.mu.Lock()
	defer b.mu.Unlock()
	r = b.validateRange(r)
	old := b.remove(r)
	newRange := b.insert(r.Start, text)
	return old, newRange
}

// PositionToOffset converts a position to a linear character offset.
// Offsets count the line-ending separator between lines; the final line
// has none. The position is clamped first. Linear in the line count.
func (b *LineBuffer) PositionToOffset(p Position) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.positionToOffset(p)
}

func (b *LineBuffer) positionToOffset(p Position) int {
	p = b.validatePosition(p)
	sep := len(b.ending.Sequence())
	offset := 0
	for line := 0; line < p.Line; line++ {
		offset += len(b.lines[line]) + sep
	}
	return offset + p.Column
}

// OffsetToPosition converts a linear character offset to a position.
// Offsets landing inside a multi-byte separator map to the end of the
// preceding line. Out-of-range offsets clamp to the buffer bounds.
func (b *LineBuffer) OffsetToPosition(offset int) Position {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.offsetToPosition(offset)
}

func (b *LineBuffer) offsetToPosition(offset int) Position {
	if offset < 0 {
		return Position{}
	}
	sep := len(b.ending.Sequence())
	for line := 0; line < len(b.lines)-1; line++ {
		if offset <= len(b.lines[line]) {
			return Position{Line: line, Column: offset}
		}
		offset -= len(b.lines[line]) + sep
		if offset < 0 {
			return Position{Line: line, Column: len(b.lines[line])}
		}
	}
	last := len(b.lines) - 1
	if offset > len(b.lines[last]) {
		offset = len(b.lines[last])
	}
	return Position{Line: last, Column: offset}
}
