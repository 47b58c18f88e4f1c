package buffer

import "regexp"

// DefaultWordPattern matches runs of word characters. It is the pattern
// WordRangeAt uses when none is supplied.
const DefaultWordPattern = `\w+`

// FindOptions controls FindNext and FindAll. The zero value is a
// case-insensitive, non-whole-word, literal text search.
type FindOptions struct {
	CaseSensitive bool // Match case exactly
	WholeWord     bool // Require word boundaries around the match
	Regex         bool // Interpret the needle as a regular expression
}

// compileSearch builds the effective pattern for a search. A malformed
// user-supplied regex returns an error; callers treat that as "no match",
// never as a failure. Search is a best-effort query.
func compileSearch(needle string, opts FindOptions) (*regexp.Regexp, error) {
	pattern := needle
	if !opts.Regex {
		pattern = regexp.QuoteMeta(needle)
	}
	if opts.WholeWord {
		pattern = `\b(?:` + pattern + `)\b`
	}
	if !opts.CaseSensitive {
		pattern = `(?i)` + pattern
	}
	return regexp.Compile(pattern)
}

// FindNext searches the buffer's full joined text forward from the given
// position and returns the range of the first match starting at or after
// it. It returns false when there is no match or the pattern is invalid.
//
// Matching always runs over the full text, never a suffix, so anchors
// and word boundaries see the characters before the starting position.
func (b *LineBuffer) FindNext(needle string, from Position, opts FindOptions) (Range, bool) {
	re, err := compileSearch(needle, opts)
	if err != nil {
		return Range{}, false
	}

	b.mu.RLock()
	defer b.mu.RUnlock()
	offset := b.positionToOffset(from)
	for _, loc := range re.FindAllStringIndex(b.text(), -1) {
		if loc[0] < offset {
			continue
		}
		return Range{
			Start: b.offsetToPosition(loc[0]),
			End:   b.offsetToPosition(loc[1]),
		}, true
	}
	return Range{}, false
}

// FindAll returns the ranges of every non-overlapping match in the
// buffer, in document order.
func (b *LineBuffer) FindAll(needle string, opts FindOptions) []Range {
	re, err := compileSearch(needle, opts)
	if err != nil {
		return nil
	}

	b.mu.RLock()
	defer b.mu.RUnlock()
	var matches []Range
	for _, loc := range re.FindAllStringIndex(b.text(), -1) {
		matches = append(matches, Range{
			Start: b.offsetToPosition(loc[0]),
			End:   b.offsetToPosition(loc[1]),
		})
	}
	return matches
}

// WordRangeAt returns the range of the word containing the given
// position, scanning matches of the word pattern across that single line
// only. A match contains the position when its span includes the column
// inclusively on both ends. Pass an empty pattern for the default \w+.
// Returns false when the line is out of range, the pattern is invalid,
// or no word contains the column.
func (b *LineBuffer) WordRangeAt(pos Position, pattern string) (Range, bool) {
	if pattern == "" {
		pattern = DefaultWordPattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return Range{}, false
	}

	b.mu.RLock()
	defer b.mu.RUnlock()
	if pos.Line < 0 || pos.Line >= len(b.lines) {
		return Range{}, false
	}
	line := b.lines[pos.Line]
	if pos.Column < 0 || pos.Column > len(line) {
		return Range{}, false
	}
	for _, loc := range re.FindAllStringIndex(line, -1) {
		if loc[0] <= pos.Column && pos.Column <= loc[1] {
			return Range{
				Start: Position{Line: pos.Line, Column: loc[0]},
				End:   Position{Line: pos.Line, Column: loc[1]},
			}, true
		}
	}
	return Range{}, false
}
