package buffer

import "fmt"

// Range represents a span of text between two positions.
// Start is inclusive, End is exclusive. A Range constructed backwards
// (Start after End) is normalized by Normalize or by buffer validation.
type Range struct {
	Start Position // Inclusive start position
	End   Position // Exclusive end position
}

// NewRange creates a new Range from start and end positions.
func NewRange(start, end Position) Range {
	return Range{Start: start, End: end}
}

// String returns a human-readable representation of the range.
func (r Range) String() string {
	return fmt.Sprintf("[%s:%s)", r.Start, r.End)
}

// IsEmpty returns true if start equals end.
func (r Range) IsEmpty() bool {
	return r.Start.Compare(r.End) == 0
}

// IsValid returns true if start <= end.
func (r Range) IsValid() bool {
	return r.Start.Compare(r.End) <= 0
}

// IsSingleLine returns true if the range spans only one line.
func (r Range) IsSingleLine() bool {
	return r.Start.Line == r.End.Line
}

// Normalize returns the range with endpoints swapped if it is backwards.
func (r Range) Normalize() Range {
	if r.Start.After(r.End) {
		return Range{Start: r.End, End: r.Start}
	}
	return r
}

// Contains returns true if the given position is within the range.
func (r Range) Contains(p Position) bool {
	return p.Compare(r.Start) >= 0 && p.Compare(r.End) < 0
}

// ContainsRange returns true if the given range is entirely within this range.
func (r Range) ContainsRange(other Range) bool {
	return other.Start.Compare(r.Start) >= 0 && other.End.Compare(r.End) <= 0
}

// Overlaps returns true if this range overlaps with another range.
// Touching ranges (one ending where the other starts) do not overlap.
func (r Range) Overlaps(other Range) bool {
	return r.Start.Before(other.End) && other.Start.Before(r.End)
}
