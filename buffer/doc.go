// Package buffer provides the canonical in-memory representation of a
// document's text: an ordered sequence of lines with a detected line-ending
// style and a monotonically increasing version counter.
//
// The buffer is the single source of truth for text content. It supports
// insert, delete, and replace mutations, conversion between line/column
// positions and linear offsets, word-range lookup, and literal or regular
// expression search.
//
// # Positions and Validation
//
// Positions are zero-based line/column pairs. A Position is not inherently
// valid; validity is always relative to a specific buffer state. Validation
// is total and clamping: ValidatePosition never fails, it returns the
// nearest in-bounds position. ValidateRange additionally normalizes
// backwards ranges by swapping the endpoints.
//
// This leniency is deliberate and applies only to user-driven coordinates.
// Direct line access (LineContent) treats an out-of-range index as a caller
// logic bug and returns ErrLineOutOfRange.
//
// # Versioning
//
// Every successful mutating call (SetText, Insert, Delete, Replace) bumps
// the version by exactly one. Read operations never change the version.
// Replace is delete-then-insert and therefore bumps the version twice;
// collaborators keying caches on the version only see extra misses, never
// stale content.
//
// # Concurrency
//
// The buffer is a single-writer structure. Mutations complete synchronously
// and are never safe for concurrent writers; callers that share a buffer
// across goroutines must provide their own mutual exclusion.
package buffer
