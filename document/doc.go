// Package document wraps a line buffer with document identity (URI and
// language ID) and a version counter, and provides the snapshot path for
// applying a batch of changes.
//
// A Document is conceptually immutable from the outside: ApplyChanges
// builds a fresh buffer and returns a new Document with version+1, leaving
// the receiver untouched. The underlying buffer is still reachable through
// Buffer() so that command implementations can mutate it in place during a
// live single-writer editing session. Both paths are intentional: in-place
// mutation for live editing, snapshot construction for versioned history
// and diffing.
package document
