// Package engine combines a document, a command history, and a command
// grouper into the mutation surface of a headless editing session.
//
// Every mutation goes through a command executed by the history, so the
// full edit sequence is undoable. Direct buffer access stays available
// through Document().Buffer() for command implementations, but arbitrary
// callers should use the engine's Insert, Delete, and Replace.
//
// The engine follows a single-writer model: one logical sequence of
// calls per engine. It adds no locking of its own; sharing an engine
// across concurrent writers requires external mutual exclusion.
package engine
