// Package history provides the reversible-command layer: every buffer
// mutation goes through a Command with execute/undo/redo, and History
// keeps bounded undo/redo stacks with change notifications.
//
// # Command Lifecycle
//
// A command moves through a strict state machine:
//
//	Idle -> Executed -> Undone -> Executed -> ...
//
// Execute is legal from Idle or Undone, Undo only from Executed, Redo only
// from Undone. Illegal transitions are loud errors because they indicate a
// misuse of the lifecycle contract. The single designed exception: calling
// Undo on an Idle command is a no-op, not an error.
//
// # History Linearity
//
// History is a linear model, not a tree. Executing a new command clears
// the redo stack; when the undo stack exceeds its maximum the oldest entry
// is evicted and its effect becomes unrecoverable. Clear empties both
// stacks without undoing anything, which is how document switches discard
// history.
//
// # Grouping
//
// The Grouper decides what counts as one undo step (an idle-timeout
// batching policy) without touching how the stacks work. It collects
// commands into a Composite and hands the closed group back to the caller,
// who pushes it through History.Execute.
package history
