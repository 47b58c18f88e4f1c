package history

import (
	"sync"
	"time"
)

// DefaultGroupWindow is the idle timeout after which an open group
// auto-closes.
const DefaultGroupWindow = 300 * time.Millisecond

// Grouper coalesces commands into composite undo units using an idle
// timeout. It maintains at most one open composite and one pending
// timer; every Add resets the timer, and a group with no activity inside
// the window closes on its own.
//
// The grouper never touches a History. End hands the open composite back
// to the caller, and auto-closed groups are delivered through the
// OnClose callback; in both cases the caller decides what to execute.
type Grouper struct {
	mu      sync.Mutex
	window  time.Duration
	onClose func(*Composite)

	current *Composite
	timer   *time.Timer
	gen     uint64 // invalidates stale timer callbacks
	stopped bool
}

// NewGrouper creates a grouper with the given idle window. Non-positive
// windows use DefaultGroupWindow. onClose may be nil; auto-closed groups
// are then discarded.
func NewGrouper(window time.Duration, onClose func(*Composite)) *Grouper {
	if window <= 0 {
		window = DefaultGroupWindow
	}
	return &Grouper{window: window, onClose: onClose}
}

// Start opens a new empty group, closing any prior one. The prior
// group's timer is cancelled and the group itself is delivered to
// OnClose if it has any commands.
func (g *Grouper) Start(label string) {
	g.mu.Lock()
	closed := g.closeLocked()
	if g.stopped {
		g.mu.Unlock()
		g.deliver(closed)
		return
	}
	g.current = NewComposite(label)
	g.armLocked()
	g.mu.Unlock()

	g.deliver(closed)
}

// Add appends a command to the current group and resets the idle timer.
// If no group is open one is started, so a command always lands in a
// group.
func (g *Grouper) Add(cmd Command) {
	g.mu.Lock()
	if g.stopped {
		g.mu.Unlock()
		return
	}
	if g.current == nil {
		g.current = NewComposite("")
	}
	_ = g.current.Add(cmd) // open groups are never sealed
	g.armLocked()
	g.mu.Unlock()
}

// End cancels the timer and returns the open group, which may still be
// empty, for the caller to push through History.Execute. Returns nil if
// no group is open. End does not invoke OnClose.
func (g *Grouper) End() *Composite {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.closeLocked()
}

// IsOpen returns true if a group is currently collecting commands.
func (g *Grouper) IsOpen() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.current != nil
}

// Window returns the configured idle window.
func (g *Grouper) Window() time.Duration {
	return g.window
}

// Stop disposes the grouper. Any open group is discarded and no timer
// fires afterwards.
func (g *Grouper) Stop() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.stopped = true
	g.closeLocked()
}

// closeLocked cancels the pending timer and detaches the current group.
func (g *Grouper) closeLocked() *Composite {
	g.gen++
	if g.timer != nil {
		g.timer.Stop()
		g.timer = nil
	}
	c := g.current
	g.current = nil
	return c
}

// armLocked (re)starts the idle timer for the current generation.
func (g *Grouper) armLocked() {
	g.gen++
	gen := g.gen
	if g.timer != nil {
		g.timer.Stop()
	}
	g.timer = time.AfterFunc(g.window, func() {
		g.autoClose(gen)
	})
}

// autoClose fires when the idle window elapses with no Add. A stale
// callback from a cancelled timer is ignored via the generation check.
func (g *Grouper) autoClose(gen uint64) {
	g.mu.Lock()
	if g.stopped || gen != g.gen {
		g.mu.Unlock()
		return
	}
	closed := g.closeLocked()
	g.mu.Unlock()

	g.deliver(closed)
}

// deliver hands a closed non-empty group to the OnClose callback.
func (g *Grouper) deliver(c *Composite) {
	if c == nil || c.IsEmpty() || g.onClose == nil {
		return
	}
	g.onClose(c)
}
