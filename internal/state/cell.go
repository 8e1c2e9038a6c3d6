// Package state holds the single-value change-notified cell the screens
// build on. A Cell is the unit of subscription: the rendering layer re-draws
// a screen exactly when one of its cells commits a write.
package state

// Cell holds one value of type T plus a revision counter. Every Set bumps
// the revision, so two observations of the cell compare as "the same state"
// iff their revisions are equal, even when T's content did not change.
// That keeps equality-based change detection firing on every logical write.
//
// All mutation is expected to happen on the Bubble Tea update goroutine;
// Cell is not safe for concurrent use.
type Cell[T any] struct {
	value  T
	rev    uint64
	notify func()
}

// NewCell returns a cell seeded with v at revision zero.
func NewCell[T any](v T) *Cell[T] {
	return &Cell[T]{value: v}
}

// Get returns the current value. No side effects.
func (c *Cell[T]) Get() T { return c.value }

// Rev returns the cell's revision stamp. It changes on every Set.
func (c *Cell[T]) Rev() uint64 { return c.rev }

// Set stores v, bumps the revision and notifies the subscriber, in that
// order. Set is total: there is no failing case.
func (c *Cell[T]) Set(v T) {
	c.value = v
	c.rev++
	if c.notify != nil {
		c.notify()
	}
}

// Subscribe registers fn to run synchronously after each Set. A cell has at
// most one subscriber (its owning screen); a later call replaces the earlier
// one. Subscribe(nil) detaches, which is how a screen unmounts: writes that
// land afterwards still commit but nobody is told.
func (c *Cell[T]) Subscribe(fn func()) {
	c.notify = fn
}
