package internal

import "sync"

var contexts sync.Map // goroutine id (int64) -> *Context

// Current returns the ambient Context for the calling goroutine,
// creating one on first use. The engine's invariant of "a single
// mutator" (spec §5) is enforced per goroutine rather than
// process-wide: this matches the teacher's existing pattern of a
// goid-keyed runtime table, and lets independent goroutines each run
// their own disjoint signal graph without locking the hot tracking
// path.
func Current() *Context {
	gid := getGID()

	if c, ok := contexts.Load(gid); ok {
		return c.(*Context)
	}

	c := newContext()
	contexts.Store(gid, c)
	return c
}
