package internal

// Context holds the ambient state the dependency-tracking protocol
// threads implicitly through the call stack: which Effect is
// currently running, whether reads should track at all, which Scope
// is active, and how deep the current pause-scheduling nesting is.
// Spec §9 models this as "a single thread-local context struct
// threaded implicitly"; here it is one Context per goroutine (see
// runtime.go), so two goroutines each get an independent signal graph.
type Context struct {
	ActiveEffect *Effect
	ActiveScope  *Scope

	trackingStack []bool
	tracking      bool

	pauseScheduleDepth int
	scheduler          *Scheduler
}

func newContext() *Context {
	return &Context{
		tracking:  true,
		scheduler: NewScheduler(),
	}
}

// ShouldTrack reports whether a read should register a dependency:
// there must be an active effect, and tracking must not be paused.
func (c *Context) ShouldTrack() bool {
	return c.tracking && c.ActiveEffect != nil
}

// PauseTracking saves the current tracking flag and disables tracking.
// Stack-structured: pairs with ResetTracking/EnableTracking.
func (c *Context) PauseTracking() {
	c.trackingStack = append(c.trackingStack, c.tracking)
	c.tracking = false
}

// EnableTracking saves the current tracking flag and enables tracking.
func (c *Context) EnableTracking() {
	c.trackingStack = append(c.trackingStack, c.tracking)
	c.tracking = true
}

// ResetTracking restores the tracking flag saved by the most recent
// PauseTracking/EnableTracking call. An unmatched call is treated as
// a reset to the default (tracking enabled) per spec §7's "schedule/
// tracking stack underflow... never throws".
func (c *Context) ResetTracking() {
	n := len(c.trackingStack)
	if n == 0 {
		c.tracking = true
		return
	}
	c.tracking = c.trackingStack[n-1]
	c.trackingStack = c.trackingStack[:n-1]
}

// runWithEffect installs effect as the active effect for the duration
// of fn, restoring the previous active effect afterwards even if fn
// panics.
func (c *Context) runWithEffect(effect *Effect, fn func()) {
	prev := c.ActiveEffect
	c.ActiveEffect = effect
	defer func() { c.ActiveEffect = prev }()

	fn()
}

// RunUntracked runs fn with tracking disabled, per the Untrack public
// API: reads inside fn register no dependencies.
func (c *Context) RunUntracked(fn func()) {
	c.PauseTracking()
	defer c.ResetTracking()

	fn()
}

// Scheduler returns this goroutine's scheduler.
func (c *Context) Scheduler() *Scheduler { return c.scheduler }
