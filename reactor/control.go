package reactor

import "github.com/xlcodes/reactor/internal"

// PauseTracking suspends dependency recording for the current
// goroutine: reads of any Signal/Derived inside the paused window are
// not tracked, even if an effect is currently running. Calls nest;
// pair each with ResetTracking or EnableTracking.
func PauseTracking() { internal.PauseTracking() }

// EnableTracking force-resumes tracking, pushing the previous state so
// a later ResetTracking still unwinds correctly — used to carve out a
// tracked read inside an otherwise paused window.
func EnableTracking() { internal.EnableTracking() }

// ResetTracking pops the innermost Pause/EnableTracking call, in LIFO
// order. Calling it with no matching pause resets to the tracking
// state (clamped, never goes negative).
func ResetTracking() { internal.ResetTracking() }

// Untrack runs fn with dependency tracking suspended, then restores
// the previous tracking state even if fn panics.
func Untrack[T any](fn func() T) T {
	PauseTracking()
	defer ResetTracking()
	return fn()
}

// PauseScheduling defers scheduler drains: Trigger calls still raise
// dirty levels and enqueue runs, but nothing actually executes until
// the matching ResetScheduling brings the pause depth back to zero.
// Calls nest.
func PauseScheduling() { internal.PauseScheduling() }

// ResetScheduling decrements the pause-scheduling depth and, if it
// reaches zero, drains every run enqueued while paused.
func ResetScheduling() { internal.ResetScheduling() }

// Batch runs fn with scheduling paused, so that any number of signal
// writes inside it coalesce into a single scheduler drain once fn
// returns (spec §4.7). Nested batches are safe: only the outermost
// call actually drains.
func Batch(fn func()) {
	PauseScheduling()
	defer ResetScheduling()
	fn()
}
