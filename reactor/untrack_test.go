package reactor

import "fmt"

// A read wrapped in Untrack inside a running effect registers no
// dependency: writing to it afterward does not re-run the effect.
func ExampleUntrack() {
	a := NewSignal(1)
	b := NewSignal(2)

	NewEffect(func() {
		val := Untrack(func() int { return b.Value() })
		fmt.Println("ran", a.Value(), val)
	})

	b.Set(20) // untracked, must not re-run
	a.Set(10) // tracked, re-runs and re-reads the now-current b

	// Output:
	// ran 1 2
	// ran 10 20
}

// EnableTracking carves out a tracked read inside an otherwise paused
// window, and ResetTracking unwinds the Pause/Enable stack in LIFO
// order back to the effect's normal tracking state.
func ExamplePauseTracking_enableTrackingCarveOut() {
	a := NewSignal(1)
	b := NewSignal(2)

	NewEffect(func() {
		PauseTracking()
		a.Value()
		EnableTracking()
		b.Value()
		ResetTracking()
		ResetTracking()
		fmt.Println("ran")
	})

	a.Set(10) // untracked, must not re-run
	b.Set(20) // tracked, must re-run

	// Output:
	// ran
	// ran
}
