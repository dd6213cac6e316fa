package reactor

import "github.com/xlcodes/reactor/internal"

// Signal is a single mutable reactive cell holding a T (spec §3/§4.8's
// "ref"). The zero value is not usable; construct one with NewSignal
// or a sibling constructor.
type Signal[T any] struct {
	cell *internal.Signal
}

// NewSignal creates a deep signal over initial: writes of a value that
// compares unequal (NaN-aware) to the current one trigger subscribers.
func NewSignal[T any](initial T) *Signal[T] {
	return &Signal[T]{cell: internal.NewSignal(initial, false)}
}

// NewShallowSignal creates a shallow signal: equivalent to NewSignal at
// this layer (Go's static types mean there's no nested proxy-wrapping
// for a shallow signal to skip), but shallowness is still observable
// via IsShallow and TriggerRef remains the documented way to force a
// refresh after mutating T in place.
func NewShallowSignal[T any](initial T) *Signal[T] {
	return &Signal[T]{cell: internal.NewSignal(initial, true)}
}

// NewCustomSignal builds a signal whose get/set are supplied by
// factory, with track/trigger callbacks bound to the cell's own Dep —
// the customRef escape hatch from spec §4.8, for debounced or
// validated writes.
func NewCustomSignal[T any](factory func(track, trigger func()) (get func() T, set func(T))) *Signal[T] {
	cell := internal.NewCustomSignal(func(track, trigger func()) (func() any, func(any)) {
		get, set := factory(track, trigger)
		return func() any { return get() },
			func(v any) { set(v.(T)) }
	})
	return &Signal[T]{cell: cell}
}

// FromGetter builds a read-only signal whose value is always fn's
// current result; writes warn and are ignored.
func FromGetter[T any](fn func() T) *Signal[T] {
	cell := internal.NewGetterSignal(func() any { return fn() })
	return &Signal[T]{cell: cell}
}

// Value reads the current value, tracking a dependency for the
// currently running effect (if any).
func (s *Signal[T]) Value() T {
	v, _ := s.cell.Read().(T)
	return v
}

// Peek reads the current value without tracking a dependency.
func (s *Signal[T]) Peek() T {
	v, _ := s.cell.Peek().(T)
	return v
}

// Set writes a new value, triggering subscribers only if it actually
// changed.
func (s *Signal[T]) Set(v T) {
	s.cell.Write(v)
}

// Update reads the current value, applies fn, and writes the result
// back in one step — a convenience for the common "derive from self"
// write pattern.
func (s *Signal[T]) Update(fn func(T) T) {
	s.cell.Write(fn(s.Value()))
}

// TriggerRef forces a Dirty notification without a value change, used
// after mutating a shallow signal's payload in place.
func (s *Signal[T]) TriggerRef() { s.cell.TriggerRef() }

func (s *Signal[T]) IsReadonly() bool { return s.cell.IsReadOnly() }
func (s *Signal[T]) IsShallow() bool  { return s.cell.IsShallow() }

// IsSignal reports whether x is a *Signal[T] for some T.
func IsSignal(x any) bool {
	switch x.(type) {
	case interface{ signalMarker() }:
		return true
	default:
		return false
	}
}

func (s *Signal[T]) signalMarker() {}
