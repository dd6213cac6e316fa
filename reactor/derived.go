package reactor

import "github.com/xlcodes/reactor/internal"

// Derived is a lazily-evaluated, memoized derivation over other
// signals (spec §3/§4.3's "computed"). It recomputes on demand the
// first time it's read after one of its dependencies changes, never
// eagerly.
type Derived[T any] struct {
	computed *internal.Computed
}

// NewDerived builds a read-only derivation from getter.
func NewDerived[T any](getter func() T) *Derived[T] {
	c := internal.NewComputed(func() any { return getter() })
	return &Derived[T]{computed: c}
}

// NewWritableDerived builds a derivation with an explicit setter,
// letting callers assign through it the way they would a plain
// signal (spec §4.3's writable computed).
func NewWritableDerived[T any](getter func() T, setter func(T)) *Derived[T] {
	c := internal.NewWritableComputed(
		func() any { return getter() },
		func(v any) { setter(v.(T)) },
	)
	return &Derived[T]{computed: c}
}

// Value reads the current (possibly freshly recomputed) value,
// tracking a dependency for the currently running effect.
func (d *Derived[T]) Value() T {
	v, _ := d.computed.Value().(T)
	return v
}

// Set forwards to the writable setter, or warns and no-ops if this
// derivation is read-only.
func (d *Derived[T]) Set(v T) { d.computed.Set(v) }

func (d *Derived[T]) IsReadonly() bool { return d.computed.IsReadOnly() }

// SetCacheable toggles memoization. false forces every read to
// recompute — the server-side-snapshot escape hatch from spec §3.
func (d *Derived[T]) SetCacheable(v bool) { d.computed.SetCacheable(v) }

// Stop tears down the derivation's underlying effect, removing it
// from its dependencies' subscriber lists.
func (d *Derived[T]) Stop() { d.computed.Stop() }
