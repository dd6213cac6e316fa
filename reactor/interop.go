package reactor

import "github.com/xlcodes/reactor/internal"

// ProjectKey builds a signal-shaped view onto a single entry of a
// reactive map (spec §4.8's `toRef`/`object_property_ref`): reading it
// reads the entry, writing it writes the entry, and either direction
// tracks/triggers through the map's own per-key dependency rather than
// a dependency private to the returned Signal.
func ProjectKey[K comparable, V any](m *ReactiveMap[K, V], key K) *Signal[V] {
	return NewCustomSignal(func(track, trigger func()) (func() V, func(V)) {
		get := func() V { return m.Get(key) }
		set := func(v V) { m.Set(key, v) }
		return get, set
	})
}

// ProjectAll builds one ProjectKey view per key currently present in m
// (spec §4.8's `toRefs`): a snapshot of the key set taken at call time,
// not a live view of keys added afterward.
func ProjectAll[K comparable, V any](m *ReactiveMap[K, V]) map[K]*Signal[V] {
	if m.IsReadonly() {
		internal.Warnf("ProjectAll called on a readonly map; every projected signal will warn and no-op on write")
	}

	out := make(map[K]*Signal[V])
	for k := range m.Range() {
		out[k] = ProjectKey(m, k)
	}
	return out
}

// Unwrap reads through a Signal, the generic-friendly equivalent of
// spec §4.8's `unref`.
func Unwrap[T any](s *Signal[T]) T { return s.Value() }

// ToValuer is satisfied by anything with a Value() T method —
// *Signal[T] and *Derived[T] both qualify, letting ToValue treat a
// plain value, a signal, or a derivation uniformly.
type ToValuer[T any] interface {
	Value() T
}

// ToValue reads x's current value, mirroring spec §4.8's `toValue`.
func ToValue[T any](x ToValuer[T]) T { return x.Value() }

// TriggerSignal forces s's subscribers to re-run without a value
// change, the package-level spelling of Signal.TriggerRef.
func TriggerSignal[T any](s *Signal[T]) { s.TriggerRef() }
