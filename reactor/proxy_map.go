package reactor

import (
	"fmt"
	"iter"
	"reflect"
	"sync"

	"github.com/xlcodes/reactor/internal"
)

// ReactiveMap is the Go-native stand-in for a proxied JS Map/object
// from spec §4.5: a keyed container backed by a plain Go map, with a
// per-key Dep table instead of a Proxy's get/set/deleteProperty traps.
// Spec §9's design note calls this out explicitly — Go has no dynamic
// property interception, so the wrapper family is typed and explicit
// rather than one generic Proxy(target) entry point.
type ReactiveMap[K comparable, V any] struct {
	mu   sync.RWMutex
	data map[K]V
	deps *internal.DepTable
	mode proxyMode
}

// NewReactiveMap wraps data (taking ownership of it — callers should
// not mutate data directly afterward) as a reactive keyed container.
// Wrapping the same map under the same mode a second time returns the
// wrapper already cached for it rather than a fresh one, so
// reactive(x) == reactive(x) the way spec §4.5 requires.
func NewReactiveMap[K comparable, V any](data map[K]V, opts ...ProxyOption) *ReactiveMap[K, V] {
	if data == nil {
		data = make(map[K]V)
	}
	mode := applyOptions(opts)
	key := identityKey{ptr: reflect.ValueOf(data).Pointer(), mode: mode}

	return cacheFor[ReactiveMap[K, V]]().GetOrCreate(key, func() *ReactiveMap[K, V] {
		return &ReactiveMap[K, V]{
			data: data,
			deps: internal.NewDepTable(),
			mode: mode,
		}
	})
}

func (m *ReactiveMap[K, V]) IsReactive() bool { return !m.mode.readOnly }
func (m *ReactiveMap[K, V]) IsReadonly() bool { return m.mode.readOnly }
func (m *ReactiveMap[K, V]) IsShallow() bool  { return m.mode.shallow }
func (m *ReactiveMap[K, V]) rawAny() any {
	m.mu.RLock()
	defer m.mu.RUnlock()
	cp := make(map[K]V, len(m.data))
	for k, v := range m.data {
		cp[k] = v
	}
	return cp
}

// Get reads the value at key, tracking a dependency on that key alone
// (a miss still tracks, so a later Set of a not-yet-present key wakes
// up readers that checked for it).
func (m *ReactiveMap[K, V]) Get(key K) V {
	internal.Track(m.deps.Get(key), internal.DebugEvent{Target: m, Type: internal.EventGet, Key: key})
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.data[key]
}

// Has reports whether key is present, tracking the same per-key Dep
// Get uses.
func (m *ReactiveMap[K, V]) Has(key K) bool {
	internal.Track(m.deps.Get(key), internal.DebugEvent{Target: m, Type: internal.EventHas, Key: key})
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.data[key]
	return ok
}

// Len returns the number of entries, tracking the map-key-iterate key —
// any Add or Delete changes the count and must wake Len readers, while a
// value-only Set (which fires just the key and the iterate key) does not.
func (m *ReactiveMap[K, V]) Len() int {
	internal.Track(m.deps.Get(internal.MapKeyIterateKey), internal.DebugEvent{Target: m, Type: internal.EventIterate})
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}

// Range returns an iterator over a snapshot of the map's entries,
// tracking both the iterate key and the map-key-iterate key (spec
// §4.5: keyed containers fan Add/Delete out to both, since a `for...of`
// over Map entries cares about key identity in a way a plain object's
// `for...in` does not). Tracking happens at the call to Range itself,
// not lazily as the returned iterator is consumed.
func (m *ReactiveMap[K, V]) Range() iter.Seq2[K, V] {
	internal.Track(m.deps.Get(internal.IterateKey), internal.DebugEvent{Target: m, Type: internal.EventIterate})
	internal.Track(m.deps.Get(internal.MapKeyIterateKey), internal.DebugEvent{Target: m, Type: internal.EventIterate})

	m.mu.RLock()
	snapshot := make(map[K]V, len(m.data))
	for k, v := range m.data {
		snapshot[k] = v
	}
	m.mu.RUnlock()

	return func(yield func(K, V) bool) {
		for k, v := range snapshot {
			if !yield(k, v) {
				return
			}
		}
	}
}

// Set writes key to value. A brand-new key fans out as an Add; an
// existing key whose value actually changes (NaN-aware) fans out as a
// Set. Writing the same value again is a no-op, matching spec §4.5's
// blanket "no-op on unchanged value" rule.
func (m *ReactiveMap[K, V]) Set(key K, value V) {
	if m.mode.readOnly {
		internal.Warnf("Set operation on key %q failed: target is readonly", fmt.Sprint(key))
		return
	}

	m.mu.Lock()
	old, existed := m.data[key]
	changed := !existed || !internal.IsEqual(any(old), any(value))
	m.data[key] = value
	m.mu.Unlock()

	if !existed {
		m.triggerAdd(key, value)
	} else if changed {
		m.triggerSet(key, old, value)
	}
}

// Delete removes key, firing the Delete fan-out rule if it was present.
func (m *ReactiveMap[K, V]) Delete(key K) {
	if m.mode.readOnly {
		internal.Warnf("Delete operation on key %q failed: target is readonly", fmt.Sprint(key))
		return
	}

	m.mu.Lock()
	old, existed := m.data[key]
	delete(m.data, key)
	m.mu.Unlock()

	if existed {
		m.triggerDelete(key, old)
	}
}

// Clear empties the map and triggers every Dep ever registered on it —
// the "Clear fans out to every existing dep on the target" rule, since
// a single clear affects an unbounded set of keys at once.
func (m *ReactiveMap[K, V]) Clear() {
	if m.mode.readOnly {
		internal.Warnf("Clear operation failed: target is readonly")
		return
	}

	m.mu.Lock()
	empty := len(m.data) == 0
	m.data = make(map[K]V)
	m.mu.Unlock()

	if empty {
		return
	}

	internal.Batched(func() {
		evt := internal.DebugEvent{Target: m, Type: internal.EventClear}
		for _, dep := range m.deps.All() {
			internal.Trigger(dep, internal.Dirty, evt)
		}
	})
}

func (m *ReactiveMap[K, V]) triggerAdd(key K, value V) {
	internal.Batched(func() {
		evt := internal.DebugEvent{Target: m, Type: internal.EventAdd, Key: key, NewValue: value}
		if dep, ok := m.deps.Peek(key); ok {
			internal.Trigger(dep, internal.Dirty, evt)
		}
		if dep, ok := m.deps.Peek(internal.IterateKey); ok {
			internal.Trigger(dep, internal.Dirty, evt)
		}
		if dep, ok := m.deps.Peek(internal.MapKeyIterateKey); ok {
			internal.Trigger(dep, internal.Dirty, evt)
		}
	})
}

func (m *ReactiveMap[K, V]) triggerSet(key K, old, value V) {
	internal.Batched(func() {
		evt := internal.DebugEvent{Target: m, Type: internal.EventSet, Key: key, OldValue: old, NewValue: value}
		if dep, ok := m.deps.Peek(key); ok {
			internal.Trigger(dep, internal.Dirty, evt)
		}
		// A Map's value-changing Set still fans out to the iterate key:
		// range-over-entries readers depend on values, not just key
		// presence, unlike a plain keyed object.
		if dep, ok := m.deps.Peek(internal.IterateKey); ok {
			internal.Trigger(dep, internal.Dirty, evt)
		}
	})
}

func (m *ReactiveMap[K, V]) triggerDelete(key K, old V) {
	internal.Batched(func() {
		evt := internal.DebugEvent{Target: m, Type: internal.EventDelete, Key: key, OldValue: old}
		if dep, ok := m.deps.Peek(key); ok {
			internal.Trigger(dep, internal.Dirty, evt)
		}
		if dep, ok := m.deps.Peek(internal.IterateKey); ok {
			internal.Trigger(dep, internal.Dirty, evt)
		}
		if dep, ok := m.deps.Peek(internal.MapKeyIterateKey); ok {
			internal.Trigger(dep, internal.Dirty, evt)
		}
	})
}
