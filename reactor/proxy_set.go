package reactor

import (
	"iter"
	"reflect"
	"sync"

	"github.com/xlcodes/reactor/internal"
)

// ReactiveSet is the value-only keyed container from spec §4.5 — a
// Set, as opposed to ReactiveMap's key/value pairs. It does not fan
// Add/Delete out to the map-key-iterate key, since there's no
// separate key identity from the value to track.
type ReactiveSet[T comparable] struct {
	mu   sync.RWMutex
	data map[T]struct{}
	deps *internal.DepTable
	mode proxyMode
}

// NewReactiveSet seeds a reactive set from values. Re-wrapping the same
// backing array under the same mode a second time returns the cached
// wrapper rather than allocating a new one, matching NewReactiveMap/
// NewReactiveSlice's identity guarantee; a zero-capacity values slice
// has no backing array to key on, so those always get a fresh wrapper.
func NewReactiveSet[T comparable](values []T, opts ...ProxyOption) *ReactiveSet[T] {
	mode := applyOptions(opts)

	build := func() *ReactiveSet[T] {
		data := make(map[T]struct{}, len(values))
		for _, v := range values {
			data[v] = struct{}{}
		}
		return &ReactiveSet[T]{
			data: data,
			deps: internal.NewDepTable(),
			mode: mode,
		}
	}

	if cap(values) == 0 {
		return build()
	}

	key := identityKey{ptr: reflect.ValueOf(values).Pointer(), mode: mode}
	return cacheFor[ReactiveSet[T]]().GetOrCreate(key, build)
}

func (s *ReactiveSet[T]) IsReactive() bool { return !s.mode.readOnly }
func (s *ReactiveSet[T]) IsReadonly() bool { return s.mode.readOnly }
func (s *ReactiveSet[T]) IsShallow() bool  { return s.mode.shallow }
func (s *ReactiveSet[T]) rawAny() any {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cp := make([]T, 0, len(s.data))
	for v := range s.data {
		cp = append(cp, v)
	}
	return cp
}

// Has reports whether v is a member, tracking a dependency on v.
func (s *ReactiveSet[T]) Has(v T) bool {
	internal.Track(s.deps.Get(v), internal.DebugEvent{Target: s, Type: internal.EventHas, Key: v})
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.data[v]
	return ok
}

// Len reports the set's size, tracking the iterate key.
func (s *ReactiveSet[T]) Len() int {
	internal.Track(s.deps.Get(internal.IterateKey), internal.DebugEvent{Target: s, Type: internal.EventIterate})
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

// Range returns an iterator over a snapshot of the set's members,
// tracking the iterate key.
func (s *ReactiveSet[T]) Range() iter.Seq[T] {
	internal.Track(s.deps.Get(internal.IterateKey), internal.DebugEvent{Target: s, Type: internal.EventIterate})

	s.mu.RLock()
	snapshot := make([]T, 0, len(s.data))
	for v := range s.data {
		snapshot = append(snapshot, v)
	}
	s.mu.RUnlock()

	return func(yield func(T) bool) {
		for _, v := range snapshot {
			if !yield(v) {
				return
			}
		}
	}
}

// Add inserts v, firing the Add fan-out (the member's own Dep plus the
// iterate key) only if v was not already present.
func (s *ReactiveSet[T]) Add(v T) {
	if s.mode.readOnly {
		internal.Warnf("Add operation failed: target is readonly")
		return
	}

	s.mu.Lock()
	_, existed := s.data[v]
	s.data[v] = struct{}{}
	s.mu.Unlock()

	if !existed {
		internal.Batched(func() {
			evt := internal.DebugEvent{Target: s, Type: internal.EventAdd, Key: v, NewValue: v}
			if dep, ok := s.deps.Peek(v); ok {
				internal.Trigger(dep, internal.Dirty, evt)
			}
			if dep, ok := s.deps.Peek(internal.IterateKey); ok {
				internal.Trigger(dep, internal.Dirty, evt)
			}
		})
	}
}

// Delete removes v, firing the Delete fan-out if it was present.
func (s *ReactiveSet[T]) Delete(v T) {
	if s.mode.readOnly {
		internal.Warnf("Delete operation failed: target is readonly")
		return
	}

	s.mu.Lock()
	_, existed := s.data[v]
	delete(s.data, v)
	s.mu.Unlock()

	if existed {
		internal.Batched(func() {
			evt := internal.DebugEvent{Target: s, Type: internal.EventDelete, Key: v, OldValue: v}
			if dep, ok := s.deps.Peek(v); ok {
				internal.Trigger(dep, internal.Dirty, evt)
			}
			if dep, ok := s.deps.Peek(internal.IterateKey); ok {
				internal.Trigger(dep, internal.Dirty, evt)
			}
		})
	}
}

// Clear empties the set and triggers every Dep ever registered on it.
func (s *ReactiveSet[T]) Clear() {
	if s.mode.readOnly {
		internal.Warnf("Clear operation failed: target is readonly")
		return
	}

	s.mu.Lock()
	empty := len(s.data) == 0
	s.data = make(map[T]struct{})
	s.mu.Unlock()

	if empty {
		return
	}

	internal.Batched(func() {
		evt := internal.DebugEvent{Target: s, Type: internal.EventClear}
		for _, dep := range s.deps.All() {
			internal.Trigger(dep, internal.Dirty, evt)
		}
	})
}
