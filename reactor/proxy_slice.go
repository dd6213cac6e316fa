package reactor

import (
	"iter"
	"reflect"
	"sync"

	"github.com/xlcodes/reactor/internal"
)

// ReactiveSlice is the ordered-sequence wrapper from spec §4.5: an
// array proxy backed by a Go slice, with integer indices as keys plus
// one reserved length key. Length-mutating methods run under a
// combined pause-tracking/pause-scheduling window, matching spec
// §4.5's note that array mutators must not pick up a spurious
// dependency on their own length read, and that the individual Sets
// a splice-like mutation performs internally should not each
// separately wake a scheduler pass.
type ReactiveSlice[T any] struct {
	mu   sync.RWMutex
	data []T
	deps *internal.DepTable
	mode proxyMode
}

// NewReactiveSlice wraps data as a reactive sequence. Wrapping the same
// backing array under the same mode a second time returns the cached
// wrapper rather than allocating a new one (spec §4.5's per-target
// wrapper identity guarantee). A zero-capacity slice has no backing
// array of its own to key on (Go may point every such slice at the
// same runtime zerobase address), so those always get a fresh wrapper.
func NewReactiveSlice[T any](data []T, opts ...ProxyOption) *ReactiveSlice[T] {
	if data == nil {
		data = []T{}
	}
	mode := applyOptions(opts)

	build := func() *ReactiveSlice[T] {
		return &ReactiveSlice[T]{
			data: data,
			deps: internal.NewDepTable(),
			mode: mode,
		}
	}

	if cap(data) == 0 {
		return build()
	}

	key := identityKey{ptr: reflect.ValueOf(data).Pointer(), mode: mode}
	return cacheFor[ReactiveSlice[T]]().GetOrCreate(key, build)
}

func (s *ReactiveSlice[T]) IsReactive() bool { return !s.mode.readOnly }
func (s *ReactiveSlice[T]) IsReadonly() bool { return s.mode.readOnly }
func (s *ReactiveSlice[T]) IsShallow() bool  { return s.mode.shallow }
func (s *ReactiveSlice[T]) rawAny() any {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cp := make([]T, len(s.data))
	copy(cp, s.data)
	return cp
}

// Len reads the slice's length, tracking the reserved length key.
func (s *ReactiveSlice[T]) Len() int {
	internal.Track(s.deps.Get(internal.LengthKey), internal.DebugEvent{Target: s, Type: internal.EventGet, Key: internal.LengthKey})
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

// Get reads the element at i, tracking a dependency on that index.
// Out-of-range reads still track (spec: a miss tracks the same as a
// present key, so later growth wakes a reader that checked ahead).
func (s *ReactiveSlice[T]) Get(i int) T {
	internal.Track(s.deps.Get(i), internal.DebugEvent{Target: s, Type: internal.EventGet, Key: i})
	s.mu.RLock()
	defer s.mu.RUnlock()
	var zero T
	if i < 0 || i >= len(s.data) {
		return zero
	}
	return s.data[i]
}

// Set writes the element at i. A value that doesn't actually change
// (NaN-aware) is a no-op; otherwise the index's Dep fires Dirty.
func (s *ReactiveSlice[T]) Set(i int, v T) {
	if s.mode.readOnly {
		internal.Warnf("Set operation on index %d failed: target is readonly", i)
		return
	}

	s.mu.Lock()
	if i < 0 || i >= len(s.data) {
		s.mu.Unlock()
		internal.Warnf("Set operation on index %d failed: index out of range", i)
		return
	}
	old := s.data[i]
	changed := !internal.IsEqual(any(old), any(v))
	s.data[i] = v
	s.mu.Unlock()

	if changed {
		internal.Batched(func() {
			if dep, ok := s.deps.Peek(i); ok {
				internal.Trigger(dep, internal.Dirty, internal.DebugEvent{Target: s, Type: internal.EventSet, Key: i, OldValue: old, NewValue: v})
			}
		})
	}
}

// Range returns an iterator over a snapshot of the slice, tracking the
// iterate key — any length-changing mutation must wake range readers.
func (s *ReactiveSlice[T]) Range() iter.Seq2[int, T] {
	internal.Track(s.deps.Get(internal.IterateKey), internal.DebugEvent{Target: s, Type: internal.EventIterate})
	internal.Track(s.deps.Get(internal.LengthKey), internal.DebugEvent{Target: s, Type: internal.EventIterate, Key: internal.LengthKey})

	s.mu.RLock()
	snapshot := make([]T, len(s.data))
	copy(snapshot, s.data)
	s.mu.RUnlock()

	return func(yield func(int, T) bool) {
		for i, v := range snapshot {
			if !yield(i, v) {
				return
			}
		}
	}
}

// mutateLength runs fn with tracking and scheduling both paused, so
// that (a) fn's own internal reads of length/indices don't leave the
// calling effect depending on its own mutation, and (b) the several
// underlying Dep triggers fn performs coalesce into one scheduler pass
// once fn returns.
func mutateLength[T any](s *ReactiveSlice[T], fn func()) {
	internal.PauseTracking()
	internal.PauseScheduling()
	defer func() {
		internal.ResetTracking()
		internal.ResetScheduling()
	}()
	fn()
}

func (s *ReactiveSlice[T]) triggerLengthChange(oldLen, newLen int) {
	if oldLen == newLen {
		return
	}
	internal.Batched(func() {
		evtType := internal.EventAdd
		if newLen < oldLen {
			evtType = internal.EventDelete
		}
		evt := internal.DebugEvent{Target: s, Type: evtType, Key: internal.LengthKey, OldValue: oldLen, NewValue: newLen}
		if dep, ok := s.deps.Peek(internal.LengthKey); ok {
			internal.Trigger(dep, internal.Dirty, evt)
		}
		if dep, ok := s.deps.Peek(internal.IterateKey); ok {
			internal.Trigger(dep, internal.Dirty, evt)
		}
		lo, hi := oldLen, newLen
		if hi < lo {
			lo, hi = hi, lo
		}
		for i := lo; i < hi; i++ {
			if dep, ok := s.deps.Peek(i); ok {
				internal.Trigger(dep, internal.Dirty, internal.DebugEvent{Target: s, Type: evtType, Key: i})
			}
		}
	})
}

// Push appends elements, matching Array.prototype.push.
func (s *ReactiveSlice[T]) Push(vs ...T) {
	if s.mode.readOnly {
		internal.Warnf("Push operation failed: target is readonly")
		return
	}
	var oldLen, newLen int
	mutateLength(s, func() {
		s.mu.Lock()
		oldLen = len(s.data)
		s.data = append(s.data, vs...)
		newLen = len(s.data)
		s.mu.Unlock()
	})
	s.triggerLengthChange(oldLen, newLen)
}

// Pop removes and returns the last element, matching
// Array.prototype.pop. ok is false for an empty slice.
func (s *ReactiveSlice[T]) Pop() (v T, ok bool) {
	if s.mode.readOnly {
		internal.Warnf("Pop operation failed: target is readonly")
		return v, false
	}
	var oldLen, newLen int
	mutateLength(s, func() {
		s.mu.Lock()
		oldLen = len(s.data)
		if oldLen > 0 {
			v = s.data[oldLen-1]
			s.data = s.data[:oldLen-1]
			ok = true
		}
		newLen = len(s.data)
		s.mu.Unlock()
	})
	s.triggerLengthChange(oldLen, newLen)
	return v, ok
}

// Shift removes and returns the first element, matching
// Array.prototype.shift.
func (s *ReactiveSlice[T]) Shift() (v T, ok bool) {
	if s.mode.readOnly {
		internal.Warnf("Shift operation failed: target is readonly")
		return v, false
	}
	var oldLen, newLen int
	mutateLength(s, func() {
		s.mu.Lock()
		oldLen = len(s.data)
		if oldLen > 0 {
			v = s.data[0]
			s.data = append(s.data[:0:0], s.data[1:]...)
			ok = true
		}
		newLen = len(s.data)
		s.mu.Unlock()
	})
	s.triggerLengthChange(oldLen, newLen)
	return v, ok
}

// Unshift prepends elements, matching Array.prototype.unshift.
func (s *ReactiveSlice[T]) Unshift(vs ...T) {
	if s.mode.readOnly {
		internal.Warnf("Unshift operation failed: target is readonly")
		return
	}
	var oldLen, newLen int
	mutateLength(s, func() {
		s.mu.Lock()
		oldLen = len(s.data)
		merged := make([]T, 0, oldLen+len(vs))
		merged = append(merged, vs...)
		merged = append(merged, s.data...)
		s.data = merged
		newLen = len(s.data)
		s.mu.Unlock()
	})
	s.triggerLengthChange(oldLen, newLen)
}

// Splice implements Array.prototype.splice: removes deleteCount
// elements starting at start and inserts items in their place,
// returning the removed elements.
func (s *ReactiveSlice[T]) Splice(start, deleteCount int, items ...T) []T {
	if s.mode.readOnly {
		internal.Warnf("Splice operation failed: target is readonly")
		return nil
	}

	var removed []T
	var oldLen, newLen int
	mutateLength(s, func() {
		s.mu.Lock()
		oldLen = len(s.data)
		if start < 0 {
			start = 0
		}
		if start > oldLen {
			start = oldLen
		}
		if deleteCount < 0 {
			deleteCount = 0
		}
		if start+deleteCount > oldLen {
			deleteCount = oldLen - start
		}

		removed = make([]T, deleteCount)
		copy(removed, s.data[start:start+deleteCount])

		tail := make([]T, len(s.data[start+deleteCount:]))
		copy(tail, s.data[start+deleteCount:])

		merged := make([]T, 0, start+len(items)+len(tail))
		merged = append(merged, s.data[:start]...)
		merged = append(merged, items...)
		merged = append(merged, tail...)
		s.data = merged
		newLen = len(s.data)
		s.mu.Unlock()
	})
	s.triggerLengthChange(oldLen, newLen)
	return removed
}

// SetLength truncates or grows the slice to newLen (zero-valuing any
// newly-created elements), triggering the length key plus every index
// Dep at or beyond the smaller of the two lengths.
func (s *ReactiveSlice[T]) SetLength(newLen int) {
	if s.mode.readOnly {
		internal.Warnf("SetLength operation failed: target is readonly")
		return
	}
	if newLen < 0 {
		newLen = 0
	}

	var oldLen int
	mutateLength(s, func() {
		s.mu.Lock()
		oldLen = len(s.data)
		switch {
		case newLen < oldLen:
			s.data = s.data[:newLen]
		case newLen > oldLen:
			grown := make([]T, newLen)
			copy(grown, s.data)
			s.data = grown
		}
		s.mu.Unlock()
	})
	s.triggerLengthChange(oldLen, newLen)
}

// Includes reports whether any element satisfies eq, tracking every
// index visited during the scan (a linear search observes the whole
// sequence, so spec §4.5 has it depend on every index, not just a
// single one).
func (s *ReactiveSlice[T]) Includes(eq func(T) bool) bool {
	return s.IndexOf(eq) >= 0
}

// IndexOf returns the first index satisfying eq, or -1. Every visited
// index is tracked, matching the forward-scan semantics of
// Array.prototype.indexOf/includes.
func (s *ReactiveSlice[T]) IndexOf(eq func(T) bool) int {
	s.mu.RLock()
	snapshot := make([]T, len(s.data))
	copy(snapshot, s.data)
	s.mu.RUnlock()

	for i, v := range snapshot {
		internal.Track(s.deps.Get(i), internal.DebugEvent{Target: s, Type: internal.EventGet, Key: i})
		if eq(v) {
			return i
		}
	}
	internal.Track(s.deps.Get(internal.LengthKey), internal.DebugEvent{Target: s, Type: internal.EventGet, Key: internal.LengthKey})
	return -1
}

// LastIndexOf returns the last index satisfying eq, or -1, scanning
// and tracking back to front like Array.prototype.lastIndexOf.
func (s *ReactiveSlice[T]) LastIndexOf(eq func(T) bool) int {
	s.mu.RLock()
	snapshot := make([]T, len(s.data))
	copy(snapshot, s.data)
	s.mu.RUnlock()

	for i := len(snapshot) - 1; i >= 0; i-- {
		internal.Track(s.deps.Get(i), internal.DebugEvent{Target: s, Type: internal.EventGet, Key: i})
		if eq(snapshot[i]) {
			return i
		}
	}
	internal.Track(s.deps.Get(internal.LengthKey), internal.DebugEvent{Target: s, Type: internal.EventGet, Key: internal.LengthKey})
	return -1
}
