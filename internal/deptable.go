package internal

import (
	"iter"
	"sync"
)

// Reserved meta keys for the proxy layer (spec §3/§4.5). JavaScript's
// Proxy reserves string-shaped keys for these; per spec §9's design
// note ("reserved meta-keys become enum cases on the read operation
// rather than string comparisons where practical") these are sentinel
// values of unexported types rather than magic strings, so they can
// never collide with a real user key of any comparable type.
type iterateKeyT struct{}
type mapKeyIterateKeyT struct{}
type lengthKeyT struct{}

var (
	IterateKey       any = iterateKeyT{}
	MapKeyIterateKey any = mapKeyIterateKeyT{}
	LengthKey        any = lengthKeyT{}
)

// DepTable is the per-target "key -> Dep" table described in spec §3:
// "a process-wide weak mapping target object -> (key -> Dep)". Each
// wrapper (ReactiveMap/ReactiveSlice/ReactiveSet) owns exactly one
// DepTable for its own keys; the table itself doesn't need to be
// process-wide in the Go port because the wrapper *is* the handle
// callers share (see SPEC_FULL.md §4 for the identity-cache layer that
// still sits in front of wrapper construction).
type DepTable struct {
	mu   sync.Mutex
	deps map[any]*Dep
}

func NewDepTable() *DepTable {
	return &DepTable{deps: make(map[any]*Dep)}
}

// Get returns the Dep for key, creating it on first access.
func (t *DepTable) Get(key any) *Dep {
	t.mu.Lock()
	defer t.mu.Unlock()

	d, ok := t.deps[key]
	if !ok {
		d = NewDep(nil)
		t.deps[key] = d
	}
	return d
}

// Peek returns the Dep for key if it already exists, without creating
// one — used by triggers, which should never spuriously materialize a
// Dep with no subscribers.
func (t *DepTable) Peek(key any) (*Dep, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	d, ok := t.deps[key]
	return d, ok
}

// All returns an iterator over every Dep currently in the table, used
// by Clear's "trigger every dep registered on the target" rule.
func (t *DepTable) All() iter.Seq2[any, *Dep] {
	t.mu.Lock()
	snapshot := make(map[any]*Dep, len(t.deps))
	for k, d := range t.deps {
		snapshot[k] = d
	}
	t.mu.Unlock()

	return func(yield func(any, *Dep) bool) {
		for k, d := range snapshot {
			if !yield(k, d) {
				return
			}
		}
	}
}
