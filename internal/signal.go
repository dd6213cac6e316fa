package internal

// Signal is the single-value holder from spec §3/§4.8 (the "ref").
// It is untyped at this layer; the generic reactor.Signal[T] wraps it
// with a type-asserting Read/Write pair, the same split the teacher
// uses between internal.Signal (any-typed) and sig.Signal[T].
type Signal struct {
	raw any
	dep *Dep

	shallow  bool
	readOnly bool

	// getFn/setFn, when non-nil, make this a custom_ref: Read/Write
	// delegate to user-supplied functions instead of the raw slot.
	getFn func() any
	setFn func(any)
}

// NewSignal creates a plain read/write signal cell holding initial.
func NewSignal(initial any, shallow bool) *Signal {
	s := &Signal{
		raw:     initial,
		shallow: shallow,
	}
	s.dep = NewDep(nil)
	return s
}

// NewCustomSignal creates a custom_ref: get/set are supplied by the
// caller, and receive track/trigger hooks bound to this cell's Dep so
// the custom implementation can control exactly when dependents are
// notified (spec §4.8).
func NewCustomSignal(factory func(track, trigger func()) (get func() any, set func(any))) *Signal {
	s := &Signal{}
	s.dep = NewDep(nil)

	track := func() { Track(s.dep) }
	trigger := func() { Batched(func() { Trigger(s.dep, Dirty) }) }

	s.getFn, s.setFn = factory(track, trigger)
	return s
}

// NewGetterSignal creates a getter_ref: a read-only cell over a
// zero-arg function. Writes are rejected with a dev warning.
func NewGetterSignal(fn func() any) *Signal {
	s := &Signal{readOnly: true}
	s.dep = NewDep(nil)
	s.getFn = fn
	return s
}

func (s *Signal) IsReadOnly() bool { return s.readOnly }
func (s *Signal) IsShallow() bool  { return s.shallow }
func (s *Signal) Dep() *Dep        { return s.dep }

// Read tracks the current reader against this cell's Dep and returns
// the current value.
func (s *Signal) Read() any {
	if s.getFn != nil {
		Track(s.dep)
		return s.getFn()
	}

	Track(s.dep)
	return s.raw
}

// Peek returns the current value without tracking a dependency, for
// callers who want an untracked read without the overhead of
// RunUntracked.
func (s *Signal) Peek() any {
	if s.getFn != nil {
		return s.getFn()
	}
	return s.raw
}

// Write stores a new value, triggering Dirty on this cell's
// subscribers if (and only if) the value actually changed.
func (s *Signal) Write(v any) {
	if s.setFn != nil {
		s.setFn(v)
		return
	}
	if s.readOnly {
		Warnf("write operation failed: target is readonly")
		return
	}

	if IsEqual(s.raw, v) {
		return
	}

	s.raw = v
	Batched(func() { Trigger(s.dep, Dirty) })
}

// TriggerRef forces a Dirty trigger without a value change — used to
// force-refresh shallow cells after a deep mutation the cell itself
// couldn't observe (spec §4.8).
func (s *Signal) TriggerRef() {
	Batched(func() { Trigger(s.dep, Dirty) })
}
