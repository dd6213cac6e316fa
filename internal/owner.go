package internal

// Scope is the hierarchical lifetime container from spec §3/§4.6. It
// batches teardown of the effects, child scopes, and cleanup callbacks
// created while it was active, and supports O(1) detach from its
// parent's child list via a swap-with-last removal.
type Scope struct {
	active   bool
	detached bool

	effects  []*Effect
	children []*Scope
	cleanups []func()
	catchers []func(any)

	parent *Scope
	index  int // this scope's index in parent.children, valid iff parent != nil
}

// NewScope creates a new Scope. A non-detached scope attaches itself
// to the currently active scope, if any, recording its index in the
// parent's child list for O(1) self-removal later.
func NewScope(detached bool) *Scope {
	s := &Scope{
		active:   true,
		detached: detached,
	}

	if !detached {
		if parent := Current().ActiveScope; parent != nil {
			s.parent = parent
			s.index = len(parent.children)
			parent.children = append(parent.children, s)
		}
	}

	return s
}

func (s *Scope) Active() bool { return s.active }

// addEffect records child as belonging to this scope. Called from
// Effect's constructor, not by users directly.
func (s *Scope) addEffect(child *Effect) {
	s.effects = append(s.effects, child)
}

// Run installs s as the active scope for the duration of fn. An
// inactive scope warns (dev mode) and does nothing.
func (s *Scope) Run(fn func()) {
	if !s.active {
		Warnf("cannot run an already-stopped scope")
		return
	}

	ctx := Current()
	prev := ctx.ActiveScope
	ctx.ActiveScope = s
	defer func() { ctx.ActiveScope = prev }()

	fn()
}

// On installs s as the active scope without restoring the previous
// one afterwards; pairs with Off. Used by host integrations that
// don't have a single fn to wrap.
func (s *Scope) On() {
	Current().ActiveScope = s
}

// Off clears the active scope, if it is currently s.
func (s *Scope) Off() {
	ctx := Current()
	if ctx.ActiveScope == s {
		ctx.ActiveScope = nil
	}
}

// OnCleanup registers fn to run once when this scope is stopped.
func (s *Scope) OnCleanup(fn func()) {
	s.cleanups = append(s.cleanups, fn)
}

// OnError registers fn as a panic catcher for this scope. A panic
// raised by an effect owned (directly or through a descendant scope)
// by s is dispatched to the nearest ancestor scope (s itself, or the
// first parent walking up) that has at least one catcher registered;
// with none anywhere in the chain, the panic propagates as a normal
// Go panic.
func (s *Scope) OnError(fn func(any)) {
	s.catchers = append(s.catchers, fn)
}

// Dispatch delivers err to the nearest scope in s's ancestor chain
// (inclusive) that has a registered catcher, calling every catcher
// registered there. If no scope in the chain has one, it re-panics
// with err.
func Dispatch(s *Scope, err any) {
	for cur := s; cur != nil; cur = cur.parent {
		if len(cur.catchers) == 0 {
			continue
		}
		for _, catch := range cur.catchers {
			catch(err)
		}
		return
	}
	panic(err)
}

// Stop is idempotent. It stops every child effect, runs every
// cleanup, stops every child scope (as a parent-initiated stop, so
// children skip their own parent-list detach), then removes itself
// from its parent's child list in O(1) by swapping with the last
// element, before clearing its parent pointer and marking inactive.
func (s *Scope) Stop() {
	if !s.active {
		return
	}

	for _, e := range s.effects {
		e.Stop()
	}
	s.effects = nil

	for _, cleanup := range s.cleanups {
		cleanup()
	}
	s.cleanups = nil

	for _, child := range s.children {
		child.stopAsChild()
	}
	s.children = nil

	s.detachFromParent()
	s.parent = nil
	s.active = false
}

// stopAsChild is Stop() without the parent-list detach: the parent is
// already clearing its whole children slice, so there is no list to
// remove this entry from.
func (s *Scope) stopAsChild() {
	if !s.active {
		return
	}

	for _, e := range s.effects {
		e.Stop()
	}
	s.effects = nil

	for _, cleanup := range s.cleanups {
		cleanup()
	}
	s.cleanups = nil

	for _, child := range s.children {
		child.stopAsChild()
	}
	s.children = nil

	s.parent = nil
	s.active = false
}

func (s *Scope) detachFromParent() {
	if s.parent == nil {
		return
	}

	siblings := s.parent.children
	last := len(siblings) - 1
	if s.index != last {
		siblings[s.index] = siblings[last]
		siblings[s.index].index = s.index
	}
	s.parent.children = siblings[:last]
}

// OnScopeDispose pushes fn into the active scope's cleanup list, or
// warns if no scope is active.
func OnScopeDispose(fn func()) {
	scope := Current().ActiveScope
	if scope == nil {
		Warnf("onScopeDispose() is called when there is no active effect scope to be associated with")
		return
	}
	scope.OnCleanup(fn)
}

// GetCurrentScope returns the ambient active scope, or nil.
func GetCurrentScope() *Scope {
	return Current().ActiveScope
}
