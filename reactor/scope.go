package reactor

import "github.com/xlcodes/reactor/internal"

// Scope is a hierarchical lifetime container (spec §3/§4.6): every
// Effect or Derived created while a Scope is active is registered to
// it, and Stop tears all of them down together, recursively through
// any nested scopes.
type Scope struct {
	scope *internal.Scope
}

// NewScope creates a scope. Unless detached is true, it attaches as a
// child of the currently active scope (if any), so stopping the
// parent stops this one too.
func NewScope(detached bool) *Scope {
	return &Scope{scope: internal.NewScope(detached)}
}

// Active reports whether this scope has not yet been stopped.
func (s *Scope) Active() bool { return s.scope.Active() }

// Run installs this scope as the ambient active scope for the
// duration of fn, so any Effect/Derived construction inside fn is
// attributed to it.
func (s *Scope) Run(fn func()) { s.scope.Run(fn) }

// On installs this scope as the ambient active scope without
// restoring the previous one when the call returns; pairs with Off.
func (s *Scope) On() { s.scope.On() }

// Off clears the ambient active scope if it is currently this one.
func (s *Scope) Off() { s.scope.Off() }

// OnCleanup registers fn to run once when this scope stops.
func (s *Scope) OnCleanup(fn func()) { s.scope.OnCleanup(fn) }

// OnError registers fn as a panic catcher: a panic raised by any
// effect owned by this scope or one of its descendants is delivered
// here if no closer ancestor scope has its own catcher. With no
// catcher anywhere in the chain, the panic propagates as a normal Go
// panic.
func (s *Scope) OnError(fn func(any)) { s.scope.OnError(fn) }

// Stop tears down every effect created under this scope, runs its
// cleanups, then stops its child scopes. Idempotent.
func (s *Scope) Stop() { s.scope.Stop() }

// OnScopeDispose registers fn against the ambient active scope,
// warning (dev mode only) if there is none.
func OnScopeDispose(fn func()) { internal.OnScopeDispose(fn) }

// GetCurrentScope returns the ambient active scope, or nil if none is
// active.
func GetCurrentScope() *Scope {
	s := internal.GetCurrentScope()
	if s == nil {
		return nil
	}
	return &Scope{scope: s}
}
