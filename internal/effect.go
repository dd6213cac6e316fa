package internal

// Effect is the unit of re-execution described in spec §3: it owns a
// user function, its current (index-addressable) dependency list, a
// run-epoch counter, a dirty level, an active flag, and optional
// scheduler/debug hooks.
type Effect struct {
	fn func() any

	// announceFn is the "announce" hook called the instant this effect's
	// dirtyLevel rises off Clean. For a plain effect it enqueues a run
	// on the scheduler; for the Effect wrapped inside a Computed it
	// propagates MaybeDirty onto the Computed's own Dep.
	announceFn func()

	// scheduler, if set, is what actually gets enqueued in place of
	// running the effect's fn directly.
	scheduler func()

	deps    []*Dep
	depsLen int

	trackID uint64

	runnings       int
	shouldSchedule bool
	dirtyLevel     DirtyLevel
	active         bool
	allowRecurse   bool

	onStop    func()
	onTrack   func(DebugEvent)
	onTrigger func(DebugEvent)

	ownerScope *Scope
}

// NewEffect constructs an active Effect wrapping fn.
// It records itself into the currently active scope, if any, per
// spec §4.2's constructor rule. The effect is not run by this
// constructor; callers (the public API, or Computed) decide when the
// first run happens.
func NewEffect(fn func() any) *Effect {
	e := &Effect{
		fn:     fn,
		active: true,
	}
	e.announceFn = e.defaultAnnounce

	if scope := Current().ActiveScope; scope != nil {
		scope.addEffect(e)
		e.ownerScope = scope
	}

	return e
}

// defaultAnnounce is the announce hook for a plain (non-derivation)
// effect: push a run onto the scheduler, respecting re-entrancy.
func (e *Effect) defaultAnnounce() {
	if !e.shouldSchedule {
		return
	}
	if e.runnings > 0 && !e.allowRecurse {
		return
	}
	e.shouldSchedule = false

	run := func() { e.Run() }
	if e.scheduler != nil {
		run = e.scheduler
	}
	Current().Scheduler().Enqueue(run)
}

func (e *Effect) announce() {
	e.announceFn()
}

// SetAnnounce overrides the announce hook. Computed uses this to
// propagate MaybeDirty onto its own Dep instead of self-scheduling.
func (e *Effect) SetAnnounce(fn func()) { e.announceFn = fn }

func (e *Effect) SetScheduler(fn func())    { e.scheduler = fn }
func (e *Effect) SetAllowRecurse(v bool)    { e.allowRecurse = v }
func (e *Effect) SetOnStop(fn func())       { e.onStop = fn }
func (e *Effect) SetOnTrack(fn func(DebugEvent))   { e.onTrack = fn }
func (e *Effect) SetOnTrigger(fn func(DebugEvent)) { e.onTrigger = fn }

func (e *Effect) Active() bool         { return e.active }
func (e *Effect) DirtyLevel() DirtyLevel { return e.dirtyLevel }
func (e *Effect) TrackID() uint64      { return e.trackID }

// spliceDep implements spec §4.1 step 3/4: write dep into deps at the
// current high-water mark, evicting whatever dep previously occupied
// that slot (if different), then advance the mark. An evicted dep that
// was already re-read earlier in this run keeps its subscription.
func (e *Effect) spliceDep(dep *Dep) {
	if e.depsLen < len(e.deps) {
		old := e.deps[e.depsLen]
		if old != dep {
			if epoch, ok := old.epochOf(e); !ok || epoch != e.trackID {
				old.removeSub(e)
			}
			e.deps[e.depsLen] = dep
		}
	} else {
		e.deps = append(e.deps, dep)
	}
	e.depsLen++
}

// Run executes the effect's function per spec §4.2:
//  1. reset dirtyLevel to Clean
//  2. if inactive, just call fn (no tracking)
//  3. otherwise install ambient tracking state, run fn, sweep unused
//     deps, restore ambient state.
//
// Ambient state is restored via defer so a panicking fn never leaks
// tracking state (spec §7: "the engine never leaks tracking state on
// a failed run").
func (e *Effect) Run() any {
	e.dirtyLevel = Clean

	if !e.active {
		return e.fn()
	}

	ctx := Current()
	prevTracking := ctx.tracking
	ctx.tracking = true

	e.trackID++
	e.depsLen = 0
	e.runnings++

	var result any
	func() {
		prevEffect := ctx.ActiveEffect
		ctx.ActiveEffect = e

		defer func() {
			ctx.ActiveEffect = prevEffect
			ctx.tracking = prevTracking
			e.runnings--

			for i := e.depsLen; i < len(e.deps); i++ {
				if epoch, ok := e.deps[i].epochOf(e); ok && epoch == e.trackID {
					continue // re-read this run at an earlier slot
				}
				e.deps[i].removeSub(e)
			}
			e.deps = e.deps[:e.depsLen]
		}()

		defer func() {
			if r := recover(); r != nil {
				Dispatch(e.ownerScope, r)
			}
		}()

		result = e.fn()
	}()

	return result
}

// Stop severs this effect's membership in every Dep it subscribes to,
// invokes onStop if present, and marks it inactive. Idempotent.
func (e *Effect) Stop() {
	if !e.active {
		return
	}

	for _, dep := range e.deps {
		dep.removeSub(e)
	}
	e.deps = nil
	e.depsLen = 0

	if e.onStop != nil {
		e.onStop()
	}

	e.active = false
}

// Dirty resolves whether this effect should be considered stale right
// now, per spec §4.3's "resolving MaybeDirty": a Dirty level is
// authoritative; a MaybeDirty level requires walking this effect's
// deps in recorded-read order, forcing any dep owned by a Computed to
// recompute, and stopping as soon as one of them turns out to
// actually be Dirty. If none do, the level drops back to Clean.
func (e *Effect) Dirty() bool {
	switch e.dirtyLevel {
	case Dirty:
		return true
	case MaybeDirty:
		for i := 0; i < e.depsLen; i++ {
			dep := e.deps[i]
			if dep.Computed == nil {
				continue
			}
			dep.Computed.Value()
			if e.dirtyLevel == Dirty {
				return true
			}
		}
		e.dirtyLevel = Clean
		return false
	default:
		return false
	}
}
