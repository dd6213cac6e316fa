package internal

import "iter"

// EventType mirrors the debug event shapes a host integration can
// subscribe to via Effect.OnTrack / Effect.OnTrigger.
type EventType int

const (
	EventGet EventType = iota
	EventHas
	EventIterate
	EventSet
	EventAdd
	EventDelete
	EventClear
)

// DebugEvent is the payload handed to OnTrack/OnTrigger hooks.
type DebugEvent struct {
	Effect   *Effect
	Target   any
	Type     EventType
	Key      any
	NewValue any
	OldValue any
	OldTarget any
}

// subNode is one entry in a Dep's subscriber list: which Effect, and
// the track-epoch recorded the last time that Effect read this Dep.
// The list is a doubly linked, insertion-ordered structure so Trigger
// can walk subscribers in the order they first subscribed, and Dep can
// remove an entry in O(1) given only the Effect pointer.
type subNode struct {
	sub   *Effect
	epoch uint64

	prev, next *subNode
}

// Dep is the per-value subscriber set described in spec §3: a mapping
// from subscriber identity to a per-subscription epoch token, plus a
// cleanup hook fired exactly once when the mapping empties, and an
// optional back-pointer to the Computed that owns this Dep (used
// during MaybeDirty resolution, see Effect.Dirty).
type Dep struct {
	head, tail *subNode
	bySub      map[*Effect]*subNode

	Cleanup  func()
	Computed *Computed
}

// NewDep creates an empty Dep. cleanup may be nil.
func NewDep(cleanup func()) *Dep {
	return &Dep{
		bySub:   make(map[*Effect]*subNode),
		Cleanup: cleanup,
	}
}

// Len reports the number of active subscribers.
func (d *Dep) Len() int { return len(d.bySub) }

// epochOf returns the stored epoch for sub and whether sub currently
// subscribes to this Dep.
func (d *Dep) epochOf(sub *Effect) (uint64, bool) {
	n, ok := d.bySub[sub]
	if !ok {
		return 0, false
	}
	return n.epoch, true
}

// addSub records sub as a subscriber at the given epoch, appending it
// to the end of the insertion-ordered list if it is not already
// present, or just refreshing its epoch if it is.
func (d *Dep) addSub(sub *Effect, epoch uint64) {
	if n, ok := d.bySub[sub]; ok {
		n.epoch = epoch
		return
	}

	n := &subNode{sub: sub, epoch: epoch}
	if d.tail == nil {
		d.head = n
		d.tail = n
	} else {
		d.tail.next = n
		n.prev = d.tail
		d.tail = n
	}
	d.bySub[sub] = n
}

// removeSub detaches sub from this Dep. If the Dep becomes empty as a
// result, Cleanup is invoked exactly once.
func (d *Dep) removeSub(sub *Effect) {
	n, ok := d.bySub[sub]
	if !ok {
		return
	}
	delete(d.bySub, sub)

	if n.prev != nil {
		n.prev.next = n.next
	} else {
		d.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		d.tail = n.prev
	}
	n.prev, n.next = nil, nil

	if len(d.bySub) == 0 && d.Cleanup != nil {
		d.Cleanup()
	}
}

// Subscribers returns an iterator over this Dep's subscribers in
// insertion order, for host integrations that want to inspect the
// dependency graph (e.g. devtools-style tooling) without reaching into
// Trigger's internals.
func (d *Dep) Subscribers() iter.Seq[*Effect] {
	return func(yield func(*Effect) bool) {
		for n := d.head; n != nil; n = n.next {
			if !yield(n.sub) {
				return
			}
		}
	}
}

// Track registers the currently active effect (if any, and if
// tracking is enabled) as a subscriber of dep. This is spec §4.1's
// track(dep) algorithm. evt, if given, supplies the Target/Type/Key
// describing the read that caused this track (e.g. a map Get vs a
// slice Has); callers that omit it get the bare EventGet default that
// plain Signal/Derived reads use.
func Track(dep *Dep, evt ...DebugEvent) {
	ctx := Current()
	if !ctx.ShouldTrack() {
		return
	}

	effect := ctx.ActiveEffect
	if epoch, ok := dep.epochOf(effect); ok && epoch == effect.trackID {
		return
	}

	dep.addSub(effect, effect.trackID)
	effect.spliceDep(dep)

	if effect.onTrack != nil {
		effect.onTrack(trackEvent(effect, evt))
	}
}

func trackEvent(effect *Effect, evt []DebugEvent) DebugEvent {
	e := DebugEvent{Effect: effect, Type: EventGet}
	if len(evt) > 0 {
		e = evt[0]
		e.Effect = effect
	}
	return e
}

// Trigger raises every subscriber of dep whose level is below
// newLevel to newLevel, per spec §4.1's trigger(dep, new_dirty_level).
// A subscriber is only considered live if its recorded epoch still
// matches its current track-epoch (stale links from a prior run of
// the *subscriber* are ignored, not just cleaned lazily). evt, if
// given, supplies the Target/Type/Key/NewValue/OldValue describing the
// write that caused this trigger.
func Trigger(dep *Dep, newLevel DirtyLevel, evt ...DebugEvent) {
	for n := dep.head; n != nil; n = n.next {
		e := n.sub
		if n.epoch != e.trackID {
			continue
		}
		if e.dirtyLevel >= newLevel {
			continue
		}

		wasClean := e.dirtyLevel == Clean
		e.dirtyLevel = newLevel

		if wasClean {
			e.shouldSchedule = true
			if e.onTrigger != nil {
				e.onTrigger(triggerEvent(e, evt))
			}
			e.announce()
		}
	}
}

func triggerEvent(effect *Effect, evt []DebugEvent) DebugEvent {
	e := DebugEvent{Effect: effect, Type: EventSet}
	if len(evt) > 0 {
		e = evt[0]
		e.Effect = effect
	}
	return e
}
