package reactor

import "github.com/xlcodes/reactor/internal"

// EffectRunner is the side-effectful subscriber from spec §3/§4.2: a
// function that re-runs whenever any signal or derivation it read
// during its last run changes, scheduled rather than run inline.
type EffectRunner struct {
	effect *internal.Effect
}

// effectConfig carries both the underlying internal.Effect being
// configured and the reactor-level settings (currently just Lazy) that
// have no internal.Effect field of their own.
type effectConfig struct {
	effect *internal.Effect
	lazy   bool
}

// EffectOptions configures an EffectRunner at construction time,
// mirroring spec §4.2's optional hooks (custom scheduler, recursive
// self-trigger opt-in, stop/track/trigger debug callbacks, lazy start).
type EffectOptions func(*effectConfig)

// WithScheduler replaces the default "enqueue a run" announce
// behavior with a caller-supplied callback — used by hosts that want
// to batch effect runs into their own render loop instead of the
// built-in FIFO scheduler.
func WithScheduler(fn func()) EffectOptions {
	return func(c *effectConfig) { c.effect.SetScheduler(fn) }
}

// AllowRecurse lets the effect re-trigger itself while it is still
// running, instead of the default silent drop.
func AllowRecurse() EffectOptions {
	return func(c *effectConfig) { c.effect.SetAllowRecurse(true) }
}

// OnStop registers fn to run once, when the effect is stopped.
func OnStop(fn func()) EffectOptions {
	return func(c *effectConfig) { c.effect.SetOnStop(fn) }
}

// OnTrack registers a debug callback fired each time this effect
// subscribes to a new dependency during a run.
func OnTrack(fn func(internal.DebugEvent)) EffectOptions {
	return func(c *effectConfig) { c.effect.SetOnTrack(fn) }
}

// OnTrigger registers a debug callback fired when a dependency change
// raises this effect off Clean.
func OnTrigger(fn func(internal.DebugEvent)) EffectOptions {
	return func(c *effectConfig) { c.effect.SetOnTrigger(fn) }
}

// Lazy skips the construction-time first run: the returned
// EffectRunner has no dependencies yet and will not react to anything
// until its Run method is called explicitly.
func Lazy() EffectOptions {
	return func(c *effectConfig) { c.lazy = true }
}

// NewEffect constructs fn as an effect and, unless Lazy is given,
// immediately runs it once to establish its initial dependency set.
// There is no explicit Scope option: an effect always attributes
// itself to whatever scope is ambient at construction time, the same
// as Derived — callers who want a specific owner wrap the call
// in that scope's Run instead of threading it through an option.
func NewEffect(fn func(), opts ...EffectOptions) *EffectRunner {
	e := internal.NewEffect(func() any {
		fn()
		return nil
	})

	cfg := &effectConfig{effect: e}
	for _, opt := range opts {
		opt(cfg)
	}

	r := &EffectRunner{effect: e}
	if !cfg.lazy {
		e.Run()
	}
	return r
}

// Stop deactivates the effect: it is removed from every dependency it
// subscribes to and will never run again.
func (r *EffectRunner) Stop() { r.effect.Stop() }

// Active reports whether the effect has not yet been stopped.
func (r *EffectRunner) Active() bool { return r.effect.Active() }

// Run executes the effect immediately — the only way to produce a
// Lazy effect's first run, and also usable to force an eager rerun
// outside the normal trigger path.
func (r *EffectRunner) Run() { r.effect.Run() }
