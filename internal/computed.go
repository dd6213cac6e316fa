package internal

// Computed is the lazy, memoizing derivation from spec §3/§4.3: an
// Effect whose fn is the user's getter, plus a value slot, a Dep of
// its own subscribers, and an optional setter for writable
// derivations.
type Computed struct {
	effect *Effect
	dep    *Dep

	value       any
	initialized bool
	cacheable   bool

	setFn      func(any)
	isReadOnly bool
}

// NewComputed creates a read-only derivation over getter.
func NewComputed(getter func() any) *Computed {
	return newComputed(getter, nil)
}

// NewWritableComputed creates a derivation with a user-supplied
// setter. isReadOnly is false in this case.
func NewWritableComputed(getter func() any, setter func(any)) *Computed {
	return newComputed(getter, setter)
}

func newComputed(getter func() any, setter func(any)) *Computed {
	c := &Computed{
		cacheable: true,
		setFn:     setter,
	}
	c.dep = NewDep(nil)
	c.dep.Computed = c

	c.effect = NewEffect(getter)
	c.effect.SetAnnounce(func() {
		Trigger(c.dep, MaybeDirty)
	})

	if setter == nil {
		c.isReadOnly = true
	}

	return c
}

func (c *Computed) IsReadOnly() bool { return c.isReadOnly }
func (c *Computed) Dep() *Dep        { return c.dep }
func (c *Computed) Effect() *Effect  { return c.effect }

// SetCacheable toggles memoization off (server-side snapshot mode per
// spec §3: "false under server-side snapshot mode"); every read then
// always recomputes.
func (c *Computed) SetCacheable(v bool) { c.cacheable = v }

// Value implements spec §4.3's read algorithm: recompute if dirty or
// uncacheable, trigger Dirty on real value changes, always track the
// current reader, and propagate any leftover MaybeDirty level.
func (c *Computed) Value() any {
	Batched(func() {
		if !c.cacheable || !c.initialized || c.effect.Dirty() {
			newValue := c.effect.Run()

			if !c.initialized || !IsEqual(c.value, newValue) {
				c.initialized = true
				c.value = newValue
				Trigger(c.dep, Dirty)
			}
		}

		Track(c.dep)

		if c.effect.DirtyLevel() >= MaybeDirty {
			Trigger(c.dep, MaybeDirty)
		}
	})

	return c.value
}

// Set forwards to the user-supplied setter, or warns (dev mode) and
// does nothing for a read-only derivation.
func (c *Computed) Set(v any) {
	if c.setFn == nil {
		Warnf("write operation failed: computed value is readonly")
		return
	}
	c.setFn(v)
}

// Stop tears down the underlying effect (used when a Computed's owner
// scope disposes it directly rather than through scope.Stop, e.g. the
// recompute-time child disposal the teacher performs for derivations
// that themselves create nested effects).
func (c *Computed) Stop() {
	c.effect.Stop()
}
