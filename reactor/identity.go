package reactor

import (
	"reflect"
	"sync"

	"github.com/xlcodes/reactor/internal"
)

// identityKey pairs a target's storage identity with the wrap mode it
// was requested under, so that re-wrapping the same backing map/slice
// under the same {readonly,writable} x {deep,shallow} combination
// returns the same wrapper instead of allocating a new one (spec
// §4.5's "four caches (weak maps) hold the wrapper per target").
type identityKey struct {
	ptr  uintptr
	mode proxyMode
}

// wrapperCaches holds one internal.IdentityCache per wrapper type,
// keyed by reflect.Type since Go has no package-level variable generic
// over a container's own type parameters; cacheFor lazily allocates
// the cache for whichever ReactiveMap[K,V]/ReactiveSlice[T]/
// ReactiveSet[T] instantiation is asking.
var wrapperCaches sync.Map

func cacheFor[V any]() *internal.IdentityCache[identityKey, V] {
	var zero V
	t := reflect.TypeOf(&zero)

	if c, ok := wrapperCaches.Load(t); ok {
		return c.(*internal.IdentityCache[identityKey, V])
	}

	c := internal.NewIdentityCache[identityKey, V]()
	actual, _ := wrapperCaches.LoadOrStore(t, c)
	return actual.(*internal.IdentityCache[identityKey, V])
}
