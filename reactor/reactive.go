package reactor

// Reactive wraps a plain Go map as a deep, writable reactive
// container — the Map-shaped entry point spec §4.5 calls reactive().
// For slices and sets use NewReactiveSlice/NewReactiveSet directly;
// Go's static typing means one generic reactive(any) entry point
// would lose the element type, so the proxy layer exposes one
// constructor per container shape instead (see SPEC_FULL.md §4).
func Reactive[K comparable, V any](data map[K]V) *ReactiveMap[K, V] {
	return NewReactiveMap(data)
}

// ShallowReactive wraps data as a shallow writable reactive map.
func ShallowReactive[K comparable, V any](data map[K]V) *ReactiveMap[K, V] {
	return NewReactiveMap(data, AsShallow())
}

// Readonly wraps data as a deep read-only reactive map.
func Readonly[K comparable, V any](data map[K]V) *ReactiveMap[K, V] {
	return NewReactiveMap(data, AsReadonly())
}

// ShallowReadonly wraps data as a shallow read-only reactive map.
func ShallowReadonly[K comparable, V any](data map[K]V) *ReactiveMap[K, V] {
	return NewReactiveMap(data, AsReadonly(), AsShallow())
}
