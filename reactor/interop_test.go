package reactor

import "fmt"

func ExampleProjectKey() {
	m := NewReactiveMap(map[string]int{"a": 1})
	a := ProjectKey(m, "a")

	fmt.Println(a.Value())
	a.Set(2)
	fmt.Println(m.Get("a"))

	// Output:
	// 1
	// 2
}

// A value read through a projected key still wakes an effect when the
// underlying map entry changes directly, since the projection tracks
// through the map's own per-key dependency rather than one private to
// the signal.
func ExampleProjectKey_reactsToMapWrites() {
	m := NewReactiveMap(map[string]int{"a": 1})
	a := ProjectKey(m, "a")

	NewEffect(func() {
		fmt.Println("ran", a.Value())
	})

	m.Set("a", 5)

	// Output:
	// ran 1
	// ran 5
}

func ExampleProjectAll() {
	m := NewReactiveMap(map[string]int{"a": 1})

	all := ProjectAll(m)
	all["a"].Set(10)

	fmt.Println(m.Get("a"))

	// Output:
	// 10
}

func ExampleUnwrap() {
	count := NewSignal(7)
	fmt.Println(Unwrap(count))

	// Output:
	// 7
}

func ExampleToValue() {
	count := NewSignal(1)
	doubled := NewDerived(func() int { return count.Value() * 2 })

	fmt.Println(ToValue[int](count))
	fmt.Println(ToValue[int](doubled))

	// Output:
	// 1
	// 2
}

func ExampleTriggerSignal() {
	count := NewShallowSignal([]int{1, 2, 3})

	NewEffect(func() {
		fmt.Println("len", len(count.Value()))
	})

	count.Peek()[0] = 99 // in-place mutation a shallow signal can't see on its own
	TriggerSignal(count)

	// Output:
	// len 3
	// len 3
}
