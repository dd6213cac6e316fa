package reactor

import "fmt"

func ExampleDerived() {
	count := NewSignal(1)
	double := NewDerived(func() int {
		fmt.Println("doubling")
		return count.Value() * 2
	})
	plusTwo := NewDerived(func() int {
		fmt.Println("adding")
		return double.Value() + 2
	})

	fmt.Println(count.Value())
	fmt.Println(double.Value())
	fmt.Println(plusTwo.Value())

	count.Set(10)
	fmt.Println(count.Value())
	fmt.Println(double.Value())
	fmt.Println(plusTwo.Value())

	// Output:
	// 1
	// doubling
	// 2
	// adding
	// 4
	// 10
	// doubling
	// 20
	// adding
	// 22
}

// A derivation whose own result doesn't change does not propagate a
// recompute to whatever reads it.
func ExampleDerived_shortCircuits() {
	count := NewSignal(1)
	a := NewDerived(func() int {
		fmt.Println("running a")
		return count.Value() * 0
	})
	b := NewDerived(func() int {
		fmt.Println("running b")
		return a.Value() + 1
	})
	a.Value()
	b.Value()

	count.Set(10) // a recomputes to the same value, b must not recompute
	b.Value()

	// Output:
	// running a
	// running b
	// running a
}

// A derivation that mutates the same signal it reads settles within a
// single extra read, since its own dep on that signal jumps straight
// to Dirty rather than being resolved through MaybeDirty.
func ExampleDerived_selfInvalidating() {
	v := NewSignal(0)
	c1 := NewDerived(func() string {
		if v.Value() == 0 {
			v.Set(1)
		}
		return "foo"
	})
	c2 := NewDerived(func() string {
		return fmt.Sprint(v.Value()) + c1.Value()
	})

	fmt.Println(c2.Value())
	fmt.Println(c2.Value())

	// Output:
	// 0foo
	// 1foo
}

func ExampleDerived_writable() {
	count := NewSignal(1)
	doubled := NewWritableDerived(
		func() int { return count.Value() * 2 },
		func(v int) { count.Set(v / 2) },
	)

	fmt.Println(doubled.Value())
	doubled.Set(10)
	fmt.Println(count.Value())
	fmt.Println(doubled.Value())

	// Output:
	// 2
	// 5
	// 10
}
