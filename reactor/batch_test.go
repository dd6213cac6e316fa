package reactor

import "fmt"

// Two writes inside a single Batch coalesce into one effect run, rather
// than one run per write.
func ExampleBatch() {
	a := NewSignal(1)
	b := NewSignal(2)

	NewEffect(func() {
		fmt.Println("sum", a.Value()+b.Value())
	})

	Batch(func() {
		a.Set(10)
		b.Set(20)
	})

	// Output:
	// sum 3
	// sum 30
}

// A Batch nested inside another Batch defers draining to the outermost
// call: only the final write is ever observed.
func ExampleBatch_nested() {
	a := NewSignal(0)

	NewEffect(func() {
		fmt.Println("ran", a.Value())
	})

	Batch(func() {
		a.Set(1)
		Batch(func() {
			a.Set(2)
		})
		a.Set(3)
	})
	fmt.Println("after batch")

	// Output:
	// ran 0
	// ran 3
	// after batch
}

// Outside of any Batch, every write still flushes on its own: each Set
// is its own implicit batch of one.
func ExampleBatch_unbatchedWritesStillFlush() {
	a := NewSignal(0)

	NewEffect(func() {
		fmt.Println("ran", a.Value())
	})

	a.Set(1)
	a.Set(2)

	// Output:
	// ran 0
	// ran 1
	// ran 2
}
