package reactor

import (
	"errors"
	"fmt"
	"sync"
)

func ExampleSignal() {
	count := NewSignal(0)
	fmt.Println(count.Value())

	count.Set(10)
	fmt.Println(count.Value())

	// Output:
	// 0
	// 10
}

func ExampleSignal_concurrentRW() {
	var wg sync.WaitGroup
	count := NewSignal(0)

	wg.Add(1)
	go func() {
		defer wg.Done()
		count.Set(count.Value() + 1)
	}()

	wg.Wait()
	fmt.Println(count.Value())

	// Output:
	// 1
}

func ExampleSignal_zero() {
	err := NewSignal[error](nil)
	fmt.Println(err.Value())

	err.Set(errors.New("oops"))
	fmt.Println(err.Value())

	err.Set(nil)
	fmt.Println(err.Value())

	// Output:
	// <nil>
	// oops
	// <nil>
}

func ExampleSignal_unchangedWriteIsNoOp() {
	count := NewSignal(1)

	NewEffect(func() {
		fmt.Println("ran", count.Value())
	})

	count.Set(1) // same value, must not re-run the effect
	count.Set(2)

	// Output:
	// ran 1
	// ran 2
}

func ExampleFromGetter() {
	count := NewSignal(1)
	doubled := FromGetter(func() int { return count.Value() * 2 })

	fmt.Println(doubled.Value())
	count.Set(5)
	fmt.Println(doubled.Value())

	// Output:
	// 2
	// 10
}
