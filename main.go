package main

import (
	"fmt"
	"time"

	"github.com/xlcodes/reactor/reactor"
)

func main() {
	scope := reactor.NewScope(false)

	scope.Run(func() {
		a := reactor.NewSignal(1)
		b := reactor.NewSignal(2)

		sum := reactor.NewDerived(func() int {
			result := a.Value() + b.Value()
			fmt.Println("  [derived] computing sum:", result)
			return result
		})

		reactor.NewEffect(func() {
			fmt.Println("  [effect] sum is:", sum.Value())
		})

		fmt.Println("\nUpdating both a and b in a batch...")
		reactor.Batch(func() {
			a.Set(10)
			b.Set(20)
		})

		fmt.Println("\nExpected: sum recomputes once (30)")
	})

	time.Sleep(10 * time.Millisecond)
	scope.Stop()
}
