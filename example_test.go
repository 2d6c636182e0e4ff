package flagged_test

import (
	"fmt"

	"gopkg.microglot.org/flagged.go"
)

func ExampleSome() {
	greeting := flagged.Some("hello, world")
	fmt.Println(*greeting.Get())
	fmt.Println(greeting.IntoInner())
	// Output:
	// hello, world
	// hello, world
}

func ExampleLeft() {
	nums := flagged.Left[[]int, map[int]struct{}]([]int{1, 2, 3})
	view := nums.Get()
	*view = append(*view, 4)
	fmt.Println(nums.IntoInner())
	// Output:
	// [1 2 3 4]
}

// buffered holds a fallback value only when its instantiation says so; the
// absent instantiation contributes no storage at all.
type buffered[T any, O flagged.Option[T]] struct {
	fallback O
}

func ExampleOption() {
	with := buffered[string, flagged.OptionSome[string]]{
		fallback: flagged.Some("default"),
	}
	without := buffered[string, flagged.OptionNone[string]]{
		fallback: flagged.None[string](),
	}
	_ = without
	fmt.Println(with.fallback.Value())
	// Output:
	// default
}
