package flagged

// OptionSome is the optional instantiation that always holds a value. Its
// accessors have no failure path because emptiness is impossible for this
// type, not merely unchecked.
type OptionSome[T any] struct {
	value T
}

// Some constructs an OptionSome holding v. It is the only constructor for the
// present instantiation; there is no way to build an empty OptionSome.
func Some[T any](v T) OptionSome[T] {
	return OptionSome[T]{
		value: v,
	}
}

// Get returns a view of the contained value. Mutations through the returned
// pointer are visible to later reads.
func (self *OptionSome[T]) Get() *T {
	return &self.value
}

// Value returns a copy of the contained value.
func (self OptionSome[T]) Value() T {
	return self.value
}

// IntoInner returns the contained value and consumes the container. The
// receiver is taken by value; the source must not be used afterwards.
func (self OptionSome[T]) IntoInner() T {
	return self.value
}

// OptionNone is the optional instantiation that never holds a value. It is a
// zero-size marker: no storage for T is retained, and no accessor or
// extraction method exists, so reading from an OptionNone does not type-check.
type OptionNone[T any] struct{}

// None constructs the absent marker. It is the only constructor for the
// absent instantiation and accepts no value.
func None[T any]() OptionNone[T] {
	return OptionNone[T]{}
}

// Option is satisfied by exactly the two optional instantiations of T. It
// lets a consumer be generic over presence the way the concrete types cannot:
//
//	type Cache[T any, O Option[T]] struct {
//		fallback O
//	}
type Option[T any] interface {
	OptionSome[T] | OptionNone[T]
}
