// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

// Package flagged provides container types whose contents are decided when the
// type is instantiated rather than tagged and branched on at runtime. An
// optional that is definitely present (or definitely absent), and a two-variant
// either whose active variant is fixed, each as its own concrete type:
//
//	_ = flagged.None[string]()
//	greeting := flagged.Some("hello, world")
//
//	// When there is definitely some value, the view has no failure path.
//	fmt.Println(*greeting.Get())
//
//	// Obtain the string inside.
//	contained := greeting.IntoInner()
//
// Because presence and variant choice are properties of the type, the illegal
// operations simply do not exist: flagged.None[string]() has no Get or
// IntoInner, and an EitherLeft exposes nothing R-typed. Misuse is rejected by
// the type checker, and no instantiation stores or inspects a discriminant.
//
// The Option and Either constraints let a consumer stay generic over the flag
// the way a const parameter would allow elsewhere:
//
//	type Container[T comparable, S flagged.Either[[]T, map[T]struct{}]] struct {
//		data S
//	}
//
//	// One concrete instantiation per flag value carries the behavior.
//	type ListContainer[T comparable] struct {
//		Container[T, flagged.EitherLeft[[]T, map[T]struct{}]]
//	}
//	type SetContainer[T comparable] struct {
//		Container[T, flagged.EitherRight[[]T, map[T]struct{}]]
//	}
//
// Both either instantiations share one storage layout sized for both variants,
// so a consumer embedding the type without knowing the flag can reason about a
// single fixed size. See Footprint for the documented contract.
package flagged
