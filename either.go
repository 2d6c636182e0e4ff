// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package flagged

import (
	"gopkg.microglot.org/flagged.go/layout"
)

// eitherStore is the storage region shared by both either instantiations. It
// reserves a slot for each variant so that EitherLeft[L, R] and
// EitherRight[L, R] have identical size and the alignment of the stricter
// variant, whichever flag value is instantiated. Go has no untagged unions,
// so the slots sit side by side rather than overlapping; the region is still
// a single fixed shape a flag-agnostic consumer can embed and reason about.
type eitherStore[L, R any] struct {
	left  L
	right R
}

// storeFootprint is the documented lower bound of the region: the larger
// variant's size and the stricter variant's alignment. An instantiation that
// only ever materializes the small variant still pays for the large one. That
// cost is the contract, not an accident.
func storeFootprint[L, R any]() layout.Layout {
	return layout.Of[L]().Union(layout.Of[R]())
}

// EitherLeft is the instantiation whose active variant is L. Every operation
// is L-typed; nothing accepts or returns R, so right-variant use of this type
// does not type-check.
type EitherLeft[L, R any] struct {
	store eitherStore[L, R]
}

// Left constructs an EitherLeft holding v. It is the only constructor for the
// left instantiation.
func Left[L, R any](v L) EitherLeft[L, R] {
	return EitherLeft[L, R]{
		store: eitherStore[L, R]{left: v},
	}
}

// Get returns a view of the contained left value.
func (self *EitherLeft[L, R]) Get() *L {
	return &self.store.left
}

// Value returns a copy of the contained left value.
func (self EitherLeft[L, R]) Value() L {
	return self.store.left
}

// IntoInner returns the contained left value and consumes the container. The
// receiver is taken by value; the source must not be used afterwards.
func (self EitherLeft[L, R]) IntoInner() L {
	return self.store.left
}

// Flip repositions the contained value as the right variant of the mirrored
// type.
func (self EitherLeft[L, R]) Flip() EitherRight[R, L] {
	return Right[R, L](self.store.left)
}

// Footprint reports the guaranteed lower bound of the storage region,
// identical for both flag values of the same L and R.
func (self EitherLeft[L, R]) Footprint() layout.Layout {
	return storeFootprint[L, R]()
}

// EitherRight is the instantiation whose active variant is R. Every operation
// is R-typed; nothing accepts or returns L.
type EitherRight[L, R any] struct {
	store eitherStore[L, R]
}

// Right constructs an EitherRight holding v. It is the only constructor for
// the right instantiation.
func Right[L, R any](v R) EitherRight[L, R] {
	return EitherRight[L, R]{
		store: eitherStore[L, R]{right: v},
	}
}

// Get returns a view of the contained right value.
func (self *EitherRight[L, R]) Get() *R {
	return &self.store.right
}

// Value returns a copy of the contained right value.
func (self EitherRight[L, R]) Value() R {
	return self.store.right
}

// IntoInner returns the contained right value and consumes the container. The
// receiver is taken by value; the source must not be used afterwards.
func (self EitherRight[L, R]) IntoInner() R {
	return self.store.right
}

// Flip repositions the contained value as the left variant of the mirrored
// type.
func (self EitherRight[L, R]) Flip() EitherLeft[R, L] {
	return Left[R, L](self.store.right)
}

// Footprint reports the guaranteed lower bound of the storage region,
// identical for both flag values of the same L and R.
func (self EitherRight[L, R]) Footprint() layout.Layout {
	return storeFootprint[L, R]()
}

// Either is satisfied by exactly the two either instantiations of L and R.
type Either[L, R any] interface {
	EitherLeft[L, R] | EitherRight[L, R]
}
