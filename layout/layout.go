// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

// Package layout reports the size and alignment of types and combines them
// under the maximum-size/maximum-alignment rule used by the flagged either
// storage. No packing optimization is applied.
package layout

import "unsafe"

type Layout struct {
	Size  uintptr
	Align uintptr
}

// Of reports the layout of T.
func Of[T any]() Layout {
	var v T
	return Layout{
		Size:  unsafe.Sizeof(v),
		Align: unsafe.Alignof(v),
	}
}

// Union combines two layouts into the layout of a region able to hold a value
// of either shape: the larger size and the stricter alignment.
func (self Layout) Union(other Layout) Layout {
	return Layout{
		Size:  max(self.Size, other.Size),
		Align: max(self.Align, other.Align),
	}
}

// Padded reports Size rounded up to a multiple of Align, the stride a value
// with this layout occupies in an array.
func (self Layout) Padded() uintptr {
	if self.Align == 0 {
		return self.Size
	}
	rem := self.Size % self.Align
	if rem == 0 {
		return self.Size
	}
	return self.Size + self.Align - rem
}
