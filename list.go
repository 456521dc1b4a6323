// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mona

import "fmt"

// List is an eager list with a monadic interface. It is a plain slice
// underneath; transformations allocate fresh slices and never mutate the
// receiver.
type List[A any] []A

// ListOf creates a List from the given items.
func ListOf[A any](items ...A) List[A] {
	return List[A](items)
}

// Filter returns the elements satisfying pred, in order.
func (l List[A]) Filter(pred func(A) bool) List[A] {
	out := make(List[A], 0, len(l))
	for _, a := range l {
		if pred(a) {
			out = append(out, a)
		}
	}
	return out
}

// Take returns the first n elements, or the whole list if it is shorter.
func (l List[A]) Take(n int) List[A] {
	if n < 0 {
		n = 0
	}
	if n > len(l) {
		n = len(l)
	}
	out := make(List[A], n)
	copy(out, l[:n])
	return out
}

// Skip returns the list without its first n elements.
func (l List[A]) Skip(n int) List[A] {
	if n < 0 {
		n = 0
	}
	if n > len(l) {
		n = len(l)
	}
	out := make(List[A], len(l)-n)
	copy(out, l[n:])
	return out
}

// String implements fmt.Stringer.
func (l List[A]) String() string {
	return fmt.Sprintf("List%v", []A(l))
}

// MapList applies a function to every element.
func MapList[A, B any](l List[A], f func(A) B) List[B] {
	out := make(List[B], len(l))
	for i, a := range l {
		out[i] = f(a)
	}
	return out
}

// FlatMapList applies f to every element and concatenates the resulting
// lists in element order.
func FlatMapList[A, B any](l List[A], f func(A) List[B]) List[B] {
	out := make(List[B], 0, len(l))
	for _, a := range l {
		out = append(out, f(a)...)
	}
	return out
}

// ApplyList applies every function in mf to every value in ma — the
// cartesian application, grouped by function.
func ApplyList[A, B any](ma List[A], mf List[func(A) B]) List[B] {
	return FlatMapList(mf, func(f func(A) B) List[B] {
		return MapList(ma, f)
	})
}

// Apply2List is ApplyList with the function list first, for chains over
// curried functions.
func Apply2List[A, B any](mf List[func(A) B], ma List[A]) List[B] {
	return FlatMapList(mf, func(f func(A) B) List[B] {
		return MapList(ma, f)
	})
}
