// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mona

// Sequence is the deferred counterpart of [List]: a thunk producing a list
// of values. Filter, Take, Skip and the Map/FlatMap operations stack
// transformations without materializing anything; [Sequence.Run] forces
// the chain into an eager List.
//
// Like [IO] and [Lazy], Run is not memoized — each call re-evaluates the
// whole chain.
type Sequence[A any] func() List[A]

// SequenceOf creates a Sequence over the given items.
func SequenceOf[A any](items ...A) Sequence[A] {
	return func() List[A] {
		return List[A](items)
	}
}

// SuspendSequence wraps a thunk producing a slice as a Sequence without
// invoking it.
func SuspendSequence[A any](f func() []A) Sequence[A] {
	return func() List[A] {
		return List[A](f())
	}
}

// Run materializes the sequence into an eager List.
func (s Sequence[A]) Run() List[A] {
	return s()
}

// Filter defers a Filter over the eventual list.
func (s Sequence[A]) Filter(pred func(A) bool) Sequence[A] {
	return func() List[A] {
		return s().Filter(pred)
	}
}

// Take defers a Take over the eventual list.
func (s Sequence[A]) Take(n int) Sequence[A] {
	return func() List[A] {
		return s().Take(n)
	}
}

// Skip defers a Skip over the eventual list.
func (s Sequence[A]) Skip(n int) Sequence[A] {
	return func() List[A] {
		return s().Skip(n)
	}
}

// MapSequence defers applying f to every element.
func MapSequence[A, B any](s Sequence[A], f func(A) B) Sequence[B] {
	return func() List[B] {
		return MapList(s(), f)
	}
}

// FlatMapSequence defers applying f to every element and concatenating
// the sequences it produces.
func FlatMapSequence[A, B any](s Sequence[A], f func(A) Sequence[B]) Sequence[B] {
	return func() List[B] {
		return FlatMapList(s(), func(a A) List[B] {
			return f(a)()
		})
	}
}

// ApplySequence defers the cartesian application of every function in mf
// to every value in ma.
func ApplySequence[A, B any](ma Sequence[A], mf Sequence[func(A) B]) Sequence[B] {
	return func() List[B] {
		return ApplyList(ma(), mf())
	}
}

// Apply2Sequence is ApplySequence with the function sequence first, for
// chains over curried functions.
func Apply2Sequence[A, B any](mf Sequence[func(A) B], ma Sequence[A]) Sequence[B] {
	return func() List[B] {
		return Apply2List(mf(), ma())
	}
}
