// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mona

// Lazy represents a deferred pure computation: a thunk producing a value
// of type A. It is structurally identical to [IO]; the distinct type marks
// intent — Lazy defers work, IO defers effects.
//
// Run is not memoized: every call re-evaluates the thunk. Wrap the thunk
// in sync.OnceValue before suspending if caching is wanted.
type Lazy[A any] func() A

// ReturnLazy lifts an already-computed value into a Lazy as a constant
// thunk.
func ReturnLazy[A any](a A) Lazy[A] {
	return func() A {
		return a
	}
}

// SuspendLazy wraps a deferred computation as a Lazy without invoking it.
func SuspendLazy[A any](f func() A) Lazy[A] {
	return Lazy[A](f)
}

// Run forces the deferred computation.
func (m Lazy[A]) Run() A {
	return m()
}

// MapLazy composes a pure function with the deferred computation.
func MapLazy[A, B any](m Lazy[A], f func(A) B) Lazy[B] {
	return func() B {
		return f(m())
	}
}

// FlatMapLazy sequences two deferred computations.
func FlatMapLazy[A, B any](m Lazy[A], f func(A) Lazy[B]) Lazy[B] {
	return func() B {
		return f(m())()
	}
}

// ApplyLazy applies a Lazy producing a function to a Lazy producing a
// value. The function side is forced first.
func ApplyLazy[A, B any](ma Lazy[A], mf Lazy[func(A) B]) Lazy[B] {
	return FlatMapLazy(mf, func(f func(A) B) Lazy[B] {
		return MapLazy(ma, f)
	})
}

// Apply2Lazy is ApplyLazy with the function computation first, for chains
// over curried functions.
func Apply2Lazy[A, B any](mf Lazy[func(A) B], ma Lazy[A]) Lazy[B] {
	return FlatMapLazy(mf, func(f func(A) B) Lazy[B] {
		return MapLazy(ma, f)
	})
}
