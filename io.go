// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mona

// IO represents a deferred side-effecting computation: a thunk producing a
// value of type A.
//
// Nothing executes until [IO.Run], and Run is not memoized — calling it
// twice re-executes the wrapped effect twice. The container adds no
// synchronization; running the same IO from multiple goroutines is safe
// only if the wrapped thunk is.
type IO[A any] func() A

// ReturnIO lifts a pure value into an IO as a constant thunk.
func ReturnIO[A any](a A) IO[A] {
	return func() A {
		return a
	}
}

// SuspendIO wraps an effectful thunk as an IO. The thunk is not invoked.
func SuspendIO[A any](f func() A) IO[A] {
	return IO[A](f)
}

// Run executes the deferred computation, performing its effects.
func (m IO[A]) Run() A {
	return m()
}

// MapIO composes a pure function with the deferred computation. The effect
// still does not execute until Run.
func MapIO[A, B any](m IO[A], f func(A) B) IO[B] {
	return func() B {
		return f(m())
	}
}

// FlatMapIO sequences two effectful computations: running the result runs
// m, feeds its value to f, and runs the IO f produces.
func FlatMapIO[A, B any](m IO[A], f func(A) IO[B]) IO[B] {
	return func() B {
		return f(m())()
	}
}

// ApplyIO applies an IO producing a function to an IO producing a value.
// The function side's effects run first.
func ApplyIO[A, B any](ma IO[A], mf IO[func(A) B]) IO[B] {
	return FlatMapIO(mf, func(f func(A) B) IO[B] {
		return MapIO(ma, f)
	})
}

// Apply2IO is ApplyIO with the function computation first, for chains over
// curried functions.
func Apply2IO[A, B any](mf IO[func(A) B], ma IO[A]) IO[B] {
	return FlatMapIO(mf, func(f func(A) B) IO[B] {
		return MapIO(ma, f)
	})
}
