// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mona

// Reader represents a computation that reads values from a shared
// environment. Reader[E, A] computes a value of type A from an environment
// of type E.
//
// Composition is deferred: nothing executes until [Reader.Run] supplies the
// environment, which is threaded through every composed stage.
type Reader[E, A any] func(E) A

// ReturnReader lifts a pure value into the reader monad, ignoring the
// environment.
func ReturnReader[E, A any](a A) Reader[E, A] {
	return func(E) A {
		return a
	}
}

// Ask is the identity reader: it returns the environment itself.
func Ask[E any]() Reader[E, E] {
	return Identity[E]
}

// Run executes the reader against the given environment.
func (m Reader[E, A]) Run(env E) A {
	return m(env)
}

// Local runs the reader against an environment transformed by f.
// The transformation is visible only to m — the caller's environment is
// untouched.
func (m Reader[E, A]) Local(f func(E) E) Reader[E, A] {
	return func(env E) A {
		return m(f(env))
	}
}

// MapReader applies a function to the reader's result, preserving deferred
// evaluation.
func MapReader[E, A, B any](m Reader[E, A], f func(A) B) Reader[E, B] {
	return func(env E) B {
		return f(m(env))
	}
}

// FlatMapReader sequences two reader computations. The environment is
// passed to both m and the reader produced by f.
func FlatMapReader[E, A, B any](m Reader[E, A], f func(A) Reader[E, B]) Reader[E, B] {
	return func(env E) B {
		return f(m(env))(env)
	}
}

// ApplyReader applies a reader producing a function to a reader producing
// a value. Both run against the same environment, function side first.
func ApplyReader[E, A, B any](ma Reader[E, A], mf Reader[E, func(A) B]) Reader[E, B] {
	return FlatMapReader(mf, func(f func(A) B) Reader[E, B] {
		return MapReader(ma, f)
	})
}

// Apply2Reader is ApplyReader with the function reader first, for chains
// over curried functions.
func Apply2Reader[E, A, B any](mf Reader[E, func(A) B], ma Reader[E, A]) Reader[E, B] {
	return FlatMapReader(mf, func(f func(A) B) Reader[E, B] {
		return MapReader(ma, f)
	})
}
