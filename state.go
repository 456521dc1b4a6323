// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mona

// State represents a computation that threads a state value through a
// series of stages. State[S, A] maps an incoming state to a new state and
// a result of type A.
//
// Composition is deferred: nothing executes until [State.Run] supplies the
// initial state. The state itself is never mutated — each stage receives
// the previous stage's output state and returns a fresh one.
type State[S, A any] func(S) (S, A)

// ReturnState lifts a pure value into the state monad, passing the state
// through unchanged.
func ReturnState[S, A any](a A) State[S, A] {
	return func(s S) (S, A) {
		return s, a
	}
}

// Get returns the current state as both the new state and the result.
func Get[S any]() State[S, S] {
	return func(s S) (S, S) {
		return s, s
	}
}

// Put replaces the state; the result is the unit value.
func Put[S any](s S) State[S, struct{}] {
	return func(S) (S, struct{}) {
		return s, struct{}{}
	}
}

// Modify applies f to the state and returns the new state as the result.
func Modify[S any](f func(S) S) State[S, S] {
	return func(s S) (S, S) {
		next := f(s)
		return next, next
	}
}

// Run executes the stateful computation from the given initial state,
// returning the final state and the result.
func (m State[S, A]) Run(initial S) (S, A) {
	return m(initial)
}

// MapState applies a function to the result, preserving deferred
// evaluation and the threaded state.
func MapState[S, A, B any](m State[S, A], f func(A) B) State[S, B] {
	return func(s S) (S, B) {
		next, a := m(s)
		return next, f(a)
	}
}

// FlatMapState sequences two stateful computations: the state produced by
// m feeds the computation produced by f.
func FlatMapState[S, A, B any](m State[S, A], f func(A) State[S, B]) State[S, B] {
	return func(s S) (S, B) {
		next, a := m(s)
		return f(a)(next)
	}
}

// ApplyState applies a stateful computation producing a function to one
// producing a value. The function side runs first and its output state
// feeds the value side.
func ApplyState[S, A, B any](ma State[S, A], mf State[S, func(A) B]) State[S, B] {
	return FlatMapState(mf, func(f func(A) B) State[S, B] {
		return MapState(ma, f)
	})
}

// Apply2State is ApplyState with the function computation first, for
// chains over curried functions.
func Apply2State[S, A, B any](mf State[S, func(A) B], ma State[S, A]) State[S, B] {
	return FlatMapState(mf, func(f func(A) B) State[S, B] {
		return MapState(ma, f)
	})
}
