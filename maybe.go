// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mona

import "fmt"

// Maybe represents an optional value: Just carrying a value, or Nothing.
//
// Maybe is the simplest error-carrying container — all failures collapse to
// Nothing. A richer two-track container is [Either]. Map and FlatMap do not
// recover panics raised by the supplied function; see [Try] for the catching
// container.
//
// Equality is structural: for comparable A, two Maybe values compare equal
// with == iff they have the same tag and, for Just, the same payload.
type Maybe[A any] struct {
	value  A
	isJust bool
}

// Just creates a Maybe holding a value.
func Just[A any](a A) Maybe[A] {
	return Maybe[A]{value: a, isJust: true}
}

// Nothing creates an empty Maybe.
func Nothing[A any]() Maybe[A] {
	return Maybe[A]{}
}

// FromPtr converts a pointer into a Maybe: Just of the pointee, or Nothing
// for nil.
func FromPtr[A any](p *A) Maybe[A] {
	if p == nil {
		return Nothing[A]()
	}
	return Just(*p)
}

// FromOk converts a comma-ok pair into a Maybe, e.g. a map lookup or type
// assertion result.
func FromOk[A any](a A, ok bool) Maybe[A] {
	if !ok {
		return Nothing[A]()
	}
	return Just(a)
}

// SafeMaybe runs f once and wraps its outcome: Just of the result, or
// Nothing if f returns an error or panics.
func SafeMaybe[A any](f func() (A, error)) (m Maybe[A]) {
	defer func() {
		if recover() != nil {
			m = Nothing[A]()
		}
	}()
	a, err := f()
	if err != nil {
		return Nothing[A]()
	}
	return Just(a)
}

// IsJust returns true if this Maybe holds a value.
func (m Maybe[A]) IsJust() bool {
	return m.isJust
}

// IsNothing returns true if this Maybe is empty.
func (m Maybe[A]) IsNothing() bool {
	return !m.isJust
}

// Get returns the value and true, or zero and false.
func (m Maybe[A]) Get() (A, bool) {
	if m.isJust {
		return m.value, true
	}
	var zero A
	return zero, false
}

// Filter returns the Maybe unchanged if it holds a value satisfying pred,
// otherwise Nothing.
func (m Maybe[A]) Filter(pred func(A) bool) Maybe[A] {
	if m.isJust && pred(m.value) {
		return m
	}
	return Nothing[A]()
}

// OrElse returns the Maybe unchanged if it holds a value, otherwise the
// given alternative.
func (m Maybe[A]) OrElse(alt Maybe[A]) Maybe[A] {
	if m.isJust {
		return m
	}
	return alt
}

// Unwrap returns the value, or panics if the Maybe is Nothing.
// Unwrapping an empty container is a contract violation; use [Maybe.UnwrapOr]
// or [Maybe.Get] when emptiness is an expected outcome.
func (m Maybe[A]) Unwrap() A {
	if !m.isJust {
		panic("mona: unwrap of Nothing")
	}
	return m.value
}

// UnwrapOr returns the value, or the given default if the Maybe is Nothing.
func (m Maybe[A]) UnwrapOr(def A) A {
	if !m.isJust {
		return def
	}
	return m.value
}

// UnwrapOrElse returns the value, or the result of calling f if the Maybe
// is Nothing.
func (m Maybe[A]) UnwrapOrElse(f func() A) A {
	if !m.isJust {
		return f()
	}
	return m.value
}

// String implements fmt.Stringer.
func (m Maybe[A]) String() string {
	if m.isJust {
		return fmt.Sprintf("Just(%v)", m.value)
	}
	return "Nothing"
}

// MapMaybe applies a function to the value. Nothing propagates unchanged.
func MapMaybe[A, B any](m Maybe[A], f func(A) B) Maybe[B] {
	if !m.isJust {
		return Nothing[B]()
	}
	return Just(f(m.value))
}

// FlatMapMaybe sequences two Maybe computations. The result of f is
// returned directly, so f may itself produce Nothing.
func FlatMapMaybe[A, B any](m Maybe[A], f func(A) Maybe[B]) Maybe[B] {
	if !m.isJust {
		return Nothing[B]()
	}
	return f(m.value)
}

// ApplyMaybe applies a Maybe holding a function to a Maybe holding a value.
// The function container is inspected first; Nothing on either side yields
// Nothing.
func ApplyMaybe[A, B any](ma Maybe[A], mf Maybe[func(A) B]) Maybe[B] {
	return FlatMapMaybe(mf, func(f func(A) B) Maybe[B] {
		return MapMaybe(ma, f)
	})
}

// Apply2Maybe is ApplyMaybe with the function container first, for chains
// over curried functions:
//
//	Apply2Maybe(Apply2Maybe(Just(Curry2(add)), Just(1)), Just(2))
func Apply2Maybe[A, B any](mf Maybe[func(A) B], ma Maybe[A]) Maybe[B] {
	return FlatMapMaybe(mf, func(f func(A) B) Maybe[B] {
		return MapMaybe(ma, f)
	})
}

// MatchMaybe pattern matches on the Maybe, calling onNothing or onJust.
// The empty case comes first, keeping the failure-first argument order of
// [MatchEither], [MatchResult] and [MatchTry].
func MatchMaybe[A, T any](m Maybe[A], onNothing func() T, onJust func(A) T) T {
	if m.isJust {
		return onJust(m.value)
	}
	return onNothing()
}

// MaybeFn folds a Maybe with a transform and a default: f applied to the
// value for Just, the default for Nothing.
func MaybeFn[A, T any](m Maybe[A], f func(A) T, def T) T {
	if !m.isJust {
		return def
	}
	return f(m.value)
}
