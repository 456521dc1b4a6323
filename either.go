// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mona

import "fmt"

// Either represents a value with two possibilities: Left (conventionally
// the error track) or Right (the success track).
//
// Map and FlatMap operate on the Right track and propagate Left unchanged;
// MapLeftEither and FlatMapLeftEither operate on the Left track. Neither
// recovers panics raised by the supplied function — see [Try] for the
// catching container, and [SafeEither] for the one-shot catching factory.
type Either[L, R any] struct {
	isRight bool
	left    L
	right   R
}

// Left creates a Left (error) value.
func Left[L, R any](l L) Either[L, R] {
	return Either[L, R]{isRight: false, left: l}
}

// Right creates a Right (success) value.
func Right[L, R any](r R) Either[L, R] {
	return Either[L, R]{isRight: true, right: r}
}

// SafeEither runs f once and wraps its outcome: Right of the result, or
// Left of the returned error. A panic raised by f is recovered and
// converted to a Left as well.
func SafeEither[A any](f func() (A, error)) (e Either[error, A]) {
	defer func() {
		if r := recover(); r != nil {
			e = Left[error, A](recoveredError(r))
		}
	}()
	a, err := f()
	if err != nil {
		return Left[error, A](err)
	}
	return Right[error](a)
}

// IsRight returns true if this is a Right value.
func (e Either[L, R]) IsRight() bool {
	return e.isRight
}

// IsLeft returns true if this is a Left value.
func (e Either[L, R]) IsLeft() bool {
	return !e.isRight
}

// GetRight returns the Right value and true, or zero and false.
func (e Either[L, R]) GetRight() (R, bool) {
	if e.isRight {
		return e.right, true
	}
	var zero R
	return zero, false
}

// GetLeft returns the Left value and true, or zero and false.
func (e Either[L, R]) GetLeft() (L, bool) {
	if !e.isRight {
		return e.left, true
	}
	var zero L
	return zero, false
}

// Unwrap returns the Right value, or panics if this is a Left.
func (e Either[L, R]) Unwrap() R {
	if !e.isRight {
		panic(fmt.Sprintf("mona: unwrap of Left(%v)", e.left))
	}
	return e.right
}

// UnwrapOr returns the Right value, or the given default on Left.
func (e Either[L, R]) UnwrapOr(def R) R {
	if !e.isRight {
		return def
	}
	return e.right
}

// UnwrapOrElse returns the Right value, or the result of calling f with
// the Left value.
func (e Either[L, R]) UnwrapOrElse(f func(L) R) R {
	if !e.isRight {
		return f(e.left)
	}
	return e.right
}

// UnwrapLeftOr returns the Left value, or the given default on Right.
func (e Either[L, R]) UnwrapLeftOr(def L) L {
	if !e.isRight {
		return e.left
	}
	return def
}

// String implements fmt.Stringer.
func (e Either[L, R]) String() string {
	if e.isRight {
		return fmt.Sprintf("Right(%v)", e.right)
	}
	return fmt.Sprintf("Left(%v)", e.left)
}

// MatchEither pattern matches on the Either, calling onLeft or onRight.
func MatchEither[L, R, T any](e Either[L, R], onLeft func(L) T, onRight func(R) T) T {
	if e.isRight {
		return onRight(e.right)
	}
	return onLeft(e.left)
}

// MapEither applies a function to the Right value.
func MapEither[L, R, B any](e Either[L, R], f func(R) B) Either[L, B] {
	if e.isRight {
		return Right[L](f(e.right))
	}
	return Left[L, B](e.left)
}

// FlatMapEither sequences two Either computations.
func FlatMapEither[L, R, B any](e Either[L, R], f func(R) Either[L, B]) Either[L, B] {
	if e.isRight {
		return f(e.right)
	}
	return Left[L, B](e.left)
}

// MapLeftEither applies a function to the Left value.
func MapLeftEither[L, M, R any](e Either[L, R], f func(L) M) Either[M, R] {
	if e.isRight {
		return Right[M](e.right)
	}
	return Left[M, R](f(e.left))
}

// FlatMapLeftEither sequences on the Left track: f runs on Left and its
// result is returned directly, Right propagates unchanged.
func FlatMapLeftEither[L, M, R any](e Either[L, R], f func(L) Either[M, R]) Either[M, R] {
	if e.isRight {
		return Right[M](e.right)
	}
	return f(e.left)
}

// ApplyEither applies an Either holding a function to an Either holding a
// value. The function container is inspected first, so its Left wins when
// both sides are Left.
func ApplyEither[L, A, B any](ma Either[L, A], mf Either[L, func(A) B]) Either[L, B] {
	return FlatMapEither(mf, func(f func(A) B) Either[L, B] {
		return MapEither(ma, f)
	})
}

// Apply2Either is ApplyEither with the function container first, for chains
// over curried functions.
func Apply2Either[L, A, B any](mf Either[L, func(A) B], ma Either[L, A]) Either[L, B] {
	return FlatMapEither(mf, func(f func(A) B) Either[L, B] {
		return MapEither(ma, f)
	})
}

// EitherToResult converts an error-valued Either into a Result with the
// same tag and payload.
func EitherToResult[A any](e Either[error, A]) Result[A] {
	if e.isRight {
		return Ok(e.right)
	}
	return Err[A](e.left)
}
