// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mona

import "fmt"

// Result represents a computation outcome: Ok carrying a value, or Err
// carrying an error. It is [Either] specialized to an error Left, with the
// error-handling conveniences that specialization allows.
//
// Like Either, Result is a propagating container: MapResult and
// FlatMapResult do not recover panics raised by the supplied function.
// [SafeResult] is the one-shot catching factory; [Try] is the container
// whose every operation catches.
type Result[A any] struct {
	isErr bool
	value A
	err   error
}

// Ok creates a success Result.
func Ok[A any](a A) Result[A] {
	return Result[A]{value: a}
}

// Err creates a failure Result.
func Err[A any](err error) Result[A] {
	return Result[A]{isErr: true, err: err}
}

// SafeResult runs f once and wraps its outcome: Ok of the result, or Err of
// the returned error. A panic raised by f is recovered and converted to an
// Err as well.
func SafeResult[A any](f func() (A, error)) (r Result[A]) {
	defer func() {
		if rec := recover(); rec != nil {
			r = Err[A](recoveredError(rec))
		}
	}()
	a, err := f()
	if err != nil {
		return Err[A](err)
	}
	return Ok(a)
}

// IsOk returns true if this is an Ok value.
func (r Result[A]) IsOk() bool {
	return !r.isErr
}

// IsErr returns true if this is an Err value.
func (r Result[A]) IsErr() bool {
	return r.isErr
}

// Get returns the Ok value and true, or zero and false.
func (r Result[A]) Get() (A, bool) {
	if r.isErr {
		var zero A
		return zero, false
	}
	return r.value, true
}

// GetErr returns the error and true, or nil and false.
func (r Result[A]) GetErr() (error, bool) {
	if r.isErr {
		return r.err, true
	}
	return nil, false
}

// Unwrap returns the Ok value, or panics with the error if this is an Err.
func (r Result[A]) Unwrap() A {
	if r.isErr {
		panic(r.err)
	}
	return r.value
}

// UnwrapOr returns the Ok value, or the given default on Err.
func (r Result[A]) UnwrapOr(def A) A {
	if r.isErr {
		return def
	}
	return r.value
}

// UnwrapOrElse returns the Ok value, or the result of calling f with the
// error.
func (r Result[A]) UnwrapOrElse(f func(error) A) A {
	if r.isErr {
		return f(r.err)
	}
	return r.value
}

// UnwrapErrOr returns the error, or the given default on Ok.
func (r Result[A]) UnwrapErrOr(def error) error {
	if r.isErr {
		return r.err
	}
	return def
}

// Expect annotates the error with a context message, wrapping the original
// so errors.Is/As still see it. Ok passes through unchanged.
func (r Result[A]) Expect(msg string) Result[A] {
	if r.isErr {
		return Err[A](fmt.Errorf("%s: %w", msg, r.err))
	}
	return r
}

// MapErr applies a function to the error. Ok propagates unchanged.
func (r Result[A]) MapErr(f func(error) error) Result[A] {
	if r.isErr {
		return Err[A](f(r.err))
	}
	return r
}

// FlatMapErr sequences on the error track: f runs on Err and its result is
// returned directly, Ok propagates unchanged. This is the recovery hook —
// f may return an Ok to resume the success track.
func (r Result[A]) FlatMapErr(f func(error) Result[A]) Result[A] {
	if r.isErr {
		return f(r.err)
	}
	return r
}

// Inspect calls f with the Ok value, for side effects such as logging,
// and returns the Result unchanged.
func (r Result[A]) Inspect(f func(A)) Result[A] {
	if !r.isErr {
		f(r.value)
	}
	return r
}

// InspectErr calls f with the error, for side effects, and returns the
// Result unchanged.
func (r Result[A]) InspectErr(f func(error)) Result[A] {
	if r.isErr {
		f(r.err)
	}
	return r
}

// ToEither converts the Result into an error-valued Either with the same
// tag and payload.
func (r Result[A]) ToEither() Either[error, A] {
	if r.isErr {
		return Left[error, A](r.err)
	}
	return Right[error](r.value)
}

// String implements fmt.Stringer.
func (r Result[A]) String() string {
	if r.isErr {
		return fmt.Sprintf("Err(%v)", r.err)
	}
	return fmt.Sprintf("Ok(%v)", r.value)
}

// MapResult applies a function to the Ok value. Err propagates unchanged.
func MapResult[A, B any](r Result[A], f func(A) B) Result[B] {
	if r.isErr {
		return Err[B](r.err)
	}
	return Ok(f(r.value))
}

// FlatMapResult sequences two Result computations.
func FlatMapResult[A, B any](r Result[A], f func(A) Result[B]) Result[B] {
	if r.isErr {
		return Err[B](r.err)
	}
	return f(r.value)
}

// ApplyResult applies a Result holding a function to a Result holding a
// value. The function container is inspected first, so its error wins when
// both sides are Err.
func ApplyResult[A, B any](ma Result[A], mf Result[func(A) B]) Result[B] {
	return FlatMapResult(mf, func(f func(A) B) Result[B] {
		return MapResult(ma, f)
	})
}

// Apply2Result is ApplyResult with the function container first, for chains
// over curried functions.
func Apply2Result[A, B any](mf Result[func(A) B], ma Result[A]) Result[B] {
	return FlatMapResult(mf, func(f func(A) B) Result[B] {
		return MapResult(ma, f)
	})
}

// MatchResult pattern matches on the Result, calling onErr or onOk.
func MatchResult[A, T any](r Result[A], onErr func(error) T, onOk func(A) T) T {
	if r.isErr {
		return onErr(r.err)
	}
	return onOk(r.value)
}
