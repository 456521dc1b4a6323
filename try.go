// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mona

import "fmt"

// Try wraps a potentially panicking computation: Success carrying a value,
// or Failure carrying an error.
//
// Try is the catching container: MapTry, FlatMapTry, ApplyTry and the
// failure-track variants all recover a panic raised by the supplied
// function and downgrade it to a Failure. This implicit capture is unique
// to Try — [Maybe], [Either] and [Result] let panics propagate, and only
// their Safe* factories catch.
type Try[A any] struct {
	isFailure bool
	value     A
	err       error
}

// Success creates a Try holding a value.
func Success[A any](a A) Try[A] {
	return Try[A]{value: a}
}

// Failure creates a Try holding an error.
func Failure[A any](err error) Try[A] {
	return Try[A]{isFailure: true, err: err}
}

// SafeTry runs f once and wraps its outcome: Success of the result, or
// Failure of the returned error or recovered panic.
func SafeTry[A any](f func() (A, error)) (t Try[A]) {
	defer func() {
		if r := recover(); r != nil {
			t = Failure[A](recoveredError(r))
		}
	}()
	a, err := f()
	if err != nil {
		return Failure[A](err)
	}
	return Success(a)
}

// recoveredError converts a recover() value into an error.
func recoveredError(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return fmt.Errorf("panic: %v", r)
}

// IsSuccess returns true if this is a Success value.
func (t Try[A]) IsSuccess() bool {
	return !t.isFailure
}

// IsFailure returns true if this is a Failure value.
func (t Try[A]) IsFailure() bool {
	return t.isFailure
}

// Get returns the Success value and true, or zero and false.
func (t Try[A]) Get() (A, bool) {
	if t.isFailure {
		var zero A
		return zero, false
	}
	return t.value, true
}

// GetFailure returns the error and true, or nil and false.
func (t Try[A]) GetFailure() (error, bool) {
	if t.isFailure {
		return t.err, true
	}
	return nil, false
}

// Unwrap returns the Success value, or re-panics with the failure error.
func (t Try[A]) Unwrap() A {
	if t.isFailure {
		panic(t.err)
	}
	return t.value
}

// UnwrapOr returns the Success value, or the given default on Failure.
func (t Try[A]) UnwrapOr(def A) A {
	if t.isFailure {
		return def
	}
	return t.value
}

// UnwrapOrElse returns the Success value, or the result of calling f with
// the failure error.
func (t Try[A]) UnwrapOrElse(f func(error) A) A {
	if t.isFailure {
		return f(t.err)
	}
	return t.value
}

// UnwrapFailureOr returns the failure error, or the given default on
// Success.
func (t Try[A]) UnwrapFailureOr(def error) error {
	if t.isFailure {
		return t.err
	}
	return def
}

// MapFailure applies a function to the failure error, recovering a panic
// raised by f into a Failure. Success propagates unchanged.
func (t Try[A]) MapFailure(f func(error) error) (out Try[A]) {
	if !t.isFailure {
		return t
	}
	defer func() {
		if r := recover(); r != nil {
			out = Failure[A](recoveredError(r))
		}
	}()
	return Failure[A](f(t.err))
}

// FlatMapFailure sequences on the failure track: f runs on Failure and its
// result is returned directly, so f may recover back to a Success. A panic
// raised by f becomes a Failure.
func (t Try[A]) FlatMapFailure(f func(error) Try[A]) (out Try[A]) {
	if !t.isFailure {
		return t
	}
	defer func() {
		if r := recover(); r != nil {
			out = Failure[A](recoveredError(r))
		}
	}()
	return f(t.err)
}

// Inspect calls f with the Success value, for side effects, and returns
// the Try unchanged.
func (t Try[A]) Inspect(f func(A)) Try[A] {
	if !t.isFailure {
		f(t.value)
	}
	return t
}

// InspectFailure calls f with the failure error, for side effects, and
// returns the Try unchanged.
func (t Try[A]) InspectFailure(f func(error)) Try[A] {
	if t.isFailure {
		f(t.err)
	}
	return t
}

// ToEither converts the Try into an error-valued Either with the same tag
// and payload.
func (t Try[A]) ToEither() Either[error, A] {
	if t.isFailure {
		return Left[error, A](t.err)
	}
	return Right[error](t.value)
}

// ToResult converts the Try into a Result with the same tag and payload.
func (t Try[A]) ToResult() Result[A] {
	if t.isFailure {
		return Err[A](t.err)
	}
	return Ok(t.value)
}

// String implements fmt.Stringer.
func (t Try[A]) String() string {
	if t.isFailure {
		return fmt.Sprintf("Failure(%v)", t.err)
	}
	return fmt.Sprintf("Success(%v)", t.value)
}

// MapTry applies a function to the Success value, recovering a panic
// raised by f into a Failure. Failure propagates unchanged.
func MapTry[A, B any](t Try[A], f func(A) B) (out Try[B]) {
	if t.isFailure {
		return Failure[B](t.err)
	}
	defer func() {
		if r := recover(); r != nil {
			out = Failure[B](recoveredError(r))
		}
	}()
	return Success(f(t.value))
}

// FlatMapTry sequences two Try computations, recovering a panic raised by
// f into a Failure.
func FlatMapTry[A, B any](t Try[A], f func(A) Try[B]) (out Try[B]) {
	if t.isFailure {
		return Failure[B](t.err)
	}
	defer func() {
		if r := recover(); r != nil {
			out = Failure[B](recoveredError(r))
		}
	}()
	return f(t.value)
}

// ApplyTry applies a Try holding a function to a Try holding a value.
// The function container is inspected first; a panic raised during
// application becomes a Failure.
func ApplyTry[A, B any](ma Try[A], mf Try[func(A) B]) Try[B] {
	return FlatMapTry(mf, func(f func(A) B) Try[B] {
		return MapTry(ma, f)
	})
}

// Apply2Try is ApplyTry with the function container first, for chains over
// curried functions.
func Apply2Try[A, B any](mf Try[func(A) B], ma Try[A]) Try[B] {
	return FlatMapTry(mf, func(f func(A) B) Try[B] {
		return MapTry(ma, f)
	})
}

// MatchTry pattern matches on the Try, calling onFailure or onSuccess.
func MatchTry[A, T any](t Try[A], onFailure func(error) T, onSuccess func(A) T) T {
	if t.isFailure {
		return onFailure(t.err)
	}
	return onSuccess(t.value)
}
