// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mona

// Cont represents a continuation-passing computation.
// Cont[R, A] computes a value of type A, with final result type R.
//
// The function receives a continuation k of type func(A) R, which represents
// "the rest of the computation". Applying k to a value of type A produces
// the final result of type R.
//
// Nothing runs until a final continuation is supplied via [Run] or [RunWith];
// composition via [Bind], [Map] and [Then] only stacks closures. Evaluation
// is synchronous and happens on the calling goroutine.
type Cont[R, A any] func(k func(A) R) R

// Return lifts a pure value into the continuation monad.
// The resulting computation immediately passes the value to its continuation.
func Return[R, A any](a A) Cont[R, A] {
	return func(k func(A) R) R {
		return k(a)
	}
}

// Suspend creates a continuation from a CPS function.
// This is the primitive constructor for continuations that need direct
// access to the continuation, e.g. to hand it to an external callback API.
func Suspend[R, A any](f func(func(A) R) R) Cont[R, A] {
	return Cont[R, A](f)
}

// Bind sequences two continuations (monadic bind).
// It runs m, then passes the result to f to get a new continuation.
func Bind[R, A, B any](m Cont[R, A], f func(A) Cont[R, B]) Cont[R, B] {
	return func(k func(B) R) R {
		return m(func(a A) R {
			return f(a)(k)
		})
	}
}

// Map applies a pure function to the result of a continuation.
//
// Allocation note: Map is equivalent to Bind(m, compose(Return, f)) but
// avoids the intermediate Return closure, making it the preferred choice
// when the transformation is pure.
func Map[R, A, B any](m Cont[R, A], f func(A) B) Cont[R, B] {
	return func(k func(B) R) R {
		return m(func(a A) R {
			return k(f(a))
		})
	}
}

// Then sequences two continuations, discarding the first result.
// This is more efficient than Bind when the second computation
// does not depend on the first result.
func Then[R, A, B any](m Cont[R, A], n Cont[R, B]) Cont[R, B] {
	return func(k func(B) R) R {
		return m(func(_ A) R {
			return n(k)
		})
	}
}

// ApplyCont applies a continuation producing a function to a continuation
// producing a value. The function computation runs first.
func ApplyCont[R, A, B any](ma Cont[R, A], mf Cont[R, func(A) B]) Cont[R, B] {
	return Bind(mf, func(f func(A) B) Cont[R, B] {
		return Map(ma, f)
	})
}

// Apply2Cont is ApplyCont with the function computation as the receiver-like
// first argument, for chains over curried functions:
//
//	Apply2Cont(Apply2Cont(Return[int](Curry2(add)), Return[int](1)), Return[int](2))
func Apply2Cont[R, A, B any](mf Cont[R, func(A) B], ma Cont[R, A]) Cont[R, B] {
	return Bind(mf, func(f func(A) B) Cont[R, B] {
		return Map(ma, f)
	})
}

// Run executes a continuation with the identity continuation.
// The result type must match the value type (R = A).
func Run[A any](m Cont[A, A]) A {
	return m(Identity[A])
}

// RunWith executes a continuation with a custom final continuation.
// This is the explicit callback-passing entry point: the computation does
// not run until a callback is supplied.
func RunWith[R, A any](m Cont[R, A], k func(A) R) R {
	return m(k)
}

// Shift captures the current continuation up to the nearest Reset.
// The function f receives the captured continuation k, which can be
// invoked zero or more times.
//
// Example:
//
//	Reset(Bind(Shift(func(k func(int) int) int {
//	    return k(k(3))  // Apply continuation twice
//	}), func(x int) Cont[int, int] {
//	    return Return[int](x * 2)
//	}))
//	// Result: 12 (3 * 2 * 2)
func Shift[R, A any](f func(k func(A) R) R) Cont[R, A] {
	return Cont[R, A](f)
}

// Reset establishes a delimiter for Shift.
// Continuations captured by Shift stop at the nearest enclosing Reset.
func Reset[R, A any](m Cont[A, A]) Cont[R, A] {
	return Return[R, A](Run(m))
}
