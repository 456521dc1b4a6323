// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mona

// Function composition and currying helpers.
//
// The applicative operations (Apply2*) take containers of unary functions.
// Multi-argument functions participate through explicit currying: Curry2 and
// Curry3 turn fixed-arity functions into chains of unary ones, so
// Apply2X(Apply2X(pure(Curry2(f)), ma), mb) applies f across two containers.

// Identity returns its argument unchanged.
// Named generic function produces a static function value per type
// instantiation, avoiding the heap allocation that anonymous closures incur.
func Identity[A any](a A) A { return a }

// Compose composes two functions right to left: Compose(f, g)(x) = f(g(x)).
func Compose[A, B, C any](f func(B) C, g func(A) B) func(A) C {
	return func(a A) C {
		return f(g(a))
	}
}

// Compose3 composes three functions right to left.
func Compose3[A, B, C, D any](f func(C) D, g func(B) C, h func(A) B) func(A) D {
	return func(a A) D {
		return f(g(h(a)))
	}
}

// Curry2 converts a two-argument function into a chain of unary functions.
func Curry2[A, B, C any](f func(A, B) C) func(A) func(B) C {
	return func(a A) func(B) C {
		return func(b B) C {
			return f(a, b)
		}
	}
}

// Curry3 converts a three-argument function into a chain of unary functions.
func Curry3[A, B, C, D any](f func(A, B, C) D) func(A) func(B) func(C) D {
	return func(a A) func(B) func(C) D {
		return func(b B) func(C) D {
			return func(c C) D {
				return f(a, b, c)
			}
		}
	}
}

// Uncurry2 is the inverse of Curry2.
func Uncurry2[A, B, C any](f func(A) func(B) C) func(A, B) C {
	return func(a A, b B) C {
		return f(a)(b)
	}
}
