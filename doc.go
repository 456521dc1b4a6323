// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package mona provides generic monadic containers in Go: optional values,
// railway-oriented error handling, deferred evaluation, environment and
// state threading, log accumulation, and continuation passing.
//
// Every container exposes the same operation family. Go methods cannot
// introduce type parameters, so operations that change the element type are
// package-level functions suffixed with the container name (MapMaybe,
// FlatMapEither, ApplyResult); operations that keep the element type are
// methods (Filter, Tell, Local, the Unwrap family). [Cont], the package's
// continuation core, keeps the unsuffixed Bind/Map/Then names.
//
// # Design Philosophy
//
// mona provides:
//   - Immutable value containers: every operation returns a fresh instance
//   - Two-track short-circuiting for the sum types, no hidden control flow
//   - Deferred evaluation for the computation types, forced only by Run
//
// # Containers
//
// Sum types (tag + payload, structural equality via ==):
//
//   - [Maybe]: [Just] or [Nothing] — optional value
//   - [Either]: [Left] or [Right] — two-track disjoint union
//   - [Result]: [Ok] or [Err] — Either specialized to an error track
//   - [Try]: [Success] or [Failure] — the catching container
//
// Computation types (closures, forced by Run):
//
//   - [Reader]: environment-threading computation
//   - [State]: state-threading computation
//   - [IO], [Lazy]: deferred thunks, not memoized
//   - [Sequence]: deferred list, materialized by Run
//   - [Cont]: continuation-passing computation
//
// Eager composites:
//
//   - [List]: slice with a monadic interface
//   - [Writer]: value plus accumulated [Monoid] log
//
// # Operation Family
//
// For a container X:
//
//   - MapX: apply a pure function on the success track
//   - FlatMapX: sequence, letting the function choose the next container
//   - ApplyX / Apply2X: apply a contained function to a contained value;
//     multi-argument functions chain through [Curry2] and [Curry3]
//   - MatchX: fold both tracks of a sum type
//
// On the failure track (Nothing, Left, Err, Failure) the supplied function
// is skipped and the failure payload propagates unchanged.
//
// # Error Capture
//
// Two philosophies coexist. The propagating containers ([Maybe], [Either],
// [Result]) treat failure as data: a panic raised inside a mapped function
// propagates to the caller. The catching container ([Try]) recovers panics
// in every Map/FlatMap/Apply and downgrades them to a [Failure]. The
// one-shot Safe factories ([SafeMaybe], [SafeEither], [SafeResult],
// [SafeTry]) wrap a single call, converting a returned error or a panic
// into the failure variant.
//
// Unwrap on an empty or failed container panics — a deliberate fail-fast
// contract violation, distinct from the capture above. UnwrapOr and
// UnwrapOrElse are the total alternatives.
//
// # Conversions
//
//   - [Result.ToEither], [EitherToResult]
//   - [Try.ToEither], [Try.ToResult]
//
// Round-trips preserve tag and payload.
//
// # Delimited Control
//
//   - [Shift]: capture the current continuation up to [Reset]
//   - [Reset]: establish a delimiter for [Shift]
//
// # Concurrency
//
// The containers are pure value transformers with no internal state and no
// synchronization. Running a deferred computation evaluates synchronously
// on the calling goroutine; invoking the same embedded thunk from several
// goroutines is safe only if the thunk itself is.
//
// # Example
//
//	parse := func(s string) Result[int] {
//		return SafeResult(func() (int, error) { return strconv.Atoi(s) })
//	}
//
//	total := FlatMapResult(parse("2"), func(a int) Result[int] {
//		return MapResult(parse("40"), func(b int) int { return a + b })
//	})
//	// total == Ok(42)
package mona
