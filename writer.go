// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mona

import "fmt"

// Monoid constrains Writer log types to those whose built-in + is an
// associative combine with the zero value as identity: strings under
// concatenation and numeric types under addition. The monoid laws
// themselves are the caller's obligation — the compiler checks only that
// + exists.
type Monoid interface {
	~string |
		~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Pair holds two values.
type Pair[A, B any] struct {
	Fst A
	Snd B
}

// Writer represents a computation that produces a value alongside an
// accumulated log. Unlike [IO] and [Lazy], Writer is eager: the pair is
// materialized at construction, and every operation produces a new pair.
//
// Logs combine with + in computation order: the receiver's log comes
// first, the log produced by the bound or applied computation second.
type Writer[A any, W Monoid] struct {
	value A
	log   W
}

// NewWriter creates a Writer from a value and a log.
func NewWriter[A any, W Monoid](value A, log W) Writer[A, W] {
	return Writer[A, W]{value: value, log: log}
}

// ReturnWriter lifts a pure value into the writer monad with an empty log.
func ReturnWriter[W Monoid, A any](a A) Writer[A, W] {
	return Writer[A, W]{value: a}
}

// Run returns the value and the accumulated log.
func (w Writer[A, W]) Run() (A, W) {
	return w.value, w.log
}

// Tell appends m to the log, leaving the value untouched.
func (w Writer[A, W]) Tell(m W) Writer[A, W] {
	return Writer[A, W]{value: w.value, log: w.log + m}
}

// String implements fmt.Stringer.
func (w Writer[A, W]) String() string {
	return fmt.Sprintf("Writer(%v, %v)", w.value, w.log)
}

// MapWriter applies a function to the value, leaving the log untouched.
func MapWriter[W Monoid, A, B any](w Writer[A, W], f func(A) B) Writer[B, W] {
	return Writer[B, W]{value: f(w.value), log: w.log}
}

// FlatMapWriter sequences two writer computations, combining their logs.
func FlatMapWriter[W Monoid, A, B any](w Writer[A, W], f func(A) Writer[B, W]) Writer[B, W] {
	next := f(w.value)
	return Writer[B, W]{value: next.value, log: w.log + next.log}
}

// ApplyWriter applies a writer holding a function to a writer holding a
// value, combining logs with the value writer's log first.
func ApplyWriter[W Monoid, A, B any](ma Writer[A, W], mf Writer[func(A) B, W]) Writer[B, W] {
	return Writer[B, W]{value: mf.value(ma.value), log: ma.log + mf.log}
}

// Apply2Writer applies a writer holding a function to a writer holding a
// value, combining logs with the function writer's log first.
func Apply2Writer[W Monoid, A, B any](mf Writer[func(A) B, W], ma Writer[A, W]) Writer[B, W] {
	return Writer[B, W]{value: mf.value(ma.value), log: mf.log + ma.log}
}

// ListenWriter exposes the accumulated log alongside the value: the value
// becomes a Pair of the original value and the log, the log stays in
// place.
func ListenWriter[W Monoid, A any](w Writer[A, W]) Writer[Pair[A, W], W] {
	return Writer[Pair[A, W], W]{
		value: Pair[A, W]{Fst: w.value, Snd: w.log},
		log:   w.log,
	}
}

// PassWriter applies a log transform carried in the value pair to the log
// itself: Writer((a, f), w) becomes Writer(a, f(w)).
func PassWriter[W Monoid, A any](w Writer[Pair[A, func(W) W], W]) Writer[A, W] {
	return Writer[A, W]{value: w.value.Fst, log: w.value.Snd(w.log)}
}
