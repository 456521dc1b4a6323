// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mona_test

import (
	"errors"
	"testing"

	"code.hybscloud.com/mona"
)

func TestJustBind(t *testing.T) {
	got := mona.FlatMapMaybe(mona.Just(10), func(x int) mona.Maybe[int] {
		return mona.Just(x + 1)
	})
	if got != mona.Just(11) {
		t.Fatalf("got %v, want Just(11)", got)
	}
}

func TestNothingBindShortCircuits(t *testing.T) {
	called := false
	got := mona.FlatMapMaybe(mona.Nothing[int](), func(x int) mona.Maybe[int] {
		called = true
		return mona.Just(x)
	})
	if called {
		t.Fatal("function must not run on Nothing")
	}
	if got.IsJust() {
		t.Fatalf("got %v, want Nothing", got)
	}
}

func TestMaybeMap(t *testing.T) {
	got := mona.MapMaybe(mona.Just(21), func(x int) int { return x * 2 })
	if got != mona.Just(42) {
		t.Fatalf("got %v, want Just(42)", got)
	}
	nothing := mona.MapMaybe(mona.Nothing[int](), func(x int) int { return x * 2 })
	if nothing.IsJust() {
		t.Fatalf("got %v, want Nothing", nothing)
	}
}

func TestMaybeUnwrapOr(t *testing.T) {
	if got := mona.Nothing[int]().UnwrapOr(20); got != 20 {
		t.Fatalf("got %d, want 20", got)
	}
	if got := mona.Just(1).UnwrapOr(20); got != 1 {
		t.Fatalf("got %d, want 1", got)
	}
}

func TestMaybeUnwrapNothingPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Unwrap on Nothing must panic")
		}
	}()
	mona.Nothing[int]().Unwrap()
}

func TestMaybeUnwrapOrElse(t *testing.T) {
	got := mona.Nothing[int]().UnwrapOrElse(func() int { return 7 })
	if got != 7 {
		t.Fatalf("got %d, want 7", got)
	}
}

func TestMaybeFilter(t *testing.T) {
	even := func(x int) bool { return x%2 == 0 }
	if got := mona.Just(4).Filter(even); got != mona.Just(4) {
		t.Fatalf("got %v, want Just(4)", got)
	}
	if got := mona.Just(3).Filter(even); got.IsJust() {
		t.Fatalf("got %v, want Nothing", got)
	}
	if got := mona.Nothing[int]().Filter(even); got.IsJust() {
		t.Fatalf("got %v, want Nothing", got)
	}
}

func TestMaybeOrElse(t *testing.T) {
	if got := mona.Just(1).OrElse(mona.Just(2)); got != mona.Just(1) {
		t.Fatalf("got %v, want Just(1)", got)
	}
	if got := mona.Nothing[int]().OrElse(mona.Just(2)); got != mona.Just(2) {
		t.Fatalf("got %v, want Just(2)", got)
	}
}

func TestMaybeFromPtr(t *testing.T) {
	v := 3
	if got := mona.FromPtr(&v); got != mona.Just(3) {
		t.Fatalf("got %v, want Just(3)", got)
	}
	if got := mona.FromPtr[int](nil); got.IsJust() {
		t.Fatalf("got %v, want Nothing", got)
	}
}

func TestMaybeFromOk(t *testing.T) {
	m := map[string]int{"a": 1}
	v, ok := m["a"]
	if got := mona.FromOk(v, ok); got != mona.Just(1) {
		t.Fatalf("got %v, want Just(1)", got)
	}
	v, ok = m["b"]
	if got := mona.FromOk(v, ok); got.IsJust() {
		t.Fatalf("got %v, want Nothing", got)
	}
}

func TestSafeMaybe(t *testing.T) {
	ok := mona.SafeMaybe(func() (int, error) { return 5, nil })
	if ok != mona.Just(5) {
		t.Fatalf("got %v, want Just(5)", ok)
	}
	failed := mona.SafeMaybe(func() (int, error) { return 0, errors.New("boom") })
	if failed.IsJust() {
		t.Fatalf("got %v, want Nothing", failed)
	}
	panicked := mona.SafeMaybe(func() (int, error) { panic("boom") })
	if panicked.IsJust() {
		t.Fatalf("got %v, want Nothing", panicked)
	}
}

func TestMatchMaybe(t *testing.T) {
	got := mona.MatchMaybe(mona.Just(2),
		func() string { return "nothing" },
		func(x int) string { return "just" })
	if got != "just" {
		t.Fatalf("got %q, want %q", got, "just")
	}
	got = mona.MatchMaybe(mona.Nothing[int](),
		func() string { return "nothing" },
		func(x int) string { return "just" })
	if got != "nothing" {
		t.Fatalf("got %q, want %q", got, "nothing")
	}
}

func TestMaybeFn(t *testing.T) {
	double := func(x int) int { return x * 2 }
	if got := mona.MaybeFn(mona.Just(5), double, 0); got != 10 {
		t.Fatalf("got %d, want 10", got)
	}
	if got := mona.MaybeFn(mona.Nothing[int](), double, 9); got != 9 {
		t.Fatalf("got %d, want 9", got)
	}
}

func TestMaybeApplyCurried(t *testing.T) {
	add := func(a, b int) int { return a + b }
	got := mona.Apply2Maybe(
		mona.Apply2Maybe(mona.Just(mona.Curry2(add)), mona.Just(1)),
		mona.Just(2))
	if got != mona.Just(3) {
		t.Fatalf("got %v, want Just(3)", got)
	}
	short := mona.Apply2Maybe(
		mona.Apply2Maybe(mona.Just(mona.Curry2(add)), mona.Nothing[int]()),
		mona.Just(2))
	if short.IsJust() {
		t.Fatalf("got %v, want Nothing", short)
	}
}

func TestMaybeString(t *testing.T) {
	if got := mona.Just(10).String(); got != "Just(10)" {
		t.Fatalf("got %q, want %q", got, "Just(10)")
	}
	if got := mona.Nothing[int]().String(); got != "Nothing" {
		t.Fatalf("got %q, want %q", got, "Nothing")
	}
}
