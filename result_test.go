// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mona_test

import (
	"errors"
	"testing"

	"code.hybscloud.com/mona"
)

func TestOkMap(t *testing.T) {
	got := mona.MapResult(mona.Ok(10), func(x int) int { return x * 2 })
	if got != mona.Ok(20) {
		t.Fatalf("got %v, want Ok(20)", got)
	}
}

func TestErrMapLeavesErrorUntouched(t *testing.T) {
	boom := errors.New("boom")
	got := mona.MapResult(mona.Err[int](boom), func(x int) int { return x * 2 })
	if e, ok := got.GetErr(); !ok || e != boom {
		t.Fatalf("got %v, want Err(boom) carrying the original error", got)
	}
}

func TestResultFlatMap(t *testing.T) {
	got := mona.FlatMapResult(mona.Ok(10), func(x int) mona.Result[int] {
		return mona.Ok(x + 1)
	})
	if got != mona.Ok(11) {
		t.Fatalf("got %v, want Ok(11)", got)
	}
	called := false
	short := mona.FlatMapResult(mona.Err[int](errors.New("e")), func(x int) mona.Result[int] {
		called = true
		return mona.Ok(x)
	})
	if called || short.IsOk() {
		t.Fatalf("Err must short-circuit, got %v", short)
	}
}

func TestResultExpectWraps(t *testing.T) {
	boom := errors.New("boom")
	got := mona.Err[int](boom).Expect("reading config")
	e, _ := got.GetErr()
	if !errors.Is(e, boom) {
		t.Fatal("Expect must wrap, not replace, the original error")
	}
	if e.Error() != "reading config: boom" {
		t.Fatalf("got %q, want %q", e.Error(), "reading config: boom")
	}
	ok := mona.Ok(1).Expect("reading config")
	if ok != mona.Ok(1) {
		t.Fatalf("got %v, want Ok(1) passthrough", ok)
	}
}

func TestResultInspect(t *testing.T) {
	var seen int
	got := mona.Ok(5).Inspect(func(x int) { seen = x })
	if seen != 5 {
		t.Fatalf("inspect saw %d, want 5", seen)
	}
	if got != mona.Ok(5) {
		t.Fatalf("got %v, want Ok(5) unchanged", got)
	}
	var seenErr error
	boom := errors.New("boom")
	mona.Err[int](boom).InspectErr(func(e error) { seenErr = e })
	if seenErr != boom {
		t.Fatalf("inspect saw %v, want boom", seenErr)
	}
	mona.Ok(5).InspectErr(func(e error) { t.Fatal("InspectErr must not run on Ok") })
}

func TestResultMapErr(t *testing.T) {
	boom := errors.New("boom")
	got := mona.Err[int](boom).MapErr(func(e error) error {
		return errors.New("wrapped")
	})
	if e, _ := got.GetErr(); e.Error() != "wrapped" {
		t.Fatalf("got %v, want Err(wrapped)", got)
	}
	ok := mona.Ok(1).MapErr(func(e error) error { return errors.New("x") })
	if ok != mona.Ok(1) {
		t.Fatalf("got %v, want Ok(1)", ok)
	}
}

func TestResultFlatMapErrRecovers(t *testing.T) {
	got := mona.Err[int](errors.New("e")).FlatMapErr(func(e error) mona.Result[int] {
		return mona.Ok(0)
	})
	if got != mona.Ok(0) {
		t.Fatalf("got %v, want Ok(0)", got)
	}
}

func TestResultUnwraps(t *testing.T) {
	if got := mona.Ok(3).Unwrap(); got != 3 {
		t.Fatalf("got %d, want 3", got)
	}
	if got := mona.Err[int](errors.New("e")).UnwrapOr(9); got != 9 {
		t.Fatalf("got %d, want 9", got)
	}
	got := mona.Err[int](errors.New("abc")).UnwrapOrElse(func(e error) int { return len(e.Error()) })
	if got != 3 {
		t.Fatalf("got %d, want 3", got)
	}
	def := errors.New("def")
	if e := mona.Ok(1).UnwrapErrOr(def); e != def {
		t.Fatalf("got %v, want def", e)
	}
}

func TestResultUnwrapErrPanicsWithError(t *testing.T) {
	boom := errors.New("boom")
	defer func() {
		if r := recover(); r != boom {
			t.Fatalf("recovered %v, want the boom error", r)
		}
	}()
	mona.Err[int](boom).Unwrap()
}

func TestResultMapDoesNotRecover(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("panic inside MapResult must propagate")
		}
	}()
	mona.MapResult(mona.Ok(1), func(x int) int { panic("boom") })
}

func TestSafeResult(t *testing.T) {
	ok := mona.SafeResult(func() (int, error) { return 7, nil })
	if ok != mona.Ok(7) {
		t.Fatalf("got %v, want Ok(7)", ok)
	}
	boom := errors.New("boom")
	failed := mona.SafeResult(func() (int, error) { return 0, boom })
	if e, _ := failed.GetErr(); !errors.Is(e, boom) {
		t.Fatalf("got %v, want Err(boom)", failed)
	}
	panicked := mona.SafeResult(func() (int, error) {
		var xs []int
		return xs[3], nil
	})
	if panicked.IsOk() {
		t.Fatalf("got %v, want Err from recovered panic", panicked)
	}
}

func TestMatchResult(t *testing.T) {
	render := func(r mona.Result[int]) string {
		return mona.MatchResult(r,
			func(e error) string { return "err:" + e.Error() },
			func(x int) string { return "ok" })
	}
	if got := render(mona.Ok(1)); got != "ok" {
		t.Fatalf("got %q, want %q", got, "ok")
	}
	if got := render(mona.Err[int](errors.New("e"))); got != "err:e" {
		t.Fatalf("got %q, want %q", got, "err:e")
	}
}

func TestResultApplyCurried(t *testing.T) {
	add := func(a, b int) int { return a + b }
	got := mona.Apply2Result(
		mona.Apply2Result(mona.Ok(mona.Curry2(add)), mona.Ok(40)),
		mona.Ok(2))
	if got != mona.Ok(42) {
		t.Fatalf("got %v, want Ok(42)", got)
	}
}

func TestResultString(t *testing.T) {
	if got := mona.Ok(1).String(); got != "Ok(1)" {
		t.Fatalf("got %q, want %q", got, "Ok(1)")
	}
	if got := mona.Err[int](errors.New("e")).String(); got != "Err(e)" {
		t.Fatalf("got %q, want %q", got, "Err(e)")
	}
}
