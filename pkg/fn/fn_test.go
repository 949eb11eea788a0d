package fn

import (
	"context"
	"errors"
	"testing"
)

func TestResult_OkErr(t *testing.T) {
	ok := Ok(42)
	if !ok.IsOk() || ok.IsErr() {
		t.Error("Ok should be ok")
	}
	if v, err := ok.Unwrap(); v != 42 || err != nil {
		t.Errorf("Unwrap: got %v, %v", v, err)
	}

	e := Err[int](errors.New("boom"))
	if e.IsOk() || !e.IsErr() {
		t.Error("Err should be err")
	}
	if got := e.UnwrapOr(7); got != 7 {
		t.Errorf("UnwrapOr: got %d", got)
	}
}

func TestFromPair(t *testing.T) {
	if r := FromPair(1, nil); r.IsErr() {
		t.Error("nil error should be ok")
	}
	if r := FromPair(0, errors.New("x")); r.IsOk() {
		t.Error("non-nil error should be err")
	}
}

func TestCollect(t *testing.T) {
	all := Collect([]Result[int]{Ok(1), Ok(2)})
	vals, err := all.Unwrap()
	if err != nil || len(vals) != 2 {
		t.Fatalf("got %v, %v", vals, err)
	}

	bad := Collect([]Result[int]{Ok(1), Err[int](errors.New("boom")), Ok(3)})
	if _, err := bad.Unwrap(); err == nil {
		t.Fatal("first error should win")
	}
}

func TestThen_ShortCircuits(t *testing.T) {
	boom := errors.New("boom")
	first := func(_ context.Context, s string) Result[int] { return Err[int](boom) }
	secondRan := false
	second := func(_ context.Context, n int) Result[string] {
		secondRan = true
		return Ok("never")
	}

	_, err := Then(first, second)(context.Background(), "in").Unwrap()
	if !errors.Is(err, boom) {
		t.Fatalf("got %v", err)
	}
	if secondRan {
		t.Error("second stage must not run after a failure")
	}
}

func TestThen_PassesValue(t *testing.T) {
	double := func(_ context.Context, n int) Result[int] { return Ok(n * 2) }
	str := MapStage(func(n int) int { return n + 1 })

	v, err := Then(double, str)(context.Background(), 10).Unwrap()
	if err != nil || v != 21 {
		t.Fatalf("got %v, %v", v, err)
	}
}

func TestPipeline(t *testing.T) {
	inc := MapStage(func(n int) int { return n + 1 })
	v, err := Pipeline(inc, inc, inc)(context.Background(), 0).Unwrap()
	if err != nil || v != 3 {
		t.Fatalf("got %v, %v", v, err)
	}
}

func TestTapStage(t *testing.T) {
	var seen int
	tap := TapStage(func(_ context.Context, n int) { seen = n })
	v, err := tap(context.Background(), 9).Unwrap()
	if err != nil || v != 9 || seen != 9 {
		t.Fatalf("got %v, %v, seen=%d", v, err, seen)
	}
}

func TestTracedStage_PropagatesResult(t *testing.T) {
	ok := TracedStage("test.ok", MapStage(func(n int) int { return n * 3 }))
	if v, _ := ok(context.Background(), 2).Unwrap(); v != 6 {
		t.Errorf("got %d", v)
	}

	boom := errors.New("boom")
	bad := TracedStage("test.bad", func(_ context.Context, _ int) Result[int] { return Err[int](boom) })
	if _, err := bad(context.Background(), 1).Unwrap(); !errors.Is(err, boom) {
		t.Errorf("got %v", err)
	}
}

func TestMap(t *testing.T) {
	got := Map([]int{1, 2, 3}, func(n int) int { return n * n })
	if len(got) != 3 || got[2] != 9 {
		t.Errorf("got %v", got)
	}
	if got := Map([]int(nil), func(n int) int { return n }); len(got) != 0 {
		t.Errorf("nil input: got %v", got)
	}
}

func TestFilter(t *testing.T) {
	got := Filter([]int{1, 2, 3, 4}, func(n int) bool { return n%2 == 0 })
	if len(got) != 2 || got[0] != 2 || got[1] != 4 {
		t.Errorf("got %v", got)
	}
}

func TestChunk(t *testing.T) {
	tests := []struct {
		name string
		in   []int
		n    int
		want int // number of chunks
	}{
		{"even split", []int{1, 2, 3, 4}, 2, 2},
		{"remainder", []int{1, 2, 3, 4, 5}, 2, 3},
		{"oversized chunk", []int{1}, 10, 1},
		{"empty input", nil, 2, 0},
		{"invalid size", []int{1}, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Chunk(tt.in, tt.n); len(got) != tt.want {
				t.Errorf("got %d chunks, want %d", len(got), tt.want)
			}
		})
	}
}

func TestAll(t *testing.T) {
	pos := func(n int) bool { return n > 0 }
	if !All([]int{1, 2}, pos) {
		t.Error("all positive should be true")
	}
	if All([]int{1, -2}, pos) {
		t.Error("mixed should be false")
	}
	if !All([]int(nil), pos) {
		t.Error("vacuous truth for empty input")
	}
}
