package core

import (
	"errors"
	"testing"
	"time"
)

func TestIntervalTruncatesToMilliseconds(t *testing.T) {
	cases := []struct {
		tps  int
		want time.Duration
	}{
		{1, time.Second},
		{3, 333 * time.Millisecond},
		{7, 142 * time.Millisecond},
		{10, 100 * time.Millisecond},
		{60, 16 * time.Millisecond},
		{1000, time.Millisecond},
		{1001, 0},
	}
	for _, tc := range cases {
		got, err := Interval(tc.tps)
		if err != nil {
			t.Fatalf("Interval(%d): %v", tc.tps, err)
		}
		if got != tc.want {
			t.Fatalf("Interval(%d) = %v, want %v", tc.tps, got, tc.want)
		}
	}
}

func TestIntervalRejectsNonPositiveRate(t *testing.T) {
	for _, tps := range []int{0, -5} {
		if _, err := Interval(tps); !errors.Is(err, ErrInvalidRate) {
			t.Fatalf("Interval(%d) err = %v, want ErrInvalidRate", tps, err)
		}
	}
}

func TestFixedStepAccumulates(t *testing.T) {
	clock := time.Unix(0, 0)
	fs := NewFixedStep(10)
	fs.now = func() time.Time { return clock }

	if !fs.ShouldStep() {
		t.Fatal("first call should step with a primed accumulator")
	}
	clock = clock.Add(40 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("stepped after 40ms at 10 TPS")
	}
	clock = clock.Add(60 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("did not step after a full 100ms")
	}

	fs.SetTPS(0)
	if fs.Step() != time.Second/60 {
		t.Fatalf("SetTPS(0) step = %v, want fallback of 60 TPS", fs.Step())
	}
}
