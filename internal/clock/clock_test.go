package clock

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestTimerSleepReturnsAfterDuration(t *testing.T) {
	start := time.Now()
	if err := (Timer{}).Sleep(context.Background(), 2*time.Millisecond); err != nil {
		t.Fatalf("Sleep: %v", err)
	}
	if elapsed := time.Since(start); elapsed < 2*time.Millisecond {
		t.Fatalf("Sleep returned after %v, want >= 2ms", elapsed)
	}
}

func TestTimerSleepHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := (Timer{}).Sleep(ctx, time.Hour); !errors.Is(err, context.Canceled) {
		t.Fatalf("Sleep err = %v, want context.Canceled", err)
	}
	if err := (Timer{}).Sleep(ctx, 0); !errors.Is(err, context.Canceled) {
		t.Fatalf("zero Sleep err = %v, want context.Canceled", err)
	}
}

func TestFuncAdapter(t *testing.T) {
	var got time.Duration
	s := Func(func(_ context.Context, d time.Duration) error {
		got = d
		return nil
	})
	if err := s.Sleep(context.Background(), 40*time.Microsecond); err != nil {
		t.Fatalf("Sleep: %v", err)
	}
	if got != 40*time.Microsecond {
		t.Fatalf("recorded %v, want 40µs", got)
	}
}
