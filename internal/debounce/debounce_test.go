package debounce

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestNextInvalidatesEarlierTokens(t *testing.T) {
	d := New(DefaultDelay)
	first := d.Next()
	second := d.Next()
	if d.Current(first) {
		t.Fatalf("expected first token to be stale")
	}
	if !d.Current(second) {
		t.Fatalf("expected second token to be current")
	}
}

func TestCallCollapsesBurst(t *testing.T) {
	d := New(20 * time.Millisecond)
	var calls atomic.Int32
	var last atomic.Int32
	for i := 1; i <= 5; i++ {
		i := i
		d.Call(func() {
			calls.Add(1)
			last.Store(int32(i))
		})
	}
	deadline := time.Now().Add(2 * time.Second)
	for calls.Load() == 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	time.Sleep(60 * time.Millisecond)
	if got := calls.Load(); got != 1 {
		t.Fatalf("expected 1 call, got %d", got)
	}
	if got := last.Load(); got != 5 {
		t.Fatalf("expected last trigger to win, got %d", got)
	}
}

func TestCallWithoutDelayRunsImmediately(t *testing.T) {
	d := New(0)
	ran := false
	d.Call(func() { ran = true })
	if !ran {
		t.Fatalf("expected synchronous call")
	}
}

func TestStopCancelsPending(t *testing.T) {
	d := New(20 * time.Millisecond)
	var calls atomic.Int32
	d.Call(func() { calls.Add(1) })
	d.Stop()
	time.Sleep(60 * time.Millisecond)
	if got := calls.Load(); got != 0 {
		t.Fatalf("expected no calls after Stop, got %d", got)
	}
}
