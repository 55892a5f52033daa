package fluid

import (
	"context"
	"testing"
	"time"

	"github.com/zoobzio/clockz"
)

func TestDebounce_AppliesPendingOnClose(t *testing.T) {
	ch := make(chan int, 3)
	ch <- 1
	ch <- 2
	ch <- 3
	close(ch)

	var received, applied []int
	debounce(context.Background(), ch, clockz.NewFakeClock(), time.Hour,
		func(v int) { received = append(received, v) },
		func(v int) { applied = append(applied, v) },
	)

	if len(received) != 3 {
		t.Errorf("expected 3 received, got %v", received)
	}
	if len(applied) != 1 || applied[0] != 3 {
		t.Errorf("expected only the latest value applied, got %v", applied)
	}
}

func TestDebounce_ZeroAppliesEveryValue(t *testing.T) {
	ch := make(chan int, 3)
	ch <- 1
	ch <- 2
	close(ch)

	var applied []int
	debounce(context.Background(), ch, clockz.RealClock, 0,
		func(int) {},
		func(v int) { applied = append(applied, v) },
	)

	if len(applied) != 2 {
		t.Errorf("expected 2 applies, got %v", applied)
	}
}

func TestDebounce_ContextCancelDropsPending(t *testing.T) {
	ch := make(chan int, 1)
	ch <- 1
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	var applied int
	go func() {
		defer close(done)
		debounce(ctx, ch, clockz.NewFakeClock(), time.Hour,
			func(int) {},
			func(int) { applied++ },
		)
	}()

	time.Sleep(10 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for debounce to return")
	}
	if applied != 0 {
		t.Errorf("expected no applies, got %d", applied)
	}
}
