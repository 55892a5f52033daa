// Package testing provides test utilities and helpers for fluid reveals,
// responsive values and themes.
package testing

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/zoobzio/fluid"
)

// FakeObserver is an in-memory fluid.Observer. Tests deliver intersection
// measurements with Fire.
type FakeObserver struct {
	mu          sync.Mutex
	callback    fluid.IntersectionCallback
	threshold   float64
	targets     []fluid.Target
	observes    int
	unobserves  int
	disconnects int
}

// Observe records target.
func (o *FakeObserver) Observe(target fluid.Target) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.targets = append(o.targets, target)
	o.observes++
}

// Unobserve records an unobserve call.
func (o *FakeObserver) Unobserve(_ fluid.Target) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.unobserves++
}

// Disconnect records a disconnect call.
func (o *FakeObserver) Disconnect() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.disconnects++
}

// Fire reports ratio for every target observed so far.
func (o *FakeObserver) Fire(ratio float64) {
	o.mu.Lock()
	cb := o.callback
	entries := make([]fluid.Entry, 0, len(o.targets))
	for _, target := range o.targets {
		entries = append(entries, fluid.Entry{Target: target, Ratio: ratio})
	}
	o.mu.Unlock()
	if cb != nil {
		cb(entries)
	}
}

// Threshold returns the threshold the observer was created with.
func (o *FakeObserver) Threshold() float64 {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.threshold
}

// Observes returns the number of Observe calls.
func (o *FakeObserver) Observes() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.observes
}

// Unobserves returns the number of Unobserve calls.
func (o *FakeObserver) Unobserves() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.unobserves
}

// Disconnects returns the number of Disconnect calls.
func (o *FakeObserver) Disconnects() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.disconnects
}

// FakeObserverFactory hands out a FakeObserver per Reveal.
type FakeObserverFactory struct {
	mu        sync.Mutex
	observers []*FakeObserver
}

// NewObserver implements fluid.ObserverFactory.
func (f *FakeObserverFactory) NewObserver(callback fluid.IntersectionCallback, threshold float64) (fluid.Observer, error) {
	o := &FakeObserver{callback: callback, threshold: threshold}
	f.mu.Lock()
	f.observers = append(f.observers, o)
	f.mu.Unlock()
	return o, nil
}

// Last returns the most recently created observer, or nil.
func (f *FakeObserverFactory) Last() *FakeObserver {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.observers) == 0 {
		return nil
	}
	return f.observers[len(f.observers)-1]
}

// WaitFor polls a condition until it returns true or timeout is reached.
// Returns true if the condition was met, false if timeout occurred.
func WaitFor(t *testing.T, timeout time.Duration, condition func() bool) bool {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if condition() {
			return true
		}
		time.Sleep(10 * time.Millisecond)
	}
	return false
}

// RequireVisible fails the test immediately if r has not been revealed.
func RequireVisible(t *testing.T, r *fluid.Reveal) {
	t.Helper()
	if !r.Visible() {
		t.Fatalf("expected reveal to be visible, got %s", r.State())
	}
}

// RequirePending fails the test immediately if r has been revealed.
func RequirePending(t *testing.T, r *fluid.Reveal) {
	t.Helper()
	if r.Visible() {
		t.Fatal("expected reveal to be pending, got visible")
	}
}

// RequireThemeState fails the test immediately if the theme is not in the
// expected state.
func RequireThemeState(t *testing.T, theme *fluid.Theme, expected fluid.State) {
	t.Helper()
	if got := theme.State(); got != expected {
		t.Fatalf("expected state %s, got %s", expected, got)
	}
}

// WaitForThemeState waits until the theme reaches the expected state or
// timeout occurs.
func WaitForThemeState(t *testing.T, theme *fluid.Theme, expected fluid.State, timeout time.Duration) bool {
	t.Helper()
	return WaitFor(t, timeout, func() bool {
		return theme.State() == expected
	})
}

// RequireValue fails the test if Current() returns false or the value does
// not equal want.
func RequireValue[T comparable](t *testing.T, r *fluid.Responsive[T], want T) {
	t.Helper()
	got, ok := r.Current()
	if !ok {
		t.Fatal("expected a responsive value, got none")
	}
	if got != want {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

// NewTestResponsive creates a sync-mode Responsive over the default
// breakpoints, already started at initialWidth. Send further widths on the
// returned channel and call Process to apply them.
func NewTestResponsive[T any](t *testing.T, values *fluid.Values[T], initialWidth int) (*fluid.Responsive[T], chan<- int) {
	t.Helper()
	ch := make(chan int, 10)
	ch <- initialWidth
	r := fluid.NewResponsive(fluid.NewSyncChannelViewport(ch), fluid.DefaultBreakpoints(), values).SyncMode()
	if err := r.Start(context.Background()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	t.Cleanup(r.Stop)
	return r, ch
}

// NewTestTheme creates a sync-mode Theme fed by the returned channel. The
// theme is not started.
func NewTestTheme(t *testing.T, apply func(context.Context, fluid.Rendered, fluid.Rendered) error) (*fluid.Theme, chan<- []byte) {
	t.Helper()
	ch := make(chan []byte, 10)
	theme := fluid.NewTheme(fluid.NewSyncChannelWatcher(ch), apply).SyncMode()
	return theme, ch
}
