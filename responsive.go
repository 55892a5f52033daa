package fluid

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/zoobzio/capitan"
	"github.com/zoobzio/clockz"
)

// Responsive is a live ResponsiveValue. It subscribes to a Viewport, computes
// the value for the first width it receives and recomputes on every resize
// until it is stopped.
type Responsive[T any] struct {
	viewport    Viewport
	breakpoints Breakpoints
	values      *Values[T]
	debounce    time.Duration
	syncMode    bool
	clock       clockz.Clock
	metrics     MetricsProvider
	onChange    func(prev, curr T)
	onStop      func(State)

	state   atomic.Int32
	current atomic.Pointer[T]
	width   atomic.Int64
	key     atomic.Pointer[string]

	mu       sync.Mutex
	started  bool
	stopped  bool
	cancel   context.CancelFunc
	stopOnce sync.Once
	loopDone chan struct{}

	// For sync mode: channel to receive widths
	widths <-chan int
}

// NewResponsive creates a Responsive over a snapshot of values. Later changes
// to values do not affect it.
//
// Example:
//
//	columns := fluid.NewResponsive(viewport, fluid.DefaultBreakpoints(),
//	    fluid.NewValues[int]().Set("sm", 1).Set("md", 2).Set("lg", 3),
//	)
//	if err := columns.Start(ctx); err != nil {
//	    return err
//	}
//	defer columns.Stop()
func NewResponsive[T any](viewport Viewport, breakpoints Breakpoints, values *Values[T]) *Responsive[T] {
	r := &Responsive[T]{
		viewport:    viewport,
		breakpoints: breakpoints,
		values:      values.Clone(),
		debounce:    DefaultDebounce,
		clock:       clockz.RealClock,
	}
	r.state.Store(int32(StateLoading))
	return r
}

// -----------------------------------------------------------------------------
// Chainable Instance Configuration
// -----------------------------------------------------------------------------

// Debounce sets the debounce duration for resize processing.
// Widths arriving within this duration are coalesced into one recomputation.
// Zero recomputes on every width. Default: 100ms. Must be called before Start().
func (r *Responsive[T]) Debounce(d time.Duration) *Responsive[T] {
	r.debounce = d
	return r
}

// SyncMode enables synchronous processing for testing.
// In sync mode no goroutine is started; Process() handles one width at a
// time. Must be called before Start().
func (r *Responsive[T]) SyncMode() *Responsive[T] {
	r.syncMode = true
	return r
}

// Clock sets a custom clock for time operations.
// Use this with clockz.FakeClock for deterministic debounce testing.
// Must be called before Start().
func (r *Responsive[T]) Clock(clock clockz.Clock) *Responsive[T] {
	r.clock = clock
	return r
}

// Metrics sets a metrics provider. Must be called before Start().
func (r *Responsive[T]) Metrics(provider MetricsProvider) *Responsive[T] {
	r.metrics = provider
	return r
}

// OnChange sets a callback invoked whenever the selected entry changes,
// including the initial selection, where prev is the zero value. The
// callback must not call Stop(). Must be called before Start().
func (r *Responsive[T]) OnChange(fn func(prev, curr T)) *Responsive[T] {
	r.onChange = fn
	return r
}

// OnStop sets a callback invoked once the subscription has ended. The
// callback must not call Stop(). Must be called before Start().
func (r *Responsive[T]) OnStop(fn func(State)) *Responsive[T] {
	r.onStop = fn
	return r
}

// -----------------------------------------------------------------------------
// Accessors
// -----------------------------------------------------------------------------

// State returns the current state.
func (r *Responsive[T]) State() State {
	return State(r.state.Load())
}

// Current returns the value for the most recent width and true, or the zero
// value and false before the first width or when values is empty.
func (r *Responsive[T]) Current() (T, bool) {
	ptr := r.current.Load()
	if ptr == nil {
		var zero T
		return zero, false
	}
	return *ptr, true
}

// Width returns the most recent viewport width.
func (r *Responsive[T]) Width() int {
	return int(r.width.Load())
}

// Breakpoint returns the entry the current value was selected from: a
// breakpoint name, DefaultKey, or the first entry name.
func (r *Responsive[T]) Breakpoint() string {
	ptr := r.key.Load()
	if ptr == nil {
		return ""
	}
	return *ptr
}

// -----------------------------------------------------------------------------
// Lifecycle
// -----------------------------------------------------------------------------

// Start subscribes to the viewport and blocks until the initial width has
// been processed. It then keeps recomputing asynchronously until Stop() is
// called or ctx is canceled, either of which unsubscribes from the viewport.
//
// Start can only be called once, and not after Stop. Subsequent calls return
// an error.
func (r *Responsive[T]) Start(ctx context.Context) error {
	r.mu.Lock()
	switch {
	case r.started:
		r.mu.Unlock()
		return fmt.Errorf("responsive already started")
	case r.stopped:
		r.mu.Unlock()
		return fmt.Errorf("responsive already stopped")
	}
	r.started = true
	ctx, r.cancel = context.WithCancel(ctx)
	r.mu.Unlock()

	capitan.Emit(ctx, ResponsiveStarted,
		KeyDebounce.Field(r.debounce),
	)

	widths, err := r.viewport.Watch(ctx)
	if err != nil {
		r.finish(ctx)
		return fmt.Errorf("failed to subscribe to viewport: %w", err)
	}

	select {
	case <-ctx.Done():
		r.finish(ctx)
		return ctx.Err()
	case w, ok := <-widths:
		if !ok {
			r.finish(ctx)
			return fmt.Errorf("viewport closed before emitting initial width")
		}
		r.received(ctx, w)
		r.apply(ctx, w)
	}

	if r.syncMode {
		r.mu.Lock()
		r.widths = widths
		r.mu.Unlock()
		return nil
	}

	done := make(chan struct{})
	r.mu.Lock()
	if r.stopped {
		// Stop ran while the initial width was being read.
		r.mu.Unlock()
		r.finish(ctx)
		return nil
	}
	r.loopDone = done
	r.mu.Unlock()

	go func() {
		defer close(done)
		defer r.finish(ctx)
		debounce(ctx, widths, r.clock, r.debounce,
			func(w int) { r.received(ctx, w) },
			func(w int) { r.apply(ctx, w) },
		)
	}()

	return nil
}

// Process reads and applies the next width from the viewport.
// This is only available in sync mode and is used for deterministic testing.
// Returns false if no width is available, the channel is closed, or the
// subscription has been stopped.
func (r *Responsive[T]) Process(ctx context.Context) bool {
	r.mu.Lock()
	widths, stopped := r.widths, r.stopped
	r.mu.Unlock()
	if !r.syncMode || stopped || widths == nil {
		return false
	}

	select {
	case w, ok := <-widths:
		if !ok {
			r.finish(ctx)
			return false
		}
		r.received(ctx, w)
		r.apply(ctx, w)
		return true
	default:
		return false
	}
}

// Stop unsubscribes from the viewport and waits for the recompute loop to
// exit, so no OnChange call happens after it returns. The last value stays
// readable. It is safe to call Stop more than once, and before Start. Stop
// must not be called from an OnChange or OnStop callback.
func (r *Responsive[T]) Stop() {
	r.mu.Lock()
	r.stopped = true
	cancel := r.cancel
	done := r.loopDone
	r.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	// The async loop reports its own exit; sync mode has no loop.
	if done != nil {
		<-done
		return
	}
	r.finish(context.Background())
}

func (r *Responsive[T]) received(ctx context.Context, width int) {
	capitan.Emit(ctx, ResponsiveWidthReceived,
		KeyWidth.Field(width),
	)
	if r.metrics != nil {
		r.metrics.OnWidthReceived(width)
	}
}

// apply recomputes the value for width.
func (r *Responsive[T]) apply(ctx context.Context, width int) {
	r.mu.Lock()
	stopped := r.stopped
	r.mu.Unlock()
	if stopped {
		return
	}
	r.width.Store(int64(width))

	key, ok := selectKey(r.breakpoints, r.values, width)
	if !ok {
		r.transition(ctx, StateEmpty)
		return
	}

	prevKey := r.Breakpoint()
	if prevKey == key && r.current.Load() != nil {
		return
	}

	prev, _ := r.Current()
	curr, _ := r.values.Get(key)
	r.current.Store(&curr)
	r.key.Store(&key)
	r.transition(ctx, StateHealthy)

	capitan.Emit(ctx, ResponsiveValueChanged,
		KeyOldBreakpoint.Field(prevKey),
		KeyBreakpoint.Field(key),
		KeyWidth.Field(width),
	)
	if r.metrics != nil {
		r.metrics.OnBreakpointChange(prevKey, key)
	}
	if r.onChange != nil {
		r.onChange(prev, curr)
	}
}

// transition updates the state and emits a state change event if changed.
func (r *Responsive[T]) transition(ctx context.Context, newState State) {
	oldState := State(r.state.Swap(int32(newState)))
	if oldState == newState {
		return
	}
	capitan.Emit(ctx, ResponsiveStateChanged,
		KeyOldState.Field(oldState.String()),
		KeyNewState.Field(newState.String()),
	)
	if r.metrics != nil {
		r.metrics.OnStateChange(oldState, newState)
	}
}

// finish marks the subscription stopped exactly once.
func (r *Responsive[T]) finish(ctx context.Context) {
	r.stopOnce.Do(func() {
		r.mu.Lock()
		r.stopped = true
		r.mu.Unlock()

		r.transition(ctx, StateStopped)
		capitan.Emit(ctx, ResponsiveStopped,
			KeyWidth.Field(r.Width()),
		)
		if r.onStop != nil {
			r.onStop(r.State())
		}
	})
}
