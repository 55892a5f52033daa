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

// Rendered is a validated token document together with its stylesheet.
type Rendered struct {
	Config Config
	CSS    string
}

// Theme watches a token document, decodes and validates every revision,
// renders it with Stylesheet and hands it to application code. A revision
// that fails at any step is dropped and the previous one stays in effect.
type Theme struct {
	watcher  Watcher
	apply    func(ctx context.Context, prev, curr Rendered) error
	debounce time.Duration
	syncMode bool
	clock    clockz.Clock
	codec    Codec
	metrics  MetricsProvider
	onStop   func(State)

	state     atomic.Int32
	current   atomic.Pointer[Rendered]
	lastError atomic.Pointer[error]
	history   *ring[error]

	mu      sync.Mutex
	started bool

	// For sync mode: channel to receive changes
	changes <-chan []byte
}

// NewTheme creates a Theme over watcher. apply receives the previous and the
// new rendering; returning an error rejects the new one. apply may be nil.
//
// Example:
//
//	theme := fluid.NewTheme(fluid.NewFileWatcher("tokens.yaml"),
//	    func(ctx context.Context, _, curr fluid.Rendered) error {
//	        return os.WriteFile("public/tokens.css", []byte(curr.CSS), 0o644)
//	    },
//	).Codec(fluid.YAMLCodec{})
func NewTheme(watcher Watcher, apply func(ctx context.Context, prev, curr Rendered) error) *Theme {
	t := &Theme{
		watcher:  watcher,
		apply:    apply,
		debounce: DefaultDebounce,
		clock:    clockz.RealClock,
		codec:    AutoCodec{},
	}
	t.state.Store(int32(StateLoading))
	return t
}

// -----------------------------------------------------------------------------
// Chainable Instance Configuration
// -----------------------------------------------------------------------------

// Debounce sets the debounce duration for change processing.
// Default: 100ms. Must be called before Start().
func (t *Theme) Debounce(d time.Duration) *Theme {
	t.debounce = d
	return t
}

// SyncMode enables synchronous processing for testing.
// Must be called before Start().
func (t *Theme) SyncMode() *Theme {
	t.syncMode = true
	return t
}

// Clock sets a custom clock for time operations.
// Must be called before Start().
func (t *Theme) Clock(clock clockz.Clock) *Theme {
	t.clock = clock
	return t
}

// Codec sets the codec for token documents.
// Default: AutoCodec. Must be called before Start().
func (t *Theme) Codec(codec Codec) *Theme {
	t.codec = codec
	return t
}

// Metrics sets a metrics provider. Must be called before Start().
func (t *Theme) Metrics(provider MetricsProvider) *Theme {
	t.metrics = provider
	return t
}

// OnStop sets a callback invoked when the theme stops watching.
// Must be called before Start().
func (t *Theme) OnStop(fn func(State)) *Theme {
	t.onStop = fn
	return t
}

// ErrorHistorySize sets the number of recent errors to retain.
// Must be called before Start().
func (t *Theme) ErrorHistorySize(n int) *Theme {
	t.history = newRing[error](n)
	return t
}

// -----------------------------------------------------------------------------
// Accessors
// -----------------------------------------------------------------------------

// State returns the current state of the Theme.
func (t *Theme) State() State {
	return State(t.state.Load())
}

// Current returns the rendering in effect and true, or false if no revision
// has been applied yet.
func (t *Theme) Current() (Rendered, bool) {
	ptr := t.current.Load()
	if ptr == nil {
		return Rendered{}, false
	}
	return *ptr, true
}

// LastError returns the error of the last revision, or nil if it succeeded.
func (t *Theme) LastError() error {
	ptr := t.lastError.Load()
	if ptr == nil {
		return nil
	}
	return *ptr
}

// ErrorHistory returns recent errors, oldest first. It is nil unless
// ErrorHistorySize was set.
func (t *Theme) ErrorHistory() []error {
	return t.history.all()
}

// -----------------------------------------------------------------------------
// Lifecycle
// -----------------------------------------------------------------------------

// Start begins watching. It blocks until the first revision is processed,
// then continues asynchronously until ctx is canceled. If the first revision
// fails, Start returns its error but keeps watching for a valid one.
//
// Start can only be called once. Subsequent calls return an error.
func (t *Theme) Start(ctx context.Context) error {
	t.mu.Lock()
	if t.started {
		t.mu.Unlock()
		return fmt.Errorf("theme already started")
	}
	t.started = true
	t.mu.Unlock()

	capitan.Emit(ctx, ThemeStarted,
		KeyDebounce.Field(t.debounce),
		KeyCodec.Field(t.codec.ContentType()),
	)

	changes, err := t.watcher.Watch(ctx)
	if err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}

	var initialErr error
	select {
	case <-ctx.Done():
		return ctx.Err()
	case raw, ok := <-changes:
		if !ok {
			return fmt.Errorf("watcher closed before emitting initial tokens")
		}
		capitan.Emit(ctx, ThemeChangeReceived)
		initialErr = t.process(ctx, raw)
	}

	if t.syncMode {
		t.changes = changes
		return initialErr
	}

	go func() {
		defer t.stopped(ctx)
		debounce(ctx, changes, t.clock, t.debounce,
			func([]byte) { capitan.Emit(ctx, ThemeChangeReceived) },
			func(raw []byte) { _ = t.process(ctx, raw) }, //nolint:errcheck // Errors stored via fail
		)
	}()

	return initialErr
}

// Process reads and processes the next revision from the watcher.
// This is only available in sync mode and is used for deterministic testing.
// Returns false if no revision is available or the channel is closed.
func (t *Theme) Process(ctx context.Context) bool {
	if !t.syncMode {
		return false
	}

	select {
	case raw, ok := <-t.changes:
		if !ok {
			return false
		}
		capitan.Emit(ctx, ThemeChangeReceived)
		_ = t.process(ctx, raw) //nolint:errcheck // Errors stored via fail
		return true
	default:
		return false
	}
}

// process decodes, validates, renders and applies one revision.
func (t *Theme) process(ctx context.Context, raw []byte) error {
	begin := t.clock.Now()
	oldState := t.State()

	cfg, err := DecodeConfig(raw, t.codec)
	if err != nil {
		return t.fail(ctx, oldState, begin, "decode", err)
	}
	if err := cfg.Validate(); err != nil {
		return t.fail(ctx, oldState, begin, "validate", err)
	}
	css, err := Stylesheet(cfg)
	if err != nil {
		return t.fail(ctx, oldState, begin, "render", err)
	}

	next := Rendered{Config: cfg, CSS: css}
	if t.apply != nil {
		prev, _ := t.Current()
		if err := t.apply(ctx, prev, next); err != nil {
			return t.fail(ctx, oldState, begin, "apply", err)
		}
	}

	t.current.Store(&next)
	t.lastError.Store(nil)
	t.transitionState(ctx, oldState, StateHealthy)
	capitan.Emit(ctx, ThemeApplied)
	if t.metrics != nil {
		t.metrics.OnThemeApplied(t.clock.Since(begin))
	}
	return nil
}

// fail records a failed revision.
func (t *Theme) fail(ctx context.Context, oldState State, begin time.Time, stage string, err error) error {
	e := err
	t.lastError.Store(&e)
	t.history.push(err)
	t.transitionState(ctx, oldState, t.failureState())
	switch stage {
	case "decode":
		capitan.Emit(ctx, ThemeDecodeFailed, KeyError.Field(err.Error()))
	case "apply":
		capitan.Emit(ctx, ThemeApplyFailed, KeyError.Field(err.Error()))
	default:
		capitan.Emit(ctx, ThemeValidationFailed, KeyError.Field(err.Error()))
	}
	if t.metrics != nil {
		t.metrics.OnThemeFailure(stage, t.clock.Since(begin))
	}
	return fmt.Errorf("%s failed: %w", stage, err)
}

// failureState returns StateDegraded if a revision is in effect, otherwise
// StateEmpty.
func (t *Theme) failureState() State {
	if t.current.Load() == nil {
		return StateEmpty
	}
	return StateDegraded
}

// transitionState updates the state and emits a state change event if changed.
func (t *Theme) transitionState(ctx context.Context, oldState, newState State) {
	if oldState == newState {
		return
	}
	t.state.Store(int32(newState))
	capitan.Emit(ctx, ThemeStateChanged,
		KeyOldState.Field(oldState.String()),
		KeyNewState.Field(newState.String()),
	)
	if t.metrics != nil {
		t.metrics.OnStateChange(oldState, newState)
	}
}

func (t *Theme) stopped(ctx context.Context) {
	capitan.Emit(ctx, ThemeStopped,
		KeyState.Field(t.State().String()),
	)
	if t.onStop != nil {
		t.onStop(t.State())
	}
}
