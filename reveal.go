package fluid

import (
	"context"
	"reflect"
	"sync"
	"time"

	"github.com/zoobzio/capitan"
)

// DefaultThreshold is the fraction of a target's area that must be inside the
// viewport before it is revealed.
const DefaultThreshold = 0.1

// Target is a handle to an element owned by the host environment. A Reveal
// keeps it only while observing. A nil handle means the element does not
// exist yet.
type Target any

// Entry is one intersection measurement reported by an Observer.
type Entry struct {
	// Target is the measured element. A nil Target refers to the element the
	// observer was asked to watch.
	Target Target

	// Ratio is the fraction of the target's area inside the viewport.
	Ratio float64
}

// IntersectionCallback receives the measurements of one intersection pass.
type IntersectionCallback func(entries []Entry)

// Observer is the host's viewport-intersection primitive.
type Observer interface {
	Observe(target Target)
	Unobserve(target Target)
	Disconnect()
}

// ObserverFactory constructs an Observer that invokes callback whenever a
// watched target crosses threshold.
type ObserverFactory interface {
	NewObserver(callback IntersectionCallback, threshold float64) (Observer, error)
}

// ObserverFactoryFunc adapts a function to ObserverFactory.
type ObserverFactoryFunc func(callback IntersectionCallback, threshold float64) (Observer, error)

// NewObserver calls f.
func (f ObserverFactoryFunc) NewObserver(callback IntersectionCallback, threshold float64) (Observer, error) {
	return f(callback, threshold)
}

// Reveal turns a target's first entry into the viewport into a one-shot
// visible signal that drives an entrance transition.
//
// Visibility only ever moves from pending to visible. Once visible, the target
// is unobserved and later measurements are ignored. Detach must be called when
// the owning element is torn down, whether or not the reveal has fired.
//
// Example:
//
//	r := fluid.NewReveal(observers).Delay(200 * time.Millisecond)
//	defer r.Detach()
//	if err := r.Attach(ctx, el); errors.Is(err, fluid.ErrAbsentTarget) {
//	    // not mounted yet; attach again on the next render
//	}
//	<-r.Done()
type Reveal struct {
	factory   ObserverFactory
	threshold float64
	delay     time.Duration
	metrics   MetricsProvider
	onReveal  func()

	mu       sync.Mutex
	ctx      context.Context
	state    RevealState
	target   Target
	observer Observer
	attached bool
	detached bool
	done     chan struct{}
}

// NewReveal creates a pending Reveal using factory to observe its target.
// A nil factory stands for an environment without intersection support; such
// a Reveal reports visible as soon as it is attached.
func NewReveal(factory ObserverFactory) *Reveal {
	return &Reveal{
		factory:   factory,
		threshold: DefaultThreshold,
		ctx:       context.Background(),
		done:      make(chan struct{}),
	}
}

// -----------------------------------------------------------------------------
// Chainable Instance Configuration
// -----------------------------------------------------------------------------

// Threshold sets the intersection ratio that reveals the target.
// Default: 0.1. Must be called before Attach().
func (r *Reveal) Threshold(t float64) *Reveal {
	r.threshold = t
	return r
}

// Delay sets the transition delay handed to the presentation layer.
// Negative delays are treated as zero. Must be called before Attach().
func (r *Reveal) Delay(d time.Duration) *Reveal {
	if d < 0 {
		d = 0
	}
	r.delay = d
	return r
}

// Metrics sets a metrics provider. Must be called before Attach().
func (r *Reveal) Metrics(provider MetricsProvider) *Reveal {
	r.metrics = provider
	return r
}

// OnReveal sets a callback invoked once, when the target becomes visible.
// Must be called before Attach().
func (r *Reveal) OnReveal(fn func()) *Reveal {
	r.onReveal = fn
	return r
}

// -----------------------------------------------------------------------------
// Accessors
// -----------------------------------------------------------------------------

// Visible reports whether the target has been revealed.
func (r *Reveal) Visible() bool {
	return r.State() == RevealVisible
}

// State returns the reveal state.
func (r *Reveal) State() RevealState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Done returns a channel that is closed when the target is revealed.
func (r *Reveal) Done() <-chan struct{} {
	return r.done
}

// TransitionDelay returns the configured transition delay.
func (r *Reveal) TransitionDelay() time.Duration {
	return r.delay
}

// ThresholdValue returns the configured intersection threshold.
func (r *Reveal) ThresholdValue() float64 {
	return r.threshold
}

// -----------------------------------------------------------------------------
// Lifecycle
// -----------------------------------------------------------------------------

// Attach starts observing target. ctx is used for the signals the Reveal
// emits during the observation.
//
// An absent target leaves the Reveal untouched and returns ErrAbsentTarget so
// the caller can attach again once the element exists. Attaching an already
// attached or already visible Reveal is a no-op. After Detach, Attach returns
// ErrDetached.
func (r *Reveal) Attach(ctx context.Context, target Target) error {
	r.mu.Lock()
	switch {
	case r.detached:
		r.mu.Unlock()
		return ErrDetached
	case r.attached || r.state == RevealVisible:
		r.mu.Unlock()
		return nil
	case absent(target):
		r.mu.Unlock()
		capitan.Emit(ctx, RevealDeferred)
		return ErrAbsentTarget
	}
	r.ctx = ctx

	if r.factory == nil {
		r.mu.Unlock()
		r.degrade(ctx, ErrObserverUnavailable)
		return nil
	}
	factory := r.factory
	r.mu.Unlock()

	// The factory may invoke the callback synchronously, so it runs unlocked.
	observer, err := factory.NewObserver(r.handle, r.threshold)
	if err != nil || observer == nil {
		if err == nil {
			err = ErrObserverUnavailable
		}
		r.degrade(ctx, err)
		return nil
	}

	r.mu.Lock()
	switch {
	case r.detached:
		r.mu.Unlock()
		observer.Disconnect()
		return ErrDetached
	case r.attached || r.state == RevealVisible:
		r.mu.Unlock()
		observer.Disconnect()
		return nil
	}
	r.target = target
	r.observer = observer
	r.attached = true
	r.mu.Unlock()

	capitan.Emit(ctx, RevealAttached,
		KeyThreshold.Field(formatNumber(r.threshold)),
		KeyDelay.Field(r.delay),
	)

	// Observe may deliver a measurement synchronously, so it runs unlocked.
	observer.Observe(target)
	return nil
}

// Detach stops the observation unconditionally and releases the target. A
// pending Reveal stays pending for good. Detach is idempotent.
func (r *Reveal) Detach() {
	r.mu.Lock()
	if r.detached {
		r.mu.Unlock()
		return
	}
	r.detached = true
	observer := r.observer
	ctx := r.ctx
	state := r.state
	r.observer = nil
	r.target = nil
	r.mu.Unlock()

	if observer != nil {
		observer.Disconnect()
	}
	capitan.Emit(ctx, RevealDetached,
		KeyState.Field(state.String()),
	)
}

// handle is the IntersectionCallback given to the Observer.
func (r *Reveal) handle(entries []Entry) {
	r.mu.Lock()
	if r.detached || !r.attached || r.state == RevealVisible {
		r.mu.Unlock()
		return
	}

	ratio, hit := 0.0, false
	for _, e := range entries {
		if e.Target != nil && !sameTarget(e.Target, r.target) {
			continue
		}
		if e.Ratio >= r.threshold {
			ratio, hit = e.Ratio, true
			break
		}
	}
	if !hit {
		r.mu.Unlock()
		return
	}

	r.state = RevealVisible
	close(r.done)
	observer, target, ctx := r.observer, r.target, r.ctx
	r.target = nil
	r.mu.Unlock()

	observer.Unobserve(target)

	capitan.Emit(ctx, RevealRevealed,
		KeyRatio.Field(formatNumber(ratio)),
		KeyDelay.Field(r.delay),
	)
	r.revealed()
}

// degrade reveals without observing.
func (r *Reveal) degrade(ctx context.Context, cause error) {
	r.mu.Lock()
	if r.detached || r.state == RevealVisible {
		r.mu.Unlock()
		return
	}
	r.state = RevealVisible
	close(r.done)
	r.mu.Unlock()

	capitan.Emit(ctx, RevealDegraded,
		KeyError.Field(cause.Error()),
	)
	r.revealed()
}

func (r *Reveal) revealed() {
	if r.metrics != nil {
		r.metrics.OnReveal(r.delay)
	}
	if r.onReveal != nil {
		r.onReveal()
	}
}

// absent reports whether target is nil, including typed nil handles.
func absent(target Target) bool {
	if target == nil {
		return true
	}
	v := reflect.ValueOf(target)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// sameTarget compares two handles without panicking on incomparable types.
func sameTarget(a, b Target) bool {
	if reflect.TypeOf(a) != reflect.TypeOf(b) || !reflect.TypeOf(a).Comparable() {
		return false
	}
	return a == b
}
