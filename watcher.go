package fluid

import "context"

// Source observes something for changes and emits values on a channel.
// Implementations must emit the current value immediately upon Watch() being
// called so that consumers can compute an initial result.
type Source[V any] interface {
	// Watch begins observing and returns a channel that emits a value on
	// every change. The channel is closed when the context is canceled or
	// an unrecoverable error occurs. Canceling the context is how a
	// consumer unsubscribes.
	Watch(ctx context.Context) (<-chan V, error)
}

// Viewport emits the viewport width in pixels, once on subscription and again
// on every resize.
type Viewport = Source[int]

// Watcher emits raw design-token documents.
type Watcher = Source[[]byte]
