package fluid

import (
	"context"
	"fmt"
)

// ChannelSource wraps an existing channel as a Source.
// Useful for testing and for hosts that already push values, such as a
// browser bridge forwarding resize events.
type ChannelSource[V any] struct {
	ch   <-chan V
	sync bool
}

// NewChannelSource creates a ChannelSource that forwards values from the
// given channel through an internal goroutine.
func NewChannelSource[V any](ch <-chan V) *ChannelSource[V] {
	return &ChannelSource[V]{ch: ch}
}

// NewSyncChannelSource creates a ChannelSource that returns the source
// channel directly without an intermediate goroutine.
// Use with SyncMode() for deterministic testing.
func NewSyncChannelSource[V any](ch <-chan V) *ChannelSource[V] {
	return &ChannelSource[V]{ch: ch, sync: true}
}

// NewChannelViewport is NewChannelSource for viewport widths.
func NewChannelViewport(ch <-chan int) *ChannelSource[int] {
	return NewChannelSource(ch)
}

// NewSyncChannelViewport is NewSyncChannelSource for viewport widths.
func NewSyncChannelViewport(ch <-chan int) *ChannelSource[int] {
	return NewSyncChannelSource(ch)
}

// NewChannelWatcher is NewChannelSource for token documents.
func NewChannelWatcher(ch <-chan []byte) *ChannelSource[[]byte] {
	return NewChannelSource(ch)
}

// NewSyncChannelWatcher is NewSyncChannelSource for token documents.
func NewSyncChannelWatcher(ch <-chan []byte) *ChannelSource[[]byte] {
	return NewSyncChannelSource(ch)
}

// Watch returns a channel that emits values from the wrapped channel.
func (s *ChannelSource[V]) Watch(ctx context.Context) (<-chan V, error) {
	if s.ch == nil {
		return nil, fmt.Errorf("channel source has no channel")
	}
	if s.sync {
		return s.ch, nil
	}

	out := make(chan V)
	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case v, ok := <-s.ch:
				if !ok {
					return
				}
				select {
				case out <- v:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, nil
}

// StaticViewport is a Viewport whose width never changes. It is the natural
// source for server-side rendering, where the width is known up front.
type StaticViewport int

// Watch emits the width once and closes the channel when ctx is canceled.
func (v StaticViewport) Watch(ctx context.Context) (<-chan int, error) {
	out := make(chan int, 1)
	out <- int(v)
	go func() {
		<-ctx.Done()
		close(out)
	}()
	return out, nil
}
