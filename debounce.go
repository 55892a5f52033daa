package fluid

import (
	"context"
	"time"

	"github.com/zoobzio/clockz"
)

// DefaultDebounce is the default debounce duration for change processing.
const DefaultDebounce = 100 * time.Millisecond

// debounce reads values from changes until the channel closes or ctx is done.
// Values arriving within d of each other are coalesced and only the latest is
// applied. A non-positive d applies every value immediately. received is
// called for every value read.
func debounce[V any](
	ctx context.Context,
	changes <-chan V,
	clock clockz.Clock,
	d time.Duration,
	received func(V),
	apply func(V),
) {
	var (
		timer      clockz.Timer
		pending    V
		hasPending bool
	)

	for {
		// Get timer channel or nil if no timer
		var timerC <-chan time.Time
		if timer != nil {
			timerC = timer.C()
		}

		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return

		case v, ok := <-changes:
			if !ok {
				if timer != nil {
					timer.Stop()
				}
				if hasPending {
					apply(pending)
				}
				return
			}

			received(v)
			if d <= 0 {
				apply(v)
				continue
			}
			pending = v
			hasPending = true

			if timer == nil {
				timer = clock.NewTimer(d)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C():
					default:
					}
				}
				timer.Reset(d)
			}

		case <-timerC:
			if hasPending {
				apply(pending)
				hasPending = false
			}
		}
	}
}
