package fluid

import "github.com/zoobzio/capitan"

// Field keys for fluid events.
var (
	// KeyState is the current state.
	KeyState = capitan.NewStringKey("state")

	// KeyOldState is the previous state before a transition.
	KeyOldState = capitan.NewStringKey("old_state")

	// KeyNewState is the new state after a transition.
	KeyNewState = capitan.NewStringKey("new_state")

	// KeyError is the error message when an operation fails.
	KeyError = capitan.NewStringKey("error")

	// KeyDebounce is the configured debounce duration.
	KeyDebounce = capitan.NewDurationKey("debounce")

	// KeyDelay is the transition delay of a Reveal.
	KeyDelay = capitan.NewDurationKey("delay")

	// KeyThreshold is the intersection threshold of a Reveal.
	KeyThreshold = capitan.NewStringKey("threshold")

	// KeyRatio is the intersection ratio that triggered a reveal.
	KeyRatio = capitan.NewStringKey("ratio")

	// KeyWidth is a viewport width in pixels.
	KeyWidth = capitan.NewIntKey("width")

	// KeyBreakpoint is the entry a Responsive resolved to.
	KeyBreakpoint = capitan.NewStringKey("breakpoint")

	// KeyOldBreakpoint is the entry a Responsive resolved to before a change.
	KeyOldBreakpoint = capitan.NewStringKey("old_breakpoint")

	// KeyCodec is the content type of the codec decoding theme tokens.
	KeyCodec = capitan.NewStringKey("codec")
)
