package fluid

import "github.com/zoobzio/capitan"

// Reveal lifecycle signals.
var (
	// RevealAttached is emitted when a Reveal starts observing its target.
	RevealAttached = capitan.NewSignal(
		"fluid.reveal.attached",
		"Reveal observation started",
	)

	// RevealDeferred is emitted when Attach is called before the target exists.
	RevealDeferred = capitan.NewSignal(
		"fluid.reveal.deferred",
		"Reveal target absent, attach deferred",
	)

	// RevealRevealed is emitted once, when the target first meets the threshold.
	RevealRevealed = capitan.NewSignal(
		"fluid.reveal.revealed",
		"Reveal target became visible",
	)

	// RevealDegraded is emitted when no intersection observer is available and
	// the Reveal falls back to always visible.
	RevealDegraded = capitan.NewSignal(
		"fluid.reveal.degraded",
		"Intersection observer unavailable, revealed immediately",
	)

	// RevealDetached is emitted when a Reveal releases its observation.
	RevealDetached = capitan.NewSignal(
		"fluid.reveal.detached",
		"Reveal observation released",
	)
)

// Responsive value signals.
var (
	// ResponsiveStarted is emitted when a Responsive subscribes to its viewport.
	ResponsiveStarted = capitan.NewSignal(
		"fluid.responsive.started",
		"Responsive subscription started",
	)

	// ResponsiveWidthReceived is emitted for every width read from the viewport.
	ResponsiveWidthReceived = capitan.NewSignal(
		"fluid.responsive.width.received",
		"Viewport width received",
	)

	// ResponsiveValueChanged is emitted when the selected entry changes.
	ResponsiveValueChanged = capitan.NewSignal(
		"fluid.responsive.value.changed",
		"Responsive value changed",
	)

	// ResponsiveStateChanged is emitted when a Responsive transitions between
	// states.
	ResponsiveStateChanged = capitan.NewSignal(
		"fluid.responsive.state.changed",
		"Responsive state transition",
	)

	// ResponsiveStopped is emitted when a Responsive unsubscribes.
	ResponsiveStopped = capitan.NewSignal(
		"fluid.responsive.stopped",
		"Responsive subscription stopped",
	)
)

// Theme signals.
var (
	// ThemeStarted is emitted when a Theme begins watching.
	ThemeStarted = capitan.NewSignal(
		"fluid.theme.started",
		"Theme watching started",
	)

	// ThemeStopped is emitted when a Theme stops watching.
	ThemeStopped = capitan.NewSignal(
		"fluid.theme.stopped",
		"Theme watching stopped",
	)

	// ThemeStateChanged is emitted when a Theme transitions between states.
	ThemeStateChanged = capitan.NewSignal(
		"fluid.theme.state.changed",
		"Theme state transition",
	)

	// ThemeChangeReceived is emitted when raw token data arrives.
	ThemeChangeReceived = capitan.NewSignal(
		"fluid.theme.change.received",
		"Raw token change received",
	)

	// ThemeDecodeFailed is emitted when token data cannot be decoded.
	ThemeDecodeFailed = capitan.NewSignal(
		"fluid.theme.decode.failed",
		"Token decode failed",
	)

	// ThemeValidationFailed is emitted when decoded tokens are invalid or
	// cannot be rendered.
	ThemeValidationFailed = capitan.NewSignal(
		"fluid.theme.validation.failed",
		"Token validation failed",
	)

	// ThemeApplyFailed is emitted when the apply callback rejects a theme.
	ThemeApplyFailed = capitan.NewSignal(
		"fluid.theme.apply.failed",
		"Theme apply failed",
	)

	// ThemeApplied is emitted when a new theme is in effect.
	ThemeApplied = capitan.NewSignal(
		"fluid.theme.applied",
		"Theme applied",
	)
)
