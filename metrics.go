package fluid

import "time"

// MetricsProvider allows integration with metrics systems like Prometheus, StatsD, etc.
// Implement this interface to receive callbacks on reveal, responsive and theme events.
type MetricsProvider interface {
	// OnStateChange is called when a Responsive or Theme transitions between states.
	OnStateChange(from, to State)

	// OnReveal is called once per Reveal, when its target becomes visible.
	OnReveal(delay time.Duration)

	// OnWidthReceived is called for every viewport width a Responsive reads.
	OnWidthReceived(width int)

	// OnBreakpointChange is called when a Responsive resolves to a different entry.
	OnBreakpointChange(from, to string)

	// OnThemeApplied is called when a theme update succeeds.
	// Duration covers decode, validation, rendering and the apply callback.
	OnThemeApplied(duration time.Duration)

	// OnThemeFailure is called when a theme update fails.
	// Stage is "decode", "validate", "render" or "apply".
	OnThemeFailure(stage string, duration time.Duration)
}

// NoOpMetricsProvider is a no-op implementation of MetricsProvider.
// Use this as an embedded type to implement only the methods you need.
type NoOpMetricsProvider struct{}

func (NoOpMetricsProvider) OnStateChange(_, _ State)                 {}
func (NoOpMetricsProvider) OnReveal(_ time.Duration)                 {}
func (NoOpMetricsProvider) OnWidthReceived(_ int)                    {}
func (NoOpMetricsProvider) OnBreakpointChange(_, _ string)           {}
func (NoOpMetricsProvider) OnThemeApplied(_ time.Duration)           {}
func (NoOpMetricsProvider) OnThemeFailure(_ string, _ time.Duration) {}
