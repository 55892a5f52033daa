package fluid

import "errors"

var (
	// ErrDivisionByZero is returned when a fluid size is requested over a
	// viewport range whose bounds are equal.
	ErrDivisionByZero = errors.New("fluid: viewport bounds are equal (division by zero)")

	// ErrAbsentTarget is returned by Reveal.Attach when the target does not
	// exist yet. It is not a failure: nothing changes and the caller is
	// expected to attach again once the target is mounted.
	ErrAbsentTarget = errors.New("fluid: reveal target is absent")

	// ErrDetached is returned by Reveal.Attach after Detach has been called.
	ErrDetached = errors.New("fluid: reveal already detached")

	// ErrObserverUnavailable may be returned by an ObserverFactory when the host
	// environment has no intersection primitive. Reveal degrades to visible.
	ErrObserverUnavailable = errors.New("fluid: intersection observer unavailable")

	// ErrInvalidBreakpoints is returned when a breakpoint table cannot be built.
	ErrInvalidBreakpoints = errors.New("fluid: invalid breakpoint table")
)
