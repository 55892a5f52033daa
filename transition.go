package fluid

import (
	"strings"
	"time"
)

// Transition describes the entrance animation a Reveal drives. It is
// presentation only: a Reveal never reads it.
type Transition struct {
	// Duration of the opacity and transform transitions.
	Duration time.Duration

	// Easing is a CSS timing function.
	Easing string

	// Offset is how far below its resting position, in px, a hidden element sits.
	Offset float64

	// Width is the CSS width of the wrapping element. Empty omits it.
	Width string
}

// DefaultTransition returns a fit-content wrapper that fades in while rising
// 30px over 0.8s.
func DefaultTransition() Transition {
	return Transition{
		Duration: 800 * time.Millisecond,
		Easing:   "cubic-bezier(0.17, 0.55, 0.55, 1)",
		Offset:   30,
		Width:    "fit-content",
	}
}

// Style returns inline CSS for an element in the hidden or resting state. The
// transition start is pushed back by delay.
func (t Transition) Style(visible bool, delay time.Duration) string {
	var b strings.Builder
	if t.Width != "" {
		b.WriteString("width: ")
		b.WriteString(t.Width)
		b.WriteString("; ")
	}
	b.WriteString("position: relative; ")
	if visible {
		b.WriteString("opacity: 1; transform: none; ")
	} else {
		b.WriteString("opacity: 0; transform: translateY(")
		b.WriteString(formatNumber(t.Offset))
		b.WriteString("px); ")
	}
	b.WriteString("transition: ")
	b.WriteString(t.property("opacity", delay))
	b.WriteString(", ")
	b.WriteString(t.property("transform", delay))
	return b.String()
}

func (t Transition) property(name string, delay time.Duration) string {
	return name + " " + formatNumber(t.Duration.Seconds()) + "s " + t.Easing + " " + formatNumber(delay.Seconds()) + "s"
}

// Style returns the inline CSS for the Reveal's current state using t.
func (r *Reveal) Style(t Transition) string {
	return t.Style(r.Visible(), r.delay)
}
