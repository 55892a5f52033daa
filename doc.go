/*
Package fluid provides the responsive building blocks of a web page: one-shot
scroll reveals, fluid CSS sizing, breakpoint-based value selection and live
design-token stylesheets.

fluid is meant to be embedded in whatever renders the page. The host supplies
its intersection primitive and its resize notifications; fluid keeps the
state and decides what to show.

# Reveal

A Reveal watches one element and flips from pending to visible the first time
enough of it enters the viewport. It never flips back:

	r := fluid.NewReveal(observers).Delay(200 * time.Millisecond)
	defer r.Detach()

	if err := r.Attach(ctx, el); errors.Is(err, fluid.ErrAbsentTarget) {
	    // element not mounted yet; attach again later
	}
	style := r.Style(fluid.DefaultTransition())

Without an intersection primitive (a nil ObserverFactory) a Reveal is visible
as soon as it is attached.

# Fluid Sizes

FluidSize interpolates linearly between two pixel sizes across a viewport
range and renders as a CSS clamp():

	c, _ := fluid.FluidSize(8, 24, fluid.Range{Min: 64, Max: 1088})
	c.String() // clamp(8px, 1.5625vw + 7px, 24px)

FluidFontSize and FluidSpacing are the typography and spacing entry points
over DefaultRange.

# Responsive Values

ResponsiveValue picks the entry of the largest breakpoint the width has
reached, falling back to "default", then "sm", then the first entry set:

	cols := fluid.NewValues[int]().Set("sm", 1).Set("md", 2).Set("lg", 3)
	n, _ := fluid.ResponsiveValue(fluid.DefaultBreakpoints(), cols, 1000) // 2

Responsive keeps such a value current against a Viewport until stopped:

	r := fluid.NewResponsive(viewport, fluid.DefaultBreakpoints(), cols)
	if err := r.Start(ctx); err != nil {
	    return err
	}
	defer r.Stop()

# Themes

A Theme watches a JSON or YAML token document, validates every revision and
renders it as CSS custom properties. Invalid revisions are rejected and the
last good stylesheet stays in effect:

	theme := fluid.NewTheme(fluid.NewFileWatcher("tokens.yaml"), apply)
	if err := theme.Start(ctx); err != nil {
	    log.Printf("waiting for valid tokens: %v", err)
	}

# Observability

Every lifecycle transition is emitted as a capitan signal (see signals.go and
fields.go). A MetricsProvider can be attached to Reveal, Responsive and Theme.
*/
package fluid
