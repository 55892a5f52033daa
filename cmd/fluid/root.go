package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/zoobzio/capitan"
	"github.com/zoobzio/fluid"
)

const version = "0.1.0"

type rootOptions struct {
	verbose bool
	config  string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "fluid",
		Short:         "Fluid sizing, responsive values and design-token stylesheets",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if opts.verbose {
				hookSignals(cmd.ErrOrStderr())
			}
		},
	}

	cmd.PersistentFlags().BoolVar(&opts.verbose, "verbose", false,
		"Log fluid signals to stderr")
	cmd.PersistentFlags().StringVarP(&opts.config, "config", "c", "",
		"Token file (JSON or YAML) providing the viewport range and breakpoints")

	cmd.AddCommand(
		newClampCmd(opts),
		newFontCmd(),
		newSpaceCmd(),
		newPickCmd(opts),
		newBreakpointsCmd(opts),
		newCSSCmd(),
	)
	return cmd
}

// loadTokens reads the token file at path, or returns the defaults when path
// is empty.
func loadTokens(path string) (fluid.Config, error) {
	if path == "" {
		return fluid.DefaultConfig(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fluid.Config{}, fmt.Errorf("failed to read tokens: %w", err)
	}
	cfg, err := fluid.LoadConfig(data, fluid.CodecFor(path))
	if err != nil {
		return fluid.Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// hookSignals writes every fluid lifecycle signal as one line to w.
func hookSignals(w io.Writer) {
	capitan.Hook(fluid.RevealAttached, logEvent(w, fluid.RevealAttached.Name()))
	capitan.Hook(fluid.RevealDeferred, logEvent(w, fluid.RevealDeferred.Name()))
	capitan.Hook(fluid.RevealRevealed, logEvent(w, fluid.RevealRevealed.Name()))
	capitan.Hook(fluid.RevealDegraded, logEvent(w, fluid.RevealDegraded.Name()))
	capitan.Hook(fluid.RevealDetached, logEvent(w, fluid.RevealDetached.Name()))
	capitan.Hook(fluid.ResponsiveStarted, logEvent(w, fluid.ResponsiveStarted.Name()))
	capitan.Hook(fluid.ResponsiveValueChanged, logEvent(w, fluid.ResponsiveValueChanged.Name()))
	capitan.Hook(fluid.ResponsiveStateChanged, logEvent(w, fluid.ResponsiveStateChanged.Name()))
	capitan.Hook(fluid.ResponsiveStopped, logEvent(w, fluid.ResponsiveStopped.Name()))
	capitan.Hook(fluid.ThemeStarted, logEvent(w, fluid.ThemeStarted.Name()))
	capitan.Hook(fluid.ThemeStateChanged, logEvent(w, fluid.ThemeStateChanged.Name()))
	capitan.Hook(fluid.ThemeDecodeFailed, logEvent(w, fluid.ThemeDecodeFailed.Name()))
	capitan.Hook(fluid.ThemeValidationFailed, logEvent(w, fluid.ThemeValidationFailed.Name()))
	capitan.Hook(fluid.ThemeApplyFailed, logEvent(w, fluid.ThemeApplyFailed.Name()))
	capitan.Hook(fluid.ThemeApplied, logEvent(w, fluid.ThemeApplied.Name()))
	capitan.Hook(fluid.ThemeStopped, logEvent(w, fluid.ThemeStopped.Name()))
}

func logEvent(w io.Writer, name string) func(context.Context, *capitan.Event) {
	return func(_ context.Context, e *capitan.Event) {
		fmt.Fprintln(w, formatEvent(name, e))
	}
}

func formatEvent(name string, e *capitan.Event) string {
	parts := []string{name}
	if v, ok := fluid.KeyOldState.From(e); ok {
		parts = append(parts, "from="+v)
	}
	if v, ok := fluid.KeyNewState.From(e); ok {
		parts = append(parts, "to="+v)
	}
	if v, ok := fluid.KeyState.From(e); ok {
		parts = append(parts, "state="+v)
	}
	if v, ok := fluid.KeyBreakpoint.From(e); ok {
		parts = append(parts, "breakpoint="+v)
	}
	if v, ok := fluid.KeyWidth.From(e); ok {
		parts = append(parts, fmt.Sprintf("width=%d", v))
	}
	if v, ok := fluid.KeyRatio.From(e); ok {
		parts = append(parts, "ratio="+v)
	}
	if v, ok := fluid.KeyError.From(e); ok {
		parts = append(parts, "error="+v)
	}
	return strings.Join(parts, " ")
}
