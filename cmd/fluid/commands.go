package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"strconv"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/xlab/treeprint"
	"github.com/zoobzio/fluid"
)

func parsePixels(arg string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSuffix(arg, "px"), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid pixel value %q", arg)
	}
	return v, nil
}

func newClampCmd(opts *rootOptions) *cobra.Command {
	var vmin, vmax float64
	cmd := &cobra.Command{
		Use:   "clamp MIN MAX",
		Short: "Print a clamp() that grows from MIN to MAX across the viewport range",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			min, err := parsePixels(args[0])
			if err != nil {
				return err
			}
			max, err := parsePixels(args[1])
			if err != nil {
				return err
			}
			cfg, err := loadTokens(opts.config)
			if err != nil {
				return err
			}
			viewport := cfg.Viewport
			if cmd.Flags().Changed("vmin") {
				viewport.Min = vmin
			}
			if cmd.Flags().Changed("vmax") {
				viewport.Max = vmax
			}
			c, err := fluid.FluidSize(min, max, viewport)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), c.String())
			return nil
		},
	}
	cmd.Flags().Float64Var(&vmin, "vmin", fluid.DefaultRange().Min, "Viewport width where the size is MIN")
	cmd.Flags().Float64Var(&vmax, "vmax", fluid.DefaultRange().Max, "Viewport width where the size is MAX")
	return cmd
}

func newFontCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "font MIN MAX",
		Short: "Print a fluid font size over the default viewport range",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			min, err := parsePixels(args[0])
			if err != nil {
				return err
			}
			max, err := parsePixels(args[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), fluid.FluidFontSize(min, max).String())
			return nil
		},
	}
}

func newSpaceCmd() *cobra.Command {
	var scale float64
	cmd := &cobra.Command{
		Use:   "space BASE",
		Short: "Print a fluid spacing size derived from BASE",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := parsePixels(args[0])
			if err != nil {
				return err
			}
			if scale <= 0.8 {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: scale %v produces an inverted range\n", scale)
			}
			fmt.Fprintln(cmd.OutOrStdout(), fluid.FluidSpacing(base, scale).String())
			return nil
		},
	}
	cmd.Flags().Float64Var(&scale, "scale", fluid.DefaultSpacingScale, "Multiplier applied to BASE at the largest viewport")
	return cmd
}

func newPickCmd(opts *rootOptions) *cobra.Command {
	var explain bool
	cmd := &cobra.Command{
		Use:   "pick WIDTH NAME=VALUE...",
		Short: "Resolve a responsive value for a viewport width",
		Example: `  fluid pick 1000 sm=1 md=2 lg=3
  fluid pick 320 default=stack lg=grid`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			width, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid width %q", args[0])
			}
			values := fluid.NewValues[string]()
			for _, arg := range args[1:] {
				name, value, ok := strings.Cut(arg, "=")
				if !ok || name == "" {
					return fmt.Errorf("invalid entry %q, expected NAME=VALUE", arg)
				}
				values.Set(name, value)
			}

			cfg, err := loadTokens(opts.config)
			if err != nil {
				return err
			}
			table, err := cfg.Table()
			if err != nil {
				return err
			}

			r := fluid.NewResponsive(fluid.StaticViewport(width), table, values)
			if err := r.Start(cmd.Context()); err != nil {
				return err
			}
			defer r.Stop()

			value, _ := r.Current()
			if explain {
				fmt.Fprintf(cmd.OutOrStdout(), "%s (%s at %dpx)\n", value, r.Breakpoint(), width)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		},
	}
	cmd.Flags().BoolVar(&explain, "explain", false, "Also print which entry was selected")
	return cmd
}

func newBreakpointsCmd(opts *rootOptions) *cobra.Command {
	var width int
	cmd := &cobra.Command{
		Use:   "breakpoints",
		Short: "Print the breakpoint table and the fluid tokens defined for it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadTokens(opts.config)
			if err != nil {
				return err
			}
			table, err := cfg.Table()
			if err != nil {
				return err
			}
			tree, err := tokenTree(cfg, table, width, cmd.Flags().Changed("width"))
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), tree.String())
			return nil
		},
	}
	cmd.Flags().IntVarP(&width, "width", "w", 0, "Mark the breakpoint active at this viewport width")
	return cmd
}

func tokenTree(cfg fluid.Config, table fluid.Breakpoints, width int, markActive bool) (treeprint.Tree, error) {
	tree := treeprint.New()

	active := ""
	if markActive {
		if bp, ok := table.Active(width); ok {
			active = bp.Name
		}
	}
	bps := tree.AddBranch("breakpoints")
	for _, bp := range table.All() {
		label := fmt.Sprintf("%s %dpx", bp.Name, bp.Width)
		if bp.Name == active {
			bps.AddMetaNode("active", label)
			continue
		}
		bps.AddNode(label)
	}

	if len(cfg.Fonts) > 0 {
		fonts := tree.AddBranch("fonts")
		for _, name := range sortedNames(cfg.Fonts) {
			tok := cfg.Fonts[name]
			c, err := fluid.FluidSize(tok.Min, tok.Max, cfg.Viewport)
			if err != nil {
				return nil, err
			}
			fonts.AddNode(name + " " + c.String())
		}
	}
	if len(cfg.Spacing) > 0 {
		spacing := tree.AddBranch("spacing")
		for _, name := range sortedNames(cfg.Spacing) {
			min, max := cfg.Spacing[name].Bounds()
			c, err := fluid.FluidSize(min, max, cfg.Viewport)
			if err != nil {
				return nil, err
			}
			spacing.AddNode(name + " " + c.String())
		}
	}
	return tree, nil
}

func newCSSCmd() *cobra.Command {
	var (
		watch bool
		out   string
	)
	cmd := &cobra.Command{
		Use:   "css TOKENS",
		Short: "Render a token file as CSS custom properties",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			write := func(css string) error {
				if out == "" {
					_, err := fmt.Fprint(cmd.OutOrStdout(), css)
					return err
				}
				return os.WriteFile(out, []byte(css), 0o600)
			}

			if !watch {
				cfg, err := loadTokens(path)
				if err != nil {
					return err
				}
				css, err := fluid.Stylesheet(cfg)
				if err != nil {
					return err
				}
				return write(css)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return watchCSS(ctx, cmd, path, write)
		},
	}
	cmd.Flags().BoolVar(&watch, "watch", false, "Re-render whenever the token file changes")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Write the stylesheet to this file instead of stdout")
	return cmd
}

// watchCSS re-renders path until ctx is done. Invalid revisions are reported
// and the last good stylesheet is kept.
func watchCSS(ctx context.Context, cmd *cobra.Command, path string, write func(string) error) error {
	done := make(chan struct{})
	source := fluid.NewFileWatcher(path)
	theme := fluid.NewTheme(source, func(_ context.Context, _, curr fluid.Rendered) error {
		return write(curr.CSS)
	}).
		Codec(fluid.CodecFor(path)).
		OnStop(func(fluid.State) { close(done) })

	if err := theme.Start(ctx); err != nil {
		// Only a rejected first revision leaves the theme watching.
		if theme.State() == fluid.StateLoading {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "waiting for valid tokens in %s: %v\n", source.Path(), err)
	}

	<-done
	if err := theme.LastError(); err != nil {
		return fmt.Errorf("last revision rejected: %w", err)
	}
	return nil
}

func sortedNames[V any](m map[string]V) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
