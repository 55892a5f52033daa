package fluid

import (
	"fmt"
	"strconv"
	"strings"
)

// Stylesheet renders cfg as CSS custom properties on :root. Breakpoints come
// first in ascending width order, followed by fonts and spacing sorted by
// name, so equal configs always render identically.
//
// With a viewport range of 64..1088:
//
//	:root {
//	  --bp-sm: 640px;
//	  --font-body: clamp(8px, 1.5625vw + 7px, 24px);
//	}
func Stylesheet(cfg Config) (string, error) {
	table, err := cfg.Table()
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(":root {\n")
	for _, bp := range table.All() {
		writeProperty(&b, "bp-"+bp.Name, strconv.Itoa(bp.Width)+"px")
	}
	for _, name := range sortedKeys(cfg.Fonts) {
		tok := cfg.Fonts[name]
		c, err := FluidSize(tok.Min, tok.Max, cfg.Viewport)
		if err != nil {
			return "", fmt.Errorf("font %s: %w", name, err)
		}
		writeProperty(&b, "font-"+name, c.String())
	}
	for _, name := range sortedKeys(cfg.Spacing) {
		min, max := cfg.Spacing[name].Bounds()
		c, err := FluidSize(min, max, cfg.Viewport)
		if err != nil {
			return "", fmt.Errorf("spacing %s: %w", name, err)
		}
		writeProperty(&b, "space-"+name, c.String())
	}
	b.WriteString("}\n")
	return b.String(), nil
}

func writeProperty(b *strings.Builder, name, value string) {
	b.WriteString("  --")
	b.WriteString(name)
	b.WriteString(": ")
	b.WriteString(value)
	b.WriteString(";\n")
}
