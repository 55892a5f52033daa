package fluid

import (
	"fmt"
	"sort"
)

// DefaultKey names the fallback entry of a Values map. It can never be used
// as a breakpoint name.
const DefaultKey = "default"

// Breakpoint is a named minimum viewport width in pixels.
type Breakpoint struct {
	Name  string `json:"name" yaml:"name"`
	Width int    `json:"width" yaml:"width"`
}

// Breakpoints is an immutable breakpoint table ordered by ascending width.
// The zero value is an empty table.
type Breakpoints struct {
	list []Breakpoint
}

// DefaultBreakpoints returns the standard table
// {sm:640, md:768, lg:1024, xl:1280, 2xl:1536}.
func DefaultBreakpoints() Breakpoints {
	return Breakpoints{list: []Breakpoint{
		{Name: "sm", Width: 640},
		{Name: "md", Width: 768},
		{Name: "lg", Width: 1024},
		{Name: "xl", Width: 1280},
		{Name: "2xl", Width: 1536},
	}}
}

// NewBreakpoints builds a table from the given breakpoints in any order.
// Names must be unique, non-empty and not DefaultKey; widths must not be
// negative. Equal widths are ordered by name.
func NewBreakpoints(bps ...Breakpoint) (Breakpoints, error) {
	list := make([]Breakpoint, len(bps))
	copy(list, bps)

	seen := make(map[string]struct{}, len(list))
	for _, bp := range list {
		switch {
		case bp.Name == "":
			return Breakpoints{}, fmt.Errorf("%w: empty name", ErrInvalidBreakpoints)
		case bp.Name == DefaultKey:
			return Breakpoints{}, fmt.Errorf("%w: %q is reserved", ErrInvalidBreakpoints, DefaultKey)
		case bp.Width < 0:
			return Breakpoints{}, fmt.Errorf("%w: %s has negative width %d", ErrInvalidBreakpoints, bp.Name, bp.Width)
		}
		if _, dup := seen[bp.Name]; dup {
			return Breakpoints{}, fmt.Errorf("%w: duplicate name %s", ErrInvalidBreakpoints, bp.Name)
		}
		seen[bp.Name] = struct{}{}
	}

	sort.Slice(list, func(i, j int) bool {
		if list[i].Width != list[j].Width {
			return list[i].Width < list[j].Width
		}
		return list[i].Name < list[j].Name
	})
	return Breakpoints{list: list}, nil
}

// BreakpointsFromMap builds a table from a name to width mapping.
func BreakpointsFromMap(m map[string]int) (Breakpoints, error) {
	bps := make([]Breakpoint, 0, len(m))
	for name, width := range m {
		bps = append(bps, Breakpoint{Name: name, Width: width})
	}
	return NewBreakpoints(bps...)
}

// Len returns the number of breakpoints.
func (b Breakpoints) Len() int {
	return len(b.list)
}

// All returns a copy of the table in ascending width order.
func (b Breakpoints) All() []Breakpoint {
	out := make([]Breakpoint, len(b.list))
	copy(out, b.list)
	return out
}

// Map returns the table as a name to width mapping.
func (b Breakpoints) Map() map[string]int {
	m := make(map[string]int, len(b.list))
	for _, bp := range b.list {
		m[bp.Name] = bp.Width
	}
	return m
}

// Width returns the minimum width of the named breakpoint.
func (b Breakpoints) Width(name string) (int, bool) {
	for _, bp := range b.list {
		if bp.Name == name {
			return bp.Width, true
		}
	}
	return 0, false
}

// Active returns the largest breakpoint whose width does not exceed width.
func (b Breakpoints) Active(width int) (Breakpoint, bool) {
	for i := len(b.list) - 1; i >= 0; i-- {
		if width >= b.list[i].Width {
			return b.list[i], true
		}
	}
	return Breakpoint{}, false
}
