package fluid

import (
	"fmt"
	"sort"

	"github.com/go-playground/validator/v10"
)

// validate is the shared validator instance.
var validate = validator.New()

// FontToken is a typography size that grows from Min px to Max px across the
// viewport range.
type FontToken struct {
	Min float64 `json:"min" yaml:"min" validate:"gt=0"`
	Max float64 `json:"max" yaml:"max" validate:"gtefield=Min"`
}

// SpacingToken is a spacing size derived from a base value. A zero Scale
// means DefaultSpacingScale.
type SpacingToken struct {
	Base  float64 `json:"base" yaml:"base" validate:"gt=0"`
	Scale float64 `json:"scale,omitempty" yaml:"scale,omitempty" validate:"omitempty,gt=0.8"`
}

// Bounds returns the pixel sizes at the smallest and the largest viewport.
func (s SpacingToken) Bounds() (float64, float64) {
	scale := s.Scale
	if scale == 0 {
		scale = DefaultSpacingScale
	}
	return spacingBounds(s.Base, scale)
}

// Config is a design-token document: the viewport range fluid sizes
// interpolate over, the breakpoint table, and named typography and spacing
// tokens.
//
//	viewport: {min: 320, max: 1200}
//	breakpoints: {sm: 640, md: 768, lg: 1024}
//	fonts:
//	  hero: {min: 36, max: 72}
//	spacing:
//	  section: {base: 64, scale: 2}
type Config struct {
	Viewport    Range                   `json:"viewport" yaml:"viewport"`
	Breakpoints map[string]int          `json:"breakpoints" yaml:"breakpoints" validate:"dive,keys,required,ne=default,endkeys,gte=0"`
	Fonts       map[string]FontToken    `json:"fonts,omitempty" yaml:"fonts,omitempty"`
	Spacing     map[string]SpacingToken `json:"spacing,omitempty" yaml:"spacing,omitempty"`
}

// DefaultConfig returns a Config with DefaultRange, the default breakpoints
// and no tokens.
func DefaultConfig() Config {
	return Config{
		Viewport:    DefaultRange(),
		Breakpoints: DefaultBreakpoints().Map(),
	}
}

// Validate checks field constraints, every token, and that the breakpoints
// form a valid table.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return err
	}
	if err := c.Viewport.Validate(); err != nil {
		return err
	}
	for _, name := range sortedKeys(c.Fonts) {
		if name == "" {
			return fmt.Errorf("font with empty name")
		}
		if err := validate.Struct(c.Fonts[name]); err != nil {
			return fmt.Errorf("font %s: %w", name, err)
		}
	}
	for _, name := range sortedKeys(c.Spacing) {
		if name == "" {
			return fmt.Errorf("spacing with empty name")
		}
		if err := validate.Struct(c.Spacing[name]); err != nil {
			return fmt.Errorf("spacing %s: %w", name, err)
		}
	}
	_, err := BreakpointsFromMap(c.Breakpoints)
	return err
}

// Table returns the breakpoint table of c.
func (c Config) Table() (Breakpoints, error) {
	return BreakpointsFromMap(c.Breakpoints)
}

// DecodeConfig decodes a token document on top of DefaultConfig without
// validating it. Omitted sections keep their defaults.
func DecodeConfig(data []byte, codec Codec) (Config, error) {
	cfg := DefaultConfig()
	cfg.Breakpoints = nil
	if err := codec.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	if cfg.Breakpoints == nil {
		cfg.Breakpoints = DefaultBreakpoints().Map()
	}
	return cfg, nil
}

// LoadConfig decodes and validates a token document.
func LoadConfig(data []byte, codec Codec) (Config, error) {
	cfg, err := DecodeConfig(data, codec)
	if err != nil {
		return Config{}, fmt.Errorf("decode failed: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("validation failed: %w", err)
	}
	return cfg, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
