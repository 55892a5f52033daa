package fluid

import (
	"strings"
	"testing"
)

func TestDefaultConfig_Valid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected default config to be valid, got %v", err)
	}
	if cfg.Viewport != DefaultRange() {
		t.Errorf("expected default viewport, got %+v", cfg.Viewport)
	}
	if len(cfg.Breakpoints) != 5 {
		t.Errorf("expected 5 default breakpoints, got %v", cfg.Breakpoints)
	}
}

func TestLoadConfig_YAML(t *testing.T) {
	doc := `
viewport: {min: 64, max: 1088}
breakpoints: {phone: 0, desk: 900}
fonts:
  body: {min: 8, max: 24}
spacing:
  section: {base: 20}
`
	cfg, err := LoadConfig([]byte(doc), YAMLCodec{})
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Viewport != (Range{Min: 64, Max: 1088}) {
		t.Errorf("unexpected viewport %+v", cfg.Viewport)
	}
	if len(cfg.Breakpoints) != 2 || cfg.Breakpoints["desk"] != 900 {
		t.Errorf("expected breakpoints to replace defaults, got %v", cfg.Breakpoints)
	}
	if cfg.Fonts["body"] != (FontToken{Min: 8, Max: 24}) {
		t.Errorf("unexpected font %+v", cfg.Fonts["body"])
	}
	if min, max := cfg.Spacing["section"].Bounds(); min != 16 || max != 30 {
		t.Errorf("expected spacing bounds 16..30, got %v..%v", min, max)
	}
}

func TestLoadConfig_JSONKeepsOmittedDefaults(t *testing.T) {
	cfg, err := LoadConfig([]byte(`{"fonts": {"hero": {"min": 36, "max": 72}}}`), AutoCodec{})
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Viewport != DefaultRange() {
		t.Errorf("expected default viewport, got %+v", cfg.Viewport)
	}
	if cfg.Breakpoints["2xl"] != 1536 {
		t.Errorf("expected default breakpoints, got %v", cfg.Breakpoints)
	}
}

func TestLoadConfig_DecodeError(t *testing.T) {
	_, err := LoadConfig([]byte(`{"fonts": [}`), JSONCodec{})
	if err == nil || !strings.Contains(err.Error(), "decode failed") {
		t.Errorf("expected decode error, got %v", err)
	}
}

func TestConfig_ValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"equal viewport bounds", func(c *Config) { c.Viewport = Range{Min: 500, Max: 500} }},
		{"inverted viewport", func(c *Config) { c.Viewport = Range{Min: 1200, Max: 320} }},
		{"negative viewport", func(c *Config) { c.Viewport = Range{Min: -1, Max: 320} }},
		{"reserved breakpoint", func(c *Config) { c.Breakpoints[DefaultKey] = 0 }},
		{"empty breakpoint name", func(c *Config) { c.Breakpoints[""] = 10 }},
		{"negative breakpoint", func(c *Config) { c.Breakpoints["sm"] = -1 }},
		{"zero font", func(c *Config) { c.Fonts = map[string]FontToken{"body": {Min: 0, Max: 10}} }},
		{"inverted font", func(c *Config) { c.Fonts = map[string]FontToken{"body": {Min: 20, Max: 10}} }},
		{"empty font name", func(c *Config) { c.Fonts = map[string]FontToken{"": {Min: 10, Max: 20}} }},
		{"low spacing scale", func(c *Config) { c.Spacing = map[string]SpacingToken{"gap": {Base: 10, Scale: 0.5}} }},
		{"zero spacing base", func(c *Config) { c.Spacing = map[string]SpacingToken{"gap": {Base: 0}} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestConfig_ValidateAccepts(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Fonts = map[string]FontToken{"flat": {Min: 16, Max: 16}}
	cfg.Spacing = map[string]SpacingToken{"gap": {Base: 10}, "wide": {Base: 10, Scale: 3}}
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected valid config, got %v", err)
	}
}

func TestSpacingToken_Bounds(t *testing.T) {
	min, max := SpacingToken{Base: 10, Scale: 2.4}.Bounds()
	if min != 8 || max != 24 {
		t.Errorf("expected 8..24, got %v..%v", min, max)
	}
}

func TestConfig_Table(t *testing.T) {
	cfg := DefaultConfig()
	table, err := cfg.Table()
	if err != nil {
		t.Fatalf("Table failed: %v", err)
	}
	if bp, _ := table.Active(800); bp.Name != "md" {
		t.Errorf("expected md, got %q", bp.Name)
	}
}
