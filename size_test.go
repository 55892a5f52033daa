package fluid

import (
	"errors"
	"math"
	"testing"
)

func TestFluidSize_Expression(t *testing.T) {
	tests := []struct {
		name     string
		min, max float64
		viewport Range
		want     string
	}{
		{"identity", 0, 1024, Range{Min: 0, Max: 1024}, "clamp(0px, 100vw + 0px, 1024px)"},
		{"half slope", 100, 500, Range{Min: 200, Max: 1000}, "clamp(100px, 50vw + 0px, 500px)"},
		{"fractional", 8, 24, Range{Min: 64, Max: 1088}, "clamp(8px, 1.5625vw + 7px, 24px)"},
		{"flat", 16, 16, DefaultRange(), "clamp(16px, 0vw + 16px, 16px)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := FluidSize(tt.min, tt.max, tt.viewport)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := c.String(); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestFluidSize_EqualBounds(t *testing.T) {
	_, err := FluidSize(10, 20, Range{Min: 500, Max: 500})
	if !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("expected ErrDivisionByZero, got %v", err)
	}
}

func TestFluidSize_InvertedRangeAccepted(t *testing.T) {
	c, err := FluidSize(100, 500, Range{Min: 1000, Max: 200})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Slope >= 0 {
		t.Errorf("expected negative slope, got %v", c.Slope)
	}
}

func TestFluidSize_Endpoints(t *testing.T) {
	const eps = 1e-9
	pairs := [][2]float64{{16, 32}, {12, 18}, {36, 72}, {1, 1000}}
	for _, p := range pairs {
		c, err := FluidSize(p[0], p[1], DefaultRange())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := c.At(DefaultRange().Min); math.Abs(got-p[0]) > eps {
			t.Errorf("%v: expected %v at viewport min, got %v", p, p[0], got)
		}
		if got := c.At(DefaultRange().Max); math.Abs(got-p[1]) > eps {
			t.Errorf("%v: expected %v at viewport max, got %v", p, p[1], got)
		}
		mid := (DefaultRange().Min + DefaultRange().Max) / 2
		if got := c.At(mid); math.Abs(got-(p[0]+p[1])/2) > eps {
			t.Errorf("%v: expected midpoint %v, got %v", p, (p[0]+p[1])/2, got)
		}
	}
}

func TestFluidSize_NonDecreasing(t *testing.T) {
	tests := []struct {
		min, max float64
		viewport Range
	}{
		{16, 32, DefaultRange()},
		{12, 18, Range{Min: 0, Max: 1024}},
		{1, 1000, Range{Min: 200, Max: 1000}},
		{0, 0.5, Range{Min: 320, Max: 321}},
		{8, 24, Range{Min: 64, Max: 1088}},
	}
	for _, tt := range tests {
		c, err := FluidSize(tt.min, tt.max, tt.viewport)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		prev := math.Inf(-1)
		for w := tt.viewport.Min - 200; w <= tt.viewport.Max+200; w += 0.25 {
			got := c.At(w)
			if got < prev {
				t.Fatalf("%v..%v over %v: size decreased at %v (%v < %v)", tt.min, tt.max, tt.viewport, w, got, prev)
			}
			if got < tt.min || got > tt.max {
				t.Fatalf("%v..%v over %v: %v outside bounds at %v", tt.min, tt.max, tt.viewport, got, w)
			}
			prev = got
		}
	}
}

func TestDefaultRange_IsACopy(t *testing.T) {
	r := DefaultRange()
	r.Min = 0
	if DefaultRange().Min != 320 {
		t.Errorf("expected DefaultRange to be unaffected, got %v", DefaultRange())
	}
}

func TestClamp_At_ClampsOutsideRange(t *testing.T) {
	c, err := FluidSize(0, 1024, Range{Min: 0, Max: 1024})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := c.At(2000); got != 1024 {
		t.Errorf("expected 1024 above range, got %v", got)
	}
	if got := c.At(-10); got != 0 {
		t.Errorf("expected 0 below range, got %v", got)
	}
	if got := c.At(512); got != 512 {
		t.Errorf("expected 512, got %v", got)
	}
}

func TestFluidFontSize_MatchesDefaultRange(t *testing.T) {
	want, err := FluidSize(16, 32, DefaultRange())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := FluidFontSize(16, 32)
	if got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
	if got.String() != want.String() {
		t.Errorf("expected %q, got %q", want.String(), got.String())
	}
}

func TestFluidSpacing(t *testing.T) {
	c := FluidSpacing(100, DefaultSpacingScale)
	if c.Min != 80 {
		t.Errorf("expected min 80, got %v", c.Min)
	}
	if c.Max != 150 {
		t.Errorf("expected max 150, got %v", c.Max)
	}
	want, _ := FluidSize(80, 150, DefaultRange()) //nolint:errcheck // DefaultRange() is valid
	if c != want {
		t.Errorf("expected %+v, got %+v", want, c)
	}
}

func TestFluidSpacing_LowScaleInverts(t *testing.T) {
	c := FluidSpacing(100, 0.5)
	if c.Max >= c.Min {
		t.Errorf("expected inverted clamp, got min %v max %v", c.Min, c.Max)
	}
}

func TestRange_Validate(t *testing.T) {
	if err := DefaultRange().Validate(); err != nil {
		t.Errorf("expected default range to be valid, got %v", err)
	}
	if err := (Range{Min: 1, Max: 1}).Validate(); !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("expected ErrDivisionByZero, got %v", err)
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{math.Copysign(0, -1), "0"},
		{100, "100"},
		{1.5, "1.5"},
		{-7.25, "-7.25"},
		{0.1, "0.1"},
		{0.000001, "0.000001"},
		{0.0000001, "1e-7"},
		{1.5e-7, "1.5e-7"},
		{1e21, "1e+21"},
		{123456789012345680000, "123456789012345680000"},
		{math.Inf(1), "Infinity"},
		{math.Inf(-1), "-Infinity"},
		{math.NaN(), "NaN"},
	}
	for _, tt := range tests {
		if got := formatNumber(tt.in); got != tt.want {
			t.Errorf("formatNumber(%v): expected %q, got %q", tt.in, tt.want, got)
		}
	}
}
