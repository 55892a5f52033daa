package fluid

import (
	"testing"
	"time"
)

func TestKeyState(t *testing.T) {
	field := KeyState.Field("healthy")
	if field.Key().Name() != "state" {
		t.Errorf("expected key 'state', got %q", field.Key().Name())
	}
}

func TestKeyDelay(t *testing.T) {
	field := KeyDelay.Field(200 * time.Millisecond)
	if field.Key().Name() != "delay" {
		t.Errorf("expected key 'delay', got %q", field.Key().Name())
	}
}

func TestKeyWidth(t *testing.T) {
	field := KeyWidth.Field(1024)
	if field.Key().Name() != "width" {
		t.Errorf("expected key 'width', got %q", field.Key().Name())
	}
}

func TestKeyBreakpoint(t *testing.T) {
	field := KeyBreakpoint.Field("lg")
	if field.Key().Name() != "breakpoint" {
		t.Errorf("expected key 'breakpoint', got %q", field.Key().Name())
	}
}

func TestKeyRatio(t *testing.T) {
	field := KeyRatio.Field("0.25")
	if field.Key().Name() != "ratio" {
		t.Errorf("expected key 'ratio', got %q", field.Key().Name())
	}
}
