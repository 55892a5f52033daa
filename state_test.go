package fluid

import "testing"

func TestState_String(t *testing.T) {
	cases := map[State]string{
		StateLoading:  "loading",
		StateHealthy:  "healthy",
		StateDegraded: "degraded",
		StateEmpty:    "empty",
		StateStopped:  "stopped",
		State(999):    "unknown",
	}
	for state, want := range cases {
		if got := state.String(); got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	}
}

func TestState_Values(t *testing.T) {
	// Verify iota ordering
	if StateLoading != 0 {
		t.Errorf("expected StateLoading=0, got %d", StateLoading)
	}
	if StateStopped != 4 {
		t.Errorf("expected StateStopped=4, got %d", StateStopped)
	}
}

func TestRevealState_String(t *testing.T) {
	if s := RevealPending.String(); s != "pending" {
		t.Errorf("expected 'pending', got %q", s)
	}
	if s := RevealVisible.String(); s != "visible" {
		t.Errorf("expected 'visible', got %q", s)
	}
	if s := RevealState(7).String(); s != "unknown" {
		t.Errorf("expected 'unknown', got %q", s)
	}
}
