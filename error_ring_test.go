package fluid

import (
	"errors"
	"testing"
)

func TestRing_NilSafe(t *testing.T) {
	var r *ring[error]

	// All operations should be safe on nil
	r.push(errors.New("test"))

	if r.all() != nil {
		t.Error("expected nil from nil ring")
	}
}

func TestRing_NonPositiveSize(t *testing.T) {
	if newRing[error](0) != nil {
		t.Error("expected nil ring for size 0")
	}
	if newRing[error](-1) != nil {
		t.Error("expected nil ring for negative size")
	}
}

func TestRing_Empty(t *testing.T) {
	if got := newRing[int](2).all(); got != nil {
		t.Errorf("expected nil, got %v", got)
	}
}

func TestRing_Wraparound(t *testing.T) {
	r := newRing[int](3)
	for i := 1; i <= 5; i++ {
		r.push(i)
	}

	got := r.all()
	want := []int{3, 4, 5}
	if len(got) != len(want) {
		t.Fatalf("expected %d items, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d: expected %d, got %d", i, want[i], got[i])
		}
	}
}
