package gpu

import "testing"

func TestUploadRingAllocateAndReclaim(t *testing.T) {
	r := &UploadRing{capacity: 100}

	off := r.Allocate(40, 1)
	if off != 0 {
		t.Fatalf("expected offset 0, got %d", off)
	}
	off = r.Allocate(40, 1)
	if off != 40 {
		t.Fatalf("expected offset 40, got %d", off)
	}

	// One free byte less than requested must fail cleanly.
	if off := r.Allocate(21, 1); off != -1 {
		t.Fatalf("expected -1 on insufficient free span, got %d", off)
	}

	r.AdvanceCompleted(1)
	if off := r.Allocate(21, 2); off == -1 {
		t.Fatalf("expected reclaimed space to satisfy allocation")
	}
}

func TestUploadRingWrapsPastBoundary(t *testing.T) {
	r := &UploadRing{capacity: 100}

	r.Allocate(80, 1)
	r.AdvanceCompleted(1)

	// 30 bytes won't fit in the remaining 20 before the wrap point; the
	// ring must waste the tail and restart at 0 rather than split.
	off := r.Allocate(30, 2)
	if off != 0 {
		t.Fatalf("expected wrap to offset 0, got %d", off)
	}
}
