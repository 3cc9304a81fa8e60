package core

import "testing"

func TestEnsureLen(t *testing.T) {
	buf := make([]float64, 2, 8)
	got := EnsureLen(buf, 6)
	if len(got) != 6 || cap(got) != 8 {
		t.Fatalf("EnsureLen reuse: len=%d cap=%d", len(got), cap(got))
	}

	got = EnsureLen(buf, 16)
	if len(got) != 16 {
		t.Fatalf("EnsureLen grow: len=%d", len(got))
	}

	got = EnsureLen(buf, -1)
	if len(got) != 0 {
		t.Fatalf("EnsureLen negative: len=%d", len(got))
	}
}

func TestWiden(t *testing.T) {
	src := []float32{0.5, -0.25, 1}
	dst := make([]float64, 2)
	n := Widen(dst, src)
	if n != 2 {
		t.Fatalf("Widen copied %d, want 2", n)
	}
	if dst[0] != 0.5 || dst[1] != -0.25 {
		t.Fatalf("Widen = %v", dst)
	}
}
