package testutil

import (
	"math"
	"testing"
)

func TestImpulse(t *testing.T) {
	x := Impulse[float64](4, 1)
	RequireSliceNearlyEqual(t, x, []float64{0, 1, 0, 0}, 0)

	if got := Impulse[float32](2, 5); got[0] != 0 || got[1] != 0 {
		t.Fatalf("out-of-range impulse should be all zeros: %v", got)
	}
}

func TestDeterministicNoiseIsReproducible(t *testing.T) {
	a := DeterministicNoise[float64](42, 0.5, 64)
	b := DeterministicNoise[float64](42, 0.5, 64)
	RequireSliceNearlyEqual(t, a, b, 0)
	for i, v := range a {
		if math.Abs(v) > 0.5 {
			t.Fatalf("index %d: %v exceeds amplitude", i, v)
		}
	}
}

func TestRMS(t *testing.T) {
	sine := DeterministicSine[float64](1000, 48000, 1, 48000)
	if got := RMS(sine); math.Abs(got-1/math.Sqrt2) > 1e-6 {
		t.Fatalf("RMS(sine) = %v, want %v", got, 1/math.Sqrt2)
	}
	if RMS([]float32(nil)) != 0 {
		t.Fatal("RMS(nil) should be 0")
	}
}
