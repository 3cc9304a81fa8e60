package core

import "math"

// Float is the set of sample types supported by the generic processors.
type Float interface {
	~float32 | ~float64
}

// Clamp limits value to the inclusive range [min, max].
func Clamp(value, min, max float64) float64 {
	if min > max {
		min, max = max, min
	}

	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}

// Narrow converts x to F. It reports false when a finite x does not fit
// into F, i.e. the conversion overflowed to an infinity. NaN and infinite
// inputs convert as-is.
func Narrow[F Float](x float64) (F, bool) {
	y := F(x)
	if !math.IsInf(x, 0) && math.IsInf(float64(y), 0) {
		return 0, false
	}

	return y, true
}

// DBToLinear converts dB to linear amplitude (20*log10 convention).
func DBToLinear(db float64) float64 {
	return math.Pow(10, db/20)
}

// LinearToDB converts linear amplitude to dB (20*log10 convention).
// Returns -Inf for zero and NaN for negative values.
func LinearToDB(linear float64) float64 {
	if linear < 0 {
		return math.NaN()
	}

	if linear == 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(linear)
}

// ShelfAmplitude returns the square root of the linear gain for gainDB,
// i.e. 10^(gainDB/40), the "A" term of shelving and peaking designs.
func ShelfAmplitude(gainDB float64) float64 {
	return math.Pow(10, gainDB/40)
}
