package response

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-biquad/dsp/core"
	"github.com/cwbudde/algo-biquad/dsp/filter/biquad"
)

// analyticFloorDB is the level below which analytic bins are not compared;
// truncation and rounding noise dominate there.
const analyticFloorDB = -120.0

var (
	// ErrFFTSize is returned for FFT sizes that are not a power of two >= 2.
	ErrFFTSize = errors.New("response: fft size must be a power of two >= 2")
	// ErrUnstable is returned when the running recursion has a pole on or
	// outside the unit circle, or its impulse response is not finite.
	ErrUnstable = errors.New("response: filter is unstable")
)

// Result holds a measured magnitude response for bins 0..FFTSize/2.
type Result struct {
	SampleRate  float64
	FFTSize     int
	Frequencies []float64 // bin center frequencies in Hz
	Magnitude   []float64 // linear |H|
	MagnitudeDB []float64 // 20*log10(|H|)
}

// Measure returns the magnitude response of f. The filter's history is
// preserved. Filters whose recursion is not stable (see
// [biquad.Coefficients.Stable]) are rejected with ErrUnstable before any
// samples are run. The sample rate defaults to the filter's configured rate, or
// to 48 kHz if none is set.
func Measure[F core.Float](f *biquad.Filter[F], opts ...Option) (Result, error) {
	base := DefaultConfig()
	if sr := f.Coefficients().SampleRate; sr > 0 {
		base.SampleRate = float64(sr)
	}

	cfg := ApplyOptions(base, opts...)
	if err := cfg.Validate(); err != nil {
		return Result{}, fmt.Errorf("response: %w", err)
	}
	n := cfg.FFTSize
	if n < 2 || n&(n-1) != 0 {
		return Result{}, fmt.Errorf("%w: %d", ErrFFTSize, n)
	}

	c := f.Coefficients()
	if r := c.PoleRadius(); !(r < 1) {
		return Result{}, fmt.Errorf("%w: pole radius %.6f", ErrUnstable, r)
	}

	ir := f.ImpulseResponse(n)

	in := make([]complex128, n)
	for i, v := range ir {
		x := float64(v)
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return Result{}, fmt.Errorf("%w: sample %d = %v", ErrUnstable, i, x)
		}
		in[i] = complex(x, 0)
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return Result{}, fmt.Errorf("response: failed to create FFT plan: %w", err)
	}

	out := make([]complex128, n)
	if err := plan.Forward(out, in); err != nil {
		return Result{}, fmt.Errorf("response: forward FFT failed: %w", err)
	}

	bins := n/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for k := range bins {
		re[k] = real(out[k])
		im[k] = imag(out[k])
	}

	res := Result{
		SampleRate:  cfg.SampleRate,
		FFTSize:     n,
		Frequencies: make([]float64, bins),
		Magnitude:   make([]float64, bins),
		MagnitudeDB: make([]float64, bins),
	}
	vecmath.Magnitude(res.Magnitude, re, im)

	binHz := cfg.SampleRate / float64(n)
	for k := range bins {
		res.Frequencies[k] = float64(k) * binHz
		res.MagnitudeDB[k] = core.LinearToDB(res.Magnitude[k])
	}

	return res, nil
}

// MaxDeviationDB returns the largest absolute difference in dB between the
// measurement and the analytic response of c (see
// [biquad.Coefficients.Response]) evaluated at the measurement's sample
// rate. Bins where the analytic response is below -120 dB are skipped.
func MaxDeviationDB[F core.Float](res Result, c biquad.Coefficients[F]) float64 {
	c.SampleRate = F(res.SampleRate)

	maxDev := 0.0
	for k, freq := range res.Frequencies {
		want := c.MagnitudeDB(freq)
		if want < analyticFloorDB || math.IsNaN(want) {
			continue
		}
		if d := math.Abs(res.MagnitudeDB[k] - want); d > maxDev {
			maxDev = d
		}
	}
	return maxDev
}

// Interpolate returns the measured magnitude in dB at freqHz using linear
// interpolation between bins. Frequencies outside [0, Nyquist] are clamped.
func (r Result) Interpolate(freqHz float64) float64 {
	if len(r.MagnitudeDB) == 0 {
		return math.NaN()
	}

	binHz := r.SampleRate / float64(r.FFTSize)
	pos := core.Clamp(freqHz/binHz, 0, float64(len(r.MagnitudeDB)-1))
	i := int(pos)
	if i >= len(r.MagnitudeDB)-1 {
		return r.MagnitudeDB[len(r.MagnitudeDB)-1]
	}

	frac := pos - float64(i)
	return r.MagnitudeDB[i]*(1-frac) + r.MagnitudeDB[i+1]*frac
}
