package biquad

import (
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-biquad/dsp/core"
)

// Response returns the complex frequency response of the recursion that
// [Filter.Tick] runs with these coefficients, i.e. with a leading
// denominator term of 1 regardless of A0. It returns NaN if no sample rate
// is set.
func (c *Coefficients[F]) Response(freqHz float64) complex128 {
	return c.evaluate(freqHz, 1)
}

// DesignResponse returns the complex frequency response of the designed
// transfer function B(z)/A(z), A0 included. It equals Response when A0 == 1.
func (c *Coefficients[F]) DesignResponse(freqHz float64) complex128 {
	return c.evaluate(freqHz, float64(c.A0))
}

func (c *Coefficients[F]) evaluate(freqHz, a0 float64) complex128 {
	if c.SampleRate == 0 {
		return cmplx.NaN()
	}

	w := 2 * math.Pi * freqHz / float64(c.SampleRate)
	z1 := cmplx.Exp(complex(0, -w))
	z2 := cmplx.Exp(complex(0, -2*w))

	num := complex(float64(c.B0), 0) + complex(float64(c.B1), 0)*z1 + complex(float64(c.B2), 0)*z2
	den := complex(a0, 0) + complex(float64(c.A1), 0)*z1 + complex(float64(c.A2), 0)*z2
	return num / den
}

// MagnitudeDB returns 20*log10(|Response(freqHz)|).
func (c *Coefficients[F]) MagnitudeDB(freqHz float64) float64 {
	return core.LinearToDB(cmplx.Abs(c.Response(freqHz)))
}

// DesignMagnitudeDB returns 20*log10(|DesignResponse(freqHz)|).
func (c *Coefficients[F]) DesignMagnitudeDB(freqHz float64) float64 {
	return core.LinearToDB(cmplx.Abs(c.DesignResponse(freqHz)))
}

// Phase returns the phase of Response(freqHz) in radians, in [-pi, pi].
func (c *Coefficients[F]) Phase(freqHz float64) float64 {
	return cmplx.Phase(c.Response(freqHz))
}

// ImpulseResponse returns the first n output samples for a unit impulse.
// The history is saved and restored, so the filter is left unchanged.
func (f *Filter[F]) ImpulseResponse(n int) []F {
	if n <= 0 {
		return nil
	}

	saved := f.State()
	f.Reset()

	ir := make([]F, n)
	ir[0] = f.Tick(1)
	for i := 1; i < n; i++ {
		ir[i] = f.Tick(0)
	}

	f.SetState(saved)
	return ir
}
