package biquad

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-biquad/dsp/core"
)

// Coefficients is the transfer function of one biquad together with the
// sample rate it was designed for:
//
//	H(z) = (B0 + B1*z^-1 + B2*z^-2) / (A0 + A1*z^-1 + A2*z^-2)
//
// A0 is kept exactly as designed, it is not normalized to 1. The zero value
// has no sample rate and all coefficients zero.
type Coefficients[F core.Float] struct {
	SampleRate F

	A0, A1, A2 F // feedback (denominator)
	B0, B1, B2 F // feedforward (numerator)
}

// SetSampleRate stores the sample rate in Hz. The error is [ErrFatal] if the
// rate cannot be represented in F, which cannot happen for float32 or
// float64.
func (c *Coefficients[F]) SetSampleRate(sampleRate uint32) error {
	sr, ok := core.Narrow[F](float64(sampleRate))
	if !ok {
		return fmt.Errorf("%w: sample rate %d", ErrFatal, sampleRate)
	}
	c.SampleRate = sr
	return nil
}

// Design recomputes all six coefficients for the given response. frequency
// is in Hz, gainDB only affects Peak, Lowshelf and Highshelf, q must be
// non-negative.
//
// Validation runs in a fixed order: [ErrNoSampleRate],
// [ErrFrequencyOverNyquist], [ErrFrequencyTooLow], [ErrNegativeQ]. On error
// the previous coefficients are kept.
func (c *Coefficients[F]) Design(filterType FilterType, frequency, gainDB, q float64) error {
	if c.SampleRate == 0 {
		return ErrNoSampleRate
	}

	sampleRate := float64(c.SampleRate)
	if 2*frequency > sampleRate {
		return fmt.Errorf("%w: %g Hz at sample rate %g Hz", ErrFrequencyOverNyquist, frequency, sampleRate)
	}
	if frequency < 1 {
		return fmt.Errorf("%w: %g Hz", ErrFrequencyTooLow, frequency)
	}
	if q < 0 {
		return fmt.Errorf("%w: %g", ErrNegativeQ, q)
	}

	d, err := design(filterType, frequency, sampleRate, gainDB, q)
	if err != nil {
		return err
	}

	return c.store(d)
}

// designed holds float64 coefficients before narrowing, in storage order.
type designed struct {
	a0, a1, a2 float64
	b0, b1, b2 float64
}

// design evaluates the cookbook equations in float64.
func design(filterType FilterType, frequency, sampleRate, gainDB, q float64) (designed, error) {
	a := core.ShelfAmplitude(gainDB)
	omega := 2 * math.Pi * frequency / sampleRate
	sin := math.Sin(omega)
	cos := math.Cos(omega)
	alpha := sin / 2 * q
	beta := 2 * math.Sqrt(a) * alpha

	switch filterType {
	case Lowpass:
		return designed{
			b0: (1 - cos) / 2,
			b1: 1 - cos,
			b2: (1 - cos) / 2,
			a0: 1 + alpha,
			a1: -2 * cos,
			a2: 1 - alpha,
		}, nil
	case Highpass:
		return designed{
			b0: (1 + cos) / 2,
			b1: -(1 + cos),
			b2: (1 + cos) / 2,
			a0: 1 + alpha,
			a1: -2 * cos,
			a2: 1 - alpha,
		}, nil
	case Bandpass1:
		return designed{
			b0: q * alpha,
			b1: 0,
			b2: -q * alpha,
			a0: 1 + alpha,
			a1: -2 * cos,
			a2: 1 - alpha,
		}, nil
	case Bandpass2:
		return designed{
			b0: alpha,
			b1: 0,
			b2: -alpha,
			a0: 1 + alpha,
			a1: -2 * cos,
			a2: 1 - alpha,
		}, nil
	case Notch:
		return designed{
			b0: 1,
			b1: -2 * cos,
			b2: 1,
			a0: 1 + alpha,
			a1: -2 * cos,
			a2: 1 - alpha,
		}, nil
	case Allpass:
		return designed{
			b0: 1 - alpha,
			b1: -2 * cos,
			b2: 1 + alpha,
			a0: 1 + alpha,
			a1: -2 * cos,
			a2: 1 - alpha,
		}, nil
	case Peak:
		return designed{
			b0: 1 + alpha*a,
			b1: -2 * cos,
			b2: 1 - alpha*a,
			a0: 1 + alpha/a,
			a1: -2 * cos,
			a2: 1 - alpha/a,
		}, nil
	case Lowshelf:
		return designed{
			b0: a * ((a + 1) - (a-1)*cos + beta),
			b1: 2 * a * ((a - 1) - (a+1)*cos),
			b2: a * ((a + 1) - (a-1)*cos - beta),
			a0: (a + 1) + (a-1)*cos + beta,
			a1: -2 * ((a - 1) + (a+1)*cos),
			a2: (a + 1) + (a-1)*cos - beta,
		}, nil
	case Highshelf:
		return designed{
			b0: a * ((a + 1) + (a-1)*cos + beta),
			b1: -2 * a * ((a - 1) + (a+1)*cos),
			b2: a * ((a + 1) + (a-1)*cos - beta),
			a0: (a + 1) - (a-1)*cos + beta,
			a1: 2 * ((a - 1) - (a+1)*cos),
			a2: (a + 1) - (a-1)*cos - beta,
		}, nil
	}

	return designed{}, fmt.Errorf("%w: %d", ErrUnknownFilterType, int(filterType))
}

// store narrows d into c. Nothing is written unless all six values fit.
func (c *Coefficients[F]) store(d designed) error {
	src := [6]float64{d.a0, d.a1, d.a2, d.b0, d.b1, d.b2}

	var dst [6]F
	for i, v := range src {
		x, ok := core.Narrow[F](v)
		if !ok {
			return fmt.Errorf("%w: coefficient %d = %g", ErrFatal, i, v)
		}
		dst[i] = x
	}

	c.A0, c.A1, c.A2 = dst[0], dst[1], dst[2]
	c.B0, c.B1, c.B2 = dst[3], dst[4], dst[5]
	return nil
}

// Normalized returns a copy of c with every coefficient divided by A0, so
// that A0 == 1 and [Filter.Tick] realizes the designed response. c is
// returned unchanged if A0 is zero.
func (c Coefficients[F]) Normalized() Coefficients[F] {
	if c.A0 == 0 {
		return c
	}

	return Coefficients[F]{
		SampleRate: c.SampleRate,
		A0:         1,
		A1:         c.A1 / c.A0,
		A2:         c.A2 / c.A0,
		B0:         c.B0 / c.A0,
		B1:         c.B1 / c.A0,
		B2:         c.B2 / c.A0,
	}
}
