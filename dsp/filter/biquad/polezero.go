package biquad

import (
	"math"
	"math/cmplx"
)

// Poles returns the z-plane poles of the recursion [Filter.Tick] runs:
//
//	1 + A1*z^-1 + A2*z^-2 = 0
//
// A0 is ignored, as it is by Tick.
func (c *Coefficients[F]) Poles() [2]complex128 {
	return quadraticRoots(1, float64(c.A1), float64(c.A2))
}

// DesignPoles returns the poles of the designed denominator:
//
//	A0 + A1*z^-1 + A2*z^-2 = 0
func (c *Coefficients[F]) DesignPoles() [2]complex128 {
	return quadraticRoots(float64(c.A0), float64(c.A1), float64(c.A2))
}

// Zeros returns the z-plane zeros of the numerator:
//
//	B0 + B1*z^-1 + B2*z^-2 = 0
func (c *Coefficients[F]) Zeros() [2]complex128 {
	return quadraticRoots(float64(c.B0), float64(c.B1), float64(c.B2))
}

// PoleRadius returns the largest pole magnitude of the running recursion.
// It is NaN if a coefficient is NaN.
func (c *Coefficients[F]) PoleRadius() float64 {
	p := c.Poles()
	return math.Max(cmplx.Abs(p[0]), cmplx.Abs(p[1]))
}

// Stable reports whether both poles of the running recursion lie strictly
// inside the unit circle.
func (c *Coefficients[F]) Stable() bool {
	return c.PoleRadius() < 1
}

func quadraticRoots(a, b, c float64) [2]complex128 {
	if a == 0 {
		if b == 0 {
			return [2]complex128{}
		}
		return [2]complex128{complex(-c/b, 0), 0}
	}

	discriminant := complex(b*b-4*a*c, 0)
	sqrtDiscriminant := cmplx.Sqrt(discriminant)
	den := complex(2*a, 0)
	return [2]complex128{
		(-complex(b, 0) + sqrtDiscriminant) / den,
		(-complex(b, 0) - sqrtDiscriminant) / den,
	}
}
