package biquad

import "github.com/cwbudde/algo-biquad/dsp/core"

// Filter is a single biquad running the Direct Form I recursion
//
//	y[n] = B0*x[n] + B1*x[n-1] + B2*x[n-2] - A1*y[n-1] - A2*y[n-2]
//
// over its own [Coefficients]. A0 does not take part in the recursion.
// The zero value is ready to use once [Filter.Configure] and
// [Filter.Design] have been called.
type Filter[F core.Float] struct {
	coefficients Coefficients[F]

	x1, x2 F // previous inputs
	y1, y2 F // previous outputs
}

// NewFilter returns a Filter with no sample rate, zero coefficients and
// zero history.
func NewFilter[F core.Float]() *Filter[F] {
	return &Filter[F]{}
}

// Configure sets the sample rate used by subsequent Design calls.
func (f *Filter[F]) Configure(sampleRate uint32) error {
	return f.coefficients.SetSampleRate(sampleRate)
}

// Design replaces the coefficients with a freshly designed set. See
// [Coefficients.Design] for the parameters and errors. History is kept, so
// a running stream continues with the new response.
func (f *Filter[F]) Design(filterType FilterType, frequency, gainDB, q float64) error {
	return f.coefficients.Design(filterType, frequency, gainDB, q)
}

// Tick filters one input sample and returns the output.
func (f *Filter[F]) Tick(x F) F {
	c := &f.coefficients
	y := c.B0*x + c.B1*f.x1 + c.B2*f.x2 - c.A1*f.y1 - c.A2*f.y2

	f.x2 = f.x1
	f.x1 = x
	f.y2 = f.y1
	f.y1 = y

	return y
}

// Process filters input into output sample by sample. Only the first
// min(len(input), len(output)) samples are processed. Zero-alloc.
func (f *Filter[F]) Process(input, output []F) {
	n := min(len(input), len(output))
	for i := range n {
		output[i] = f.Tick(input[i])
	}
}

// ProcessInPlace filters buf in place. Zero-alloc.
func (f *Filter[F]) ProcessInPlace(buf []F) {
	for i, x := range buf {
		buf[i] = f.Tick(x)
	}
}

// Reset clears the input and output history. Coefficients are kept.
func (f *Filter[F]) Reset() {
	f.x1 = 0
	f.x2 = 0
	f.y1 = 0
	f.y2 = 0
}

// Coefficients returns a copy of the current coefficient set.
func (f *Filter[F]) Coefficients() Coefficients[F] {
	return f.coefficients
}

// SetCoefficients replaces the coefficient set without validation. History
// is kept.
func (f *Filter[F]) SetCoefficients(c Coefficients[F]) {
	f.coefficients = c
}

// State returns the history as [x1, x2, y1, y2].
func (f *Filter[F]) State() [4]F {
	return [4]F{f.x1, f.x2, f.y1, f.y2}
}

// SetState restores history previously returned by State.
func (f *Filter[F]) SetState(state [4]F) {
	f.x1, f.x2, f.y1, f.y2 = state[0], state[1], state[2], state[3]
}
