package biquad

import "errors"

// Design validation errors, reported in this order of precedence.
var (
	ErrNoSampleRate         = errors.New("biquad: the sample rate must be set first")
	ErrFrequencyOverNyquist = errors.New("biquad: the frequency is higher than nyquist")
	ErrFrequencyTooLow      = errors.New("biquad: the frequency is lower than 1 Hz")
	ErrNegativeQ            = errors.New("biquad: q is lower than zero")
)

// ErrFatal reports that a design value could not be represented in the
// coefficient storage type. It is only reachable for float32 storage when a
// finite float64 result exceeds the float32 range. Such a value is not
// saturated to ±Inf; the design fails and the previous coefficients stay in
// place.
var ErrFatal = errors.New("biquad: fatal number conversion error")

// ErrUnknownFilterType is returned for a FilterType outside the nine
// defined responses.
var ErrUnknownFilterType = errors.New("biquad: unknown filter type")
