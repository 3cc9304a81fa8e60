// Package response measures the frequency response of a running biquad
// filter.
//
// [Measure] captures the filter's impulse response (without disturbing its
// history), transforms it with an FFT and reports the magnitude per bin.
// Because the measurement runs the actual Tick recursion, it shows what the
// filter does with its coefficients as stored, including unnormalized A0.
// [MaxDeviationDB] compares a measurement against the analytic response of
// a coefficient set.
//
// # Usage
//
//	res, err := response.Measure(filter, response.WithFFTSize(8192))
//	if err != nil {
//		return err
//	}
//	for k, f := range res.Frequencies {
//		fmt.Printf("%8.1f Hz  %+6.2f dB\n", f, res.MagnitudeDB[k])
//	}
package response
