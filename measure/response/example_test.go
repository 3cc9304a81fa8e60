package response_test

import (
	"fmt"

	"github.com/cwbudde/algo-biquad/dsp/filter/biquad"
	"github.com/cwbudde/algo-biquad/measure/response"
)

func ExampleMeasure() {
	f := biquad.NewFilter[float64]()
	if err := f.Configure(48000); err != nil {
		panic(err)
	}
	if err := f.Design(biquad.Lowshelf, 200, 6, 2); err != nil {
		panic(err)
	}
	f.SetCoefficients(f.Coefficients().Normalized())

	res, err := response.Measure(f, response.WithFFTSize(8192))
	if err != nil {
		panic(err)
	}

	fmt.Printf("DC: %+.1f dB\n", res.MagnitudeDB[0])
	fmt.Printf("10 kHz: %+.1f dB\n", res.Interpolate(10000))
	// Output:
	// DC: +6.0 dB
	// 10 kHz: +0.0 dB
}
