package biquad_test

import (
	"fmt"

	"github.com/cwbudde/algo-biquad/dsp/filter/biquad"
)

func ExampleFilter_Tick() {
	var f biquad.Filter[float64]
	f.SetCoefficients(biquad.Coefficients[float64]{
		A0: 1, A1: -0.2, A2: 0.04,
		B0: 0.25, B1: 0.5, B2: 0.25,
	})

	// Process an impulse.
	for i := range 6 {
		var x float64
		if i == 0 {
			x = 1
		}

		y := f.Tick(x)
		fmt.Printf("y[%d] = %.6f\n", i, y)
	}
	// Output:
	// y[0] = 0.250000
	// y[1] = 0.550000
	// y[2] = 0.350000
	// y[3] = 0.048000
	// y[4] = -0.004400
	// y[5] = -0.002800
}

func ExampleFilter_Design() {
	f := biquad.NewFilter[float32]()

	err := f.Design(biquad.Peak, 1000, 6, 0.7)
	fmt.Println(err)

	if err := f.Configure(48000); err != nil {
		panic(err)
	}
	if err := f.Design(biquad.Peak, 1000, 6, 0.7); err != nil {
		panic(err)
	}

	c := f.Coefficients()
	fmt.Printf("1 kHz: %+.2f dB\n", c.DesignMagnitudeDB(1000))

	buf := []float32{1, 0, 0, 0}
	f.ProcessInPlace(buf)
	fmt.Printf("first sample: %.4f\n", buf[0])
	// Output:
	// biquad: the sample rate must be set first
	// 1 kHz: +6.00 dB
	// first sample: 1.0645
}

func ExampleCoefficients_Normalized() {
	var c biquad.Coefficients[float64]
	if err := c.SetSampleRate(44100); err != nil {
		panic(err)
	}
	if err := c.Design(biquad.Lowpass, 11025, 0, 1); err != nil {
		panic(err)
	}

	n := c.Normalized()
	fmt.Printf("designed:   a0=%.4f b0=%.4f b1=%.4f\n", c.A0, c.B0, c.B1)
	fmt.Printf("normalized: a0=%.4f b0=%.4f b1=%.4f\n", n.A0, n.B0, n.B1)
	// Output:
	// designed:   a0=1.5000 b0=0.5000 b1=1.0000
	// normalized: a0=1.0000 b0=0.3333 b1=0.6667
}
