// Command biquadinfo designs a biquad and prints its coefficients and
// frequency response.
//
// Usage:
//
//	biquadinfo [flags]
//
// The table compares three responses: the designed transfer function
// B(z)/A(z), the analytic response of the recursion the filter actually
// runs (A0 ignored) and an FFT measurement of that recursion.
//
// Examples:
//
//	biquadinfo -type peak -freq 1000 -gain 6 -q 0.7
//	biquadinfo -type lowshelf -freq 200 -gain -9 -normalize
//	biquadinfo -rate 44100 -type notch -freq 60 -points 20
//	biquadinfo -list
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-biquad/dsp/filter/biquad"
	"github.com/cwbudde/algo-biquad/measure/response"
)

const minFreqHz = 20.0

type options struct {
	sampleRate uint
	filterType string
	freq       float64
	gainDB     float64
	q          float64
	points     int
	fftSize    int
	normalize  bool
	list       bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	var opts options

	fs := flag.NewFlagSet("biquadinfo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.UintVar(&opts.sampleRate, "rate", 48000, "sample rate in Hz")
	fs.StringVar(&opts.filterType, "type", "peak", "filter type (use -list to see available)")
	fs.Float64Var(&opts.freq, "freq", 1000, "cutoff / center frequency in Hz")
	fs.Float64Var(&opts.gainDB, "gain", 0, "gain in dB (peak and shelves)")
	fs.Float64Var(&opts.q, "q", 0.707, "q factor")
	fs.IntVar(&opts.points, "points", 12, "number of log-spaced frequencies in the table")
	fs.IntVar(&opts.fftSize, "fft", 8192, "FFT size for the measured column (power of two)")
	fs.BoolVar(&opts.normalize, "normalize", false, "divide all coefficients by a0 before running the filter")
	fs.BoolVar(&opts.list, "list", false, "list available filter types")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: biquadinfo [flags]\n\n")
		fmt.Fprintf(stderr, "Designs a biquad and prints its coefficients and frequency response.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  biquadinfo -type peak -freq 1000 -gain 6 -q 0.7\n")
		fmt.Fprintf(stderr, "  biquadinfo -type lowshelf -freq 200 -gain -9 -normalize\n")
		fmt.Fprintf(stderr, "  biquadinfo -list\n")
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if opts.list {
		printList(stdout)
		return 0
	}

	if err := describe(stdout, opts); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

func printList(w io.Writer) {
	for _, ft := range biquad.FilterTypes() {
		fmt.Fprintln(w, ft)
	}
}

func describe(w io.Writer, opts options) error {
	ft, err := biquad.ParseFilterType(opts.filterType)
	if err != nil {
		return err
	}
	if opts.sampleRate > math.MaxUint32 {
		return fmt.Errorf("sample rate out of range: %d", opts.sampleRate)
	}
	if opts.points < 2 {
		return fmt.Errorf("points must be >= 2: %d", opts.points)
	}

	f := biquad.NewFilter[float64]()
	if err := f.Configure(uint32(opts.sampleRate)); err != nil {
		return err
	}
	if err := f.Design(ft, opts.freq, opts.gainDB, opts.q); err != nil {
		return err
	}

	designed := f.Coefficients()
	if opts.normalize {
		f.SetCoefficients(designed.Normalized())
	}
	running := f.Coefficients()

	measured, err := response.Measure(f, response.WithFFTSize(opts.fftSize))
	if err != nil && !errors.Is(err, response.ErrUnstable) {
		return err
	}
	stable := err == nil

	fmt.Fprintf(w, "%s  f=%g Hz  gain=%g dB  q=%g  rate=%d Hz\n\n", ft, opts.freq, opts.gainDB, opts.q, opts.sampleRate)
	printCoefficients(w, "designed", designed)
	if opts.normalize {
		printCoefficients(w, "running", running)
	}
	printPoles(w, running)
	if !stable {
		fmt.Fprintf(w, "warning: the running recursion is unstable (pole radius %.4f), try -normalize\n", running.PoleRadius())
	}
	fmt.Fprintln(w)

	return printTable(w, designed, running, measured, stable, logSpaced(minFreqHz, float64(opts.sampleRate)/2, opts.points))
}

func printCoefficients(w io.Writer, label string, c biquad.Coefficients[float64]) {
	fmt.Fprintf(w, "%-9s a0=% .10f  a1=% .10f  a2=% .10f\n", label+":", c.A0, c.A1, c.A2)
	fmt.Fprintf(w, "%-9s b0=% .10f  b1=% .10f  b2=% .10f\n", "", c.B0, c.B1, c.B2)
}

func printPoles(w io.Writer, c biquad.Coefficients[float64]) {
	p := c.Poles()
	fmt.Fprintf(w, "%-9s p1=% .6f%+.6fi  p2=% .6f%+.6fi  radius=%.6f\n", "poles:",
		real(p[0]), imag(p[0]), real(p[1]), imag(p[1]), c.PoleRadius())
}

func printTable(w io.Writer, designed, running biquad.Coefficients[float64], measured response.Result, stable bool, freqs []float64) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Freq [Hz]\tDesign [dB]\tRunning [dB]\tMeasured [dB]\tPhase [deg]\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "---------\t-----------\t------------\t-------------\t-----------\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}

	for _, freq := range freqs {
		m := "unstable"
		if stable {
			m = fmt.Sprintf("%+.3f", measured.Interpolate(freq))
		}
		if _, err := fmt.Fprintf(tw, "%.1f\t%+.3f\t%+.3f\t%s\t%+.2f\n",
			freq,
			designed.DesignMagnitudeDB(freq),
			running.MagnitudeDB(freq),
			m,
			running.Phase(freq)*180/math.Pi,
		); err != nil {
			return fmt.Errorf("failed to write output row: %w", err)
		}
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return nil
}

// logSpaced returns n logarithmically spaced values from lo to hi inclusive.
func logSpaced(lo, hi float64, n int) []float64 {
	out := make([]float64, n)
	ratio := math.Log(hi / lo)
	for i := range out {
		out[i] = lo * math.Exp(ratio*float64(i)/float64(n-1))
	}
	return out
}
