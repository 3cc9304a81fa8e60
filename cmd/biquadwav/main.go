// Command biquadwav filters a PCM WAV file through a biquad, one filter
// per channel.
//
// Usage:
//
//	biquadwav -in input.wav -out output.wav [flags]
//
// The output keeps the sample rate, channel count and bit depth of the
// input. Coefficients are used as designed unless -normalize is given, in
// which case they are divided by a0 first.
//
// Examples:
//
//	biquadwav -in vox.wav -out vox-hp.wav -type highpass -freq 80 -q 1.4 -normalize
//	biquadwav -in mix.wav -out mix-eq.wav -type peak -freq 3000 -gain -4 -q 0.7 -normalize -trim -1
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"

	"github.com/cwbudde/algo-biquad/dsp/core"
	"github.com/cwbudde/algo-biquad/dsp/filter/biquad"
	"github.com/cwbudde/algo-biquad/internal/wavio"
)

var (
	errUnstable = errors.New("the filter recursion is unstable, try -normalize")
	errDiverged = errors.New("filter output is not finite")
)

type options struct {
	in, out    string
	filterType string
	freq       float64
	gainDB     float64
	q          float64
	normalize  bool
	precision  int
	trimDB     float64
	blockSize  int
	logLevel   string
}

// designParams are the Design arguments shared by all channels.
type designParams struct {
	filterType biquad.FilterType
	freq       float64
	gainDB     float64
	q          float64
	normalize  bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	var opts options

	fs := flag.NewFlagSet("biquadwav", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.in, "in", "", "input WAV file (required)")
	fs.StringVar(&opts.out, "out", "", "output WAV file (required)")
	fs.StringVar(&opts.filterType, "type", "lowpass", "filter type: "+typeList())
	fs.Float64Var(&opts.freq, "freq", 1000, "cutoff / center frequency in Hz")
	fs.Float64Var(&opts.gainDB, "gain", 0, "gain in dB (peak and shelves)")
	fs.Float64Var(&opts.q, "q", 0.707, "q factor")
	fs.BoolVar(&opts.normalize, "normalize", false, "divide all coefficients by a0 before filtering")
	fs.IntVar(&opts.precision, "precision", 64, "filter precision in bits (32 or 64)")
	fs.Float64Var(&opts.trimDB, "trim", 0, "output trim in dB")
	fs.IntVar(&opts.blockSize, "block", core.DefaultProcessorConfig().BlockSize, "processing block size in samples")
	fs.StringVar(&opts.logLevel, "log-level", "info", "log level: debug, info, warn, error")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	logger, err := newLogger(opts.logLevel, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}

	if err := filterFile(logger, opts); err != nil {
		logger.Error("filtering failed", "err", err)
		return 1
	}
	return 0
}

func resolveLogLevel(level string) (slog.Level, error) {
	switch level {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid log level: %s", level)
	}
}

func newLogger(level string, w io.Writer) (*slog.Logger, error) {
	logLevel, err := resolveLogLevel(level)
	if err != nil {
		return nil, err
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: logLevel,
	})
	return slog.New(handler), nil
}

func typeList() string {
	s := ""
	for i, ft := range biquad.FilterTypes() {
		if i > 0 {
			s += ", "
		}
		s += ft.String()
	}
	return s
}

func filterFile(logger *slog.Logger, opts options) error {
	if opts.in == "" || opts.out == "" {
		return errors.New("both -in and -out are required")
	}

	ft, err := biquad.ParseFilterType(opts.filterType)
	if err != nil {
		return err
	}
	params := designParams{
		filterType: ft,
		freq:       opts.freq,
		gainDB:     opts.gainDB,
		q:          opts.q,
		normalize:  opts.normalize,
	}

	a, err := readFile(opts.in)
	if err != nil {
		return err
	}
	logger.Info("decoded input",
		"path", opts.in,
		"rate", a.SampleRate,
		"bits", a.BitDepth,
		"channels", len(a.Channels),
		"frames", a.Frames(),
	)

	cfg := core.ApplyProcessorOptions(
		core.WithSampleRate(float64(a.SampleRate)),
		core.WithBlockSize(opts.blockSize),
	)
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.SampleRate > math.MaxUint32 {
		return fmt.Errorf("sample rate out of range: %g", cfg.SampleRate)
	}

	inPeak := a.Peak()
	for c, ch := range a.Channels {
		switch opts.precision {
		case 32:
			err = filterChannel[float32](ch, params, cfg)
		case 64:
			err = filterChannel[float64](ch, params, cfg)
		default:
			return fmt.Errorf("precision must be 32 or 64: %d", opts.precision)
		}
		if err != nil {
			return fmt.Errorf("channel %d: %w", c, err)
		}
		logger.Debug("filtered channel", "channel", c, "type", ft, "precision", opts.precision)
	}

	if opts.trimDB != 0 {
		a.Scale(core.DBToLinear(opts.trimDB))
	}

	outPeak := a.Peak()
	logger.Info("filtered",
		"type", ft,
		"freq", opts.freq,
		"gain_db", opts.gainDB,
		"q", opts.q,
		"normalized", opts.normalize,
		"peak_in_db", core.LinearToDB(inPeak),
		"peak_out_db", core.LinearToDB(outPeak),
	)
	if outPeak > 1 {
		logger.Warn("output clips", "peak_db", core.LinearToDB(outPeak))
	}

	if err := writeFile(opts.out, a); err != nil {
		return err
	}
	logger.Info("wrote output", "path", opts.out)
	return nil
}

// filterChannel filters ch in place in blocks of cfg.BlockSize using a
// Filter with F precision. Coefficients whose recursion has a pole on or
// outside the unit circle are rejected before any sample is touched.
func filterChannel[F core.Float](ch []float64, p designParams, cfg core.ProcessorConfig) error {
	f := biquad.NewFilter[F]()
	if err := f.Configure(uint32(cfg.SampleRate)); err != nil {
		return err
	}
	if err := f.Design(p.filterType, p.freq, p.gainDB, p.q); err != nil {
		return err
	}
	if p.normalize {
		f.SetCoefficients(f.Coefficients().Normalized())
	}
	if c := f.Coefficients(); !c.Stable() {
		return fmt.Errorf("%w (pole radius %.4f)", errUnstable, c.PoleRadius())
	}

	var buf []F
	for start := 0; start < len(ch); start += cfg.BlockSize {
		end := min(start+cfg.BlockSize, len(ch))
		buf = core.EnsureLen(buf, end-start)
		for i, x := range ch[start:end] {
			buf[i] = F(x)
		}

		f.ProcessInPlace(buf)

		for i, y := range buf {
			if math.IsNaN(float64(y)) || math.IsInf(float64(y), 0) {
				return fmt.Errorf("%w: sample %d", errDiverged, start+i)
			}
		}
		core.Widen(ch[start:end], buf)
	}
	return nil
}

func readFile(path string) (*wavio.Audio, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	a, err := wavio.Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return a, nil
}

func writeFile(path string, a *wavio.Audio) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := wavio.Write(f, a); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}
