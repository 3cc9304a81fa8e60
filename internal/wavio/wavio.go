// Package wavio reads and writes PCM WAV files as per-channel float64
// buffers normalized to [-1, 1).
package wavio

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/cwbudde/algo-vecmath"
	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/cwbudde/algo-biquad/dsp/core"
)

const pcmFormat = 1

var (
	// ErrNotWavFile is returned by Read when the input has no valid RIFF/WAVE header.
	ErrNotWavFile = errors.New("wavio: not a WAV file")
	// ErrUnsupportedBitDepth is returned for PCM other than 16, 24 or 32 bit.
	ErrUnsupportedBitDepth = errors.New("wavio: only 16, 24 and 32 bit PCM supported")
	// ErrNoChannels is returned for audio without channels.
	ErrNoChannels = errors.New("wavio: no channels")
	// ErrChannelLength is returned by Write when channels differ in length.
	ErrChannelLength = errors.New("wavio: channels differ in length")
)

// Audio is a decoded multichannel signal.
type Audio struct {
	SampleRate int
	BitDepth   int
	Channels   [][]float64
}

// Frames returns the number of samples per channel.
func (a *Audio) Frames() int {
	if len(a.Channels) == 0 {
		return 0
	}
	return len(a.Channels[0])
}

// Scale multiplies every sample by gain.
func (a *Audio) Scale(gain float64) {
	for _, ch := range a.Channels {
		vecmath.ScaleBlockInPlace(ch, gain)
	}
}

// Peak returns the largest absolute sample value across all channels.
func (a *Audio) Peak() float64 {
	peak := 0.0
	for _, ch := range a.Channels {
		peak = math.Max(peak, vecmath.MaxAbs(ch))
	}
	return peak
}

func supportedBitDepth(bits int) error {
	switch bits {
	case 16, 24, 32:
		return nil
	}
	return fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bits)
}

func fullScale(bits int) float64 {
	return float64(int64(1) << (bits - 1))
}

// Read decodes a PCM WAV stream.
func Read(r io.ReadSeeker) (*Audio, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("wavio: decoding PCM data: %w", err)
	}

	bits := int(dec.BitDepth)
	if err := supportedBitDepth(bits); err != nil {
		return nil, err
	}

	numChans := int(dec.NumChans)
	if numChans <= 0 {
		return nil, ErrNoChannels
	}

	frames := len(buf.Data) / numChans
	a := &Audio{
		SampleRate: int(dec.SampleRate),
		BitDepth:   bits,
		Channels:   make([][]float64, numChans),
	}

	scale := 1 / fullScale(bits)
	for c := range a.Channels {
		ch := core.EnsureLen[float64](nil, frames)
		for i := range ch {
			ch[i] = float64(buf.Data[i*numChans+c]) * scale
		}
		a.Channels[c] = ch
	}

	return a, nil
}

// Write encodes a as PCM WAV at a.BitDepth. Samples are clipped to the
// representable range.
func Write(w io.WriteSeeker, a *Audio) error {
	if len(a.Channels) == 0 {
		return ErrNoChannels
	}
	if err := supportedBitDepth(a.BitDepth); err != nil {
		return err
	}

	frames := a.Frames()
	for c, ch := range a.Channels {
		if len(ch) != frames {
			return fmt.Errorf("%w: channel %d has %d frames, want %d", ErrChannelLength, c, len(ch), frames)
		}
	}

	numChans := len(a.Channels)
	scale := fullScale(a.BitDepth)
	maxInt := scale - 1

	data := make([]int, frames*numChans)
	for c, ch := range a.Channels {
		for i, x := range ch {
			v := math.Round(core.Clamp(x, -1, 1) * scale)
			data[i*numChans+c] = int(core.Clamp(v, -scale, maxInt))
		}
	}

	enc := wav.NewEncoder(w, a.SampleRate, a.BitDepth, numChans, pcmFormat)
	buf := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: numChans,
			SampleRate:  a.SampleRate,
		},
		Data:           data,
		SourceBitDepth: a.BitDepth,
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("wavio: encoding PCM data: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("wavio: finalizing WAV header: %w", err)
	}
	return nil
}
