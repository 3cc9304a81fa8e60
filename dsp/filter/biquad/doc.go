// Package biquad designs and runs second-order IIR (biquad) filters.
//
// [Coefficients] derives the six transfer function coefficients of one of
// nine cookbook responses ([FilterType]) from a sample rate, a frequency, a
// gain in dB and a Q factor using the bilinear transform. The design math
// always runs in float64 and is narrowed to the storage precision F at the
// end.
//
// [Filter] owns one coefficient set plus the Direct Form I history (two
// inputs, two outputs) and processes samples one at a time with
// [Filter.Tick] or in blocks with [Filter.Process]. Re-designing a running
// filter keeps its history, so a live stream can be re-tuned without a
// reset.
//
// Two properties are deliberate and callers relying on cookbook behaviour
// must account for them:
//
//   - alpha is computed as sin(w0)/2*q, i.e. Q scales the bandwidth term
//     instead of dividing it.
//   - A0 is stored as designed and Tick never divides by it. Use
//     [Coefficients.Normalized] to obtain a set with A0 == 1. Raw sets can
//     describe an unstable recursion; check [Coefficients.Stable].
//   - Narrowing to float32 does not saturate. A finite coefficient that
//     overflows float32 makes Design fail with [ErrFatal] instead of
//     storing ±Inf.
//
// A Filter is not safe for concurrent use.
package biquad
