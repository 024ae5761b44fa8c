// Package thd measures harmonic distortion of a single-tone signal.
//
// [Analyzer.THD] reads the fundamental and its harmonics straight off a
// flat-top windowed spectrum; harmonics are taken at exact multiples of the
// fundamental bin, so the tone should sit close to a bin centre.
// [Analyzer.THDN] notches ±10% around the fundamental and compares the
// residual RMS with the total RMS, which makes it a THD+N(R) figure that
// includes broadband noise.
//
// Both measurements remove DC and work on an owned copy of the input.
// Individual harmonics are reported on the configured zap logger at debug
// level; they are also part of the THD result.
package thd
