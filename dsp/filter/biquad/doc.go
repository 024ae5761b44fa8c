// Package biquad provides the second-order-section runtime used by the
// discretized weighting and decimation filters.
//
// A [Section] runs Direct Form II Transposed over a single section defined
// by [Coefficients]. A [Chain] cascades sections in series, which is how a
// cascaded-biquad (SOS) filter is evaluated, both sample by sample and
// as a frequency response.
//
// Coefficient design lives elsewhere: dsp/filter/bilinear converts analog
// prototypes into sections, and dsp/filter/weighting wraps the result.
package biquad
