// Package analog holds continuous-time filter prototypes in zero/pole/gain
// form.
//
// A [Prototype] is the starting point of every digital filter in this
// module: the weighting curves are defined as analog prototypes and
// normalized to their reference gain here before dsp/filter/bilinear maps
// them into the z-plane. [Chebyshev1] provides the normalized low-pass
// prototype used by the decimator in dsp/resample.
//
// Frequencies passed to [Prototype.Response] are in Hz; pole and zero
// locations are in rad/s.
package analog
