// Package weighting provides the A, B, C, Z and ITU-R 468 frequency
// weighting filters.
//
// Weighting curves shape the magnitude response of a signal to approximate
// the frequency-dependent sensitivity of human hearing:
//
//   - A-weighting (6th order, IEC 61672): the 40-phon equal-loudness
//     contour. Most widely used for noise measurements.
//   - B-weighting (5th order): the 70-phon contour. Rarely used today.
//   - C-weighting (4th order): the 100-phon contour, used for peak levels.
//   - Z-weighting: unity gain, the flat reference of IEC 61672:2003.
//   - ITU-R BS.468-4: noise weighting for broadcast equipment, derived from
//     a passive network. Its poles are circuit constants, not corner
//     frequencies.
//
// Each curve is defined by an [analog.Prototype]. A, B and C are normalized
// to 0 dB at 1 kHz, ITU-R 468 to +12.2 dB at 6.3 kHz. [Design] discretizes
// the prototype with the bilinear transform in any [bilinear.Form]; [New]
// returns the second-order-section runtime and [Weight] filters a signal.
//
// The bilinear transform is used without pre-warping, so responses near
// Nyquist fall below the analog curve. Sample rates of 96 kHz and above keep
// the whole audio band within the standard tolerances; at 48 kHz the curves
// are accurate up to a few kHz.
package weighting
