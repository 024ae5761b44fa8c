// Package interp provides sub-sample peak and zero-crossing interpolation
// for discrete spectra and waveforms.
//
// Two interchangeable peak estimators are available:
//
//   - [Parabolic]: closed-form vertex of the parabola through a maximum and
//     its two neighbours. Exact for quadratic data and very accurate on
//     windowed log-magnitude spectra.
//   - [ParabolicPolyfit]: least-squares quadratic over n samples centred on
//     the maximum. Slower, less sensitive to noise.
//
// Both take the index of an approximate local maximum, typically from an
// argmax, and reject edge indices where one neighbour is missing.
package interp
