// Package freq estimates the fundamental frequency of a sampled signal.
//
// Four estimators are provided. They trade accuracy against robustness:
//
//   - [Crossings] counts rising zero crossings. Fast and very accurate on
//     long, clean signals with one crossing per cycle.
//   - [FFT] takes the peak of a Kaiser-windowed spectrum and refines it with
//     parabolic interpolation on the log magnitude. Fails when a harmonic is
//     stronger than the fundamental.
//   - [Autocorr] picks the first repetition peak of the autocorrelation.
//     Finds the period of any repeating waveform, even with a weak or
//     missing fundamental. The period search starts at the first rising
//     slope, so a period far from a whole number of samples can lose to a
//     multiple of it: a 3 kHz sine at 44.1 or 100 kHz reads as 1000 Hz.
//     Sawtooth waves do not work either.
//   - [HPS] sums decimated copies of the log spectrum (harmonic product
//     spectrum) so that the harmonics reinforce the fundamental. It needs
//     harmonics up to the eighth; pure sines are not supported, and once
//     the upper harmonics alias (3 kHz at 44.1 kHz) it can drop an octave.
//
// All estimators work on an owned copy of the input. [Estimate] dispatches
// on a [Method] value, for callers that select the estimator at run time.
package freq
