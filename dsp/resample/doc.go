// Package resample provides integer-factor decimation with a zero-phase IIR
// anti-aliasing filter.
//
// [Decimate] low-pass filters with a Chebyshev Type I design (order 8,
// 0.05 dB ripple, cutoff at 0.8 of the new Nyquist frequency by default),
// run forward and backward with [FiltFilt], then keeps every q-th sample.
// Forward-backward filtering doubles the attenuation and cancels the phase
// response, so spectral features keep their positions.
//
// Common workflows:
//   - Decimate(x, q, opts...)
//   - DecimationFilter(q, opts...) to inspect or reuse the sections
//   - FiltFilt(sections, x) for any second-order-section cascade
package resample
