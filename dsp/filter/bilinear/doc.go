// Package bilinear discretizes analog prototypes with the bilinear
// transform and represents the result in one of three equivalent forms.
//
//   - [TF]: numerator and denominator polynomials in z^-1.
//   - [ZPK]: z-plane zeros, poles and a scalar gain.
//   - [SOS]: a cascade of second-order sections, which is the numerically
//     robust form and the one used for filtering.
//
// Each analog root s maps to (2fs + s)/(2fs - s). No frequency pre-warping
// is applied, so the digital response at f equals the analog response at
// fs/π·tan(π·f/fs).
package bilinear
