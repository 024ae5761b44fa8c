package analog

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-waveform/internal/polyroot"
)

// ErrInvalidArgument reports an unusable prototype or design parameter.
var ErrInvalidArgument = errors.New("analog: invalid argument")

// Prototype is an analog filter
//
//	H(s) = Gain * Π(s - Zeros[i]) / Π(s - Poles[j])
//
// Poles and zeros are real or come in conjugate pairs. Methods never modify
// the receiver.
type Prototype struct {
	Zeros []complex128
	Poles []complex128
	Gain  float64
}

// Clone returns a deep copy of p.
func (p Prototype) Clone() Prototype {
	return Prototype{
		Zeros: append([]complex128(nil), p.Zeros...),
		Poles: append([]complex128(nil), p.Poles...),
		Gain:  p.Gain,
	}
}

// Order returns the number of poles.
func (p Prototype) Order() int {
	return len(p.Poles)
}

// Validate checks that the gain is finite and non-zero, that every root is
// finite and that complex roots come in conjugate pairs.
func (p Prototype) Validate() error {
	if p.Gain == 0 || math.IsNaN(p.Gain) || math.IsInf(p.Gain, 0) {
		return fmt.Errorf("%w: gain %v", ErrInvalidArgument, p.Gain)
	}

	for _, roots := range [][]complex128{p.Zeros, p.Poles} {
		for _, r := range roots {
			if cmplx.IsNaN(r) || cmplx.IsInf(r) {
				return fmt.Errorf("%w: non-finite root %v", ErrInvalidArgument, r)
			}
		}

		if _, _, err := polyroot.SplitConjugates(roots); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
		}
	}

	return nil
}

// Eval returns H(s) at the complex frequency s (rad/s).
func (p Prototype) Eval(s complex128) complex128 {
	return complex(p.Gain, 0) * polyroot.RootProduct(p.Zeros, s) / polyroot.RootProduct(p.Poles, s)
}

// Response returns H(j·2π·freqHz).
func (p Prototype) Response(freqHz float64) complex128 {
	return p.Eval(complex(0, 2*math.Pi*freqHz))
}

// MagnitudeDB returns 20·log10|H| at freqHz.
func (p Prototype) MagnitudeDB(freqHz float64) float64 {
	return 20 * math.Log10(cmplx.Abs(p.Response(freqHz)))
}

// Normalize returns a copy of p whose gain is rescaled so that the magnitude
// at freqHz equals gainDB.
func (p Prototype) Normalize(freqHz, gainDB float64) (Prototype, error) {
	if freqHz < 0 || math.IsNaN(freqHz) || math.IsInf(freqHz, 0) {
		return Prototype{}, fmt.Errorf("%w: reference frequency %v", ErrInvalidArgument, freqHz)
	}

	mag := cmplx.Abs(p.Response(freqHz))
	if mag == 0 || math.IsNaN(mag) || math.IsInf(mag, 0) {
		return Prototype{}, fmt.Errorf("%w: response at %v Hz is %v", ErrInvalidArgument, freqHz, mag)
	}

	out := p.Clone()
	out.Gain *= math.Pow(10, gainDB/20) / mag

	return out, nil
}

// LowpassScale moves the cutoff of a normalized low-pass prototype from
// 1 rad/s to wo rad/s.
func (p Prototype) LowpassScale(wo float64) (Prototype, error) {
	if wo <= 0 || math.IsNaN(wo) || math.IsInf(wo, 0) {
		return Prototype{}, fmt.Errorf("%w: cutoff %v rad/s", ErrInvalidArgument, wo)
	}

	out := p.Clone()
	w := complex(wo, 0)
	for i := range out.Zeros {
		out.Zeros[i] *= w
	}
	for i := range out.Poles {
		out.Poles[i] *= w
	}

	out.Gain *= math.Pow(wo, float64(len(p.Poles)-len(p.Zeros)))

	return out, nil
}
