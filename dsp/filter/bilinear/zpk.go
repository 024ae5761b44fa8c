package bilinear

import (
	"fmt"

	"github.com/cwbudde/algo-waveform/internal/polyroot"
)

// ZPK is a digital filter in zero/pole/gain form:
//
//	H(z) = Gain · Π(z - Zeros[i]) / Π(z - Poles[j])
type ZPK struct {
	Zeros      []complex128
	Poles      []complex128
	Gain       float64
	SampleRate float64
}

// Form returns FormZPK.
func (z ZPK) Form() Form { return FormZPK }

// Response returns H(e^jw) at freqHz.
func (z ZPK) Response(freqHz float64) complex128 {
	x := unitPhasor(freqHz, z.SampleRate)
	return complex(z.Gain, 0) * polyroot.RootProduct(z.Zeros, x) / polyroot.RootProduct(z.Poles, x)
}

// MagnitudeDB returns 20·log10|H| at freqHz.
func (z ZPK) MagnitudeDB(freqHz float64) float64 {
	return magnitudeDB(z.Response(freqHz))
}

// Filter runs the signal through the equivalent cascade of second-order
// sections. It panics if the roots are not real or conjugate-paired; filters
// returned by Transform always are.
func (z ZPK) Filter(signal []float64) []float64 {
	sos, err := z.SOS()
	if err != nil {
		panic(fmt.Sprintf("bilinear: ZPK.Filter: %v", err))
	}

	return sos.Filter(signal)
}

// TF expands the roots into numerator and denominator polynomials.
func (z ZPK) TF() (TF, error) {
	b, err := polyroot.RealPoly(z.Zeros)
	if err != nil {
		return TF{}, fmt.Errorf("%w: zeros: %w", ErrInvalidArgument, err)
	}

	a, err := polyroot.RealPoly(z.Poles)
	if err != nil {
		return TF{}, fmt.Errorf("%w: poles: %w", ErrInvalidArgument, err)
	}

	for i := range b {
		b[i] *= z.Gain
	}

	// The numerator may be shorter when there are fewer zeros than poles.
	// Both are polynomials in z; left-pad so they share the z^-1 indexing.
	if pad := len(a) - len(b); pad > 0 {
		b = append(make([]float64, pad), b...)
	}

	return TF{B: b, A: a, SampleRate: z.SampleRate}, nil
}
