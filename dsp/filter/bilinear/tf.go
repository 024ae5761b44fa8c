package bilinear

import (
	"github.com/cwbudde/algo-waveform/internal/polyroot"
)

// TF is a digital filter as a ratio of polynomials in z^-1:
//
//	H(z) = (B[0] + B[1]z^-1 + ...) / (A[0] + A[1]z^-1 + ...)
//
// Transfer functions of high order lose precision quickly; prefer SOS for
// filtering.
type TF struct {
	B, A       []float64
	SampleRate float64
}

// Form returns FormTF.
func (t TF) Form() Form { return FormTF }

// Response returns H(e^jw) at freqHz.
func (t TF) Response(freqHz float64) complex128 {
	// Evaluate both polynomials in z^-1 via Horner on the reversed
	// coefficient order.
	x := 1 / unitPhasor(freqHz, t.SampleRate)
	return polyroot.RealPolyEval(reversed(t.B), x) / polyroot.RealPolyEval(reversed(t.A), x)
}

// MagnitudeDB returns 20·log10|H| at freqHz.
func (t TF) MagnitudeDB(freqHz float64) float64 {
	return magnitudeDB(t.Response(freqHz))
}

// Filter applies the difference equation in transposed direct form II,
// normalized by A[0], starting from zero state.
func (t TF) Filter(signal []float64) []float64 {
	out := make([]float64, len(signal))
	if len(t.A) == 0 || t.A[0] == 0 {
		return out
	}

	n := max(len(t.A), len(t.B))
	b := make([]float64, n)
	a := make([]float64, n)
	for i, v := range t.B {
		b[i] = v / t.A[0]
	}
	for i, v := range t.A {
		a[i] = v / t.A[0]
	}

	state := make([]float64, n)
	for i, x := range signal {
		y := b[0]*x + state[0]
		// state[n-1] stays zero and terminates the delay line.
		for k := 1; k < n; k++ {
			state[k-1] = b[k]*x - a[k]*y + state[k]
		}
		out[i] = y
	}

	return out
}

func reversed(x []float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[len(x)-1-i] = v
	}

	return out
}
