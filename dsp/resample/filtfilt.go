package resample

import (
	"fmt"

	"github.com/cwbudde/algo-waveform/dsp/filter/biquad"
)

// PadLength returns the number of samples FiltFilt extends each edge by
// for the given cascade: three times the number of delay elements.
func PadLength(sections []biquad.Coefficients) int {
	zb, za := 0, 0
	for _, s := range sections {
		if s.B2 == 0 {
			zb++
		}
		if s.A2 == 0 {
			za++
		}
	}

	return 3 * (2*len(sections) + 1 - min(zb, za))
}

// FiltFilt runs the cascade forward and then backward over x, giving a
// zero-phase result with the squared magnitude response.
//
// Each edge is extended by PadLength samples of odd reflection about the
// edge value, and both passes start from the steady state for their first
// sample, which suppresses start-up transients. x must be longer than
// PadLength.
func FiltFilt(sections []biquad.Coefficients, x []float64) ([]float64, error) {
	pad := PadLength(sections)
	if len(x) <= pad {
		return nil, fmt.Errorf("%w: %d samples, need more than %d", ErrShortInput, len(x), pad)
	}

	ext := oddExtend(x, pad)
	chain := biquad.NewChain(sections)

	chain.SetSteadyState(ext[0])
	chain.ProcessBlock(ext)

	reverse(ext)
	chain.SetSteadyState(ext[0])
	chain.ProcessBlock(ext)
	reverse(ext)

	return ext[pad : pad+len(x)], nil
}

// oddExtend mirrors n samples at each edge through the edge value:
// x[0] - (x[k] - x[0]) on the left, likewise on the right.
func oddExtend(x []float64, n int) []float64 {
	last := len(x) - 1
	out := make([]float64, len(x)+2*n)

	for i := range n {
		out[i] = 2*x[0] - x[n-i]
		out[n+len(x)+i] = 2*x[last] - x[last-1-i]
	}
	copy(out[n:], x)

	return out
}

func reverse(x []float64) {
	for i, j := 0, len(x)-1; i < j; i, j = i+1, j-1 {
		x[i], x[j] = x[j], x[i]
	}
}
