package conv

// Correlate computes the full cross-correlation of a and b.
// The result has length len(a) + len(b) - 1; output index k holds
// lag k - (len(b) - 1).
func Correlate(a, b []float64) ([]float64, error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, ErrEmptyInput
	}

	return Convolve(a, reversed(b))
}

// AutoCorrelate computes the full auto-correlation of a. The result has
// length 2*len(a) - 1 and is symmetric around index len(a) - 1 (lag zero).
// Inputs up to the direct-path threshold are correlated in the time domain.
func AutoCorrelate(a []float64) ([]float64, error) {
	return Correlate(a, a)
}

// AutoCorrelateLags returns the auto-correlation of a for lags 0..len(a)-1.
func AutoCorrelateLags(a []float64) ([]float64, error) {
	full, err := AutoCorrelate(a)
	if err != nil {
		return nil, err
	}

	return full[len(a)-1:], nil
}

func reversed(x []float64) []float64 {
	out := make([]float64, len(x))
	for i := range x {
		out[i] = x[len(x)-1-i]
	}
	return out
}
