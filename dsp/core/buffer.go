package core

import "gonum.org/v1/gonum/floats"

// Clone returns an owned copy of src. Analysis routines work on clones so
// callers' buffers are never modified.
func Clone(src []float64) []float64 {
	out := make([]float64, len(src))
	copy(out, src)
	return out
}

// ZeroPad returns a copy of src extended with zeros to length n.
// If n is not larger than len(src) the result is a plain copy.
func ZeroPad(src []float64, n int) []float64 {
	if n < len(src) {
		n = len(src)
	}
	out := make([]float64, n)
	copy(out, src)
	return out
}

// Mean returns the arithmetic mean of src, 0 for an empty slice. The sum is
// compensated so small offsets survive on long recordings.
func Mean(src []float64) float64 {
	if len(src) == 0 {
		return 0
	}
	return floats.SumCompensated(src) / float64(len(src))
}

// RemoveDC returns a copy of src with its Mean subtracted.
func RemoveDC(src []float64) []float64 {
	out := Clone(src)
	mean := Mean(out)
	for i := range out {
		out[i] -= mean
	}
	return out
}
