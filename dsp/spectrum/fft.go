package spectrum

import (
	"github.com/mjibson/go-dsp/fft"
)

// RealFFT returns the non-negative frequency half of the DFT of x: N/2+1
// bins for N samples. Any length is accepted; bin k is at k*fs/N.
func RealFFT(x []float64) []complex128 {
	if len(x) == 0 {
		return nil
	}
	full := fft.FFTReal(x)
	return full[:len(x)/2+1]
}

// BinFrequency converts a (possibly fractional) bin index of an N-point
// transform to Hz.
func BinFrequency(bin float64, n int, sampleRate float64) float64 {
	return sampleRate * bin / float64(n)
}
