package frequency

import (
	"math"

	"github.com/cwbudde/algo-waveform/dsp/spectrum"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Stats holds frequency-domain statistics computed from a magnitude spectrum.
type Stats struct {
	BinCount int
	Peak     float64
	PeakBin  int
	Centroid float64 // Hz
	Flatness float64 // 0..1
}

// PeakFrequency returns the frequency of the peak bin for a one-sided
// spectrum at sampleRate.
func (s Stats) PeakFrequency(sampleRate float64) float64 {
	if s.BinCount < 2 {
		return 0
	}
	return binFreq(s.PeakBin, sampleRate, s.BinCount)
}

// binFreq returns the frequency in Hz of a given bin index.
// fftSize = 2 * (len(magnitude) - 1).
func binFreq(i int, sampleRate float64, binCount int) float64 {
	return float64(i) * sampleRate / float64(2*(binCount-1))
}

// Calculate computes the statistics of a one-sided magnitude spectrum
// (linear scale, bins 0..Nyquist). The frequency of bin i is:
//
//	f_i = i * sampleRate / (2 * (len(magnitude) - 1))
func Calculate(magnitude []float64, sampleRate float64) Stats {
	n := len(magnitude)
	if n == 0 {
		return Stats{}
	}

	peakBin := floats.MaxIdx(magnitude)

	return Stats{
		BinCount: n,
		Peak:     magnitude[peakBin],
		PeakBin:  peakBin,
		Centroid: Centroid(magnitude, sampleRate),
		Flatness: Flatness(magnitude),
	}
}

// CalculateFromComplex converts a complex spectrum to magnitude and
// delegates to [Calculate].
func CalculateFromComplex(spec []complex128, sampleRate float64) Stats {
	return Calculate(spectrum.Magnitude(spec), sampleRate)
}

// Centroid returns the spectral centroid in Hz.
//
//	centroid = sum(f_i * |X_i|) / sum(|X_i|)
func Centroid(magnitude []float64, sampleRate float64) float64 {
	n := len(magnitude)
	if n < 2 {
		return 0
	}

	sum := floats.Sum(magnitude)
	if sum == 0 {
		return 0
	}

	weightedSum := 0.0
	for i, v := range magnitude {
		weightedSum += binFreq(i, sampleRate, n) * v
	}

	return weightedSum / sum
}

// Flatness returns the spectral flatness of a magnitude spectrum: the
// geometric mean of all bins, DC included, over their arithmetic mean.
// The result is 1 for a perfectly flat spectrum and 0 when any bin is
// zero or the input is empty.
func Flatness(magnitude []float64) float64 {
	if len(magnitude) == 0 {
		return 0
	}

	for _, v := range magnitude {
		if v <= 0 || math.IsNaN(v) {
			return 0
		}
	}

	mean := stat.Mean(magnitude, nil)
	if math.IsInf(mean, 0) {
		return 0
	}

	return stat.GeometricMean(magnitude, nil) / mean
}
