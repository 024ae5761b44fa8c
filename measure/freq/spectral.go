package freq

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
	"github.com/cwbudde/algo-waveform/dsp/core"
	"github.com/cwbudde/algo-waveform/dsp/interp"
	"github.com/cwbudde/algo-waveform/dsp/resample"
	"github.com/cwbudde/algo-waveform/dsp/spectrum"
	"github.com/cwbudde/algo-waveform/dsp/window"
	"gonum.org/v1/gonum/stat"
)

// kaiserBeta gives sidelobes far below any harmonic of interest.
const kaiserBeta = 100

// maxHarmonic is the highest decimation factor of the harmonic product
// spectrum.
const maxHarmonic = 8

// FFT estimates frequency from the largest peak of the Kaiser-windowed
// magnitude spectrum, refined by parabolic interpolation on the log
// magnitude. The mean is not removed first: a strong DC offset wins the
// argmax and the call fails with ErrNoPeak.
func FFT(signal []float64, sampleRate float64) (float64, error) {
	if err := validate(signal, sampleRate); err != nil {
		return 0, err
	}

	logMag, err := windowedLogSpectrum(signal)
	if err != nil {
		return 0, err
	}

	peak, err := interp.Parabolic(logMag, float64(spectrum.ArgMax(logMag)))
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrNoPeak, err)
	}

	return spectrum.BinFrequency(peak.Position, len(signal), sampleRate), nil
}

// HPS estimates frequency with a harmonic product spectrum. The log
// magnitude spectrum of the DC-free, Kaiser-windowed signal has its mean
// removed; zero-phase decimated copies for factors 2..8 are then added onto
// it, so that the k-th harmonic lands on the fundamental bin. The peak is
// searched in the range covered by all copies and refined parabolically.
func HPS(signal []float64, sampleRate float64) (float64, error) {
	if err := validate(signal, sampleRate); err != nil {
		return 0, err
	}

	logMag, err := windowedLogSpectrum(core.RemoveDC(signal))
	if err != nil {
		return 0, err
	}

	mean := stat.Mean(logMag, nil)
	for i := range logMag {
		logMag[i] -= mean
	}

	hps := core.Clone(logMag)
	valid := len(hps)
	for h := 2; h <= maxHarmonic; h++ {
		dec, err := resample.Decimate(logMag, h)
		if err != nil {
			return 0, fmt.Errorf("%w: decimating spectrum by %d: %w", ErrInvalidArgument, h, err)
		}
		vecmath.AddBlockInPlace(hps[:len(dec)], dec)
		valid = len(dec)
	}

	peak, err := interp.Parabolic(hps, float64(spectrum.ArgMax(hps[:valid])))
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrNoPeak, err)
	}

	return spectrum.BinFrequency(peak.Position, len(signal), sampleRate), nil
}

// windowedLogSpectrum returns ln|X[k]| of the Kaiser-windowed signal.
// Empty bins would turn the log spectrum into -Inf and are rejected.
func windowedLogSpectrum(signal []float64) ([]float64, error) {
	coeffs, err := window.Kaiser(len(signal), kaiserBeta)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	windowed, err := window.ApplyCoefficients(signal, coeffs)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	logMag := spectrum.LogMagnitude(spectrum.RealFFT(windowed))
	for k, v := range logMag {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return nil, fmt.Errorf("%w: bin %d of the spectrum is empty", ErrNoPeak, k)
		}
	}

	return logMag, nil
}
