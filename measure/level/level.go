// Package level reports the level properties of a waveform: DC offset,
// RMS, peak and crest factor, the A- and ITU-R 468-weighted RMS, and the
// spectral flatness. dB figures are relative to a full-scale square wave
// (RMS 1.0).
package level

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-waveform/dsp/core"
	"github.com/cwbudde/algo-waveform/dsp/filter/weighting"
	"github.com/cwbudde/algo-waveform/dsp/spectrum"
	freqstats "github.com/cwbudde/algo-waveform/stats/frequency"
	timestats "github.com/cwbudde/algo-waveform/stats/time"
)

// ErrInvalidArgument reports an empty or non-finite signal or a bad sample
// rate.
var ErrInvalidArgument = errors.New("level: invalid argument")

// Properties holds the level measurements of one channel. Everything except
// DCOffset is measured after the DC offset has been removed.
type Properties struct {
	SampleRate  float64
	Samples     int
	DCOffset    float64
	RMS         float64
	Peak        float64 // sample peak, intersample peaks are not detected
	CrestFactor float64
	WeightedA   float64 // RMS after A-weighting
	Weighted468 float64 // RMS after ITU-R 468 weighting
	Flatness    float64 // spectral flatness of the magnitude spectrum
}

// Duration returns the signal length in seconds.
func (p Properties) Duration() float64 {
	if p.SampleRate <= 0 {
		return 0
	}
	return float64(p.Samples) / p.SampleRate
}

// RMSdB returns the RMS level in dBFS.
func (p Properties) RMSdB() float64 { return dB(p.RMS) }

// PeakdB returns the peak level in dBFS.
func (p Properties) PeakdB() float64 { return dB(p.Peak) }

// CrestFactordB returns the crest factor in dB.
func (p Properties) CrestFactordB() float64 { return dB(p.CrestFactor) }

// WeightedAdB returns the A-weighted level in dBFS(A).
func (p Properties) WeightedAdB() float64 { return dB(p.WeightedA) }

// Weighted468dB returns the 468-weighted level in dBFS(468).
func (p Properties) Weighted468dB() float64 { return dB(p.Weighted468) }

// GainA returns the A-weighted level relative to the unweighted RMS, in dB.
func (p Properties) GainA() float64 { return relative(p.WeightedA, p.RMS) }

// Gain468 returns the 468-weighted level relative to the unweighted RMS,
// in dB.
func (p Properties) Gain468() float64 { return relative(p.Weighted468, p.RMS) }

// Analyze measures the properties of signal sampled at sampleRate. The
// input is not modified.
func Analyze(signal []float64, sampleRate float64) (Properties, error) {
	if len(signal) == 0 {
		return Properties{}, fmt.Errorf("%w: empty signal", ErrInvalidArgument)
	}
	if !core.AllFinite(signal) {
		return Properties{}, fmt.Errorf("%w: signal contains NaN or Inf", ErrInvalidArgument)
	}
	if !core.IsValidSampleRate(sampleRate) {
		return Properties{}, fmt.Errorf("%w: sample rate must be positive and finite: %v", ErrInvalidArgument, sampleRate)
	}

	dc := timestats.DC(signal)
	ac := core.RemoveDC(signal)

	st := timestats.Calculate(ac)

	wa, err := weighting.Weight(ac, sampleRate, weighting.TypeA)
	if err != nil {
		return Properties{}, fmt.Errorf("level: A-weighting: %w", err)
	}
	w468, err := weighting.Weight(ac, sampleRate, weighting.TypeITU468)
	if err != nil {
		return Properties{}, fmt.Errorf("level: 468-weighting: %w", err)
	}

	return Properties{
		SampleRate:  sampleRate,
		Samples:     len(signal),
		DCOffset:    dc,
		RMS:         st.RMS,
		Peak:        st.Peak,
		CrestFactor: st.CrestFactor,
		WeightedA:   timestats.RMS(wa),
		Weighted468: timestats.RMS(w468),
		Flatness:    freqstats.Flatness(spectrum.Magnitude(spectrum.RealFFT(ac))),
	}, nil
}

func dB(v float64) float64 {
	return core.LinearToDB(math.Abs(v))
}

func relative(weighted, unweighted float64) float64 {
	if unweighted == 0 {
		return math.Inf(-1)
	}
	return dB(weighted / unweighted)
}
