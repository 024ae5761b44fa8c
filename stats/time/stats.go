package time

import (
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-waveform/dsp/core"
)

// Stats holds the time-domain level statistics of one channel.
type Stats struct {
	Length      int
	DC          float64 // mean
	RMS         float64
	Peak        float64 // max |x|
	PeakPos     int
	CrestFactor float64 // peak / RMS (linear), 0 for a silent signal
	RisingEdges int
}

// RMSdB returns RMS in dB relative to full scale (1.0).
func (s Stats) RMSdB() float64 { return ampTodB(s.RMS) }

// PeakdB returns Peak in dB relative to full scale.
func (s Stats) PeakdB() float64 { return ampTodB(s.Peak) }

// CrestFactordB returns the crest factor in dB, -Inf for silence.
func (s Stats) CrestFactordB() float64 { return ampTodB(s.CrestFactor) }

// DCdB returns the magnitude of the DC offset in dB.
func (s Stats) DCdB() float64 { return ampTodB(s.DC) }

// ampTodB converts an amplitude value to decibels: 20 * log10(|value|).
// Returns -Inf for zero values.
func ampTodB(value float64) float64 {
	a := math.Abs(value)
	if a == 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(a)
}

// Calculate computes all statistics of signal. The signal is not modified;
// DC is reported but not removed before RMS and peak are measured.
func Calculate(signal []float64) Stats {
	n := len(signal)
	if n == 0 {
		return Stats{}
	}

	peak, pos := 0.0, 0
	for i, x := range signal {
		if a := math.Abs(x); a > peak {
			peak, pos = a, i
		}
	}

	rms := RMS(signal)

	var crest float64
	if rms > 0 {
		crest = peak / rms
	}

	return Stats{
		Length:      n,
		DC:          DC(signal),
		RMS:         rms,
		Peak:        peak,
		PeakPos:     pos,
		CrestFactor: crest,
		RisingEdges: len(RisingEdges(signal)),
	}
}

// RMS returns the root-mean-square of the signal.
func RMS(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}

	return math.Sqrt(vecmath.DotProduct(signal, signal) / float64(len(signal)))
}

// DC returns the mean (DC offset) of the signal. It is the same mean that
// core.RemoveDC subtracts.
func DC(signal []float64) float64 {
	return core.Mean(signal)
}

// Peak returns the peak absolute amplitude of the signal.
func Peak(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}

	return vecmath.MaxAbs(signal)
}

// CrestFactor returns the crest factor (peak / RMS) of the signal.
// Returns 0 if RMS is zero.
func CrestFactor(signal []float64) float64 {
	r := RMS(signal)
	if r == 0 {
		return 0
	}

	return Peak(signal) / r
}

// RisingEdges returns every index i where signal[i] < 0 and
// signal[i+1] >= 0. A sample sitting exactly on zero counts as the
// non-negative side, so a sine starting at 0 yields no edge at index 0.
func RisingEdges(signal []float64) []int {
	var edges []int

	for i := 0; i+1 < len(signal); i++ {
		if signal[i] < 0 && signal[i+1] >= 0 {
			edges = append(edges, i)
		}
	}

	return edges
}
