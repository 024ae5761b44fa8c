package freq

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cwbudde/algo-waveform/dsp/core"
)

var (
	// ErrInvalidArgument reports an empty or non-finite signal, a bad sample
	// rate or an unknown option value.
	ErrInvalidArgument = errors.New("freq: invalid argument")
	// ErrNoCrossings is returned when the signal has fewer than two rising
	// zero crossings.
	ErrNoCrossings = errors.New("freq: fewer than two rising zero crossings")
	// ErrNoPeriod is returned when the autocorrelation shows no repetition.
	ErrNoPeriod = errors.New("freq: no repetition found in autocorrelation")
	// ErrNoPeak is returned when no interior spectral peak can be refined.
	ErrNoPeak = errors.New("freq: no refinable spectral peak")
)

// Method selects a frequency estimator.
type Method int

const (
	MethodFFT Method = iota
	MethodCrossings
	MethodAutocorr
	MethodHPS
)

// String returns the method name as accepted by [ParseMethod].
func (m Method) String() string {
	switch m {
	case MethodFFT:
		return "fft"
	case MethodCrossings:
		return "crossings"
	case MethodAutocorr:
		return "autocorr"
	case MethodHPS:
		return "hps"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// Methods lists all estimators in their declaration order.
func Methods() []Method {
	return []Method{MethodFFT, MethodCrossings, MethodAutocorr, MethodHPS}
}

// ParseMethod maps "fft", "crossings", "autocorr" and "hps"
// (case-insensitive) to a Method.
func ParseMethod(s string) (Method, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, m := range Methods() {
		if m.String() == name {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown method %q", ErrInvalidArgument, s)
}

// Estimate runs the estimator selected by m. Options only affect
// [MethodCrossings]; the other estimators ignore them.
func Estimate(m Method, signal []float64, sampleRate float64, opts ...Option) (float64, error) {
	switch m {
	case MethodFFT:
		return FFT(signal, sampleRate)
	case MethodCrossings:
		return Crossings(signal, sampleRate, opts...)
	case MethodAutocorr:
		return Autocorr(signal, sampleRate)
	case MethodHPS:
		return HPS(signal, sampleRate)
	default:
		return 0, fmt.Errorf("%w: unknown method %v", ErrInvalidArgument, m)
	}
}

func validate(signal []float64, sampleRate float64) error {
	if len(signal) == 0 {
		return fmt.Errorf("%w: empty signal", ErrInvalidArgument)
	}
	if !core.AllFinite(signal) {
		return fmt.Errorf("%w: signal contains NaN or Inf", ErrInvalidArgument)
	}
	if !core.IsValidSampleRate(sampleRate) {
		return fmt.Errorf("%w: sample rate must be positive and finite: %v", ErrInvalidArgument, sampleRate)
	}
	return nil
}
