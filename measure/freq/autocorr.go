package freq

import (
	"fmt"

	"github.com/cwbudde/algo-waveform/dsp/conv"
	"github.com/cwbudde/algo-waveform/dsp/core"
	"github.com/cwbudde/algo-waveform/dsp/interp"
	"github.com/cwbudde/algo-waveform/dsp/spectrum"
)

// Autocorr estimates frequency from the autocorrelation of the DC-free
// signal. The search skips the central lobe by starting at the first lag
// where the autocorrelation rises again, takes the largest value after it
// and refines that lag parabolically.
func Autocorr(signal []float64, sampleRate float64) (float64, error) {
	if err := validate(signal, sampleRate); err != nil {
		return 0, err
	}

	corr, err := conv.AutoCorrelateLags(core.RemoveDC(signal))
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	if corr[0] <= 0 {
		return 0, fmt.Errorf("%w: signal is silent after DC removal", ErrNoPeriod)
	}

	start := -1
	for i := 0; i+1 < len(corr); i++ {
		if corr[i+1]-corr[i] > 0 {
			start = i
			break
		}
	}
	if start < 0 {
		return 0, fmt.Errorf("%w: autocorrelation never rises", ErrNoPeriod)
	}

	lag := start + spectrum.ArgMax(corr[start:])

	peak, err := interp.Parabolic(corr, float64(lag))
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrNoPeriod, err)
	}
	if peak.Position <= 0 {
		return 0, fmt.Errorf("%w: refined lag %v", ErrNoPeriod, peak.Position)
	}

	return sampleRate / peak.Position, nil
}
