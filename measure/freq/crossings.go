package freq

import (
	"fmt"
	"strings"

	"github.com/cwbudde/algo-waveform/dsp/interp"
	timestats "github.com/cwbudde/algo-waveform/stats/time"
)

// Interpolation selects how a zero crossing is located between samples.
type Interpolation int

const (
	// InterpLinear places the crossing where the line through the two
	// bracketing samples meets zero.
	InterpLinear Interpolation = iota
	// InterpNone uses the index of the last negative sample.
	InterpNone
)

// String returns the mode name as accepted by [ParseInterpolation].
func (i Interpolation) String() string {
	switch i {
	case InterpLinear:
		return "linear"
	case InterpNone:
		return "none"
	default:
		return fmt.Sprintf("Interpolation(%d)", int(i))
	}
}

// ParseInterpolation maps "linear" and "none" to an Interpolation.
func ParseInterpolation(s string) (Interpolation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "linear":
		return InterpLinear, nil
	case "none":
		return InterpNone, nil
	default:
		return 0, fmt.Errorf("%w: unknown interpolation %q", ErrInvalidArgument, s)
	}
}

type config struct {
	interp Interpolation
}

// Option configures [Crossings].
type Option func(*config)

// WithInterpolation selects the crossing refinement. Values other than
// InterpLinear and InterpNone make Crossings fail with ErrInvalidArgument.
func WithInterpolation(mode Interpolation) Option {
	return func(c *config) {
		c.interp = mode
	}
}

// Crossings estimates frequency from the spacing of rising zero crossings:
// positions i with signal[i] < 0 and signal[i+1] >= 0, optionally refined to
// sub-sample accuracy. The estimate is sampleRate over the mean crossing
// interval.
func Crossings(signal []float64, sampleRate float64, opts ...Option) (float64, error) {
	cfg := config{interp: InterpLinear}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.interp != InterpLinear && cfg.interp != InterpNone {
		return 0, fmt.Errorf("%w: unsupported interpolation %v", ErrInvalidArgument, cfg.interp)
	}
	if err := validate(signal, sampleRate); err != nil {
		return 0, err
	}

	edges := timestats.RisingEdges(signal)
	if len(edges) < 2 {
		return 0, fmt.Errorf("%w: found %d", ErrNoCrossings, len(edges))
	}

	position := func(i int) float64 {
		if cfg.interp == InterpNone {
			return float64(i)
		}
		return interp.LinearZero(signal, i)
	}

	// The mean of consecutive differences telescopes to the span over the
	// number of intervals.
	first, last := position(edges[0]), position(edges[len(edges)-1])
	period := (last - first) / float64(len(edges)-1)

	return sampleRate / period, nil
}
