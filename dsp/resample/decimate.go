package resample

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-waveform/dsp/filter/analog"
	"github.com/cwbudde/algo-waveform/dsp/filter/bilinear"
)

var (
	// ErrInvalidFactor indicates a decimation factor below 1.
	ErrInvalidFactor = errors.New("resample: invalid decimation factor")
	// ErrInvalidFilter indicates filter parameters that cannot be designed.
	ErrInvalidFilter = errors.New("resample: invalid filter parameters")
	// ErrShortInput indicates an input too short for the edge padding.
	ErrShortInput = errors.New("resample: input too short")
)

// Pass-band ripple in dB and cutoff relative to the output Nyquist
// frequency of the anti-aliasing filter.
const (
	rippleDB    = 0.05
	cutoffScale = 0.8
)

type config struct {
	order int
}

// Option configures the decimation filter.
type Option func(*config)

// WithOrder overrides the Chebyshev filter order (default 8).
func WithOrder(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.order = n
		}
	}
}

// DecimationFilter designs the anti-aliasing low-pass for factor q: a
// Chebyshev I filter with 0.05 dB ripple and its edge at 0.8/q of the input
// Nyquist frequency.
func DecimationFilter(q int, opts ...Option) (bilinear.SOS, error) {
	if q < 1 {
		return bilinear.SOS{}, fmt.Errorf("%w: %d", ErrInvalidFactor, q)
	}

	cfg := config{order: 8}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	proto, err := analog.Chebyshev1(cfg.order, rippleDB)
	if err != nil {
		return bilinear.SOS{}, fmt.Errorf("%w: %w", ErrInvalidFilter, err)
	}

	// Design at a nominal sample rate of 2 so the normalized cutoff wn
	// (1 = Nyquist) maps through the bilinear transform without extra
	// scaling; the analog edge is pre-warped to land exactly at wn.
	const fs = 2.0
	wn := cutoffScale / float64(q)
	warped := 2 * fs * math.Tan(math.Pi*wn/fs)

	proto, err = proto.LowpassScale(warped)
	if err != nil {
		return bilinear.SOS{}, fmt.Errorf("%w: %w", ErrInvalidFilter, err)
	}

	zpk, err := bilinear.Transform(proto, fs)
	if err != nil {
		return bilinear.SOS{}, fmt.Errorf("%w: %w", ErrInvalidFilter, err)
	}

	sos, err := zpk.SOS()
	if err != nil {
		return bilinear.SOS{}, fmt.Errorf("%w: %w", ErrInvalidFilter, err)
	}

	return sos, nil
}

// Decimate low-pass filters x with a zero-phase Chebyshev I filter and
// keeps every q-th sample, starting with the first. The result has
// ceil(len(x)/q) samples.
func Decimate(x []float64, q int, opts ...Option) ([]float64, error) {
	sos, err := DecimationFilter(q, opts...)
	if err != nil {
		return nil, err
	}

	y, err := FiltFilt(sos.Sections, x)
	if err != nil {
		return nil, err
	}

	out := make([]float64, 0, (len(y)+q-1)/q)
	for i := 0; i < len(y); i += q {
		out = append(out, y[i])
	}

	return out, nil
}
