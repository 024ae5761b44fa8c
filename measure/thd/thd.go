package thd

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/cwbudde/algo-waveform/dsp/core"
	"github.com/cwbudde/algo-waveform/dsp/filter/bilinear"
	"github.com/cwbudde/algo-waveform/dsp/filter/weighting"
	"go.uber.org/zap"
)

var (
	// ErrInvalidArgument reports an empty or non-finite signal, a bad sample
	// rate or an unknown reference or weighting.
	ErrInvalidArgument = errors.New("thd: invalid argument")
	// ErrNoFundamental is returned for silent signals and for spectra whose
	// largest bin is DC or Nyquist.
	ErrNoFundamental = errors.New("thd: no fundamental found")
)

// Reference selects the denominator of the THD ratio.
type Reference int

const (
	// ReferenceFundamental divides the harmonic energy by the fundamental
	// amplitude, THD(F). It can exceed 100%.
	ReferenceFundamental Reference = iota
	// ReferenceRMS divides by the combined fundamental and harmonic energy,
	// THD(R). It stays below 100%.
	ReferenceRMS
)

// String returns "f" or "r".
func (r Reference) String() string {
	switch r {
	case ReferenceFundamental:
		return "f"
	case ReferenceRMS:
		return "r"
	default:
		return fmt.Sprintf("Reference(%d)", int(r))
	}
}

// ParseReference accepts "f" and "r" (case-insensitive).
func ParseReference(s string) (Reference, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "f":
		return ReferenceFundamental, nil
	case "r":
		return ReferenceRMS, nil
	default:
		return 0, fmt.Errorf("%w: unknown reference %q", ErrInvalidArgument, s)
	}
}

// Weighting selects the filter applied to the THD+N residual.
type Weighting int

const (
	WeightingNone Weighting = iota
	// WeightingA A-weights the residual, as used for dynamic range
	// measurements at -60 dBFS.
	WeightingA
)

// String returns "none" or "A".
func (w Weighting) String() string {
	switch w {
	case WeightingNone:
		return "none"
	case WeightingA:
		return "A"
	default:
		return fmt.Sprintf("Weighting(%d)", int(w))
	}
}

// ParseWeighting accepts "", "none" and "A" (case-insensitive).
func ParseWeighting(s string) (Weighting, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return WeightingNone, nil
	case "a":
		return WeightingA, nil
	default:
		return 0, fmt.Errorf("%w: unknown weighting %q", ErrInvalidArgument, s)
	}
}

// Config holds THD analysis parameters.
type Config struct {
	SampleRate float64
	Reference  Reference
	Weighting  Weighting
	// Logger receives per-harmonic debug output. Nil disables logging.
	Logger *zap.Logger
}

// Harmonic is one harmonic read off the spectrum.
type Harmonic struct {
	Order     int
	Frequency float64 // Hz
	Amplitude float64 // spectral magnitude, same scale as the fundamental
}

// Result holds a THD measurement.
type Result struct {
	Ratio                float64
	FundamentalFrequency float64
	FundamentalAmplitude float64
	Harmonics            []Harmonic
	Reference            Reference
	// OddRatio and EvenRatio split the harmonic energy by order parity,
	// with the same denominator as Ratio.
	OddRatio  float64
	EvenRatio float64
}

// RatioDB returns Ratio in dB.
func (r Result) RatioDB() float64 { return ratioToDB(r.Ratio) }

// Percent returns Ratio in percent.
func (r Result) Percent() float64 { return 100 * r.Ratio }

// Analyzer measures THD and THD+N at a fixed sample rate.
// It holds no per-call state and is safe for concurrent use.
type Analyzer struct {
	cfg    Config
	log    *zap.Logger
	weight bilinear.Filter
}

// NewAnalyzer validates cfg and prepares the residual weighting filter.
func NewAnalyzer(cfg Config) (*Analyzer, error) {
	if !core.IsValidSampleRate(cfg.SampleRate) {
		return nil, fmt.Errorf("%w: sample rate must be positive and finite: %v", ErrInvalidArgument, cfg.SampleRate)
	}
	if cfg.Reference != ReferenceFundamental && cfg.Reference != ReferenceRMS {
		return nil, fmt.Errorf("%w: unsupported reference %v", ErrInvalidArgument, cfg.Reference)
	}

	a := &Analyzer{cfg: cfg, log: cfg.Logger}
	if a.log == nil {
		a.log = zap.NewNop()
	}

	switch cfg.Weighting {
	case WeightingNone:
	case WeightingA:
		f, err := weighting.Design(weighting.TypeA, cfg.SampleRate, bilinear.FormSOS)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
		}
		a.weight = f
	default:
		return nil, fmt.Errorf("%w: unsupported weighting %v", ErrInvalidArgument, cfg.Weighting)
	}

	return a, nil
}

// Config returns the analyzer configuration.
func (a *Analyzer) Config() Config {
	return a.cfg
}

// THD measures total harmonic distortion with the configured reference.
func THD(signal []float64, sampleRate float64, ref Reference) (Result, error) {
	a, err := NewAnalyzer(Config{SampleRate: sampleRate, Reference: ref})
	if err != nil {
		return Result{}, err
	}
	return a.THD(signal)
}

// THDN measures THD+N relative to the total RMS, with an optional
// weighting of the residual.
func THDN(signal []float64, sampleRate float64, w Weighting) (float64, error) {
	a, err := NewAnalyzer(Config{SampleRate: sampleRate, Weighting: w})
	if err != nil {
		return 0, err
	}
	return a.THDN(signal)
}

func validate(signal []float64) error {
	if len(signal) < 3 {
		return fmt.Errorf("%w: need at least 3 samples, got %d", ErrInvalidArgument, len(signal))
	}
	if !core.AllFinite(signal) {
		return fmt.Errorf("%w: signal contains NaN or Inf", ErrInvalidArgument)
	}
	return nil
}

func ratioToDB(v float64) float64 {
	if v <= 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(v)
}
