// Package signal generates deterministic test signals for the analyzers:
// pure and harmonic-rich periodic waveforms, seeded noise, and helpers to
// mix and scale them.
package signal

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/cwbudde/algo-vecmath"
	"github.com/cwbudde/algo-waveform/dsp/core"
)

// ErrInvalidArgument reports a non-positive length, a negative amplitude or a
// frequency the generator cannot represent.
var ErrInvalidArgument = errors.New("signal: invalid argument")

// Generator creates deterministic signals from a shared configuration.
type Generator struct {
	cfg  core.ProcessorConfig
	seed int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets deterministic random seed for noise generation.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a configured signal generator.
func NewGenerator(opts ...core.ProcessorOption) *Generator {
	return NewGeneratorWithOptions(opts)
}

// NewGeneratorWithOptions creates a configured signal generator with signal-specific options.
func NewGeneratorWithOptions(coreOpts []core.ProcessorOption, opts ...Option) *Generator {
	g := &Generator{
		cfg:  core.ApplyProcessorOptions(coreOpts...),
		seed: 1,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Config returns the generator processor configuration.
func (g *Generator) Config() core.ProcessorConfig {
	return g.cfg
}

// SampleRate returns the configured sample rate in Hz.
func (g *Generator) SampleRate() float64 {
	return g.cfg.SampleRate
}

// Samples returns the number of samples covering the given duration in
// seconds, rounded down.
func (g *Generator) Samples(seconds float64) int {
	return int(seconds * g.cfg.SampleRate)
}

func (g *Generator) check(kind string, freqHz float64, samples int) error {
	if samples <= 0 {
		return fmt.Errorf("%w: %s samples must be > 0: %d", ErrInvalidArgument, kind, samples)
	}
	if !core.IsValidSampleRate(g.cfg.SampleRate) {
		return fmt.Errorf("%w: %s sample rate must be > 0: %f", ErrInvalidArgument, kind, g.cfg.SampleRate)
	}
	if math.IsNaN(freqHz) || math.IsInf(freqHz, 0) || freqHz < 0 {
		return fmt.Errorf("%w: %s frequency must be finite and >= 0: %f", ErrInvalidArgument, kind, freqHz)
	}
	return nil
}

// Sine generates amplitude·sin(2π·f·n/fs) for n = 0..samples-1.
func (g *Generator) Sine(freqHz, amplitude float64, samples int) ([]float64, error) {
	if err := g.check("sine", freqHz, samples); err != nil {
		return nil, err
	}
	out := make([]float64, samples)
	for i := range out {
		t := float64(i) / g.cfg.SampleRate
		out[i] = amplitude * math.Sin(2*math.Pi*freqHz*t)
	}
	return out, nil
}

// Harmonics generates a sum of sines at integer multiples of f0.
// amplitudes[0] is the fundamental, amplitudes[k] the (k+1)th harmonic.
// Harmonics at or above Nyquist are rejected.
func (g *Generator) Harmonics(f0 float64, amplitudes []float64, samples int) ([]float64, error) {
	if err := g.check("harmonics", f0, samples); err != nil {
		return nil, err
	}
	if len(amplitudes) == 0 {
		return nil, fmt.Errorf("%w: harmonics need at least one amplitude", ErrInvalidArgument)
	}
	if top := f0 * float64(len(amplitudes)); top >= g.cfg.SampleRate/2 {
		return nil, fmt.Errorf("%w: harmonic %d at %.1f Hz exceeds Nyquist", ErrInvalidArgument, len(amplitudes), top)
	}

	out := make([]float64, samples)
	partial := make([]float64, samples)
	for k, a := range amplitudes {
		if a == 0 {
			continue
		}
		f := f0 * float64(k+1)
		for i := range partial {
			t := float64(i) / g.cfg.SampleRate
			partial[i] = math.Sin(2 * math.Pi * f * t)
		}
		vecmath.ScaleBlockInPlace(partial, a)
		vecmath.AddBlockInPlace(out, partial)
	}
	return out, nil
}

// Sawtooth generates a rising sawtooth in [-amplitude, amplitude), starting
// at -amplitude. It is rich in harmonics (1/k amplitude law).
func (g *Generator) Sawtooth(freqHz, amplitude float64, samples int) ([]float64, error) {
	if err := g.check("sawtooth", freqHz, samples); err != nil {
		return nil, err
	}
	out := make([]float64, samples)
	for i := range out {
		phase := freqHz * float64(i) / g.cfg.SampleRate
		out[i] = amplitude * (2*(phase-math.Floor(phase)) - 1)
	}
	return out, nil
}

// Square generates a square wave with the given duty cycle in (0, 1),
// +amplitude for the first part of each period and -amplitude after.
func (g *Generator) Square(freqHz, amplitude, duty float64, samples int) ([]float64, error) {
	if err := g.check("square", freqHz, samples); err != nil {
		return nil, err
	}
	if !(duty > 0 && duty < 1) {
		return nil, fmt.Errorf("%w: square duty must be in (0, 1): %f", ErrInvalidArgument, duty)
	}
	out := make([]float64, samples)
	for i := range out {
		phase := freqHz * float64(i) / g.cfg.SampleRate
		if phase-math.Floor(phase) < duty {
			out[i] = amplitude
		} else {
			out[i] = -amplitude
		}
	}
	return out, nil
}

// WhiteNoise generates deterministic white noise in [-amplitude, amplitude].
func (g *Generator) WhiteNoise(amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("%w: noise samples must be > 0: %d", ErrInvalidArgument, samples)
	}
	if amplitude < 0 {
		return nil, fmt.Errorf("%w: noise amplitude must be >= 0: %f", ErrInvalidArgument, amplitude)
	}
	out := make([]float64, samples)
	rng := rand.New(rand.NewSource(g.seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out, nil
}

// Mix adds the inputs sample by sample. All inputs must have equal length.
func Mix(signals ...[]float64) ([]float64, error) {
	if len(signals) == 0 {
		return nil, fmt.Errorf("%w: mix needs at least one signal", ErrInvalidArgument)
	}
	n := len(signals[0])
	out := make([]float64, n)
	for i, s := range signals {
		if len(s) != n {
			return nil, fmt.Errorf("%w: mix input %d has length %d, want %d", ErrInvalidArgument, i, len(s), n)
		}
		vecmath.AddBlockInPlace(out, s)
	}
	return out, nil
}

// Offset returns a copy of data with dc added to every sample.
func Offset(data []float64, dc float64) []float64 {
	out := make([]float64, len(data))
	for i, v := range data {
		out[i] = v + dc
	}
	return out
}

// Normalize scales data to target peak amplitude and returns a new slice.
func Normalize(data []float64, targetPeak float64) ([]float64, error) {
	if targetPeak < 0 {
		return nil, fmt.Errorf("%w: normalize target peak must be >= 0: %f", ErrInvalidArgument, targetPeak)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: normalize input must not be empty", ErrInvalidArgument)
	}

	out := make([]float64, len(data))
	maxAbs := vecmath.MaxAbs(data)
	if maxAbs == 0 || targetPeak == 0 {
		return out, nil
	}

	vecmath.ScaleBlock(out, data, targetPeak/maxAbs)
	return out, nil
}
