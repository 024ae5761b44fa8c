package thd

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-waveform/dsp/core"
	"github.com/cwbudde/algo-waveform/dsp/interp"
	"github.com/cwbudde/algo-waveform/dsp/spectrum"
	"github.com/cwbudde/algo-waveform/dsp/window"
	timestats "github.com/cwbudde/algo-waveform/stats/time"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
)

// notchWidth is the relative half-width of the band removed around the
// fundamental before the residual is measured.
const notchWidth = 0.1

// THD measures the fundamental and the harmonics that fit below Nyquist.
// The fundamental amplitude is the magnitude of the largest bin; harmonic
// h is read at h times that bin. Harmonic energy combines as the root sum
// of squares.
func (a *Analyzer) THD(signal []float64) (Result, error) {
	if err := validate(signal); err != nil {
		return Result{}, err
	}

	windowed, err := flatTop(core.RemoveDC(signal))
	if err != nil {
		return Result{}, err
	}

	mag := spectrum.Magnitude(spectrum.RealFFT(windowed))
	peak, err := refinePeak(mag)
	if err != nil {
		return Result{}, err
	}

	fs := a.cfg.SampleRate
	f0 := spectrum.BinFrequency(peak.Position, len(windowed), fs)
	fund := mag[peak.Index]

	a.log.Debug("fundamental",
		zap.Float64("frequency_hz", f0),
		zap.Float64("amplitude", fund),
		zap.Int("bin", peak.Index),
	)

	count := int(math.Floor((fs / 2) / f0))
	harmonics := make([]Harmonic, 0, max(count-1, 0))
	var all, odd, even []float64

	for h := 2; h <= count; h++ {
		bin := peak.Index * h
		if bin >= len(mag) {
			break
		}

		hm := Harmonic{Order: h, Frequency: float64(h) * f0, Amplitude: mag[bin]}
		harmonics = append(harmonics, hm)
		all = append(all, hm.Amplitude)
		if h%2 == 0 {
			even = append(even, hm.Amplitude)
		} else {
			odd = append(odd, hm.Amplitude)
		}

		a.log.Debug("harmonic",
			zap.Int("order", h),
			zap.Float64("frequency_hz", hm.Frequency),
			zap.Float64("amplitude", hm.Amplitude),
			zap.Float64("relative_db", ratioToDB(hm.Amplitude/fund)),
		)
	}

	energy := rss(all)

	denom := fund
	if a.cfg.Reference == ReferenceRMS {
		denom = math.Hypot(fund, energy)
	}

	res := Result{
		Ratio:                energy / denom,
		FundamentalFrequency: f0,
		FundamentalAmplitude: fund,
		Harmonics:            harmonics,
		Reference:            a.cfg.Reference,
		OddRatio:             rss(odd) / denom,
		EvenRatio:            rss(even) / denom,
	}

	a.log.Debug("thd",
		zap.Stringer("reference", res.Reference),
		zap.Float64("ratio", res.Ratio),
		zap.Int("harmonics", len(harmonics)),
	)

	return res, nil
}

// THDN measures THD+N(R): the RMS of everything outside a ±10% band around
// the fundamental, relative to the RMS of the whole windowed signal. The
// windowed signal is zero padded to a power of two for the transform.
func (a *Analyzer) THDN(signal []float64) (float64, error) {
	if err := validate(signal); err != nil {
		return 0, err
	}

	windowed, err := flatTop(core.RemoveDC(signal))
	if err != nil {
		return 0, err
	}

	n := spectrum.NextPowerOf2(len(windowed))
	padded := core.ZeroPad(windowed, n)

	total := timestats.RMS(padded)
	if total == 0 {
		return 0, fmt.Errorf("%w: signal is silent", ErrNoFundamental)
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return 0, fmt.Errorf("thd: failed to create FFT plan: %w", err)
	}

	buf := make([]complex128, n)
	for i, v := range padded {
		buf[i] = complex(v, 0)
	}
	spec := make([]complex128, n)
	if err := plan.Forward(spec, buf); err != nil {
		return 0, fmt.Errorf("thd: forward FFT failed: %w", err)
	}

	half := n/2 + 1
	peak, err := refinePeak(spectrum.Magnitude(spec[:half]))
	if err != nil {
		return 0, err
	}

	a.log.Debug("fundamental",
		zap.Float64("frequency_hz", spectrum.BinFrequency(peak.Position, n, a.cfg.SampleRate)),
		zap.Int("bin", peak.Index),
	)

	lo := int(peak.Position * (1 - notchWidth))
	hi := min(int(peak.Position*(1+notchWidth)), half)
	for k := lo; k < hi; k++ {
		spec[k] = 0
		if k > 0 {
			spec[(n-k)%n] = 0
		}
	}

	if err := plan.Inverse(buf, spec); err != nil {
		return 0, fmt.Errorf("thd: inverse FFT failed: %w", err)
	}

	residual := make([]float64, n)
	for i, c := range buf {
		residual[i] = real(c)
	}

	if a.weight != nil {
		residual = a.weight.Filter(residual)
	}

	ratio := timestats.RMS(residual) / total

	a.log.Debug("thd+n",
		zap.Stringer("weighting", a.cfg.Weighting),
		zap.Int("notch_lo", lo),
		zap.Int("notch_hi", hi),
		zap.Float64("ratio", ratio),
	)

	return ratio, nil
}

// flatTop applies the HFT248D flat-top window, whose passband ripple is
// low enough to read amplitudes straight off the spectrum.
func flatTop(x []float64) ([]float64, error) {
	coeffs, err := window.FlatTop(len(x), window.WithFlatTop(window.FlatTopHFT248D))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	return window.ApplyCoefficients(x, coeffs)
}

// refinePeak locates the largest bin and refines it on the log magnitude.
func refinePeak(mag []float64) (interp.Peak, error) {
	i := spectrum.ArgMax(mag)
	if i < 0 || mag[i] == 0 {
		return interp.Peak{}, fmt.Errorf("%w: spectrum is empty", ErrNoFundamental)
	}

	logMag := make([]float64, len(mag))
	for k, v := range mag {
		logMag[k] = math.Log(v)
	}

	peak, err := interp.Parabolic(logMag, float64(i))
	if err != nil {
		return interp.Peak{}, fmt.Errorf("%w: %w", ErrNoFundamental, err)
	}
	if math.IsNaN(peak.Position) || math.IsInf(peak.Position, 0) {
		return interp.Peak{}, fmt.Errorf("%w: peak at bin %d cannot be refined", ErrNoFundamental, i)
	}

	return peak, nil
}

// rss returns the root sum of squares, 0 for no values.
func rss(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	return floats.Norm(x, 2)
}
