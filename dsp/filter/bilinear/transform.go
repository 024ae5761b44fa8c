package bilinear

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-waveform/dsp/filter/analog"
)

// Transform maps an analog prototype into the z-plane at sampleRate.
//
// Digital zeros are padded with -1 (the image of s = ∞) up to the number of
// poles. The gain is chosen so that the digital response equals the analog
// one at the corresponding warped frequency:
//
//	k_d = k · Π(2fs - z) / Π(2fs - p)
func Transform(p analog.Prototype, sampleRate float64) (ZPK, error) {
	if !(sampleRate > 0) || math.IsInf(sampleRate, 0) {
		return ZPK{}, fmt.Errorf("%w: sample rate %v", ErrInvalidArgument, sampleRate)
	}
	if err := p.Validate(); err != nil {
		return ZPK{}, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	if len(p.Zeros) > len(p.Poles) {
		return ZPK{}, fmt.Errorf("%w: improper prototype with %d zeros and %d poles",
			ErrInvalidArgument, len(p.Zeros), len(p.Poles))
	}

	fs2 := complex(2*sampleRate, 0)

	num := complex(1, 0)
	zeros := make([]complex128, 0, len(p.Poles))
	for _, z := range p.Zeros {
		if z == fs2 {
			return ZPK{}, fmt.Errorf("%w: zero %v maps to infinity", ErrInvalidArgument, z)
		}
		zeros = append(zeros, (fs2+z)/(fs2-z))
		num *= fs2 - z
	}
	for len(zeros) < len(p.Poles) {
		zeros = append(zeros, -1)
	}

	den := complex(1, 0)
	poles := make([]complex128, 0, len(p.Poles))
	for _, s := range p.Poles {
		if s == fs2 {
			return ZPK{}, fmt.Errorf("%w: pole %v maps to infinity", ErrInvalidArgument, s)
		}
		poles = append(poles, (fs2+s)/(fs2-s))
		den *= fs2 - s
	}

	gain := p.Gain * real(num/den)
	if gain == 0 || math.IsNaN(gain) || math.IsInf(gain, 0) || cmplx.IsNaN(num/den) {
		return ZPK{}, fmt.Errorf("%w: degenerate digital gain %v", ErrInvalidArgument, gain)
	}

	return ZPK{
		Zeros:      zeros,
		Poles:      poles,
		Gain:       gain,
		SampleRate: sampleRate,
	}, nil
}

// Discretize applies Transform and converts the result to the requested
// form.
func Discretize(p analog.Prototype, sampleRate float64, form Form) (Filter, error) {
	if !form.valid() {
		return nil, fmt.Errorf("%w: unknown filter form %v", ErrInvalidArgument, form)
	}

	zpk, err := Transform(p, sampleRate)
	if err != nil {
		return nil, err
	}

	switch form {
	case FormTF:
		return zpk.TF()
	case FormSOS:
		return zpk.SOS()
	default:
		return zpk, nil
	}
}

// unitPhasor returns e^{jw} for freqHz at sampleRate.
func unitPhasor(freqHz, sampleRate float64) complex128 {
	return cmplx.Exp(complex(0, 2*math.Pi*freqHz/sampleRate))
}

func magnitudeDB(h complex128) float64 {
	return 20 * math.Log10(cmplx.Abs(h))
}
