package weighting

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/cwbudde/algo-waveform/dsp/core"
	"github.com/cwbudde/algo-waveform/dsp/filter/analog"
	"github.com/cwbudde/algo-waveform/dsp/filter/bilinear"
	"github.com/cwbudde/algo-waveform/dsp/filter/biquad"
)

// ErrInvalidArgument reports an unknown curve, sample rate or form.
var ErrInvalidArgument = errors.New("weighting: invalid argument")

// IEC 61672 analog pole frequencies (Hz).
const (
	f1 = 20.598997057568145 // double pole for A, B, C
	f2 = 107.65264864304628 // A only
	f3 = 737.8622307362899  // A only
	f4 = 12194.21714799801  // double pole for A, B, C
)

// fB is the single B-weighting pole, 10^2.2 Hz.
var fB = math.Pow(10, 2.2)

// ITU-R 468 analog poles (rad/s).
var itu468Poles = []complex128{
	complex(-25903.70104781628, 0),
	complex(-23615.53521363528, 36379.90893732929),
	complex(-23615.53521363528, -36379.90893732929),
	complex(-18743.74669072136, 62460.15645250649),
	complex(-18743.74669072136, -62460.15645250649),
	complex(-62675.1700584679, 0),
}

// Type identifies a frequency weighting curve.
type Type int

const (
	// TypeA is the A-weighting curve per IEC 61672.
	TypeA Type = iota

	// TypeB is the B-weighting curve.
	TypeB

	// TypeC is the C-weighting curve per IEC 61672.
	TypeC

	// TypeZ applies no weighting.
	TypeZ

	// TypeITU468 is the ITU-R BS.468-4 noise weighting curve.
	TypeITU468
)

// String returns a human-readable name for the weighting type.
func (t Type) String() string {
	switch t {
	case TypeA:
		return "A"
	case TypeB:
		return "B"
	case TypeC:
		return "C"
	case TypeZ:
		return "Z"
	case TypeITU468:
		return "ITU-R 468"
	default:
		return "Unknown"
	}
}

// ParseType maps a curve name to a Type. Accepted names are "A", "B", "C",
// "Z", "ITU-R 468", "ITU-R468" and "468", case-insensitive.
func ParseType(s string) (Type, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "A":
		return TypeA, nil
	case "B":
		return TypeB, nil
	case "C":
		return TypeC, nil
	case "Z":
		return TypeZ, nil
	case "ITU-R 468", "ITU-R468", "468":
		return TypeITU468, nil
	default:
		return 0, fmt.Errorf("%w: unknown weighting curve %q", ErrInvalidArgument, s)
	}
}

// Reference returns the frequency and gain the curve is normalized to.
func Reference(t Type) (freqHz, gainDB float64) {
	if t == TypeITU468 {
		return 6300, 12.2
	}

	return 1000, 0
}

// Prototype returns the normalized analog prototype for the curve.
func Prototype(t Type) (analog.Prototype, error) {
	var p analog.Prototype

	switch t {
	case TypeA:
		p = abcPrototype()
		p.Zeros = append(p.Zeros, 0, 0)
		p.Poles = append(p.Poles, hz(f2), hz(f3))
	case TypeB:
		p = abcPrototype()
		p.Zeros = append(p.Zeros, 0)
		p.Poles = append(p.Poles, hz(fB))
	case TypeC:
		p = abcPrototype()
	case TypeZ:
		return analog.Prototype{Gain: 1}, nil
	case TypeITU468:
		p = analog.Prototype{
			Zeros: []complex128{0},
			Poles: append([]complex128(nil), itu468Poles...),
			Gain:  1,
		}
	default:
		return analog.Prototype{}, fmt.Errorf("%w: unknown weighting curve %v", ErrInvalidArgument, int(t))
	}

	freq, gain := Reference(t)

	return p.Normalize(freq, gain)
}

// abcPrototype holds the part shared by A, B and C: two zeros at DC and
// double poles at f1 and f4.
func abcPrototype() analog.Prototype {
	return analog.Prototype{
		Zeros: []complex128{0, 0},
		Poles: []complex128{hz(f1), hz(f1), hz(f4), hz(f4)},
		Gain:  1,
	}
}

func hz(f float64) complex128 {
	return complex(-2*math.Pi*f, 0)
}

// Design discretizes the curve at sampleRate in the requested form.
func Design(t Type, sampleRate float64, form bilinear.Form) (bilinear.Filter, error) {
	if !core.IsValidSampleRate(sampleRate) {
		return nil, fmt.Errorf("%w: sample rate %v", ErrInvalidArgument, sampleRate)
	}

	p, err := Prototype(t)
	if err != nil {
		return nil, err
	}

	f, err := bilinear.Discretize(p, sampleRate, form)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	return f, nil
}

// New returns a [biquad.Chain] running the curve at sampleRate as a
// cascade of second-order sections.
func New(t Type, sampleRate float64) (*biquad.Chain, error) {
	f, err := Design(t, sampleRate, bilinear.FormSOS)
	if err != nil {
		return nil, err
	}

	return f.(bilinear.SOS).Chain(), nil
}

// MustNew is like New but panics on error. Intended for constant
// arguments.
func MustNew(t Type, sampleRate float64) *biquad.Chain {
	c, err := New(t, sampleRate)
	if err != nil {
		panic(err)
	}

	return c
}

// Weight returns a weighted copy of signal, filtered from zero state. The
// output has the same length as the input.
func Weight(signal []float64, sampleRate float64, t Type) ([]float64, error) {
	chain, err := New(t, sampleRate)
	if err != nil {
		return nil, err
	}

	if len(signal) == 0 {
		return []float64{}, nil
	}

	return chain.Filter(signal), nil
}
