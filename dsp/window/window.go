package window

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Type identifies a window function.
type Type int

const (
	TypeRectangular Type = iota
	TypeHann
	TypeBlackman
	TypeKaiser
	TypeFlatTop
	TypeFreeCosine
)

// String returns the window name.
func (t Type) String() string {
	switch t {
	case TypeRectangular:
		return "Rectangular"
	case TypeHann:
		return "Hann"
	case TypeBlackman:
		return "Blackman"
	case TypeKaiser:
		return "Kaiser"
	case TypeFlatTop:
		return "FlatTop"
	case TypeFreeCosine:
		return "FreeCosine"
	default:
		return "Unknown"
	}
}

// Option configures window generation.
type Option func(*config)

type config struct {
	alpha        float64
	periodic     bool
	flatTop      string
	customCoeffs []float64
}

func defaultConfig() config {
	return config{
		alpha:   1,
		flatTop: FlatTopHFT248D,
	}
}

// WithAlpha configures the shape parameter of parametric windows (Kaiser beta).
func WithAlpha(v float64) Option {
	return func(c *config) {
		if v >= 0 {
			c.alpha = v
		}
	}
}

// WithPeriodic configures periodic form (FFT framing) instead of symmetric form.
func WithPeriodic() Option {
	return func(c *config) {
		c.periodic = true
	}
}

// WithFlatTop selects the flat-top variant used by TypeFlatTop.
// Unknown names are ignored; see FlatTopNames.
func WithFlatTop(name string) Option {
	return func(c *config) {
		if _, ok := flatTops[name]; ok {
			c.flatTop = name
		}
	}
}

// WithCustomCoeffs sets cosine-term coefficients for FreeCosine. The terms
// alternate in sign: w = a0 - a1*cos(2πx) + a2*cos(4πx) - ...
func WithCustomCoeffs(coeffs []float64) Option {
	copyCoeffs := append([]float64(nil), coeffs...)

	return func(c *config) {
		c.customCoeffs = copyCoeffs
	}
}

// Generate returns window coefficients of the given length.
func Generate(t Type, length int, opts ...Option) []float64 {
	if length <= 0 {
		return nil
	}

	cfg := defaultConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	var coeffs []float64
	switch t {
	case TypeHann:
		coeffs = hannCoeffs
	case TypeBlackman:
		coeffs = blackmanCoeffs
	case TypeFlatTop:
		coeffs = flatTops[cfg.flatTop]
	case TypeFreeCosine:
		coeffs = cfg.customCoeffs
	}

	var i0Beta float64
	if t == TypeKaiser {
		i0Beta = besselI0(cfg.alpha)
	}

	out := make([]float64, length)
	for i := range out {
		x := samplePosition(i, length, cfg.periodic)
		switch t {
		case TypeKaiser:
			out[i] = kaiserAt(x, cfg.alpha, i0Beta)
		case TypeHann, TypeBlackman, TypeFlatTop, TypeFreeCosine:
			if len(coeffs) == 0 {
				out[i] = 1
				continue
			}
			out[i] = cosineSum(x, coeffs)
		default:
			out[i] = 1
		}
	}

	return out
}

// Apply multiplies buf in-place by the selected window.
func Apply(t Type, buf []float64, opts ...Option) {
	if len(buf) == 0 {
		return
	}

	coeffs := Generate(t, len(buf), opts...)
	vecmath.MulBlockInPlace(buf, coeffs)
}

// Hann returns Hann window coefficients.
func Hann(size int, opts ...Option) ([]float64, error) {
	return Generate(TypeHann, size, opts...), validateLength(size)
}

// FlatTop returns flat-top window coefficients (HFT248D unless WithFlatTop
// selects another variant).
func FlatTop(size int, opts ...Option) ([]float64, error) {
	return Generate(TypeFlatTop, size, opts...), validateLength(size)
}

// Kaiser returns Kaiser window coefficients.
func Kaiser(size int, beta float64, opts ...Option) ([]float64, error) {
	if size <= 0 || beta < 0 {
		return nil, validateKaiser(size, beta)
	}

	return Generate(TypeKaiser, size, append(opts, WithAlpha(beta))...), nil
}

// ApplyCoefficients multiplies samples with coefficients and returns a new slice.
func ApplyCoefficients(samples, coeffs []float64) ([]float64, error) {
	if len(samples) != len(coeffs) {
		return nil, errMismatchedLength
	}

	out := make([]float64, len(samples))
	vecmath.MulBlock(out, samples, coeffs)

	return out, nil
}

// CoherentGain returns the mean of the window coefficients, the factor by
// which a windowed sinusoid's spectral peak is scaled.
func CoherentGain(coeffs []float64) (float64, error) {
	if len(coeffs) == 0 {
		return 0, errEmptyCoeffs
	}

	return vecmath.Sum(coeffs) / float64(len(coeffs)), nil
}

var (
	hannCoeffs     = []float64{0.5, 0.5}
	blackmanCoeffs = []float64{0.42, 0.5, 0.08}
)

// cosineSum evaluates sum_k (-1)^k a_k cos(2πkx).
func cosineSum(x float64, coeffs []float64) float64 {
	phase := 2 * math.Pi * x

	sum := 0.0
	sign := 1.0
	for k, c := range coeffs {
		sum += sign * c * math.Cos(float64(k)*phase)
		sign = -sign
	}

	return sum
}

func samplePosition(n, size int, periodic bool) float64 {
	if size <= 1 {
		return 0.5
	}

	den := float64(size - 1)
	if periodic {
		den = float64(size)
	}

	return float64(n) / den
}

func kaiserAt(x, beta, i0Beta float64) float64 {
	if beta <= 0 {
		return 1
	}

	r := 2*x - 1
	term := math.Sqrt(math.Max(0, 1-r*r))

	return besselI0(beta*term) / i0Beta
}

// besselI0 evaluates the modified Bessel function of order zero by its power
// series. The series converges for all x; it is accurate to double precision
// for the shape parameters used here (beta up to a few hundred).
func besselI0(x float64) float64 {
	h := x * x / 4
	sum := 1.0
	term := 1.0
	for k := 1; k < 1000; k++ {
		term *= h / float64(k*k)
		sum += term
		if term < sum*1e-17 {
			break
		}
	}
	return sum
}
