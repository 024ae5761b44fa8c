package interp

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrInvalidArgument is returned for indices that are not integral, lie
	// on the sequence edge, or windows that do not fit.
	ErrInvalidArgument = errors.New("interp: invalid argument")
	// ErrNoVertex is returned when the samples are collinear, so no
	// parabola vertex exists.
	ErrNoVertex = errors.New("interp: samples have no parabolic vertex")
)

// Peak is a refined local maximum: the discrete index it was found at, the
// interpolated position and the interpolated value there.
type Peak struct {
	Index    int
	Position float64
	Value    float64
}

// Offset returns the refined position relative to the discrete index.
func (p Peak) Offset() float64 {
	return p.Position - float64(p.Index)
}

// Parabolic fits a parabola through f[x-1], f[x], f[x+1] and returns its
// vertex. x is a sample index and must be integral; it is taken as float64
// so that an already interpolated position passed back by mistake is caught
// instead of silently truncated.
func Parabolic(f []float64, x float64) (Peak, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) || x != math.Trunc(x) {
		return Peak{}, fmt.Errorf("%w: x must be an integer sample index, got %v", ErrInvalidArgument, x)
	}

	i := int(x)
	if i < 1 || i > len(f)-2 {
		return Peak{}, fmt.Errorf("%w: index %d needs two neighbours in %d samples", ErrInvalidArgument, i, len(f))
	}

	return parabolic(f, i)
}

func parabolic(f []float64, i int) (Peak, error) {
	left, mid, right := f[i-1], f[i], f[i+1]

	den := left - 2*mid + right
	if den == 0 {
		return Peak{}, ErrNoVertex
	}

	xv := 0.5*(left-right)/den + float64(i)
	yv := mid - 0.25*(left-right)*(xv-float64(i))

	return Peak{Index: i, Position: xv, Value: yv}, nil
}

// ParabolicPolyfit fits a quadratic by least squares through the n samples
// f[x-n/2] .. f[x+n/2] and returns its vertex. n must be odd and at least 3.
// For n == 3 the result equals Parabolic.
func ParabolicPolyfit(f []float64, x, n int) (Peak, error) {
	if n < 3 || n%2 == 0 {
		return Peak{}, fmt.Errorf("%w: window length must be odd and >= 3, got %d", ErrInvalidArgument, n)
	}

	half := n / 2
	if x-half < 0 || x+half > len(f)-1 {
		return Peak{}, fmt.Errorf("%w: window of %d samples around index %d exceeds %d samples", ErrInvalidArgument, n, x, len(f))
	}

	// Fit y = a*u^2 + b*u + c with u = k - x, which keeps the normal
	// equations well conditioned for large indices.
	design := mat.NewDense(n, 3, nil)
	values := mat.NewVecDense(n, nil)
	for r := 0; r < n; r++ {
		u := float64(r - half)
		design.Set(r, 0, u*u)
		design.Set(r, 1, u)
		design.Set(r, 2, 1)
		values.SetVec(r, f[x-half+r])
	}

	var coef mat.VecDense
	if err := coef.SolveVec(design, values); err != nil {
		return Peak{}, fmt.Errorf("%w: %v", ErrNoVertex, err)
	}

	a, b, c := coef.AtVec(0), coef.AtVec(1), coef.AtVec(2)
	if a == 0 {
		return Peak{}, ErrNoVertex
	}

	u := -0.5 * b / a

	return Peak{
		Index:    x,
		Position: float64(x) + u,
		Value:    a*u*u + b*u + c,
	}, nil
}

// LinearZero returns the sub-sample position where the straight line through
// (i, s[i]) and (i+1, s[i+1]) crosses zero. The caller guarantees the two
// samples differ.
func LinearZero(s []float64, i int) float64 {
	return float64(i) - s[i]/(s[i+1]-s[i])
}
