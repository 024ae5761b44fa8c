// Package polyroot provides polynomial expansion, evaluation and conjugate
// root bookkeeping shared by the filter design packages.
package polyroot

import (
	"errors"
	"math"
	"math/cmplx"
	"sort"
)

// ErrUnpairedRoot is returned when a complex root has no matching conjugate,
// which would produce a polynomial with complex coefficients.
var ErrUnpairedRoot = errors.New("polyroot: complex root without conjugate")

// ConjugateTol is the relative tolerance for conjugate pair matching.
const ConjugateTol = 1e-7

// Poly expands the monic polynomial with the given roots. Coefficients are in
// descending power order: out[0]*x^n + out[1]*x^(n-1) + ... + out[n].
func Poly(roots []complex128) []complex128 {
	out := make([]complex128, len(roots)+1)
	out[0] = 1
	for i, r := range roots {
		// Multiply by (x - r) in place, highest power first.
		for j := i + 1; j > 0; j-- {
			out[j] -= r * out[j-1]
		}
	}
	return out
}

// RealPoly expands the roots like Poly and returns the real coefficients.
// The roots must be real or form conjugate pairs.
func RealPoly(roots []complex128) ([]float64, error) {
	if _, _, err := SplitConjugates(roots); err != nil {
		return nil, err
	}

	c := Poly(roots)
	out := make([]float64, len(c))
	for i, v := range c {
		out[i] = real(v)
	}
	return out, nil
}

// PolyEval evaluates a polynomial at x using Horner's method. Coefficients
// are in descending power order: coeff[0]*x^n + ... + coeff[n].
func PolyEval(coeff []complex128, x complex128) complex128 {
	if len(coeff) == 0 {
		return 0
	}
	v := coeff[0]
	for i := 1; i < len(coeff); i++ {
		v = v*x + coeff[i]
	}

	return v
}

// RealPolyEval evaluates a real-coefficient polynomial (descending powers)
// at the complex point x.
func RealPolyEval(coeff []float64, x complex128) complex128 {
	if len(coeff) == 0 {
		return 0
	}
	v := complex(coeff[0], 0)
	for i := 1; i < len(coeff); i++ {
		v = v*x + complex(coeff[i], 0)
	}

	return v
}

// RootProduct returns the product of (x - r) over all roots.
func RootProduct(roots []complex128, x complex128) complex128 {
	p := complex(1, 0)
	for _, r := range roots {
		p *= x - r
	}
	return p
}

// IsConjugate checks whether a and b are complex conjugates within tolerance.
func IsConjugate(a, b complex128, tol float64) bool {
	if math.Abs(real(a)-real(b)) > tol*math.Max(1, math.Abs(real(a))) {
		return false
	}

	if math.Abs(imag(a)+imag(b)) > tol*math.Max(1, math.Abs(imag(a))) {
		return false
	}

	return true
}

// IsReal reports whether the imaginary part of r is negligible.
func IsReal(r complex128) bool {
	return math.Abs(imag(r)) <= ConjugateTol*math.Max(1, cmplx.Abs(r))
}

// SplitConjugates separates roots into complex roots with positive imaginary
// part (one per conjugate pair) and real roots. Real roots are returned with
// their imaginary part cleared. Both lists are sorted by real part.
func SplitConjugates(roots []complex128) (pairs, reals []complex128, err error) {
	used := make([]bool, len(roots))

	for i, r := range roots {
		if used[i] {
			continue
		}
		used[i] = true

		if IsReal(r) {
			reals = append(reals, complex(real(r), 0))
			continue
		}

		best := -1
		bestDist := math.MaxFloat64
		conj := cmplx.Conj(r)
		for j := i + 1; j < len(roots); j++ {
			if used[j] {
				continue
			}
			if d := cmplx.Abs(roots[j] - conj); d < bestDist {
				bestDist = d
				best = j
			}
		}

		if best == -1 || !IsConjugate(r, roots[best], ConjugateTol) {
			return nil, nil, ErrUnpairedRoot
		}
		used[best] = true

		if imag(r) < 0 {
			r = cmplx.Conj(r)
		}
		pairs = append(pairs, r)
	}

	sort.Slice(pairs, func(a, b int) bool { return real(pairs[a]) < real(pairs[b]) })
	sort.Slice(reals, func(a, b int) bool { return real(reals[a]) < real(reals[b]) })

	return pairs, reals, nil
}
