package analog

import (
	"fmt"
	"math"
	"math/cmplx"
)

// Chebyshev1 returns the normalized Chebyshev Type I low-pass prototype of
// the given order with rippleDB of pass-band ripple. The pass band ends at
// 1 rad/s, where the magnitude is -rippleDB. Even orders start the ripple at
// -rippleDB at DC, odd orders at 0 dB.
func Chebyshev1(order int, rippleDB float64) (Prototype, error) {
	if order < 1 {
		return Prototype{}, fmt.Errorf("%w: order %d", ErrInvalidArgument, order)
	}
	if !(rippleDB > 0) || math.IsInf(rippleDB, 0) {
		return Prototype{}, fmt.Errorf("%w: ripple %v dB", ErrInvalidArgument, rippleDB)
	}

	eps := math.Sqrt(math.Pow(10, 0.1*rippleDB) - 1)
	mu := math.Asinh(1/eps) / float64(order)

	poles := make([]complex128, 0, order)
	for m := -order + 1; m < order; m += 2 {
		theta := math.Pi * float64(m) / float64(2*order)
		poles = append(poles, -cmplx.Sinh(complex(mu, theta)))
	}

	k := complex(1, 0)
	for _, p := range poles {
		k *= -p
	}

	gain := real(k)
	if order%2 == 0 {
		gain /= math.Sqrt(1 + eps*eps)
	}

	return Prototype{Poles: poles, Gain: gain}, nil
}
