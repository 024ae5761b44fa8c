package bilinear

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-waveform/dsp/filter/biquad"
	"github.com/cwbudde/algo-waveform/internal/polyroot"
)

// SOS is a digital filter as a cascade of second-order sections. The
// overall gain lives in the first section's numerator.
type SOS struct {
	Sections   []biquad.Coefficients
	SampleRate float64
}

// Form returns FormSOS.
func (s SOS) Form() Form { return FormSOS }

// Response returns H(e^jw) at freqHz as the product of section responses.
func (s SOS) Response(freqHz float64) complex128 {
	h := complex(1, 0)
	for i := range s.Sections {
		h *= s.Sections[i].Response(freqHz, s.SampleRate)
	}

	return h
}

// MagnitudeDB returns 20·log10|H| at freqHz.
func (s SOS) MagnitudeDB(freqHz float64) float64 {
	return magnitudeDB(s.Response(freqHz))
}

// Filter returns a filtered copy of signal.
func (s SOS) Filter(signal []float64) []float64 {
	return s.Chain().Filter(signal)
}

// Chain returns a fresh biquad cascade running the sections.
func (s SOS) Chain() *biquad.Chain {
	return biquad.NewChain(s.Sections)
}

// SOS pairs the poles and zeros into real second-order sections.
//
// Poles are taken in order of proximity to the unit circle and matched with
// their nearest zeros. Conjugate poles stay together, a real pole is paired
// with the next real pole, and an odd count is completed with a root at the
// origin. Sections are returned with the poles nearest the unit circle last,
// which keeps intermediate signal levels bounded.
func (z ZPK) SOS() (SOS, error) {
	zeros := append([]complex128(nil), z.Zeros...)
	poles := append([]complex128(nil), z.Poles...)

	if len(zeros) > len(poles) {
		return SOS{}, fmt.Errorf("%w: %d zeros exceed %d poles", ErrInvalidArgument, len(zeros), len(poles))
	}
	for len(zeros) < len(poles) {
		zeros = append(zeros, 0)
	}

	if len(poles) == 0 {
		return SOS{
			Sections:   []biquad.Coefficients{{B0: z.Gain}},
			SampleRate: z.SampleRate,
		}, nil
	}

	if len(poles)%2 == 1 {
		poles = append(poles, 0)
		zeros = append(zeros, 0)
	}

	zp, zr, err := polyroot.SplitConjugates(zeros)
	if err != nil {
		return SOS{}, fmt.Errorf("%w: zeros: %w", ErrInvalidArgument, err)
	}
	pp, pr, err := polyroot.SplitConjugates(poles)
	if err != nil {
		return SOS{}, fmt.Errorf("%w: poles: %w", ErrInvalidArgument, err)
	}

	// One entry per conjugate pair (positive imaginary part) or real root.
	zs := append(zp, zr...)
	ps := append(pp, pr...)

	nSections := len(poles) / 2
	sections := make([]biquad.Coefficients, nSections)

	for si := range nSections {
		p1 := takeWorstPole(&ps)

		var sec biquad.Coefficients
		switch {
		case len(ps)+1 == len(zs) && !isReal(p1) && countReal(ps) == 1 && countReal(zs) == 1:
			// One real pole and one real zero must end up together, so this
			// pair has to take a complex zero.
			z1 := take(&zs, nearest(zs, p1, rootComplex))
			sec = section([]complex128{z1}, []complex128{p1})

		default:
			pair := []complex128{p1}
			if isReal(p1) {
				pair = append(pair, take(&ps, worstReal(ps)))
			}

			zpair := []complex128{}
			if len(zs) > 0 {
				z1 := take(&zs, nearest(zs, p1, rootAny))
				zpair = append(zpair, z1)
				if isReal(z1) && len(zs) > 0 {
					zpair = append(zpair, take(&zs, nearest(zs, p1, rootReal)))
				}
			}
			sec = section(zpair, pair)
		}

		sections[nSections-1-si] = sec
	}

	sections[0].B0 *= z.Gain
	sections[0].B1 *= z.Gain
	sections[0].B2 *= z.Gain

	return SOS{Sections: sections, SampleRate: z.SampleRate}, nil
}

type rootKind int

const (
	rootAny rootKind = iota
	rootReal
	rootComplex
)

func isReal(r complex128) bool { return imag(r) == 0 }

func countReal(roots []complex128) int {
	n := 0
	for _, r := range roots {
		if isReal(r) {
			n++
		}
	}

	return n
}

// takeWorstPole removes and returns the pole closest to the unit circle.
func takeWorstPole(ps *[]complex128) complex128 {
	best := 0
	bestDist := math.Inf(1)
	for i, p := range *ps {
		if d := math.Abs(1 - cmplx.Abs(p)); d < bestDist {
			best, bestDist = i, d
		}
	}

	return take(ps, best)
}

// worstReal returns the index of the real pole closest to the unit circle.
func worstReal(ps []complex128) int {
	best := -1
	bestDist := math.Inf(1)
	for i, p := range ps {
		if !isReal(p) {
			continue
		}
		if d := math.Abs(cmplx.Abs(p) - 1); d < bestDist {
			best, bestDist = i, d
		}
	}

	return best
}

// nearest returns the index of the root of the requested kind closest to
// target, or -1.
func nearest(roots []complex128, target complex128, kind rootKind) int {
	best := -1
	bestDist := math.Inf(1)
	for i, r := range roots {
		if kind == rootReal && !isReal(r) || kind == rootComplex && isReal(r) {
			continue
		}
		if d := cmplx.Abs(r - target); d < bestDist {
			best, bestDist = i, d
		}
	}

	return best
}

// take removes roots[i]. An index of -1 yields a root at the origin, which
// contributes only a delay.
func take(roots *[]complex128, i int) complex128 {
	if i < 0 {
		return 0
	}

	r := (*roots)[i]
	*roots = append((*roots)[:i], (*roots)[i+1:]...)

	return r
}

// section builds monic numerator and denominator from up to two roots each.
// A single complex root stands for its conjugate pair.
func section(zeros, poles []complex128) biquad.Coefficients {
	b := quadratic(zeros)
	a := quadratic(poles)

	return biquad.Coefficients{
		B0: b[0], B1: b[1], B2: b[2],
		A1: a[1], A2: a[2],
	}
}

func quadratic(roots []complex128) [3]float64 {
	switch {
	case len(roots) == 1 && !isReal(roots[0]):
		r := roots[0]
		return [3]float64{1, -2 * real(r), real(r)*real(r) + imag(r)*imag(r)}
	case len(roots) == 2:
		r1, r2 := real(roots[0]), real(roots[1])
		return [3]float64{1, -(r1 + r2), r1 * r2}
	case len(roots) == 1:
		return [3]float64{1, -real(roots[0]), 0}
	default:
		return [3]float64{1, 0, 0}
	}
}
