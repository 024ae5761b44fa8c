package interp

import (
	"errors"
	"math"
	"testing"
)

func TestParabolicReferenceCase(t *testing.T) {
	f := []float64{2, 3, 1, 6, 4, 2, 3, 1}

	p, err := Parabolic(f, 3)
	if err != nil {
		t.Fatal(err)
	}

	if math.Abs(p.Position-3.2142857142857144) > 1e-12 {
		t.Fatalf("position mismatch: got %.12f want %.12f", p.Position, 3.2142857142857144)
	}
	if math.Abs(p.Value-6.1607142857142856) > 1e-12 {
		t.Fatalf("value mismatch: got %.12f want %.12f", p.Value, 6.1607142857142856)
	}
	if p.Index != 3 {
		t.Fatalf("index = %d, want 3", p.Index)
	}
}

func TestPolyfitMatchesParabolic(t *testing.T) {
	f := []float64{2, 3, 1, 6, 4, 2, 3, 1}

	closed, err := Parabolic(f, 3)
	if err != nil {
		t.Fatal(err)
	}

	fit, err := ParabolicPolyfit(f, 3, 3)
	if err != nil {
		t.Fatal(err)
	}

	if math.Abs(closed.Position-fit.Position) > 1e-9 {
		t.Fatalf("position mismatch: closed %.12f polyfit %.12f", closed.Position, fit.Position)
	}
	if math.Abs(closed.Value-fit.Value) > 1e-9 {
		t.Fatalf("value mismatch: closed %.12f polyfit %.12f", closed.Value, fit.Value)
	}
}

func TestExactParabolaRecovered(t *testing.T) {
	const (
		vertexX = 40.37
		vertexY = 2.5
	)

	f := make([]float64, 80)
	for i := range f {
		d := float64(i) - vertexX
		f[i] = vertexY - 0.3*d*d
	}

	for _, n := range []int{3, 5, 7, 11} {
		p, err := ParabolicPolyfit(f, 40, n)
		if err != nil {
			t.Fatalf("n=%d: %v", n, err)
		}
		if math.Abs(p.Position-vertexX) > 1e-9 || math.Abs(p.Value-vertexY) > 1e-9 {
			t.Fatalf("n=%d: got (%.12f, %.12f) want (%v, %v)", n, p.Position, p.Value, vertexX, vertexY)
		}
	}

	p, err := Parabolic(f, 40)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(p.Position-vertexX) > 1e-9 || math.Abs(p.Value-vertexY) > 1e-9 {
		t.Fatalf("closed form: got (%.12f, %.12f) want (%v, %v)", p.Position, p.Value, vertexX, vertexY)
	}
	if math.Abs(p.Offset()-0.37) > 1e-9 {
		t.Fatalf("offset = %v, want 0.37", p.Offset())
	}
}

func TestParabolicRejectsInvalidIndex(t *testing.T) {
	f := []float64{2, 3, 1, 6, 4, 2, 3, 1}

	tests := []struct {
		name string
		x    float64
	}{
		{name: "fractional", x: 3.5},
		{name: "NaN", x: math.NaN()},
		{name: "left edge", x: 0},
		{name: "right edge", x: 7},
		{name: "negative", x: -2},
		{name: "past end", x: 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parabolic(f, tt.x); !errors.Is(err, ErrInvalidArgument) {
				t.Fatalf("error = %v, want ErrInvalidArgument", err)
			}
		})
	}
}

func TestParabolicPolyfitRejectsInvalidWindow(t *testing.T) {
	f := []float64{2, 3, 1, 6, 4, 2, 3, 1}

	tests := []struct {
		name string
		x, n int
	}{
		{name: "even length", x: 3, n: 4},
		{name: "too short", x: 3, n: 1},
		{name: "left overflow", x: 1, n: 5},
		{name: "right overflow", x: 6, n: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParabolicPolyfit(f, tt.x, tt.n); !errors.Is(err, ErrInvalidArgument) {
				t.Fatalf("error = %v, want ErrInvalidArgument", err)
			}
		})
	}
}

func TestCollinearSamplesHaveNoVertex(t *testing.T) {
	f := []float64{1, 2, 3, 4, 5}

	if _, err := Parabolic(f, 2); !errors.Is(err, ErrNoVertex) {
		t.Fatalf("Parabolic error = %v, want ErrNoVertex", err)
	}
}

func TestLinearZero(t *testing.T) {
	s := []float64{-1, 3}
	if got := LinearZero(s, 0); math.Abs(got-0.25) > 1e-15 {
		t.Fatalf("LinearZero = %v, want 0.25", got)
	}
}
