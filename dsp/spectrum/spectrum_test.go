package spectrum

import (
	"math"
	"math/cmplx"
	"testing"
)

func TestMagnitudeAndPower(t *testing.T) {
	in := []complex128{3 + 4i, -1, 0}

	mag := Magnitude(in)
	pow := Power(in)
	want := []float64{5, 1, 0}

	for i := range in {
		if math.Abs(mag[i]-want[i]) > 1e-12 {
			t.Fatalf("mag[%d] = %v, want %v", i, mag[i], want[i])
		}
		if math.Abs(pow[i]-want[i]*want[i]) > 1e-12 {
			t.Fatalf("pow[%d] = %v, want %v", i, pow[i], want[i]*want[i])
		}
	}

	if Magnitude(nil) != nil || Power(nil) != nil {
		t.Fatal("expected nil for empty input")
	}
}

func TestLogMagnitude(t *testing.T) {
	got := LogMagnitude([]complex128{complex(math.E, 0), 0})
	if math.Abs(got[0]-1) > 1e-12 {
		t.Fatalf("log|e| = %v, want 1", got[0])
	}
	if !math.IsInf(got[1], -1) {
		t.Fatalf("log|0| = %v, want -Inf", got[1])
	}
}

func TestArgMax(t *testing.T) {
	tests := []struct {
		in   []float64
		want int
	}{
		{in: nil, want: -1},
		{in: []float64{1}, want: 0},
		{in: []float64{1, 3, 2}, want: 1},
		{in: []float64{5, 1, 5}, want: 0},
	}

	for _, tt := range tests {
		if got := ArgMax(tt.in); got != tt.want {
			t.Fatalf("ArgMax(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestNextPowerOf2(t *testing.T) {
	tests := map[int]int{0: 1, 1: 1, 2: 2, 3: 4, 1000: 1024, 100000: 131072}
	for in, want := range tests {
		if got := NextPowerOf2(in); got != want {
			t.Fatalf("NextPowerOf2(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestRealFFTLength(t *testing.T) {
	for _, n := range []int{1, 7, 8, 100, 441} {
		x := make([]float64, n)
		if got := len(RealFFT(x)); got != n/2+1 {
			t.Fatalf("len(RealFFT(%d)) = %d, want %d", n, got, n/2+1)
		}
	}
	if RealFFT(nil) != nil {
		t.Fatal("expected nil for empty input")
	}
}

func TestRealFFTCosinePeak(t *testing.T) {
	const n = 100
	x := make([]float64, n)
	for i := range x {
		x[i] = math.Cos(2 * math.Pi * 7 * float64(i) / n)
	}

	bins := RealFFT(x)
	if k := ArgMax(Magnitude(bins)); k != 7 {
		t.Fatalf("peak bin = %d, want 7", k)
	}
	if math.Abs(cmplx.Abs(bins[7])-n/2) > 1e-9 {
		t.Fatalf("|X[7]| = %v, want %v", cmplx.Abs(bins[7]), n/2)
	}
}

func TestBinFrequency(t *testing.T) {
	if got := BinFrequency(10.5, 48000, 48000); got != 10.5 {
		t.Fatalf("BinFrequency = %v, want 10.5", got)
	}
}
