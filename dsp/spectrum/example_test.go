package spectrum_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-waveform/dsp/spectrum"
)

func ExampleMagnitude() {
	bins := []complex128{1 + 0i, 0 + 1i, -1 + 0i}
	mag := spectrum.Magnitude(bins)
	fmt.Printf("%.1f %.1f %.1f\n", mag[0], mag[1], mag[2])
	// Output:
	// 1.0 1.0 1.0
}

func ExampleRealFFT() {
	x := make([]float64, 16)
	for i := range x {
		x[i] = math.Sin(2 * math.Pi * 3 * float64(i) / 16)
	}
	peak := spectrum.ArgMax(spectrum.Magnitude(spectrum.RealFFT(x)))
	fmt.Println(peak, spectrum.BinFrequency(float64(peak), len(x), 16000))
	// Output:
	// 3 3000
}
