package interp_test

import (
	"fmt"

	"github.com/cwbudde/algo-waveform/dsp/interp"
)

func ExampleParabolic() {
	f := []float64{2, 3, 1, 6, 4, 2, 3, 1}

	p, _ := interp.Parabolic(f, 3)
	fmt.Printf("%.6f %.6f\n", p.Position, p.Value)

	// Output:
	// 3.214286 6.160714
}
