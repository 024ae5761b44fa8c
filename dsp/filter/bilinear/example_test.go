package bilinear_test

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-waveform/dsp/filter/analog"
	"github.com/cwbudde/algo-waveform/dsp/filter/bilinear"
)

func ExampleDiscretize() {
	// First-order low-pass at 1 kHz.
	wc := 2 * math.Pi * 1000
	p := analog.Prototype{Poles: []complex128{complex(-wc, 0)}, Gain: wc}

	f, err := bilinear.Discretize(p, 48000, bilinear.FormTF)
	if err != nil {
		fmt.Println(err)
		return
	}

	tf := f.(bilinear.TF)
	fmt.Printf("b = [%.5f %.5f]\n", tf.B[0], tf.B[1])
	fmt.Printf("a = [%.5f %.5f]\n", tf.A[0], tf.A[1])
	fmt.Printf("|H(0)| = %.4f\n", cmplx.Abs(f.Response(0)))
	// Output:
	// b = [0.06143 0.06143]
	// a = [1.00000 -0.87714]
	// |H(0)| = 1.0000
}
