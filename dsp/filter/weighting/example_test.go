package weighting_test

import (
	"fmt"

	"github.com/cwbudde/algo-waveform/dsp/filter/weighting"
)

func ExampleNew() {
	chain, err := weighting.New(weighting.TypeA, 48000)
	if err != nil {
		fmt.Println(err)
		return
	}

	for _, freq := range []float64{100, 1000, 4000, 10000} {
		fmt.Printf("%6.0f Hz: %+.1f dB\n", freq, chain.MagnitudeDB(freq, 48000))
	}
	// Output:
	//    100 Hz: -19.1 dB
	//   1000 Hz: +0.0 dB
	//   4000 Hz: +0.9 dB
	//  10000 Hz: -3.7 dB
}

func ExamplePrototype() {
	p, err := weighting.Prototype(weighting.TypeITU468)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("poles: %d, zeros: %d\n", len(p.Poles), len(p.Zeros))
	fmt.Printf("6300 Hz: %+.2f dB\n", p.MagnitudeDB(6300))
	// Output:
	// poles: 6, zeros: 1
	// 6300 Hz: +12.20 dB
}
