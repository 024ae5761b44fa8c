package level_test

import (
	"fmt"

	"github.com/cwbudde/algo-waveform/dsp/core"
	"github.com/cwbudde/algo-waveform/dsp/signal"
	"github.com/cwbudde/algo-waveform/measure/level"
)

func ExampleAnalyze() {
	g := signal.NewGenerator(core.WithSampleRate(48000))
	x, err := g.Sine(1000, 1, 48000)
	if err != nil {
		panic(err)
	}

	p, err := level.Analyze(signal.Offset(x, 0.01), 48000)
	if err != nil {
		panic(err)
	}

	fmt.Printf("DC offset: %.3f\n", p.DCOffset)
	fmt.Printf("RMS: %.2f dBFS\n", p.RMSdB())
	fmt.Printf("Crest factor: %.2f dB\n", p.CrestFactordB())
	fmt.Printf("A-weighted: %.1f dBFS(A)\n", p.WeightedAdB())

	// Output:
	// DC offset: 0.010
	// RMS: -3.01 dBFS
	// Crest factor: 3.01 dB
	// A-weighted: -3.0 dBFS(A)
}
