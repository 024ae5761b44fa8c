// Command waveform measures audio files: fundamental frequency, THD, THD+N
// and level properties. It also prints the response of the weighting
// filters.
//
// Usage:
//
//	waveform freq [--method fft|crossings|autocorr|hps] file ...
//	waveform thd [--ref f|r] [--verbose] file ...
//	waveform thdn [--weighting none|A] file ...
//	waveform info file ...
//	waveform curve [--rate fs] [--form tf|zpk|sos] A|B|C|Z|468
//
// Stereo files with identical channels are analyzed once; otherwise each
// channel is reported separately.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "waveform:", err)
		os.Exit(1)
	}
}
