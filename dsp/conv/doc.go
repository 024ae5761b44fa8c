// Package conv provides linear convolution and correlation routines.
//
// Short inputs are convolved directly in the time domain; longer ones go
// through a zero-padded power-of-two FFT. Correlation is convolution with the
// time-reversed second input, and autocorrelation correlates a signal with
// itself:
//
//	corr, err := conv.Correlate(signal, template)
//	lags, err := conv.AutoCorrelateLags(signal) // lags 0..N-1
package conv
