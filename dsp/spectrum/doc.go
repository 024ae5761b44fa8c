// Package spectrum provides the spectrum-domain helpers shared by the
// frequency and distortion estimators: exact-length real transforms,
// magnitude and log-magnitude extraction, peak search and transform sizing.
package spectrum
