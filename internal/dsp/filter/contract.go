// Package filter implements the real-sample filter family of spec §4.4:
// FIR (time-domain and FFT-overlap-save), one-pole and biquad IIR,
// a DC blocker, an AGC, a frequency shifter, pre/de-emphasis, and the
// pilot-tone detector. The real-sample filters satisfy Filter; the
// Shifter and the PilotDetector work on I/Q pairs and do not.
package filter

// Filter is the contract every filter in this package satisfies.
// InPlace must not change the length of buf. Clone returns a fresh filter
// with identical coefficients but cleared state. Delay reports the
// filter's group delay, in samples, at DC.
type Filter interface {
	InPlace(buf []float32)
	Clone() Filter
	Delay() int
}
