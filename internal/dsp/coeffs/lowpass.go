// Package coeffs computes filter coefficients: a windowed-sinc low-pass
// kernel, a Hilbert kernel, and the biquad/one-pole formulas used by the
// IIR filters in package filter (spec §4.3).
package coeffs

import (
	"math"

	"github.com/jtarrio/signals/internal/dsp/fft"
)

// LowPass returns a Hamming-windowed-sinc low-pass kernel of the given
// odd length, sampled at rate sampleRate with corner frequency cutoff,
// normalized to unit DC gain and then scaled by gain.
func LowPass(sampleRate, cutoff float64, length int, gain float64) []float32 {
	if length%2 == 0 {
		panic("coeffs: kernel length must be odd")
	}
	taps := make([]float64, length)
	m := float64(length-1) / 2
	fc := cutoff / sampleRate // normalized cutoff, cycles/sample
	for n := 0; n < length; n++ {
		x := float64(n) - m
		var s float64
		if x == 0 {
			s = 2 * fc
		} else {
			s = math.Sin(2*math.Pi*fc*x) / (math.Pi * x)
		}
		taps[n] = s
	}
	win := fft.Hamming(length)
	var sum float64
	for n := range taps {
		taps[n] *= float64(win[n])
		sum += taps[n]
	}
	out := make([]float32, length)
	for n := range taps {
		out[n] = float32(taps[n] / sum * gain)
	}
	return out
}
