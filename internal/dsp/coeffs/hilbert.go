package coeffs

import (
	"math"

	"github.com/jtarrio/signals/internal/dsp/fft"
)

// Hilbert returns a Hamming-windowed Hilbert-transform kernel of the given
// odd length. Even-indexed taps (relative to the center) are zero; odd
// taps are 2/(pi*k). A FIR filter built from this kernel applies a -pi/2
// phase shift to positive frequencies and +pi/2 to negative frequencies.
func Hilbert(length int) []float32 {
	if length%2 == 0 {
		panic("coeffs: kernel length must be odd")
	}
	win := fft.Hamming(length)
	center := length / 2
	out := make([]float32, length)
	for n := 0; n < length; n++ {
		k := n - center
		if k%2 == 0 {
			out[n] = 0
			continue
		}
		out[n] = float32(2/(math.Pi*float64(k))) * win[n]
	}
	return out
}
