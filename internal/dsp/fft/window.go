package fft

import "math"

// Blackman returns a length-n Blackman window, used by the spectrum
// receiver to taper its snapshot before transforming (spec §4.10).
func Blackman(n int) []float32 {
	w := make([]float32, n)
	if n == 1 {
		w[0] = 1
		return w
	}
	const a0, a1, a2 = 0.42, 0.5, 0.08
	m := float64(n - 1)
	for i := range w {
		x := 2 * math.Pi * float64(i) / m
		w[i] = float32(a0 - a1*math.Cos(x) + a2*math.Cos(2*x))
	}
	return w
}

// Hamming returns a length-n Hamming window, used to design the low-pass
// and Hilbert FIR kernels in package coeffs (spec §4.3).
func Hamming(n int) []float32 {
	w := make([]float32, n)
	if n == 1 {
		w[0] = 1
		return w
	}
	m := float64(n - 1)
	for i := range w {
		w[i] = float32(0.54 - 0.46*math.Cos(2*math.Pi*float64(i)/m))
	}
	return w
}
