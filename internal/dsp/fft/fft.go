// Package fft implements the in-place radix-2 decimation-in-time complex
// FFT/IFFT used by the FFT-overlap-save filter and the spectrum receiver
// (spec §4.2). Twiddle factors and the bit-reversal permutation are
// precomputed once per transform length and cached on the Plan.
package fft

import (
	"math"
	"math/bits"
)

// NextPow2 rounds n up to the next power of two, with a floor of 4 (the
// smallest length a radix-2 FFT can usefully operate on here).
func NextPow2(n int) int {
	if n < 4 {
		return 4
	}
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// Plan holds the precomputed twiddle factors and bit-reversal permutation
// for transforms of a fixed length, plus an optional window buffer applied
// before a forward transform.
type Plan struct {
	n        int
	twiddles []complex128 // length n/2: e^(-j*2*pi*k/n), k = 0..n/2-1
	bitrev   []int
	window   []float32
}

// NewPlan creates a Plan for transforms of length n, which must already be
// a power of two (use NextPow2 to round up first). Minimum length is 4.
func NewPlan(n int) *Plan {
	if n < 4 || n&(n-1) != 0 {
		panic("fft: length must be a power of two, >= 4")
	}
	p := &Plan{n: n}
	p.twiddles = make([]complex128, n/2)
	for k := 0; k < n/2; k++ {
		theta := -2 * math.Pi * float64(k) / float64(n)
		p.twiddles[k] = complex(math.Cos(theta), math.Sin(theta))
	}
	bitsLen := bits.Len(uint(n)) - 1
	p.bitrev = make([]int, n)
	for i := range p.bitrev {
		p.bitrev[i] = int(bits.Reverse(uint(i)) >> (bits.UintSize - bitsLen))
	}
	return p
}

// Len returns the transform length.
func (p *Plan) Len() int { return p.n }

// SetWindow installs a pointwise window applied by ApplyWindow. Pass nil
// to clear it. The slice must be p.Len() long.
func (p *Plan) SetWindow(w []float32) {
	if w != nil && len(w) != p.n {
		panic("fft: window length must match plan length")
	}
	p.window = w
}

// ApplyWindow multiplies x pointwise by the installed window, if any.
func (p *Plan) ApplyWindow(x []complex64) {
	if p.window == nil {
		return
	}
	for i, w := range p.window {
		x[i] *= complex(w, 0)
	}
}

// Forward transforms x in place. The result is scaled by 1/N, so the sum
// of the magnitudes of the bins equals the DC input for a constant input.
func (p *Plan) Forward(x []complex64) {
	if len(x) != p.n {
		panic("fft: input length must match plan length")
	}
	p.transform(x, false)
	scale := complex(1/float32(p.n), 0)
	for i := range x {
		x[i] *= scale
	}
}

// Inverse transforms x in place. The result is unscaled, so
// Inverse(Forward(x)) == x up to floating point error.
func (p *Plan) Inverse(x []complex64) {
	if len(x) != p.n {
		panic("fft: input length must match plan length")
	}
	p.transform(x, true)
}

// transform runs the iterative Cooley-Tukey DIT butterfly network. For an
// inverse transform the twiddle factors are used conjugated, which is
// equivalent to reversing the sign of the exponent.
func (p *Plan) transform(x []complex64, inverse bool) {
	n := p.n
	for i, j := range p.bitrev {
		if j > i {
			x[i], x[j] = x[j], x[i]
		}
	}

	for size := 2; size <= n; size <<= 1 {
		half := size / 2
		step := n / size
		for start := 0; start < n; start += size {
			for k := 0; k < half; k++ {
				tw := p.twiddles[k*step]
				if inverse {
					tw = complex(real(tw), -imag(tw))
				}
				t := x[start+k+half] * complex64(tw)
				x[start+k+half] = x[start+k] - t
				x[start+k] = x[start+k] + t
			}
		}
	}
}
