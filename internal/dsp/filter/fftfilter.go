package filter

import (
	"github.com/jtarrio/signals/internal/buffer"
	"github.com/jtarrio/signals/internal/dsp/fft"
)

// FFTFilter computes the same transfer function as a FIR filter built
// from the same taps, via overlap-save frequency-domain convolution. It
// trades the FIR's O(len*N) for O(len*log(L)) at the cost of a longer
// group delay, L-(N-1)/2 instead of floor(N/2), where L is the next
// power of two >= 2*N.
//
// Input samples are pushed into a ring of capacity L (so the ring always
// holds the latest L samples, zero-padded at start-up); every time L-(N-1)
// new samples have accumulated, the ring's current window is transformed,
// multiplied by the precomputed kernel spectrum, inverse-transformed, and
// the last L-(N-1) samples of the result are published to an output ring
// that InPlace then drains into the caller's buffer.
type FFTFilter struct {
	taps       []float32
	n          int
	l          int
	valid      int
	plan       *fft.Plan
	kernelFreq []complex64

	inRing  *buffer.Ring
	carry   []float32
	outRing *buffer.Ring

	block []float32 // scratch, reused across InPlace calls
}

// NewFFTFilter creates an FFT-overlap-save filter equivalent to a FIR
// filter built from the same taps.
func NewFFTFilter(taps []float32) *FFTFilter {
	n := len(taps)
	l := fft.NextPow2(2 * n)
	valid := l - (n - 1)
	plan := fft.NewPlan(l)

	// Kernel spectrum from the kernel zero-padded to L, computed once.
	// With the taps occupying the leading N positions, the circular
	// convolution theorem reproduces FIR's y[i] = sum_k taps[k]*x[i-k]
	// exactly over the non-wrapped output range [N-1, L-1].
	kt := make([]complex64, l)
	for i, tap := range taps {
		kt[i] = complex(tap, 0)
	}
	plan.Forward(kt)
	for i := range kt {
		// Undo Forward's 1/L scaling: with both operands' Forward
		// scaled by 1/L and the final Inverse unscaled, leaving one
		// operand's scaling undone reproduces a plain linear
		// convolution once the product feeds the Inverse transform.
		kt[i] *= complex(float32(l), 0)
	}

	f := &FFTFilter{
		taps:       append([]float32(nil), taps...),
		n:          n,
		l:          l,
		valid:      valid,
		plan:       plan,
		kernelFreq: kt,
		inRing:     buffer.NewRing(l),
		outRing:    buffer.NewRing(l * 4),
		block:      make([]float32, l),
	}
	f.inRing.Store(make([]float32, l)) // zero-history start-up state
	// L-(N-1) leading zeros of output: together with the FIR's own
	// (N-1)/2 this is the constant delay Delay() reports.
	f.outRing.Store(make([]float32, valid))
	return f
}

// Delay returns L-(N-1)/2, the FFT filter's group delay at DC.
func (f *FFTFilter) Delay() int {
	return f.l - (f.n-1)/2
}

// Clone returns a fresh FFTFilter with the same taps and cleared state.
func (f *FFTFilter) Clone() Filter {
	return NewFFTFilter(f.taps)
}

// InPlace pushes buf through the overlap-save pipeline and overwrites it
// with output drained from the output ring. The ring starts out holding
// L-(N-1) zeros, so every call finds len(buf) samples ready as long as the
// ring does not overflow; any tail it cannot supply is zero-filled.
func (f *FFTFilter) InPlace(buf []float32) {
	f.carry = append(f.carry, buf...)
	for len(f.carry) >= f.valid {
		chunk := f.carry[:f.valid]
		f.inRing.Store(chunk)
		rest := append([]float32(nil), f.carry[f.valid:]...)
		f.carry = rest

		f.inRing.CopyTo(f.block)
		f.transformAndPublish()
	}

	got := f.outRing.MoveTo(buf)
	for i := got; i < len(buf); i++ {
		buf[i] = 0
	}
}

func (f *FFTFilter) transformAndPublish() {
	x := make([]complex64, f.l)
	for i, v := range f.block {
		x[i] = complex(v, 0)
	}
	f.plan.Forward(x)
	for i := range x {
		x[i] *= f.kernelFreq[i]
	}
	f.plan.Inverse(x)

	out := make([]float32, f.valid)
	for i := 0; i < f.valid; i++ {
		out[i] = real(x[f.n-1+i])
	}
	f.outRing.Store(out)
}
