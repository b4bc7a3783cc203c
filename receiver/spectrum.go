package receiver

import (
	"math"

	"github.com/jtarrio/signals/internal/buffer"
	"github.com/jtarrio/signals/internal/dsp/fft"
)

// Spectrum maintains a rolling window of the most recent I/Q samples and
// transforms snapshots of it on demand (spec §4.10). GetSpectrum applies
// a Blackman taper, transforms, and writes power in dB: bins 0..N/2-1 are
// positive frequencies, N/2..N-1 are the negative frequencies aliased to
// the tail, exactly as the FFT naturally orders them.
type Spectrum struct {
	plan         *fft.Plan
	ringI, ringQ *buffer.Ring
	n            int
}

// NewSpectrum creates a spectrum receiver transforming at the next
// power of two ≥ max(16, fftLen).
func NewSpectrum(fftLen int) *Spectrum {
	n := fft.NextPow2(fftLen)
	if n < 16 {
		n = 16
	}
	plan := fft.NewPlan(n)
	plan.SetWindow(fft.Blackman(n))
	return &Spectrum{
		plan:  plan,
		ringI: buffer.NewRing(n),
		ringQ: buffer.NewRing(n),
		n:     n,
	}
}

// Len returns the transform length.
func (s *Spectrum) Len() int { return s.n }

// SetSampleRate is a no-op; the spectrum only reports bin index, not Hz.
func (s *Spectrum) SetSampleRate(r float64) {}

// Receive stores I/Q into the rolling window.
func (s *Spectrum) Receive(I, Q []float32, freq int64, data any) {
	s.ringI.Store(I)
	s.ringQ.Store(Q)
}

// GetSpectrum copies the latest Len() samples, windows and transforms
// them, and writes 10*log10(|X[k]|^2) into dst, which must be Len() long.
func (s *Spectrum) GetSpectrum(dst []float32) {
	if len(dst) != s.n {
		panic("receiver: spectrum destination length must equal Len()")
	}
	i := make([]float32, s.n)
	q := make([]float32, s.n)
	s.ringI.CopyTo(i)
	s.ringQ.CopyTo(q)

	x := make([]complex64, s.n)
	for k := range x {
		x[k] = complex(i[k], q[k])
	}
	s.plan.ApplyWindow(x)
	s.plan.Forward(x)

	for k, c := range x {
		mag2 := float64(real(c))*float64(real(c)) + float64(imag(c))*float64(imag(c))
		dst[k] = float32(10 * math.Log10(mag2+1e-20))
	}
}
