package filter

import (
	"math"

	"github.com/jtarrio/signals/internal/dsp/coeffs"
)

// BiquadIIR is a Direct-Form-I second-order IIR section, used for the
// low-pass/pre-emphasis/de-emphasis biquads of spec §4.3-4.4.
type BiquadIIR struct {
	c              coeffs.Biquad
	x1, x2, y1, y2 float32
	sampleRate     float64
}

// NewBiquadLowPass creates the RBJ-cookbook second-order low-pass with
// corner f and quality q at sampleRate.
func NewBiquadLowPass(sampleRate, f, q float64) *BiquadIIR {
	return &BiquadIIR{c: coeffs.BiquadLowPass(sampleRate, f, q), sampleRate: sampleRate}
}

// NewBiquadFromCoeffs wraps an already-computed Biquad (e.g. from
// coeffs.Preemphasis).
func NewBiquadFromCoeffs(sampleRate float64, c coeffs.Biquad) *BiquadIIR {
	return &BiquadIIR{c: c, sampleRate: sampleRate}
}

// Delay returns 2, a biquad's nominal group delay at DC.
func (f *BiquadIIR) Delay() int { return 2 }

// Clone returns a fresh BiquadIIR with the same coefficients and cleared
// state.
func (f *BiquadIIR) Clone() Filter {
	return &BiquadIIR{c: f.c, sampleRate: f.sampleRate}
}

// InPlace applies the Direct-Form-I update to every sample of buf.
func (f *BiquadIIR) InPlace(buf []float32) {
	for i, x := range buf {
		buf[i] = f.Step(x)
	}
}

// Step applies the filter to a single sample, for callers (like the
// pilot detector) that interleave biquad filtering with other per-sample
// work.
func (f *BiquadIIR) Step(x float32) float32 {
	c := f.c
	y := float32(c.B0)*x + float32(c.B1)*f.x1 + float32(c.B2)*f.x2 -
		float32(c.A1)*f.y1 - float32(c.A2)*f.y2
	f.x2, f.x1 = f.x1, x
	f.y2, f.y1 = f.y1, y
	return y
}

// PhaseShift reports the filter's phase response, in radians, at
// frequency freqHz.
func (f *BiquadIIR) PhaseShift(freqHz float64) float64 {
	omega := 2 * math.Pi * freqHz / f.sampleRate
	e1 := complexExp(-omega)
	e2 := complexExp(-2 * omega)
	num := complex(f.c.B0, 0) + complex(f.c.B1, 0)*e1 + complex(f.c.B2, 0)*e2
	den := complex(1, 0) + complex(f.c.A1, 0)*e1 + complex(f.c.A2, 0)*e2
	h := num / den
	return math.Atan2(imag(h), real(h))
}
