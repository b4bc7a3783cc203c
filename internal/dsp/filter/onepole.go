package filter

import (
	"math"

	"github.com/jtarrio/signals/internal/dsp/coeffs"
)

// OnePole is a first-order Direct-Form-I IIR low-pass.
type OnePole struct {
	c          coeffs.OnePole
	x1, y1     float32
	sampleRate float64
}

// NewOnePoleLowPass creates a one-pole low-pass with the given -3dB
// corner frequency at sampleRate.
func NewOnePoleLowPass(sampleRate, cutoff float64) *OnePole {
	return &OnePole{c: coeffs.OnePoleLowPass(sampleRate, cutoff), sampleRate: sampleRate}
}

// Delay returns 1, a one-pole filter's nominal group delay at DC.
func (f *OnePole) Delay() int { return 1 }

// Clone returns a fresh OnePole with the same coefficients and cleared
// state.
func (f *OnePole) Clone() Filter {
	return &OnePole{c: f.c, sampleRate: f.sampleRate}
}

// InPlace applies the Direct-Form-I update to every sample of buf.
func (f *OnePole) InPlace(buf []float32) {
	for i, x := range buf {
		buf[i] = f.Step(x)
	}
}

// Step applies the filter to a single sample, for callers that interleave
// one-pole smoothing with other per-sample work (e.g. the pilot detector's
// frequency-estimate smoother).
func (f *OnePole) Step(x float32) float32 {
	c := f.c
	y := float32(c.B0)*x + float32(c.B1)*f.x1 - float32(c.A1)*f.y1
	f.x1, f.y1 = x, y
	return y
}

// PhaseShift reports the filter's phase response, in radians, at
// frequency f Hz. This is required by the pilot detector's compensation
// path (spec §4.4).
func (f *OnePole) PhaseShift(freqHz float64) float64 {
	omega := 2 * math.Pi * freqHz / f.sampleRate
	// H(e^jw) = (B0 + B1*e^-jw) / (1 + A1*e^-jw)
	num := complex(f.c.B0, 0) + complex(f.c.B1, 0)*complexExp(-omega)
	den := complex(1, 0) + complex(f.c.A1, 0)*complexExp(-omega)
	h := num / den
	return math.Atan2(imag(h), real(h))
}

func complexExp(theta float64) complex128 {
	return complex(math.Cos(theta), math.Sin(theta))
}
