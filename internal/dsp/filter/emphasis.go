package filter

import "github.com/jtarrio/signals/internal/dsp/coeffs"

// NewDeemphasis creates the one-pole low-pass that compensates for FM
// broadcast pre-emphasis, with time constant tau seconds (50e-6 in
// Europe, 75e-6 in the US/Korea).
func NewDeemphasis(sampleRate, tau float64) *OnePole {
	cutoff := 1 / (2 * 3.141592653589793 * tau)
	return NewOnePoleLowPass(sampleRate, cutoff)
}

// NewPreemphasis creates the pre-emphasis biquad of spec §4.3: a zero
// derived from tau and a fixed high-shelf pole at 0.9*pi radians/sample.
// Nothing in the module calls it; the demodulator chain applies
// NewDeemphasis, and the test-signal modulators apply no pre-emphasis.
func NewPreemphasis(sampleRate, tau float64) *BiquadIIR {
	return NewBiquadFromCoeffs(sampleRate, coeffs.Preemphasis(sampleRate, tau))
}
