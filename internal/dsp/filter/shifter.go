package filter

import "math"

// Shifter multiplies a complex I/Q signal by e^(j*2*pi*f*t/R), implemented
// as a phasor recursion (two multiplications per sample) rather than a
// sin/cos call per sample (spec §4.4).
//
// The phasor's unit magnitude drifts slowly under repeated floating-point
// multiplication; Shifter renormalizes it every renormInterval samples, as
// the spec's open question (ii) recommends for long-running shifts.
type Shifter struct {
	sampleRate float64
	freq       float64

	phaseRe, phaseIm float32
	stepRe, stepIm   float32

	sinceRenorm   int
	renormInterval int
}

// NewShifter creates a frequency shifter for the given sample rate and
// initial shift frequency in Hz (positive shifts the spectrum up).
func NewShifter(sampleRate, freqHz float64) *Shifter {
	s := &Shifter{
		sampleRate:     sampleRate,
		phaseRe:        1,
		phaseIm:        0,
		renormInterval: 65536,
	}
	s.SetFrequency(freqHz)
	return s
}

// SetFrequency changes the shift frequency without resetting the current
// phase, so the output stays phase-continuous across the change.
func (s *Shifter) SetFrequency(freqHz float64) {
	s.freq = freqHz
	theta := 2 * math.Pi * freqHz / s.sampleRate
	s.stepRe = float32(math.Cos(theta))
	s.stepIm = float32(math.Sin(theta))
}

// Frequency returns the current shift frequency in Hz.
func (s *Shifter) Frequency() float64 { return s.freq }

// InPlace rotates each complex sample (I[i], Q[i]) by the accumulating
// phasor.
func (s *Shifter) InPlace(I, Q []float32) {
	re, im := s.phaseRe, s.phaseIm
	for i := range I {
		x, y := I[i], Q[i]
		I[i] = x*re - y*im
		Q[i] = x*im + y*re

		nre := re*s.stepRe - im*s.stepIm
		nim := re*s.stepIm + im*s.stepRe
		re, im = nre, nim

		s.sinceRenorm++
		if s.sinceRenorm >= s.renormInterval {
			mag := float32(math.Sqrt(float64(re*re + im*im)))
			if mag > 0 {
				re /= mag
				im /= mag
			}
			s.sinceRenorm = 0
		}
	}
	s.phaseRe, s.phaseIm = re, im
}
