package coeffs

import "math"

// OnePole holds the coefficients of a first-order Direct-Form-I filter:
// y[n] = B0*x[n] + B1*x[n-1] - A1*y[n-1].
type OnePole struct {
	B0, B1, A1 float64
}

// Biquad holds the normalized (a0=1) coefficients of a Direct-Form-I
// second-order filter:
// y[n] = B0*x[n] + B1*x[n-1] + B2*x[n-2] - A1*y[n-1] - A2*y[n-2].
type Biquad struct {
	B0, B1, B2, A1, A2 float64
}

// OnePoleLowPass derives a bilinear-transform one-pole low-pass with the
// given -3dB corner frequency.
func OnePoleLowPass(sampleRate, cutoff float64) OnePole {
	k := math.Tan(math.Pi * cutoff / sampleRate)
	b := k / (1 + k)
	return OnePole{B0: b, B1: b, A1: (k - 1) / (k + 1)}
}

// DCBlockerPole returns the pole location for a one-pole DC-blocking
// high-pass (y[n] = x[n] - x[n-1] + R*y[n-1]) whose -3dB corner
// corresponds to a 0.5 Hz equivalent time constant at sampleRate.
func DCBlockerPole(sampleRate float64) float64 {
	const cornerHz = 0.5
	return math.Exp(-2 * math.Pi * cornerHz / sampleRate)
}

// BiquadLowPass implements the RBJ "Audio EQ Cookbook" second-order
// low-pass with corner frequency f and quality factor q.
func BiquadLowPass(sampleRate, f, q float64) Biquad {
	omega := 2 * math.Pi * f / sampleRate
	sinw, cosw := math.Sin(omega), math.Cos(omega)
	alpha := sinw / (2 * q)

	b0 := (1 - cosw) / 2
	b1 := 1 - cosw
	b2 := (1 - cosw) / 2
	a0 := 1 + alpha
	a1 := -2 * cosw
	a2 := 1 - alpha

	return Biquad{B0: b0 / a0, B1: b1 / a0, B2: b2 / a0, A1: a1 / a0, A2: a2 / a0}
}

// Preemphasis derives the FM broadcast pre-emphasis filter: a zero at the
// de-emphasis time constant tau and a fixed pole placed at the high-shelf
// corner 0.9*pi radians/sample, normalized to unit DC gain.
func Preemphasis(sampleRate, tau float64) Biquad {
	zero := math.Exp(-1 / (tau * sampleRate))
	pole := math.Cos(0.9 * math.Pi)

	dcGain := (1 - zero) / (1 - pole)
	return Biquad{
		B0: 1 / dcGain,
		B1: -zero / dcGain,
		B2: 0,
		A1: -pole,
		A2: 0,
	}
}
