// Package testsignal generates reference modulated signals for the
// round-trip and end-to-end demodulation tests of spec §8. It is a
// test-signal generator, not a broadcast transmit chain (explicitly out
// of scope per spec.md's Non-goals) — scoped entirely to tests.
package testsignal

import "math"

// Tone returns n samples of a sine wave at freqHz and amplitude amp,
// sampled at sampleRate.
func Tone(sampleRate, freqHz float64, amp float32, n int) []float32 {
	out := make([]float32, n)
	theta := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amp * float32(math.Sin(theta*float64(i)))
	}
	return out
}

// ModulateAM produces an I/Q capture of carrierHz amplitude-modulated by
// msg, with modulation depth amp (the carrier's own unmodulated amplitude
// is 1; amp scales msg before it's added to the carrier envelope).
func ModulateAM(sampleRate, carrierHz float64, amp float32, msg []float32) (I, Q []float32) {
	n := len(msg)
	I = make([]float32, n)
	Q = make([]float32, n)
	theta := 2 * math.Pi * carrierHz / sampleRate
	for i := 0; i < n; i++ {
		envelope := 1 + amp*msg[i]
		c := float32(math.Cos(theta * float64(i)))
		s := float32(math.Sin(theta * float64(i)))
		I[i] = envelope * c
		Q[i] = envelope * s
	}
	return I, Q
}

// ModulateFM produces an I/Q capture of carrierHz frequency-modulated by
// msg, with peak deviation devHz at |msg|==1.
func ModulateFM(sampleRate, carrierHz, devHz float64, msg []float32) (I, Q []float32) {
	n := len(msg)
	I = make([]float32, n)
	Q = make([]float32, n)
	var phase float64
	carrierStep := 2 * math.Pi * carrierHz / sampleRate
	for i := 0; i < n; i++ {
		I[i] = float32(math.Cos(phase))
		Q[i] = float32(math.Sin(phase))
		inst := carrierStep + 2*math.Pi*devHz*float64(msg[i])/sampleRate
		phase += inst
		if phase > 2*math.Pi {
			phase -= 2 * math.Pi
		}
	}
	return I, Q
}

// ModulateSSB produces an I/Q capture of a single sideband signal:
// carrierHz plus (USB) or minus (LSB) the frequency of a pure audio tone
// toneHz at amplitude amp. This is the analytic-signal shortcut — an SSB
// signal at RF offset d from the carrier is exactly a complex exponential
// at d Hz, shifted up to carrierHz.
func ModulateSSB(sampleRate, carrierHz, toneHz float64, amp float32, upper bool, n int) (I, Q []float32) {
	offset := toneHz
	if !upper {
		offset = -toneHz
	}
	I = make([]float32, n)
	Q = make([]float32, n)
	theta := 2 * math.Pi * (carrierHz + offset) / sampleRate
	for i := 0; i < n; i++ {
		I[i] = amp * float32(math.Cos(theta*float64(i)))
		Q[i] = amp * float32(math.Sin(theta*float64(i)))
	}
	return I, Q
}

// WBFMMultiplex builds the baseband composite signal (mono sum + 19kHz
// pilot + 38kHz DSB-suppressed-carrier L-R difference) that a stereo WBFM
// transmitter would produce from left and right audio, for feeding into
// ModulateFM as msg.
func WBFMMultiplex(sampleRate float64, left, right []float32) []float32 {
	n := len(left)
	out := make([]float32, n)
	pilotStep := 2 * math.Pi * 19000 / sampleRate
	subStep := 2 * math.Pi * 38000 / sampleRate
	for i := 0; i < n; i++ {
		mono := (left[i] + right[i]) / 2
		diff := (left[i] - right[i]) / 2
		pilot := float32(0.1 * math.Sin(pilotStep*float64(i)))
		sub := diff * float32(math.Sin(subStep*float64(i)))
		out[i] = mono + pilot + sub
	}
	return out
}
