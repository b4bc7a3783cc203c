// Package primitive implements the per-sample discriminators that turn a
// band-limited I/Q stream into real audio: AM envelope detection, FM polar
// discrimination, SSB sideband combination, and WBFM stereo separation
// (spec §4.6).
package primitive

import "math"

// AMDetector demodulates AM by tracking the envelope's carrier amplitude
// with a one-pole smoother and dividing it out, producing a DC-free
// output.
type AMDetector struct {
	decay   float32
	carrier float32
}

// NewAMDetector creates an AM envelope detector at sampleRate, with a
// carrier-tracking time constant of 0.5 seconds.
func NewAMDetector(sampleRate float64) *AMDetector {
	return &AMDetector{decay: float32(math.Exp(-1 / (0.5 * sampleRate)))}
}

// Process computes the DC-free AM envelope for each I/Q sample, writing
// len(I) samples into out.
func (d *AMDetector) Process(I, Q, out []float32) {
	carrier, decay := d.carrier, d.decay
	for i := range I {
		r := float32(math.Sqrt(float64(I[i]*I[i] + Q[i]*Q[i])))
		carrier = decay*carrier + (1-decay)*r
		if carrier == 0 {
			out[i] = 0
		} else {
			out[i] = r/carrier - 1
		}
	}
	d.carrier = carrier
}
