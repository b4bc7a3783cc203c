package primitive

import "github.com/jtarrio/signals/internal/dsp/filter"

// SSBDetector recovers a single sideband by delaying the I branch to match
// the Hilbert filter's group delay on Q, then summing or differencing the
// two depending on sideband (spec §4.6).
type SSBDetector struct {
	delay   *filter.Delay
	hilbert filter.Filter
	sign    float32
}

// NewSSBDetector creates an SSB detector. upper selects USB (true) or LSB
// (false); hilbert is the Hilbert transform FIR (or FFT-backed equivalent)
// applied to the Q branch.
func NewSSBDetector(hilbert filter.Filter, upper bool) *SSBDetector {
	sign := float32(1)
	if upper {
		sign = -1
	}
	return &SSBDetector{
		delay:   filter.NewDelay(hilbert.Delay()),
		hilbert: hilbert,
		sign:    sign,
	}
}

// Process combines the delayed I branch with the Hilbert-filtered Q
// branch, writing len(I) samples into out. I and Q are modified in place
// as scratch space.
func (d *SSBDetector) Process(I, Q, out []float32) {
	d.delay.InPlace(I)
	d.hilbert.InPlace(Q)
	for i := range I {
		out[i] = (I[i] + d.sign*Q[i]) / 2
	}
}
