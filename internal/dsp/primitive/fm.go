package primitive

import (
	"math"

	"github.com/jtarrio/signals/internal/dsp/fastmath"
)

// FMDetector is a polar FM discriminator: it multiplies each sample by the
// conjugate of the previous one and measures the phase of the product,
// scaled by the configured maximum deviation (spec §4.6).
type FMDetector struct {
	scale        float32
	lastI, lastQ float32
}

// NewFMDetector creates an FM discriminator at sampleRate whose output
// reaches +/-1 at maxDeviationHz of instantaneous frequency deviation.
func NewFMDetector(sampleRate, maxDeviationHz float64) *FMDetector {
	return &FMDetector{
		scale: float32(2 * math.Pi * maxDeviationHz / sampleRate),
		lastI: 1,
	}
}

// Process discriminates FM for each I/Q sample, writing len(I) samples
// into out.
func (d *FMDetector) Process(I, Q, out []float32) {
	lastI, lastQ := d.lastI, d.lastQ
	for i := range I {
		x, y := I[i], Q[i]
		pi := lastI*x + lastQ*y
		pq := lastI*y - x*lastQ
		out[i] = fastmath.Atan2(pq, pi) / d.scale
		lastI, lastQ = x, y
	}
	d.lastI, d.lastQ = lastI, lastQ
}
