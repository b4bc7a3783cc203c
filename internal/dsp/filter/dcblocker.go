package filter

import "github.com/jtarrio/signals/internal/dsp/coeffs"

// DCBlocker is a one-pole high-pass, y[n] = x[n] - x[n-1] + R*y[n-1],
// with R chosen so the -3dB corner is at a 0.5 Hz equivalent time
// constant (spec §4.4).
type DCBlocker struct {
	r      float32
	x1, y1 float32
}

// NewDCBlocker creates a DC blocker for the given sample rate.
func NewDCBlocker(sampleRate float64) *DCBlocker {
	return &DCBlocker{r: float32(coeffs.DCBlockerPole(sampleRate))}
}

// Delay returns 1, the DC blocker's nominal group delay at DC.
func (f *DCBlocker) Delay() int { return 1 }

// Clone returns a fresh DCBlocker with the same pole and cleared state.
func (f *DCBlocker) Clone() Filter {
	return &DCBlocker{r: f.r}
}

// InPlace applies the DC-blocking update to every sample of buf.
func (f *DCBlocker) InPlace(buf []float32) {
	x1, y1, r := f.x1, f.y1, f.r
	for i, x := range buf {
		y := x - x1 + r*y1
		buf[i] = y
		x1, y1 = x, y
	}
	f.x1, f.y1 = x1, y1
}
