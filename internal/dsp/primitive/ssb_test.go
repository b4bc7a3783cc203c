package primitive

import (
	"math"
	"testing"

	"github.com/jtarrio/signals/internal/dsp/coeffs"
	"github.com/jtarrio/signals/internal/dsp/filter"
)

func TestSSBDetector_PassesMatchingSideband(t *testing.T) {
	const sampleRate = 48000.0
	const n = 8192
	taps := coeffs.Hilbert(65)

	usb := NewSSBDetector(filter.NewFIR(taps), true)
	I := make([]float32, n)
	Q := make([]float32, n)
	// A tone at +500Hz relative to the carrier: analytic signal
	// e^{j*2*pi*500*t/R}, which is the upper sideband.
	for i := 0; i < n; i++ {
		theta := 2 * math.Pi * 500 * float64(i) / sampleRate
		I[i] = float32(math.Cos(theta))
		Q[i] = float32(math.Sin(theta))
	}
	out := make([]float32, n)
	usb.Process(I, Q, out)

	settle := n / 2
	var sumSq float64
	for i := settle; i < n; i++ {
		sumSq += float64(out[i]) * float64(out[i])
	}
	rms := math.Sqrt(sumSq / float64(n-settle))
	if rms < 0.3 {
		t.Fatalf("expected USB tone to survive USB detector, rms=%v", rms)
	}
}
