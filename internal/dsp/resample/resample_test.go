package resample

import (
	"math"
	"testing"

	"github.com/jtarrio/signals/internal/dsp/coeffs"
	"github.com/jtarrio/signals/internal/dsp/filter"
)

func TestComplex_DecimatesByRatio(t *testing.T) {
	const sampleRate = 960000.0
	const ratio = 20
	taps := coeffs.LowPass(sampleRate, sampleRate/float64(ratio)/2, 129, 1)
	dec := NewComplex(ratio, filter.NewFIR(taps))

	n := 2000
	I := make([]float32, n)
	Q := make([]float32, n)
	for i := range I {
		theta := 2 * math.Pi * 1000 * float64(i) / sampleRate
		I[i] = float32(math.Cos(theta))
		Q[i] = float32(math.Sin(theta))
	}
	outI, outQ := dec.Process(I, Q)
	if len(outI) != n/ratio || len(outQ) != n/ratio {
		t.Fatalf("expected %d samples, got %d/%d", n/ratio, len(outI), len(outQ))
	}
}

func TestReal_DecimatesByRatio(t *testing.T) {
	const sampleRate = 48000.0
	const ratio = 4
	taps := coeffs.LowPass(sampleRate, sampleRate/float64(ratio)/2, 65, 1)
	dec := NewReal(ratio, filter.NewFIR(taps))

	n := 1000
	buf := make([]float32, n)
	for i := range buf {
		buf[i] = float32(math.Sin(2 * math.Pi * 300 * float64(i) / sampleRate))
	}
	out := dec.Process(buf)
	if len(out) != n/ratio {
		t.Fatalf("expected %d samples, got %d", n/ratio, len(out))
	}
}

func TestComplex_RatioOneIsIdentityLength(t *testing.T) {
	taps := coeffs.LowPass(48000, 10000, 17, 1)
	dec := NewComplex(1, filter.NewFIR(taps))
	I := []float32{1, 2, 3, 4}
	Q := []float32{0, 0, 0, 0}
	outI, outQ := dec.Process(I, Q)
	if len(outI) != 4 || len(outQ) != 4 {
		t.Fatalf("ratio-1 decimator changed length")
	}
}
