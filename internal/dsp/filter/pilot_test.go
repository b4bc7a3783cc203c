package filter

import (
	"math"
	"testing"

	"github.com/jtarrio/signals/internal/dsp/testutil"
)

func generateTone(sampleRate, freqHz float64, amplitude float32, n int) ([]float32, []float32) {
	I := make([]float32, n)
	Q := make([]float32, n)
	theta := 2 * math.Pi * freqHz / sampleRate
	for i := 0; i < n; i++ {
		I[i] = amplitude * float32(math.Cos(theta*float64(i)))
		Q[i] = amplitude * float32(math.Sin(theta*float64(i)))
	}
	return I, Q
}

func TestPilotDetector_LocksOnPureTone(t *testing.T) {
	const sampleRate = 960000.0
	const n = 200000
	I, Q := generateTone(sampleRate, 19000, 0.1, n)

	p := NewPilotDetector(sampleRate, 19000, 10)
	cos := make([]float32, n)
	sin := make([]float32, n)
	p.Process(I, Q, cos, sin)

	if !p.Locked() {
		t.Fatalf("expected lock on a pure 19kHz tone, speed=%v", p.Speed())
	}

	settle := n - n/10
	theta := 2 * math.Pi * 19000 / sampleRate
	got := make([]complex64, n-settle)
	want := make([]complex64, n-settle)
	for i := settle; i < n; i++ {
		want[i-settle] = complex(float32(math.Cos(theta*float64(i))), float32(math.Sin(theta*float64(i))))
		got[i-settle] = complex(cos[i], sin[i])
	}
	rms := testutil.RMSErrorComplex(got, want)
	if rms > 1e-5 {
		t.Fatalf("reconstruction RMS error too high: %v", rms)
	}
}

func TestPilotDetector_NoSignalDoesNotLock(t *testing.T) {
	const sampleRate = 960000.0
	const n = 20000
	I := make([]float32, n)
	Q := make([]float32, n)

	p := NewPilotDetector(sampleRate, 19000, 10)
	cos := make([]float32, n)
	sin := make([]float32, n)
	p.Process(I, Q, cos, sin)

	if p.Locked() {
		t.Fatalf("expected no lock with zero-amplitude input")
	}
}

func TestPilotDetector_OffFrequencyDoesNotLock(t *testing.T) {
	const sampleRate = 960000.0
	const n = 50000
	I, Q := generateTone(sampleRate, 19500, 0.1, n)

	p := NewPilotDetector(sampleRate, 19000, 10)
	cos := make([]float32, n)
	sin := make([]float32, n)
	p.Process(I, Q, cos, sin)

	if p.Locked() {
		t.Fatalf("expected no lock 500Hz off target with 10Hz tolerance")
	}
}
