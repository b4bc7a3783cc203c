package primitive

import (
	"math"
	"testing"
)

func TestStereoSeparator_LocksOnCleanMultiplex(t *testing.T) {
	const sampleRate = 336000.0
	const n = 200000
	s := NewStereoSeparator(sampleRate, 10)

	multiplex := make([]float32, n)
	diff := make([]float32, n)
	for i := 0; i < n; i++ {
		pilot := math.Sin(2 * math.Pi * 19000 * float64(i) / sampleRate)
		dsb := math.Sin(2*math.Pi*38000*float64(i)/sampleRate) * math.Sin(2*math.Pi*700*float64(i)/sampleRate)
		multiplex[i] = float32(0.1*pilot + 0.1*dsb)
	}

	found := s.Process(multiplex, diff)
	if !found {
		t.Fatalf("expected pilot lock on a clean 19kHz/38kHz multiplex")
	}
}

func TestStereoSeparator_NoLockWithoutPilot(t *testing.T) {
	const sampleRate = 336000.0
	const n = 50000
	s := NewStereoSeparator(sampleRate, 10)

	multiplex := make([]float32, n)
	diff := make([]float32, n)
	found := s.Process(multiplex, diff)
	if found {
		t.Fatalf("expected no lock with silent multiplex")
	}
}
