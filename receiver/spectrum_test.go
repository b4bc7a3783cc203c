package receiver

import (
	"math"
	"testing"
)

func TestSpectrum_RoundsUpToPowerOfTwoFloorSixteen(t *testing.T) {
	s := NewSpectrum(10)
	if s.Len() != 16 {
		t.Fatalf("Len() = %d, want 16 (floor)", s.Len())
	}
	s2 := NewSpectrum(100)
	if s2.Len() != 128 {
		t.Fatalf("Len() = %d, want 128", s2.Len())
	}
}

func TestSpectrum_PeaksAtToneFrequency(t *testing.T) {
	n := 256
	s := NewSpectrum(n)
	const sampleRate = 1000.0
	toneHz := 4 * sampleRate / float64(n) // lands exactly on a bin

	I := make([]float32, n)
	Q := make([]float32, n)
	for i := 0; i < n; i++ {
		phase := 2 * math.Pi * toneHz * float64(i) / sampleRate
		I[i] = float32(math.Cos(phase))
		Q[i] = float32(math.Sin(phase))
	}
	s.Receive(I, Q, 0, nil)

	dst := make([]float32, n)
	s.GetSpectrum(dst)

	peakBin := 0
	for k := 1; k < n; k++ {
		if dst[k] > dst[peakBin] {
			peakBin = k
		}
	}
	if peakBin != 4 {
		t.Fatalf("expected peak at bin 4, got bin %d (value %v)", peakBin, dst[peakBin])
	}
}

func TestSpectrum_PanicsOnWrongLength(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on mismatched destination length")
		}
	}()
	s := NewSpectrum(16)
	s.GetSpectrum(make([]float32, 8))
}
