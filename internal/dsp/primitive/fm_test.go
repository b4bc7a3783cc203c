package primitive

import (
	"math"
	"testing"
)

func TestFMDetector_LinearForSineDeviation(t *testing.T) {
	const sampleRate = 192000.0
	const maxDev = 75000.0
	const audioHz = 1000.0
	const n = 192000

	d := NewFMDetector(sampleRate, maxDev)
	I := make([]float32, n)
	Q := make([]float32, n)
	out := make([]float32, n)

	var phase float64
	for i := 0; i < n; i++ {
		I[i] = float32(math.Cos(phase))
		Q[i] = float32(math.Sin(phase))
		inst := 2 * math.Pi * maxDev * math.Sin(2*math.Pi*audioHz*float64(i)/sampleRate) / sampleRate
		phase += inst
	}
	d.Process(I, Q, out)

	settle := n / 10
	var maxErr float32
	for i := settle; i < n-settle; i++ {
		want := float32(math.Sin(2 * math.Pi * audioHz * float64(i) / sampleRate))
		e := out[i] - want
		if e < 0 {
			e = -e
		}
		if e > maxErr {
			maxErr = e
		}
	}
	if maxErr > 0.05 {
		t.Fatalf("FM discriminator linearity error too high: %v", maxErr)
	}
}
