package coeffs

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jtarrio/signals/internal/dsp/testutil"
)

// toneResponseDB filters a long unit-amplitude sinusoid at freq through
// the kernel (direct convolution, no decimation) and measures its
// steady-state gain in dB relative to the input amplitude.
func toneResponseDB(t *testing.T, sampleRate, freq float64, kernel []float32) float64 {
	t.Helper()
	n := len(kernel)*8 + 4000
	x := make([]float64, n)
	for i := range x {
		x[i] = math.Sin(2 * math.Pi * freq * float64(i) / sampleRate)
	}
	y := make([]float64, n)
	for i := len(kernel) - 1; i < n; i++ {
		var acc float64
		for k, tap := range kernel {
			acc += float64(tap) * x[i-k]
		}
		y[i] = acc
	}
	// Measure peak amplitude over the settled tail.
	var peak float64
	for i := n - 1000; i < n; i++ {
		if math.Abs(y[i]) > peak {
			peak = math.Abs(y[i])
		}
	}
	return 20 * math.Log10(peak)
}

func TestLowPass_CornerAndStopband(t *testing.T) {
	const sampleRate = 48000.0
	const cutoff = 4000.0
	kernel := LowPass(sampleRate, cutoff, 151, 1.0)

	atCorner := toneResponseDB(t, sampleRate, cutoff, kernel)
	require.InDelta(t, -6.0, atCorner, 0.5)

	atStop := toneResponseDB(t, sampleRate, 1.2*cutoff, kernel)
	assert.Less(t, atStop, -40.0)
}

func TestLowPass_UnitDCGain(t *testing.T) {
	kernel := LowPass(48000, 4000, 101, 1.0)
	var sum float64
	for _, k := range kernel {
		sum += float64(k)
	}
	assert.InDelta(t, 1.0, sum, 1e-4)
}

func TestHilbert_PhaseShift(t *testing.T) {
	const sampleRate = 48000.0
	const freq = 2000.0
	const length = 101
	kernel := Hilbert(length)
	delay := length / 2

	n := 4000
	x := make([]float64, n)
	for i := range x {
		x[i] = math.Cos(2 * math.Pi * freq * float64(i) / sampleRate)
	}
	y := make([]float64, n)
	for i := length - 1; i < n; i++ {
		var acc float64
		for k, tap := range kernel {
			acc += float64(tap) * x[i-k]
		}
		y[i] = acc
	}

	// A -pi/2 phase shift of a cosine is a sine delayed by `delay`.
	got := make([]float32, n-length*2)
	ref := make([]float32, n-length*2)
	for i := length * 2; i < n; i++ {
		ref[i-length*2] = float32(math.Sin(2 * math.Pi * freq * float64(i-delay) / sampleRate))
		got[i-length*2] = float32(y[i])
	}
	rmsErr := testutil.RMSError(got, ref) / testutil.RMS(ref)
	assert.Less(t, rmsErr, 1e-2)
}
