// Package testutil provides the statistical helpers the DSP kernel's test
// suite uses to check the round-trip/filter-response/correlation
// properties of spec §8, backed by gonum instead of hand-rolled loops.
package testutil

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// RMSError returns the root-mean-square of the element-wise difference
// between got and want, which must have equal length.
func RMSError(got, want []float32) float64 {
	diff := make([]float64, len(got))
	for i := range got {
		diff[i] = float64(got[i]) - float64(want[i])
	}
	return math.Sqrt(stat.Mean(squares(diff), nil))
}

// Correlation returns the Pearson correlation coefficient between a and b,
// used to check that a recovered signal tracks a reference tone without
// requiring an exact amplitude/phase match.
func Correlation(a, b []float32) float64 {
	fa := toFloat64(a)
	fb := toFloat64(b)
	return stat.Correlation(fa, fb, nil)
}

// RMS returns the root-mean-square of x.
func RMS(x []float32) float64 {
	fx := toFloat64(x)
	return math.Sqrt(floats.Dot(fx, fx) / float64(len(fx)))
}

// RMSErrorComplex returns the root-mean-square magnitude of the
// element-wise difference between got and want, which must have equal
// length. Used to check round-trip and reconstruction properties on
// complex (I/Q) signals rather than the real-valued ones RMSError covers.
func RMSErrorComplex(got, want []complex64) float64 {
	sq := make([]float64, len(got))
	for i := range got {
		d := complex128(got[i]) - complex128(want[i])
		sq[i] = real(d)*real(d) + imag(d)*imag(d)
	}
	return math.Sqrt(stat.Mean(sq, nil))
}

func squares(x []float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = v * v
	}
	return out
}

func toFloat64(x []float32) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = float64(v)
	}
	return out
}
