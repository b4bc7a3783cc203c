// Package fastmath provides the approximate atan2 used throughout the DSP
// kernel wherever phase is measured: the FM discriminator, the pilot
// detector's instantaneous-frequency estimator, and the stereo separator
// (spec §4.5). It trades math.Atan2's full precision for a branch-light,
// call-free-of-trig-functions polynomial that is cheap enough to run once
// per sample.
package fastmath

import "math"

// Atan2 approximates math.Atan2(y, x) with a maximum error of about 2e-6
// radians over the full circle, using a 6-term odd polynomial in
// min(|y|,|x|)/max(|y|,|x|) plus quadrant fix-ups.
func Atan2(y, x float32) float32 {
	if x == 0 && y == 0 {
		return 0
	}

	ax, ay := abs32(x), abs32(y)
	var angle float32
	if ax >= ay {
		r := ay / ax
		angle = atanPoly(r)
		if x < 0 {
			angle = math.Pi - angle
		}
	} else {
		r := ax / ay
		angle = math.Pi/2 - atanPoly(r)
		if x < 0 {
			angle = math.Pi - angle
		}
	}
	if math.Signbit(float64(y)) {
		angle = -angle
	}
	return angle
}

// atanPoly approximates atan(r) for r in [0,1] via a 6-term odd
// minimax-style polynomial: r*(c1 + c3*r^2 + c5*r^4 + ... + c11*r^10).
func atanPoly(r float32) float32 {
	const (
		a1 = 0.99997726
		a3 = -0.33262347
		a5 = 0.19354346
		a7 = -0.11643287
		a9 = 0.05265332
		a11 = -0.01172120
	)
	r2 := r * r
	return r * (a1 + r2*(a3+r2*(a5+r2*(a7+r2*(a9+r2*a11)))))
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
