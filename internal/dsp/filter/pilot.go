package filter

import (
	"math"

	"github.com/jtarrio/signals/internal/dsp/fastmath"
)

// PilotDetector locks onto a narrow-band carrier near a target frequency
// and reconstructs it as a unit-magnitude cosine/sine pair, the way the
// WBFM stereo pipeline recovers the 19kHz pilot tone (spec §4.4).
//
// The technique is a software Costas-style loop: downshift the target to
// baseband, low-pass both rails, track the instantaneous phase step
// between consecutive normalized samples as a frequency estimate, smooth
// it, and upshift the normalized carrier back to the target frequency.
// Lock is declared when a carrier is present (the low-passed rails are not
// zero) and the smoothed estimate settles within tolerance.
type PilotDetector struct {
	sampleRate float64
	target     float64
	tolerance  float64

	downRe, downIm float32
	downStepRe     float32
	downStepIm     float32
	upRe, upIm     float32
	upStepRe       float32
	upStepIm       float32
	sinceRenorm    int

	lpI, lpQ *BiquadIIR
	smooth   *OnePole

	lastI, lastQ float32
	speed        float32
	lockRad      float32
	locked       bool
	present      bool
}

// NewPilotDetector creates a detector for a carrier near targetHz, locking
// within +/- toleranceHz, at the given sample rate.
func NewPilotDetector(sampleRate, targetHz, toleranceHz float64) *PilotDetector {
	theta := 2 * math.Pi * targetHz / sampleRate
	corner := 100 * toleranceHz
	p := &PilotDetector{
		sampleRate: sampleRate,
		target:     targetHz,
		tolerance:  toleranceHz,
		downRe:     1,
		downStepRe: float32(math.Cos(-theta)),
		downStepIm: float32(math.Sin(-theta)),
		upRe:       1,
		upStepRe:   float32(math.Cos(theta)),
		upStepIm:   float32(math.Sin(theta)),
		lpI:        NewBiquadLowPass(sampleRate, corner, 0.707),
		lpQ:        NewBiquadLowPass(sampleRate, corner, 0.707),
		smooth:     NewOnePoleLowPass(sampleRate, toleranceHz),
		lastI:      1,
		lockRad:    float32(2 * math.Pi * toleranceHz / sampleRate),
	}
	return p
}

// Locked reports whether, at the end of the most recent Process call, a
// carrier was present and had settled within tolerance of the target
// frequency.
func (p *PilotDetector) Locked() bool { return p.locked }

// Speed returns the smoothed instantaneous frequency estimate, in
// radians/sample, relative to the target.
func (p *PilotDetector) Speed() float32 { return p.speed }

// Process reads I/Q and writes the reconstructed carrier's cosine and sine
// into cosOut/sinOut, which along with I and Q must all share the same
// length.
func (p *PilotDetector) Process(I, Q, cosOut, sinOut []float32) {
	downRe, downIm := p.downRe, p.downIm
	upRe, upIm := p.upRe, p.upIm
	lastI, lastQ := p.lastI, p.lastQ
	var speed float32
	present := p.present

	// The biquad low-passes and the one-pole smoother each lag the
	// tracked carrier by their own phase response at the current
	// frequency estimate; undo both before upshifting back to target.
	offsetHz := float64(p.speed) * p.sampleRate / (2 * math.Pi)
	compensation := -(p.lpI.PhaseShift(offsetHz) + p.smooth.PhaseShift(offsetHz))
	compCos := float32(math.Cos(compensation))
	compSin := float32(math.Sin(compensation))

	for i := range I {
		x, y := I[i], Q[i]

		di := x*downRe - y*downIm
		dq := x*downIm + y*downRe
		ndownRe := downRe*p.downStepRe - downIm*p.downStepIm
		ndownIm := downRe*p.downStepIm + downIm*p.downStepRe
		downRe, downIm = ndownRe, ndownIm

		fi := p.lpI.Step(di)
		fq := p.lpQ.Step(dq)

		mag := float32(math.Sqrt(float64(fi*fi + fq*fq)))
		var ni, nq float32
		present = mag > 1e-9
		if present {
			ni, nq = fi/mag, fq/mag
		} else {
			ni, nq = lastI, lastQ
		}

		inst := fastmath.Atan2(nq*lastI-ni*lastQ, ni*lastI+nq*lastQ)
		speed = p.smooth.Step(inst)
		lastI, lastQ = ni, nq

		ri := ni*compCos - nq*compSin
		rq := ni*compSin + nq*compCos

		ci := ri*upRe - rq*upIm
		si := ri*upIm + rq*upRe
		if m := float32(math.Sqrt(float64(ci*ci + si*si))); m > 0 {
			ci, si = ci/m, si/m
		}
		nupRe := upRe*p.upStepRe - upIm*p.upStepIm
		nupIm := upRe*p.upStepIm + upIm*p.upStepRe
		upRe, upIm = nupRe, nupIm

		cosOut[i] = ci
		sinOut[i] = si

		p.sinceRenorm++
		if p.sinceRenorm >= 65536 {
			if m := float32(math.Sqrt(float64(downRe*downRe + downIm*downIm))); m > 0 {
				downRe, downIm = downRe/m, downIm/m
			}
			if m := float32(math.Sqrt(float64(upRe*upRe + upIm*upIm))); m > 0 {
				upRe, upIm = upRe/m, upIm/m
			}
			p.sinceRenorm = 0
		}
	}

	p.downRe, p.downIm = downRe, downIm
	p.upRe, p.upIm = upRe, upIm
	p.lastI, p.lastQ = lastI, lastQ
	p.speed = speed
	p.present = present
	p.locked = present && float32(math.Abs(float64(speed))) <= p.lockRad
}
