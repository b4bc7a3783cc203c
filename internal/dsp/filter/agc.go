package filter

import "math"

// AGC is a slow envelope-tracking automatic gain control: a peak-decay
// amplitude estimate, with a hold window equal to one second of samples,
// divides into the signal; the resulting gain is capped at MaxGain.
// Attack is immediate (an instantaneous sample whose power exceeds 0.9 of
// the tracked peak's power snaps the peak up and restarts the hold);
// release is a one-pole decay once the hold window has elapsed (spec
// §4.4).
type AGC struct {
	maxGain    float32
	holdWindow int
	decay      float32

	peak float32
	hold int
}

// NewAGC creates an AGC at the given sample rate with the given maximum
// gain.
func NewAGC(sampleRate float64, maxGain float32) *AGC {
	hold := int(sampleRate)
	return &AGC{
		maxGain:    maxGain,
		holdWindow: hold,
		decay:      float32(math.Exp(-1 / float64(hold))),
		peak:       1e-6,
	}
}

// Delay returns 0: the AGC's gain control loop introduces no group delay
// of its own, only amplitude scaling.
func (f *AGC) Delay() int { return 0 }

// Clone returns a fresh AGC with the same configuration and cleared
// state.
func (f *AGC) Clone() Filter {
	return &AGC{maxGain: f.maxGain, holdWindow: f.holdWindow, decay: f.decay, peak: 1e-6}
}

// InPlace scales every sample of buf by the tracked gain.
func (f *AGC) InPlace(buf []float32) {
	for i, x := range buf {
		a := x
		if a < 0 {
			a = -a
		}
		power := a * a
		maxPower := f.peak * f.peak
		switch {
		case power > 0.9*maxPower:
			f.peak = a
			f.hold = f.holdWindow
		case f.hold > 0:
			f.hold--
		default:
			f.peak = f.decay*f.peak + (1-f.decay)*a
		}

		gain := f.maxGain
		if f.peak > 1e-9 {
			if g := 1 / f.peak; g < gain {
				gain = g
			}
		}
		buf[i] = x * gain
	}
}
