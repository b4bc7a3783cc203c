// Package resample implements the integer-ratio decimators used by every
// per-scheme pipeline to step the signal down from its intermediate rate
// to the final audio rate (spec §4.7, step 5), and from the RF rate to the
// scheme's intermediate rate (step 2).
package resample

import "github.com/jtarrio/signals/internal/dsp/filter"

// Complex decimates a complex I/Q stream by an integer ratio, anti-alias
// filtering with the supplied low-pass before dropping samples.
type Complex struct {
	ratio int
	lpI   filter.Filter
	lpQ   filter.Filter
	phase int
}

// NewComplex creates a complex decimator. lowpass is cloned once per rail
// so the I and Q filter states stay independent.
func NewComplex(ratio int, lowpass filter.Filter) *Complex {
	if ratio < 1 {
		ratio = 1
	}
	return &Complex{ratio: ratio, lpI: lowpass.Clone(), lpQ: lowpass.Clone()}
}

// Ratio returns the decimation ratio.
func (c *Complex) Ratio() int { return c.ratio }

// Process filters and decimates I/Q in place, returning the (possibly
// shorter) output slices, which alias the input's backing arrays.
func (c *Complex) Process(I, Q []float32) ([]float32, []float32) {
	c.lpI.InPlace(I)
	c.lpQ.InPlace(Q)
	if c.ratio == 1 {
		return I, Q
	}

	n := 0
	for i := 0; i < len(I); i++ {
		if c.phase == 0 {
			I[n] = I[i]
			Q[n] = Q[i]
			n++
		}
		c.phase++
		if c.phase >= c.ratio {
			c.phase = 0
		}
	}
	return I[:n], Q[:n]
}

// Real decimates a single real-valued stream by an integer ratio, the way
// the audio stage steps the demodulated signal down to the final output
// rate.
type Real struct {
	ratio int
	lp    filter.Filter
	phase int
}

// NewReal creates a real decimator.
func NewReal(ratio int, lowpass filter.Filter) *Real {
	if ratio < 1 {
		ratio = 1
	}
	return &Real{ratio: ratio, lp: lowpass.Clone()}
}

// Ratio returns the decimation ratio.
func (r *Real) Ratio() int { return r.ratio }

// Process filters and decimates buf in place, returning the (possibly
// shorter) result, which aliases buf's backing array.
func (r *Real) Process(buf []float32) []float32 {
	r.lp.InPlace(buf)
	if r.ratio == 1 {
		return buf
	}

	n := 0
	for i := 0; i < len(buf); i++ {
		if r.phase == 0 {
			buf[n] = buf[i]
			n++
		}
		r.phase++
		if r.phase >= r.ratio {
			r.phase = 0
		}
	}
	return buf[:n]
}
